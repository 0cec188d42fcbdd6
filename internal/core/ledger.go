package core

import "fmt"

// Ledger is the ordered, in-memory collection edited during a session.
// It is not safe for concurrent use.
type Ledger struct {
	items  []Expense
	nextID int
}

// NewLedger copies expenses and derives the next id from the largest one.
func NewLedger(expenses []Expense) *Ledger {
	items := append([]Expense(nil), expenses...)
	return &Ledger{items: items, nextID: NextID(items)}
}

// NextID returns max(id)+1, or 1 for an empty slice.
func NextID(expenses []Expense) int {
	highest := 0
	for _, e := range expenses {
		if e.ID > highest {
			highest = e.ID
		}
	}
	return highest + 1
}

// Add validates the entry, assigns the next id and appends it.
func (l *Ledger) Add(date, category, description string, amount float64) (Expense, error) {
	e := Expense{
		ID:          l.nextID,
		Date:        date,
		Category:    category,
		Description: description,
		Amount:      amount,
	}
	if err := e.Validate(); err != nil {
		return Expense{}, err
	}
	l.items = append(l.items, e)
	l.nextID++
	return e, nil
}

// All returns a copy of the entries in insertion order.
func (l *Ledger) All() []Expense {
	return append([]Expense(nil), l.items...)
}

func (l *Ledger) Len() int {
	return len(l.items)
}

// FilterMonth returns the entries dated in the given year and month.
func (l *Ledger) FilterMonth(year, month int) ([]Expense, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	var out []Expense
	for _, e := range l.items {
		if e.InMonth(year, month) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Delete removes every entry carrying id and reports whether any matched.
// The next id is not rewound.
func (l *Ledger) Delete(id int) bool {
	kept := l.items[:0]
	removed := false
	for _, e := range l.items {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	l.items = kept
	return removed
}

// Total sums the amounts of expenses.
func Total(expenses []Expense) float64 {
	var sum float64
	for _, e := range expenses {
		sum += e.Amount
	}
	return sum
}

func monthPrefix(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
