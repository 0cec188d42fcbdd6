// Package console implements the interactive menu: add, list, filter by
// month, delete by id, save and exit. It reads answers line by line from an
// io.Reader and writes prompts and tables to an io.Writer.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"expensetracker/internal/core"
	"expensetracker/internal/log"
	"expensetracker/internal/storage"
)

// errInputClosed is returned by prompt when the input stream ends.
var errInputClosed = errors.New("input closed")

type App struct {
	in       *bufio.Scanner
	out      io.Writer
	repo     storage.Repository
	location string
	ledger   *core.Ledger
	logger   *log.Logger
}

// New loads the ledger from repo. A load failure is reported to the user and
// the session starts empty.
func New(in io.Reader, out io.Writer, repo storage.Repository, location string, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	a := &App{
		in:       bufio.NewScanner(in),
		out:      out,
		repo:     repo,
		location: location,
		logger:   logger.WithComponent(log.ComponentConsole),
	}

	expenses, err := repo.Load()
	if err != nil {
		a.logger.Warn("Load failed, starting with no records", log.FieldError, err)
		a.println("Note: starting fresh (no records loaded).")
		expenses = nil
	}
	a.ledger = core.NewLedger(expenses)
	return a
}

// Ledger exposes the in-memory collection.
func (a *App) Ledger() *core.Ledger {
	return a.ledger
}

// Run shows the menu until the user exits. When the input ends the ledger is
// saved and Run returns the save error, if any.
func (a *App) Run() error {
	for {
		a.printMenu()
		choice, err := a.prompt("Choose: ")
		if err != nil {
			return a.closeOnEOF()
		}

		switch choice {
		case "1":
			err = a.add()
		case "2":
			all := a.ledger.All()
			a.logger.Debug("Expenses listed", log.FieldOperation, log.OpList, log.FieldCount, len(all))
			renderExpenses(a.out, all)
		case "3":
			err = a.filter()
		case "4":
			err = a.deleteByID()
		case "5":
			_ = a.save()
		case "6":
			if a.save() == nil {
				a.println("Bye!")
				return nil
			}
		default:
			a.println("Invalid choice.")
		}

		if errors.Is(err, errInputClosed) {
			return a.closeOnEOF()
		}
	}
}

func (a *App) printMenu() {
	a.println("")
	a.println("=== Expense Tracker ===")
	a.println("1) Add expense")
	a.println("2) List all")
	a.println("3) Filter by year/month")
	a.println("4) Delete by ID")
	a.println("5) Save")
	a.println("6) Exit")
}

func (a *App) add() error {
	date, err := a.prompt("Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	if err := core.ValidateDate(date); err != nil {
		a.println("Date must be YYYY-MM-DD.")
		return nil
	}

	category, err := a.prompt("Category (e.g., Food/Travel/Bills): ")
	if err != nil {
		return err
	}
	if category == "" {
		a.println("Category required.")
		return nil
	}

	description, err := a.prompt("Description (optional): ")
	if err != nil {
		return err
	}

	rawAmount, err := a.prompt("Amount (>= 0): ")
	if err != nil {
		return err
	}
	amount, err := core.ParseAmount(rawAmount)
	switch {
	case errors.Is(err, core.ErrNegativeAmount):
		a.println("Amount must be >= 0.")
		return nil
	case err != nil:
		a.println("Amount must be a number.")
		return nil
	}

	e, err := a.ledger.Add(date, category, description, amount)
	if err != nil {
		a.println(userMessage(err))
		return nil
	}
	a.logger.Debug("Expense added", log.NewFields().
		WithOperation(log.OpCreate).
		WithExpense(e.ID, e.Category, e.Amount).
		ToSlice()...)
	a.println("Added.")
	return nil
}

func (a *App) filter() error {
	rawYear, err := a.prompt("Year (e.g., 2025): ")
	if err != nil {
		return err
	}
	year, yerr := strconv.Atoi(rawYear)

	rawMonth, err := a.prompt("Month (1-12): ")
	if err != nil {
		return err
	}
	month, merr := strconv.Atoi(rawMonth)
	if yerr != nil || merr != nil {
		a.println("Enter valid numbers for year/month.")
		return nil
	}

	filtered, err := a.ledger.FilterMonth(year, month)
	if err != nil {
		a.println("Month must be 1..12")
		return nil
	}
	a.logger.Debug("Expenses filtered",
		log.FieldOperation, log.OpFilter,
		log.FieldYear, year,
		log.FieldMonth, month,
		log.FieldCount, len(filtered))
	renderExpenses(a.out, filtered)
	return nil
}

func (a *App) deleteByID() error {
	raw, err := a.prompt("Enter ID to delete: ")
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		a.println("Invalid ID.")
		return nil
	}
	if !a.ledger.Delete(id) {
		a.println("ID not found.")
		return nil
	}
	a.logger.Debug("Expense deleted", log.FieldOperation, log.OpDelete, log.FieldExpenseID, id)
	a.println("Deleted.")
	return nil
}

// save persists the ledger and reports the outcome. The ledger is kept in
// memory either way so a failed save can be retried.
func (a *App) save() error {
	if err := a.repo.Save(a.ledger.All()); err != nil {
		a.logger.Error("Save failed", log.NewFields().WithOperation(log.OpSave).WithError(err).ToSlice()...)
		a.println("Save failed: " + err.Error())
		return err
	}
	a.println("Saved to " + a.location)
	return nil
}

func (a *App) closeOnEOF() error {
	a.println("")
	if err := a.save(); err != nil {
		return fmt.Errorf("save on exit: %w", err)
	}
	a.println("Bye!")
	return nil
}

// prompt prints label and returns the next trimmed input line.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(a.in.Text()), nil
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidDate):
		return "Date must be YYYY-MM-DD."
	case errors.Is(err, core.ErrEmptyCategory):
		return "Category required."
	case errors.Is(err, core.ErrNegativeAmount):
		return "Amount must be >= 0."
	case errors.Is(err, core.ErrInvalidAmount):
		return "Amount must be a number."
	}
	return err.Error()
}
