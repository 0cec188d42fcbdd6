// Package csvfile persists expenses as a quoted, comma-separated text file.
//
// Every field is wrapped in double quotes and inner quotes are doubled:
//
//	"id","date","category","description","amount"
//	"1","2025-01-15","Food","Lunch, with ""friends""","12.5"
//
// Decoding is tolerant: rows with the wrong number of fields or a
// non-numeric id/amount are skipped and reported in Result.Skipped.
package csvfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"expensetracker/internal/core"
)

// Header is the first line of every file written by Encode.
const Header = `"id","date","category","description","amount"`

const fieldCount = 5

// maxLineSize bounds a single row; longer lines fail the whole decode.
const maxLineSize = 1 << 20

var (
	ErrFieldCount    = errors.New("wrong number of fields")
	ErrInvalidID     = errors.New("id is not an integer")
	ErrInvalidAmount = errors.New("amount is not a number")
)

// SkippedRow describes a data row that did not produce an expense.
type SkippedRow struct {
	Line int // 1-based physical line number
	Err  error
}

// Result is the outcome of Decode.
type Result struct {
	Expenses []core.Expense
	Skipped  []SkippedRow
}

// EncodeField quotes s and doubles any quote inside it.
func EncodeField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// FormatAmount renders the shortest decimal text that parses back to a.
func FormatAmount(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

// EncodeRow renders one expense as a line without terminator.
func EncodeRow(e core.Expense) string {
	fields := [fieldCount]string{
		EncodeField(strconv.Itoa(e.ID)),
		EncodeField(e.Date),
		EncodeField(e.Category),
		EncodeField(e.Description),
		EncodeField(FormatAmount(e.Amount)),
	}
	return strings.Join(fields[:], ",")
}

// Encode writes the header followed by one line per expense.
func Encode(w io.Writer, expenses []core.Expense) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range expenses {
		if _, err := bw.WriteString(EncodeRow(e) + "\n"); err != nil {
			return fmt.Errorf("write row %d: %w", e.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// ParseLine splits one physical line into fields.
//
// Outside quotes a '"' opens a quoted region and ',' ends the field.
// Inside quotes '""' yields a literal quote and a single '"' closes the
// region. An unterminated quote is not an error: whatever was collected
// becomes the last field.
func ParseLine(line string) []string {
	var (
		out    []string
		cur    strings.Builder
		quoted bool
	)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if quoted {
			switch {
			case ch == '"' && i+1 < len(line) && line[i+1] == '"':
				cur.WriteByte('"')
				i++
			case ch == '"':
				quoted = false
			default:
				cur.WriteByte(ch)
			}
			continue
		}
		switch ch {
		case '"':
			quoted = true
		case ',':
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	return append(out, cur.String())
}

// decodeRow turns the fields of one row into an expense.
func decodeRow(fields []string) (core.Expense, error) {
	if len(fields) != fieldCount {
		return core.Expense{}, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), fieldCount)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.Expense{}, fmt.Errorf("%w: %q", ErrInvalidID, fields[0])
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil {
		return core.Expense{}, fmt.Errorf("%w: %q", ErrInvalidAmount, fields[4])
	}
	return core.Expense{
		ID:          id,
		Date:        fields[1],
		Category:    fields[2],
		Description: fields[3],
		Amount:      amount,
	}, nil
}

// scanLines is a bufio.SplitFunc that ends a line at "\n", "\r\n" or a
// lone "\r".
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Need the next byte to tell "\r" from "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Decode reads a whole document. The first line is always treated as the
// header and never validated. Blank lines are ignored. Only read errors are
// returned; malformed rows end up in Result.Skipped.
func Decode(r io.Reader) (Result, error) {
	res := Result{Expenses: []core.Expense{}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	sc.Split(scanLines)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		e, err := decodeRow(ParseLine(line))
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedRow{Line: lineNo, Err: err})
			continue
		}
		res.Expenses = append(res.Expenses, e)
	}
	if err := sc.Err(); err != nil {
		return Result{}, fmt.Errorf("read line %d: %w", lineNo+1, err)
	}
	return res, nil
}
