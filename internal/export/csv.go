package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"VisualShell/internal/state"
)

// Columns in file order: x, y, w, h, name, command.
const columnCount = 6

var columnNames = [columnCount]string{"x", "y", "w", "h", "name", "command"}

var (
	ErrNothingToSave  = errors.New("nothing to save")
	ErrCarriageReturn = errors.New("carriage return in text field")
)

// ParseError points at the row and column that could not be read.
// Row and Column are 1-based; Column is 0 when the whole row is at fault.
type ParseError struct {
	Row    int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d, column %d (%s): %v", e.Row, e.Column, columnNames[e.Column-1], e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteCSV writes one row per shape in list order. No header row is
// written. An empty list writes nothing and returns ErrNothingToSave.
// encoding/csv reads "\r\n" inside a quoted field back as "\n", so a name
// or command holding '\r' is rejected with ErrCarriageReturn before
// anything is written.
func WriteCSV(w io.Writer, shapes []state.Shape) error {
	if len(shapes) == 0 {
		return ErrNothingToSave
	}
	for i, s := range shapes {
		if strings.ContainsRune(s.Name, '\r') || strings.ContainsRune(s.Command, '\r') {
			return fmt.Errorf("shape %d (%s): %w", i+1, s, ErrCarriageReturn)
		}
	}

	cw := csv.NewWriter(w)
	for _, s := range shapes {
		record := []string{
			strconv.Itoa(s.X),
			strconv.Itoa(s.Y),
			strconv.Itoa(s.W),
			strconv.Itoa(s.H),
			s.Name,
			s.Command,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write shape %s: %w", s, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ReadCSV parses every row of r. Line breaks inside quoted fields come
// back as "\n" whatever the file used. The first malformed row aborts the read
// and no shapes are returned, so callers never see a partial list.
func ReadCSV(r io.Reader) ([]state.Shape, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = columnCount

	var shapes []state.Shape
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Row: row, Err: err}
		}

		s, err := parseRecord(row, record)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
	if shapes == nil {
		shapes = []state.Shape{}
	}
	return shapes, nil
}

func parseRecord(row int, record []string) (state.Shape, error) {
	var nums [4]int
	for i := range nums {
		n, err := strconv.Atoi(record[i])
		if err != nil {
			return state.Shape{}, &ParseError{Row: row, Column: i + 1, Err: err}
		}
		if n < 0 {
			return state.Shape{}, &ParseError{Row: row, Column: i + 1, Err: fmt.Errorf("negative value %d", n)}
		}
		nums[i] = n
	}
	return state.Shape{
		X:       nums[0],
		Y:       nums[1],
		W:       nums[2],
		H:       nums[3],
		Name:    record[4],
		Command: record[5],
	}, nil
}
