// Package csvimport reads transaction CSV files row by row.
package csvimport

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
)

// ErrRead is returned for all errors opening or reading a CSV file.
var ErrRead = errors.New("could not read CSV file")

// Rows returns the records of the CSV file at path.
//
// The first line of the file is always skipped, no matter what it contains.
// The file is opened when iteration starts and closed when it ends.
//
// Errors are yielded as the last element of the sequence.
func Rows(path string) iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield(nil, fmt.Errorf("%w: %w", ErrRead, err))
			return
		}
		defer f.Close()

		r := bufio.NewReader(f)

		// Skip the first line. This is a line, not a record, so a header
		// with broken quoting does not break the import.
		_, err = r.ReadString('\n')
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			yield(nil, fmt.Errorf("%w: %w", ErrRead, err))
			return
		}

		reader := csv.NewReader(r)

		// Rows with missing or additional fields are handled by the consumer
		reader.FieldsPerRecord = -1

		for {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, readError(err))
				return
			}

			if !yield(record, nil) {
				return
			}
		}
	}
}

// readError wraps err with ErrRead and the line of the input it occurred in.
//
// The line is counted from the second line of the file since the first one
// is skipped before parsing starts.
func readError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("%w: error in line %d of the CSV: %w", ErrRead, parseErr.Line+1, parseErr.Err)
	}

	return fmt.Errorf("%w: %w", ErrRead, err)
}
