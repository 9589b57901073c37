package importer

import (
	"iter"
	"strings"
)

// Field positions in an import row.
const (
	fieldTitle = iota
	fieldType
	fieldValue
	fieldCategory
)

// field returns the trimmed field at index i of the record, or an
// empty string if the record is too short.
func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[i])
}

// Accept reports if a request is imported.
//
// Requests without title, type or value are dropped without an error.
// The category is not checked.
func Accept(r TransactionRequest) bool {
	return r.Title != "" && r.Type != "" && r.Value != ""
}

// NewTransactionRequest builds a request from the first four fields of a record.
func NewTransactionRequest(record []string) TransactionRequest {
	return TransactionRequest{
		Title:    field(record, fieldTitle),
		Type:     field(record, fieldType),
		Value:    field(record, fieldValue),
		Category: field(record, fieldCategory),
	}
}

// Collect reads all rows and returns the accepted requests together with the
// category titles they reference, in row order and including duplicates.
//
// The sequence is drained until it ends unless it yields an error. Iteration
// stops at the first error and no requests are returned.
func Collect(rows iter.Seq2[[]string, error]) ([]TransactionRequest, []string, error) {
	var (
		requests []TransactionRequest
		titles   []string
	)

	for record, err := range rows {
		if err != nil {
			return nil, nil, err
		}

		r := NewTransactionRequest(record)
		if !Accept(r) {
			continue
		}

		requests = append(requests, r)
		titles = append(titles, r.Category)
	}

	return requests, titles, nil
}
