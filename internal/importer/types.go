package importer

import (
	"context"
	"errors"

	"github.com/envelope-zero/transaction-import/internal/models"
)

// TransactionRequest is a transaction read from the import file that has
// not been resolved to storage resources yet.
type TransactionRequest struct {
	Title    string
	Type     string // "income" or "outcome", validated when the transaction is saved
	Value    string // Parsed to a decimal when the transaction is built
	Category string // Title of the category
}

// CategoryStore looks up and persists categories.
type CategoryStore interface {
	// FindCategoriesByTitle returns all categories with a title contained in titles.
	FindCategoriesByTitle(ctx context.Context, titles []string) ([]models.Category, error)

	// SaveCategories persists all categories in one operation and sets their IDs.
	SaveCategories(ctx context.Context, categories []models.Category) error
}

// TransactionStore persists transactions.
type TransactionStore interface {
	// SaveTransactions persists all transactions in one operation and sets their IDs.
	SaveTransactions(ctx context.Context, transactions []models.Transaction) error
}

var (
	ErrCategoryNotResolved = errors.New("no category found for the transaction")
	ErrInvalidValue        = errors.New("the value of the transaction is not a valid number")
	ErrCleanup             = errors.New("could not remove the imported file")
)
