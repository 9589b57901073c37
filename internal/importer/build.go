package importer

import (
	"fmt"

	"github.com/envelope-zero/transaction-import/internal/importer/helpers"
	"github.com/envelope-zero/transaction-import/internal/models"
	"github.com/shopspring/decimal"
)

// BuildTransactions creates one transaction per request with the category
// resolved from categories by its exact title.
//
// A request whose category is not contained in categories fails the whole
// build. Type values are passed through and checked by the model when saving.
func BuildTransactions(requests []TransactionRequest, categories Resolution) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0, len(requests))

	for i, r := range requests {
		value, err := decimal.NewFromString(r.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: '%s' for transaction %d ('%s')", ErrInvalidValue, r.Value, i+1, r.Title)
		}

		category, ok := categories[r.Category]
		if !ok {
			return nil, fmt.Errorf("%w: '%s' for transaction %d ('%s')", ErrCategoryNotResolved, r.Category, i+1, r.Title)
		}
		id := category.ID

		transactions = append(transactions, models.Transaction{
			Title:      r.Title,
			Type:       models.TransactionType(r.Type),
			Value:      value,
			CategoryID: &id,
			Category:   &category,
			ImportHash: helpers.RowHash(r.Title, r.Type, r.Value, r.Category),
		})
	}

	return transactions, nil
}
