package v1

import (
	"fmt"

	"github.com/envelope-zero/transaction-import/internal/models"
	"github.com/envelope-zero/transaction-import/internal/uuid"
	"github.com/gin-gonic/gin"
)

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category of the transaction
}

type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	t := Transaction{
		Transaction: model,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}

	if model.CategoryID != nil {
		t.Links.Category = fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID)
	}

	return t
}

type TransactionListResponse struct {
	Data       []Transaction   `json:"data"`                                                          // List of transactions
	Balance    *models.Balance `json:"balance"`                                                       // Balance over all transactions
	Error      *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                    // Pagination information
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Category uuid.UUID `form:"category"` // ID of the category
	Type     string    `form:"type"`     // Type of the transaction
	Offset   uint      `form:"offset"`   // The offset of the first Transaction returned
	Limit    int       `form:"limit"`    // Maximum number of Transactions to return
}

// model returns the filter as a model to use in queries.
func (f TransactionQueryFilter) model() (models.Transaction, error) {
	t := models.Transaction{Type: models.TransactionType(f.Type)}

	if f.Type != "" && !t.Type.Valid() {
		return models.Transaction{}, models.ErrTransactionTypeInvalid
	}

	if f.Category != uuid.Nil {
		id := f.Category.UUID
		t.CategoryID = &id
	}

	return t, nil
}
