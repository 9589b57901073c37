package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeOutcome TransactionType = "outcome"
)

// Valid reports if the type is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeOutcome
}

// Transaction is a financial record.
type Transaction struct {
	DefaultModel
	Title      string          `json:"title" example:"Salary"`                                                       // Title of the transaction
	Type       TransactionType `json:"type" example:"income"`                                                        // Either "income" or "outcome"
	Value      decimal.Decimal `json:"value" gorm:"type:DECIMAL(20,8)" example:"5000" swaggertype:"string"`          // Amount of the transaction, never negative
	CategoryID *uuid.UUID      `json:"categoryId" gorm:"type:uuid" example:"f2ee7e4f-0e5a-4a63-8a39-1bf1e7e5f8c3"` // ID of the category
	Category   *Category       `json:"category,omitempty"`                                                           // The category of the transaction
	ImportHash string          `json:"importHash" example:"867e3a26dc0baf73f4bff506f31a97f6c32088917e9e5cf1a5ed6f3f84a6fa70"` // SHA256 hash of the imported CSV row
}

// BeforeSave
//   - trims whitespace from string fields
//   - verifies that the type is valid
//   - verifies that the value is not negative
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Title = strings.TrimSpace(t.Title)
	t.ImportHash = strings.TrimSpace(t.ImportHash)

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if t.Value.IsNegative() {
		return ErrTransactionValueNegative
	}

	// Ensure that the category ID is nil and not a pointer to a nil UUID
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	return nil
}
