package models

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// batchSize is the maximum number of rows written or looked up with one
// statement. It keeps statements below the bound variable limit of sqlite.
const batchSize = 500

// Store persists categories and transactions with gorm.
type Store struct {
	db *gorm.DB
}

// NewStore returns a Store using the given database handle.
func NewStore(db *gorm.DB) Store {
	return Store{db: db}
}

// FindCategoriesByTitle returns all categories whose title is contained in titles.
//
// Titles are looked up in chunks of batchSize, callers should pass every title
// only once.
func (s Store) FindCategoriesByTitle(ctx context.Context, titles []string) ([]Category, error) {
	var categories []Category

	for start := 0; start < len(titles); start += batchSize {
		end := min(start+batchSize, len(titles))

		var chunk []Category
		err := s.db.WithContext(ctx).Where("title IN ?", titles[start:end]).Find(&chunk).Error
		if err != nil {
			return nil, fmt.Errorf("finding categories by title: %w", err)
		}
		categories = append(categories, chunk...)
	}

	return categories, nil
}

// SaveCategories inserts all categories in batches of batchSize.
// All batches are written in one database transaction, if one fails, none are saved.
//
// The IDs are set on the elements of the passed slice.
func (s Store) SaveCategories(ctx context.Context, categories []Category) error {
	if len(categories) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).CreateInBatches(&categories, batchSize).Error
	if err != nil {
		return fmt.Errorf("saving %d categories: %w", len(categories), err)
	}

	return nil
}

// SaveTransactions inserts all transactions in batches of batchSize.
// All batches are written in one database transaction, if one fails, none are saved.
//
// Associations are not written, the category must already exist.
func (s Store) SaveTransactions(ctx context.Context, transactions []Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Omit(clause.Associations).CreateInBatches(&transactions, batchSize).Error
	if err != nil {
		return fmt.Errorf("saving %d transactions: %w", len(transactions), err)
	}

	return nil
}

// Balance is the sum of all transactions per type.
type Balance struct {
	Income  decimal.Decimal `json:"income" example:"5000"`  // Sum of all income transactions
	Outcome decimal.Decimal `json:"outcome" example:"1200"` // Sum of all outcome transactions
	Total   decimal.Decimal `json:"total" example:"3800"`   // Income minus outcome
}

// Balance calculates the balance over all transactions.
func (s Store) Balance(ctx context.Context) (Balance, error) {
	income, err := s.sum(ctx, TransactionTypeIncome)
	if err != nil {
		return Balance{}, err
	}

	outcome, err := s.sum(ctx, TransactionTypeOutcome)
	if err != nil {
		return Balance{}, err
	}

	return Balance{
		Income:  income,
		Outcome: outcome,
		Total:   income.Sub(outcome),
	}, nil
}

func (s Store) sum(ctx context.Context, t TransactionType) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := s.db.WithContext(ctx).
		Model(&Transaction{}).
		Where(&Transaction{Type: t}).
		Select("SUM(value)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing %s transactions: %w", t, err)
	}

	return sum.Decimal, nil
}
