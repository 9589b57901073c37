package importer_test

import (
	"context"
	"errors"

	"github.com/envelope-zero/transaction-import/internal/models"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

var errStorage = errors.New("storage is on fire")

// fakeStore is an in-memory CategoryStore and TransactionStore that records
// all calls and can be told to fail.
type fakeStore struct {
	categories   []models.Category
	transactions []models.Transaction

	findCalls             int
	lookups               [][]string
	saveCategoriesCalls   int
	saveTransactionsCalls int

	findErr             error
	saveTransactionsErr error

	// saveCategoriesErrs is returned by consecutive calls of SaveCategories.
	// beforeConflict is called before an error is returned so that tests can
	// simulate a concurrent import.
	saveCategoriesErrs []error
	beforeConflict     func(s *fakeStore)

	// rename changes category titles when they are saved
	rename func(title string) string
}

func (s *fakeStore) FindCategoriesByTitle(_ context.Context, titles []string) ([]models.Category, error) {
	s.findCalls++
	s.lookups = append(s.lookups, titles)
	if s.findErr != nil {
		return nil, s.findErr
	}

	var found []models.Category
	for _, c := range s.categories {
		if slices.Contains(titles, c.Title) {
			found = append(found, c)
		}
	}

	return found, nil
}

func (s *fakeStore) SaveCategories(_ context.Context, categories []models.Category) error {
	s.saveCategoriesCalls++

	if len(s.saveCategoriesErrs) > 0 {
		err := s.saveCategoriesErrs[0]
		s.saveCategoriesErrs = s.saveCategoriesErrs[1:]

		if err != nil {
			if s.beforeConflict != nil {
				s.beforeConflict(s)
			}
			return err
		}
	}

	for i := range categories {
		categories[i].ID = uuid.New()
		if s.rename != nil {
			categories[i].Title = s.rename(categories[i].Title)
		}
	}
	s.categories = append(s.categories, categories...)

	return nil
}

func (s *fakeStore) SaveTransactions(_ context.Context, transactions []models.Transaction) error {
	s.saveTransactionsCalls++
	if s.saveTransactionsErr != nil {
		return s.saveTransactionsErr
	}

	for i := range transactions {
		transactions[i].ID = uuid.New()
	}
	s.transactions = append(s.transactions, transactions...)

	return nil
}

func (s *fakeStore) writes() int {
	return s.saveCategoriesCalls + s.saveTransactionsCalls
}
