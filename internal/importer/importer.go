package importer

import (
	"context"
	"fmt"
	"iter"
	"os"

	"github.com/envelope-zero/transaction-import/internal/importer/parser/csvimport"
	"github.com/envelope-zero/transaction-import/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Stage is a step of an import.
type Stage string

const (
	StageReading               Stage = "reading"
	StageReconcilingCategories Stage = "reconciling_categories"
	StageBuildingTransactions  Stage = "building_transactions"
	StageCleaningUp            Stage = "cleaning_up"
	StageDone                  Stage = "done"
)

// Importer imports CSV files of transactions.
type Importer struct {
	categories   CategoryStore
	transactions TransactionStore
	rows         func(path string) iter.Seq2[[]string, error]
	remove       func(path string) error
	logger       zerolog.Logger
}

type Option func(*Importer)

// WithLogger sets the logger. The global logger is used by default.
func WithLogger(l zerolog.Logger) Option {
	return func(i *Importer) {
		i.logger = l
	}
}

// WithRemove sets the function used to remove the file after the import.
// os.Remove is used by default.
func WithRemove(remove func(path string) error) Option {
	return func(i *Importer) {
		i.remove = remove
	}
}

// New creates an Importer writing to the given stores.
func New(categories CategoryStore, transactions TransactionStore, opts ...Option) *Importer {
	i := &Importer{
		categories:   categories,
		transactions: transactions,
		rows:         csvimport.Rows,
		remove:       os.Remove,
		logger:       log.Logger,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Import imports all transactions from the CSV file at path and removes the
// file afterwards.
//
// The file has the columns title, type, value and category. The first line is
// skipped. Rows without title, type or value are ignored.
//
// Every stage aborts the import on errors. Resources persisted before the failing
// stage are not removed, the file is only removed when all transactions
// have been saved. The created transactions are returned in file order.
func (i *Importer) Import(ctx context.Context, path string) ([]models.Transaction, error) {
	logger := i.logger.With().Str("file", path).Logger()

	transactions, stage, err := i.run(ctx, path, logger)
	importsTotal.WithLabelValues(string(stage)).Inc()
	if err != nil {
		logger.Debug().Err(err).Str("stage", string(stage)).Msg("import failed")
		return nil, err
	}

	return transactions, nil
}

// run executes all stages and returns the stage it ended in.
func (i *Importer) run(ctx context.Context, path string, logger zerolog.Logger) ([]models.Transaction, Stage, error) {
	logger.Debug().Str("stage", string(StageReading)).Msg("import")
	requests, titles, err := Collect(i.rows(path))
	if err != nil {
		return nil, StageReading, err
	}

	logger.Debug().Str("stage", string(StageReconcilingCategories)).Int("transactions", len(requests)).Msg("import")
	reconciliation, err := ReconcileCategories(ctx, i.categories, titles)
	if err != nil {
		return nil, StageReconcilingCategories, err
	}
	importedCategories.Add(float64(len(reconciliation.Created)))

	logger.Debug().Str("stage", string(StageBuildingTransactions)).Int("categories", len(reconciliation.Resolution)).Msg("import")
	transactions, err := BuildTransactions(requests, reconciliation.Resolution)
	if err != nil {
		return nil, StageBuildingTransactions, err
	}

	err = i.transactions.SaveTransactions(ctx, transactions)
	if err != nil {
		return nil, StageBuildingTransactions, fmt.Errorf("creating transactions: %w", err)
	}
	importedTransactions.Add(float64(len(transactions)))

	logger.Debug().Str("stage", string(StageCleaningUp)).Msg("import")
	err = i.remove(path)
	if err != nil {
		return nil, StageCleaningUp, fmt.Errorf("%w: %w", ErrCleanup, err)
	}

	logger.Info().
		Int("transactions", len(transactions)).
		Int("categoriesCreated", len(reconciliation.Created)).
		Int("categoriesExisting", len(reconciliation.Existing)).
		Msg("import done")

	return transactions, StageDone, nil
}
