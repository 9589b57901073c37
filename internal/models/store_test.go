package models_test

import (
	"context"
	"fmt"

	"github.com/envelope-zero/transaction-import/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestStoreFindCategoriesByTitle() {
	_ = suite.createTestCategory(models.Category{Title: "Salary"})
	_ = suite.createTestCategory(models.Category{Title: "Housing"})
	_ = suite.createTestCategory(models.Category{Title: "Food"})

	categories, err := models.NewStore(models.DB).FindCategoriesByTitle(context.Background(), []string{"Salary", "Food", "Salary", "Travel"})
	suite.Require().Nil(err)

	titles := make([]string, 0, len(categories))
	for _, c := range categories {
		titles = append(titles, c.Title)
	}
	suite.Assert().ElementsMatch([]string{"Salary", "Food"}, titles)
}

func (suite *TestSuiteStandard) TestStoreFindCategoriesByTitleEmpty() {
	categories, err := models.NewStore(models.DB).FindCategoriesByTitle(context.Background(), nil)
	suite.Assert().Nil(err)
	suite.Assert().Len(categories, 0)
}

func (suite *TestSuiteStandard) TestStoreSaveCategories() {
	store := models.NewStore(models.DB)

	categories := []models.Category{{Title: "Salary"}, {Title: "Housing"}}
	err := store.SaveCategories(context.Background(), categories)
	suite.Require().Nil(err)

	for _, c := range categories {
		suite.Assert().NotEqual("00000000-0000-0000-0000-000000000000", c.ID.String(), "ID not set for %s", c.Title)
	}

	var count int64
	models.DB.Model(&models.Category{}).Count(&count)
	suite.Assert().Equal(int64(2), count)
}

func (suite *TestSuiteStandard) TestStoreSaveCategoriesConflict() {
	_ = suite.createTestCategory(models.Category{Title: "Housing"})

	err := models.NewStore(models.DB).SaveCategories(context.Background(), []models.Category{{Title: "Salary"}, {Title: "Housing"}})
	suite.Assert().ErrorIs(err, models.ErrCategoryTitleNotUnique)

	// The insert is a single statement, nothing has been written
	var count int64
	models.DB.Model(&models.Category{}).Count(&count)
	suite.Assert().Equal(int64(1), count)
}

// TestStoreBatches writes and reads more rows than fit into one statement.
func (suite *TestSuiteStandard) TestStoreBatches() {
	store := models.NewStore(models.DB)

	categories := make([]models.Category, 0, 4500)
	titles := make([]string, 0, 4500)
	for i := range 4500 {
		title := fmt.Sprintf("Category %d", i)
		categories = append(categories, models.Category{Title: title})
		titles = append(titles, title)
	}

	suite.Require().Nil(store.SaveCategories(context.Background(), categories))
	for _, c := range categories {
		suite.Require().NotEqual(uuid.Nil, c.ID, "ID not set for %s", c.Title)
	}

	found, err := store.FindCategoriesByTitle(context.Background(), titles)
	suite.Require().Nil(err)
	suite.Assert().Len(found, 4500)

	transactions := make([]models.Transaction, 0, 4500)
	for i, c := range categories {
		transactions = append(transactions, models.Transaction{
			Title:      fmt.Sprintf("Transaction %d", i),
			Type:       models.TransactionTypeOutcome,
			Value:      decimal.NewFromInt(int64(i)),
			CategoryID: &c.ID,
		})
	}
	suite.Require().Nil(store.SaveTransactions(context.Background(), transactions))

	var count int64
	models.DB.Model(&models.Transaction{}).Count(&count)
	suite.Assert().Equal(int64(4500), count)
}

// TestStoreBatchesAtomic verifies that a failing batch rolls back all batches.
func (suite *TestSuiteStandard) TestStoreBatchesAtomic() {
	_ = suite.createTestCategory(models.Category{Title: "Housing"})

	categories := make([]models.Category, 0, 1201)
	for i := range 1200 {
		categories = append(categories, models.Category{Title: fmt.Sprintf("Category %d", i)})
	}
	categories = append(categories, models.Category{Title: "Housing"})

	err := models.NewStore(models.DB).SaveCategories(context.Background(), categories)
	suite.Assert().ErrorIs(err, models.ErrCategoryTitleNotUnique)

	var count int64
	models.DB.Model(&models.Category{}).Count(&count)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestStoreSaveEmpty() {
	store := models.NewStore(models.DB)
	suite.Assert().Nil(store.SaveCategories(context.Background(), nil))
	suite.Assert().Nil(store.SaveTransactions(context.Background(), nil))
}

func (suite *TestSuiteStandard) TestStoreSaveTransactions() {
	category := suite.createTestCategory(models.Category{Title: "Housing"})

	transactions := []models.Transaction{
		{Title: "Rent", Type: models.TransactionTypeOutcome, Value: decimal.NewFromFloat(1200), CategoryID: &category.ID, Category: &category},
		{Title: "Power", Type: models.TransactionTypeOutcome, Value: decimal.NewFromFloat(60), CategoryID: &category.ID, Category: &category},
	}

	err := models.NewStore(models.DB).SaveTransactions(context.Background(), transactions)
	suite.Require().Nil(err)

	var saved []models.Transaction
	suite.Require().Nil(models.DB.Where(&models.Transaction{CategoryID: &category.ID}).Find(&saved).Error)
	suite.Assert().Len(saved, 2)

	// The association is not written again
	var count int64
	models.DB.Model(&models.Category{}).Count(&count)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestStoreSaveTransactionsInvalidType() {
	err := models.NewStore(models.DB).SaveTransactions(context.Background(), []models.Transaction{
		{Title: "Rent", Type: models.TransactionTypeOutcome, Value: decimal.NewFromFloat(1200)},
		{Title: "Lottery", Type: "win", Value: decimal.NewFromFloat(100)},
	})
	suite.Assert().ErrorIs(err, models.ErrTransactionTypeInvalid)

	var count int64
	models.DB.Model(&models.Transaction{}).Count(&count)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestStoreBalance() {
	store := models.NewStore(models.DB)

	balance, err := store.Balance(context.Background())
	suite.Require().Nil(err)
	suite.Assert().True(balance.Total.IsZero(), "Balance of an empty database is %s", balance.Total)

	_ = suite.createTestTransaction(models.Transaction{Title: "Salary", Type: models.TransactionTypeIncome, Value: decimal.NewFromFloat(5000)})
	_ = suite.createTestTransaction(models.Transaction{Title: "Rent", Type: models.TransactionTypeOutcome, Value: decimal.NewFromFloat(1200)})
	_ = suite.createTestTransaction(models.Transaction{Title: "Power", Type: models.TransactionTypeOutcome, Value: decimal.NewFromFloat(60)})

	balance, err = store.Balance(context.Background())
	suite.Require().Nil(err)
	suite.Assert().True(balance.Income.Equal(decimal.NewFromFloat(5000)), "Income is %s", balance.Income)
	suite.Assert().True(balance.Outcome.Equal(decimal.NewFromFloat(1260)), "Outcome is %s", balance.Outcome)
	suite.Assert().True(balance.Total.Equal(decimal.NewFromFloat(3740)), "Total is %s", balance.Total)
}

func (suite *TestSuiteStandard) TestStoreDatabaseClosed() {
	suite.CloseDB()
	store := models.NewStore(models.DB)

	_, err := store.FindCategoriesByTitle(context.Background(), []string{"Salary"})
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	err = store.SaveCategories(context.Background(), []models.Category{{Title: "Salary"}})
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	err = store.SaveTransactions(context.Background(), []models.Transaction{{Title: "Rent", Type: models.TransactionTypeOutcome}})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
