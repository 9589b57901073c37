package models_test

import (
	"github.com/envelope-zero/transaction-import/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	title := "\t Semi-Annual  "

	category := suite.createTestCategory(models.Category{Title: title})
	suite.Assert().Equal("Semi-Annual", category.Title)
}

func (suite *TestSuiteStandard) TestCategoryTitleUnique() {
	_ = suite.createTestCategory(models.Category{Title: "Groceries"})

	err := models.DB.Create(&models.Category{Title: "Groceries"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryTitleNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryTitleCaseSensitive() {
	_ = suite.createTestCategory(models.Category{Title: "Groceries"})

	err := models.DB.Create(&models.Category{Title: "groceries"}).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestCategoryFindNotFound() {
	var category models.Category
	err := models.DB.First(&category, "title = ?", "Nope").Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "there is no category matching your query")
}
