package v1_test

import (
	"bytes"
	"net/http"
	"os"

	v1 "github.com/envelope-zero/transaction-import/internal/controllers/v1"
	"github.com/envelope-zero/transaction-import/internal/models"
	"github.com/envelope-zero/transaction-import/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestImportOptions() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestImport() {
	cfg := test.Config(suite.T())
	body, headers := test.LoadTestFile(suite.T(), "transactions.csv")

	recorder := test.RequestWithConfig(suite.T(), cfg, http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 4)

	// Transactions are returned in file order
	titles := []string{"Salary", "Rent", "Groceries", "Power bill"}
	for i, transaction := range response.Data {
		suite.Assert().Equal(titles[i], transaction.Title)
		suite.Assert().NotNil(transaction.CategoryID)
		suite.Assert().Equal("http://example.com/api/v1/transactions/"+transaction.ID.String(), transaction.Links.Self)
	}

	suite.Assert().Equal(*response.Data[1].CategoryID, *response.Data[3].CategoryID, "Transactions with the same category must reference the same category")
	suite.Assert().True(response.Data[2].Value.Equal(decimal.NewFromFloat(85.5)), "Value is %s", response.Data[2].Value)

	var count int64
	models.DB.Model(&models.Category{}).Count(&count)
	suite.Assert().Equal(int64(3), count)

	// The uploaded file has been removed
	entries, err := os.ReadDir(cfg.UploadDir)
	suite.Require().Nil(err)
	suite.Assert().Len(entries, 0)
}

func (suite *TestSuiteStandard) TestImportMessyFile() {
	body, headers := test.LoadTestFile(suite.T(), "messy.csv")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	suite.Assert().Equal("Salary", response.Data[0].Title)
	suite.Assert().Equal("Books, used", response.Data[1].Title)
	suite.Assert().Equal("Books, Media", response.Data[1].Category.Title)
}

func (suite *TestSuiteStandard) TestImportHeaderOnly() {
	body, headers := test.LoadTestFile(suite.T(), "header-only.csv")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestImportFails() {
	invalidType, invalidTypeHeaders := test.LoadTestFile(suite.T(), "invalid-type.csv")
	wrongSuffix, wrongSuffixHeaders := test.CSVUpload(suite.T(), "transactions.json", "title,type,value,category\n")
	invalidValue, invalidValueHeaders := test.CSVUpload(suite.T(), "transactions.csv", "title,type,value,category\nRent,outcome,a lot,Housing\n")
	brokenQuote, brokenQuoteHeaders := test.CSVUpload(suite.T(), "transactions.csv", "title,type,value,category\nRent \"home,outcome,1200,Housing\n")

	tests := []struct {
		name    string
		body    *bytes.Buffer
		headers map[string]string
		status  int
		err     string
	}{
		{"No file", new(bytes.Buffer), map[string]string{}, http.StatusBadRequest, "you must send a file to this endpoint"},
		{"Wrong suffix", wrongSuffix, wrongSuffixHeaders, http.StatusBadRequest, "this endpoint only supports files of the following types: .csv"},
		{"Invalid type", invalidType, invalidTypeHeaders, http.StatusBadRequest, "the transaction type must be one of"},
		{"Invalid value", invalidValue, invalidValueHeaders, http.StatusBadRequest, "the value of the transaction is not a valid number"},
		{"Broken quote", brokenQuote, brokenQuoteHeaders, http.StatusBadRequest, "error in line 2 of the CSV"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			cfg := test.Config(suite.T())

			recorder := test.RequestWithConfig(suite.T(), cfg, http.MethodPost, "http://example.com/v1/import", tt.body, tt.headers)
			test.AssertHTTPStatus(suite.T(), &recorder, tt.status)

			var response v1.ImportResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Require().NotNil(response.Error)
			suite.Assert().Contains(*response.Error, tt.err)

			// Failed uploads are not kept
			entries, err := os.ReadDir(cfg.UploadDir)
			suite.Require().Nil(err)
			suite.Assert().Len(entries, 0)

			var count int64
			models.DB.Model(&models.Transaction{}).Count(&count)
			suite.Assert().Equal(int64(0), count)
		})
	}
}

func (suite *TestSuiteStandard) TestImportDatabaseClosed() {
	body, headers := test.LoadTestFile(suite.T(), "transactions.csv")
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
