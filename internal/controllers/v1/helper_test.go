package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/envelope-zero/transaction-import/internal/controllers/v1"
	"github.com/envelope-zero/transaction-import/test"
	"github.com/stretchr/testify/require"
)

// importTestCSV imports content as a CSV file and returns the response.
func importTestCSV(t *testing.T, content string) v1.ImportResponse {
	body, headers := test.CSVUpload(t, "transactions.csv", content)

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(t, &recorder, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(t, &recorder, &response)
	require.Nil(t, response.Error)

	return response
}
