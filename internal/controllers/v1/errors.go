package v1

import (
	"errors"
	"net/http"

	"github.com/envelope-zero/transaction-import/internal/importer"
	"github.com/envelope-zero/transaction-import/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, importer.ErrCleanup) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)
