package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/envelope-zero/transaction-import/internal/httputil"
	"github.com/envelope-zero/transaction-import/internal/importer"
	"github.com/envelope-zero/transaction-import/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
)

// importFilePattern is the pattern uploaded file names must match.
const importFilePattern = "*.csv"

type ImportResponse struct {
	Data  []Transaction `json:"data"`                                                    // List of the created transactions
	Error *string       `json:"error" example:"the transaction value must not be negative"` // The error, if any occurred
}

// RegisterImportRoutes registers the routes for imports.
//
// Uploaded files are stored in uploadDir until they are imported. If uploadDir
// is empty, the default directory for temporary files is used.
func RegisterImportRoutes(r *gin.RouterGroup, uploadDir string) {
	r.OPTIONS("", OptionsImport)
	r.POST("", ImportCSV(uploadDir))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// ImportCSV returns the handler for CSV imports.
//
// @Summary		Import CSV
// @Description	Imports transactions from a CSV file with the columns title, type, value and category. The first line is ignored.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Failure		500		{object}	ImportResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import [post]
func ImportCSV(uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path, err := saveUploadedFile(c, uploadDir)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ImportResponse{
				Error: &e,
			})
			return
		}

		store := models.NewStore(models.DB)
		logger := log.Logger.With().Str("request-id", requestid.Get(c)).Logger()

		transactions, err := importer.New(store, store, importer.WithLogger(logger)).Import(c, path)
		if err != nil {
			// The upload is only needed for this request
			if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				logger.Error().Err(rmErr).Str("file", path).Msg("could not remove uploaded file")
			}

			e := err.Error()
			c.JSON(status(err), ImportResponse{
				Error: &e,
			})
			return
		}

		data := make([]Transaction, 0, len(transactions))
		for _, transaction := range transactions {
			data = append(data, newTransaction(c, transaction))
		}

		c.JSON(http.StatusCreated, ImportResponse{Data: data})
	}
}

// saveUploadedFile writes the uploaded file to a temporary file in dir and returns its path.
func saveUploadedFile(c *gin.Context, dir string) (string, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return "", errNoFilePost
	}

	if err != nil {
		return "", err
	}

	if !glob.Glob(importFilePattern, formFile.Filename) {
		return "", fmt.Errorf("%w: .csv", errWrongFileSuffix)
	}

	src, err := formFile.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.CreateTemp(dir, "import-*.csv")
	if err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrGeneral, err)
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	if err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("%w: %w", models.ErrGeneral, err)
	}

	return dst.Name(), nil
}
