package v1

import (
	"net/http"

	"github.com/envelope-zero/transaction-import/internal/httputil"
	"github.com/envelope-zero/transaction-import/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`     // URL of Category collection endpoint
	Import       string `json:"import" example:"https://example.com/api/v1/import"`             // URL of the import endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of Transaction collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Categories:   url + "/v1/categories",
			Import:       url + "/v1/import",
			Transactions: url + "/v1/transactions",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all categories and transactions
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	// Foreign keys are checked during cleanup,
	// add new models *before* any of the models
	// they reference
	resources := []any{
		&models.Transaction{},
		&models.Category{},
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.WithContext(c).Begin()

	for _, model := range resources {
		err := tx.Where("true").Delete(model).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{
				Error: err.Error(),
			})
			tx.Rollback()
			return
		}
	}

	err = tx.Commit().Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
