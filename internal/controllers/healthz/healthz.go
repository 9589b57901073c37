package healthz

import (
	"net/http"

	"github.com/envelope-zero/transaction-import/internal/httputil"
	"github.com/envelope-zero/transaction-import/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

type Response struct {
	Error string `json:"error" example:"The database cannot be accessed"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	Response
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c)
	}

	if err != nil {
		log.Error().Err(err).Msg("health check failed")
		c.JSON(http.StatusInternalServerError, Response{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
