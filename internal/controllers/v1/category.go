package v1

import (
	"net/http"

	"github.com/envelope-zero/transaction-import/internal/httputil"
	"github.com/envelope-zero/transaction-import/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", GetCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.WithContext(c).First(&models.Category{}, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	CategoryListResponse
// @Failure		500		{object}	CategoryListResponse
// @Router			/v1/categories [get]
// @Param			title	query	string	false	"Filter by title"
// @Param			offset	query	uint	false	"The offset of the first Category returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Categories to return. Defaults to 50."
func GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.WithContext(c).Order("title ASC")
	if filter.Title != "" {
		q = q.Where(&models.Category{Title: filter.Title})
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Categories and set the limit
	limit := 50
	if c.Query("limit") != "" {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var categories []models.Category
	err := q.Find(&categories).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Failure		500	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [get]
func GetCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	var category models.Category
	err = models.DB.WithContext(c).First(&category, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{
			Error: &s,
		})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}
