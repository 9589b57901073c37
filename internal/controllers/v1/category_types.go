package v1

import (
	"fmt"

	"github.com/envelope-zero/transaction-import/internal/models"
	"github.com/gin-gonic/gin"
)

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`                // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions for this category
}

type Category struct {
	models.Category
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		Category: model,
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of Categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Title  string `form:"title"`  // Exact title of the category
	Offset uint   `form:"offset"` // The offset of the first Category returned
	Limit  int    `form:"limit"`  // Maximum number of Categories to return
}
