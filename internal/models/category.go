package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category is a named grouping that transactions reference.
//
// Titles are unique, the comparison is the one of the database, which is
// case sensitive for sqlite.
type Category struct {
	DefaultModel
	Title string `json:"title" gorm:"uniqueIndex:category_title" example:"Groceries"` // Title of the category
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Title = strings.TrimSpace(c.Title)
	return nil
}
