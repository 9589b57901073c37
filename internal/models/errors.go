package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrCategoryTitleNotUnique   = errors.New("the category title must be unique")
	ErrTransactionTypeInvalid   = errors.New("the transaction type must be one of \"income\", \"outcome\"")
	ErrTransactionValueNegative = errors.New("the transaction value must not be negative")
)
