// Package uuid wraps github.com/google/uuid so that IDs can be bound from
// URIs and query strings by gin.
package uuid

import (
	"errors"

	google_uuid "github.com/google/uuid"
)

var ErrInvalid = errors.New("the specified resource ID is not a valid UUID")

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

// UnmarshalParam implements gin's BindUnmarshaler.
//
// An empty string is parsed to the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return ErrInvalid
	}

	*u = UUID{parsed}
	return nil
}
