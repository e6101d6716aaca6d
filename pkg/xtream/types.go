package xtream

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

type Category struct {
	CategoryID   FlexString `json:"category_id" validate:"required"`
	CategoryName string     `json:"category_name" validate:"required"`
	ParentID     FlexInt    `json:"parent_id"`
}

// Validate reports whether the category carries an id and a name
func (c Category) Validate() error {
	return getValidator().Struct(c)
}

type Stream struct {
	Num                FlexInt    `json:"num"`
	StreamID           FlexInt    `json:"stream_id" validate:"required"`
	Name               string     `json:"name" validate:"required"`
	StreamType         string     `json:"stream_type"`
	StreamIcon         string     `json:"stream_icon"`
	Rating             FlexString `json:"rating"`
	Added              FlexInt    `json:"added" validate:"required"`
	CategoryID         FlexString `json:"category_id" validate:"required"`
	ContainerExtension string     `json:"container_extension"`
}

// Validate reports whether the stream has the fields needed to store it
func (s Stream) Validate() error {
	return getValidator().Struct(s)
}
