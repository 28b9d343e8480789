// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seed

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"contenthub/internal/models"
)

// ErrInvalidSpec is returned, wrapped with the offending field, when seed
// input fails validation. No store call is made in that case.
var ErrInvalidSpec = errors.New("invalid seed spec")

// CategorySpec describes the category a seed run ensures.
type CategorySpec struct {
	Name        string `yaml:"name" validate:"required,notblank"`
	Description string `yaml:"description"`
	AccentColor string `yaml:"accent_color" validate:"accent"`
	IsFree      bool   `yaml:"is_free"`
}

// ContentSpec describes one content item a seed run ensures. An empty
// MediaType means text.
type ContentSpec struct {
	Title     string           `yaml:"title" validate:"required,notblank"`
	Body      string           `yaml:"body"`
	Caption   string           `yaml:"caption"`
	MediaType models.MediaType `yaml:"media_type" validate:"omitempty,mediatype"`
	MediaURL  string           `yaml:"media_url"`
}

var accentPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		return name
	})
	_ = v.RegisterValidation("accent", func(fl validator.FieldLevel) bool {
		return accentPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("mediatype", func(fl validator.FieldLevel) bool {
		return models.MediaType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate checks a category spec and its content specs.
func Validate(cat CategorySpec, items []ContentSpec) error {
	if err := validate.Struct(cat); err != nil {
		return specError("category", err)
	}
	for i := range items {
		if err := validate.Struct(items[i]); err != nil {
			return specError(fmt.Sprintf("content[%d]", i), err)
		}
	}
	return nil
}

func specError(where string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "accent":
			return fmt.Errorf("%w: %s.%s must be a #RRGGBB color, got %q", ErrInvalidSpec, where, fe.Field(), fe.Value())
		case "mediatype":
			return fmt.Errorf("%w: %s.%s must be one of [text image video], got %q", ErrInvalidSpec, where, fe.Field(), fe.Value())
		default:
			return fmt.Errorf("%w: %s.%s is required", ErrInvalidSpec, where, fe.Field())
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrInvalidSpec, where, err)
}
