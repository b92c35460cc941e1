/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package validate checks operation parameter structs before any remote call.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	rserrors "github.com/suparena/redshiftctl/errors"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := tagName(fld, "flag"); name != "" {
				return "--" + name
			}
			return fld.Name
		})
		instance = v
	})
	return instance
}

// Struct validates params and returns one *errors.ValidationError per failing
// field, joined with errors.Join. Fields are named by their CLI flag when the
// struct carries a `flag` tag.
func Struct(params any) error {
	err := get().Struct(params)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return rserrors.NewValidationError("", err.Error())
	}

	errs := make([]error, len(ve))
	for i, fe := range ve {
		errs[i] = rserrors.NewValidationError(fe.Field(), buildMessage(fe))
	}
	return errors.Join(errs...)
}

func tagName(fld reflect.StructField, tag string) string {
	name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
	if name == "" || name == "-" {
		return ""
	}
	return name
}

func buildMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "a value is required"
	case "required_without":
		return fmt.Sprintf("a value is required when %s is not set", fe.Param())
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "excluded_with":
		return "cannot be combined with " + fe.Param()
	default:
		return "failed on " + fe.Tag() + " validation"
	}
}
