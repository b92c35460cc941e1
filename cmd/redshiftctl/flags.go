/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/spf13/pflag"
)

// dateTimeValue accepts RFC 3339 timestamps and the other layouts strfmt knows.
type dateTimeValue time.Time

func (v *dateTimeValue) String() string {
	if time.Time(*v).IsZero() {
		return ""
	}
	return strfmt.DateTime(*v).String()
}

func (v *dateTimeValue) Set(s string) error {
	dt, err := strfmt.ParseDateTime(s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	*v = dateTimeValue(time.Time(dt).UTC())
	return nil
}

func (v *dateTimeValue) Type() string {
	return "datetime"
}

// bindParams registers one flag per `flag`-tagged field of the struct params
// points to. Optional (pointer) fields are only set when their flag was given;
// the returned function copies them in and must run after parsing.
func bindParams(fs *pflag.FlagSet, params any) func(*pflag.FlagSet) {
	rv := reflect.ValueOf(params)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("bindParams: %T is not a pointer to a struct", params))
	}
	rv = rv.Elem()
	rt := rv.Type()

	var deferred []func(*pflag.FlagSet)
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name := field.Tag.Get("flag")
		if name == "" || !field.IsExported() {
			continue
		}
		help := field.Tag.Get("help")
		if isRequired(field.Tag.Get("validate")) {
			help += " (required)"
		}

		fv := rv.Field(i)
		if field.Type.Kind() != reflect.Pointer {
			if !bindValue(fs, name, help, fv.Addr().Interface()) {
				panic(fmt.Sprintf("bindParams: unsupported type %s for --%s", field.Type, name))
			}
			continue
		}

		staging := reflect.New(field.Type.Elem())
		if !bindValue(fs, name, help, staging.Interface()) {
			panic(fmt.Sprintf("bindParams: unsupported type %s for --%s", field.Type, name))
		}
		deferred = append(deferred, func(fs *pflag.FlagSet) {
			if fs.Changed(name) {
				fv.Set(staging)
			}
		})
	}

	return func(fs *pflag.FlagSet) {
		for _, fn := range deferred {
			fn(fs)
		}
	}
}

func bindValue(fs *pflag.FlagSet, name, help string, ptr any) bool {
	switch p := ptr.(type) {
	case *string:
		fs.StringVar(p, name, *p, help)
	case *[]string:
		fs.StringSliceVar(p, name, nil, help)
	case *bool:
		fs.BoolVar(p, name, false, help)
	case *int32:
		fs.Int32Var(p, name, 0, help)
	case *int64:
		fs.Int64Var(p, name, 0, help)
	case *map[string]string:
		fs.StringToStringVar(p, name, nil, help)
	case *time.Time:
		fs.Var((*dateTimeValue)(p), name, help)
	default:
		return false
	}
	return true
}

func isRequired(tag string) bool {
	return slices.Contains(strings.Split(tag, ","), "required")
}
