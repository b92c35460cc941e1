/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package output renders projected command results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/table"
	"gopkg.in/yaml.v3"
)

// Formatter writes a projected value. Slices render as one row or document
// entry per element.
type Formatter interface {
	Format(v any) error
}

// Create returns a formatter for the given format name.
func Create(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "table":
		return NewTableFormatter(w), nil
	case "json":
		return NewJSONFormatter(w), nil
	case "yaml":
		return NewYAMLFormatter(w), nil
	case "text":
		return NewTextFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: %v)", format, SupportedFormats())
	}
}

// SupportedFormats returns list of available format names.
func SupportedFormats() []string {
	return []string{"table", "json", "yaml", "text"}
}

// JSONFormatter writes indented JSON.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// Format writes v as JSON.
func (f *JSONFormatter) Format(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// YAMLFormatter writes YAML. Values go through their JSON form first so SDK
// structs keep their field names.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes v as YAML.
func (f *YAMLFormatter) Format(v any) error {
	generic, err := normalize(v)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(generic); err != nil {
		return err
	}
	return encoder.Close()
}

// TableFormatter renders rows with go-pretty. Columns are the union of the
// non-null top-level fields, nested values are shown as compact JSON.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// Format writes v as a table.
func (f *TableFormatter) Format(v any) error {
	rows, err := rowsOf(v)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(f.writer, "No results.")
		return err
	}

	columns := columnsOf(rows)
	tw := table.NewWriter()
	tw.SetOutputMirror(f.writer)

	header := make(table.Row, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	tw.AppendHeader(header)

	for _, r := range rows {
		row := make(table.Row, len(columns))
		for i, c := range columns {
			row[i] = cell(r[c])
		}
		tw.AppendRow(row)
	}
	tw.Render()
	return nil
}

// TextFormatter writes one tab separated line per element.
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// Format writes v as text.
func (f *TextFormatter) Format(v any) error {
	rows, err := rowsOf(v)
	if err != nil {
		return err
	}

	columns := columnsOf(rows)
	for _, r := range rows {
		fields := make([]string, len(columns))
		for i, c := range columns {
			fields[i] = cell(r[c])
		}
		if _, err := fmt.Fprintln(f.writer, strings.Join(fields, "\t")); err != nil {
			return err
		}
	}
	return nil
}

const scalarColumn = "Value"

func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("failed to decode output: %w", err)
	}
	return generic, nil
}

func rowsOf(v any) ([]map[string]any, error) {
	if v == nil {
		return nil, nil
	}
	rv := reflect.ValueOf(v)
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Pointer) && rv.IsNil() {
		return nil, nil
	}

	generic, err := normalize(v)
	if err != nil {
		return nil, err
	}

	items, ok := generic.([]any)
	if !ok {
		items = []any{generic}
	}

	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			rows = append(rows, m)
			continue
		}
		rows = append(rows, map[string]any{scalarColumn: item})
	}
	return rows, nil
}

func columnsOf(rows []map[string]any) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, r := range rows {
		for k, v := range r {
			if v == nil || seen[k] {
				continue
			}
			seen[k] = true
			columns = append(columns, k)
		}
	}
	sort.Strings(columns)
	return columns
}

func cell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}
