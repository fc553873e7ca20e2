// Package validation checks the shape of request bodies before they reach a
// service. Schemas are plain values; no struct tags or reflection involved.
package validation

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/tidwall/gjson"
)

type Kind int

const (
	// String fields must be non-empty JSON strings.
	String Kind = iota
	// Integer fields must be positive whole JSON numbers. Range is not
	// checked here; an id no row can have is the service's concern.
	Integer
)

type Field struct {
	Name     string
	Kind     Kind
	Required bool
}

type Schema struct {
	Name   string
	Fields []Field
}

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries every violation found in a body.
type Error struct {
	Schema     string
	Violations []Violation
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Field == "" {
			msgs = append(msgs, v.Message)
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s %s", v.Field, v.Message))
	}
	return fmt.Sprintf("invalid %s body: %s", e.Schema, strings.Join(msgs, "; "))
}

var (
	ConsoleSchema = Schema{
		Name: "console",
		Fields: []Field{
			{Name: "name", Kind: String, Required: true},
		},
	}

	GameSchema = Schema{
		Name: "game",
		Fields: []Field{
			{Name: "title", Kind: String, Required: true},
			{Name: "consoleId", Kind: Integer, Required: true},
		},
	}
)

func (s Schema) hasField(name string) bool {
	for _, f := range s.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Validate parses body and checks it against the schema. Keys that the schema
// does not declare, or that appear more than once, are rejected.
func (s Schema) Validate(body []byte) (gjson.Result, error) {
	fail := func(violations ...Violation) (gjson.Result, error) {
		return gjson.Result{}, &Error{Schema: s.Name, Violations: violations}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return fail(Violation{Message: "body is required"})
	}
	if !gjson.ValidBytes(body) {
		return fail(Violation{Message: "body must be valid JSON"})
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return fail(Violation{Message: "body must be a JSON object"})
	}

	var violations []Violation
	seen := make(map[string]bool)
	doc.ForEach(func(key, _ gjson.Result) bool {
		name := key.String()
		switch {
		case seen[name]:
			violations = append(violations, Violation{Field: name, Message: "is duplicated"})
		case !s.hasField(name):
			violations = append(violations, Violation{Field: name, Message: "is not allowed"})
		}
		seen[name] = true
		return true
	})

	for _, f := range s.Fields {
		if msg := f.check(doc.Get(f.Name)); msg != "" {
			violations = append(violations, Violation{Field: f.Name, Message: msg})
		}
	}

	if len(violations) > 0 {
		return fail(violations...)
	}
	return doc, nil
}

func (f Field) check(v gjson.Result) string {
	if !v.Exists() {
		if f.Required {
			return "is required"
		}
		return ""
	}

	switch f.Kind {
	case String:
		if v.Type != gjson.String {
			return "must be a string"
		}
		if v.Str == "" {
			return "must not be empty"
		}
	case Integer:
		if v.Type != gjson.Number {
			return "must be a number"
		}
		if math.IsInf(v.Num, 0) || v.Num != math.Trunc(v.Num) || v.Num < 1 {
			return "must be a positive integer"
		}
	}
	return ""
}
