// Package forms declares the per-entity field rules the modals enforce before
// anything touches the network, and turns a validated form buffer into the
// payload the backend expects.
package forms

import (
	"fmt"
	"strconv"
	"strings"
)

type FieldKind int

const (
	Text FieldKind = iota
	Number
	Flag
)

// Field is one rule in an entity schema. OverrideOnly marks fields whose
// empty value means "leave the stored value alone" (image keys): they start
// blank on edit and are dropped from the payload when untouched.
type Field struct {
	Name         string
	Label        string
	Kind         FieldKind
	Required     bool
	Min          float64
	HasMin       bool
	OneOf        []string
	Default      string
	OverrideOnly bool
}

// Schema is the data-driven description of one entity's form.
type Schema struct {
	Fields        []Field
	HasAttachment bool
	DisplayFields []string
}

// ValidationErrors carries one human-readable message per invalid field,
// keyed by field name for inline display.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for name, msg := range v {
		parts = append(parts, name+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate runs synchronously against the form buffer. A nil result means the
// values may be submitted. Non-numeric text in a number field is a validation
// failure here, never a fault later.
func (s Schema) Validate(values map[string]string) ValidationErrors {
	errs := ValidationErrors{}
	for _, field := range s.Fields {
		raw := strings.TrimSpace(values[field.Name])
		if raw == "" {
			if field.Required {
				errs[field.Name] = field.Label + " is required"
			}
			continue
		}

		switch field.Kind {
		case Number:
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				errs[field.Name] = field.Label + " must be a number"
				continue
			}
			if field.HasMin && parsed < field.Min {
				errs[field.Name] = fmt.Sprintf("%s must be at least %g", field.Label, field.Min)
			}
		case Flag:
			if _, err := strconv.ParseBool(raw); err != nil {
				errs[field.Name] = field.Label + " must be true or false"
			}
		case Text:
			if len(field.OneOf) > 0 && !contains(field.OneOf, raw) {
				errs[field.Name] = field.Label + " must be one of " + strings.Join(field.OneOf, ", ")
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Payload builds the request body from validated values. Empty fields are
// omitted entirely, so an untouched override key never clears the stored
// value and audit fields or ids never leak into the request.
func (s Schema) Payload(values map[string]string) map[string]interface{} {
	payload := make(map[string]interface{}, len(s.Fields))
	for _, field := range s.Fields {
		raw := strings.TrimSpace(values[field.Name])
		if raw == "" {
			continue
		}
		switch field.Kind {
		case Number:
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			payload[field.Name] = parsed
		case Flag:
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				continue
			}
			payload[field.Name] = parsed
		default:
			payload[field.Name] = raw
		}
	}
	return payload
}

// Defaults is the buffer a create session starts from.
func (s Schema) Defaults() map[string]string {
	values := make(map[string]string, len(s.Fields))
	for _, field := range s.Fields {
		values[field.Name] = field.Default
	}
	return values
}

func contains(list []string, value string) bool {
	for _, candidate := range list {
		if candidate == value {
			return true
		}
	}
	return false
}
