package validator

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Translation keys of the built-in messages.
const (
	KeyNotNull                  = "validation.not_null"
	KeyNotEmpty                 = "validation.not_empty"
	KeyGreaterThan              = "validation.greater_than"
	KeyGreaterThanOrEqual       = "validation.greater_than_or_equal"
	KeyLessThan                 = "validation.less_than"
	KeyLessThanOrEqual          = "validation.less_than_or_equal"
	KeyInRange                  = "validation.in_range"
	KeyLengthGreaterThan        = "validation.length_greater_than"
	KeyLengthGreaterThanOrEqual = "validation.length_greater_than_or_equal"
	KeyLengthLessThan           = "validation.length_less_than"
	KeyLengthLessThanOrEqual    = "validation.length_less_than_or_equal"
	KeyLengthEqual              = "validation.length_equal"
	KeyLengthInRange            = "validation.length_in_range"
)

var defaultMessages = map[string]string{
	KeyNotNull:                  "value can't be nil",
	KeyNotEmpty:                 "value can't be empty",
	KeyGreaterThan:              "value must be greater than {min}",
	KeyGreaterThanOrEqual:       "value must be greater than or equal to {min}",
	KeyLessThan:                 "value must be less than {max}",
	KeyLessThanOrEqual:          "value must be less than or equal to {max}",
	KeyInRange:                  "value must be in range [{min}, {max}]",
	KeyLengthGreaterThan:        "length must be greater than {min}",
	KeyLengthGreaterThanOrEqual: "length must be greater than or equal to {min}",
	KeyLengthLessThan:           "length must be less than {max}",
	KeyLengthLessThanOrEqual:    "length must be less than or equal to {max}",
	KeyLengthEqual:              "length must be equal to {min}",
	KeyLengthInRange:            "length must be in range [{min}, {max}]",
}

type catalog struct {
	mu        sync.RWMutex
	templates map[string]string
}

var messages = &catalog{templates: maps.Clone(defaultMessages)}

// render substitutes {name} placeholders in the template stored under key.
func (c *catalog) render(key string, values map[string]any) string {
	c.mu.RLock()
	tmpl := c.templates[key]
	c.mu.RUnlock()

	if len(values) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}

	pairs := make([]string, 0, 2*len(values))
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// LoadMessages overrides message templates from a YAML document that maps
// translation keys to templates:
//
//	validation.not_null: "{field} is required"
//	validation.greater_than: "{field} must exceed {min}"
//
// Keys not listed keep their current template. Unknown keys reject the whole document.
func LoadMessages(r io.Reader) error {
	var overrides map[string]string
	if err := yaml.NewDecoder(r).Decode(&overrides); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.Join(ErrInvalidMessages, err)
	}

	for key, tmpl := range overrides {
		if _, ok := defaultMessages[key]; !ok {
			return fmt.Errorf("%w: unknown key %q", ErrInvalidMessages, key)
		}
		if strings.TrimSpace(tmpl) == "" {
			return fmt.Errorf("%w: empty template for %q", ErrInvalidMessages, key)
		}
	}

	messages.mu.Lock()
	maps.Copy(messages.templates, overrides)
	messages.mu.Unlock()

	return nil
}

// ResetMessages restores the built-in templates.
func ResetMessages() {
	messages.mu.Lock()
	messages.templates = maps.Clone(defaultMessages)
	messages.mu.Unlock()
}

// Message returns the current template for key.
func Message(key string) string {
	messages.mu.RLock()
	defer messages.mu.RUnlock()
	return messages.templates[key]
}
