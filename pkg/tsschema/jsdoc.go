package tsschema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/JaimeStill/chat-api-docs/pkg/openapi"
)

// annotations holds what a JSDoc block contributes to a schema.
type annotations struct {
	description string
	minLength   *int
	maxLength   *int
	minItems    *int
	maxItems    *int
	minimum     *float64
	maximum     *float64
	pattern     string
	format      string
	deprecated  bool
	def         any
	example     any
}

func (a *annotations) empty() bool {
	if a == nil {
		return true
	}
	return a.description == "" &&
		a.minLength == nil && a.maxLength == nil &&
		a.minItems == nil && a.maxItems == nil &&
		a.minimum == nil && a.maximum == nil &&
		a.pattern == "" && a.format == "" && !a.deprecated &&
		a.def == nil && a.example == nil
}

// knownTags are the tags a schema can express. Inside a line only these
// start a new tag, so text such as "@username" stays where it is written.
var knownTags = map[string]bool{
	"minLength":  true,
	"maxLength":  true,
	"minItems":   true,
	"maxItems":   true,
	"minimum":    true,
	"maximum":    true,
	"pattern":    true,
	"format":     true,
	"deprecated": true,
	"default":    true,
	"example":    true,
}

// parseDoc reads a raw /** ... */ block. Tags other than the ones a schema
// can express (@see, @since, ...) are ignored.
func parseDoc(raw *string) (*annotations, error) {
	if raw == nil {
		return nil, nil
	}

	body := strings.TrimPrefix(*raw, "/**")
	body = strings.TrimRight(strings.TrimSuffix(body, "/"), "*")

	a := &annotations{}
	var text []string

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimLeft(line, "*"))
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "@") {
			i := nextTag(line)
			if i < 0 {
				text = append(text, line)
				continue
			}
			text = append(text, strings.TrimSpace(line[:i]))
			line = strings.TrimSpace(line[i:])
		}
		for _, tag := range splitTags(line) {
			if err := a.apply(tag[0], tag[1]); err != nil {
				return nil, err
			}
		}
	}

	a.description = strings.Join(text, "\n")
	if err := a.check(); err != nil {
		return nil, err
	}
	return a, nil
}

// nextTag returns the index of the first " @name" in line where name is a
// known tag followed by a space or the end of the line, or -1.
func nextTag(line string) int {
	for off := 0; ; {
		i := strings.Index(line[off:], " @")
		if i < 0 {
			return -1
		}
		at := off + i + 1
		name, _, _ := strings.Cut(line[at+1:], " ")
		if knownTags[name] {
			return at
		}
		off = at
	}
}

// splitTags breaks "@minLength 1 @maxLength 32" into name/value pairs.
// @pattern consumes the remainder of the line.
func splitTags(line string) [][2]string {
	var tags [][2]string
	for line != "" {
		line = strings.TrimPrefix(line, "@")
		name, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		if name == "pattern" {
			tags = append(tags, [2]string{name, rest})
			break
		}

		value := rest
		if i := nextTag(" " + rest); i >= 0 {
			value, rest = rest[:i-1], rest[i-1:]
		} else {
			rest = ""
		}
		tags = append(tags, [2]string{name, strings.TrimSpace(value)})
		line = rest
	}
	return tags
}

func (a *annotations) apply(name, value string) error {
	var err error
	switch name {
	case "minLength":
		a.minLength, err = intValue(name, value)
	case "maxLength":
		a.maxLength, err = intValue(name, value)
	case "minItems":
		a.minItems, err = intValue(name, value)
	case "maxItems":
		a.maxItems, err = intValue(name, value)
	case "minimum":
		a.minimum, err = floatValue(name, value)
	case "maximum":
		a.maximum, err = floatValue(name, value)
	case "pattern":
		if value == "" {
			return fmt.Errorf("%w: @pattern requires a value", ErrInvalidAnnotation)
		}
		a.pattern = value
	case "format":
		if value == "" {
			return fmt.Errorf("%w: @format requires a value", ErrInvalidAnnotation)
		}
		a.format = value
	case "deprecated":
		a.deprecated = true
	case "default":
		a.def = literalValue(value)
	case "example":
		a.example = literalValue(value)
	}
	return err
}

func (a *annotations) check() error {
	if a.minLength != nil && a.maxLength != nil && *a.minLength > *a.maxLength {
		return fmt.Errorf("%w: @minLength %d exceeds @maxLength %d", ErrInvalidAnnotation, *a.minLength, *a.maxLength)
	}
	if a.minItems != nil && a.maxItems != nil && *a.minItems > *a.maxItems {
		return fmt.Errorf("%w: @minItems %d exceeds @maxItems %d", ErrInvalidAnnotation, *a.minItems, *a.maxItems)
	}
	if a.minimum != nil && a.maximum != nil && *a.minimum > *a.maximum {
		return fmt.Errorf("%w: @minimum %v exceeds @maximum %v", ErrInvalidAnnotation, *a.minimum, *a.maximum)
	}
	return nil
}

// applyTo writes annotations onto s. A bare $ref cannot carry siblings in
// OpenAPI 3.0, so it is wrapped in allOf first.
func (a *annotations) applyTo(s *openapi.Schema) *openapi.Schema {
	if a.empty() {
		return s
	}
	if s.IsRef() {
		s = &openapi.Schema{AllOf: []*openapi.Schema{s}}
	}

	if a.description != "" {
		s.Description = a.description
	}
	if a.minLength != nil {
		s.MinLength = a.minLength
	}
	if a.maxLength != nil {
		s.MaxLength = a.maxLength
	}
	if a.minItems != nil {
		s.MinItems = a.minItems
	}
	if a.maxItems != nil {
		s.MaxItems = a.maxItems
	}
	if a.minimum != nil {
		s.Minimum = a.minimum
	}
	if a.maximum != nil {
		s.Maximum = a.maximum
	}
	if a.pattern != "" {
		s.Pattern = a.pattern
	}
	if a.format != "" {
		s.Format = a.format
	}
	if a.deprecated {
		s.Deprecated = true
	}
	if a.def != nil {
		s.Default = a.def
	}
	if a.example != nil {
		s.Example = a.example
	}
	return s
}

func intValue(name, value string) (*int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: @%s %q is not a non-negative integer", ErrInvalidAnnotation, name, value)
	}
	return &n, nil
}

func floatValue(name, value string) (*float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: @%s %q is not a number", ErrInvalidAnnotation, name, value)
	}
	return &f, nil
}

// literalValue decodes JSON literals and falls back to the raw text.
func literalValue(value string) any {
	var v any
	if err := json.Unmarshal([]byte(value), &v); err == nil {
		return v
	}
	return value
}
