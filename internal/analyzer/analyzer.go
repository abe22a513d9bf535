package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/ljens/makeclass/internal/config"
	"github.com/ljens/makeclass/internal/errors"
	"github.com/ljens/makeclass/internal/models"
)

// Analyzer turns a parsed JSON object into a ClassDef: one field per
// top-level key, in source order, with a snake_cased name and an
// inferred primitive kind.
type Analyzer struct {
	// config holds configuration settings for analysis
	config *config.Config
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		config: config.NewConfig(), // Use default config if none provided
	}
}

// NewAnalyzerWithConfig creates a new Analyzer instance with custom configuration.
func NewAnalyzerWithConfig(cfg *config.Config) *Analyzer {
	return &Analyzer{
		config: cfg,
	}
}

// Analyze validates the root shape and builds the class definition.
// The class name falls back to the configured default when empty and is
// pascal-cased.
func (a *Analyzer) Analyze(ir models.IntermediateRepresentation, className string) (models.ClassDef, error) {
	if className == "" {
		className = a.config.ClassName
	}
	if className == "" {
		className = config.DefaultClassName
	}

	obj, ok := ir.Root.(models.JSONObject)
	if !ir.RootIsObject || !ok {
		return models.ClassDef{}, errors.NewInvalidInputError(
			fmt.Sprintf("expected a JSON object at the top level, got %s", describeValue(ir.Root)),
			errors.ErrNotAnObject,
		)
	}

	classDef := models.ClassDef{
		Name:   toClassName(className),
		Fields: make([]models.Field, 0, len(obj)),
	}

	for _, member := range obj {
		classDef.Fields = append(classDef.Fields, models.Field{
			JSONKey: member.Key,
			Name:    a.fieldName(member.Key),
			Kind:    inferKind(member.Value),
		})
	}

	return classDef, nil
}

// fieldName returns the field name for a JSON key: an explicit config
// mapping if one exists, otherwise the snake_cased key.
func (a *Analyzer) fieldName(jsonKey string) string {
	if mapped, ok := a.config.FieldMapping(jsonKey); ok {
		return mapped
	}
	return ToSnakeCase(jsonKey)
}

// inferKind classifies a single JSON value. No cross-field inference:
// each value stands alone.
func inferKind(value models.JSONValue) models.TypeKind {
	switch v := value.(type) {
	case nil:
		return models.Any
	case bool:
		return models.Boolean
	case string:
		return models.String
	case json.Number:
		return classifyNumber(v)
	case models.JSONObject, models.JSONArray:
		// Nested values are not recursed into for field generation.
		return models.Unsupported
	default:
		return models.Unsupported
	}
}

// classifyNumber distinguishes integer from float literals by the text
// of the literal: a decimal point or exponent makes it a float,
// anything else is an integer. Parsing through Int64 would misclassify
// integers wider than 64 bits, which JSON allows.
func classifyNumber(num json.Number) models.TypeKind {
	if strings.ContainsAny(num.String(), ".eE") {
		return models.Float
	}
	return models.Integer
}

// ToSnakeCase converts a camelCase, PascalCase, or kebab-case key to
// snake_case: an underscore is inserted before an uppercase letter that
// follows a lowercase letter or digit, or that precedes a lowercase
// letter (so acronym runs stay together: "APIKey" -> "api_key"). Never
// at the start. Hyphens become underscores and the result is lowercased.
//
// strcase.ToSnake is not used here: it also breaks at letter/digit
// boundaries, turning "player1Name" into "player_1_name" where
// "player1_name" is wanted.
func ToSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	runes := []rune(s)
	for i, r := range runes {
		if r == '-' {
			b.WriteRune('_')
			continue
		}
		if r >= 'A' && r <= 'Z' && i > 0 {
			prev := runes[i-1]
			prevBreaks := (prev >= 'a' && prev <= 'z') || (prev >= '0' && prev <= '9')
			nextBreaks := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if (prevBreaks || nextBreaks) && prev != '_' && prev != '-' {
				b.WriteRune('_')
			}
		}
		b.WriteRune(toLower(r))
	}

	return b.String()
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// toClassName converts a user-supplied name to a PascalCase identifier.
func toClassName(name string) string {
	pascal := strcase.ToCamel(name)
	if pascal == "" {
		// Purely symbolic names (e.g. "_") don't survive conversion.
		return config.DefaultClassName
	}
	return pascal
}

// describeValue names a JSON value's kind for error messages.
func describeValue(value models.JSONValue) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case string:
		return "a string"
	case json.Number:
		return "a number"
	case models.JSONArray:
		return "an array"
	case models.JSONObject:
		return "an object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
