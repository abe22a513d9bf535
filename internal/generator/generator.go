package generator

import (
	"bytes"
	"fmt"

	"github.com/ljens/makeclass/internal/config"
	"github.com/ljens/makeclass/internal/models"
)

// Generator renders a ClassDef as a dataclass definition.
type Generator struct {
	config *config.Config
}

// NewGenerator creates a new Generator instance
func NewGenerator() *Generator {
	return &Generator{config: config.NewConfig()}
}

// NewGeneratorWithConfig creates a new Generator instance with custom configuration.
func NewGeneratorWithConfig(cfg *config.Config) *Generator {
	return &Generator{config: cfg}
}

// Generate renders the class definition: decorator, class line, and one
// field line per field in order. A class with no fields gets a pass body.
func (g *Generator) Generate(classDef models.ClassDef) (string, error) {
	if classDef.Name == "" {
		return "", fmt.Errorf("class definition has no name")
	}

	var buf bytes.Buffer

	if g.config.Output.IncludeImports {
		g.writeImports(&buf, classDef)
	}

	buf.WriteString("@dataclass\n")
	buf.WriteString(fmt.Sprintf("class %s:\n", classDef.Name))

	if len(classDef.Fields) == 0 {
		buf.WriteString("    pass\n")
		return buf.String(), nil
	}

	for _, field := range classDef.Fields {
		buf.WriteString(fmt.Sprintf("    %s: %s\n", field.Name, g.config.TypeName(field.Kind)))
	}

	return buf.String(), nil
}

// writeImports emits the import preamble. The typing import is only
// needed when some field renders as the default Any spelling; a custom
// spelling is the user's to import.
func (g *Generator) writeImports(buf *bytes.Buffer, classDef models.ClassDef) {
	buf.WriteString("from dataclasses import dataclass\n")
	if hasOpaqueField(classDef) && g.config.Types.Any == "Any" {
		buf.WriteString("from typing import Any\n")
	}
	buf.WriteString("\n\n")
}

func hasOpaqueField(classDef models.ClassDef) bool {
	for _, field := range classDef.Fields {
		if field.Kind == models.Any || field.Kind == models.Unsupported {
			return true
		}
	}
	return false
}
