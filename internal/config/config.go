package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ljens/makeclass/internal/models"
)

// Config represents the complete configuration for makeclass
type Config struct {
	ClassName string       `yaml:"class_name"`
	Types     TypesConfig  `yaml:"types"`
	Naming    NamingConfig `yaml:"naming"`
	Output    OutputConfig `yaml:"output"`
}

// TypesConfig controls how each inferred kind is spelled in the output
type TypesConfig struct {
	Integer string `yaml:"integer"`
	Float   string `yaml:"float"`
	String  string `yaml:"string"`
	Boolean string `yaml:"boolean"`
	Any     string `yaml:"any"`
}

// NamingConfig controls field naming
type NamingConfig struct {
	// FieldMappings maps exact JSON keys to field names, bypassing
	// snake_case normalization.
	FieldMappings map[string]string `yaml:"field_mappings"`
}

// OutputConfig controls output generation options
type OutputConfig struct {
	// IncludeImports emits the import preamble above the class definition.
	IncludeImports bool `yaml:"include_imports"`
}

// DefaultClassName is used when no class name is supplied.
const DefaultClassName = "A"

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		ClassName: DefaultClassName,
		Types: TypesConfig{
			Integer: "int",
			Float:   "float",
			String:  "str",
			Boolean: "bool",
			Any:     "Any",
		},
		Naming: NamingConfig{
			FieldMappings: make(map[string]string),
		},
		Output: OutputConfig{
			IncludeImports: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Naming.FieldMappings == nil {
		cfg.Naming.FieldMappings = make(map[string]string)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".makeclass.yml", ".makeclass.yaml", "makeclass.yml", "makeclass.yaml"}

	// Start from current directory
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		// Move up one directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// TypeName returns the configured spelling for an inferred kind.
// Null and nested values both render as the opaque type.
func (c *Config) TypeName(kind models.TypeKind) string {
	switch kind {
	case models.Integer:
		return c.Types.Integer
	case models.Float:
		return c.Types.Float
	case models.String:
		return c.Types.String
	case models.Boolean:
		return c.Types.Boolean
	case models.Any, models.Unsupported:
		return c.Types.Any
	default:
		return c.Types.Any
	}
}

// FieldMapping returns the explicit field name for a JSON key, if one is
// configured.
func (c *Config) FieldMapping(jsonKey string) (string, bool) {
	mapped, ok := c.Naming.FieldMappings[jsonKey]
	return mapped, ok
}
