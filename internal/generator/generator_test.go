package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljens/makeclass/internal/config"
	"github.com/ljens/makeclass/internal/models"
)

func TestGenerate_SimpleClass(t *testing.T) {
	classDef := models.ClassDef{
		Name: "Game",
		Fields: []models.Field{
			{JSONKey: "gameId", Name: "game_id", Kind: models.Integer},
			{JSONKey: "timeControl", Name: "time_control", Kind: models.String},
			{JSONKey: "rated", Name: "rated", Kind: models.Boolean},
			{JSONKey: "accuracy", Name: "accuracy", Kind: models.Float},
		},
	}

	result, err := NewGenerator().Generate(classDef)
	require.NoError(t, err)

	expected := `@dataclass
class Game:
    game_id: int
    time_control: str
    rated: bool
    accuracy: float
`
	assert.Equal(t, expected, result)
}

func TestGenerate_FieldOrderIsPreserved(t *testing.T) {
	classDef := models.ClassDef{
		Name: "A",
		Fields: []models.Field{
			{Name: "zebra", Kind: models.Integer},
			{Name: "apple", Kind: models.Integer},
			{Name: "mango", Kind: models.Integer},
		},
	}

	result, err := NewGenerator().Generate(classDef)
	require.NoError(t, err)

	expected := `@dataclass
class A:
    zebra: int
    apple: int
    mango: int
`
	assert.Equal(t, expected, result)
}

func TestGenerate_EmptyClass(t *testing.T) {
	classDef := models.ClassDef{Name: "Empty"}

	result, err := NewGenerator().Generate(classDef)
	require.NoError(t, err)

	expected := `@dataclass
class Empty:
    pass
`
	assert.Equal(t, expected, result)
}

func TestGenerate_OpaqueKinds(t *testing.T) {
	classDef := models.ClassDef{
		Name: "A",
		Fields: []models.Field{
			{Name: "note", Kind: models.Any},
			{Name: "nested", Kind: models.Unsupported},
		},
	}

	result, err := NewGenerator().Generate(classDef)
	require.NoError(t, err)

	expected := `@dataclass
class A:
    note: Any
    nested: Any
`
	assert.Equal(t, expected, result)
}

func TestGenerate_WithImports(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Output.IncludeImports = true

	classDef := models.ClassDef{
		Name: "A",
		Fields: []models.Field{
			{Name: "count", Kind: models.Integer},
		},
	}

	result, err := NewGeneratorWithConfig(cfg).Generate(classDef)
	require.NoError(t, err)

	expected := `from dataclasses import dataclass


@dataclass
class A:
    count: int
`
	assert.Equal(t, expected, result)
}

func TestGenerate_WithImportsAndOpaqueField(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Output.IncludeImports = true

	classDef := models.ClassDef{
		Name: "A",
		Fields: []models.Field{
			{Name: "note", Kind: models.Any},
		},
	}

	result, err := NewGeneratorWithConfig(cfg).Generate(classDef)
	require.NoError(t, err)

	expected := `from dataclasses import dataclass
from typing import Any


@dataclass
class A:
    note: Any
`
	assert.Equal(t, expected, result)
}

func TestGenerate_CustomTypeNames(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Types.Integer = "i64"
	cfg.Types.String = "string"

	classDef := models.ClassDef{
		Name: "A",
		Fields: []models.Field{
			{Name: "id", Kind: models.Integer},
			{Name: "name", Kind: models.String},
		},
	}

	result, err := NewGeneratorWithConfig(cfg).Generate(classDef)
	require.NoError(t, err)

	expected := `@dataclass
class A:
    id: i64
    name: string
`
	assert.Equal(t, expected, result)
}

func TestGenerate_MissingName(t *testing.T) {
	_, err := NewGenerator().Generate(models.ClassDef{})
	assert.Error(t, err)
}
