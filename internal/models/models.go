package models

// JSONValue is a generic type to represent any JSON value.
// This can be a string, json.Number, boolean, null, object, or array.
type JSONValue interface{}

// Member is a single key/value pair of a JSON object.
type Member struct {
	Key   string
	Value JSONValue
}

// JSONObject represents a JSON object as an ordered list of members.
// A map would lose the key order of the source text, and field order in
// the generated class must follow it.
type JSONObject []Member

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// IntermediateRepresentation is a structure to hold the parsed JSON data
// in a way that's easy for the analyzer to work with.
type IntermediateRepresentation struct {
	Root         JSONValue
	RootIsObject bool // True if the root of the JSON is an object
}

// TypeKind classifies a JSON value into one of the primitive field types
// the generator knows how to render.
type TypeKind int

const (
	Integer TypeKind = iota
	Float
	String
	Boolean
	// Any is the documented fallback for null values.
	Any
	// Unsupported covers nested objects and arrays, which are not recursed
	// into. They render the same as Any and never fail a run.
	Unsupported
)

// Field is one generated class field: the original JSON key, its
// normalized name and the inferred kind. Order is positional within
// ClassDef.Fields.
type Field struct {
	JSONKey string
	Name    string
	Kind    TypeKind
}

// ClassDef is a complete class definition ready for rendering.
type ClassDef struct {
	Name   string
	Fields []Field
}
