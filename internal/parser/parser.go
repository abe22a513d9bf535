package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors" // Standard errors package

	"github.com/ljens/makeclass/internal/errors"
	"github.com/ljens/makeclass/internal/models"
)

// Parse converts JSON data from an io.Reader into an IntermediateRepresentation.
// Objects are decoded through the token API so that member order follows the
// source text; encoding/json's map decoding would scramble it.
func Parse(reader io.Reader) (models.IntermediateRepresentation, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber() // Ensure numbers are read as json.Number

	rootValue, err := decodeValue(decoder)
	if err != nil {
		if stderrors.Is(err, io.EOF) { // io.EOF before any token means empty input
			return models.IntermediateRepresentation{}, errors.NewParseError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return models.IntermediateRepresentation{}, errors.NewParseError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
				errors.ErrInvalidJSON,
			)
		}
		if stderrors.Is(err, io.ErrUnexpectedEOF) {
			return models.IntermediateRepresentation{}, errors.NewParseError("unexpected end of JSON input", errors.ErrInvalidJSON)
		}
		return models.IntermediateRepresentation{}, errors.NewParseError("failed to decode JSON", err)
	}

	// Anything after the first JSON value is an error; a lone value per
	// input is the contract.
	if decoder.More() {
		return models.IntermediateRepresentation{}, errors.NewParseError("trailing data after first JSON value", errors.ErrMultipleJSON)
	}

	ir := models.IntermediateRepresentation{Root: rootValue}
	if _, ok := rootValue.(models.JSONObject); ok {
		ir.RootIsObject = true
	}

	return ir, nil
}

// decodeValue reads one complete JSON value from the decoder.
func decodeValue(dec *json.Decoder) (models.JSONValue, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			// ']' or '}' here would have been a syntax error from Token()
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	default:
		// string, json.Number, bool, or nil
		return t, nil
	}
}

// decodeObject reads object members in source order. Duplicate keys keep
// the first occurrence's position and take the last occurrence's value.
func decodeObject(dec *json.Decoder) (models.JSONObject, error) {
	obj := make(models.JSONObject, 0)
	seen := make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}

		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		if idx, dup := seen[key]; dup {
			obj[idx].Value = value
			continue
		}
		seen[key] = len(obj)
		obj = append(obj, models.Member{Key: key, Value: value})
	}

	// Consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return obj, nil
}

func decodeArray(dec *json.Decoder) (models.JSONArray, error) {
	arr := make(models.JSONArray, 0)

	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}

	// Consume the closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return arr, nil
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.IntermediateRepresentation, error) {
	// An empty string reader gives io.EOF to the first Token call, but a
	// whitespace-only string deserves the same specific error.
	if strings.TrimSpace(jsonString) == "" {
		return models.IntermediateRepresentation{}, errors.NewParseError("input string is empty or consists only of whitespace", errors.ErrEmptyInput)
	}
	reader := strings.NewReader(jsonString)
	return Parse(reader)
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.IntermediateRepresentation, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.IntermediateRepresentation{}, errors.NewIOError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		// Check if the file doesn't exist
		if os.IsNotExist(err) {
			return models.IntermediateRepresentation{}, errors.NewIOError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.IntermediateRepresentation{}, errors.NewIOError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	// Check for empty file before parsing
	stat, err := file.Stat()
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewIOError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return models.IntermediateRepresentation{}, errors.NewIOError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
