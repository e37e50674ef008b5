package app

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var (
	ErrNoJSON  = errors.New("no JSON object in completion")
	ErrBadJSON = errors.New("malformed JSON in completion")
	ErrSchema  = errors.New("completion JSON does not match schema")
)

// ExtractJSON locates a JSON object in free-form completion text (greedy:
// first '{' to last '}'), validates it against schema when one is given,
// and unmarshals into dst. Nested braces in surrounding prose can corrupt
// the span; a corrupted span fails wholesale — dst is never partially
// populated.
func ExtractJSON(text string, schema *gojsonschema.Schema, dst any) error {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return ErrNoJSON
	}
	raw := text[start : end+1]
	if !json.Valid([]byte(raw)) {
		return ErrBadJSON
	}
	if schema != nil {
		res, err := schema.Validate(gojsonschema.NewStringLoader(raw))
		if err != nil {
			return ErrBadJSON
		}
		if !res.Valid() {
			return ErrSchema
		}
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return ErrBadJSON
	}
	return nil
}
