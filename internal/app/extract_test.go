package app_test

import (
	"errors"
	"testing"

	"github.com/xeipuuv/gojsonschema"

	"relief_ai/internal/app"
)

var testSchema = func() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(`{
	  "type": "object",
	  "required": ["name", "count"],
	  "properties": {
	    "name": {"type": "string"},
	    "count": {"type": "integer"}
	  }
	}`))
	if err != nil {
		panic(err)
	}
	return s
}()

type testPayload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestExtractJSON_ObjectBuriedInProse(t *testing.T) {
	text := "Sure! Here is the result you asked for:\n```json\n{\"name\": \"tomatoes\", \"count\": 3}\n```\nLet me know if you need anything else."
	var p testPayload
	if err := app.ExtractJSON(text, testSchema, &p); err != nil {
		t.Fatalf("err: %v", err)
	}
	if p.Name != "tomatoes" || p.Count != 3 {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestExtractJSON_NoObject(t *testing.T) {
	var p testPayload
	err := app.ExtractJSON("no structured content here", testSchema, &p)
	if !errors.Is(err, app.ErrNoJSON) {
		t.Fatalf("want ErrNoJSON, got %v", err)
	}
}

func TestExtractJSON_MalformedSpan(t *testing.T) {
	// Greedy first-{/last-} scan: trailing brace in prose corrupts the span.
	text := `{"name": "x", "count": 1} and then some {unbalanced prose}`
	var p testPayload
	err := app.ExtractJSON(text, testSchema, &p)
	if !errors.Is(err, app.ErrBadJSON) {
		t.Fatalf("want ErrBadJSON, got %v", err)
	}
	if p.Name != "" || p.Count != 0 {
		t.Fatalf("dst partially populated on failure: %+v", p)
	}
}

func TestExtractJSON_SchemaMismatch(t *testing.T) {
	var p testPayload
	err := app.ExtractJSON(`{"name": "x"}`, testSchema, &p)
	if !errors.Is(err, app.ErrSchema) {
		t.Fatalf("want ErrSchema, got %v", err)
	}
}

func TestExtractJSON_NilSchemaSkipsValidation(t *testing.T) {
	var p testPayload
	if err := app.ExtractJSON(`{"name": "x"}`, nil, &p); err != nil {
		t.Fatalf("err: %v", err)
	}
	if p.Name != "x" {
		t.Fatalf("unexpected payload: %+v", p)
	}
}
