package app

import "github.com/xeipuuv/gojsonschema"

// One schema per gateway method. The prompts document the same shapes,
// and the fallback records must validate against them too, so callers
// see a single key set on both paths.

func mustSchema(doc string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic(err)
	}
	return s
}

var hospitalSchema = mustSchema(`{
  "type": "object",
  "required": ["hospitals", "summary"],
  "properties": {
    "hospitals": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "city", "available_beds", "specialties", "contact"],
        "properties": {
          "name": {"type": "string"},
          "city": {"type": "string"},
          "available_beds": {"type": "integer"},
          "specialties": {"type": "array", "items": {"type": "string"}},
          "contact": {"type": "string"}
        }
      }
    },
    "summary": {"type": "string"}
  }
}`)

var doctorSchema = mustSchema(`{
  "type": "object",
  "required": ["doctors", "summary"],
  "properties": {
    "doctors": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "specialty", "hospital", "years_experience", "availability"],
        "properties": {
          "name": {"type": "string"},
          "specialty": {"type": "string"},
          "hospital": {"type": "string"},
          "years_experience": {"type": "integer"},
          "availability": {"type": "string"}
        }
      }
    },
    "summary": {"type": "string"}
  }
}`)

var triageSchema = mustSchema(`{
  "type": "object",
  "required": ["severity", "recommended_ward", "immediate_actions", "summary"],
  "properties": {
    "severity": {"type": "string", "enum": ["critical", "urgent", "moderate", "low"]},
    "recommended_ward": {"type": "string"},
    "immediate_actions": {"type": "array", "items": {"type": "string"}},
    "summary": {"type": "string"}
  }
}`)

var shelterSchema = mustSchema(`{
  "type": "object",
  "required": ["allocations", "unplaced", "summary"],
  "properties": {
    "allocations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["shelter", "location", "capacity", "assigned"],
        "properties": {
          "shelter": {"type": "string"},
          "location": {"type": "string"},
          "capacity": {"type": "integer"},
          "assigned": {"type": "integer"}
        }
      }
    },
    "unplaced": {"type": "integer"},
    "summary": {"type": "string"}
  }
}`)

var planSchema = mustSchema(`{
  "type": "object",
  "required": ["allocation_plan", "human_summary"],
  "properties": {
    "allocation_plan": {"type": "string"},
    "human_summary": {"type": "string"}
  }
}`)

var dashboardSchema = mustSchema(`{
  "type": "object",
  "required": ["highlights", "risk_level", "summary"],
  "properties": {
    "highlights": {"type": "array", "items": {"type": "string"}},
    "risk_level": {"type": "string", "enum": ["high", "medium", "low"]},
    "summary": {"type": "string"}
  }
}`)
