package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"relief_ai/internal/domain"
)

// Prompt builders. Each documents the exact JSON shape the matching
// schema enforces and asks for a single object with no extra prose.

func hospitalPrompt(region string, needs []string) string {
	var parts []string
	parts = append(parts, "You are a disaster-relief hospital coordinator.")
	parts = append(parts, fmt.Sprintf("Region: %s", region))
	if len(needs) > 0 {
		parts = append(parts, fmt.Sprintf("Required capabilities: %s", strings.Join(needs, ", ")))
	}
	parts = append(parts, "\nRecommend up to 3 hospitals able to take relief patients now.")
	parts = append(parts, "Respond with exactly one JSON object and no extra text:")
	parts = append(parts, `{"hospitals":[{"name":"string","city":"string","available_beds":0,"specialties":["string"],"contact":"string"}],"summary":"string"}`)
	return strings.Join(parts, "\n")
}

func doctorPrompt(specialty, region string) string {
	var parts []string
	parts = append(parts, "You are a medical staffing coordinator for a relief network.")
	parts = append(parts, fmt.Sprintf("Specialty needed: %s", specialty))
	parts = append(parts, fmt.Sprintf("Region: %s", region))
	parts = append(parts, "\nMatch up to 3 available doctors.")
	parts = append(parts, "Respond with exactly one JSON object and no extra text:")
	parts = append(parts, `{"doctors":[{"name":"string","specialty":"string","hospital":"string","years_experience":0,"availability":"string"}],"summary":"string"}`)
	return strings.Join(parts, "\n")
}

func triagePrompt(report domain.TriageReport) string {
	var parts []string
	parts = append(parts, "You are a triage assistant at a relief clinic.")
	parts = append(parts, fmt.Sprintf("Patient age: %d", report.Age))
	parts = append(parts, fmt.Sprintf("Symptoms: %s", strings.Join(report.Symptoms, ", ")))
	if report.History != "" {
		parts = append(parts, fmt.Sprintf("History: %s", report.History))
	}
	parts = append(parts, "\nAssess severity and next steps. This is decision support, not a diagnosis.")
	parts = append(parts, "Respond with exactly one JSON object and no extra text:")
	parts = append(parts, `{"severity":"critical|urgent|moderate|low","recommended_ward":"string","immediate_actions":["string"],"summary":"string"}`)
	return strings.Join(parts, "\n")
}

func shelterPrompt(req domain.ShelterRequest) string {
	var parts []string
	parts = append(parts, "You are a shelter allocation coordinator.")
	parts = append(parts, fmt.Sprintf("Region: %s", req.Region))
	parts = append(parts, fmt.Sprintf("Families to place: %d", req.Families))
	if len(req.SpecialNeeds) > 0 {
		parts = append(parts, fmt.Sprintf("Special needs: %s", strings.Join(req.SpecialNeeds, ", ")))
	}
	parts = append(parts, "\nAllocate families to shelters; report any that cannot be placed.")
	parts = append(parts, "Respond with exactly one JSON object and no extra text:")
	parts = append(parts, `{"allocations":[{"shelter":"string","location":"string","capacity":0,"assigned":0}],"unplaced":0,"summary":"string"}`)
	return strings.Join(parts, "\n")
}

func planPrompt(rawReport, focus string) string {
	var parts []string
	parts = append(parts, "You are an expert supply chain logistics coordinator for a food relief network.")
	parts = append(parts, "Your goal is to minimize food waste and hunger by matching surplus to communities in need.")
	parts = append(parts, "Consider, in priority order: urgency, perishability, proximity, farmer economics, environmental efficiency.")
	parts = append(parts, fmt.Sprintf("\nPriority focus: %s", focus))
	parts = append(parts, "\nSurplus/demand report:")
	parts = append(parts, rawReport)
	parts = append(parts, "\nRespond with exactly one JSON object and no extra text:")
	parts = append(parts, `{"allocation_plan":"string","human_summary":"string"}`)
	return strings.Join(parts, "\n")
}

func dashboardPrompt(stats domain.DashboardStats) string {
	b, _ := json.Marshal(stats)
	var parts []string
	parts = append(parts, "You are an operations analyst for a food relief network.")
	parts = append(parts, "Current network statistics:")
	parts = append(parts, string(b))
	parts = append(parts, "\nSummarize the top operational risks and highlights.")
	parts = append(parts, "Respond with exactly one JSON object and no extra text:")
	parts = append(parts, `{"highlights":["string"],"risk_level":"high|medium|low","summary":"string"}`)
	return strings.Join(parts, "\n")
}
