package app

import (
	"fmt"
	"strings"

	"relief_ai/internal/domain"
)

// Static fallback records, one per gateway method. Served verbatim when
// the live path fails, so their key sets must match the prompt schemas.

var fallbackHospitals = domain.HospitalAdvice{
	Hospitals: []domain.Hospital{
		{Name: "Chennai General Hospital", City: "Chennai", AvailableBeds: 45, Specialties: []string{"emergency", "general medicine"}, Contact: "+91-44-2829-0100"},
		{Name: "Kanchipuram District Hospital", City: "Kanchipuram", AvailableBeds: 20, Specialties: []string{"pediatrics", "general surgery"}, Contact: "+91-44-2723-2050"},
	},
	Summary: "Two public hospitals with open relief capacity in the Chennai region.",
}

var fallbackDoctors = domain.DoctorMatches{
	Doctors: []domain.Doctor{
		{Name: "Dr. A. Lakshmi", Specialty: "emergency medicine", Hospital: "Chennai General Hospital", YearsExperience: 11, Availability: "on call"},
		{Name: "Dr. R. Srinivasan", Specialty: "pediatrics", Hospital: "Kanchipuram District Hospital", YearsExperience: 8, Availability: "weekdays"},
	},
	Summary: "Two doctors available for relief assignments in the Chennai region.",
}

var fallbackTriage = domain.TriageAssessment{
	Severity:         "moderate",
	RecommendedWard:  "general observation",
	ImmediateActions: []string{"record vitals", "hydration", "reassess within 2 hours"},
	Summary:          "Assessment unavailable; observe and reassess under standard protocol.",
}

var fallbackShelters = domain.ShelterPlan{
	Allocations: []domain.ShelterAllocation{
		{Shelter: "Northside Shelter", Location: "Chennai", Capacity: 150, Assigned: 120},
		{Shelter: "Community Center B", Location: "Chennai", Capacity: 100, Assigned: 80},
	},
	Unplaced: 0,
	Summary:  "Families distributed across the two open shelters with headroom remaining.",
}

var fallbackDashboard = domain.DashboardBrief{
	Highlights: []string{
		"inventory exceeds demand capacity this week",
		"one refrigerated truck in maintenance",
	},
	RiskLevel: "medium",
	Summary:   "Network operational; watch perishable stock against cold-chain transport availability.",
}

// demoReport drives the demo plan endpoint. Fixed input, deterministic
// builder: repeated calls produce identical plans.
const demoReport = "Warehouse A reports 200kg tomatoes and 150L milk nearing expiry; Northside Shelter requests any food for 150 people."

// DemoPlan renders the static allocation plan for the demo endpoint
// without touching the external service.
func DemoPlan() domain.PlanOutput {
	items := ExtractFoodItems(demoReport)
	impact := EstimateImpact(items)
	return BuildFallbackPlan("all", items, impact)
}

// BuildFallbackPlan renders an allocation plan from locally extracted
// food items when the live path fails. Deliberately timestamp-free so
// the same input always yields the same plan.
func BuildFallbackPlan(focus string, items []FoodItem, impact domain.Impact) domain.PlanOutput {
	var b strings.Builder
	b.WriteString("Relief Network Food Distribution Plan\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Priority Focus: %s\n\n", focus)

	b.WriteString("IDENTIFIED FOOD SURPLUS:\n")
	if len(items) == 0 {
		b.WriteString("  - No itemized surplus detected; using network estimates.\n")
	}
	for _, it := range items {
		fmt.Fprintf(&b, "  - %s: %d%s (est. value Rs %d)\n", it.Name, it.Quantity, it.Unit, it.TotalValue)
	}
	b.WriteString("\nALLOCATION STRATEGY:\n")
	switch focus {
	case "hunger_relief":
		b.WriteString("  1. Urgent hunger relief (70% of surplus): shelters, food banks, orphanages; perishables first, within 6 hours.\n")
		b.WriteString("  2. Community support (30% of surplus): community centers, schools, elderly care, within 24 hours.\n")
	case "farmer_support":
		b.WriteString("  1. Farmer economic support (50%): fair compensation, priority purchasing from struggling farmers.\n")
		b.WriteString("  2. Community distribution (50%): sustained farmer-community partnerships.\n")
	default:
		b.WriteString("  1. Balanced allocation: 40% urgent hunger relief, 30% farmer support, 20% community programs, 10% sustainability.\n")
	}
	b.WriteString("\nLOGISTICS:\n")
	b.WriteString("  - Refrigerated vehicles for perishables; standard trucks otherwise.\n")
	b.WriteString("  - Routes ordered to minimize travel time and spoilage.\n")
	b.WriteString("\nESTIMATED IMPACT:\n")
	fmt.Fprintf(&b, "  - People served: ~%d\n", impact.PeopleServed)
	fmt.Fprintf(&b, "  - Food waste prevented: %dkg\n", impact.FoodSavedKg)
	fmt.Fprintf(&b, "  - Economic value: Rs %d\n", impact.EconomicValueRupees)
	fmt.Fprintf(&b, "  - CO2 emissions avoided: %.1fkg\n", impact.EmissionsSavedKg)
	fmt.Fprintf(&b, "  - Water saved: ~%d liters\n", impact.WaterSavedLiters)

	summary := fmt.Sprintf(
		"Summary: allocation plan for %dkg surplus targeting %d people with Rs %d economic impact, prioritizing %s.",
		impact.FoodSavedKg, impact.PeopleServed, impact.EconomicValueRupees, focus,
	)
	return domain.PlanOutput{
		AllocationPlan:  b.String(),
		HumanSummary:    summary,
		EstimatedImpact: impact,
	}
}
