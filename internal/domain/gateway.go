package domain

// Source tags where a gateway payload came from: the live model or the
// method's static fallback. Gateway calls never fail; callers that care
// about provenance inspect this instead of guessing from payload contents.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Result wraps a gateway payload with its provenance.
type Result[T any] struct {
	Source Source `json:"source"`
	Value  T      `json:"value"`
}

// ---- gateway request types ----

type TriageReport struct {
	Age      int      `json:"age"`
	Symptoms []string `json:"symptoms"`
	History  string   `json:"history"`
}

type ShelterRequest struct {
	Region       string   `json:"region"`
	Families     int      `json:"families"`
	SpecialNeeds []string `json:"special_needs"`
}

type PlanRequest struct {
	RawReport     string `json:"raw_report"`
	PriorityFocus string `json:"priority_focus"` // hunger_relief|farmer_support|environment|all
}

// ---- gateway payload types ----
// Shapes here mirror the JSON schemas the prompts document; fallbacks
// must carry the same key sets so both paths look identical to callers.

type Hospital struct {
	Name          string   `json:"name"`
	City          string   `json:"city"`
	AvailableBeds int      `json:"available_beds"`
	Specialties   []string `json:"specialties"`
	Contact       string   `json:"contact"`
}

type HospitalAdvice struct {
	Hospitals []Hospital `json:"hospitals"`
	Summary   string     `json:"summary"`
}

type Doctor struct {
	Name            string `json:"name"`
	Specialty       string `json:"specialty"`
	Hospital        string `json:"hospital"`
	YearsExperience int    `json:"years_experience"`
	Availability    string `json:"availability"`
}

type DoctorMatches struct {
	Doctors []Doctor `json:"doctors"`
	Summary string   `json:"summary"`
}

type TriageAssessment struct {
	Severity         string   `json:"severity"` // critical|urgent|moderate|low
	RecommendedWard  string   `json:"recommended_ward"`
	ImmediateActions []string `json:"immediate_actions"`
	Summary          string   `json:"summary"`
}

type ShelterAllocation struct {
	Shelter  string `json:"shelter"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
	Assigned int    `json:"assigned"`
}

type ShelterPlan struct {
	Allocations []ShelterAllocation `json:"allocations"`
	Unplaced    int                 `json:"unplaced"`
	Summary     string              `json:"summary"`
}

type Impact struct {
	PeopleServed        int     `json:"people_served"`
	FoodSavedKg         int     `json:"food_saved_kg"`
	EconomicValueRupees int     `json:"economic_value_rupees"`
	EmissionsSavedKg    float64 `json:"emissions_saved_kg"`
	WaterSavedLiters    int     `json:"water_saved_liters"`
}

type PlanOutput struct {
	AllocationPlan  string `json:"allocation_plan"`
	HumanSummary    string `json:"human_summary"`
	EstimatedImpact Impact `json:"estimated_impact"`
}

type DashboardBrief struct {
	Highlights []string `json:"highlights"`
	RiskLevel  string   `json:"risk_level"` // high|medium|low
	Summary    string   `json:"summary"`
}
