package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"relief_ai/internal/app"
	"relief_ai/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	G *app.Gateway
	P *app.PlanService

	PlanLimit int // default page size for GET /v1/waste/plans
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	// Gateway endpoints. These never fail: a broken upstream yields the
	// method's fallback payload, tagged via the result's source field.
	s.mux.Post("/v1/hospitals/recommend", h.recommendHospitals)
	s.mux.Post("/v1/doctors/match", h.matchDoctors)
	s.mux.Post("/v1/patients/triage", h.triagePatient)
	s.mux.Post("/v1/shelters/allocate", h.allocateShelters)
	s.mux.Post("/v1/waste/plan", h.generatePlan)

	s.mux.Get("/v1/waste/plans", h.listPlans)
	s.mux.Get("/v1/waste/plan/demo", h.demoPlan)

	// Reference data.
	s.mux.Get("/v1/inventory", h.inventory)
	s.mux.Get("/v1/demand", h.demand)
	s.mux.Get("/v1/logistics", h.logistics)
	s.mux.Get("/v1/storage", h.storage)
	s.mux.Get("/v1/farmers", h.farmers)

	// Dashboard.
	s.mux.Get("/v1/dashboard/stats", h.dashboardStats)
	s.mux.Get("/v1/dashboard/inventory-flow", h.inventoryFlow)
	s.mux.Get("/v1/dashboard/network-status", h.networkStatus)
	s.mux.Get("/v1/dashboard/waste-reduction", h.wasteReduction)
	s.mux.Get("/v1/dashboard/insights", h.dashboardInsights)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be a JSON object")
		return false
	}
	return true
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- gateway handlers ----

type hospitalsRequest struct {
	Region string   `json:"region"`
	Needs  []string `json:"needs"`
}

func (h *Handlers) recommendHospitals(w http.ResponseWriter, r *http.Request) {
	var req hospitalsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.G.RecommendHospitals(r.Context(), req.Region, req.Needs))
}

type doctorsRequest struct {
	Specialty string `json:"specialty"`
	Region    string `json:"region"`
}

func (h *Handlers) matchDoctors(w http.ResponseWriter, r *http.Request) {
	var req doctorsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.G.MatchDoctors(r.Context(), req.Specialty, req.Region))
}

func (h *Handlers) triagePatient(w http.ResponseWriter, r *http.Request) {
	var req domain.TriageReport
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.G.TriagePatient(r.Context(), req))
}

func (h *Handlers) allocateShelters(w http.ResponseWriter, r *http.Request) {
	var req domain.ShelterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.G.AllocateShelters(r.Context(), req))
}

func (h *Handlers) generatePlan(w http.ResponseWriter, r *http.Request) {
	var req domain.PlanRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.P.Generate(r.Context(), req))
}

func (h *Handlers) listPlans(w http.ResponseWriter, r *http.Request) {
	limit := h.PlanLimit
	if limit <= 0 {
		limit = 20
	}
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 100 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 100")
			return
		}
		limit = l
	}
	out, err := h.P.Recent(r.Context(), limit)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Storage Error", "could not list plans")
		return
	}
	if out == nil {
		out = []domain.PlanRecord{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) demoPlan(w http.ResponseWriter, r *http.Request) {
	writeCacheable(w, r, domain.Result[domain.PlanOutput]{
		Source: domain.SourceFallback,
		Value:  app.DemoPlan(),
	})
}

// ---- reference data handlers ----

func (h *Handlers) inventory(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.Inventory(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Storage Error", "could not list inventory")
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) demand(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.Demands(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Storage Error", "could not list demand")
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) logistics(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.Logistics(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Storage Error", "could not list vehicles")
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) storage(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.Storage(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Storage Error", "could not list storage facilities")
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) farmers(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.Farmers(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Storage Error", "could not list farmers")
		return
	}
	writeCacheable(w, r, out)
}

// ---- dashboard handlers ----

func (h *Handlers) dashboardStats(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.Stats(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Storage Error", "could not compute stats")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) inventoryFlow(w http.ResponseWriter, r *http.Request) {
	writeCacheable(w, r, h.Q.InventoryFlow())
}

func (h *Handlers) networkStatus(w http.ResponseWriter, r *http.Request) {
	writeCacheable(w, r, h.Q.NetworkStatus())
}

func (h *Handlers) wasteReduction(w http.ResponseWriter, r *http.Request) {
	writeCacheable(w, r, h.Q.WasteReduction())
}

func (h *Handlers) dashboardInsights(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Q.Stats(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Storage Error", "could not compute stats")
		return
	}
	writeJSON(w, http.StatusOK, h.G.DashboardInsights(r.Context(), stats))
}
