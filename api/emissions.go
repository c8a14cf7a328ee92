package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/qri-io/jsonschema"

	"github.com/carbonwakeup/server/pkg/models"
	"github.com/carbonwakeup/server/pkg/repository"
)

// importSchema validates admin bulk-import payloads before any row is written.
const importSchema = `{
	"type": "object",
	"required": ["records"],
	"properties": {
		"records": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["country", "year", "co2_kt"],
				"properties": {
					"country": {"type": "string", "minLength": 1},
					"year": {"type": "integer", "minimum": 1900, "maximum": 2100},
					"co2_kt": {"type": "number", "minimum": 0}
				}
			}
		}
	}
}`

type EmissionsHandler struct {
	emissionRepo repository.EmissionRepo
	schema       *jsonschema.Schema
}

func NewEmissionsHandler(er repository.EmissionRepo) *EmissionsHandler {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(importSchema), rs); err != nil {
		panic(fmt.Sprintf("compile import schema: %v", err))
	}
	return &EmissionsHandler{emissionRepo: er, schema: rs}
}

func (h *EmissionsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	recs, err := h.emissionRepo.ListEmissions(r.Context())
	if err != nil {
		http.Error(w, "failed to list emissions", http.StatusInternalServerError)
		return
	}
	writeRecords(w, recs)
}

func (h *EmissionsHandler) ListByYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	recs, err := h.emissionRepo.ListByYear(r.Context(), year)
	if err != nil {
		http.Error(w, "failed to list emissions", http.StatusInternalServerError)
		return
	}
	writeRecords(w, recs)
}

func (h *EmissionsHandler) ListByCountry(w http.ResponseWriter, r *http.Request) {
	recs, err := h.emissionRepo.ListByCountry(r.Context(), mux.Vars(r)["country"])
	if err != nil {
		http.Error(w, "failed to list emissions", http.StatusInternalServerError)
		return
	}
	writeRecords(w, recs)
}

// CompareYears expects ?years=2018,2019 and returns rows for every listed year.
func (h *EmissionsHandler) CompareYears(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("years")
	if raw == "" {
		http.Error(w, "years is required", http.StatusBadRequest)
		return
	}

	var years []int
	for _, s := range strings.Split(raw, ",") {
		y, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			http.Error(w, "invalid year: "+s, http.StatusBadRequest)
			return
		}
		years = append(years, y)
	}

	recs, err := h.emissionRepo.ListByYears(r.Context(), years)
	if err != nil {
		http.Error(w, "failed to list emissions", http.StatusInternalServerError)
		return
	}
	writeRecords(w, recs)
}

// CompareCountries expects ?countries=Canada,Germany.
func (h *EmissionsHandler) CompareCountries(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("countries")
	if raw == "" {
		http.Error(w, "countries is required", http.StatusBadRequest)
		return
	}

	var countries []string
	for _, s := range strings.Split(raw, ",") {
		if c := strings.TrimSpace(s); c != "" {
			countries = append(countries, c)
		}
	}
	if len(countries) == 0 {
		http.Error(w, "countries is required", http.StatusBadRequest)
		return
	}

	recs, err := h.emissionRepo.ListByCountries(r.Context(), countries)
	if err != nil {
		http.Error(w, "failed to list emissions", http.StatusInternalServerError)
		return
	}
	writeRecords(w, recs)
}

func (h *EmissionsHandler) GetByCountryAndYear(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	rec, err := h.emissionRepo.GetByCountryAndYear(r.Context(), vars["country"], year)
	if err != nil {
		http.Error(w, "failed to get emissions", http.StatusInternalServerError)
		return
	}
	if rec == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	writeJSON(w, rec, http.StatusOK)
}

type importRequest struct {
	Records []models.EmissionRecord `json:"records"`
}

// Import bulk-upserts dataset rows. Admin only; the payload is validated
// against importSchema before anything touches the store, and the repository
// applies the batch transactionally.
func (h *EmissionsHandler) Import(w http.ResponseWriter, r *http.Request) {
	if !callerIsAdmin(r) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	keyErrs, err := h.schema.ValidateBytes(r.Context(), body)
	if err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if len(keyErrs) > 0 {
		http.Error(w, fmt.Sprintf("invalid payload: %v", keyErrs[0]), http.StatusBadRequest)
		return
	}

	var req importRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if err := h.emissionRepo.ImportRecords(r.Context(), req.Records); err != nil {
		http.Error(w, "failed to import records", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"imported": len(req.Records)}, http.StatusOK)
}

func writeRecords(w http.ResponseWriter, recs []models.EmissionRecord) {
	if recs == nil {
		recs = []models.EmissionRecord{}
	}
	writeJSON(w, recs, http.StatusOK)
}
