package api

import (
	"encoding/json"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/carbonwakeup/server/pkg/models"
	"github.com/carbonwakeup/server/pkg/repository"
)

// ActivitiesHandler serves per-user activity records: donations and saved
// footprint measurements. All routes require a token; users see their own
// rows, admins see anyone's.
type ActivitiesHandler struct {
	donationRepo  repository.DonationRepo
	footprintRepo repository.FootprintRepo
}

func NewActivitiesHandler(dr repository.DonationRepo, fr repository.FootprintRepo) *ActivitiesHandler {
	return &ActivitiesHandler{donationRepo: dr, footprintRepo: fr}
}

type postDonationRequest struct {
	Amount       float64 `json:"amount"`
	Organization string  `json:"organization"`
}

type postIDResponse struct {
	ID int64 `json:"id"`
}

func (h *ActivitiesHandler) RecordDonation(w http.ResponseWriter, r *http.Request) {
	var req postDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	req.Organization = strings.TrimSpace(req.Organization)
	if req.Organization == "" || req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		http.Error(w, "missing fields", http.StatusBadRequest)
		return
	}

	d := &models.Donation{
		UserID:       callerID(r),
		Amount:       req.Amount,
		Organization: req.Organization,
		DonationDate: time.Now().UTC().UnixMilli(),
	}
	id, err := h.donationRepo.CreateDonation(r.Context(), d)
	if err != nil {
		http.Error(w, "failed to store donation", http.StatusInternalServerError)
		return
	}

	writeJSON(w, postIDResponse{ID: id}, http.StatusCreated)
}

func (h *ActivitiesHandler) DonationHistory(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	if !callerIsAdmin(r) && callerID(r) != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	ds, err := h.donationRepo.ListDonationsByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "failed to list donations", http.StatusInternalServerError)
		return
	}
	if ds == nil {
		ds = []models.Donation{}
	}

	writeJSON(w, ds, http.StatusOK)
}

type postFootprintRequest struct {
	Footprint float64 `json:"footprint"`
}

func (h *ActivitiesHandler) RecordFootprint(w http.ResponseWriter, r *http.Request) {
	var req postFootprintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if req.Footprint < 0 || math.IsNaN(req.Footprint) || math.IsInf(req.Footprint, 0) {
		http.Error(w, "invalid footprint", http.StatusBadRequest)
		return
	}

	f := &models.FootprintRecord{
		UserID:          callerID(r),
		Footprint:       req.Footprint,
		MeasurementDate: time.Now().UTC().UnixMilli(),
	}
	id, err := h.footprintRepo.CreateFootprint(r.Context(), f)
	if err != nil {
		http.Error(w, "failed to store footprint", http.StatusInternalServerError)
		return
	}

	writeJSON(w, postIDResponse{ID: id}, http.StatusCreated)
}

func (h *ActivitiesHandler) FootprintHistory(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	if !callerIsAdmin(r) && callerID(r) != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	fs, err := h.footprintRepo.ListFootprintsByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "failed to list footprints", http.StatusInternalServerError)
		return
	}
	if fs == nil {
		fs = []models.FootprintRecord{}
	}

	writeJSON(w, fs, http.StatusOK)
}
