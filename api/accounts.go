package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/carbonwakeup/server/internal/account"
)

// AccountsHandler serves the account management surface: role lookup,
// administrative password reset, role change, and account deletion.
type AccountsHandler struct {
	accounts *account.Service
}

func NewAccountsHandler(accounts *account.Service) *AccountsHandler {
	return &AccountsHandler{accounts: accounts}
}

func (h *AccountsHandler) GetType(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	if !callerIsAdmin(r) && callerID(r) != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	role, err := h.accounts.GetRole(r.Context(), userID)
	if err != nil {
		writeAccountError(w, err)
		return
	}

	writeJSON(w, map[string]string{"user_id": userID, "type": role}, http.StatusOK)
}

type setTypeRequest struct {
	Type string `json:"type"`
}

func (h *AccountsHandler) SetType(w http.ResponseWriter, r *http.Request) {
	if !callerIsAdmin(r) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req setTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Type == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	userID := mux.Vars(r)["userID"]
	if err := h.accounts.SetRole(r.Context(), userID, req.Type); err != nil {
		writeAccountError(w, err)
		return
	}

	writeJSON(w, map[string]string{"message": "type updated"}, http.StatusOK)
}

type setPasswordRequest struct {
	Password string `json:"password"`
}

// SetPassword is an administrative reset: the previous password is not
// verified. Self-service password change re-authenticates by signing in
// first, which is what gates this route (admin token or own account).
func (h *AccountsHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	if !callerIsAdmin(r) && callerID(r) != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req setPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	if err := h.accounts.SetPassword(r.Context(), userID, req.Password); err != nil {
		writeAccountError(w, err)
		return
	}

	writeJSON(w, map[string]string{"message": "password set"}, http.StatusOK)
}

func (h *AccountsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	if !callerIsAdmin(r) && callerID(r) != userID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	if err := h.accounts.Delete(r.Context(), userID); err != nil {
		writeAccountError(w, err)
		return
	}

	writeJSON(w, map[string]string{"message": "user deleted"}, http.StatusOK)
}
