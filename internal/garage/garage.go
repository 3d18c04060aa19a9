package garage

import (
	"encoding/json"
	"net/http"
	"strconv"

	"Fulcrum/internal/auth"
	suspension "Fulcrum/internal/calc/suspension"
	"Fulcrum/internal/repo"

	"github.com/gorilla/mux"
)

// GarageHandler stores and recalls named suspension setups per user.
type GarageHandler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Name  string            `json:"name"`
	Setup suspension.Params `json:"setup"`
}

type SaveResponse struct {
	ID int `json:"id"`
}

type SetupResponse struct {
	Name   string             `json:"name"`
	Setup  suspension.Params  `json:"setup"`
	Result *suspension.Result `json:"result,omitempty"`
}

func (h *GarageHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Setup name required", http.StatusBadRequest)
		return
	}
	// reject setups the calculators cannot use
	if _, err := suspension.Calculate(req.Setup); err != nil {
		http.Error(w, "Invalid setup", http.StatusBadRequest)
		return
	}

	params, err := json.Marshal(req.Setup)
	if err != nil {
		http.Error(w, "Invalid setup", http.StatusBadRequest)
		return
	}
	id, err := h.Repo.SaveSetup(r.Context(), userID, req.Name, params)
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SaveResponse{ID: id})
}

func (h *GarageHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	setups, err := h.Repo.ListSetups(r.Context(), userID)
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	if setups == nil {
		setups = []repo.SetupMeta{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(setups)
}

func (h *GarageHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	setupID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid setup id", http.StatusBadRequest)
		return
	}

	name, params, err := h.Repo.GetSetup(r.Context(), userID, setupID)
	if err != nil {
		http.Error(w, "Setup not found", http.StatusNotFound)
		return
	}

	var setup suspension.Params
	if err := json.Unmarshal(params, &setup); err != nil {
		http.Error(w, "Stored setup corrupted", http.StatusInternalServerError)
		return
	}

	resp := SetupResponse{Name: name, Setup: setup}
	if res, err := suspension.Calculate(setup); err == nil {
		resp.Result = &res
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
