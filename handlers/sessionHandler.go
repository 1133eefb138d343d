package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"linguatutor/db"
	"linguatutor/services"

	"github.com/gorilla/mux"
)

type StartSessionRequest struct {
	UserID     string `json:"user_id"`
	Language   string `json:"language"`
	LessonType string `json:"lesson_type"`
	Difficulty string `json:"difficulty"`
}

type EndSessionRequest struct {
	Score *int `json:"score,omitempty"`
}

type SessionHandler struct {
	service *services.SessionService
}

func NewSessionHandler(service *services.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/sessions", h.StartSession).Methods("POST")
	router.HandleFunc("/sessions/{id}", h.GetSession).Methods("GET")
	router.HandleFunc("/sessions/{id}/end", h.EndSession).Methods("POST")
	router.HandleFunc("/sessions/{id}/interactions", h.GetInteractions).Methods("GET")
	router.HandleFunc("/users/{userID}/progress", h.GetProgress).Methods("GET")
}

func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received start session request")

	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode start session JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	sessionID, err := h.service.StartSession(r.Context(), req.UserID, req.Language, req.LessonType, req.Difficulty)
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusCreated, map[string]string{"session_id": sessionID})
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	session, err := h.service.GetSession(r.Context(), sessionID)
	if err != nil {
		h.writeSessionError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, session)
}

func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	log.Printf("[INFO] Received end session request for %s", sessionID)

	var req EndSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode end session JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := h.service.EndSession(r.Context(), sessionID, req.Score); err != nil {
		h.writeSessionError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "closed"})
}

func (h *SessionHandler) GetInteractions(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	interactions, err := h.service.GetSessionInteractions(r.Context(), sessionID)
	if err != nil {
		h.writeSessionError(w, err)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, interactions)
}

func (h *SessionHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	language := r.URL.Query().Get("language")

	summary, err := h.service.GetUserProgress(r.Context(), userID, language)
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, summary)
}

func (h *SessionHandler) writeSessionError(w http.ResponseWriter, err error) {
	var stateErr *db.SessionStateError
	if errors.As(err, &stateErr) {
		h.writeErrorResponse(w, http.StatusConflict, stateErr.Error())
		return
	}
	h.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
}

func (h *SessionHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *SessionHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
