package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"linguatutor/services"

	"github.com/gorilla/mux"
)

type LessonHandler struct {
	service *services.LessonService
}

func NewLessonHandler(service *services.LessonService) *LessonHandler {
	return &LessonHandler{service: service}
}

func (h *LessonHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/lessons", h.GetLessons).Methods("GET")
	router.HandleFunc("/lessons/search", h.SearchLessons).Methods("GET")
}

func (h *LessonHandler) GetLessons(w http.ResponseWriter, r *http.Request) {
	lessonType := r.URL.Query().Get("type")
	difficulty := r.URL.Query().Get("difficulty")

	if lessonType == "" || difficulty == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "type and difficulty query parameters are required")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, h.service.GetLessons(lessonType, difficulty))
}

func (h *LessonHandler) SearchLessons(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	log.Printf("[INFO] Received lesson search request: %q", query)

	var terms []string
	if query != "" {
		terms = strings.Fields(query)
	}

	h.writeJSONResponse(w, http.StatusOK, h.service.SearchLessons(terms))
}

func (h *LessonHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *LessonHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
