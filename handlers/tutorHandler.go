package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"linguatutor/services"
	"linguatutor/services/tutor"

	"github.com/gorilla/mux"
)

type SetContextRequest struct {
	Language   string `json:"language"`
	Difficulty string `json:"difficulty"`
	LessonType string `json:"lesson_type"`
}

type MessageRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Text      string `json:"text"`
}

type PronunciationRequest struct {
	TranscriptionConfidence float64 `json:"transcription_confidence"`
}

type TutorHandler struct {
	engine        *tutor.Service
	sessions      *services.SessionService
	lessons       *services.LessonService
	invokeTimeout time.Duration
}

func NewTutorHandler(engine *tutor.Service, sessions *services.SessionService, lessons *services.LessonService, invokeTimeout time.Duration) *TutorHandler {
	return &TutorHandler{
		engine:        engine,
		sessions:      sessions,
		lessons:       lessons,
		invokeTimeout: invokeTimeout,
	}
}

func (h *TutorHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/tutor/context", h.SetContext).Methods("POST")
	router.HandleFunc("/tutor/introduction", h.Introduction).Methods("POST")
	router.HandleFunc("/tutor/message", h.Message).Methods("POST")
	router.HandleFunc("/tutor/exercise", h.Exercise).Methods("POST")
	router.HandleFunc("/tutor/summary", h.Summary).Methods("POST")
	router.HandleFunc("/tutor/pronunciation", h.Pronunciation).Methods("POST")
}

// SetContext replaces the engine's learning context, pulling the first
// matching built-in lesson when one exists.
func (h *TutorHandler) SetContext(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received set context request")

	var req SetContextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode context request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Language == "" || req.Difficulty == "" || req.LessonType == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "language, difficulty and lesson_type are required")
		return
	}

	lessonData := h.lessons.FirstLessonData(req.LessonType, req.Difficulty)
	h.engine.SetLearningContext(req.Language, req.Difficulty, req.LessonType, lessonData)

	h.writeJSONResponse(w, http.StatusOK, h.engine.LearningContext())
}

func (h *TutorHandler) Introduction(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received lesson introduction request")

	ctx, cancel := h.invokeContext(r.Context())
	defer cancel()

	introduction, err := h.engine.GenerateLessonIntroduction(ctx)
	if err != nil {
		log.Printf("[ERROR] Lesson introduction failed: %v", err)
		h.writeErrorResponse(w, http.StatusBadGateway, "Failed to generate lesson introduction")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]string{"introduction": introduction})
}

// Message processes one student turn and, when a session id is supplied,
// logs the exchange to that session.
func (h *TutorHandler) Message(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received student message request")

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode message request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Text == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	ctx, cancel := h.invokeContext(r.Context())
	defer cancel()

	result := h.engine.ProcessStudentInput(ctx, req.Text)

	if req.SessionID != "" {
		score := result.Feedback.GrammarScore
		if err := h.sessions.LogInteraction(r.Context(), req.SessionID, req.Text, result.Response, &score); err != nil {
			log.Printf("[ERROR] Failed to record interaction: %v", err)
			h.writeErrorResponse(w, http.StatusConflict, err.Error())
			return
		}
	}

	h.writeJSONResponse(w, http.StatusOK, result)
}

func (h *TutorHandler) Exercise(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received practice exercise request")

	ctx, cancel := h.invokeContext(r.Context())
	defer cancel()

	h.writeJSONResponse(w, http.StatusOK, h.engine.GeneratePracticeExercise(ctx))
}

func (h *TutorHandler) Summary(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received lesson summary request")

	ctx, cancel := h.invokeContext(r.Context())
	defer cancel()

	h.writeJSONResponse(w, http.StatusOK, h.engine.LessonSummary(ctx))
}

func (h *TutorHandler) Pronunciation(w http.ResponseWriter, r *http.Request) {
	var req PronunciationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode pronunciation request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	feedback := h.engine.PronunciationFeedback(req.TranscriptionConfidence)
	h.writeJSONResponse(w, http.StatusOK, map[string]string{"feedback": feedback})
}

func (h *TutorHandler) invokeContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, h.invokeTimeout)
}

func (h *TutorHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *TutorHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
