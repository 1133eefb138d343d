package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"linguatutor/services/speech"

	"github.com/gorilla/mux"
)

type SynthesizeRequest struct {
	Text         string `json:"text"`
	LanguageCode string `json:"language_code,omitempty"`
}

const maxAudioUploadBytes = 25 << 20

type SpeechHandler struct {
	provider speech.Provider
}

func NewSpeechHandler(provider speech.Provider) *SpeechHandler {
	return &SpeechHandler{provider: provider}
}

func (h *SpeechHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/speech/recognize", h.Recognize).Methods("POST")
	router.HandleFunc("/speech/synthesize", h.Synthesize).Methods("POST")
}

// Recognize transcribes an uploaded audio recording. Recognition failures
// are reported in the result payload, not as HTTP errors, so clients can
// show them to the student.
func (h *SpeechHandler) Recognize(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received speech recognition request")

	audio, err := io.ReadAll(io.LimitReader(r.Body, maxAudioUploadBytes))
	if err != nil {
		log.Printf("[ERROR] Failed to read audio upload: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Failed to read audio upload")
		return
	}
	if len(audio) == 0 {
		h.writeErrorResponse(w, http.StatusBadRequest, "audio body is required")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, h.provider.Recognize(r.Context(), audio))
}

func (h *SpeechHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received speech synthesis request")

	var req SynthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode synthesis request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Text == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	audio, err := h.provider.Synthesize(r.Context(), req.Text, req.LanguageCode)
	if err != nil {
		log.Printf("[ERROR] Speech synthesis failed: %v", err)
		h.writeErrorResponse(w, http.StatusBadGateway, "Failed to synthesize speech")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}

func (h *SpeechHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *SpeechHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
