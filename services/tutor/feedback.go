package tutor

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"linguatutor/models"
)

// Model output is untrusted text that merely claims to be JSON. Every
// extractor here decodes strictly, requires every key of the expected shape,
// and substitutes a deterministic fallback on any violation. None of them
// ever return an error.

var exerciseTypes = map[string]bool{
	"conversation": true,
	"fill_blank":   true,
	"translation":  true,
	"role_play":    true,
}

type feedbackPayload struct {
	GrammarScore    *int      `json:"grammar_score"`
	VocabularyLevel *string   `json:"vocabulary_level"`
	Errors          *[]string `json:"errors"`
	Strengths       *[]string `json:"strengths"`
	Suggestions     *[]string `json:"suggestions"`
	Confidence      *float64  `json:"confidence"`
}

// ExtractFeedback parses a feedback analysis response. On any malformed or
// incomplete payload it returns the fixed fallback record for the student's
// difficulty level.
func ExtractFeedback(raw string, difficulty string) models.FeedbackRecord {
	var payload feedbackPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &payload); err != nil {
		log.Printf("[ERROR] Failed to parse feedback response, using fallback: %v", err)
		return fallbackFeedback(difficulty)
	}

	if payload.GrammarScore == nil || payload.VocabularyLevel == nil ||
		payload.Errors == nil || payload.Strengths == nil ||
		payload.Suggestions == nil || payload.Confidence == nil {
		log.Printf("[ERROR] Feedback response missing required fields, using fallback")
		return fallbackFeedback(difficulty)
	}

	return models.FeedbackRecord{
		GrammarScore:    clampInt(*payload.GrammarScore, 0, 10),
		VocabularyLevel: *payload.VocabularyLevel,
		Errors:          *payload.Errors,
		Strengths:       *payload.Strengths,
		Suggestions:     *payload.Suggestions,
		Confidence:      clampFloat(*payload.Confidence, 0.0, 1.0),
	}
}

func fallbackFeedback(difficulty string) models.FeedbackRecord {
	return models.FeedbackRecord{
		GrammarScore:    7,
		VocabularyLevel: strings.ToLower(difficulty),
		Errors:          []string{},
		Strengths:       []string{"Participated in the conversation"},
		Suggestions:     []string{"Keep practicing!"},
		Confidence:      0.7,
	}
}

type exercisePayload struct {
	Type             *string `json:"type"`
	Title            *string `json:"title"`
	Instructions     *string `json:"instructions"`
	Content          *string `json:"content"`
	ExpectedResponse *string `json:"expected_response"`
}

// ExtractExercise parses a generated practice exercise, falling back to a
// free-conversation exercise for the given language.
func ExtractExercise(raw string, language string) models.Exercise {
	var payload exercisePayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &payload); err != nil {
		log.Printf("[ERROR] Failed to parse exercise response, using fallback: %v", err)
		return fallbackExercise(language)
	}

	if payload.Type == nil || payload.Title == nil || payload.Instructions == nil ||
		payload.Content == nil || payload.ExpectedResponse == nil {
		log.Printf("[ERROR] Exercise response missing required fields, using fallback")
		return fallbackExercise(language)
	}
	if !exerciseTypes[*payload.Type] {
		log.Printf("[ERROR] Exercise response has unknown type %q, using fallback", *payload.Type)
		return fallbackExercise(language)
	}

	return models.Exercise{
		Type:             *payload.Type,
		Title:            *payload.Title,
		Instructions:     *payload.Instructions,
		Content:          *payload.Content,
		ExpectedResponse: *payload.ExpectedResponse,
	}
}

func fallbackExercise(language string) models.Exercise {
	return models.Exercise{
		Type:             "conversation",
		Title:            "Free Practice",
		Instructions:     fmt.Sprintf("Let's have a conversation in %s. Try to use what we've learned today!", language),
		Content:          "Tell me about your day or ask me a question.",
		ExpectedResponse: "Natural conversation",
	}
}

type summaryPayload struct {
	Summary        *string   `json:"summary"`
	Achievements   *[]string `json:"achievements"`
	AreasToImprove *[]string `json:"areas_to_improve"`
	NextSteps      *[]string `json:"next_steps"`
}

// ExtractSummary parses a lesson summary response with its own fixed
// fallback payload.
func ExtractSummary(raw string) models.LessonSummary {
	var payload summaryPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &payload); err != nil {
		log.Printf("[ERROR] Failed to parse summary response, using fallback: %v", err)
		return fallbackSummary()
	}

	if payload.Summary == nil || payload.Achievements == nil ||
		payload.AreasToImprove == nil || payload.NextSteps == nil {
		log.Printf("[ERROR] Summary response missing required fields, using fallback")
		return fallbackSummary()
	}

	return models.LessonSummary{
		Summary:        *payload.Summary,
		Achievements:   *payload.Achievements,
		AreasToImprove: *payload.AreasToImprove,
		NextSteps:      *payload.NextSteps,
	}
}

func fallbackSummary() models.LessonSummary {
	return models.LessonSummary{
		Summary:        "We had a good practice session today!",
		Achievements:   []string{"Participated actively in the lesson"},
		AreasToImprove: []string{"Continue practicing regularly"},
		NextSteps:      []string{"Try the next lesson when ready"},
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
