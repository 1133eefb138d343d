package models

type FeedbackRecord struct {
	GrammarScore    int      `json:"grammar_score"`
	VocabularyLevel string   `json:"vocabulary_level"`
	Errors          []string `json:"errors"`
	Strengths       []string `json:"strengths"`
	Suggestions     []string `json:"suggestions"`
	Confidence      float64  `json:"confidence"`
}

type Exercise struct {
	Type             string `json:"type"`
	Title            string `json:"title"`
	Instructions     string `json:"instructions"`
	Content          string `json:"content"`
	ExpectedResponse string `json:"expected_response"`
}

type LessonSummary struct {
	Summary        string   `json:"summary"`
	Achievements   []string `json:"achievements"`
	AreasToImprove []string `json:"areas_to_improve"`
	NextSteps      []string `json:"next_steps"`
}

// TurnResult is what the engine returns for one processed student turn.
// FeedbackConfidence is the model-reported confidence from the feedback
// analysis; it is unrelated to speech transcription confidence.
type TurnResult struct {
	Response           string         `json:"response"`
	Feedback           FeedbackRecord `json:"feedback"`
	FeedbackConfidence float64        `json:"feedback_confidence"`
}
