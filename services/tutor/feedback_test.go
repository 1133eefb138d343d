package tutor

import (
	"reflect"
	"testing"

	"linguatutor/models"
)

func TestExtractFeedbackValidPayload(t *testing.T) {
	raw := `{
		"grammar_score": 8,
		"vocabulary_level": "intermediate",
		"errors": ["missing accent on 'como'"],
		"strengths": ["good word order"],
		"suggestions": ["review question marks"],
		"confidence": 0.85
	}`

	feedback := ExtractFeedback(raw, "Intermediate")

	expected := models.FeedbackRecord{
		GrammarScore:    8,
		VocabularyLevel: "intermediate",
		Errors:          []string{"missing accent on 'como'"},
		Strengths:       []string{"good word order"},
		Suggestions:     []string{"review question marks"},
		Confidence:      0.85,
	}
	if !reflect.DeepEqual(feedback, expected) {
		t.Errorf("got %+v, expected %+v", feedback, expected)
	}
}

func TestExtractFeedbackFallback(t *testing.T) {
	expected := models.FeedbackRecord{
		GrammarScore:    7,
		VocabularyLevel: "beginner",
		Errors:          []string{},
		Strengths:       []string{"Participated in the conversation"},
		Suggestions:     []string{"Keep practicing!"},
		Confidence:      0.7,
	}

	tests := []struct {
		name string
		raw  string
	}{
		{"not json at all", "I think you did great today!"},
		{"empty object", "{}"},
		{"missing grammar_score", `{"vocabulary_level":"beginner","errors":[],"strengths":[],"suggestions":[],"confidence":0.9}`},
		{"missing confidence", `{"grammar_score":5,"vocabulary_level":"beginner","errors":[],"strengths":[],"suggestions":[]}`},
		{"empty string", ""},
		{"truncated json", `{"grammar_score": 8, "vocabulary`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feedback := ExtractFeedback(tt.raw, "Beginner")
			if !reflect.DeepEqual(feedback, expected) {
				t.Errorf("got %+v, expected fallback %+v", feedback, expected)
			}
		})
	}
}

func TestExtractFeedbackClampsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantScore      int
		wantConfidence float64
	}{
		{
			"confidence above one",
			`{"grammar_score":8,"vocabulary_level":"b","errors":[],"strengths":[],"suggestions":[],"confidence":1.7}`,
			8, 1.0,
		},
		{
			"confidence below zero",
			`{"grammar_score":8,"vocabulary_level":"b","errors":[],"strengths":[],"suggestions":[],"confidence":-0.3}`,
			8, 0.0,
		},
		{
			"grammar score above ten",
			`{"grammar_score":15,"vocabulary_level":"b","errors":[],"strengths":[],"suggestions":[],"confidence":0.5}`,
			10, 0.5,
		},
		{
			"grammar score below zero",
			`{"grammar_score":-2,"vocabulary_level":"b","errors":[],"strengths":[],"suggestions":[],"confidence":0.5}`,
			0, 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feedback := ExtractFeedback(tt.raw, "beginner")
			if feedback.GrammarScore != tt.wantScore {
				t.Errorf("grammar score = %d, expected %d", feedback.GrammarScore, tt.wantScore)
			}
			if feedback.Confidence != tt.wantConfidence {
				t.Errorf("confidence = %v, expected %v", feedback.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestExtractExerciseValidPayload(t *testing.T) {
	raw := `{
		"type": "fill_blank",
		"title": "Verb Conjugation",
		"instructions": "Fill in the blank with the correct verb form",
		"content": "Yo ___ (hablar) español.",
		"expected_response": "hablo"
	}`

	exercise := ExtractExercise(raw, "Spanish")

	if exercise.Type != "fill_blank" || exercise.Title != "Verb Conjugation" {
		t.Errorf("unexpected exercise %+v", exercise)
	}
}

func TestExtractExerciseFallback(t *testing.T) {
	expected := models.Exercise{
		Type:             "conversation",
		Title:            "Free Practice",
		Instructions:     "Let's have a conversation in Spanish. Try to use what we've learned today!",
		Content:          "Tell me about your day or ask me a question.",
		ExpectedResponse: "Natural conversation",
	}

	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "Sure, here is an exercise:"},
		{"missing fields", `{"type":"conversation","title":"t"}`},
		{"unknown type", `{"type":"dictation","title":"t","instructions":"i","content":"c","expected_response":"r"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exercise := ExtractExercise(tt.raw, "Spanish")
			if !reflect.DeepEqual(exercise, expected) {
				t.Errorf("got %+v, expected fallback %+v", exercise, expected)
			}
		})
	}
}

func TestExtractSummaryFallback(t *testing.T) {
	expected := models.LessonSummary{
		Summary:        "We had a good practice session today!",
		Achievements:   []string{"Participated actively in the lesson"},
		AreasToImprove: []string{"Continue practicing regularly"},
		NextSteps:      []string{"Try the next lesson when ready"},
	}

	for _, raw := range []string{"no json here", "{}", `{"summary":"s"}`} {
		summary := ExtractSummary(raw)
		if !reflect.DeepEqual(summary, expected) {
			t.Errorf("raw %q: got %+v, expected fallback %+v", raw, summary, expected)
		}
	}
}

func TestExtractSummaryValidPayload(t *testing.T) {
	raw := `{
		"summary": "Great session on greetings",
		"achievements": ["Used three new phrases"],
		"areas_to_improve": ["Verb endings"],
		"next_steps": ["Practice introductions"]
	}`

	summary := ExtractSummary(raw)

	if summary.Summary != "Great session on greetings" {
		t.Errorf("unexpected summary %+v", summary)
	}
	if len(summary.Achievements) != 1 || summary.Achievements[0] != "Used three new phrases" {
		t.Errorf("unexpected achievements %v", summary.Achievements)
	}
}
