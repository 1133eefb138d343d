package tutor

import (
	"strings"
	"testing"

	"linguatutor/models"
)

func TestBuildSystemPromptContainsContextTokens(t *testing.T) {
	difficulties := []string{"beginner", "intermediate", "advanced"}
	languages := []string{"Spanish", "Japanese", "Catalan"}

	for _, difficulty := range difficulties {
		for _, language := range languages {
			t.Run(language+"_"+difficulty, func(t *testing.T) {
				lc := models.LearningContext{
					Language:   language,
					Difficulty: difficulty,
					LessonType: "Conversation Practice",
				}

				prompt := BuildSystemPrompt(lc)

				for _, token := range []string{language, difficulty, "Conversation Practice"} {
					if !strings.Contains(prompt, token) {
						t.Errorf("system prompt missing token %q", token)
					}
				}
			})
		}
	}
}

func TestBuildSystemPromptIsDeterministic(t *testing.T) {
	lc := models.LearningContext{
		Language:   "French",
		Difficulty: "intermediate",
		LessonType: "Grammar Lessons",
		LessonData: &models.LessonData{
			Topics:     []string{"past tense", "irregular verbs"},
			Vocabulary: []string{"hier", "toujours"},
		},
	}

	first := BuildSystemPrompt(lc)
	second := BuildSystemPrompt(lc)
	if first != second {
		t.Error("identical context produced different system prompts")
	}
}

func TestBuildSystemPromptAppendsLessonData(t *testing.T) {
	lc := models.LearningContext{
		Language:   "German",
		Difficulty: "beginner",
		LessonType: "Vocabulary Building",
		LessonData: &models.LessonData{
			Topics:     []string{"home", "food"},
			Vocabulary: []string{"Haus", "Brot"},
			SampleDialogues: []models.Dialogue{
				{Scenario: "At the bakery", Lines: []string{"A: Ein Brot, bitte."}},
			},
		},
	}

	prompt := BuildSystemPrompt(lc)

	for _, expected := range []string{
		"Current lesson topics: home, food",
		"Key vocabulary to practice: Haus, Brot",
		"sample dialogues",
	} {
		if !strings.Contains(prompt, expected) {
			t.Errorf("system prompt missing lesson data section %q", expected)
		}
	}
}

func TestBuildIntroductionPromptForbidsPlaceholders(t *testing.T) {
	lc := models.LearningContext{
		Language:   "Italian",
		Difficulty: "beginner",
		LessonType: "Conversation Practice",
		LessonData: &models.LessonData{
			Title:       "Basic Greetings",
			Description: "Learn how to greet people and introduce yourself",
		},
	}

	prompt := BuildIntroductionPrompt(lc)

	if !strings.Contains(prompt, "do NOT use placeholder names") {
		t.Error("introduction prompt missing placeholder instruction")
	}
	if !strings.Contains(prompt, "Specific lesson: Basic Greetings") {
		t.Error("introduction prompt missing lesson title")
	}
	if !strings.Contains(prompt, "Description: Learn how to greet people and introduce yourself") {
		t.Error("introduction prompt missing lesson description")
	}
}

func TestBuildAnalysisPromptWrapsStudentInput(t *testing.T) {
	lc := models.LearningContext{Language: "Spanish", Difficulty: "beginner", LessonType: "Conversation Practice"}

	prompt := BuildAnalysisPrompt(lc, "Hola, como estas?")

	if !strings.Contains(prompt, `"Hola, como estas?"`) {
		t.Error("analysis prompt does not wrap the student utterance")
	}
	for _, key := range []string{"grammar_score", "vocabulary_level", "errors", "strengths", "suggestions", "confidence"} {
		if !strings.Contains(prompt, key) {
			t.Errorf("analysis prompt missing schema key %q", key)
		}
	}
}

func TestBuildExercisePromptDemandsKnownTypes(t *testing.T) {
	lc := models.LearningContext{
		Language:   "Portuguese",
		Difficulty: "advanced",
		LessonType: "Conversation Practice",
		LessonData: &models.LessonData{Topics: []string{"idioms"}},
	}

	prompt := BuildExercisePrompt(lc)

	if !strings.Contains(prompt, "conversation/fill_blank/translation/role_play") {
		t.Error("exercise prompt missing type enumeration")
	}
	if !strings.Contains(prompt, "Focus on these topics: idioms") {
		t.Error("exercise prompt missing topic focus")
	}
}

func TestBuildSummaryPromptSchema(t *testing.T) {
	prompt := BuildSummaryPrompt()

	for _, key := range []string{"summary", "achievements", "areas_to_improve", "next_steps"} {
		if !strings.Contains(prompt, key) {
			t.Errorf("summary prompt missing schema key %q", key)
		}
	}
}
