package tutor

import (
	"context"
	"errors"
	"log"

	"linguatutor/models"
	"linguatutor/services/llm"
)

const apologyResponse = "I apologize, but I'm having trouble processing your message right now. Let's continue with the lesson. Can you try rephrasing that?"

// Pronunciation feedback wording per transcription-confidence tier. The tier
// boundaries are strict greater-than comparisons.
const (
	pronunciationExcellent  = "Excellent pronunciation! Very clear and understandable."
	pronunciationGood       = "Good pronunciation! Try to speak a bit more clearly for some words."
	pronunciationNeedsWork  = "Your pronunciation needs some work. Try to speak more slowly and clearly."
	pronunciationDifficulty = "I had difficulty understanding. Let's practice pronunciation of key words together."
)

// Service is the tutoring session engine. One instance serves one user's
// active session; it owns its learning context and conversation window.
type Service struct {
	provider llm.Provider
	window   *ConversationWindow
	context  models.LearningContext
}

func NewService(provider llm.Provider) *Service {
	return &Service{
		provider: provider,
		window:   NewConversationWindow(DefaultWindowSize),
	}
}

// SetLearningContext replaces the learning context wholesale and clears the
// conversation window. A lesson switch always starts a fresh dialogue, even
// if language and difficulty are unchanged.
func (s *Service) SetLearningContext(language, difficulty, lessonType string, lessonData *models.LessonData) {
	s.context = models.LearningContext{
		Language:   language,
		Difficulty: difficulty,
		LessonType: lessonType,
		LessonData: lessonData,
	}
	s.window.Clear()

	log.Printf("[INFO] Learning context set: %s %s (%s)", difficulty, language, lessonType)
}

func (s *Service) LearningContext() models.LearningContext {
	return s.context
}

func (s *Service) WindowSize() int {
	return s.window.Len()
}

// GenerateLessonIntroduction asks the model for a lesson opening.
// Introductions are not scored, so no feedback extraction happens here.
func (s *Service) GenerateLessonIntroduction(ctx context.Context) (string, error) {
	log.Printf("[INFO] Generating lesson introduction")

	messages := []models.Message{
		{Role: models.RoleSystem, Content: BuildSystemPrompt(s.context)},
		{Role: models.RoleStudent, Content: BuildIntroductionPrompt(s.context)},
	}

	introduction, err := s.provider.Invoke(ctx, messages)
	if err != nil {
		log.Printf("[ERROR] Failed to generate lesson introduction: %v", err)
		return "", err
	}

	return introduction, nil
}

// ProcessStudentInput runs one conversational turn. A provider failure on
// the conversational reply degrades to a fixed apology so the dialogue can
// continue; the feedback analysis has its own deterministic fallback.
func (s *Service) ProcessStudentInput(ctx context.Context, studentInput string) *models.TurnResult {
	log.Printf("[INFO] Processing student input (%d characters)", len(studentInput))

	messages := make([]models.Message, 0, s.window.Len()+2)
	messages = append(messages, models.Message{Role: models.RoleSystem, Content: BuildSystemPrompt(s.context)})
	messages = append(messages, s.window.Messages()...)
	messages = append(messages, models.Message{Role: models.RoleStudent, Content: studentInput})

	response, err := s.provider.Invoke(ctx, messages)
	if err != nil {
		var invocationErr *llm.InvocationError
		if !errors.As(err, &invocationErr) {
			log.Printf("[ERROR] Unexpected provider error type: %v", err)
		}
		log.Printf("[ERROR] Provider call failed, substituting apology: %v", err)
		response = apologyResponse
	}

	s.window.Append(studentInput, response)

	// Feedback is computed on the student's input, not the tutor's reply.
	feedback := s.analyzeStudentInput(ctx, studentInput)

	return &models.TurnResult{
		Response:           response,
		Feedback:           feedback,
		FeedbackConfidence: feedback.Confidence,
	}
}

func (s *Service) analyzeStudentInput(ctx context.Context, studentInput string) models.FeedbackRecord {
	messages := []models.Message{
		{Role: models.RoleSystem, Content: analysisSystemPrompt},
		{Role: models.RoleStudent, Content: BuildAnalysisPrompt(s.context, studentInput)},
	}

	raw, err := s.provider.Invoke(ctx, messages)
	if err != nil {
		log.Printf("[ERROR] Feedback analysis call failed, using fallback: %v", err)
		return fallbackFeedback(s.context.Difficulty)
	}

	return ExtractFeedback(raw, s.context.Difficulty)
}

// GeneratePracticeExercise produces a practice exercise for the current
// lesson. Both a provider failure and a malformed payload yield the fixed
// free-practice fallback.
func (s *Service) GeneratePracticeExercise(ctx context.Context) models.Exercise {
	log.Printf("[INFO] Generating practice exercise")

	messages := []models.Message{
		{Role: models.RoleSystem, Content: BuildSystemPrompt(s.context)},
		{Role: models.RoleStudent, Content: BuildExercisePrompt(s.context)},
	}

	raw, err := s.provider.Invoke(ctx, messages)
	if err != nil {
		log.Printf("[ERROR] Exercise generation call failed, using fallback: %v", err)
		return fallbackExercise(s.context.Language)
	}

	return ExtractExercise(raw, s.context.Language)
}

// PronunciationFeedback maps speech transcription confidence to feedback
// wording. This is a pure function with no model call; the confidence here
// comes from the speech layer and is unrelated to feedback confidence.
func (s *Service) PronunciationFeedback(transcriptionConfidence float64) string {
	switch {
	case transcriptionConfidence > 0.9:
		return pronunciationExcellent
	case transcriptionConfidence > 0.7:
		return pronunciationGood
	case transcriptionConfidence > 0.5:
		return pronunciationNeedsWork
	default:
		return pronunciationDifficulty
	}
}

// LessonSummary summarizes the session so far. An empty window returns a
// fixed payload without calling the provider.
func (s *Service) LessonSummary(ctx context.Context) models.LessonSummary {
	if s.window.Len() == 0 {
		return models.LessonSummary{
			Summary:        "No conversation yet",
			Achievements:   []string{},
			AreasToImprove: []string{},
			NextSteps:      []string{},
		}
	}

	log.Printf("[INFO] Generating lesson summary for %d messages", s.window.Len())

	messages := make([]models.Message, 0, s.window.Len()+2)
	messages = append(messages, models.Message{Role: models.RoleSystem, Content: BuildSystemPrompt(s.context)})
	messages = append(messages, s.window.Messages()...)
	messages = append(messages, models.Message{Role: models.RoleStudent, Content: BuildSummaryPrompt()})

	raw, err := s.provider.Invoke(ctx, messages)
	if err != nil {
		log.Printf("[ERROR] Summary generation call failed, using fallback: %v", err)
		return fallbackSummary()
	}

	return ExtractSummary(raw)
}
