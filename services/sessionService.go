package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"linguatutor/db"
	"linguatutor/models"
)

// SessionService records session lifecycle and interaction history. State
// transitions (open once, close once, append-only interactions) are enforced
// by the repository; this layer validates input and keeps the logs.
type SessionService struct {
	repo db.SessionRepository
}

func NewSessionService(repo db.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

func (s *SessionService) StartSession(ctx context.Context, userID, language, lessonType, difficulty string) (string, error) {
	log.Printf("[INFO] Starting session for user %s: %s %s (%s)", userID, difficulty, language, lessonType)

	for name, value := range map[string]string{
		"user_id": userID, "language": language, "lesson_type": lessonType, "difficulty": difficulty,
	} {
		if strings.TrimSpace(value) == "" {
			return "", fmt.Errorf("%s is required", name)
		}
	}

	sessionID, err := s.repo.StartSession(ctx, userID, language, lessonType, difficulty)
	if err != nil {
		log.Printf("[ERROR] Failed to start session: %v", err)
		return "", err
	}

	log.Printf("[INFO] Successfully started session %s", sessionID)
	return sessionID, nil
}

func (s *SessionService) EndSession(ctx context.Context, sessionID string, score *int) error {
	log.Printf("[INFO] Ending session %s", sessionID)

	if score != nil && (*score < 0 || *score > 10) {
		return fmt.Errorf("score must be between 0 and 10, got %d", *score)
	}

	if err := s.repo.EndSession(ctx, sessionID, score); err != nil {
		log.Printf("[ERROR] Failed to end session %s: %v", sessionID, err)
		return err
	}

	log.Printf("[INFO] Successfully ended session %s", sessionID)
	return nil
}

func (s *SessionService) LogInteraction(ctx context.Context, sessionID, userInput, aiResponse string, feedbackScore *int) error {
	if feedbackScore != nil && (*feedbackScore < 0 || *feedbackScore > 10) {
		return fmt.Errorf("feedback score must be between 0 and 10, got %d", *feedbackScore)
	}

	if err := s.repo.LogInteraction(ctx, sessionID, userInput, aiResponse, feedbackScore); err != nil {
		log.Printf("[ERROR] Failed to log interaction for session %s: %v", sessionID, err)
		return err
	}

	return nil
}

func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.repo.GetSession(ctx, sessionID)
}

func (s *SessionService) GetSessionInteractions(ctx context.Context, sessionID string) ([]models.Interaction, error) {
	return s.repo.GetSessionInteractions(ctx, sessionID)
}

func (s *SessionService) GetUserProgress(ctx context.Context, userID, language string) (*models.ProgressSummary, error) {
	log.Printf("[INFO] Computing progress for user %s", userID)

	summary, err := s.repo.GetUserProgress(ctx, userID, language)
	if err != nil {
		log.Printf("[ERROR] Failed to compute progress for user %s: %v", userID, err)
		return nil, err
	}

	log.Printf("[INFO] User %s has %d closed sessions", userID, summary.TotalSessions)
	return summary, nil
}
