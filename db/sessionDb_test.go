package db

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestRepository(t *testing.T) *SQLSessionRepository {
	t.Helper()

	repo, err := NewSQLSessionRepository("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	return repo
}

func intPtr(v int) *int { return &v }

func TestSessionLifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	sessionID, err := repo.StartSession(ctx, "maria", "Spanish", "Conversation Practice", "beginner")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if sessionID == "" {
		t.Fatal("StartSession returned an empty id")
	}

	for i := 0; i < 3; i++ {
		if err := repo.LogInteraction(ctx, sessionID, "hola", "¡hola!", intPtr(8)); err != nil {
			t.Fatalf("LogInteraction %d failed: %v", i, err)
		}
	}

	if err := repo.EndSession(ctx, sessionID, intPtr(8)); err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}

	session, err := repo.GetSession(ctx, sessionID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if session.EndTime == nil {
		t.Error("expected end_time to be set")
	}
	if session.DurationSeconds == nil || *session.DurationSeconds < 0 {
		t.Errorf("expected non-negative duration, got %v", session.DurationSeconds)
	}
	if session.Score == nil || *session.Score != 8 {
		t.Errorf("expected score 8, got %v", session.Score)
	}
	if _, err := time.Parse(time.RFC3339Nano, session.StartTime); err != nil {
		t.Errorf("start_time is not RFC 3339: %v", err)
	}

	interactions, err := repo.GetSessionInteractions(ctx, sessionID)
	if err != nil {
		t.Fatalf("GetSessionInteractions failed: %v", err)
	}
	if len(interactions) != 3 {
		t.Errorf("expected 3 interactions, got %d", len(interactions))
	}
	for _, interaction := range interactions {
		if interaction.SessionID != sessionID {
			t.Errorf("interaction belongs to session %q, expected %q", interaction.SessionID, sessionID)
		}
	}
}

func TestEndSessionTwiceFails(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	sessionID, err := repo.StartSession(ctx, "maria", "Spanish", "Conversation Practice", "beginner")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if err := repo.EndSession(ctx, sessionID, intPtr(7)); err != nil {
		t.Fatalf("first EndSession failed: %v", err)
	}

	err = repo.EndSession(ctx, sessionID, intPtr(9))

	var stateErr *SessionStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected SessionStateError, got %v", err)
	}
	if stateErr.Reason != "session already closed" {
		t.Errorf("unexpected reason %q", stateErr.Reason)
	}

	// The second close must not overwrite the recorded score.
	session, err := repo.GetSession(ctx, sessionID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if session.Score == nil || *session.Score != 7 {
		t.Errorf("score = %v, expected 7 from the first close", session.Score)
	}
}

func TestEndSessionUnknownID(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.EndSession(context.Background(), "no-such-session", nil)

	var stateErr *SessionStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected SessionStateError, got %v", err)
	}
	if stateErr.Reason != "session not found" {
		t.Errorf("unexpected reason %q", stateErr.Reason)
	}
}

func TestLogInteractionOnClosedSessionFails(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	sessionID, err := repo.StartSession(ctx, "maria", "Spanish", "Conversation Practice", "beginner")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if err := repo.EndSession(ctx, sessionID, nil); err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}

	err = repo.LogInteraction(ctx, sessionID, "hola", "¡hola!", nil)

	var stateErr *SessionStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected SessionStateError, got %v", err)
	}

	interactions, err := repo.GetSessionInteractions(ctx, sessionID)
	if err != nil {
		t.Fatalf("GetSessionInteractions failed: %v", err)
	}
	if len(interactions) != 0 {
		t.Errorf("expected no interactions on the closed session, got %d", len(interactions))
	}
}

func TestGetUserProgressWeightedAverage(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	// Two conversation sessions at 85 and one grammar session at 70.
	endWithScore := func(lessonType string, score int) {
		id, err := repo.StartSession(ctx, "maria", "Spanish", lessonType, "beginner")
		if err != nil {
			t.Fatalf("StartSession failed: %v", err)
		}
		if err := repo.EndSession(ctx, id, &score); err != nil {
			t.Fatalf("EndSession failed: %v", err)
		}
	}
	endWithScore("Conversation Practice", 85)
	endWithScore("Conversation Practice", 85)
	endWithScore("Grammar Lessons", 70)

	progress, err := repo.GetUserProgress(ctx, "maria", "")
	if err != nil {
		t.Fatalf("GetUserProgress failed: %v", err)
	}

	if progress.TotalSessions != 3 {
		t.Errorf("total sessions = %d, expected 3", progress.TotalSessions)
	}
	if len(progress.Sessions) != 2 {
		t.Errorf("expected 2 groups, got %d", len(progress.Sessions))
	}

	// Weighted by session count: (85*2 + 70*1) / 3 = 80, not the plain
	// mean of the group averages (77.5).
	if progress.AverageScore != 80 {
		t.Errorf("average score = %v, expected 80", progress.AverageScore)
	}
}

func TestGetUserProgressExcludesOpenSessionsAndOtherUsers(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	closed, err := repo.StartSession(ctx, "maria", "Spanish", "Conversation Practice", "beginner")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if err := repo.EndSession(ctx, closed, intPtr(9)); err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}

	// Still open: must not count.
	if _, err := repo.StartSession(ctx, "maria", "Spanish", "Conversation Practice", "beginner"); err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	// Different user: must not count.
	other, err := repo.StartSession(ctx, "jordi", "Spanish", "Conversation Practice", "beginner")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if err := repo.EndSession(ctx, other, intPtr(3)); err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}

	progress, err := repo.GetUserProgress(ctx, "maria", "")
	if err != nil {
		t.Fatalf("GetUserProgress failed: %v", err)
	}

	if progress.TotalSessions != 1 {
		t.Errorf("total sessions = %d, expected 1", progress.TotalSessions)
	}
	if progress.AverageScore != 9 {
		t.Errorf("average score = %v, expected 9", progress.AverageScore)
	}
}

func TestGetUserProgressLanguageFilter(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	endSession := func(language string, score int) {
		id, err := repo.StartSession(ctx, "maria", language, "Conversation Practice", "beginner")
		if err != nil {
			t.Fatalf("StartSession failed: %v", err)
		}
		if err := repo.EndSession(ctx, id, &score); err != nil {
			t.Fatalf("EndSession failed: %v", err)
		}
	}
	endSession("Spanish", 8)
	endSession("French", 4)

	progress, err := repo.GetUserProgress(ctx, "maria", "Spanish")
	if err != nil {
		t.Fatalf("GetUserProgress failed: %v", err)
	}

	if progress.TotalSessions != 1 {
		t.Errorf("total sessions = %d, expected 1 after filtering", progress.TotalSessions)
	}
	if progress.AverageScore != 8 {
		t.Errorf("average score = %v, expected 8", progress.AverageScore)
	}
}

func TestGetUserProgressEmpty(t *testing.T) {
	repo := newTestRepository(t)

	progress, err := repo.GetUserProgress(context.Background(), "nobody", "")
	if err != nil {
		t.Fatalf("GetUserProgress failed: %v", err)
	}

	if progress.TotalSessions != 0 || progress.AverageScore != 0 || len(progress.Sessions) != 0 {
		t.Errorf("expected empty summary, got %+v", progress)
	}
}

func TestGetSessionUnknownID(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetSession(context.Background(), "missing")

	var stateErr *SessionStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected SessionStateError, got %v", err)
	}
}
