package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"linguatutor/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// SessionStateError reports an invalid session lifecycle transition, such as
// ending an unknown session or logging to a closed one. It indicates a
// caller-side bug and is propagated as-is.
type SessionStateError struct {
	SessionID string
	Reason    string
}

func (e *SessionStateError) Error() string {
	return fmt.Sprintf("session %s: %s", e.SessionID, e.Reason)
}

type SessionRepository interface {
	StartSession(ctx context.Context, userID, language, lessonType, difficulty string) (string, error)
	EndSession(ctx context.Context, sessionID string, score *int) error
	LogInteraction(ctx context.Context, sessionID, userInput, aiResponse string, feedbackScore *int) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	GetSessionInteractions(ctx context.Context, sessionID string) ([]models.Interaction, error)
	GetUserProgress(ctx context.Context, userID, language string) (*models.ProgressSummary, error)
	Close() error
}

// SQLSessionRepository persists sessions and interactions through sqlx. The
// same queries serve sqlite3 and postgres; Rebind adjusts the placeholders.
type SQLSessionRepository struct {
	db *sqlx.DB
}

func NewSQLSessionRepository(driver, dsn string) (*SQLSessionRepository, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == "sqlite3" {
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
		// SQLite does not support multiple writers.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	repo := &SQLSessionRepository{db: db}
	if err := repo.initializeSchema(); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *SQLSessionRepository) initializeSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			language TEXT NOT NULL,
			lesson_type TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT,
			duration_seconds BIGINT,
			score INTEGER
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create sessions table: %w", err)
	}

	_, err = r.db.Exec(`
		CREATE TABLE IF NOT EXISTS interactions (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			timestamp TEXT NOT NULL,
			user_input TEXT NOT NULL,
			ai_response TEXT NOT NULL,
			feedback_score INTEGER
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create interactions table: %w", err)
	}

	return nil
}

// StartSession opens a new session and returns its id. The recorder does not
// prevent a caller from opening a second session for the same user; holding
// at most one open session per engine is a caller-level invariant.
func (r *SQLSessionRepository) StartSession(ctx context.Context, userID, language, lessonType, difficulty string) (string, error) {
	sessionID := uuid.NewString()
	startTime := time.Now().UTC().Format(time.RFC3339Nano)

	query := r.db.Rebind(`
		INSERT INTO sessions (id, user_id, language, lesson_type, difficulty, start_time)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if _, err := r.db.ExecContext(ctx, query, sessionID, userID, language, lessonType, difficulty, startTime); err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}

	return sessionID, nil
}

// EndSession closes an open session, recording end time, duration and score.
// Closing an unknown or already-closed session fails with SessionStateError.
func (r *SQLSessionRepository) EndSession(ctx context.Context, sessionID string, score *int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var startTimeStr string
	var endTime sql.NullString
	query := tx.Rebind(`SELECT start_time, end_time FROM sessions WHERE id = ?`)
	err = tx.QueryRowxContext(ctx, query, sessionID).Scan(&startTimeStr, &endTime)
	if err == sql.ErrNoRows {
		return &SessionStateError{SessionID: sessionID, Reason: "session not found"}
	}
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if endTime.Valid {
		return &SessionStateError{SessionID: sessionID, Reason: "session already closed"}
	}

	startTime, err := time.Parse(time.RFC3339Nano, startTimeStr)
	if err != nil {
		return fmt.Errorf("failed to parse session start time: %w", err)
	}

	now := time.Now().UTC()
	duration := int64(now.Sub(startTime).Seconds())
	if duration < 0 {
		// Clock skew must not produce negative durations.
		duration = 0
	}

	query = tx.Rebind(`
		UPDATE sessions
		SET end_time = ?, duration_seconds = ?, score = ?
		WHERE id = ?
	`)
	if _, err := tx.ExecContext(ctx, query, now.Format(time.RFC3339Nano), duration, score, sessionID); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session close: %w", err)
	}

	return nil
}

// LogInteraction appends one student/tutor exchange to an open session.
// Interaction rows are never updated or deleted.
func (r *SQLSessionRepository) LogInteraction(ctx context.Context, sessionID, userInput, aiResponse string, feedbackScore *int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var endTime sql.NullString
	query := tx.Rebind(`SELECT end_time FROM sessions WHERE id = ?`)
	err = tx.QueryRowxContext(ctx, query, sessionID).Scan(&endTime)
	if err == sql.ErrNoRows {
		return &SessionStateError{SessionID: sessionID, Reason: "session not found"}
	}
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if endTime.Valid {
		return &SessionStateError{SessionID: sessionID, Reason: "cannot log interaction on a closed session"}
	}

	query = tx.Rebind(`
		INSERT INTO interactions (id, session_id, timestamp, user_input, ai_response, feedback_score)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	_, err = tx.ExecContext(ctx, query,
		uuid.NewString(), sessionID, time.Now().UTC().Format(time.RFC3339Nano),
		userInput, aiResponse, feedbackScore)
	if err != nil {
		return fmt.Errorf("failed to log interaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit interaction: %w", err)
	}

	return nil
}

func (r *SQLSessionRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	var session models.Session
	query := r.db.Rebind(`
		SELECT id, user_id, language, lesson_type, difficulty, start_time, end_time, duration_seconds, score
		FROM sessions
		WHERE id = ?
	`)
	err := r.db.GetContext(ctx, &session, query, sessionID)
	if err == sql.ErrNoRows {
		return nil, &SessionStateError{SessionID: sessionID, Reason: "session not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}

func (r *SQLSessionRepository) GetSessionInteractions(ctx context.Context, sessionID string) ([]models.Interaction, error) {
	var interactions []models.Interaction
	query := r.db.Rebind(`
		SELECT id, session_id, timestamp, user_input, ai_response, feedback_score
		FROM interactions
		WHERE session_id = ?
		ORDER BY timestamp
	`)
	if err := r.db.SelectContext(ctx, &interactions, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to get interactions: %w", err)
	}

	return interactions, nil
}

type progressRow struct {
	Language     string          `db:"language"`
	LessonType   string          `db:"lesson_type"`
	Difficulty   string          `db:"difficulty"`
	AverageScore sql.NullFloat64 `db:"average_score"`
	SessionCount int             `db:"session_count"`
	TimeSpent    sql.NullInt64   `db:"time_spent"`
}

// GetUserProgress aggregates closed sessions grouped by language, lesson
// type and difficulty. The overall average is weighted by each group's
// session count, not a plain mean of the group averages.
func (r *SQLSessionRepository) GetUserProgress(ctx context.Context, userID, language string) (*models.ProgressSummary, error) {
	query := `
		SELECT language, lesson_type, difficulty,
		       AVG(score) AS average_score,
		       COUNT(*) AS session_count,
		       SUM(duration_seconds) AS time_spent
		FROM sessions
		WHERE user_id = ? AND end_time IS NOT NULL
	`
	args := []interface{}{userID}

	if language != "" {
		query += ` AND language = ?`
		args = append(args, language)
	}

	query += ` GROUP BY language, lesson_type, difficulty`

	var rows []progressRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query user progress: %w", err)
	}

	summary := &models.ProgressSummary{Sessions: make([]models.GroupProgress, 0, len(rows))}

	var weightedScore float64
	for _, row := range rows {
		group := models.GroupProgress{
			Language:     row.Language,
			LessonType:   row.LessonType,
			Difficulty:   row.Difficulty,
			SessionCount: row.SessionCount,
		}
		if row.AverageScore.Valid {
			group.AverageScore = row.AverageScore.Float64
			weightedScore += row.AverageScore.Float64 * float64(row.SessionCount)
		}
		if row.TimeSpent.Valid {
			group.TimeSpent = row.TimeSpent.Int64
		}

		summary.Sessions = append(summary.Sessions, group)
		summary.TotalSessions += row.SessionCount
		summary.TotalTime += group.TimeSpent
	}

	if summary.TotalSessions > 0 {
		summary.AverageScore = weightedScore / float64(summary.TotalSessions)
	}

	return summary, nil
}

func (r *SQLSessionRepository) Close() error {
	return r.db.Close()
}
