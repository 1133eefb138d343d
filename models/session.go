package models

type Session struct {
	ID              string  `json:"id" db:"id"`
	UserID          string  `json:"user_id" db:"user_id"`
	Language        string  `json:"language" db:"language"`
	LessonType      string  `json:"lesson_type" db:"lesson_type"`
	Difficulty      string  `json:"difficulty" db:"difficulty"`
	StartTime       string  `json:"start_time" db:"start_time"`
	EndTime         *string `json:"end_time,omitempty" db:"end_time"`
	DurationSeconds *int64  `json:"duration_seconds,omitempty" db:"duration_seconds"`
	Score           *int    `json:"score,omitempty" db:"score"`
}

type Interaction struct {
	ID            string `json:"id" db:"id"`
	SessionID     string `json:"session_id" db:"session_id"`
	Timestamp     string `json:"timestamp" db:"timestamp"`
	UserInput     string `json:"user_input" db:"user_input"`
	AIResponse    string `json:"ai_response" db:"ai_response"`
	FeedbackScore *int   `json:"feedback_score,omitempty" db:"feedback_score"`
}

type GroupProgress struct {
	Language     string  `json:"language" db:"language"`
	LessonType   string  `json:"lesson_type" db:"lesson_type"`
	Difficulty   string  `json:"difficulty" db:"difficulty"`
	AverageScore float64 `json:"average_score" db:"average_score"`
	SessionCount int     `json:"session_count" db:"session_count"`
	TimeSpent    int64   `json:"time_spent" db:"time_spent"`
}

// ProgressSummary is derived on demand from closed sessions; it is never
// stored. AverageScore is weighted by each group's session count.
type ProgressSummary struct {
	Sessions      []GroupProgress `json:"sessions"`
	TotalSessions int             `json:"total_sessions"`
	TotalTime     int64           `json:"total_time"`
	AverageScore  float64         `json:"average_score"`
}
