package tutor

import (
	"time"

	"linguatutor/models"
)

const DefaultWindowSize = 10

type exchange struct {
	student models.Message
	tutor   models.Message
}

// ConversationWindow keeps the most recent k student/tutor exchanges in
// dialogue order, evicting the oldest pair first.
type ConversationWindow struct {
	exchanges []exchange
	capacity  int
}

func NewConversationWindow(capacity int) *ConversationWindow {
	if capacity <= 0 {
		capacity = DefaultWindowSize
	}
	return &ConversationWindow{capacity: capacity}
}

// Append records one student/tutor exchange, evicting the oldest pair once
// the window is full.
func (w *ConversationWindow) Append(studentMessage, tutorMessage string) {
	now := time.Now().UTC().Format(time.RFC3339)
	w.exchanges = append(w.exchanges, exchange{
		student: models.Message{Role: models.RoleStudent, Content: studentMessage, Timestamp: now},
		tutor:   models.Message{Role: models.RoleTutor, Content: tutorMessage, Timestamp: now},
	})
	if len(w.exchanges) > w.capacity {
		w.exchanges = w.exchanges[len(w.exchanges)-w.capacity:]
	}
}

// Messages returns the window contents as an ordered message list ready for
// the next provider call.
func (w *ConversationWindow) Messages() []models.Message {
	messages := make([]models.Message, 0, len(w.exchanges)*2)
	for _, ex := range w.exchanges {
		messages = append(messages, ex.student, ex.tutor)
	}
	return messages
}

func (w *ConversationWindow) Len() int {
	return len(w.exchanges) * 2
}

func (w *ConversationWindow) Clear() {
	w.exchanges = nil
}
