package tutor

import (
	"fmt"
	"testing"

	"linguatutor/models"
)

func TestConversationWindowNeverExceedsCapacity(t *testing.T) {
	window := NewConversationWindow(10)

	for i := 0; i < 50; i++ {
		window.Append(fmt.Sprintf("student-%d", i), fmt.Sprintf("tutor-%d", i))
		if window.Len() > 20 {
			t.Fatalf("window grew to %d messages after %d appends", window.Len(), i+1)
		}
	}

	if window.Len() != 20 {
		t.Errorf("expected 20 messages, got %d", window.Len())
	}
}

func TestConversationWindowEvictsOldestPairFirst(t *testing.T) {
	window := NewConversationWindow(3)

	for i := 0; i < 5; i++ {
		window.Append(fmt.Sprintf("student-%d", i), fmt.Sprintf("tutor-%d", i))
	}

	messages := window.Messages()
	if len(messages) != 6 {
		t.Fatalf("expected 6 messages, got %d", len(messages))
	}

	// Pairs 0 and 1 must have been evicted.
	if messages[0].Content != "student-2" {
		t.Errorf("expected oldest surviving message to be student-2, got %q", messages[0].Content)
	}
	if messages[5].Content != "tutor-4" {
		t.Errorf("expected newest message to be tutor-4, got %q", messages[5].Content)
	}
}

func TestConversationWindowMessageOrderAndRoles(t *testing.T) {
	window := NewConversationWindow(10)
	window.Append("Hola", "¡Hola! ¿Cómo estás?")
	window.Append("Bien, gracias", "¡Me alegro!")

	messages := window.Messages()
	expected := []struct {
		role    string
		content string
	}{
		{models.RoleStudent, "Hola"},
		{models.RoleTutor, "¡Hola! ¿Cómo estás?"},
		{models.RoleStudent, "Bien, gracias"},
		{models.RoleTutor, "¡Me alegro!"},
	}

	if len(messages) != len(expected) {
		t.Fatalf("expected %d messages, got %d", len(expected), len(messages))
	}
	for i, want := range expected {
		if messages[i].Role != want.role || messages[i].Content != want.content {
			t.Errorf("message %d = {%s %q}, expected {%s %q}",
				i, messages[i].Role, messages[i].Content, want.role, want.content)
		}
	}
}

func TestConversationWindowClear(t *testing.T) {
	window := NewConversationWindow(10)
	window.Append("hello", "hi")
	window.Append("how are you", "fine")

	window.Clear()

	if window.Len() != 0 {
		t.Errorf("expected empty window after clear, got %d messages", window.Len())
	}
	if len(window.Messages()) != 0 {
		t.Error("expected no messages after clear")
	}
}

func TestNewConversationWindowDefaultsCapacity(t *testing.T) {
	window := NewConversationWindow(0)

	for i := 0; i < 15; i++ {
		window.Append("s", "t")
	}

	if window.Len() != DefaultWindowSize*2 {
		t.Errorf("expected default capacity of %d pairs, got %d messages", DefaultWindowSize, window.Len())
	}
}
