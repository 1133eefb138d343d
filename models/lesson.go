package models

type Lesson struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Topics          []string   `json:"topics"`
	Vocabulary      []string   `json:"vocabulary"`
	SampleDialogues []Dialogue `json:"sample_dialogues,omitempty"`
}

// Data returns the lesson in the shape the tutor engine consumes.
func (l *Lesson) Data() *LessonData {
	return &LessonData{
		Title:           l.Title,
		Description:     l.Description,
		Topics:          l.Topics,
		Vocabulary:      l.Vocabulary,
		SampleDialogues: l.SampleDialogues,
	}
}
