package models

type LearningContext struct {
	Language   string      `json:"language"`
	Difficulty string      `json:"difficulty"`
	LessonType string      `json:"lesson_type"`
	LessonData *LessonData `json:"lesson_data,omitempty"`
}

type LessonData struct {
	Title           string     `json:"title,omitempty"`
	Description     string     `json:"description,omitempty"`
	Topics          []string   `json:"topics,omitempty"`
	Vocabulary      []string   `json:"vocabulary,omitempty"`
	SampleDialogues []Dialogue `json:"sample_dialogues,omitempty"`
}

type Dialogue struct {
	Scenario string   `json:"scenario"`
	Lines    []string `json:"dialogue"`
}
