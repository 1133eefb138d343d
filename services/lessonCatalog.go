package services

import "linguatutor/models"

// Built-in lesson templates, keyed by lesson type and difficulty. Lesson
// content authoring lives outside this module; these defaults keep the tutor
// usable without any external lesson source.

const (
	LessonTypeConversation  = "Conversation Practice"
	LessonTypeGrammar       = "Grammar Lessons"
	LessonTypeVocabulary    = "Vocabulary Building"
	LessonTypePronunciation = "Pronunciation Practice"
)

var defaultLessons = map[string]map[string][]models.Lesson{
	LessonTypeConversation: {
		"beginner": {
			{
				ID:          "conv_begin_1",
				Title:       "Basic Greetings",
				Description: "Learn how to greet people and introduce yourself",
				Topics:      []string{"hello", "goodbye", "my name is", "nice to meet you"},
				Vocabulary:  []string{"hello", "goodbye", "name", "please", "thank you"},
				SampleDialogues: []models.Dialogue{
					{
						Scenario: "Meeting someone new",
						Lines: []string{
							"A: Hello! My name is Sarah. What's your name?",
							"B: Hi Sarah! I'm Miguel. Nice to meet you!",
							"A: Nice to meet you too, Miguel!",
						},
					},
				},
			},
			{
				ID:          "conv_begin_2",
				Title:       "Asking for Directions",
				Description: "Learn how to ask for and give basic directions",
				Topics:      []string{"where is", "how to get to", "left", "right", "straight"},
				Vocabulary:  []string{"where", "left", "right", "straight", "near", "far"},
				SampleDialogues: []models.Dialogue{
					{
						Scenario: "Finding a restaurant",
						Lines: []string{
							"A: Excuse me, where is the nearest restaurant?",
							"B: Go straight for two blocks, then turn left.",
							"A: Thank you very much!",
						},
					},
				},
			},
		},
		"intermediate": {
			{
				ID:          "conv_inter_1",
				Title:       "Making Plans",
				Description: "Practice discussing future plans and schedules",
				Topics:      []string{"future tense", "time expressions", "making suggestions"},
				Vocabulary:  []string{"tomorrow", "next week", "maybe", "definitely", "probably"},
				SampleDialogues: []models.Dialogue{
					{
						Scenario: "Planning weekend activities",
						Lines: []string{
							"A: What are you doing this weekend?",
							"B: I'm thinking about going to the movies. Would you like to come?",
							"A: That sounds great! What time should we meet?",
						},
					},
				},
			},
		},
		"advanced": {
			{
				ID:          "conv_adv_1",
				Title:       "Expressing Opinions",
				Description: "Learn to express and defend your opinions in discussions",
				Topics:      []string{"opinion expressions", "agreement/disagreement", "argumentation"},
				Vocabulary:  []string{"in my opinion", "I believe", "however", "furthermore", "on the other hand"},
				SampleDialogues: []models.Dialogue{
					{
						Scenario: "Discussing current events",
						Lines: []string{
							"A: What do you think about the new environmental policies?",
							"B: In my opinion, they're a step in the right direction, but more needs to be done.",
							"A: I agree to some extent, however, I think the implementation might be challenging.",
						},
					},
				},
			},
		},
	},
	LessonTypeGrammar: {
		"beginner": {
			{
				ID:          "gram_begin_1",
				Title:       "Present Tense Verbs",
				Description: "Learn basic present tense conjugation",
				Topics:      []string{"present tense", "subject-verb agreement", "regular verbs"},
				Vocabulary:  []string{"speak", "work", "live", "study", "eat"},
			},
		},
		"intermediate": {
			{
				ID:          "gram_inter_1",
				Title:       "Past and Future Tenses",
				Description: "Practice narrating past events and future plans",
				Topics:      []string{"past tense", "future tense", "irregular verbs"},
				Vocabulary:  []string{"yesterday", "ago", "will", "going to", "already"},
			},
		},
		"advanced": {
			{
				ID:          "gram_adv_1",
				Title:       "Subjunctive and Conditionals",
				Description: "Master hypothetical and conditional constructions",
				Topics:      []string{"subjunctive mood", "conditional sentences", "complex clauses"},
				Vocabulary:  []string{"if", "unless", "would", "wish", "provided that"},
			},
		},
	},
	LessonTypeVocabulary: {
		"beginner": {
			{
				ID:          "vocab_begin_1",
				Title:       "Everyday Objects",
				Description: "Build vocabulary for common household and daily items",
				Topics:      []string{"home", "food", "clothing", "daily routine"},
				Vocabulary:  []string{"house", "table", "water", "bread", "shirt", "morning"},
			},
		},
		"intermediate": {
			{
				ID:          "vocab_inter_1",
				Title:       "Work and Travel",
				Description: "Expand vocabulary around professional life and travel",
				Topics:      []string{"occupations", "transportation", "airports", "hotels"},
				Vocabulary:  []string{"meeting", "schedule", "ticket", "luggage", "reservation"},
			},
		},
		"advanced": {
			{
				ID:          "vocab_adv_1",
				Title:       "Abstract Concepts",
				Description: "Discuss ideas, emotions and society with precision",
				Topics:      []string{"emotions", "society", "culture", "idioms"},
				Vocabulary:  []string{"nevertheless", "assumption", "perspective", "controversy", "nuance"},
			},
		},
	},
}
