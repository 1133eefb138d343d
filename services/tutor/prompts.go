package tutor

import (
	"fmt"
	"strings"

	"linguatutor/models"
)

// Prompt builders are pure string templating over the learning context.
// Identical context must always produce identical prompt text.

const systemPromptTemplate = `You are an expert language tutor for %s. Your student is at a %s level and is working on %s.

Your teaching approach should be:
1. Encouraging and patient
2. Corrective but constructive
3. Adaptive to the student's level
4. Interactive and engaging
5. Focused on practical usage

Guidelines:
- Always respond in a mix of %s and English appropriate for the %s level
- For beginners: Use more English with simple %s phrases
- For intermediate: Use more %s with English explanations when needed
- For advanced: Primarily use %s with minimal English

When the student makes mistakes:
- Gently correct them
- Explain why it's incorrect
- Provide the correct version
- Give additional examples if helpful

Encourage the student to practice speaking and ask questions.`

const introductionPromptTemplate = `Generate a friendly introduction for a %s level %s lesson on %s.

The introduction should:
1. Welcome the student (do NOT use placeholder names like [Student's Name] - just say "Welcome!" or "Hello!")
2. Briefly explain what they'll learn
3. Set expectations for the lesson
4. Ask a question to start the conversation

Important: Use actual greetings, not placeholders. Be direct and personal without using brackets or placeholder text.

Keep it appropriate for %s level students.`

const analysisPromptTemplate = `Analyze this %s text from a %s level student: "%s"

Provide analysis in JSON format:
{
    "grammar_score": 0-10,
    "vocabulary_level": "beginner/intermediate/advanced",
    "errors": ["list of specific errors if any"],
    "strengths": ["list of things done well"],
    "suggestions": ["specific improvement suggestions"],
    "confidence": 0.0-1.0
}

Focus on constructive feedback appropriate for their level.`

const analysisSystemPrompt = `You are a language analysis expert. Respond only with valid JSON.`

const exercisePromptTemplate = `Create a practice exercise for a %s level %s student studying %s.

The exercise should be:
1. Appropriate for their level
2. Interactive and engaging
3. Related to the current lesson topic
4. Include clear instructions

Format as JSON:
{
    "type": "conversation/fill_blank/translation/role_play",
    "title": "Exercise title",
    "instructions": "Clear instructions for the student",
    "content": "Exercise content",
    "expected_response": "What kind of response you expect"
}`

const summaryPrompt = `Based on our conversation, provide a lesson summary in JSON format:
{
    "summary": "Brief summary of what we covered",
    "achievements": ["List of things the student did well"],
    "areas_to_improve": ["Areas where the student can improve"],
    "next_steps": ["Suggestions for continued learning"]
}`

// BuildSystemPrompt renders the tutor persona for the current learning
// context, including lesson topics and vocabulary when present.
func BuildSystemPrompt(lc models.LearningContext) string {
	var prompt strings.Builder
	prompt.WriteString(fmt.Sprintf(systemPromptTemplate,
		lc.Language, lc.Difficulty, lc.LessonType,
		lc.Language, lc.Difficulty, lc.Language, lc.Language, lc.Language))

	if lc.LessonData != nil {
		if len(lc.LessonData.Topics) > 0 {
			prompt.WriteString(fmt.Sprintf("\n\nCurrent lesson topics: %s", strings.Join(lc.LessonData.Topics, ", ")))
		}
		if len(lc.LessonData.Vocabulary) > 0 {
			prompt.WriteString(fmt.Sprintf("\n\nKey vocabulary to practice: %s", strings.Join(lc.LessonData.Vocabulary, ", ")))
		}
		if len(lc.LessonData.SampleDialogues) > 0 {
			prompt.WriteString("\n\nYou can reference these sample dialogues for context and practice.")
		}
	}

	return prompt.String()
}

func BuildIntroductionPrompt(lc models.LearningContext) string {
	var prompt strings.Builder
	prompt.WriteString(fmt.Sprintf(introductionPromptTemplate,
		lc.Difficulty, lc.Language, lc.LessonType, lc.Difficulty))

	if lc.LessonData != nil && lc.LessonData.Title != "" {
		prompt.WriteString(fmt.Sprintf("\n\nSpecific lesson: %s", lc.LessonData.Title))
		if lc.LessonData.Description != "" {
			prompt.WriteString(fmt.Sprintf("\nDescription: %s", lc.LessonData.Description))
		}
	}

	return prompt.String()
}

func BuildAnalysisPrompt(lc models.LearningContext, studentInput string) string {
	return fmt.Sprintf(analysisPromptTemplate, lc.Language, lc.Difficulty, studentInput)
}

func BuildExercisePrompt(lc models.LearningContext) string {
	var prompt strings.Builder
	prompt.WriteString(fmt.Sprintf(exercisePromptTemplate, lc.Difficulty, lc.Language, lc.LessonType))

	if lc.LessonData != nil && len(lc.LessonData.Topics) > 0 {
		prompt.WriteString(fmt.Sprintf("\n\nFocus on these topics: %s", strings.Join(lc.LessonData.Topics, ", ")))
	}

	return prompt.String()
}

func BuildSummaryPrompt() string {
	return summaryPrompt
}
