package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"linguatutor/config"
	"linguatutor/db"
	"linguatutor/services"
	"linguatutor/services/llm"
	"linguatutor/services/tutor"
)

// Interactive terminal front-end for one tutoring session.
func main() {
	cfg := config.Load()

	provider, err := llm.New(cfg.ModelConfig())
	if err != nil {
		log.Fatalf("Failed to initialize model provider: %v", err)
	}

	sessionRepo, err := db.NewSQLSessionRepository(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to initialize session database: %v", err)
	}
	defer sessionRepo.Close()

	lessonService := services.NewLessonService()
	sessionService := services.NewSessionService(sessionRepo)
	engine := tutor.NewService(provider)

	reader := bufio.NewScanner(os.Stdin)

	fmt.Println("=== Language Tutor ===")
	userID := promptLine(reader, "Your name: ")
	language := promptLine(reader, "Language to learn (e.g. Spanish): ")
	difficulty := promptChoice(reader, "Difficulty (Beginner/Intermediate/Advanced): ", "Beginner")
	lessonType := promptChoice(reader, "Lesson type (e.g. Conversation Practice): ", services.LessonTypeConversation)

	engine.SetLearningContext(language, difficulty, lessonType, lessonService.FirstLessonData(lessonType, difficulty))

	ctx := context.Background()
	sessionID, err := sessionService.StartSession(ctx, userID, language, lessonType, difficulty)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	invokeCtx, cancel := context.WithTimeout(ctx, cfg.InvokeTimeout)
	introduction, err := engine.GenerateLessonIntroduction(invokeCtx)
	cancel()
	if err != nil {
		fmt.Println("Tutor: Welcome! Let's get started.")
	} else {
		fmt.Printf("Tutor: %s\n", introduction)
	}

	fmt.Println("\nCommands: /exercise, /summary, /progress, /quit")

	var scoreTotal, turns int
	for {
		fmt.Print("\nYou: ")
		if !reader.Scan() {
			break
		}
		input := strings.TrimSpace(reader.Text())
		if input == "" {
			continue
		}

		switch input {
		case "/quit":
			endSession(ctx, sessionService, engine, sessionID, scoreTotal, turns)
			return

		case "/exercise":
			invokeCtx, cancel := context.WithTimeout(ctx, cfg.InvokeTimeout)
			exercise := engine.GeneratePracticeExercise(invokeCtx)
			cancel()
			fmt.Printf("\n--- %s (%s) ---\n%s\n%s\n", exercise.Title, exercise.Type, exercise.Instructions, exercise.Content)

		case "/summary":
			invokeCtx, cancel := context.WithTimeout(ctx, cfg.InvokeTimeout)
			summary := engine.LessonSummary(invokeCtx)
			cancel()
			printSummary(summary.Summary, summary.Achievements, summary.AreasToImprove, summary.NextSteps)

		case "/progress":
			progress, err := sessionService.GetUserProgress(ctx, userID, "")
			if err != nil {
				fmt.Printf("Could not load progress: %v\n", err)
				continue
			}
			fmt.Printf("\nSessions: %d, total time: %ds, average score: %.1f\n",
				progress.TotalSessions, progress.TotalTime, progress.AverageScore)

		default:
			invokeCtx, cancel := context.WithTimeout(ctx, cfg.InvokeTimeout)
			result := engine.ProcessStudentInput(invokeCtx, input)
			cancel()

			fmt.Printf("Tutor: %s\n", result.Response)
			if len(result.Feedback.Suggestions) > 0 {
				fmt.Printf("(Tip: %s)\n", result.Feedback.Suggestions[0])
			}

			score := result.Feedback.GrammarScore
			if err := sessionService.LogInteraction(ctx, sessionID, input, result.Response, &score); err != nil {
				log.Printf("[ERROR] Failed to log interaction: %v", err)
			}
			scoreTotal += score
			turns++
		}
	}

	endSession(ctx, sessionService, engine, sessionID, scoreTotal, turns)
}

func endSession(ctx context.Context, sessions *services.SessionService, engine *tutor.Service, sessionID string, scoreTotal, turns int) {
	var score *int
	if turns > 0 {
		avg := scoreTotal / turns
		score = &avg
	}

	if err := sessions.EndSession(ctx, sessionID, score); err != nil {
		log.Printf("[ERROR] Failed to end session: %v", err)
	}

	summary := engine.LessonSummary(ctx)
	printSummary(summary.Summary, summary.Achievements, summary.AreasToImprove, summary.NextSteps)
	fmt.Println("\nGoodbye! Keep practicing!")
}

func printSummary(summary string, achievements, areasToImprove, nextSteps []string) {
	fmt.Printf("\n--- Lesson Summary ---\n%s\n", summary)
	for _, a := range achievements {
		fmt.Printf("  + %s\n", a)
	}
	for _, a := range areasToImprove {
		fmt.Printf("  - %s\n", a)
	}
	for _, n := range nextSteps {
		fmt.Printf("  > %s\n", n)
	}
}

func promptLine(reader *bufio.Scanner, prompt string) string {
	fmt.Print(prompt)
	if !reader.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(reader.Text())
}

func promptChoice(reader *bufio.Scanner, prompt, fallback string) string {
	value := promptLine(reader, prompt)
	if value == "" {
		return fallback
	}
	return value
}
