package services

import (
	"log"
	"strings"

	"linguatutor/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

type LessonService struct {
	lessons map[string]map[string][]models.Lesson
}

func NewLessonService() *LessonService {
	return &LessonService{lessons: defaultLessons}
}

// GetLessons returns the lesson records for a lesson type and difficulty.
func (s *LessonService) GetLessons(lessonType, difficulty string) []models.Lesson {
	byDifficulty, ok := s.lessons[lessonType]
	if !ok {
		log.Printf("[INFO] No lessons for lesson type %q", lessonType)
		return nil
	}

	lessons := byDifficulty[strings.ToLower(difficulty)]
	log.Printf("[INFO] Found %d lessons for %s (%s)", len(lessons), lessonType, difficulty)
	return lessons
}

// FirstLessonData returns the first matching lesson in engine shape, or nil
// when none exists so the engine falls back to an empty lesson context.
func (s *LessonService) FirstLessonData(lessonType, difficulty string) *models.LessonData {
	lessons := s.GetLessons(lessonType, difficulty)
	if len(lessons) == 0 {
		return nil
	}
	return lessons[0].Data()
}

// SearchLessons finds lessons whose title, topics or vocabulary fuzzily
// match any of the search terms.
func (s *LessonService) SearchLessons(searchTerms []string) []models.Lesson {
	log.Printf("[INFO] Starting lesson search with %d search terms", len(searchTerms))

	all := s.allLessons()
	if len(searchTerms) == 0 {
		return all
	}

	matching := lo.Filter(all, func(lesson models.Lesson, _ int) bool {
		return s.lessonMatchesSearch(lesson, searchTerms)
	})

	log.Printf("[INFO] Found %d lessons matching search criteria", len(matching))
	return matching
}

func (s *LessonService) allLessons() []models.Lesson {
	var all []models.Lesson
	for _, lessonType := range []string{LessonTypeConversation, LessonTypeGrammar, LessonTypeVocabulary} {
		for _, difficulty := range []string{"beginner", "intermediate", "advanced"} {
			all = append(all, s.lessons[lessonType][difficulty]...)
		}
	}
	return all
}

func (s *LessonService) lessonMatchesSearch(lesson models.Lesson, searchTerms []string) bool {
	haystack := append([]string{lesson.Title}, lesson.Topics...)
	haystack = append(haystack, lesson.Vocabulary...)

	words := lo.FlatMap(haystack, func(entry string, _ int) []string {
		return strings.Fields(strings.ToLower(entry))
	})

	for _, term := range searchTerms {
		if len(fuzzy.Find(strings.ToLower(term), words)) > 0 {
			return true
		}
		if fuzzy.MatchFold(term, lesson.Description) {
			return true
		}
	}

	return false
}
