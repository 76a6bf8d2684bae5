package model

// Job statuses as reported by GET /jobs/{id}.
const (
	JobQueued  = "queued"
	JobRunning = "running"
	JobDone    = "done"
	JobFailed  = "failed"
)

// IsTerminalJobStatus reports whether polling can stop.
func IsTerminalJobStatus(status string) bool {
	return status == JobDone || status == JobFailed
}

// Material kinds produced by the generate job.
const (
	KindSummary      = "summary"
	KindKeyTakeaways = "key_takeaways"
	KindChapters     = "chapters"
	KindFlashcards   = "flashcards"
	KindQuiz         = "quiz"
)

// Flashcard progress statuses and mark actions.
const (
	FlashcardKnown       = "known"
	FlashcardReviewLater = "review_later"

	FlashcardActionKnown       = "known"
	FlashcardActionReviewLater = "review_later"
	FlashcardActionReset       = "reset"
	FlashcardActionSeen        = "seen"
)

// Quiz progress statuses and mark actions.
const (
	QuizCorrect = "correct"
	QuizWrong   = "wrong"

	QuizActionCorrect = "correct"
	QuizActionWrong   = "wrong"
	QuizActionReset   = "reset"
	QuizActionSeen    = "seen"
)

// Chapter progress statuses and mark actions.
const (
	ChapterInProgress = "in_progress"
	ChapterCompleted  = "completed"

	ChapterActionOpen     = "open"
	ChapterActionComplete = "complete"
	ChapterActionReset    = "reset"
)

var flashcardActions = map[string]bool{
	FlashcardActionKnown:       true,
	FlashcardActionReviewLater: true,
	FlashcardActionReset:       true,
	FlashcardActionSeen:        true,
}

var quizActions = map[string]bool{
	QuizActionCorrect: true,
	QuizActionWrong:   true,
	QuizActionReset:   true,
	QuizActionSeen:    true,
}

var chapterActions = map[string]bool{
	ChapterActionOpen:     true,
	ChapterActionComplete: true,
	ChapterActionReset:    true,
}

func IsFlashcardAction(action string) bool { return flashcardActions[action] }

func IsQuizAction(action string) bool { return quizActions[action] }

func IsChapterAction(action string) bool { return chapterActions[action] }
