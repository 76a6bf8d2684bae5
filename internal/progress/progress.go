// Package progress derives render state for the study views from server
// progress snapshots plus a local selection index. It is pure: no I/O, no
// component state, so resume/clamp behavior is testable on its own.
package progress

import (
	"fmt"

	"yt-study-copilot/internal/model"
)

// View is the navigation state for one indexed deck (flashcards, quiz
// questions, chapters).
type View struct {
	Total   int
	Index   int
	CanPrev bool
	CanNext bool
}

// Reduce clamps a selection into [0, total-1] and derives nav flags. An
// empty deck pins the index to 0 and disables navigation.
func Reduce(total, selection int) View {
	if total <= 0 {
		return View{Total: 0, Index: 0}
	}
	idx := Clamp(selection, total)
	return View{
		Total:   total,
		Index:   idx,
		CanPrev: idx > 0,
		CanNext: idx < total-1,
	}
}

// Clamp bounds an index into [0, total-1]. Total must be positive.
func Clamp(idx, total int) int {
	if idx < 0 {
		return 0
	}
	if idx > total-1 {
		return total - 1
	}
	return idx
}

// ResumeFlashcardIndex returns the first card not yet marked known, or 0
// when every card is known or there are no cards. The server provides no
// resume index for flashcards, so the client derives one.
func ResumeFlashcardIndex(items []model.FlashcardProgressItem) int {
	for i, it := range items {
		if it.Status != model.FlashcardKnown {
			return i
		}
	}
	return 0
}

// ResumeQuizIndex returns the first unseen question (no status at all), or
// 0 when every question has been answered or there are no questions.
func ResumeQuizIndex(items []model.QuizProgressItem) int {
	for i, it := range items {
		if it.Status == "" {
			return i
		}
	}
	return 0
}

// ResumeChapterIndex trusts the server-provided resume index but clamps it
// into range, falling back to 0 for empty chapter lists.
func ResumeChapterIndex(p model.ChapterProgress) int {
	if p.TotalChapters <= 0 {
		return 0
	}
	return Clamp(p.ResumeChapterIndex, p.TotalChapters)
}

// FlashcardStatusAt returns the marked status of a card, or "" when the
// index is unmarked or out of range.
func FlashcardStatusAt(p model.FlashcardProgress, idx int) string {
	if idx < 0 || idx >= len(p.Items) {
		return ""
	}
	return p.Items[idx].Status
}

func QuizStatusAt(p model.QuizProgress, idx int) string {
	if idx < 0 || idx >= len(p.Items) {
		return ""
	}
	return p.Items[idx].Status
}

func ChapterStatusAt(p model.ChapterProgress, idx int) string {
	if idx < 0 || idx >= len(p.Items) {
		return ""
	}
	return p.Items[idx].Status
}

// Accuracy formats correct/seen as a rounded percentage, "-" when nothing
// has been seen yet.
func Accuracy(correct, seen int) string {
	if seen <= 0 {
		return "-"
	}
	pct := float64(correct) / float64(seen) * 100
	return fmt.Sprintf("%.0f%%", pct)
}
