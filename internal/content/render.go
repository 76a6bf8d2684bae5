package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"yt-study-copilot/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	answerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

const (
	emptySummary    = "No summary found."
	emptyTakeaways  = "No takeaways found."
	emptyChapters   = "No chapters found."
	emptyFlashcards = "No flashcards found."
	emptyQuiz       = "No quiz items found."
)

// Render produces the terminal presentation of one material row. Unknown
// kinds fall back to pretty-printed raw JSON.
func Render(m model.StudyMaterial) string {
	switch m.Kind {
	case model.KindSummary:
		text := SummaryText(m)
		if text == "" {
			return mutedStyle.Render(emptySummary)
		}
		return text
	case model.KindKeyTakeaways:
		items := Takeaways(m)
		if len(items) == 0 {
			return mutedStyle.Render(emptyTakeaways)
		}
		var b strings.Builder
		for _, item := range items {
			fmt.Fprintf(&b, "  • %s\n", item)
		}
		return strings.TrimRight(b.String(), "\n")
	case model.KindChapters:
		chapters := Chapters(m)
		if len(chapters) == 0 {
			return mutedStyle.Render(emptyChapters)
		}
		var b strings.Builder
		for i, ch := range chapters {
			title := ch.Title
			if strings.TrimSpace(title) == "" {
				title = fmt.Sprintf("Chapter %d", i+1)
			}
			b.WriteString(headingStyle.Render(title))
			b.WriteString("\n")
			if ch.Summary != "" {
				fmt.Fprintf(&b, "  %s\n", ch.Summary)
			}
			if len(ch.Sentences) > 0 {
				fmt.Fprintf(&b, "  %s\n", mutedStyle.Render(fmt.Sprintf("(%d sentences)", len(ch.Sentences))))
			}
		}
		return strings.TrimRight(b.String(), "\n")
	case model.KindFlashcards:
		cards := Flashcards(m)
		if len(cards) == 0 {
			return mutedStyle.Render(emptyFlashcards)
		}
		var b strings.Builder
		for i, fc := range cards {
			q := fc.Q
			if strings.TrimSpace(q) == "" {
				q = fmt.Sprintf("Q%d", i+1)
			}
			b.WriteString(headingStyle.Render(q))
			b.WriteString("\n")
			fmt.Fprintf(&b, "  %s\n", fc.A)
		}
		return strings.TrimRight(b.String(), "\n")
	case model.KindQuiz:
		items := Quiz(m)
		if len(items) == 0 {
			return mutedStyle.Render(emptyQuiz)
		}
		var b strings.Builder
		for i, q := range items {
			question := q.Question
			if strings.TrimSpace(question) == "" {
				question = fmt.Sprintf("Question %d", i+1)
			}
			b.WriteString(headingStyle.Render(question))
			b.WriteString("\n")
			for j, opt := range q.Options {
				fmt.Fprintf(&b, "  %d. %s\n", j+1, opt)
			}
			if q.AnswerIndex != nil {
				fmt.Fprintf(&b, "  %s\n", answerStyle.Render(fmt.Sprintf("Answer: %d", *q.AnswerIndex+1)))
			}
		}
		return strings.TrimRight(b.String(), "\n")
	default:
		return prettyJSON(m.ContentJSON)
	}
}

func prettyJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return mutedStyle.Render("(empty)")
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// FormatTime renders seconds as m:ss, or h:mm:ss past the hour mark, the
// same shape YouTube shows in timestamps.
func FormatTime(sec float64) string {
	s := int(sec)
	if s < 0 {
		s = 0
	}
	hh := s / 3600
	mm := (s % 3600) / 60
	ss := s % 60
	if hh > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hh, mm, ss)
	}
	return fmt.Sprintf("%d:%02d", mm, ss)
}
