package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"yt-study-copilot/internal/content"
	"yt-study-copilot/internal/model"
	"yt-study-copilot/internal/progress"
)

var (
	studyTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	studyMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	studyErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	studyOKStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	studyWarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	studyPanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	studyTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	studyTabSelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Bold(true).Padding(0, 1)
)

var studyTabNames = [studyTabCount]string{"Hub", "Flashcards", "Quiz", "Chapters", "Transcript"}

func (m studyModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Study Pack %d", m.packID)
	if m.pack.Title != "" {
		title += ": " + m.pack.Title
	}
	b.WriteString(studyTitleStyle.Render(title))
	b.WriteString("\n")

	var tabs []string
	for i, name := range studyTabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if studyTab(i) == m.tab {
			tabs = append(tabs, studyTabSelStyle.Render(label))
		} else {
			tabs = append(tabs, studyTabStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(studyErrorStyle.Render("error: " + m.errMsg))
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString(studyMutedStyle.Render("loading..."))
		b.WriteString("\n")
		return b.String()
	}

	switch m.tab {
	case tabHub:
		b.WriteString(m.viewHub())
	case tabFlashcards:
		b.WriteString(m.viewFlashcards())
	case tabQuiz:
		b.WriteString(m.viewQuiz())
	case tabChapters:
		b.WriteString(m.viewChapters())
	case tabTranscript:
		b.WriteString(m.viewTranscript())
	}

	b.WriteString("\n")
	b.WriteString(studyMutedStyle.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m studyModel) helpLine() string {
	common := "tab/1-5 switch • R refresh • q quit"
	switch m.tab {
	case tabFlashcards:
		return "←/→ card • space flip • k known • v review later • x reset • " + common
	case tabQuiz:
		return "←/→ question • ↑/↓ option • enter check • c/w mark • x reset • " + common
	case tabChapters:
		return "←/→ chapter • enter open • c complete • x reset • s resume • " + common
	case tabTranscript:
		return "/ search • n/p page • " + common
	default:
		return common
	}
}

func (m studyModel) viewHub() string {
	var b strings.Builder

	fRes := progress.Reduce(len(m.cards), progress.ResumeFlashcardIndex(m.flash.Items))
	qRes := progress.Reduce(len(m.questions), progress.ResumeQuizIndex(m.quiz.Items))
	cRes := progress.Reduce(len(m.chapters), progress.ResumeChapterIndex(m.chap))

	rows := []string{
		fmt.Sprintf("Materials    %d rows generated", len(m.materials)),
		fmt.Sprintf("Flashcards   %d/%d known • %d to review • resume at card %d",
			m.flash.KnownCards, m.flash.TotalCards, m.flash.ReviewLaterCards, fRes.Index+1),
		fmt.Sprintf("Quiz         %d/%d seen • accuracy %s • resume at question %d",
			m.quiz.SeenQuestions, m.quiz.TotalQuestions,
			progress.Accuracy(m.quiz.CorrectQuestions, m.quiz.SeenQuestions), qRes.Index+1),
		fmt.Sprintf("Chapters     %d/%d completed • resume at chapter %d",
			m.chap.CompletedChapters, m.chap.TotalChapters, cRes.Index+1),
	}
	b.WriteString(studyPanelStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")

	if row := content.FindMaterial(m.materials, model.KindSummary); row != nil {
		b.WriteString("\n")
		b.WriteString(studyTitleStyle.Render("Summary"))
		b.WriteString("\n")
		b.WriteString(content.Render(*row))
		b.WriteString("\n")
	}
	return b.String()
}

func (m studyModel) viewFlashcards() string {
	view := progress.Reduce(len(m.cards), m.cardIdx)
	if view.Total == 0 {
		return studyMutedStyle.Render("No flashcards found for this pack yet. Generate materials first.") + "\n"
	}

	var b strings.Builder
	status := progress.FlashcardStatusAt(m.flash, view.Index)
	header := fmt.Sprintf("Card %d/%d", view.Index+1, view.Total)
	if status != "" {
		header += " • " + status
	}
	b.WriteString(studyMutedStyle.Render(header))
	b.WriteString("\n")

	card := m.cards[view.Index]
	face := card.Q
	label := "Q"
	if m.flipped {
		face = card.A
		label = "A"
	}
	b.WriteString(studyPanelStyle.Render(fmt.Sprintf("%s: %s", label, face)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Seen %d/%d • Known %d • Review later %d\n",
		m.flash.SeenCards, view.Total, m.flash.KnownCards, m.flash.ReviewLaterCards)
	if m.busy {
		b.WriteString(studyMutedStyle.Render("saving..."))
		b.WriteString("\n")
	}
	return b.String()
}

func (m studyModel) viewQuiz() string {
	view := progress.Reduce(len(m.questions), m.qIdx)
	if view.Total == 0 {
		return studyMutedStyle.Render("No quiz found for this pack yet. Generate materials first.") + "\n"
	}

	var b strings.Builder
	cur := m.questions[view.Index]
	status := progress.QuizStatusAt(m.quiz, view.Index)
	header := fmt.Sprintf("Question %d/%d", view.Index+1, view.Total)
	if status != "" {
		header += " • " + status
	}
	b.WriteString(studyMutedStyle.Render(header))
	b.WriteString("\n")

	question := cur.Question
	if strings.TrimSpace(question) == "" {
		question = fmt.Sprintf("Question %d", view.Index+1)
	}
	b.WriteString(studyTitleStyle.Render(question))
	b.WriteString("\n")

	for i, opt := range cur.Options {
		marker := "  "
		if i == m.selected {
			marker = "> "
		}
		line := fmt.Sprintf("%s%d. %s", marker, i+1, opt)
		if m.checked && cur.AnswerIndex != nil {
			switch {
			case i == *cur.AnswerIndex:
				line = studyOKStyle.Render(line)
			case i == m.selected:
				line = studyErrorStyle.Render(line)
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.checked {
		switch {
		case cur.AnswerIndex == nil:
			b.WriteString(studyWarnStyle.Render("No answer key for this question; mark it with c (correct) or w (wrong)."))
		case m.selected == *cur.AnswerIndex:
			b.WriteString(studyOKStyle.Render("Correct!"))
		default:
			b.WriteString(studyErrorStyle.Render(fmt.Sprintf("Wrong. Correct answer is option %d.", *cur.AnswerIndex+1)))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Seen %d/%d • Correct %d • Wrong %d • Accuracy %s\n",
		m.quiz.SeenQuestions, view.Total, m.quiz.CorrectQuestions, m.quiz.WrongQuestions,
		progress.Accuracy(m.quiz.CorrectQuestions, m.quiz.SeenQuestions))
	if m.busy {
		b.WriteString(studyMutedStyle.Render("saving..."))
		b.WriteString("\n")
	}
	return b.String()
}

func (m studyModel) viewChapters() string {
	view := progress.Reduce(len(m.chapters), m.chapIdx)
	if view.Total == 0 {
		return studyMutedStyle.Render("No chapters found for this pack yet. Generate materials first.") + "\n"
	}

	var b strings.Builder
	cur := m.chapters[view.Index]
	status := progress.ChapterStatusAt(m.chap, view.Index)
	header := fmt.Sprintf("Chapter %d/%d", view.Index+1, view.Total)
	if status != "" {
		header += " • " + status
	}
	b.WriteString(studyMutedStyle.Render(header))
	b.WriteString("\n")

	title := cur.Title
	if strings.TrimSpace(title) == "" {
		title = fmt.Sprintf("Chapter %d", view.Index+1)
	}
	b.WriteString(studyTitleStyle.Render(title))
	b.WriteString("\n")
	if cur.Summary != "" {
		b.WriteString(cur.Summary)
		b.WriteString("\n")
	}

	if m.showSentences && len(cur.Sentences) > 0 {
		var lines []string
		for _, s := range cur.Sentences {
			lines = append(lines, "• "+s)
		}
		b.WriteString(studyPanelStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	} else if len(cur.Sentences) > 0 {
		b.WriteString(studyMutedStyle.Render(fmt.Sprintf("(%d sentences; press enter to open)", len(cur.Sentences))))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Completed %d/%d\n", m.chap.CompletedChapters, view.Total)
	if m.busy {
		b.WriteString(studyMutedStyle.Render("saving..."))
		b.WriteString("\n")
	}
	return b.String()
}

func (m studyModel) viewTranscript() string {
	var b strings.Builder

	prompt := "/ to search"
	if m.searching || m.search.Value() != "" {
		prompt = m.search.View()
	}
	b.WriteString(prompt)
	b.WriteString("\n")

	if m.chunksBusy {
		b.WriteString(studyMutedStyle.Render("searching..."))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.chunks.Items) == 0 {
		b.WriteString(studyMutedStyle.Render("No transcript chunks matched."))
		b.WriteString("\n")
		return b.String()
	}

	visible := m.chunks.Items
	if limit := m.visibleChunkRows(); len(visible) > limit {
		visible = visible[:limit]
	}
	for _, ch := range visible {
		fmt.Fprintf(&b, "%s %s\n",
			studyMutedStyle.Render(fmt.Sprintf("[%s-%s]", content.FormatTime(ch.StartSec), content.FormatTime(ch.EndSec))),
			ch.Text)
	}
	shown := m.chunks.Offset + len(m.chunks.Items)
	b.WriteString(studyMutedStyle.Render(fmt.Sprintf("chunks %d-%d of %d", m.chunks.Offset+1, shown, m.chunks.Total)))
	b.WriteString("\n")
	return b.String()
}

func (m studyModel) visibleChunkRows() int {
	if m.height <= 0 {
		return transcriptPageSize
	}
	// Leave room for the title, tab bar, prompt, counters, and help line.
	rows := m.height - 8
	if rows < 3 {
		rows = 3
	}
	return rows
}
