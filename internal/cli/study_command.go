package cli

import (
	"context"
	"errors"
	"flag"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"yt-study-copilot/internal/api"
	"yt-study-copilot/internal/content"
	"yt-study-copilot/internal/model"
	"yt-study-copilot/internal/progress"
)

type studyTab int

const (
	tabHub studyTab = iota
	tabFlashcards
	tabQuiz
	tabChapters
	tabTranscript
	studyTabCount
)

const transcriptPageSize = 50

type studyModel struct {
	ctx    context.Context
	client *api.Client
	packID int

	tab    studyTab
	width  int
	height int

	loading bool
	busy    bool
	errMsg  string

	pack      model.StudyPack
	materials []model.StudyMaterial

	flash model.FlashcardProgress
	quiz  model.QuizProgress
	chap  model.ChapterProgress

	cards   []content.Flashcard
	cardIdx int
	flipped bool

	questions []content.QuizItem
	qIdx      int
	selected  int
	checked   bool

	chapters      []content.Chapter
	chapIdx       int
	showSentences bool

	search      textinput.Model
	searching   bool
	chunks      model.TranscriptChunks
	chunkOffset int
	chunksBusy  bool
}

func runStudy(args []string) error {
	fs := flag.NewFlagSet("study", flag.ContinueOnError)
	packID := fs.Int("pack", 0, "study pack id")
	fs.SetOutput(flag.CommandLine.Output())
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := requirePackID(*packID)
	if err != nil {
		return err
	}
	if !stdinIsTTY() {
		return errors.New("study requires an interactive terminal (TTY)")
	}

	e, err := newEnv()
	if err != nil {
		return err
	}
	defer e.close()

	// Cancelling here stops any poll or fetch still in flight once the
	// session ends; nothing outlives the program.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	search := textinput.New()
	search.Placeholder = "search transcript..."
	search.CharLimit = 200

	m := studyModel{
		ctx:     ctx,
		client:  e.client,
		packID:  id,
		loading: true,
		search:  search,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "tty") {
			return errors.New("study requires an interactive terminal (TTY)")
		}
		return err
	}
	if fm, ok := finalModel.(studyModel); ok && fm.errMsg != "" && fm.loading {
		// The initial load never succeeded; surface it as a command error.
		return errors.New(fm.errMsg)
	}
	return nil
}

func (m studyModel) Init() tea.Cmd {
	return loadStudyCmd(m.ctx, m.client, m.packID)
}

func (m studyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(20, m.width-10)
		return m, nil

	case studyLoadedMsg:
		m.loading = false
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.pack = msg.pack
		m.materials = msg.materials
		m.flash = msg.flash
		m.quiz = msg.quiz
		m.chap = msg.chap

		m.cards = extractFlashcards(msg.materials)
		m.questions = extractQuiz(msg.materials)
		m.chapters = extractChapters(msg.materials)

		m.cardIdx = progress.Reduce(len(m.cards), progress.ResumeFlashcardIndex(m.flash.Items)).Index
		m.qIdx = progress.Reduce(len(m.questions), progress.ResumeQuizIndex(m.quiz.Items)).Index
		m.chapIdx = progress.Reduce(len(m.chapters), progress.ResumeChapterIndex(m.chap)).Index
		m.flipped = false
		m.checked = false
		m.selected = 0
		m.showSentences = false
		return m, loadChunksCmd(m.ctx, m.client, m.packID, "", 0)

	case flashProgressMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.flash = msg.p
		return m, nil

	case quizProgressMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.quiz = msg.p
		return m, nil

	case quizSeenMsg:
		// Best-effort seen mark: failures are dropped, successes refresh
		// the aggregates.
		if msg.err == nil {
			m.quiz = msg.p
		}
		return m, nil

	case chapProgressMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.chap = msg.p
		return m, nil

	case chunksMsg:
		m.chunksBusy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.chunks = msg.resp
		m.chunkOffset = msg.resp.Offset
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		return m.updateSearchInput(keyMsg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.tab = (m.tab + 1) % studyTabCount
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + studyTabCount - 1) % studyTabCount
		return m, nil
	case "1", "2", "3", "4", "5":
		m.tab = studyTab(int(keyMsg.String()[0] - '1'))
		return m, nil
	case "R":
		m.loading = true
		return m, loadStudyCmd(m.ctx, m.client, m.packID)
	}

	if m.loading || m.busy {
		return m, nil
	}

	switch m.tab {
	case tabFlashcards:
		return m.updateFlashcards(keyMsg)
	case tabQuiz:
		return m.updateQuiz(keyMsg)
	case tabChapters:
		return m.updateChapters(keyMsg)
	case tabTranscript:
		return m.updateTranscript(keyMsg)
	default:
		return m, nil
	}
}

func (m studyModel) updateFlashcards(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := progress.Reduce(len(m.cards), m.cardIdx)
	switch msg.String() {
	case "left", "p":
		if view.CanPrev {
			m.cardIdx--
			m.flipped = false
		}
		return m, nil
	case "right", "n":
		if view.CanNext {
			m.cardIdx++
			m.flipped = false
		}
		return m, nil
	case " ", "space", "enter":
		if view.Total > 0 {
			m.flipped = !m.flipped
		}
		return m, nil
	case "k":
		return m.markFlashcard(model.FlashcardActionKnown)
	case "v":
		return m.markFlashcard(model.FlashcardActionReviewLater)
	case "x":
		return m.markFlashcard(model.FlashcardActionReset)
	}
	return m, nil
}

func (m studyModel) markFlashcard(action string) (tea.Model, tea.Cmd) {
	if len(m.cards) == 0 {
		return m, nil
	}
	m.busy = true
	return m, markFlashcardCmd(m.ctx, m.client, m.packID, model.FlashcardMark{
		CardIndex: m.cardIdx,
		Action:    action,
	})
}

func (m studyModel) updateQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := progress.Reduce(len(m.questions), m.qIdx)
	switch msg.String() {
	case "left", "p":
		if view.CanPrev {
			return m.gotoQuestion(m.qIdx - 1)
		}
		return m, nil
	case "right", "n":
		if view.CanNext {
			return m.gotoQuestion(m.qIdx + 1)
		}
		return m, nil
	case "up", "k":
		if view.Total > 0 && m.selected > 0 {
			m.selected--
			m.checked = false
		}
		return m, nil
	case "down", "j":
		if view.Total > 0 {
			if cur := m.questions[view.Index]; m.selected < len(cur.Options)-1 {
				m.selected++
				m.checked = false
			}
		}
		return m, nil
	case "enter", " ", "space":
		return m.checkAnswer()
	case "c":
		return m.markQuiz(model.QuizActionCorrect)
	case "w":
		return m.markQuiz(model.QuizActionWrong)
	case "x":
		return m.markQuiz(model.QuizActionReset)
	}
	return m, nil
}

func (m studyModel) gotoQuestion(idx int) (tea.Model, tea.Cmd) {
	m.qIdx = idx
	m.selected = 0
	m.checked = false
	// Seen marks are fire-and-forget telemetry-like writes.
	return m, markQuizSeenCmd(m.ctx, m.client, m.packID, idx)
}

// checkAnswer reveals the result; when the material carries an answer
// index the outcome is auto-recorded as correct or wrong.
func (m studyModel) checkAnswer() (tea.Model, tea.Cmd) {
	if len(m.questions) == 0 {
		return m, nil
	}
	cur := m.questions[progress.Reduce(len(m.questions), m.qIdx).Index]
	if len(cur.Options) == 0 {
		return m, nil
	}
	m.checked = true
	if cur.AnswerIndex == nil {
		return m, nil
	}
	if m.selected == *cur.AnswerIndex {
		return m.markQuiz(model.QuizActionCorrect)
	}
	return m.markQuiz(model.QuizActionWrong)
}

func (m studyModel) markQuiz(action string) (tea.Model, tea.Cmd) {
	if len(m.questions) == 0 {
		return m, nil
	}
	m.busy = true
	return m, markQuizCmd(m.ctx, m.client, m.packID, model.QuizMark{
		QuestionIndex: m.qIdx,
		Action:        action,
	})
}

func (m studyModel) updateChapters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := progress.Reduce(len(m.chapters), m.chapIdx)
	switch msg.String() {
	case "left", "p":
		if view.CanPrev {
			m.chapIdx--
			m.showSentences = false
		}
		return m, nil
	case "right", "n":
		if view.CanNext {
			m.chapIdx++
			m.showSentences = false
		}
		return m, nil
	case "enter", "o":
		if view.Total == 0 {
			return m, nil
		}
		m.showSentences = true
		m.busy = true
		return m, markChapterCmd(m.ctx, m.client, m.packID, model.ChapterMark{
			ChapterIndex: m.chapIdx,
			Action:       model.ChapterActionOpen,
		})
	case "c":
		return m.markChapter(model.ChapterActionComplete)
	case "x":
		return m.markChapter(model.ChapterActionReset)
	case "s":
		if view.Total > 0 {
			m.chapIdx = progress.Reduce(len(m.chapters), progress.ResumeChapterIndex(m.chap)).Index
			m.showSentences = false
		}
		return m, nil
	case " ", "space":
		if view.Total > 0 {
			m.showSentences = !m.showSentences
		}
		return m, nil
	}
	return m, nil
}

func (m studyModel) markChapter(action string) (tea.Model, tea.Cmd) {
	if len(m.chapters) == 0 {
		return m, nil
	}
	m.busy = true
	return m, markChapterCmd(m.ctx, m.client, m.packID, model.ChapterMark{
		ChapterIndex: m.chapIdx,
		Action:       action,
	})
}

func (m studyModel) updateTranscript(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "n":
		next := m.chunkOffset + transcriptPageSize
		if next < m.chunks.Total {
			m.chunksBusy = true
			return m, loadChunksCmd(m.ctx, m.client, m.packID, m.search.Value(), next)
		}
		return m, nil
	case "p":
		if m.chunkOffset > 0 {
			prev := max(0, m.chunkOffset-transcriptPageSize)
			m.chunksBusy = true
			return m, loadChunksCmd(m.ctx, m.client, m.packID, m.search.Value(), prev)
		}
		return m, nil
	}
	return m, nil
}

func (m studyModel) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		m.chunksBusy = true
		return m, loadChunksCmd(m.ctx, m.client, m.packID, m.search.Value(), 0)
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func extractFlashcards(materials []model.StudyMaterial) []content.Flashcard {
	if row := content.FindMaterial(materials, model.KindFlashcards); row != nil {
		return content.Flashcards(*row)
	}
	return nil
}

func extractQuiz(materials []model.StudyMaterial) []content.QuizItem {
	if row := content.FindMaterial(materials, model.KindQuiz); row != nil {
		return content.Quiz(*row)
	}
	return nil
}

func extractChapters(materials []model.StudyMaterial) []content.Chapter {
	if row := content.FindMaterial(materials, model.KindChapters); row != nil {
		return content.Chapters(*row)
	}
	return nil
}
