package cli

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"yt-study-copilot/internal/api"
	"yt-study-copilot/internal/model"
)

type studyLoadedMsg struct {
	pack      model.StudyPack
	materials []model.StudyMaterial
	flash     model.FlashcardProgress
	quiz      model.QuizProgress
	chap      model.ChapterProgress
	err       error
}

type flashProgressMsg struct {
	p   model.FlashcardProgress
	err error
}

type quizProgressMsg struct {
	p   model.QuizProgress
	err error
}

type quizSeenMsg struct {
	p   model.QuizProgress
	err error
}

type chapProgressMsg struct {
	p   model.ChapterProgress
	err error
}

type chunksMsg struct {
	resp model.TranscriptChunks
	err  error
}

// loadStudyCmd fetches the pack and materials, then the three progress
// summaries concurrently, joining them before a single message reaches the
// view. The first error wins; the rest are discarded.
func loadStudyCmd(ctx context.Context, client *api.Client, packID int) tea.Cmd {
	return func() tea.Msg {
		pack, err := client.GetStudyPack(ctx, packID)
		if err != nil {
			return studyLoadedMsg{err: err}
		}
		materials, err := client.GetMaterials(ctx, packID)
		if err != nil {
			return studyLoadedMsg{err: err}
		}

		msg := studyLoadedMsg{pack: pack, materials: materials}
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			firstErr error
		)
		fail := func(err error) {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
		}

		wg.Add(3)
		go func() {
			defer wg.Done()
			p, err := client.GetFlashcardProgress(ctx, packID)
			if err != nil {
				fail(err)
				return
			}
			msg.flash = p
		}()
		go func() {
			defer wg.Done()
			p, err := client.GetQuizProgress(ctx, packID)
			if err != nil {
				fail(err)
				return
			}
			msg.quiz = p
		}()
		go func() {
			defer wg.Done()
			p, err := client.GetChapterProgress(ctx, packID)
			if err != nil {
				fail(err)
				return
			}
			msg.chap = p
		}()
		wg.Wait()

		if firstErr != nil {
			return studyLoadedMsg{err: firstErr}
		}
		return msg
	}
}

func markFlashcardCmd(ctx context.Context, client *api.Client, packID int, mark model.FlashcardMark) tea.Cmd {
	return func() tea.Msg {
		p, err := client.MarkFlashcardProgress(ctx, packID, mark)
		return flashProgressMsg{p: p, err: err}
	}
}

func markQuizCmd(ctx context.Context, client *api.Client, packID int, mark model.QuizMark) tea.Cmd {
	return func() tea.Msg {
		p, err := client.MarkQuizProgress(ctx, packID, mark)
		return quizProgressMsg{p: p, err: err}
	}
}

func markQuizSeenCmd(ctx context.Context, client *api.Client, packID, questionIndex int) tea.Cmd {
	return func() tea.Msg {
		p, err := client.MarkQuizProgress(ctx, packID, model.QuizMark{
			QuestionIndex: questionIndex,
			Action:        model.QuizActionSeen,
		})
		return quizSeenMsg{p: p, err: err}
	}
}

func markChapterCmd(ctx context.Context, client *api.Client, packID int, mark model.ChapterMark) tea.Cmd {
	return func() tea.Msg {
		p, err := client.MarkChapterProgress(ctx, packID, mark)
		return chapProgressMsg{p: p, err: err}
	}
}

func loadChunksCmd(ctx context.Context, client *api.Client, packID int, query string, offset int) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.ListTranscriptChunks(ctx, packID, api.ChunkQuery{
			Query:  query,
			Limit:  transcriptPageSize,
			Offset: offset,
		})
		return chunksMsg{resp: resp, err: err}
	}
}
