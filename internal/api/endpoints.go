package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"yt-study-copilot/internal/model"
)

type fromYouTubeRequest struct {
	URL      string  `json:"url"`
	Language *string `json:"language"`
}

// CreateStudyPackFromYouTube starts ingestion for a video or playlist URL.
// Language defaults to "en" when blank.
func (c *Client) CreateStudyPackFromYouTube(ctx context.Context, sourceURL, language string) (model.StudyPackCreated, error) {
	src := strings.TrimSpace(sourceURL)
	if !model.IsLikelyYouTubeURL(src) {
		return model.StudyPackCreated{}, fmt.Errorf("not a YouTube URL: %q", sourceURL)
	}
	lang := strings.TrimSpace(language)
	if lang == "" {
		lang = "en"
	}
	var resp model.StudyPackCreated
	err := c.post(ctx, "/study-packs/from-youtube", fromYouTubeRequest{URL: src, Language: &lang}, &resp)
	return resp, err
}

func (c *Client) GetJob(ctx context.Context, jobID int) (model.Job, error) {
	if jobID <= 0 {
		return model.Job{}, fmt.Errorf("job id must be positive, got %d", jobID)
	}
	var job model.Job
	err := c.get(ctx, fmt.Sprintf("/jobs/%d", jobID), &job)
	return job, err
}

func (c *Client) GetStudyPack(ctx context.Context, packID int) (model.StudyPack, error) {
	var detail model.StudyPackDetail
	if err := c.get(ctx, fmt.Sprintf("/study-packs/%d", packID), &detail); err != nil {
		return model.StudyPack{}, err
	}
	return detail.StudyPack, nil
}

type ListPacksOptions struct {
	Query      string
	Status     string
	SourceType string
	PlaylistID string
	Limit      int
	Offset     int
}

func (c *Client) ListStudyPacks(ctx context.Context, opts ListPacksOptions) (model.StudyPackList, error) {
	qs := url.Values{}
	if q := strings.TrimSpace(opts.Query); q != "" {
		qs.Set("q", q)
	}
	if opts.Status != "" {
		qs.Set("status", opts.Status)
	}
	if opts.SourceType != "" {
		qs.Set("source_type", opts.SourceType)
	}
	if opts.PlaylistID != "" {
		qs.Set("playlist_id", opts.PlaylistID)
	}
	if opts.Limit > 0 {
		qs.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		qs.Set("offset", strconv.Itoa(opts.Offset))
	}

	path := "/study-packs"
	if encoded := qs.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var list model.StudyPackList
	err := c.get(ctx, path, &list)
	return list, err
}

// GenerateMaterials enqueues the generation job for a pack. The POST is
// deliberately bodyless.
func (c *Client) GenerateMaterials(ctx context.Context, packID int) (model.GenerateStarted, error) {
	var resp model.GenerateStarted
	err := c.post(ctx, fmt.Sprintf("/study-packs/%d/generate", packID), nil, &resp)
	return resp, err
}

func (c *Client) GetMaterials(ctx context.Context, packID int) ([]model.StudyMaterial, error) {
	var resp model.StudyMaterials
	if err := c.get(ctx, fmt.Sprintf("/study-packs/%d/materials", packID), &resp); err != nil {
		return nil, err
	}
	return resp.Materials, nil
}

func (c *Client) GetFlashcardProgress(ctx context.Context, packID int) (model.FlashcardProgress, error) {
	var resp model.FlashcardProgress
	err := c.get(ctx, fmt.Sprintf("/study-packs/%d/flashcards/progress", packID), &resp)
	return resp, err
}

// MarkFlashcardProgress records one action and returns the server's
// authoritative progress snapshot, which replaces any local copy.
func (c *Client) MarkFlashcardProgress(ctx context.Context, packID int, mark model.FlashcardMark) (model.FlashcardProgress, error) {
	if !model.IsFlashcardAction(mark.Action) {
		return model.FlashcardProgress{}, fmt.Errorf("invalid flashcard action %q", mark.Action)
	}
	var resp model.FlashcardProgress
	err := c.post(ctx, fmt.Sprintf("/study-packs/%d/flashcards/progress", packID), mark, &resp)
	return resp, err
}

func (c *Client) GetQuizProgress(ctx context.Context, packID int) (model.QuizProgress, error) {
	var resp model.QuizProgress
	err := c.get(ctx, fmt.Sprintf("/study-packs/%d/quiz/progress", packID), &resp)
	return resp, err
}

func (c *Client) MarkQuizProgress(ctx context.Context, packID int, mark model.QuizMark) (model.QuizProgress, error) {
	if !model.IsQuizAction(mark.Action) {
		return model.QuizProgress{}, fmt.Errorf("invalid quiz action %q", mark.Action)
	}
	var resp model.QuizProgress
	err := c.post(ctx, fmt.Sprintf("/study-packs/%d/quiz/progress", packID), mark, &resp)
	return resp, err
}

func (c *Client) GetChapterProgress(ctx context.Context, packID int) (model.ChapterProgress, error) {
	var resp model.ChapterProgress
	err := c.get(ctx, fmt.Sprintf("/study-packs/%d/chapters/progress", packID), &resp)
	return resp, err
}

func (c *Client) MarkChapterProgress(ctx context.Context, packID int, mark model.ChapterMark) (model.ChapterProgress, error) {
	if !model.IsChapterAction(mark.Action) {
		return model.ChapterProgress{}, fmt.Errorf("invalid chapter action %q", mark.Action)
	}
	var resp model.ChapterProgress
	err := c.post(ctx, fmt.Sprintf("/study-packs/%d/chapters/progress", packID), mark, &resp)
	return resp, err
}

func (c *Client) GetTranscript(ctx context.Context, packID int) (model.Transcript, error) {
	var resp model.Transcript
	err := c.get(ctx, fmt.Sprintf("/study-packs/%d/transcript", packID), &resp)
	return resp, err
}

type ChunkQuery struct {
	Query  string
	Limit  int
	Offset int
}

func (c *Client) ListTranscriptChunks(ctx context.Context, packID int, query ChunkQuery) (model.TranscriptChunks, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}
	qs := url.Values{}
	if q := strings.TrimSpace(query.Query); q != "" {
		qs.Set("q", q)
	}
	qs.Set("limit", strconv.Itoa(limit))
	qs.Set("offset", strconv.Itoa(query.Offset))

	var resp model.TranscriptChunks
	err := c.get(ctx, fmt.Sprintf("/study-packs/%d/transcript/chunks?%s", packID, qs.Encode()), &resp)
	return resp, err
}

// Ask runs grounded Q&A over the pack's transcript. An empty question is
// rejected locally before any network call.
func (c *Client) Ask(ctx context.Context, packID int, req model.AskRequest) (model.AskResponse, error) {
	if strings.TrimSpace(req.Question) == "" {
		return model.AskResponse{}, fmt.Errorf("question is required")
	}
	var resp model.AskResponse
	err := c.post(ctx, fmt.Sprintf("/study-packs/%d/kb/ask", packID), req, &resp)
	return resp, err
}
