package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"yt-study-copilot/internal/model"
)

func TestCreateStudyPackFromYouTube_RejectsNonYouTubeURL(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	if _, err := client.CreateStudyPackFromYouTube(context.Background(), "https://vimeo.com/1", "en"); err == nil {
		t.Fatalf("expected validation error")
	}
	if requests != 0 {
		t.Fatalf("validation must short-circuit before any request, saw %d", requests)
	}
}

func TestCreateStudyPackFromYouTube_SendsURLAndLanguage(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/study-packs/from-youtube" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"ok":true,"study_pack_id":12,"job_id":34,"task_id":"tsk","video_id":"abc123"}`))
	}))

	resp, err := client.CreateStudyPackFromYouTube(context.Background(), "https://www.youtube.com/watch?v=abc123", "en")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if gotBody["url"] != "https://www.youtube.com/watch?v=abc123" || gotBody["language"] != "en" {
		t.Fatalf("unexpected body: %v", gotBody)
	}
	if resp.StudyPackID != 12 || resp.JobID != 34 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.PlaylistID != "" {
		t.Fatalf("single-video create must not carry a playlist id, got %q", resp.PlaylistID)
	}
}

func TestCreateStudyPackFromYouTube_PlaylistResponse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"study_pack_id":1,"job_id":2,"task_id":"t","playlist_id":"PL99","playlist_title":"Course","playlist_count":12}`))
	}))

	resp, err := client.CreateStudyPackFromYouTube(context.Background(), "https://www.youtube.com/playlist?list=PL99", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resp.PlaylistID != "PL99" || resp.PlaylistCount != 12 {
		t.Fatalf("expected playlist metadata, got %+v", resp)
	}
}

func TestCreateStudyPackFromYouTube_BlankLanguageDefaultsToEnglish(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"ok":true,"study_pack_id":1,"job_id":2,"task_id":"t"}`))
	}))

	if _, err := client.CreateStudyPackFromYouTube(context.Background(), "https://youtu.be/abc", "   "); err != nil {
		t.Fatalf("create: %v", err)
	}
	if gotBody["language"] != "en" {
		t.Fatalf("expected language en, got %v", gotBody["language"])
	}
}

func TestListStudyPacks_QueryParams(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"ok":true,"total":0,"limit":20,"offset":40,"packs":[]}`))
	}))

	_, err := client.ListStudyPacks(context.Background(), ListPacksOptions{
		Query:      "rust",
		Status:     "ready",
		SourceType: model.SourceVideo,
		PlaylistID: "PL1",
		Limit:      20,
		Offset:     40,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := map[string]string{
		"q": "rust", "status": "ready", "source_type": "video",
		"playlist_id": "PL1", "limit": "20", "offset": "40",
	}
	for k, v := range want {
		if len(gotQuery[k]) != 1 || gotQuery[k][0] != v {
			t.Fatalf("query param %s = %v, want %q", k, gotQuery[k], v)
		}
	}
}

func TestListStudyPacks_OmitsEmptyFilters(t *testing.T) {
	var gotRawQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		w.Write([]byte(`{"ok":true,"total":0,"limit":0,"offset":0,"packs":[]}`))
	}))

	if _, err := client.ListStudyPacks(context.Background(), ListPacksOptions{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotRawQuery != "" {
		t.Fatalf("expected no query string, got %q", gotRawQuery)
	}
}

func TestListTranscriptChunks_DefaultsAndIdempotence(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		q := r.URL.Query()
		if q.Get("limit") != "50" {
			t.Errorf("expected default limit 50, got %q", q.Get("limit"))
		}
		if q.Get("offset") != "0" {
			t.Errorf("expected offset 0, got %q", q.Get("offset"))
		}
		if q.Get("q") != "gradient" {
			t.Errorf("expected q=gradient, got %q", q.Get("q"))
		}
		w.Write([]byte(`{"ok":true,"study_pack_id":5,"total":2,"limit":50,"offset":0,"items":[` +
			`{"id":1,"idx":0,"start_sec":0,"end_sec":10,"text":"gradient descent"},` +
			`{"id":2,"idx":1,"start_sec":10,"end_sec":20,"text":"gradient step"}]}`))
	}))

	first, err := client.ListTranscriptChunks(context.Background(), 5, ChunkQuery{Query: "gradient"})
	if err != nil {
		t.Fatalf("list chunks: %v", err)
	}
	second, err := client.ListTranscriptChunks(context.Background(), 5, ChunkQuery{Query: "gradient"})
	if err != nil {
		t.Fatalf("list chunks again: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 identical requests, got %d", calls)
	}
	if first.Total != second.Total || len(first.Items) != len(second.Items) {
		t.Fatalf("identical queries returned different pages: %+v vs %+v", first, second)
	}
}

func TestMarkProgress_RejectsInvalidActionsLocally(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	ctx := context.Background()

	if _, err := client.MarkFlashcardProgress(ctx, 1, model.FlashcardMark{CardIndex: 0, Action: "correct"}); err == nil {
		t.Fatalf("expected invalid flashcard action error")
	}
	if _, err := client.MarkQuizProgress(ctx, 1, model.QuizMark{QuestionIndex: 0, Action: "open"}); err == nil {
		t.Fatalf("expected invalid quiz action error")
	}
	if _, err := client.MarkChapterProgress(ctx, 1, model.ChapterMark{ChapterIndex: 0, Action: "seen"}); err == nil {
		t.Fatalf("expected invalid chapter action error")
	}
	if requests != 0 {
		t.Fatalf("invalid actions must not reach the server, saw %d requests", requests)
	}
}

func TestMarkQuizProgress_PostsActionPayload(t *testing.T) {
	var gotBody model.QuizMark
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/study-packs/7/quiz/progress" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"ok":true,"study_pack_id":7,"total_questions":3,"seen_questions":1,` +
			`"correct_questions":1,"wrong_questions":0,"items":[{"question_index":2,"status":"correct","seen_count":1,"correct_count":1,"wrong_count":0}]}`))
	}))

	resp, err := client.MarkQuizProgress(context.Background(), 7, model.QuizMark{QuestionIndex: 2, Action: model.QuizActionCorrect})
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if gotBody.QuestionIndex != 2 || gotBody.Action != "correct" {
		t.Fatalf("unexpected body: %+v", gotBody)
	}
	if resp.CorrectQuestions != 1 {
		t.Fatalf("expected server aggregate to come back, got %+v", resp)
	}
}

func TestAsk_RejectsEmptyQuestionLocally(t *testing.T) {
	requests := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	if _, err := client.Ask(context.Background(), 1, model.AskRequest{Question: "   "}); err == nil {
		t.Fatalf("expected empty-question error")
	}
	if requests != 0 {
		t.Fatalf("empty question must not reach the server")
	}
}

func TestAsk_DecodesCitations(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/study-packs/9/kb/ask" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"ok":true,"study_pack_id":9,"refused":false,"answer":"Backprop is...",` +
			`"model":"m","citations":[{"chunk_id":4,"idx":3,"start_sec":61.5,"end_sec":70,` +
			`"text":"backprop","score":0.91,"url":"https://youtu.be/abc?t=61"}],"retrieval":{"k":6}}`))
	}))

	resp, err := client.Ask(context.Background(), 9, model.AskRequest{Question: "What is backprop?"})
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if len(resp.Citations) != 1 || resp.Citations[0].ChunkID != 4 || resp.Citations[0].Score != 0.91 {
		t.Fatalf("unexpected citations: %+v", resp.Citations)
	}
}
