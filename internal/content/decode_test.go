package content

import (
	"encoding/json"
	"strings"
	"testing"

	"yt-study-copilot/internal/model"
)

func material(kind, contentJSON, contentText string) model.StudyMaterial {
	return model.StudyMaterial{
		Kind:        kind,
		Status:      "done",
		ContentJSON: json.RawMessage(contentJSON),
		ContentText: contentText,
	}
}

func TestSummaryText_PrefersContentText(t *testing.T) {
	m := material(model.KindSummary, `{"text":"json text"}`, "plain text")
	if got := SummaryText(m); got != "plain text" {
		t.Fatalf("expected content_text to win, got %q", got)
	}
}

func TestSummaryText_FallsBackToJSON(t *testing.T) {
	m := material(model.KindSummary, `{"text":"from json"}`, "")
	if got := SummaryText(m); got != "from json" {
		t.Fatalf("expected json text, got %q", got)
	}
}

func TestTakeaways_SkipsNonStrings(t *testing.T) {
	m := material(model.KindKeyTakeaways, `{"items":["first",42,null,"second",""]}`, "")
	got := Takeaways(m)
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("expected the two string items, got %v", got)
	}
}

func TestChapters_DecodesSentences(t *testing.T) {
	m := material(model.KindChapters,
		`{"items":[{"title":"Intro","summary":"Opening","sentences":["a","b",7]},{"title":"","summary":"","sentences":null}]}`, "")
	got := Chapters(m)
	if len(got) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(got))
	}
	if got[0].Title != "Intro" || len(got[0].Sentences) != 2 {
		t.Fatalf("unexpected first chapter: %+v", got[0])
	}
}

func TestFlashcards_DropsBlankAndNonObjectEntries(t *testing.T) {
	m := material(model.KindFlashcards,
		`{"items":[{"q":"What?","a":"That."},"not an object",{"q":"  ","a":""},{"q":"","a":"answer only"}]}`, "")
	got := Flashcards(m)
	if len(got) != 2 {
		t.Fatalf("expected 2 cards, got %d: %v", len(got), got)
	}
	if got[0].Q != "What?" || got[1].A != "answer only" {
		t.Fatalf("unexpected cards: %v", got)
	}
}

func TestQuiz_AnswerIndexValidation(t *testing.T) {
	m := material(model.KindQuiz, `{"items":[
		{"question":"ok","options":["a","b","c"],"answer_index":2},
		{"question":"fractional","options":["a","b"],"answer_index":1.5},
		{"question":"out of range","options":["a","b"],"answer_index":7},
		{"question":"absent","options":["a","b"]}
	]}`, "")
	got := Quiz(m)
	if len(got) != 4 {
		t.Fatalf("expected 4 items, got %d", len(got))
	}
	if got[0].AnswerIndex == nil || *got[0].AnswerIndex != 2 {
		t.Fatalf("expected answer index 2, got %v", got[0].AnswerIndex)
	}
	for i := 1; i < 4; i++ {
		if got[i].AnswerIndex != nil {
			t.Fatalf("item %d must have no usable answer index, got %d", i, *got[i].AnswerIndex)
		}
	}
}

func TestDecode_MalformedShapesYieldEmpty(t *testing.T) {
	shapes := []string{
		``,
		`null`,
		`"just a string"`,
		`{"items":"not an array"}`,
		`{"items":{}}`,
		`{"no_items_key":true}`,
		`[1,2,3]`,
	}
	kinds := []string{model.KindKeyTakeaways, model.KindChapters, model.KindFlashcards, model.KindQuiz}

	for _, shape := range shapes {
		for _, kind := range kinds {
			m := material(kind, shape, "")
			switch kind {
			case model.KindKeyTakeaways:
				if got := Takeaways(m); len(got) != 0 {
					t.Fatalf("takeaways(%q) = %v, want empty", shape, got)
				}
			case model.KindChapters:
				if got := Chapters(m); len(got) != 0 {
					t.Fatalf("chapters(%q) = %v, want empty", shape, got)
				}
			case model.KindFlashcards:
				if got := Flashcards(m); len(got) != 0 {
					t.Fatalf("flashcards(%q) = %v, want empty", shape, got)
				}
			case model.KindQuiz:
				if got := Quiz(m); len(got) != 0 {
					t.Fatalf("quiz(%q) = %v, want empty", shape, got)
				}
			}
		}
	}
}

func TestFindMaterial(t *testing.T) {
	materials := []model.StudyMaterial{
		material(model.KindSummary, `{"text":"s"}`, ""),
		material(model.KindQuiz, `{"items":[]}`, ""),
	}
	if m := FindMaterial(materials, model.KindQuiz); m == nil || m.Kind != model.KindQuiz {
		t.Fatalf("expected quiz row, got %v", m)
	}
	if m := FindMaterial(materials, model.KindFlashcards); m != nil {
		t.Fatalf("expected nil for missing kind, got %v", m)
	}
}

func TestRender_EmptyStatesNeverPanic(t *testing.T) {
	kinds := []string{
		model.KindSummary, model.KindKeyTakeaways, model.KindChapters,
		model.KindFlashcards, model.KindQuiz, "mystery_kind",
	}
	for _, kind := range kinds {
		out := Render(material(kind, `{"items":"wrong type"}`, ""))
		if out == "" {
			t.Fatalf("render(%s) produced empty output", kind)
		}
	}
}

func TestRender_UnknownKindPrettyPrintsJSON(t *testing.T) {
	out := Render(material("mystery", `{"a":1}`, ""))
	if !strings.Contains(out, `"a": 1`) {
		t.Fatalf("expected pretty JSON fallback, got %q", out)
	}
}

func TestFormatTime(t *testing.T) {
	cases := []struct {
		sec  float64
		want string
	}{
		{0, "0:00"},
		{-3, "0:00"},
		{61.9, "1:01"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}
	for _, tc := range cases {
		if got := FormatTime(tc.sec); got != tc.want {
			t.Fatalf("FormatTime(%v) = %q, want %q", tc.sec, got, tc.want)
		}
	}
}
