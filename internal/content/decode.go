// Package content maps StudyMaterial content_json payloads to typed views
// and terminal rendering. Decoding is tolerant: malformed or missing fields
// degrade to empty views, never to a panic or an error surfaced to the
// user.
package content

import (
	"encoding/json"
	"strings"

	"yt-study-copilot/internal/model"
)

type Chapter struct {
	Title     string
	Summary   string
	Sentences []string
}

type Flashcard struct {
	Q string
	A string
}

type QuizItem struct {
	Question    string
	Options     []string
	AnswerIndex *int
}

// FindMaterial returns the first material row of the given kind, or nil.
func FindMaterial(materials []model.StudyMaterial, kind string) *model.StudyMaterial {
	for i := range materials {
		if materials[i].Kind == kind {
			return &materials[i]
		}
	}
	return nil
}

// itemsOf splits content_json.items into raw entries so one malformed
// entry cannot sink the whole list.
func itemsOf(raw json.RawMessage) []json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var envelope struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil
	}
	return envelope.Items
}

// SummaryText prefers content_text and falls back to content_json.text.
func SummaryText(m model.StudyMaterial) string {
	if s := strings.TrimSpace(m.ContentText); s != "" {
		return s
	}
	if len(m.ContentJSON) == 0 {
		return ""
	}
	var payload struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(m.ContentJSON, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Text)
}

func Takeaways(m model.StudyMaterial) []string {
	out := make([]string, 0)
	for _, raw := range itemsOf(m.ContentJSON) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func Chapters(m model.StudyMaterial) []Chapter {
	out := make([]Chapter, 0)
	for _, raw := range itemsOf(m.ContentJSON) {
		var ch struct {
			Title     string            `json:"title"`
			Summary   string            `json:"summary"`
			Sentences []json.RawMessage `json:"sentences"`
		}
		if err := json.Unmarshal(raw, &ch); err != nil {
			continue
		}
		sentences := make([]string, 0, len(ch.Sentences))
		for _, sraw := range ch.Sentences {
			var s string
			if err := json.Unmarshal(sraw, &s); err != nil {
				continue
			}
			sentences = append(sentences, s)
		}
		out = append(out, Chapter{Title: ch.Title, Summary: ch.Summary, Sentences: sentences})
	}
	return out
}

// Flashcards drops entries that are not objects or are blank on both
// sides, matching how the viewer treats junk cards.
func Flashcards(m model.StudyMaterial) []Flashcard {
	out := make([]Flashcard, 0)
	for _, raw := range itemsOf(m.ContentJSON) {
		var fc struct {
			Q string `json:"q"`
			A string `json:"a"`
		}
		if err := json.Unmarshal(raw, &fc); err != nil {
			continue
		}
		if strings.TrimSpace(fc.Q) == "" && strings.TrimSpace(fc.A) == "" {
			continue
		}
		out = append(out, Flashcard{Q: fc.Q, A: fc.A})
	}
	return out
}

// Quiz keeps answer_index only when it is an integral number; anything
// else leaves the item checkable by hand only.
func Quiz(m model.StudyMaterial) []QuizItem {
	out := make([]QuizItem, 0)
	for _, raw := range itemsOf(m.ContentJSON) {
		var q struct {
			Question    string   `json:"question"`
			Options     []string `json:"options"`
			AnswerIndex *float64 `json:"answer_index"`
		}
		if err := json.Unmarshal(raw, &q); err != nil {
			continue
		}
		item := QuizItem{Question: q.Question, Options: q.Options}
		if q.AnswerIndex != nil {
			n := int(*q.AnswerIndex)
			if float64(n) == *q.AnswerIndex && n >= 0 && n < len(q.Options) {
				item.AnswerIndex = &n
			}
		}
		out = append(out, item)
	}
	return out
}
