package model

import "encoding/json"

// Job is the backend's async job record. The client only reads jobs; it
// never mutates them.
type Job struct {
	OK          bool   `json:"ok"`
	JobID       int    `json:"job_id"`
	JobType     string `json:"job_type"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
	PayloadJSON string `json:"payload_json,omitempty"`
}

// StudyPackCreated is the response of POST /study-packs/from-youtube.
// Playlist fields are only set when the submitted URL was a playlist.
type StudyPackCreated struct {
	OK            bool   `json:"ok"`
	StudyPackID   int    `json:"study_pack_id"`
	JobID         int    `json:"job_id"`
	TaskID        string `json:"task_id"`
	VideoID       string `json:"video_id,omitempty"`
	PlaylistID    string `json:"playlist_id,omitempty"`
	PlaylistTitle string `json:"playlist_title,omitempty"`
	PlaylistCount int    `json:"playlist_count,omitempty"`
}

type StudyPack struct {
	ID             int    `json:"id"`
	SourceType     string `json:"source_type"`
	SourceURL      string `json:"source_url"`
	Title          string `json:"title,omitempty"`
	Status         string `json:"status"`
	SourceID       string `json:"source_id,omitempty"`
	Language       string `json:"language,omitempty"`
	MetaJSON       string `json:"meta_json,omitempty"`
	TranscriptJSON string `json:"transcript_json,omitempty"`
	TranscriptText string `json:"transcript_text,omitempty"`
	Error          string `json:"error,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
	PlaylistID     string `json:"playlist_id,omitempty"`
	PlaylistTitle  string `json:"playlist_title,omitempty"`
	PlaylistIndex  *int   `json:"playlist_index,omitempty"`
}

type StudyPackDetail struct {
	OK        bool      `json:"ok"`
	StudyPack StudyPack `json:"study_pack"`
}

type StudyPackList struct {
	OK     bool        `json:"ok"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
	Packs  []StudyPack `json:"packs"`
}

// StudyMaterial is one generated material row. ContentJSON stays raw here;
// internal/content decodes it per kind.
type StudyMaterial struct {
	ID          int             `json:"id"`
	Kind        string          `json:"kind"`
	Status      string          `json:"status"`
	ContentJSON json.RawMessage `json:"content_json,omitempty"`
	ContentText string          `json:"content_text,omitempty"`
	Error       string          `json:"error,omitempty"`
	CreatedAt   string          `json:"created_at,omitempty"`
	UpdatedAt   string          `json:"updated_at,omitempty"`
}

type StudyMaterials struct {
	OK          bool            `json:"ok"`
	StudyPackID int             `json:"study_pack_id"`
	Materials   []StudyMaterial `json:"materials"`
}

type GenerateStarted struct {
	OK          bool   `json:"ok"`
	StudyPackID int    `json:"study_pack_id"`
	JobID       int    `json:"job_id"`
	TaskID      string `json:"task_id"`
}

// Progress item statuses are tri-state: a terminal value, a non-terminal
// value, or empty when the item has never been marked. The backend sends
// null for unmarked items; empty string means the same here.

type FlashcardProgressItem struct {
	CardIndex        int    `json:"card_index"`
	Status           string `json:"status,omitempty"`
	SeenCount        int    `json:"seen_count"`
	KnownCount       int    `json:"known_count"`
	ReviewLaterCount int    `json:"review_later_count"`
	LastSeenAt       string `json:"last_seen_at,omitempty"`
}

type FlashcardProgress struct {
	OK               bool                    `json:"ok"`
	StudyPackID      int                     `json:"study_pack_id"`
	TotalCards       int                     `json:"total_cards"`
	SeenCards        int                     `json:"seen_cards"`
	KnownCards       int                     `json:"known_cards"`
	ReviewLaterCards int                     `json:"review_later_cards"`
	Items            []FlashcardProgressItem `json:"items"`
}

type FlashcardMark struct {
	CardIndex int    `json:"card_index"`
	Action    string `json:"action"`
}

type QuizProgressItem struct {
	QuestionIndex int    `json:"question_index"`
	Status        string `json:"status,omitempty"`
	SeenCount     int    `json:"seen_count"`
	CorrectCount  int    `json:"correct_count"`
	WrongCount    int    `json:"wrong_count"`
	LastSeenAt    string `json:"last_seen_at,omitempty"`
}

type QuizProgress struct {
	OK               bool               `json:"ok"`
	StudyPackID      int                `json:"study_pack_id"`
	TotalQuestions   int                `json:"total_questions"`
	SeenQuestions    int                `json:"seen_questions"`
	CorrectQuestions int                `json:"correct_questions"`
	WrongQuestions   int                `json:"wrong_questions"`
	Items            []QuizProgressItem `json:"items"`
}

type QuizMark struct {
	QuestionIndex int    `json:"question_index"`
	Action        string `json:"action"`
}

type ChapterProgressItem struct {
	ChapterIndex    int    `json:"chapter_index"`
	Status          string `json:"status,omitempty"`
	OpenedCount     int    `json:"opened_count"`
	CompletedCount  int    `json:"completed_count"`
	LastOpenedAt    string `json:"last_opened_at,omitempty"`
	LastCompletedAt string `json:"last_completed_at,omitempty"`
}

type ChapterProgress struct {
	OK                 bool                  `json:"ok"`
	StudyPackID        int                   `json:"study_pack_id"`
	TotalChapters      int                   `json:"total_chapters"`
	OpenedChapters     int                   `json:"opened_chapters"`
	CompletedChapters  int                   `json:"completed_chapters"`
	ResumeChapterIndex int                   `json:"resume_chapter_index"`
	Items              []ChapterProgressItem `json:"items"`
}

type ChapterMark struct {
	ChapterIndex int    `json:"chapter_index"`
	Action       string `json:"action"`
}

type Transcript struct {
	OK             bool   `json:"ok"`
	StudyPackID    int    `json:"study_pack_id"`
	Status         string `json:"status"`
	SourceID       string `json:"source_id,omitempty"`
	Language       string `json:"language,omitempty"`
	TranscriptText string `json:"transcript_text,omitempty"`
	TranscriptJSON string `json:"transcript_json,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

type TranscriptChunk struct {
	ID        int     `json:"id"`
	Idx       int     `json:"idx"`
	StartSec  float64 `json:"start_sec"`
	EndSec    float64 `json:"end_sec"`
	Text      string  `json:"text"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

type TranscriptChunks struct {
	OK          bool              `json:"ok"`
	StudyPackID int               `json:"study_pack_id"`
	Total       int               `json:"total"`
	Limit       int               `json:"limit"`
	Offset      int               `json:"offset"`
	Items       []TranscriptChunk `json:"items"`
}

// AskRequest is the grounded Q&A request. Optional knobs are pointers so
// that absent means "server default" rather than zero.
type AskRequest struct {
	Question     string   `json:"question"`
	Model        string   `json:"model,omitempty"`
	Limit        *int     `json:"limit,omitempty"`
	Hybrid       *bool    `json:"hybrid,omitempty"`
	MinBestScore *float64 `json:"min_best_score,omitempty"`
	EmbedModel   string   `json:"embed_model,omitempty"`
}

type AskCitation struct {
	ChunkID  int     `json:"chunk_id"`
	Idx      int     `json:"idx"`
	StartSec float64 `json:"start_sec"`
	EndSec   float64 `json:"end_sec"`
	Text     string  `json:"text"`
	Score    float64 `json:"score"`
	URL      string  `json:"url,omitempty"`
}

type AskPackInfo struct {
	ID            int    `json:"id"`
	Title         string `json:"title,omitempty"`
	SourceURL     string `json:"source_url"`
	SourceType    string `json:"source_type"`
	PlaylistID    string `json:"playlist_id,omitempty"`
	PlaylistIndex *int   `json:"playlist_index,omitempty"`
}

type AskResponse struct {
	OK          bool            `json:"ok"`
	StudyPackID int             `json:"study_pack_id"`
	Refused     bool            `json:"refused"`
	Answer      string          `json:"answer"`
	Model       string          `json:"model"`
	EmbedModel  string          `json:"embed_model,omitempty"`
	StudyPack   *AskPackInfo    `json:"study_pack,omitempty"`
	Citations   []AskCitation   `json:"citations"`
	Retrieval   json.RawMessage `json:"retrieval,omitempty"`
}
