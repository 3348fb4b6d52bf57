package models

import "time"

// Question is a public submission awaiting scholarly review.
//
// State machine: pending → answered | pending → rejected. Both targets are terminal.
type Question struct {
	ID                string           `json:"id"`
	Email             string           `json:"email"`
	Category          QuestionCategory `json:"category"`
	QuestionText      string           `json:"question_text"`
	Status            QuestionStatus   `json:"status"`
	AnswerYoutubeLink *string          `json:"answer_youtube_link"`
	RejectionReason   *string          `json:"rejection_reason"`
	SubmittedAt       time.Time        `json:"submitted_at"`
	AnsweredAt        *time.Time       `json:"answered_at"`
}

// QuestionResolution is the set of columns written when a pending question
// leaves the pending state.
type QuestionResolution struct {
	Status            QuestionStatus
	AnswerYoutubeLink *string
	RejectionReason   *string
	AnsweredAt        time.Time
}

// Apply copies the resolution onto q.
func (r QuestionResolution) Apply(q *Question) {
	q.Status = r.Status
	q.AnswerYoutubeLink = r.AnswerYoutubeLink
	q.RejectionReason = r.RejectionReason
	answeredAt := r.AnsweredAt
	q.AnsweredAt = &answeredAt
}

// BilingualText is a value kept in both portal languages.
type BilingualText struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// In returns the text for lang, falling back to the other language when empty.
func (b BilingualText) In(lang Language) string {
	if lang == LanguageArabic {
		if b.Ar != "" {
			return b.Ar
		}
		return b.En
	}
	if b.En != "" {
		return b.En
	}
	return b.Ar
}

// IsEmpty reports whether neither language is filled.
func (b BilingualText) IsEmpty() bool {
	return b.En == "" && b.Ar == ""
}

// Ijaza is a scholarly authorization certificate.
type Ijaza struct {
	ID          string        `json:"id"`
	Title       BilingualText `json:"title"`
	Issuer      BilingualText `json:"issuer"`
	Description BilingualText `json:"description"`
	Year        string        `json:"year"`
	Category    IjazaCategory `json:"category"`
	PDFURL      string        `json:"pdf_url"`
	CreatedAt   time.Time     `json:"created_at"`
}
