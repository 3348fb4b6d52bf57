package notify

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"scholarportal/internal/domain/models"
)

const senderName = "Shaykh ʿAbdullāh ibn ʿAbd al-Raḥmān al-Saʿd (الشيخ عبد الله بن عبد الرحمن السعد)"

// emailTexts holds the fixed bilingual phrases used in every notification.
var emailTexts = struct {
	Subject         string
	GreetingEn      string
	GreetingAr      string
	AnsweredEn      string
	AnsweredAr      string
	RejectedEn      string
	RejectedAr      string
	ReasonEn        string
	ReasonAr        string
	Signature       string
	SenderName      string
	NoReplyNoticeEn string
	NoReplyNoticeAr string
}{
	Subject:         "Response to your Question (رد على سؤالك)",
	GreetingEn:      "As-salāmu ʿalaykum wa raḥmatullāhi wa barakātuh,",
	GreetingAr:      "السلام عليكم ورحمة الله وبركاته",
	AnsweredEn:      "Your question has been answered. Please watch the response here:",
	AnsweredAr:      "تم الإجابة على سؤالك. يمكنك مشاهدة الرد هنا:",
	RejectedEn:      "We were unable to answer your question.",
	RejectedAr:      "نعتذر، لم نتمكن من الإجابة على سؤالك.",
	ReasonEn:        "Reason:",
	ReasonAr:        "السبب:",
	Signature:       "Jazakallah Khair (جزاك الله خيرًا)",
	SenderName:      senderName,
	NoReplyNoticeEn: "Please do not reply to this email as this inbox is not monitored.",
	NoReplyNoticeAr: "يرجى عدم الرد على هذا البريد الإلكتروني لأن هذا الصندوق غير مراقب.",
}

type emailData struct {
	T               interface{}
	Answered        bool
	Link            string
	RejectionReason string
}

const textBody = `{{.T.GreetingEn}}
{{.T.GreetingAr}}
{{if .Answered}}
{{.T.AnsweredAr}}
{{.Link}}

{{.T.AnsweredEn}}
{{.Link}}
{{else}}
{{.T.RejectedAr}}{{if .RejectionReason}}
{{.T.ReasonAr}} {{.RejectionReason}}{{end}}

{{.T.RejectedEn}}{{if .RejectionReason}}
{{.T.ReasonEn}} {{.RejectionReason}}{{end}}
{{end}}
{{.T.Signature}}
{{.T.SenderName}}

---
{{.T.NoReplyNoticeAr}}
{{.T.NoReplyNoticeEn}}
`

const htmlBody = `<div dir="rtl" style="font-family: Arial, sans-serif; text-align: right;">
<p>{{.T.GreetingAr}}</p>
{{if .Answered}}<p>{{.T.AnsweredAr}}<br/><a href="{{.Link}}">{{.Link}}</a></p>
{{else}}<p>{{.T.RejectedAr}}{{if .RejectionReason}}<br/>{{.T.ReasonAr}} {{.RejectionReason}}{{end}}</p>
{{end}}<hr/>
<div dir="ltr" style="text-align: left;">
<p>{{.T.GreetingEn}}</p>
{{if .Answered}}<p>{{.T.AnsweredEn}}<br/><a href="{{.Link}}">{{.Link}}</a></p>
{{else}}<p>{{.T.RejectedEn}}{{if .RejectionReason}}<br/>{{.T.ReasonEn}} {{.RejectionReason}}{{end}}</p>
{{end}}</div>
<br/>
<p>{{.T.Signature}}</p>
<p>{{.T.SenderName}}</p>
<hr style="margin-top: 20px; margin-bottom: 10px;">
<p style="font-size: 0.9em; color: #777; text-align: center;">{{.T.NoReplyNoticeAr}}<br/>{{.T.NoReplyNoticeEn}}</p>
</div>
`

var (
	textTemplate = texttemplate.Must(texttemplate.New("text").Parse(textBody))
	htmlTemplate = htmltemplate.Must(htmltemplate.New("html").Parse(htmlBody))
)

// renderOutcome builds the email for a resolved question.
func renderOutcome(q *models.Question) (*Message, error) {
	data := emailData{T: emailTexts}
	switch q.Status {
	case models.QuestionStatusAnswered:
		data.Answered = true
		if q.AnswerYoutubeLink != nil {
			data.Link = *q.AnswerYoutubeLink
		}
	case models.QuestionStatusRejected:
		if q.RejectionReason != nil {
			data.RejectionReason = *q.RejectionReason
		}
	default:
		return nil, fmt.Errorf("question %s is %s, nothing to notify", q.ID, q.Status)
	}

	var text, html bytes.Buffer
	if err := textTemplate.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("render text body: %w", err)
	}
	if err := htmlTemplate.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("render html body: %w", err)
	}

	return &Message{
		To:      q.Email,
		Subject: emailTexts.Subject,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
