package entity

import (
	"net/url"
	"strings"
)

const (
	EventTypeMessage  = "message"
	EventTypePostback = "postback"
)

// Webhook request delivered by the messaging platform
type WebhookRequest struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events" validate:"dive"`
}

type Event struct {
	Type       string           `json:"type" validate:"required"`
	ReplyToken string           `json:"replyToken"`
	Timestamp  int64            `json:"timestamp"`
	Source     EventSource      `json:"source"`
	Message    *MessageContent  `json:"message,omitempty"`
	Postback   *PostbackContent `json:"postback,omitempty"`
}

type EventSource struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

type MessageContent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

type PostbackContent struct {
	Data string `json:"data"`
}

// Text returns the text payload of a message event, or "".
func (e Event) Text() string {
	if e.Message == nil {
		return ""
	}
	return strings.TrimSpace(e.Message.Text)
}

// Postback action kinds carried in the "type" key
const (
	ActionQuestionType      = "question_type"
	ActionAnswer            = "answer"
	ActionPlayPronounce     = "play_pronounce"
	ActionMoreQuestion      = "more_question"
	ActionMoreTest          = "more_test"
	ActionAddToCollection   = "add_to_collection"
	ActionDeleteFromMine    = "delete_from_my_collection"
	ActionCheckMyCollection = "check_my_collection"
	ActionCheckWord         = "check_word"
)

// PostbackData is the decoded postback payload. Absent keys stay empty.
type PostbackData struct {
	WID          WordID
	Type         string
	QuestionType string
	Content      string
}

func ParsePostbackData(raw string) PostbackData {
	// ParseQuery keeps every pair it could decode even when it reports an error.
	values, _ := url.ParseQuery(raw)
	return PostbackData{
		WID:          NewWordID(values.Get("wid")),
		Type:         values.Get("type"),
		QuestionType: values.Get("question_type"),
		Content:      values.Get("content"),
	}
}

func (p PostbackData) Encode() string {
	values := url.Values{}
	values.Set("wid", p.WID.String())
	values.Set("type", p.Type)
	if p.QuestionType != "" {
		values.Set("question_type", p.QuestionType)
	}
	values.Set("content", p.Content)
	return values.Encode()
}

const (
	EventStatusReplied = "replied"
	EventStatusIgnored = "ignored"
	EventStatusFailed  = "failed"
)

// Outcome of a single webhook event
type EventResult struct {
	Index  int    `json:"index"`
	Type   string `json:"type"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
