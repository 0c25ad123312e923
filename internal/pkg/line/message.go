// Package line builds LINE Messaging API message objects and delivers
// replies.
package line

type Message interface {
	MessageType() string
}

type TextMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (TextMessage) MessageType() string { return "text" }

func NewText(text string) TextMessage {
	return TextMessage{Type: "text", Text: text}
}

type AudioMessage struct {
	Type               string `json:"type"`
	OriginalContentURL string `json:"originalContentUrl"`
	Duration           int64  `json:"duration"` // milliseconds
}

func (AudioMessage) MessageType() string { return "audio" }

func NewAudio(url string, durationMillis int64) AudioMessage {
	return AudioMessage{Type: "audio", OriginalContentURL: url, Duration: durationMillis}
}

type FlexMessage struct {
	Type     string    `json:"type"`
	AltText  string    `json:"altText"`
	Contents Component `json:"contents"`
}

func (FlexMessage) MessageType() string { return "flex" }

func NewFlex(altText string, contents Component) FlexMessage {
	return FlexMessage{Type: "flex", AltText: altText, Contents: contents}
}

// Component is any flex container or component. Only the fields relevant to
// its Type are set.
type Component struct {
	Type        string      `json:"type"`
	Layout      string      `json:"layout,omitempty"`
	Spacing     string      `json:"spacing,omitempty"`
	Margin      string      `json:"margin,omitempty"`
	Size        string      `json:"size,omitempty"`
	Color       string      `json:"color,omitempty"`
	Text        string      `json:"text,omitempty"`
	Wrap        bool        `json:"wrap,omitempty"`
	Flex        int         `json:"flex,omitempty"`
	Style       string      `json:"style,omitempty"`
	URL         string      `json:"url,omitempty"`
	PreviewURL  string      `json:"previewUrl,omitempty"`
	AspectRatio string      `json:"aspectRatio,omitempty"`
	AspectMode  string      `json:"aspectMode,omitempty"`
	PaddingAll  string      `json:"paddingAll,omitempty"`
	Action      *Action     `json:"action,omitempty"`
	Contents    []Component `json:"contents,omitempty"`
	Header      *Component  `json:"header,omitempty"`
	Hero        *Component  `json:"hero,omitempty"`
	Body        *Component  `json:"body,omitempty"`
	Footer      *Component  `json:"footer,omitempty"`
}

type Action struct {
	Type  string `json:"type"`
	Label string `json:"label,omitempty"`
	Data  string `json:"data,omitempty"`
	Text  string `json:"text,omitempty"`
}

func PostbackAction(label, data string) *Action {
	return &Action{Type: "postback", Label: label, Data: data}
}

func MessageAction(label, text string) *Action {
	return &Action{Type: "message", Label: label, Text: text}
}

func Bubble(body Component) Component {
	return Component{Type: "bubble", Body: &body}
}

func Carousel(bubbles ...Component) Component {
	return Component{Type: "carousel", Contents: bubbles}
}

func VerticalBox(spacing string, contents ...Component) Component {
	return Component{Type: "box", Layout: "vertical", Spacing: spacing, Contents: contents}
}

func HorizontalBox(spacing string, contents ...Component) Component {
	return Component{Type: "box", Layout: "horizontal", Spacing: spacing, Contents: contents}
}

func Text(text string) Component {
	return Component{Type: "text", Text: text, Wrap: true}
}

func Button(action *Action, style string) Component {
	return Component{Type: "button", Action: action, Style: style}
}

func Separator() Component {
	return Component{Type: "separator"}
}
