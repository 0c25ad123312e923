package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/domain"
	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
	"github.com/evandrarf/words7000-bot/internal/pkg/dictionary"
	"github.com/evandrarf/words7000-bot/internal/pkg/line"
	"github.com/samber/lo"
)

const (
	collectionPageSize = 7
	maxLabelRunes      = 40

	starGold = "https://scdn.line-apps.com/n/channel_devcenter/img/fx/review_gold_star_28.png"
	starGray = "https://scdn.line-apps.com/n/channel_devcenter/img/fx/review_gray_star_28.png"
)

// assets resolves the URLs of pronunciation and dictation media.
type assets struct {
	baseURL     string
	scoreBanner string
}

func (a assets) audioURL(id entity.WordID) string {
	return fmt.Sprintf("%s/audio/%s.m4a", a.baseURL, id)
}

func (a assets) videoURL(id entity.WordID) string {
	return fmt.Sprintf("%s/video/%s.mp4", a.baseURL, id)
}

func (a assets) coverURL() string {
	return a.baseURL + "/audio/cover.png"
}

func postback(label string, data entity.PostbackData) *line.Action {
	return line.PostbackAction(truncateLabel(label), data.Encode())
}

func truncateLabel(s string) string {
	if utf8.RuneCountInString(s) <= maxLabelRunes {
		return s
	}
	r := []rune(s)
	return string(r[:maxLabelRunes-1]) + "…"
}

func tierMenuMessage() line.Message {
	labels := map[entity.Tier]string{
		entity.TierEnglish:        domain.LABEL_ENGLISH,
		entity.TierChinese:        domain.LABEL_CHINESE,
		entity.TierAudio:          domain.LABEL_AUDIO,
		entity.TierEnglishAdvance: domain.LABEL_ENGLISH_ADVANCE,
		entity.TierChineseAdvance: domain.LABEL_CHINESE_ADVANCE,
	}
	buttons := lo.Map(entity.AllTiers, func(t entity.Tier, _ int) line.Component {
		return line.Button(postback(labels[t], entity.PostbackData{
			Type:         entity.ActionQuestionType,
			QuestionType: string(t),
			Content:      string(t),
		}), "secondary")
	})
	return line.NewFlex(domain.REPLY_QUIZ_ALT_TEXT, line.Bubble(line.VerticalBox("md", buttons...)))
}

func questionMessage(q *entity.QuestionDescriptor, a assets) line.Message {
	if q.Tier == entity.TierAudio {
		return audioQuestionMessage(q, a)
	}

	prompt := line.Text(q.Prompt + "\n")
	prompt.Size = "xxl"
	contents := []line.Component{prompt}
	for i, label := range q.Labels() {
		contents = append(contents, line.Button(postback(label, entity.PostbackData{
			WID:          q.Target.ID,
			Type:         entity.ActionAnswer,
			QuestionType: string(q.Tier),
			Content:      q.Options[i],
		}), "secondary"))
	}
	return line.NewFlex(domain.REPLY_QUIZ_ALT_TEXT, line.Bubble(line.VerticalBox("md", contents...)))
}

func audioQuestionMessage(q *entity.QuestionDescriptor, a assets) line.Message {
	bubble := line.Bubble(line.VerticalBox("", line.Text(domain.REPLY_AUDIO_INSTRUCTION)))
	bubble.Hero = &line.Component{
		Type:        "video",
		URL:         a.videoURL(q.Target.ID),
		PreviewURL:  a.coverURL(),
		AspectRatio: "16:9",
	}
	return line.NewFlex(domain.REPLY_QUIZ_ALT_TEXT, bubble)
}

func gradedMessage(tier entity.Tier, word entity.WordEntry, correct bool) line.Message {
	verdict := line.Text(domain.REPLY_WRONG)
	verdict.Color = "#ff0000"
	if correct {
		verdict = line.Text(domain.REPLY_CORRECT)
		verdict.Color = "#000000"
	}
	verdict.Size = "xl"

	body := line.VerticalBox("md",
		verdict,
		line.Separator(),
		line.Text(fmt.Sprintf("%s\n%s%s\n", word.Word, domain.LABEL_TRANSLATION, word.Translate)),
		line.Button(postback(domain.LABEL_MORE_QUESTION, entity.PostbackData{
			WID:          word.ID,
			Type:         entity.ActionMoreQuestion,
			QuestionType: string(tier),
			Content:      domain.LABEL_MORE_QUESTION,
		}), "primary"),
		line.Button(postback(domain.LABEL_PRONOUNCE, entity.PostbackData{
			WID:          word.ID,
			Type:         entity.ActionPlayPronounce,
			QuestionType: string(tier),
			Content:      domain.LABEL_PRONOUNCE,
		}), "secondary"),
	)
	footer := line.VerticalBox("",
		line.Separator(),
		line.Button(postback(domain.LABEL_ADD_COLLECTION, entity.PostbackData{
			WID:          word.ID,
			Type:         entity.ActionAddToCollection,
			QuestionType: string(tier),
			Content:      domain.LABEL_ADD_COLLECTION,
		}), ""),
	)
	bubble := line.Bubble(body)
	bubble.Footer = &footer
	return line.NewFlex(domain.REPLY_MORE_ALT_TEXT, bubble)
}

func collectionMessage(words []entity.WordEntry) line.Message {
	pages := lo.Chunk(words, collectionPageSize)
	bubbles := make([]line.Component, 0, len(pages))
	for _, page := range pages {
		rows := make([]line.Component, 0, len(page)*2)
		for i, w := range page {
			if i > 0 {
				rows = append(rows, line.Separator())
			}
			text := line.Text(fmt.Sprintf("%s\n%s", w.Word, w.Translate))
			text.Flex = 5
			check := line.Button(postback(domain.LABEL_CHECK, entity.PostbackData{
				WID:     w.ID,
				Type:    entity.ActionCheckWord,
				Content: domain.LABEL_CHECK,
			}), "secondary")
			check.Flex = 2
			rows = append(rows, line.HorizontalBox("md", text, check))
		}
		bubbles = append(bubbles, line.Bubble(line.VerticalBox("md", rows...)))
	}
	return line.NewFlex(domain.REPLY_COLLECTION_TITLE, line.Carousel(bubbles...))
}

func wordDetailMessage(word entity.WordEntry, title string, def *dictionary.Definition) line.Message {
	gloss := word.Translate
	var body []line.Component
	if def != nil {
		if def.Phonetic != "" {
			phonetic := line.Text(def.Phonetic)
			phonetic.Color = "#999999"
			phonetic.Size = "xs"
			body = append(body, phonetic, line.Separator())
		}
		if strings.TrimSpace(def.Gloss) != "" {
			gloss = def.Gloss
		}
	}
	body = append(body, line.Text(gloss))

	heading := line.Text(title)
	heading.Size = "xl"
	header := line.VerticalBox("", heading)
	footer := line.VerticalBox("",
		line.Button(postback(domain.LABEL_PRONOUNCE, entity.PostbackData{
			WID:     word.ID,
			Type:    entity.ActionPlayPronounce,
			Content: domain.LABEL_PRONOUNCE,
		}), "secondary"),
		line.Button(postback(domain.LABEL_DELETE, entity.PostbackData{
			WID:     word.ID,
			Type:    entity.ActionDeleteFromMine,
			Content: domain.LABEL_DELETE,
		}), ""),
		line.Separator(),
		line.Button(postback(domain.LABEL_VIEW_COLLECTION, entity.PostbackData{
			Type:    entity.ActionCheckMyCollection,
			Content: domain.LABEL_VIEW_COLLECTION,
		}), ""),
	)

	bubble := line.Bubble(line.VerticalBox("md", body...))
	bubble.Header = &header
	bubble.Footer = &footer
	return line.NewFlex(domain.REPLY_WORD_DETAIL_TITLE, bubble)
}

func deletedMessage() line.Message {
	done := line.Text(domain.REPLY_DELETED)
	done.Size = "lg"
	done.Wrap = false
	body := line.VerticalBox("md",
		done,
		line.Button(line.MessageAction(domain.LABEL_VIEW_MINE, domain.COMMAND_MY_COLLECTION), "secondary"),
	)
	return line.NewFlex(domain.REPLY_DELETED_ALT_TEXT, line.Bubble(body))
}

func scoreMessage(p *entity.UserProgress, a assets) line.Message {
	gold := p.Stars()
	stars := make([]line.Component, 5)
	for i := range stars {
		url := starGray
		if i < gold {
			url = starGold
		}
		stars[i] = line.Component{Type: "icon", Size: "sm", URL: url}
	}
	rating := line.Component{Type: "box", Layout: "baseline", Margin: "md", Contents: stars}

	body := line.VerticalBox("md",
		line.Text(fmt.Sprintf("你目前的得分為：%d分", p.Point)),
		line.Text(fmt.Sprintf("答錯次數：%d次\n\n", p.WrongAnswer)),
		rating,
		line.Button(postback(domain.LABEL_CONTINUE, entity.PostbackData{
			Type:    entity.ActionMoreTest,
			Content: domain.LABEL_CONTINUE,
		}), "primary"),
	)
	bubble := line.Bubble(body)
	if a.scoreBanner != "" {
		header := line.VerticalBox("", line.Component{
			Type:        "image",
			URL:         a.scoreBanner,
			Size:        "full",
			AspectRatio: "2:1",
			AspectMode:  "cover",
		})
		header.PaddingAll = "0px"
		bubble.Header = &header
	}
	return line.NewFlex(domain.REPLY_SCORE_ALT_TEXT, bubble)
}
