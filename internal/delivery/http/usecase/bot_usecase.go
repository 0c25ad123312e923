package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/domain"
	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
	"github.com/evandrarf/words7000-bot/internal/pkg/audio"
	"github.com/evandrarf/words7000-bot/internal/pkg/dictionary"
	"github.com/evandrarf/words7000-bot/internal/pkg/line"
	"github.com/evandrarf/words7000-bot/internal/pkg/textnorm"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type BotUsecase interface {
	// HandleEvents processes a webhook batch concurrently and replies to
	// each event. One event failing does not stop the others.
	HandleEvents(ctx context.Context, events []entity.Event) []entity.EventResult
	// HandleEvent builds the reply for a single event without sending it.
	HandleEvent(ctx context.Context, event entity.Event) ([]line.Message, error)
}

type BotConfig struct {
	Log        *logrus.Logger
	Catalog    WordCatalog
	Aliases    textnorm.Aliases
	Generator  QuestionGenerator
	Grader     AnswerGrader
	Progress   ProgressUsecase
	Collection CollectionUsecase
	Dictionary dictionary.Dictionary
	Prober     audio.Prober
	Replier    line.Replier

	AssetBaseURL         string
	ScoreBannerURL       string
	DefaultAudioDuration time.Duration
	MaxConcurrency       int
}

type botUsecase struct {
	cfg    BotConfig
	assets assets
}

func NewBotUsecase(cfg BotConfig) BotUsecase {
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	if cfg.Dictionary == nil {
		cfg.Dictionary = dictionary.Noop{}
	}
	if cfg.DefaultAudioDuration <= 0 {
		cfg.DefaultAudioDuration = 3 * time.Second
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 8
	}
	return &botUsecase{
		cfg:    cfg,
		assets: assets{baseURL: cfg.AssetBaseURL, scoreBanner: cfg.ScoreBannerURL},
	}
}

func (u *botUsecase) HandleEvents(ctx context.Context, events []entity.Event) []entity.EventResult {
	results := make([]entity.EventResult, len(events))

	var g errgroup.Group
	g.SetLimit(u.cfg.MaxConcurrency)
	for i, event := range events {
		g.Go(func() error {
			results[i] = u.process(ctx, i, event)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (u *botUsecase) process(ctx context.Context, index int, event entity.Event) (result entity.EventResult) {
	result = entity.EventResult{Index: index, Type: event.Type}
	log := u.cfg.Log.WithFields(logrus.Fields{
		"event_type": event.Type,
		"user_id":    event.Source.UserID,
	})

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("panic while handling event: %v", r)
			result.Status = entity.EventStatusFailed
			result.Error = fmt.Sprint(r)
		}
	}()

	messages, err := u.HandleEvent(ctx, event)
	if err != nil {
		log.WithError(err).Error("failed to handle event")
		result.Status = entity.EventStatusFailed
		result.Error = err.Error()
		return result
	}
	if len(messages) == 0 {
		result.Status = entity.EventStatusIgnored
		return result
	}
	if err := u.cfg.Replier.Reply(ctx, event.ReplyToken, messages); err != nil {
		log.WithError(err).Error("failed to send reply")
		result.Status = entity.EventStatusFailed
		result.Error = err.Error()
		return result
	}
	result.Status = entity.EventStatusReplied
	return result
}

func (u *botUsecase) HandleEvent(ctx context.Context, event entity.Event) ([]line.Message, error) {
	switch event.Type {
	case entity.EventTypeMessage:
		return u.handleMessage(ctx, event)
	case entity.EventTypePostback:
		return u.handlePostback(ctx, event)
	default:
		return nil, nil
	}
}

func echo() []line.Message {
	return []line.Message{line.NewText(domain.REPLY_ECHO)}
}

func text(s string) []line.Message {
	return []line.Message{line.NewText(s)}
}

func (u *botUsecase) handleMessage(ctx context.Context, event entity.Event) ([]line.Message, error) {
	if event.Message == nil || event.Message.Type != "text" {
		return echo(), nil
	}
	userID := event.Source.UserID

	switch event.Text() {
	case domain.COMMAND_START_QUIZ:
		return []line.Message{tierMenuMessage()}, nil
	case domain.COMMAND_MY_COLLECTION:
		return u.collection(ctx, userID)
	case domain.COMMAND_SCORE:
		return u.score(ctx, userID), nil
	default:
		pending, err := u.cfg.Grader.HasPending(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check pending question: %w", err)
		}
		if !pending {
			return echo(), nil
		}
		return u.audioAnswer(ctx, userID, event.Message.Text)
	}
}

func (u *botUsecase) handlePostback(ctx context.Context, event entity.Event) ([]line.Message, error) {
	if event.Postback == nil {
		return echo(), nil
	}
	data := entity.ParsePostbackData(event.Postback.Data)
	userID := event.Source.UserID

	switch data.Type {
	case entity.ActionQuestionType:
		return u.question(ctx, userID, data.QuestionType, "")
	case entity.ActionAnswer:
		return u.answer(ctx, userID, data)
	case entity.ActionPlayPronounce:
		return u.pronounce(ctx, userID, data)
	case entity.ActionMoreQuestion:
		return u.question(ctx, userID, data.QuestionType, data.WID)
	case entity.ActionMoreTest:
		questionType := data.QuestionType
		if questionType == "" {
			questionType = string(entity.TierEnglish)
		}
		return u.question(ctx, userID, questionType, "")
	case entity.ActionAddToCollection:
		return u.addToCollection(ctx, userID, data)
	case entity.ActionDeleteFromMine:
		return u.deleteFromCollection(ctx, userID, data.WID)
	case entity.ActionCheckMyCollection:
		return u.collection(ctx, userID)
	case entity.ActionCheckWord:
		return u.checkWord(ctx, userID, data)
	default:
		return echo(), nil
	}
}

func (u *botUsecase) question(ctx context.Context, userID, questionType string, previous entity.WordID) ([]line.Message, error) {
	tier, err := entity.ParseTier(questionType)
	if err != nil {
		return echo(), nil
	}
	q, err := u.cfg.Generator.Generate(ctx, userID, tier, previous)
	if errors.Is(err, entity.ErrInsufficientCatalog) {
		u.cfg.Log.WithError(err).WithField("tier", tier).Warn("cannot build question")
		return echo(), nil
	}
	if err != nil {
		return nil, err
	}
	return []line.Message{questionMessage(q, u.assets)}, nil
}

func (u *botUsecase) answer(ctx context.Context, userID string, data entity.PostbackData) ([]line.Message, error) {
	tier, err := entity.ParseTier(data.QuestionType)
	if err != nil {
		return echo(), nil
	}
	correct, err := u.cfg.Grader.Grade(ctx, tier, data.WID, data.Content)
	if errors.Is(err, entity.ErrWordNotFound) {
		return echo(), nil
	}
	if err != nil {
		return nil, err
	}
	word, err := u.cfg.Catalog.Lookup(tier, data.WID)
	if err != nil {
		return echo(), nil
	}
	u.record(ctx, userID, correct)
	return []line.Message{gradedMessage(tier, word, correct)}, nil
}

func (u *botUsecase) audioAnswer(ctx context.Context, userID, submission string) ([]line.Message, error) {
	word, correct, err := u.cfg.Grader.GradeAudio(ctx, userID, submission)
	if errors.Is(err, entity.ErrNoPendingQuestion) {
		// consumed by a concurrent delivery
		return echo(), nil
	}
	if err != nil {
		return nil, err
	}
	u.record(ctx, userID, correct)
	return []line.Message{gradedMessage(entity.TierAudio, word, correct)}, nil
}

// record updates the score; a failure is logged and does not block the reply.
func (u *botUsecase) record(ctx context.Context, userID string, correct bool) {
	var err error
	if correct {
		_, err = u.cfg.Progress.IncrementPoint(ctx, userID)
	} else {
		_, err = u.cfg.Progress.IncrementWrong(ctx, userID)
	}
	if err != nil {
		u.cfg.Log.WithError(err).WithField("user_id", userID).Error("failed to record answer")
	}
}

func (u *botUsecase) score(ctx context.Context, userID string) []line.Message {
	progress, created, err := u.cfg.Progress.GetOrInit(ctx, userID)
	if err != nil {
		u.cfg.Log.WithError(err).WithField("user_id", userID).Error("failed to read score")
		return nil
	}
	if created {
		return text(domain.REPLY_NEW_USER)
	}
	return []line.Message{scoreMessage(progress, u.assets)}
}

// resolveWord finds the word a postback refers to. The tier carried in the
// postback picks the catalog; without one the user's saved copy wins, then
// the standard catalog.
func (u *botUsecase) resolveWord(ctx context.Context, userID string, data entity.PostbackData) (entity.WordEntry, error) {
	if tier, err := entity.ParseTier(data.QuestionType); err == nil {
		return u.cfg.Catalog.Lookup(tier, data.WID)
	}
	if saved, err := u.cfg.Collection.List(ctx, userID); err == nil {
		if w, ok := lo.Find(saved, func(w entity.WordEntry) bool { return w.ID == data.WID }); ok {
			return w, nil
		}
	}
	return u.cfg.Catalog.Lookup(entity.TierEnglish, data.WID)
}

func (u *botUsecase) pronounce(ctx context.Context, userID string, data entity.PostbackData) ([]line.Message, error) {
	word, err := u.resolveWord(ctx, userID, data)
	if err != nil {
		return text(domain.REPLY_WORD_MISSING), nil
	}
	url := u.assets.audioURL(word.ID)
	duration := u.cfg.DefaultAudioDuration
	if u.cfg.Prober != nil {
		if d, err := u.cfg.Prober.Duration(ctx, url); err != nil {
			u.cfg.Log.WithError(err).WithField("url", url).Warn("audio duration probe failed, using default")
		} else if d > 0 {
			duration = d
		}
	}
	return []line.Message{line.NewAudio(url, duration.Milliseconds())}, nil
}

func (u *botUsecase) addToCollection(ctx context.Context, userID string, data entity.PostbackData) ([]line.Message, error) {
	word, err := u.resolveWord(ctx, userID, data)
	if err != nil {
		return text(domain.REPLY_WORD_MISSING), nil
	}
	switch err := u.cfg.Collection.Add(ctx, userID, word); {
	case errors.Is(err, entity.ErrCollectionFull):
		return text(domain.REPLY_COLLECTION_FULL), nil
	case errors.Is(err, entity.ErrAlreadyCollected):
		return text(domain.REPLY_ALREADY_COLLECTED), nil
	case err != nil:
		return nil, err
	}
	return text(domain.REPLY_COLLECTED), nil
}

func (u *botUsecase) deleteFromCollection(ctx context.Context, userID string, wid entity.WordID) ([]line.Message, error) {
	err := u.cfg.Collection.Remove(ctx, userID, wid)
	if errors.Is(err, entity.ErrNotCollected) {
		return text(domain.REPLY_COLLECTION_MISSING), nil
	}
	if err != nil {
		return nil, err
	}
	return []line.Message{deletedMessage()}, nil
}

func (u *botUsecase) collection(ctx context.Context, userID string) ([]line.Message, error) {
	words, err := u.cfg.Collection.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return text(domain.REPLY_COLLECTION_EMPTY), nil
	}
	return []line.Message{collectionMessage(words)}, nil
}

func (u *botUsecase) checkWord(ctx context.Context, userID string, data entity.PostbackData) ([]line.Message, error) {
	word, err := u.resolveWord(ctx, userID, data)
	if err != nil {
		return text(domain.REPLY_WORD_MISSING), nil
	}
	key := u.cfg.Aliases.Resolve(textnorm.LookupKey(word.Word))

	def, err := u.cfg.Dictionary.Lookup(ctx, key)
	if err != nil {
		if !errors.Is(err, dictionary.ErrDefinitionNotFound) {
			u.cfg.Log.WithError(err).WithField("word", key).Warn("dictionary lookup failed, using catalog gloss")
		}
		def = nil
	}
	return []line.Message{wordDetailMessage(word, key, def)}, nil
}
