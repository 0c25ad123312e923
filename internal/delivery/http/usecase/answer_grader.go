package usecase

import (
	"context"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
	"github.com/evandrarf/words7000-bot/internal/delivery/http/repository"
	"github.com/evandrarf/words7000-bot/internal/pkg/textnorm"
)

type AnswerGrader interface {
	// Grade compares a submission with the target's answer field. It has no
	// side effects.
	Grade(ctx context.Context, tier entity.Tier, targetID entity.WordID, submission string) (bool, error)
	// GradeAudio consumes the user's pending audio question and grades the
	// dictation against it.
	GradeAudio(ctx context.Context, userID string, submission string) (entity.WordEntry, bool, error)
	HasPending(ctx context.Context, userID string) (bool, error)
}

type answerGrader struct {
	catalog WordCatalog
	pending repository.PendingQuestionRepository
	locks   userLocks
}

func NewAnswerGrader(catalog WordCatalog, pending repository.PendingQuestionRepository) AnswerGrader {
	return &answerGrader{catalog: catalog, pending: pending}
}

func (g *answerGrader) Grade(_ context.Context, tier entity.Tier, targetID entity.WordID, submission string) (bool, error) {
	target, err := g.catalog.Lookup(tier, targetID)
	if err != nil {
		return false, err
	}
	if tier == entity.TierAudio {
		return spellingMatches(target, submission), nil
	}
	return textnorm.StripPOS(submission) == textnorm.StripPOS(tier.Answer(target)), nil
}

func (g *answerGrader) GradeAudio(ctx context.Context, userID string, submission string) (entity.WordEntry, bool, error) {
	defer g.locks.lock(userID)()

	target, err := g.pending.Take(ctx, userID)
	if err != nil {
		return entity.WordEntry{}, false, err
	}
	return target, spellingMatches(target, submission), nil
}

func (g *answerGrader) HasPending(ctx context.Context, userID string) (bool, error) {
	return g.pending.Exists(ctx, userID)
}

func spellingMatches(target entity.WordEntry, submission string) bool {
	return textnorm.Spelling(submission) == textnorm.Spelling(target.Word)
}
