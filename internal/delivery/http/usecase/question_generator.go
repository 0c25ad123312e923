package usecase

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
	"github.com/evandrarf/words7000-bot/internal/delivery/http/repository"
	"github.com/evandrarf/words7000-bot/internal/pkg/textnorm"
	"github.com/samber/lo"
)

type QuestionGenerator interface {
	// Generate picks a new target for tier. When excludePreviousID is set
	// that word is never chosen as the target.
	Generate(ctx context.Context, userID string, tier entity.Tier, excludePreviousID entity.WordID) (*entity.QuestionDescriptor, error)
}

type QuestionGeneratorConfig struct {
	Catalog WordCatalog
	Sampler DistractorSampler
	Pending repository.PendingQuestionRepository
	Source  rand.Source
}

type questionGenerator struct {
	cfg QuestionGeneratorConfig
	rnd *lockedRand
}

func NewQuestionGenerator(cfg QuestionGeneratorConfig) QuestionGenerator {
	if cfg.Sampler == nil {
		cfg.Sampler = NewDistractorSampler(cfg.Catalog, nil)
	}
	return &questionGenerator{
		cfg: cfg,
		rnd: newLockedRand(cfg.Source),
	}
}

func (g *questionGenerator) Generate(ctx context.Context, userID string, tier entity.Tier, excludePreviousID entity.WordID) (*entity.QuestionDescriptor, error) {
	pool := g.cfg.Catalog.All(tier)
	if excludePreviousID != "" {
		pool = lo.Reject(pool, func(w entity.WordEntry, _ int) bool { return w.ID == excludePreviousID })
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: no words left for %s", entity.ErrInsufficientCatalog, tier)
	}
	target := pool[g.rnd.Intn(len(pool))]

	if tier == entity.TierAudio {
		// the answer comes back later as free text, so remember the word
		if err := g.cfg.Pending.Put(ctx, userID, target); err != nil {
			return nil, fmt.Errorf("failed to store pending audio question: %w", err)
		}
		return &entity.QuestionDescriptor{Tier: tier, Target: target}, nil
	}

	distractors, err := g.cfg.Sampler.Sample(tier, target.ID, tier.DistractorCount())
	if err != nil {
		return nil, err
	}
	options := lo.Map(distractors, func(w entity.WordEntry, _ int) string { return tier.Answer(w) })
	options = append(options, tier.Answer(target))
	g.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &entity.QuestionDescriptor{
		Tier:    tier,
		Target:  target,
		Prompt:  textnorm.StripPOS(tier.Prompt(target)),
		Options: options,
	}, nil
}
