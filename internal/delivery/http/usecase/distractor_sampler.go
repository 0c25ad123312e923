package usecase

import (
	"fmt"
	"math/rand"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
	"github.com/evandrarf/words7000-bot/internal/pkg/textnorm"
	"github.com/samber/lo"
)

// WordCatalog is the read side of the word lists used by the engine.
type WordCatalog interface {
	All(tier entity.Tier) []entity.WordEntry
	Lookup(tier entity.Tier, id entity.WordID) (entity.WordEntry, error)
}

type DistractorSampler interface {
	Sample(tier entity.Tier, excludeID entity.WordID, count int) ([]entity.WordEntry, error)
}

type distractorSampler struct {
	catalog WordCatalog
	rnd     *lockedRand
}

// NewDistractorSampler uses src for randomness; nil seeds from the clock.
func NewDistractorSampler(catalog WordCatalog, src rand.Source) DistractorSampler {
	return &distractorSampler{catalog: catalog, rnd: newLockedRand(src)}
}

// Sample draws count words without replacement from the tier's catalog,
// never returning excludeID. Picked words have pairwise distinct answers,
// none equal to the excluded word's answer.
func (s *distractorSampler) Sample(tier entity.Tier, excludeID entity.WordID, count int) ([]entity.WordEntry, error) {
	answerKey := func(w entity.WordEntry) string { return textnorm.StripPOS(tier.Answer(w)) }

	var excludedAnswer string
	if target, err := s.catalog.Lookup(tier, excludeID); err == nil {
		excludedAnswer = answerKey(target)
	}
	pool := lo.Reject(s.catalog.All(tier), func(w entity.WordEntry, _ int) bool {
		return w.ID == excludeID || (excludedAnswer != "" && answerKey(w) == excludedAnswer)
	})
	pool = lo.UniqBy(pool, answerKey)
	if len(pool) < count {
		return nil, fmt.Errorf("%w: %s has %d candidates, need %d", entity.ErrInsufficientCatalog, tier, len(pool), count)
	}

	picked := make([]entity.WordEntry, 0, count)
	for i := 0; i < count; i++ {
		j := s.rnd.Intn(len(pool))
		picked = append(picked, pool[j])
		pool = append(pool[:j], pool[j+1:]...)
	}
	return picked, nil
}
