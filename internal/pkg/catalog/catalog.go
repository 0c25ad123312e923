package catalog

import (
	"fmt"
	"slices"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
	"github.com/evandrarf/words7000-bot/internal/pkg/textnorm"
	"github.com/evandrarf/words7000-bot/internal/pkg/validate"
	"github.com/samber/lo"
)

// Catalog is the read-only word list for both levels. It is safe for
// concurrent use because nothing mutates it after New.
type Catalog struct {
	levels  map[entity.Level][]entity.WordEntry
	index   map[entity.Level]map[entity.WordID]int
	aliases textnorm.Aliases
}

func New(standard, advanced []entity.WordEntry, aliases textnorm.Aliases) (*Catalog, error) {
	c := &Catalog{
		levels:  make(map[entity.Level][]entity.WordEntry, 2),
		index:   make(map[entity.Level]map[entity.WordID]int, 2),
		aliases: aliases,
	}
	v := validate.NewValidator()
	if err := c.add(v, entity.LevelStandard, standard); err != nil {
		return nil, err
	}
	if err := c.add(v, entity.LevelAdvanced, advanced); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) add(v *validate.Validator, level entity.Level, words []entity.WordEntry) error {
	for i := range words {
		if err := v.Struct(&words[i]); err != nil {
			return fmt.Errorf("%s catalog: row %d (id %q): %w", level, i+1, words[i].ID, err)
		}
	}
	if dups := lo.FindDuplicatesBy(words, func(w entity.WordEntry) entity.WordID { return w.ID }); len(dups) > 0 {
		return fmt.Errorf("%s catalog: duplicate word id %q", level, dups[0].ID)
	}

	c.levels[level] = slices.Clone(words)
	idx := make(map[entity.WordID]int, len(words))
	for i, w := range words {
		idx[w.ID] = i
	}
	c.index[level] = idx
	return nil
}

// All returns a copy of the words a tier samples from.
func (c *Catalog) All(tier entity.Tier) []entity.WordEntry {
	return slices.Clone(c.levels[tier.Level()])
}

func (c *Catalog) Lookup(tier entity.Tier, id entity.WordID) (entity.WordEntry, error) {
	level := tier.Level()
	i, ok := c.index[level][entity.NewWordID(id.String())]
	if !ok {
		return entity.WordEntry{}, fmt.Errorf("%w: %s id %q", entity.ErrWordNotFound, level, id)
	}
	return c.levels[level][i], nil
}

func (c *Catalog) Size(level entity.Level) int {
	return len(c.levels[level])
}

func (c *Catalog) Aliases() textnorm.Aliases {
	return c.aliases
}
