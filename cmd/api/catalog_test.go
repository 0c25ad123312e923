package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
	"github.com/evandrarf/words7000-bot/internal/pkg/catalog"
)

func sampleWords(prefix string, n int) []entity.WordEntry {
	out := make([]entity.WordEntry, n)
	for i := range out {
		out[i] = entity.WordEntry{
			ID:        entity.WordID(fmt.Sprintf("%s%d", prefix, i)),
			Word:      fmt.Sprintf("w%d", i),
			Translate: fmt.Sprintf("t%d", i),
		}
	}
	return out
}

func TestCheckCatalog(t *testing.T) {
	advanced := sampleWords("a", 8)
	for i := range advanced {
		// every advanced row shares one of two glosses
		advanced[i].Translate = fmt.Sprintf("t%d", i%2)
	}
	c, err := catalog.New(sampleWords("", 10), advanced, nil)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	problems := checkCatalog(c)
	for _, tier := range []entity.Tier{entity.TierEnglish, entity.TierChinese, entity.TierAudio, entity.TierChineseAdvance} {
		if _, bad := problems[tier]; bad {
			t.Fatalf("%s reported problems: %v", tier, problems[tier])
		}
	}

	adv := problems[entity.TierEnglishAdvance]
	if len(adv) != 1 || !strings.Contains(adv[0], "distinct answers, has 2") {
		t.Fatalf("english_advance problems = %v, want too few distinct answers", adv)
	}
}

func TestCheckCatalogTooSmall(t *testing.T) {
	c, err := catalog.New(sampleWords("", 10), sampleWords("a", 5), nil)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	problems := checkCatalog(c)
	for _, tier := range []entity.Tier{entity.TierEnglishAdvance, entity.TierChineseAdvance} {
		if msgs := problems[tier]; len(msgs) != 1 || !strings.Contains(msgs[0], "needs at least 7") {
			t.Fatalf("%s problems = %v", tier, msgs)
		}
	}
}
