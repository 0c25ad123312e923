package main

import (
	"errors"
	"fmt"

	"github.com/evandrarf/words7000-bot/internal/config"
	"github.com/evandrarf/words7000-bot/internal/delivery/http/entity"
	"github.com/evandrarf/words7000-bot/internal/pkg/catalog"
	"github.com/evandrarf/words7000-bot/internal/pkg/textnorm"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the word catalogs",
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the catalogs and check every tier can build questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := config.NewCatalog(config.NewViper())
		if err != nil {
			color.New(color.FgHiRed).Printf("error: %v\n", err)
			return err
		}

		problems := checkCatalog(words)
		for _, tier := range entity.AllTiers {
			pool := len(words.All(tier))
			line := fmt.Sprintf("%-16s %5d words, %d options per question", tier, pool, tier.DistractorCount()+1)
			if _, bad := problems[tier]; bad {
				color.New(color.FgRed).Println(line)
			} else {
				color.New(color.FgGreen).Println(line)
			}
		}

		if len(problems) == 0 {
			color.New(color.FgHiCyan).Println("catalog ok")
			return nil
		}
		for tier, msgs := range problems {
			for _, m := range msgs {
				color.New(color.FgYellow).Printf("%s: %s\n", tier, m)
			}
		}
		return errors.New("catalog check failed")
	},
}

func init() {
	catalogCmd.AddCommand(catalogCheckCmd)
}

// checkCatalog reports, per tier, pools too small to build a follow-up
// question that excludes the previous target or shares its answer. Rows
// missing a field never get this far: catalog.New rejects them.
func checkCatalog(words *catalog.Catalog) map[entity.Tier][]string {
	problems := make(map[entity.Tier][]string)
	for _, tier := range entity.AllTiers {
		pool := words.All(tier)
		if need := tier.DistractorCount() + 2; len(pool) < need {
			problems[tier] = append(problems[tier], fmt.Sprintf("needs at least %d words, has %d", need, len(pool)))
		}
		if tier.DistractorCount() == 0 {
			continue
		}
		answers := lo.UniqBy(pool, func(w entity.WordEntry) string { return textnorm.StripPOS(tier.Answer(w)) })
		if need := tier.DistractorCount() + 2; len(pool) >= need && len(answers) < need {
			problems[tier] = append(problems[tier], fmt.Sprintf("needs at least %d distinct answers, has %d", need, len(answers)))
		}
	}
	return problems
}
