package catalog

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
)

type candidate struct {
	id   string
	name string
}

func (c *Catalog) candidates(kind Kind) []candidate {
	var out []candidate
	switch kind {
	case KindCrop:
		for _, v := range c.crops {
			out = append(out, candidate{v.ID, v.Name})
		}
	case KindAnimal:
		for _, v := range c.animals {
			out = append(out, candidate{v.ID, v.Name})
		}
	case KindProduct:
		for _, v := range c.products {
			out = append(out, candidate{v.ID, v.Name})
		}
	case KindQuest:
		for _, v := range c.quests {
			out = append(out, candidate{v.ID, v.Label})
		}
	}
	return out
}

// Resolve maps user input to a catalog id. Matching is case-insensitive on
// id and display name and tolerates small typos. When nothing is close enough
// the error wraps domain.ErrUnknownCatalogEntry and names the nearest entry.
func (c *Catalog) Resolve(kind Kind, input string) (string, error) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return "", fmt.Errorf("%w: empty %s", domain.ErrUnknownCatalogEntry, kind)
	}

	cands := c.candidates(kind)
	for _, cand := range cands {
		if in == strings.ToLower(cand.id) || in == strings.ToLower(cand.name) {
			return cand.id, nil
		}
	}

	best, bestDist, bestLen := "", -1, 0
	for _, cand := range cands {
		for _, alias := range []string{strings.ToLower(cand.id), strings.ToLower(cand.name)} {
			dist := levenshtein.ComputeDistance(in, alias)
			if bestDist < 0 || dist < bestDist {
				best, bestDist, bestLen = cand.id, dist, len(alias)
			}
		}
	}

	// Very short inputs are too ambiguous to correct.
	if best != "" && len(in) >= 3 && bestDist <= levenshteinLimit(bestLen) {
		return best, nil
	}
	if best != "" {
		return "", fmt.Errorf("%w: %s %q (did you mean %q?)", domain.ErrUnknownCatalogEntry, kind, input, best)
	}
	return "", fmt.Errorf("%w: %s %q", domain.ErrUnknownCatalogEntry, kind, input)
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
