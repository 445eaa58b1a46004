package catalog

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// FindSubject maps free text to a subject name. It tries three tiers in
// order and the first hit wins:
//
//  1. a multi-word chapter name contained verbatim in the text;
//  2. keyword voting over the index (at least minMatches distinct hits,
//     the subject with the strictly highest count wins, ties go to the
//     subject that comes first in the catalog);
//  3. fuzzy token-set similarity against every chapter name.
//
// The second return value is false when nothing matched
func (c *Catalog) FindSubject(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	lower := strings.ToLower(text)

	// Multi-word chapters are more specific than single keywords,
	// so a verbatim hit short-circuits everything else
	for _, subject := range c.subjects {
		for _, chapter := range subject.Chapters {
			if strings.Contains(chapter, " ") && strings.Contains(lower, strings.ToLower(chapter)) {
				return subject.Name, true
			}
		}
	}

	if name, ok := c.voteByKeywords(lower); ok {
		return name, true
	}

	return c.fuzzyMatch(lower)
}

// voteByKeywords tallies one vote per subject per distinct indexed token
func (c *Catalog) voteByKeywords(lower string) (string, bool) {
	votes := make(map[string]int)
	seen := make(map[string]bool)
	for _, word := range tokenize(lower, c.minKeywordLen) {
		if seen[word] {
			continue
		}
		seen[word] = true

		if subject, ok := c.index[word]; ok {
			votes[subject]++
		}
	}

	// first subject in catalog order keeps the maximum on a tie
	var best string
	bestVotes := 0
	for _, subject := range c.subjects {
		if votes[subject.Name] > bestVotes {
			best = subject.Name
			bestVotes = votes[subject.Name]
		}
	}

	if bestVotes < c.minMatches {
		return "", false
	}
	return best, true
}

// fuzzyMatch compares the text against every chapter of every subject and
// returns the owner of the best-scoring chapter if the score reaches the
// threshold
func (c *Catalog) fuzzyMatch(lower string) (string, bool) {
	var best string
	bestScore := 0
	for _, subject := range c.subjects {
		for _, chapter := range subject.Chapters {
			score := fuzzy.TokenSetRatio(lower, strings.ToLower(chapter))
			if score > bestScore {
				best = subject.Name
				bestScore = score
			}
		}
	}

	if bestScore < c.fuzzyThreshold {
		return "", false
	}
	return best, true
}
