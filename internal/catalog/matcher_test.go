package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ur-amit-01/Post-Manager-sub000/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Subject{
		{
			Name: "Physics",
			Chapters: []string{
				"Laws of Motion",
				"Work, Energy and Power",
				"Gravitation",
				"Waves",
			},
		},
		{
			Name: "Inorganic Chemistry",
			Chapters: []string{
				"Chemical Bonding and Molecular Structure",
				"Hydrogen",
				"Coordination Compounds",
			},
		},
	})
}

func TestFindSubjectChapterSubstring(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		text    string
		subject string
	}{
		{"Chemical Bonding and Molecular Structure", "Inorganic Chemistry"},
		{"Notes (part 3): CHEMICAL BONDING AND MOLECULAR STRUCTURE, must read!", "Inorganic Chemistry"},
		{"today's lecture covers laws of motion with examples", "Physics"},
	}

	for _, test := range tests {
		subject, ok := c.FindSubject(test.text)
		require.True(t, ok, "no match for %q", test.text)
		assert.Equal(t, test.subject, subject)
	}
}

func TestFindSubjectKeywordVoting(t *testing.T) {
	c := testCatalog()

	// two distinct Physics keywords, no verbatim chapter hit
	subject, ok := c.FindSubject("revision sheet on gravitation and energy")
	require.True(t, ok)
	assert.Equal(t, "Physics", subject)

	// a single keyword hit is below the threshold and falls through
	// to the fuzzy tier, which cannot score a one-word overlap of a
	// long chapter high enough
	_, ok = c.FindSubject("something about energy maybe")
	assert.False(t, ok)
}

func TestFindSubjectVotingTieBreak(t *testing.T) {
	c := catalog.New([]catalog.Subject{
		{Name: "First", Chapters: []string{"alpha beta", "epsilon zeta"}},
		{Name: "Second", Chapters: []string{"gamma delta", "theta kappa"}},
	})

	// two votes each, the subject that comes first in the catalog wins
	subject, ok := c.FindSubject("alpha epsilon gamma theta")
	require.True(t, ok)
	assert.Equal(t, "First", subject)
}

func TestFindSubjectKeywordCollision(t *testing.T) {
	c := catalog.New([]catalog.Subject{
		{Name: "First", Chapters: []string{"shared alpha"}},
		{Name: "Second", Chapters: []string{"shared gamma"}},
	})

	// "shared" is claimed by the last subject that contributed it
	subject, ok := c.FindSubject("stuff shared and also gamma here")
	require.True(t, ok)
	assert.Equal(t, "Second", subject)
}

func TestFindSubjectFuzzy(t *testing.T) {
	c := testCatalog()

	// single-word chapters are skipped by the substring tier and one
	// keyword is below the voting threshold, so only the fuzzy tier
	// can resolve this
	subject, ok := c.FindSubject("hydrogen")
	require.True(t, ok)
	assert.Equal(t, "Inorganic Chemistry", subject)
}

func TestFindSubjectNoMatch(t *testing.T) {
	c := testCatalog()

	tests := []string{
		"",
		"good morning everyone",
		"xyzzy qwerty asdfgh",
	}

	for _, text := range tests {
		_, ok := c.FindSubject(text)
		assert.False(t, ok, "unexpected match for %q", text)
	}
}

func TestLoadFile(t *testing.T) {
	c, err := catalog.LoadFile("../../data/subjects.json")
	require.NoError(t, err)

	assert.Contains(t, c.Subjects(), "Physics")

	subject, ok := c.FindSubject("New upload!! Chemical Bonding and Molecular Structure DPP with solutions")
	require.True(t, ok)
	assert.Equal(t, "Inorganic Chemistry", subject)
}
