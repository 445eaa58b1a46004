package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"unicode"
)

// Subject is one classification category with its chapter list
type Subject struct {
	Name     string   `json:"name"`
	Chapters []string `json:"chapters"`
}

// Catalog holds the subject list and the keyword index built from it.
// The order of subjects matters: it is the tie-break order of the matcher
type Catalog struct {
	subjects []Subject
	index    map[string]string // keyword -> subject name

	minKeywordLen  int
	minMatches     int
	fuzzyThreshold int
}

const (
	defaultMinKeywordLen  = 4
	defaultMinMatches     = 2
	defaultFuzzyThreshold = 75
)

// New builds a catalog and its keyword index.
// On keyword collision between subjects the last subject wins
func New(subjects []Subject) *Catalog {
	c := &Catalog{
		subjects:       subjects,
		index:          make(map[string]string),
		minKeywordLen:  defaultMinKeywordLen,
		minMatches:     defaultMinMatches,
		fuzzyThreshold: defaultFuzzyThreshold,
	}

	for _, subject := range subjects {
		for _, chapter := range subject.Chapters {
			for _, word := range tokenize(strings.ToLower(chapter), c.minKeywordLen) {
				c.index[word] = subject.Name
			}
		}
	}

	return c
}

// LoadFile reads the subject catalog from a json file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var subjects []Subject
	if err := json.Unmarshal(data, &subjects); err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, errors.New("subject catalog is empty")
	}

	return New(subjects), nil
}

// Subjects returns the subject names in catalog order
func (c *Catalog) Subjects() []string {
	names := make([]string, 0, len(c.subjects))
	for _, subject := range c.subjects {
		names = append(names, subject.Name)
	}
	return names
}

// tokenize splits lower-cased text into words of at least minLen runes
func tokenize(text string, minLen int) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	words := make([]string, 0, len(fields))
	for _, field := range fields {
		if len([]rune(field)) >= minLen {
			words = append(words, field)
		}
	}
	return words
}
