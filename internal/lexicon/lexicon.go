package lexicon

import (
	"fmt"
)

// Lexicon holds the fixed word lists the analyzer scores text against.
// A Lexicon is built once and never mutated afterwards.
type Lexicon struct {
	// Name identifies the lexicon (e.g., "ko")
	Name string `yaml:"name"`

	// StopWords are dropped from keyword frequency counts
	StopWords []string `yaml:"stop_words"`

	// Emotions are keyword buckets in tie-break order
	Emotions []EmotionBucket `yaml:"emotions"`

	// ExclamationWeight is added to the enthusiastic bucket per "!"
	ExclamationWeight int `yaml:"exclamation_weight"`

	// Emoticons each add one point to the playful bucket per occurrence
	Emoticons []string `yaml:"emoticons"`

	// ImperativeMarkers mark a sentence as imperative
	ImperativeMarkers []string `yaml:"imperative_markers"`

	// FormalPatterns and CasualPatterns drive the formality score
	FormalPatterns []string `yaml:"formal_patterns"`
	CasualPatterns []string `yaml:"casual_patterns"`

	// EndingPatterns are sentence endings whose frequency is reported
	EndingPatterns []string `yaml:"ending_patterns"`

	stopWords map[string]bool
}

// EmotionBucket is a named list of keywords for one emotional tone
type EmotionBucket struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Bucket names the analyzer knows how to report
const (
	BucketEnthusiastic = "enthusiastic"
	BucketFriendly     = "friendly"
	BucketProfessional = "professional"
	BucketPlayful      = "playful"
)

var knownBuckets = map[string]bool{
	BucketEnthusiastic: true,
	BucketFriendly:     true,
	BucketProfessional: true,
	BucketPlayful:      true,
}

// IsStopWord reports whether word is in the stop-word list
func (l *Lexicon) IsStopWord(word string) bool {
	return l.stopWords[word]
}

// prepare validates the lexicon and builds lookup tables
func (l *Lexicon) prepare() error {
	if l.Name == "" {
		return fmt.Errorf("lexicon has no name")
	}
	if len(l.Emotions) == 0 {
		return fmt.Errorf("lexicon %s: no emotion buckets", l.Name)
	}

	seen := make(map[string]bool, len(l.Emotions))
	for _, b := range l.Emotions {
		if !knownBuckets[b.Name] {
			return fmt.Errorf("lexicon %s: unknown emotion bucket %q", l.Name, b.Name)
		}
		if seen[b.Name] {
			return fmt.Errorf("lexicon %s: duplicate emotion bucket %q", l.Name, b.Name)
		}
		seen[b.Name] = true
		for _, kw := range b.Keywords {
			if kw == "" {
				return fmt.Errorf("lexicon %s: empty keyword in emotion bucket %s", l.Name, b.Name)
			}
		}
	}

	lists := map[string][]string{
		"stop_words":         l.StopWords,
		"emoticons":          l.Emoticons,
		"imperative_markers": l.ImperativeMarkers,
		"formal_patterns":    l.FormalPatterns,
		"casual_patterns":    l.CasualPatterns,
		"ending_patterns":    l.EndingPatterns,
	}
	for field, list := range lists {
		for _, s := range list {
			if s == "" {
				return fmt.Errorf("lexicon %s: empty entry in %s", l.Name, field)
			}
		}
	}

	l.stopWords = make(map[string]bool, len(l.StopWords))
	for _, w := range l.StopWords {
		l.stopWords[w] = true
	}
	return nil
}
