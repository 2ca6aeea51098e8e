package analyzer

import (
	"strings"

	"github.com/pthm/uxtone/internal/lexicon"
)

// EmotionScore is the raw score of one emotion bucket
type EmotionScore struct {
	Tone  EmotionalTone `json:"tone"`
	Score int           `json:"score"`
}

// EmotionScores scores every bucket of the lexicon, in declaration order.
//
// Each keyword adds its literal occurrence count to its bucket. Every "!"
// adds ExclamationWeight to the enthusiastic bucket and every emoticon
// occurrence adds one to the playful bucket.
func (a *Analyzer) EmotionScores(text string) []EmotionScore {
	scores := make([]EmotionScore, 0, len(a.lex.Emotions))

	exclamations := strings.Count(text, "!")
	emoticons := countAll(text, a.lex.Emoticons)

	for _, bucket := range a.lex.Emotions {
		score := countAll(text, bucket.Keywords)

		switch bucket.Name {
		case lexicon.BucketEnthusiastic:
			score += exclamations * a.lex.ExclamationWeight
		case lexicon.BucketPlayful:
			score += emoticons
		}

		scores = append(scores, EmotionScore{
			Tone:  EmotionalTone(bucket.Name),
			Score: score,
		})
	}

	return scores
}

// EmotionalTone returns the bucket with the strictly highest score. Ties go
// to the bucket declared first; a text with no signal is neutral.
func (a *Analyzer) EmotionalTone(text string) EmotionalTone {
	best := ToneNeutral
	bestScore := 0
	for _, s := range a.EmotionScores(text) {
		if s.Score > bestScore {
			best, bestScore = s.Tone, s.Score
		}
	}
	return best
}
