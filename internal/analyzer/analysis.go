package analyzer

// SentenceType classifies the dominant sentence form of a text
type SentenceType string

const (
	Declarative   SentenceType = "declarative"
	Interrogative SentenceType = "interrogative"
	Imperative    SentenceType = "imperative"
	Exclamatory   SentenceType = "exclamatory"
	// Mixed is part of the vocabulary but SentenceType never returns it.
	Mixed SentenceType = "mixed"
)

// EmotionalTone is the dominant emotional register of a text
type EmotionalTone string

const (
	ToneNeutral      EmotionalTone = "neutral"
	ToneEnthusiastic EmotionalTone = "enthusiastic"
	ToneFriendly     EmotionalTone = "friendly"
	ToneProfessional EmotionalTone = "professional"
	TonePlayful      EmotionalTone = "playful"
)

// NeutralScore is returned by the scoring functions when a text carries no
// signal either way
const NeutralScore = 50

// TopKeywordCount is the number of keywords kept in TextAnalysis.TopKeywords
const TopKeywordCount = 5

// TextAnalysis is the full heuristic analysis of one string
type TextAnalysis struct {
	SentenceType     SentenceType   `json:"sentenceType"`
	EmotionalTone    EmotionalTone  `json:"emotionalTone"`
	KeywordFrequency map[string]int `json:"keywordFrequency"`
	TopKeywords      []string       `json:"topKeywords"`
	FormalityScore   int            `json:"formalityScore"`   // 0 very friendly, 100 very formal
	ReadabilityScore int            `json:"readabilityScore"` // 0 hard, 100 easy
	EndingPatterns   map[string]int `json:"endingPatterns"`
}
