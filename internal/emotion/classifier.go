package emotion

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Source tags identify which method produced a classification.
const (
	SourceKeyword = "keyword"
	SourceModel   = "model"
)

// TooShortDescription is returned when the normalized text is too short to
// carry any signal.
const TooShortDescription = "نص قصير جداً"

// minTextLength is the normalized-length threshold below which classification
// short-circuits to neutral.
const minTextLength = 3

// Result is a single classification outcome. Confidence is the raw internal
// value; use RoundedConfidence for display.
type Result struct {
	Emotion       Label
	Confidence    float64
	DescriptionAR string
	Source        string
}

// RoundedConfidence returns the confidence rounded to two decimal places for
// display surfaces.
func (r Result) RoundedConfidence() float64 {
	return math.Round(r.Confidence*100) / 100
}

// Classifier maps free text to an emotional state with a confidence score.
type Classifier interface {
	Classify(text string) Result
}

// KeywordClassifier is the active classifier: deterministic substring
// matching against per-label keyword sets over normalized text.
type KeywordClassifier struct{}

// NewKeywordClassifier returns the keyword classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

func neutralResult() Result {
	return Result{
		Emotion:       Neutral,
		Confidence:    0.5,
		DescriptionAR: Neutral.Description(),
		Source:        SourceKeyword,
	}
}

// Classify never panics on malformed input: any internal failure degrades to
// the neutral/0.5 result.
func (c *KeywordClassifier) Classify(text string) (res Result) {
	defer func() {
		if recover() != nil {
			res = neutralResult()
		}
	}()

	normalized := Normalize(text)
	if utf8.RuneCountInString(normalized) < minTextLength {
		return Result{
			Emotion:       Neutral,
			Confidence:    0.5,
			DescriptionAR: TooShortDescription,
			Source:        SourceKeyword,
		}
	}

	hits := scanKeywords(normalized)

	total := 0
	for _, n := range hits {
		total += n
	}
	if total == 0 {
		return neutralResult()
	}

	// Fixed iteration order doubles as the tie-break: the first label in
	// Labels with the maximum hit count wins. The order is pinned by
	// TestClassifyTieBreak.
	best := Labels[0]
	for _, l := range Labels[1:] {
		if hits[l] > hits[best] {
			best = l
		}
	}

	return Result{
		Emotion:       best,
		Confidence:    float64(hits[best]) / float64(total),
		DescriptionAR: best.Description(),
		Source:        SourceKeyword,
	}
}

// scanKeywords counts, per label, whether any of its keywords appear as a
// substring of the normalized text. A label scores at most one hit per scan:
// the first matching keyword counts and the rest of the set is skipped, so
// repeated or multiple keywords from the same set do not inflate confidence.
func scanKeywords(normalized string) map[Label]int {
	hits := make(map[Label]int, len(Labels))
	for _, l := range Labels {
		for _, kw := range keywords[l] {
			if strings.Contains(normalized, kw) {
				hits[l]++
				break
			}
		}
	}
	return hits
}

// SentimentModel is the capability a statistical sentiment backend must
// provide for the model-assisted path.
type SentimentModel interface {
	// Predict returns a coarse sentiment label and score for the text.
	Predict(text string) (Label, float64, error)
}

// ModelOverrideClassifier is the reserved "model" path: it consults a
// statistical model and lets it override the keyword result only when keyword
// evidence points to anxiety or stress. It is not wired into the server by
// default; the keyword classifier is the production path.
type ModelOverrideClassifier struct {
	model   SentimentModel
	keyword *KeywordClassifier
}

// NewModelOverrideClassifier wraps a sentiment model around the keyword
// classifier.
func NewModelOverrideClassifier(model SentimentModel) *ModelOverrideClassifier {
	return &ModelOverrideClassifier{
		model:   model,
		keyword: NewKeywordClassifier(),
	}
}

// Classify runs the model, then corrects its coarse output with keyword
// evidence: anxiety keywords reshape a model "depression" verdict into
// anxiety, and stress keywords take precedence outright. Model failure falls
// back to the keyword result.
func (c *ModelOverrideClassifier) Classify(text string) Result {
	kw := c.keyword.Classify(text)
	if kw.DescriptionAR == TooShortDescription {
		return kw
	}

	predicted, score, err := c.model.Predict(Normalize(text))
	if err != nil || !predicted.Valid() {
		return kw
	}

	hits := scanKeywords(Normalize(text))
	emotion := predicted
	if hits[Anxiety] > 0 && emotion == Depression {
		emotion = Anxiety
	} else if hits[Stress] > 0 {
		emotion = Stress
	}

	return Result{
		Emotion:       emotion,
		Confidence:    score,
		DescriptionAR: emotion.Description(),
		Source:        SourceModel,
	}
}
