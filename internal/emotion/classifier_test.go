package emotion

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestValidateTables(t *testing.T) {
	if err := ValidateTables(); err != nil {
		t.Fatalf("ValidateTables() = %v, want nil", err)
	}
}

func TestClassifyScenarios(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		name        string
		input       string
		wantEmotion Label
		wantConf    float64
	}{
		{
			name:        "anxiety keywords",
			input:       "أنا قلقان جدا",
			wantEmotion: Anxiety,
			wantConf:    1.0,
		},
		{
			name:        "happiness keywords",
			input:       "أنا سعيد اليوم",
			wantEmotion: Happiness,
			wantConf:    1.0,
		},
		{
			name:        "depression keywords",
			input:       "أنا حزين ومكتئب",
			wantEmotion: Depression,
			wantConf:    1.0,
		},
		{
			name:        "stress keywords",
			input:       "عندي ضغط شغل كتير",
			wantEmotion: Stress,
			wantConf:    1.0,
		},
		{
			name:        "no keyword matches",
			input:       "ذهب أحمد إلى المدرسة",
			wantEmotion: Neutral,
			wantConf:    0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.input)
			if got.Emotion != tt.wantEmotion {
				t.Errorf("Classify(%q).Emotion = %s, want %s", tt.input, got.Emotion, tt.wantEmotion)
			}
			if math.Abs(got.Confidence-tt.wantConf) > 1e-9 {
				t.Errorf("Classify(%q).Confidence = %v, want %v", tt.input, got.Confidence, tt.wantConf)
			}
			if got.Source != SourceKeyword {
				t.Errorf("Classify(%q).Source = %q, want %q", tt.input, got.Source, SourceKeyword)
			}
			if got.DescriptionAR != got.Emotion.Description() {
				t.Errorf("Classify(%q).DescriptionAR = %q, want %q", tt.input, got.DescriptionAR, got.Emotion.Description())
			}
		})
	}
}

func TestClassifyTooShort(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []string{"لا", "ا", "", "  ", "😢😢😢", "12345"}
	for _, input := range tests {
		got := c.Classify(input)
		if got.Emotion != Neutral {
			t.Errorf("Classify(%q).Emotion = %s, want neutral", input, got.Emotion)
		}
		if got.Confidence != 0.5 {
			t.Errorf("Classify(%q).Confidence = %v, want 0.5", input, got.Confidence)
		}
		if got.DescriptionAR != TooShortDescription {
			t.Errorf("Classify(%q).DescriptionAR = %q, want %q", input, got.DescriptionAR, TooShortDescription)
		}
	}
}

func TestClassifyTieBreak(t *testing.T) {
	c := NewKeywordClassifier()

	// One anxiety keyword and one depression keyword: both labels score one
	// hit, and the fixed scan order picks anxiety.
	got := c.Classify("انا قلقان وحزين")
	if got.Emotion != Anxiety {
		t.Errorf("tie between anxiety and depression resolved to %s, want anxiety", got.Emotion)
	}
	if math.Abs(got.Confidence-0.5) > 1e-9 {
		t.Errorf("tie confidence = %v, want 0.5 (1 of 2 hits)", got.Confidence)
	}

	// Depression vs stress tie resolves to depression, again by scan order.
	got = c.Classify("انا زعلان ومضغوط")
	if got.Emotion != Depression {
		t.Errorf("tie between depression and stress resolved to %s, want depression", got.Emotion)
	}
}

func TestClassifyRepeatedKeywordsCountOnce(t *testing.T) {
	c := NewKeywordClassifier()

	// Two distinct happiness keywords plus one depression keyword: happiness
	// still scores a single hit, so the result is a tie won by depression's
	// earlier scan position.
	got := c.Classify("انا مبسوط وسعيد بس زعلان")
	if got.Emotion != Depression {
		t.Errorf("Classify() = %s, want depression (one hit per label)", got.Emotion)
	}
	if math.Abs(got.Confidence-0.5) > 1e-9 {
		t.Errorf("confidence = %v, want 0.5", got.Confidence)
	}
}

func TestClassifyMultiWordPhrase(t *testing.T) {
	c := NewKeywordClassifier()

	got := c.Classify("قلبي مش مطمن ابدا النهارده")
	if got.Emotion != Anxiety {
		t.Errorf("multi-word phrase match: got %s, want anxiety", got.Emotion)
	}
}

func TestRoundedConfidence(t *testing.T) {
	r := Result{Confidence: 1.0 / 3.0}
	if got := r.RoundedConfidence(); got != 0.33 {
		t.Errorf("RoundedConfidence() = %v, want 0.33", got)
	}
}

type stubModel struct {
	label Label
	score float64
	err   error
}

func (m stubModel) Predict(string) (Label, float64, error) {
	return m.label, m.score, m.err
}

func TestModelOverrideClassifier(t *testing.T) {
	tests := []struct {
		name        string
		model       stubModel
		input       string
		wantEmotion Label
		wantSource  string
	}{
		{
			name:        "anxiety keywords reshape model depression",
			model:       stubModel{label: Depression, score: 0.9},
			input:       "انا قلقان من بكره",
			wantEmotion: Anxiety,
			wantSource:  SourceModel,
		},
		{
			name:        "stress keywords take precedence",
			model:       stubModel{label: Happiness, score: 0.8},
			input:       "انا تحت ضغط رهيب",
			wantEmotion: Stress,
			wantSource:  SourceModel,
		},
		{
			name:        "model verdict kept without override evidence",
			model:       stubModel{label: Happiness, score: 0.7},
			input:       "النهارده يوم جميل خالص",
			wantEmotion: Happiness,
			wantSource:  SourceModel,
		},
		{
			name:        "model failure falls back to keywords",
			model:       stubModel{err: errors.New("backend down")},
			input:       "انا مبسوط جدا",
			wantEmotion: Happiness,
			wantSource:  SourceKeyword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewModelOverrideClassifier(tt.model)
			got := c.Classify(tt.input)
			if got.Emotion != tt.wantEmotion {
				t.Errorf("Classify(%q).Emotion = %s, want %s", tt.input, got.Emotion, tt.wantEmotion)
			}
			if got.Source != tt.wantSource {
				t.Errorf("Classify(%q).Source = %q, want %q", tt.input, got.Source, tt.wantSource)
			}
		})
	}
}

func TestModelOverrideTooShortShortCircuits(t *testing.T) {
	c := NewModelOverrideClassifier(stubModel{label: Happiness, score: 0.9})
	got := c.Classify("لا")
	if got.DescriptionAR != TooShortDescription || got.Emotion != Neutral {
		t.Errorf("too-short input reached the model path: got %+v", got)
	}
}

func TestKeywordTableCoversAllLabels(t *testing.T) {
	for _, l := range Labels {
		if len(keywords[l]) == 0 {
			t.Errorf("label %s has no keywords", l)
		}
	}
	if !strings.Contains(strings.Join(keywords[Neutral], " "), "عادي") {
		t.Errorf("neutral keyword set missing expected entry")
	}
}
