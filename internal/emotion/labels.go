package emotion

import "fmt"

// Label is one of the five closed emotional states the classifier can assign.
type Label string

const (
	Anxiety    Label = "anxiety"
	Depression Label = "depression"
	Stress     Label = "stress"
	Happiness  Label = "happiness"
	Neutral    Label = "neutral"
)

// Labels holds every label in the fixed scan order. The order matters: the
// classifier breaks max-score ties by picking the first label in this slice,
// and the description/keyword tables are validated against it.
var Labels = []Label{Anxiety, Depression, Stress, Happiness, Neutral}

// descriptions maps each label to its one-line Arabic description.
var descriptions = map[Label]string{
	Anxiety:    "حالة قلق وتوتر",
	Depression: "حالة حزن واكتئاب",
	Stress:     "حالة ضغط نفسي",
	Happiness:  "حالة سعادة وراحة",
	Neutral:    "حالة طبيعية",
}

// emojis maps each label to a display emoji.
var emojis = map[Label]string{
	Anxiety:    "😰",
	Depression: "😢",
	Stress:     "😫",
	Happiness:  "😊",
	Neutral:    "😐",
}

// Valid reports whether l is a member of the closed label set.
func (l Label) Valid() bool {
	for _, known := range Labels {
		if l == known {
			return true
		}
	}
	return false
}

// Description returns the Arabic description for the label.
func (l Label) Description() string {
	if d, ok := descriptions[l]; ok {
		return d
	}
	return "غير محدد"
}

// Emoji returns the display emoji for the label.
func (l Label) Emoji() string {
	if e, ok := emojis[l]; ok {
		return e
	}
	return "🙂"
}

// ParseLabel converts a string into a Label, rejecting anything outside the
// closed set.
func ParseLabel(s string) (Label, error) {
	l := Label(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown emotion label %q", s)
	}
	return l, nil
}

// ValidateTables checks at startup that every label has an entry in every
// static table, so a missing row fails loudly instead of falling through to a
// silent default at lookup time.
func ValidateTables() error {
	for _, l := range Labels {
		if _, ok := descriptions[l]; !ok {
			return fmt.Errorf("label %s missing from description table", l)
		}
		if _, ok := emojis[l]; !ok {
			return fmt.Errorf("label %s missing from emoji table", l)
		}
		kws, ok := keywords[l]
		if !ok || len(kws) == 0 {
			return fmt.Errorf("label %s missing from keyword table", l)
		}
		// Keywords are matched against normalized text, so every entry must
		// itself be normalization-stable or it could never fire.
		for _, kw := range kws {
			if Normalize(kw) != kw {
				return fmt.Errorf("keyword %q for label %s is not in normalized form", kw, l)
			}
		}
	}
	return nil
}
