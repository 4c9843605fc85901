package mood

import (
	"fmt"

	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/emotion"
)

// scores maps each emotion to its ordinal wellbeing score. The scale exists
// only for averaging and trend math; it is not a clinical severity measure.
var scores = map[emotion.Label]int{
	emotion.Happiness:  5,
	emotion.Neutral:    3,
	emotion.Anxiety:    2,
	emotion.Stress:     2,
	emotion.Depression: 1,
}

// DefaultScore is used for labels outside the closed set, which should not
// occur in practice.
const DefaultScore = 3

// Score converts an emotion label to its mood score.
func Score(label emotion.Label) int {
	if s, ok := scores[label]; ok {
		return s
	}
	return DefaultScore
}

// ValidateScoreTable checks at startup that every label has a score entry.
func ValidateScoreTable() error {
	for _, l := range emotion.Labels {
		if _, ok := scores[l]; !ok {
			return fmt.Errorf("label %s missing from score table", l)
		}
	}
	return nil
}
