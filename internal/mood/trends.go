package mood

import "github.com/AMRSAEEDBADWAY/rafiq-server/internal/emotion"

// Stats holds the derived trend statistics for one window of entries. It is
// computed fresh per query and never stored.
type Stats struct {
	TotalEntries      int           `json:"total_entries"`
	AverageMood       float64       `json:"average_mood"`
	MostCommonEmotion emotion.Label `json:"most_common_emotion"`
	MoodImprovement   float64       `json:"mood_improvement"`
	BestDay           string        `json:"best_day"`
	WorstDay          string        `json:"worst_day"`
	AverageConfidence float64       `json:"average_confidence"`
}

// Statistics computes trend stats over a windowed subsequence of entries.
// A nil return is the no-data sentinel for an empty window; it is never an
// error.
func Statistics(entries []Entry) *Stats {
	if len(entries) == 0 {
		return nil
	}

	var scoreSum, confSum float64
	counts := make(map[emotion.Label]int)
	bestIdx, worstIdx := 0, 0

	for i, e := range entries {
		scoreSum += float64(e.MoodScore)
		confSum += e.Confidence
		counts[e.Emotion]++
		if e.MoodScore > entries[bestIdx].MoodScore {
			bestIdx = i
		}
		if e.MoodScore < entries[worstIdx].MoodScore {
			worstIdx = i
		}
	}

	return &Stats{
		TotalEntries:      len(entries),
		AverageMood:       scoreSum / float64(len(entries)),
		MostCommonEmotion: mostCommon(entries, counts),
		MoodImprovement:   improvement(entries),
		BestDay:           entries[bestIdx].Date,
		WorstDay:          entries[worstIdx].Date,
		AverageConfidence: confSum / float64(len(entries)),
	}
}

// mostCommon picks the emotion with the highest occurrence count. Ties go to
// the emotion encountered first in the chronological scan; that is a
// documented implementation choice, not a semantic guarantee.
func mostCommon(entries []Entry, counts map[emotion.Label]int) emotion.Label {
	best := entries[0].Emotion
	seen := map[emotion.Label]bool{best: true}
	for _, e := range entries[1:] {
		if seen[e.Emotion] {
			continue
		}
		seen[e.Emotion] = true
		if counts[e.Emotion] > counts[best] {
			best = e.Emotion
		}
	}
	return best
}

// improvement is the second-half mean mood score minus the first-half mean,
// splitting the chronologically ordered entries at floor(n/2). Fewer than two
// entries cannot define a trend, so the delta is 0.
func improvement(entries []Entry) float64 {
	if len(entries) < 2 {
		return 0
	}
	mid := len(entries) / 2
	return mean(entries[mid:]) - mean(entries[:mid])
}

func mean(entries []Entry) float64 {
	var sum float64
	for _, e := range entries {
		sum += float64(e.MoodScore)
	}
	return sum / float64(len(entries))
}
