package exercises

import (
	"testing"
	"time"

	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/emotion"
)

func TestCatalogShape(t *testing.T) {
	cats := Catalog()
	if len(cats) != 4 {
		t.Fatalf("catalog has %d categories, want 4", len(cats))
	}
	wantKeys := []string{"breathing", "mindfulness", "cognitive", "gratitude"}
	for i, key := range wantKeys {
		if cats[i].Key != key {
			t.Errorf("category %d = %s, want %s", i, cats[i].Key, key)
		}
		if len(cats[i].Exercises) == 0 {
			t.Errorf("category %s has no exercises", key)
		}
		for _, ex := range cats[i].Exercises {
			if len(ex.Steps) == 0 || ex.Duration <= 0 {
				t.Errorf("exercise %s in %s has missing steps or duration", ex.Name, key)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	ex, err := Lookup("breathing", "تنفس 4-7-8")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if ex.Duration != 2 {
		t.Errorf("duration = %d, want 2", ex.Duration)
	}

	if _, err := Lookup("breathing", "nope"); err == nil {
		t.Error("expected error for unknown exercise")
	}
	if _, err := Lookup("nope", "تنفس 4-7-8"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestValidCategory(t *testing.T) {
	if !ValidCategory("gratitude") {
		t.Error("gratitude should be valid")
	}
	if ValidCategory("yoga") {
		t.Error("yoga should not be valid")
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		label        emotion.Label
		wantCategory string
		wantExercise string
	}{
		{emotion.Anxiety, "breathing", "تنفس 4-7-8"},
		{emotion.Stress, "mindfulness", "مسح الجسم"},
		{emotion.Depression, "gratitude", "يومية الامتنان"},
		{emotion.Neutral, "mindfulness", "تأمل الـ 5 حواس"},
		{emotion.Happiness, "mindfulness", "تأمل الـ 5 حواس"},
		{emotion.Label("bogus"), "mindfulness", "تأمل الـ 5 حواس"},
	}
	for _, tt := range tests {
		r := Recommend(tt.label)
		if r.Category != tt.wantCategory || r.Exercise != tt.wantExercise {
			t.Errorf("Recommend(%s) = %s/%s, want %s/%s",
				tt.label, r.Category, r.Exercise, tt.wantCategory, tt.wantExercise)
		}
		if r.Reason == "" {
			t.Errorf("Recommend(%s) has empty reason", tt.label)
		}
		// Every recommendation resolves against the catalog.
		if _, err := Lookup(r.Category, r.Exercise); err != nil {
			t.Errorf("Recommend(%s) points at missing exercise: %v", tt.label, err)
		}
	}
}

func TestDailyChallengeDeterministic(t *testing.T) {
	day := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	first := DailyChallenge(day)
	later := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	if got := DailyChallenge(later); got != first {
		t.Errorf("challenge changed within the day: %+v vs %+v", got, first)
	}

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[DailyChallenge(day.AddDate(0, 0, i)).Title] = true
	}
	if len(seen) < 2 {
		t.Errorf("20 days produced %d distinct challenges", len(seen))
	}
}
