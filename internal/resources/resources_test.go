package resources

import (
	"testing"
	"time"

	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/emotion"
)

func TestDailyTipDeterministic(t *testing.T) {
	day := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	first := DailyTip(day)
	for i := 0; i < 5; i++ {
		if got := DailyTip(day); got != first {
			t.Fatalf("DailyTip varied within a day: %+v vs %+v", got, first)
		}
	}
	// Same calendar day at a different clock time gives the same tip.
	evening := time.Date(2025, 3, 14, 22, 30, 0, 0, time.UTC)
	if got := DailyTip(evening); got != first {
		t.Errorf("DailyTip changed within the day: %+v vs %+v", got, first)
	}
}

func TestDailyTipVariesAcrossDays(t *testing.T) {
	seen := map[string]bool{}
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		seen[DailyTip(day.AddDate(0, 0, i)).Text] = true
	}
	if len(seen) < 2 {
		t.Errorf("30 consecutive days produced %d distinct tips", len(seen))
	}
}

func TestDateSeed(t *testing.T) {
	day := time.Date(2025, 9, 1, 13, 45, 0, 0, time.UTC)
	if got := DateSeed(day); got != 20250901 {
		t.Errorf("DateSeed = %d, want 20250901", got)
	}
}

func TestForEmotion(t *testing.T) {
	tests := []struct {
		label     emotion.Label
		wantTitle string
	}{
		{emotion.Anxiety, "التعامل مع القلق"},
		{emotion.Depression, "التعامل مع الاكتئاب"},
		{emotion.Stress, "إدارة الضغط النفسي"},
		{emotion.Happiness, "الصحة النفسية العامة"},
		{emotion.Neutral, "الصحة النفسية العامة"},
		{emotion.Label("bogus"), "الصحة النفسية العامة"},
	}
	for _, tt := range tests {
		s := ForEmotion(tt.label)
		if s.Title != tt.wantTitle {
			t.Errorf("ForEmotion(%s).Title = %q, want %q", tt.label, s.Title, tt.wantTitle)
		}
		if len(s.Tips) == 0 || len(s.Techniques) == 0 || len(s.WhenToSeekHelp) == 0 {
			t.Errorf("ForEmotion(%s) has empty sections", tt.label)
		}
	}
}

func TestEmergencyContactsHotline(t *testing.T) {
	contacts := EmergencyContacts()
	egypt, ok := contacts["egypt"]
	if !ok || len(egypt) == 0 {
		t.Fatal("missing egypt contacts")
	}
	found := false
	for _, c := range egypt {
		if c.Number == HotlineNumber && c.Type == "hotline" {
			found = true
		}
	}
	if !found {
		t.Errorf("hotline %s not present in egypt contacts", HotlineNumber)
	}
}
