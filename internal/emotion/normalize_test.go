package emotion

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \t\n ",
			want:  "",
		},
		{
			name:  "trims and collapses whitespace",
			input: "  انا   تعبان  ",
			want:  "انا تعبان",
		},
		{
			name:  "removes emoji",
			input: "انا زهقان 😢 جدا",
			want:  "انا زهقان جدا",
		},
		{
			name:  "removes ascii digits",
			input: "عندي 3 مشاكل",
			want:  "عندي مشاكل",
		},
		{
			name:  "removes arabic-indic digits",
			input: "عندي ٣ مشاكل",
			want:  "عندي مشاكل",
		},
		{
			name:  "unifies alef variants",
			input: "أنا إلى آخر",
			want:  "انا الي اخر",
		},
		{
			name:  "unifies taa marbuta and alef maqsura",
			input: "حاجة حلوة ى",
			want:  "حاجه حلوه ي",
		},
		{
			name:  "strips diacritics",
			input: "جَمِيلٌ",
			want:  "جميل",
		},
		{
			name:  "keeps basic punctuation",
			input: "ايه ده؟! طيب، ماشي.",
			want:  "ايه ده! طيب، ماشي.",
		},
		{
			name:  "drops other symbols",
			input: "انا @#$% تعبان",
			want:  "انا تعبان",
		},
		{
			name:  "keeps latin letters",
			input: "انا okay النهارده",
			want:  "انا okay النهارده",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"أنا زهقان قوي النهارده ومش عارف أعمل ايه 😢",
		"حاسس اني قلقان اوي من المستقبل",
		"الحمد لله انا كويس ومبسوط",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestMapDialect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "exact token match",
			input: "مش عارف اعمل ايه دلوقتي",
			want:  "لا عارف اعمل ماذا الان",
		},
		{
			name:  "no partial token match",
			input: "مشغول",
			want:  "مشغول",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapDialect(tt.input)
			if got != tt.want {
				t.Errorf("MapDialect(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDoesNotMapDialect(t *testing.T) {
	// Dialect substitution is lossy and must stay opt-in.
	got := Normalize("مش عارف")
	if got != "مش عارف" {
		t.Errorf("Normalize applied dialect mapping: got %q", got)
	}
}
