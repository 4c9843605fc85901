package emotion

// keywords maps each label to its colloquial Egyptian Arabic keyword set.
// Matching is substring containment against the normalized text, so entries
// may be multi-word phrases.
var keywords = map[Label][]string{
	Anxiety: {
		"قلقان", "خايف", "متوتر", "مش مرتاح", "قلبي مش مطمن",
		"خوف", "توتر", "قلق", "مرعوب", "خايف من المستقبل",
	},
	Depression: {
		"زهقان", "تعبان نفسيا", "مكتئب", "مش عايز حاجه",
		"حزين", "مش لاقي معني", "مخنوق", "يئست", "بكره حياتي", "زعلان", "متضايق", "موجوع",
	},
	Stress: {
		"مضغوط", "مش قادر", "تحت ضغط", "ضغط", "مرهق", "متعب",
		"ضغط شديد", "مش مستحمل", "كل حاجه صعبه",
	},
	Happiness: {
		"فرحان", "مبسوط", "سعيد", "حلو", "كويس",
		"تمام", "رايق", "مستمتع",
	},
	Neutral: {
		"عادي", "مش عارف", "عادي كده", "طبيعي",
	},
}

// dialectToStandard maps Egyptian colloquial tokens to their standard-register
// equivalents. Applied only on exact whitespace-token match, and only when the
// caller opts in: the substitution is lossy.
var dialectToStandard = map[string]string{
	"ازاي":   "كيف",
	"ازيك":   "كيف حالك",
	"عامل":   "كيف",
	"ايه":    "ماذا",
	"مش":     "لا",
	"علشان":  "لان",
	"عشان":   "لان",
	"لسه":    "لا يزال",
	"خالص":   "جدا",
	"اوي":    "جدا",
	"قوي":    "جدا",
	"برضه":   "ايضا",
	"كمان":   "ايضا",
	"بقي":    "اصبح",
	"يعني":   "اي",
	"دلوقتي": "الان",
	"حاجه":   "شيء",
	"حاجات":  "اشياء",
	"ناس":    "اشخاص",
	"كده":    "هكذا",
	"كدة":    "هكذا",
}
