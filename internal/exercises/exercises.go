// Package exercises holds the guided therapy exercise catalog, the per-emotion
// recommendation table, and the deterministic daily challenge.
package exercises

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/emotion"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/resources"
)

// Exercise is one guided exercise.
type Exercise struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
	Duration    int      `json:"duration_minutes"`
	Benefits    []string `json:"benefits"`
}

// Category groups related exercises.
type Category struct {
	Key       string     `json:"key"`
	Name      string     `json:"name"`
	Icon      string     `json:"icon"`
	Exercises []Exercise `json:"exercises"`
}

// Recommendation pairs an exercise with the reason it fits the emotion.
type Recommendation struct {
	Category string `json:"category"`
	Exercise string `json:"exercise"`
	Reason   string `json:"reason"`
}

// Challenge is the daily activity prompt.
type Challenge struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
}

var catalog = []Category{
	{
		Key:  "breathing",
		Name: "تمارين التنفس",
		Icon: "🫁",
		Exercises: []Exercise{
			{
				Name:        "تنفس 4-7-8",
				Description: "تقنية مهدئة للقلق والتوتر",
				Steps: []string{
					"اجلس في وضع مريح",
					"ضع طرف لسانك خلف أسنانك العلوية",
					"أخرج الهواء تماماً من فمك",
					"أغلق فمك واستنشق من الأنف لمدة 4 ثوانِ",
					"احبس النفس لمدة 7 ثوانِ",
					"أخرج الهواء من الفم لمدة 8 ثوانِ",
					"كرر 3-4 مرات",
				},
				Duration: 2,
				Benefits: []string{"تقليل القلق", "تحسين النوم", "الاسترخاء السريع"},
			},
			{
				Name:        "التنفس العميق",
				Description: "تنفس بطيء وعميق للاسترخاء",
				Steps: []string{
					"اجلس أو استلق بشكل مريح",
					"ضع يد على صدرك ويد على بطنك",
					"تنفس ببطء من الأنف",
					"اجعل بطنك يرتفع أكثر من صدرك",
					"أخرج الهواء ببطء من الفم",
					"كرر لمدة 5-10 دقائق",
				},
				Duration: 5,
				Benefits: []string{"تقليل الضغط", "تحسين التركيز", "الهدوء النفسي"},
			},
		},
	},
	{
		Key:  "mindfulness",
		Name: "اليقظة الذهنية",
		Icon: "🧘",
		Exercises: []Exercise{
			{
				Name:        "تأمل الـ 5 حواس",
				Description: "تركيز على اللحظة الحالية",
				Steps: []string{
					"اجلس في مكان هادئ",
					"حدد 5 أشياء تراها",
					"حدد 4 أشياء تلمسها",
					"حدد 3 أشياء تسمعها",
					"حدد شيئين تشمهما",
					"حدد شيء واحد تتذوقه",
					"خذ نفساً عميقاً واسترخ",
				},
				Duration: 3,
				Benefits: []string{"تقليل القلق", "زيادة التركيز", "الحضور الذهني"},
			},
			{
				Name:        "مسح الجسم",
				Description: "استرخاء تدريجي لكامل الجسم",
				Steps: []string{
					"استلق بشكل مريح",
					"أغلق عينيك وتنفس بعمق",
					"ركز على أصابع قدميك - استرخها",
					"انتقل تدريجياً لأعلى الجسم",
					"استرخ كل عضلة تمر عليها",
					"وصل للرأس والوجه",
					"استمتع بالاسترخاء الكامل",
				},
				Duration: 10,
				Benefits: []string{"استرخاء عميق", "تقليل التوتر العضلي", "تحسين النوم"},
			},
		},
	},
	{
		Key:  "cognitive",
		Name: "التمارين المعرفية",
		Icon: "🧠",
		Exercises: []Exercise{
			{
				Name:        "تحدي الأفكار السلبية",
				Description: "إعادة تقييم الأفكار المؤذية",
				Steps: []string{
					"اكتب الفكرة السلبية",
					"اسأل: هل هذا صحيح 100%؟",
					"ما الدليل على صحة هذه الفكرة؟",
					"ما الدليل ضد هذه الفكرة؟",
					"ما رأي صديق حكيم؟",
					"اكتب فكرة أكثر توازناً",
					"كيف تشعر الآن؟",
				},
				Duration: 5,
				Benefits: []string{"تقليل الأفكار السلبية", "تحسين المزاج", "زيادة الوعي الذاتي"},
			},
		},
	},
	{
		Key:  "gratitude",
		Name: "تمارين الامتنان",
		Icon: "🙏",
		Exercises: []Exercise{
			{
				Name:        "يومية الامتنان",
				Description: "كتابة 3 أشياء تشعر بالامتنان لها",
				Steps: []string{
					"اجلس في مكان هادئ",
					"فكر في يومك",
					"اكتب 3 أشياء تشعر بالامتنان لها",
					"اكتب لماذا تشعر بالامتنان لكل شيء",
					"تأمل في هذه المشاعر الإيجابية",
					"احتفظ بهذه القائمة",
				},
				Duration: 5,
				Benefits: []string{"تحسين المزاج", "زيادة السعادة", "تقليل الاكتئاب"},
			},
		},
	},
}

var challenges = []Challenge{
	{Title: "تحدي الامتنان", Description: "اكتب 5 أشياء تشعر بالامتنان لها اليوم", Icon: "🌟", Category: "gratitude"},
	{Title: "تحدي التنفس", Description: "مارس تمرين التنفس العميق لمدة 5 دقائق", Icon: "🫁", Category: "breathing"},
	{Title: "تحدي اليقظة", Description: "مارس تأمل الـ 5 حواس", Icon: "🧘", Category: "mindfulness"},
	{Title: "تحدي الأفكار", Description: "تحدى فكرة سلبية واحدة اليوم", Icon: "💭", Category: "cognitive"},
}

var recommendations = map[emotion.Label]Recommendation{
	emotion.Anxiety: {
		Category: "breathing",
		Exercise: "تنفس 4-7-8",
		Reason:   "تمرين التنفس هذا فعال جداً في تهدئة القلق",
	},
	emotion.Stress: {
		Category: "mindfulness",
		Exercise: "مسح الجسم",
		Reason:   "يساعد على تخفيف التوتر الجسدي والنفسي",
	},
	emotion.Depression: {
		Category: "gratitude",
		Exercise: "يومية الامتنان",
		Reason:   "التركيز على الإيجابيات يحسن المزاج",
	},
	emotion.Neutral: {
		Category: "mindfulness",
		Exercise: "تأمل الـ 5 حواس",
		Reason:   "يزيد من الوعي والحضور الذهني",
	},
}

// Catalog returns the full exercise catalog in fixed order.
func Catalog() []Category {
	return catalog
}

// Lookup finds an exercise by category key and name.
func Lookup(categoryKey, name string) (Exercise, error) {
	for _, c := range catalog {
		if c.Key != categoryKey {
			continue
		}
		for _, ex := range c.Exercises {
			if ex.Name == name {
				return ex, nil
			}
		}
		return Exercise{}, fmt.Errorf("exercise %q not found in category %q", name, categoryKey)
	}
	return Exercise{}, fmt.Errorf("unknown exercise category %q", categoryKey)
}

// ValidCategory reports whether the category key exists in the catalog.
func ValidCategory(key string) bool {
	for _, c := range catalog {
		if c.Key == key {
			return true
		}
	}
	return false
}

// Recommend returns the exercise suited to the emotion. Happiness and
// unrecognized labels fall back to the neutral recommendation.
func Recommend(label emotion.Label) Recommendation {
	if r, ok := recommendations[label]; ok {
		return r
	}
	return recommendations[emotion.Neutral]
}

// DailyChallenge returns the challenge for the given day, seeded from the
// date so the pick is stable within a calendar day.
func DailyChallenge(day time.Time) Challenge {
	rng := rand.New(rand.NewSource(resources.DateSeed(day)))
	return challenges[rng.Intn(len(challenges))]
}
