// Package resources serves the static self-help content: per-emotion advice
// sheets, a deterministic daily tip, and emergency contact listings.
package resources

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/emotion"
)

// Sheet is an advice sheet for one emotional state.
type Sheet struct {
	Emotion        string   `json:"emotion"`
	Title          string   `json:"title"`
	Icon           string   `json:"icon"`
	Tips           []string `json:"tips"`
	Techniques     []string `json:"techniques"`
	WhenToSeekHelp []string `json:"when_to_seek_help"`
}

// Tip is one daily wellness tip.
type Tip struct {
	Text     string `json:"tip"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

// Contact is one emergency support contact.
type Contact struct {
	Name        string `json:"name"`
	Number      string `json:"number,omitempty"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// HotlineNumber is the Egyptian mental health hotline, surfaced in crisis
// guidance.
const HotlineNumber = "08008880700"

var sheets = map[string]Sheet{
	"anxiety": {
		Emotion: "anxiety",
		Title:   "التعامل مع القلق",
		Icon:    "😰",
		Tips: []string{
			"تمرن على التنفس العميق لمدة 5 دقائق يومياً",
			"اكتب مخاوفك على الورق لتقليل تأثيرها النفسي",
			"مارس الرياضة بانتظام لتقليل هرمونات التوتر",
			"تجنب الكافيين الزائد خاصة في المساء",
			"حدد وقتاً محدداً للقلق (15 دقيقة يومياً فقط)",
			"استخدم تقنية 5-4-3-2-1 للتركيز على اللحظة الحالية",
		},
		Techniques: []string{
			"تقنية التنفس 4-7-8",
			"تمرين استرخاء العضلات التدريجي",
			"تقنية إعادة التأطير المعرفي",
			"تمرين اليقظة الذهنية",
		},
		WhenToSeekHelp: []string{
			"عندما يؤثر القلق على عملك أو دراستك",
			"إذا كنت تتجنب الأنشطة بسبب القلق",
			"عند وجود أعراض جسدية مستمرة",
			"إذا كان القلق يؤثر على علاقاتك",
		},
	},
	"depression": {
		Emotion: "depression",
		Title:   "التعامل مع الاكتئاب",
		Icon:    "😢",
		Tips: []string{
			"حافظ على روتين يومي ثابت",
			"اخرج في الشمس لمدة 15 دقيقة يومياً",
			"تواصل مع الأصدقاء والعائلة بانتظام",
			"مارس أنشطة تستمتع بها حتى لو لم تشعر بالرغبة",
			"اكتب يومياً 3 أشياء تشعر بالامتنان لها",
			"تجنب اتخاذ قرارات مهمة أثناء نوبات الحزن",
		},
		Techniques: []string{
			"العلاج السلوكي المعرفي الذاتي",
			"تمارين الامتنان اليومية",
			"النشاط الجسدي المنتظم",
			"تقنيات حل المشكلات",
		},
		WhenToSeekHelp: []string{
			"عند فقدان الاهتمام بالأنشطة لأكثر من أسبوعين",
			"إذا كانت لديك أفكار إيذاء النفس",
			"عند تغيرات كبيرة في النوم أو الشهية",
			"إذا كنت تشعر باليأس المستمر",
		},
	},
	"stress": {
		Emotion: "stress",
		Title:   "إدارة الضغط النفسي",
		Icon:    "😫",
		Tips: []string{
			"نظم أولوياتك واكتب قائمة مهام يومية",
			"تعلم قول 'لا' للالتزامات الإضافية",
			"خذ فترات راحة قصيرة كل ساعة",
			"مارس تمارين الاسترخاء قبل النوم",
			"قسم المهام الكبيرة إلى خطوات صغيرة",
			"احتفل بإنجازاتك الصغيرة",
		},
		Techniques: []string{
			"تقنية إدارة الوقت",
			"تمارين الاسترخاء السريع",
			"التفكير الإيجابي",
			"تقنية حل المشكلات المنهجي",
		},
		WhenToSeekHelp: []string{
			"عند الشعور بالإرهاق المستمر",
			"إذا كان الضغط يؤثر على صحتك الجسدية",
			"عند صعوبة في اتخاذ القرارات",
			"إذا كنت تلجأ لعادات ضارة للتأقلم",
		},
	},
	"general": {
		Emotion: "general",
		Title:   "الصحة النفسية العامة",
		Icon:    "🧠",
		Tips: []string{
			"احصل على 7-8 ساعات نوم يومياً",
			"تناول وجبات متوازنة في أوقات منتظمة",
			"مارس الرياضة لمدة 30 دقيقة يومياً",
			"خصص وقتاً للهوايات والأنشطة الممتعة",
			"تعلم مهارات جديدة لتحفيز عقلك",
			"حافظ على علاقات اجتماعية صحية",
		},
		Techniques: []string{
			"تقنيات اليقظة الذهنية",
			"التأمل اليومي",
			"كتابة اليوميات",
			"التطوع ومساعدة الآخرين",
		},
		WhenToSeekHelp: []string{
			"عند الشعور بالحاجة للدعم الإضافي",
			"للوقاية والحفاظ على الصحة النفسية",
			"عند مواجهة تغيرات كبيرة في الحياة",
			"للتطوير الشخصي والنمو",
		},
	},
}

var dailyTips = []Tip{
	{Text: "ابدأ يومك بـ 5 دقائق تأمل أو تنفس عميق", Category: "morning", Icon: "🌅"},
	{Text: "اشرب كوب ماء فور استيقاظك لتنشيط جسمك", Category: "health", Icon: "💧"},
	{Text: "اكتب 3 أشياء تشعر بالامتنان لها كل مساء", Category: "gratitude", Icon: "🙏"},
	{Text: "خذ استراحة من الشاشات كل ساعة لمدة 5 دقائق", Category: "digital_wellness", Icon: "📱"},
	{Text: "تحدث مع صديق أو أحد أفراد العائلة اليوم", Category: "social", Icon: "👥"},
	{Text: "امش في الطبيعة أو اجلس في مكان أخضر لمدة 10 دقائق", Category: "nature", Icon: "🌳"},
	{Text: "اقرأ شيئاً إيجابياً أو ملهماً لمدة 15 دقيقة", Category: "learning", Icon: "📚"},
	{Text: "مارس تمريناً بسيطاً أو تمدد لمدة 10 دقائق", Category: "exercise", Icon: "🏃"},
	{Text: "استمع لموسيقى هادئة أو أصوات طبيعية", Category: "relaxation", Icon: "🎵"},
	{Text: "نظف أو رتب مساحة صغيرة حولك", Category: "environment", Icon: "🧹"},
}

var emergencyContacts = map[string][]Contact{
	"egypt": {
		{
			Name:        "الخط الساخن للصحة النفسية",
			Number:      HotlineNumber,
			Description: "خدمة مجانية 24/7 للدعم النفسي",
			Type:        "hotline",
		},
		{
			Name:        "خط نجدة الطوارئ",
			Number:      "123",
			Description: "للحالات الطارئة",
			Type:        "emergency",
		},
		{
			Name:        "مستشفى الصحة النفسية",
			Number:      "0227940000",
			Description: "مستشفى العباسية للصحة النفسية",
			Type:        "hospital",
		},
	},
	"international": {
		{
			Name:        "International Association for Suicide Prevention",
			Website:     "https://www.iasp.info/resources/Crisis_Centres/",
			Description: "قائمة مراكز الأزمات عالمياً",
			Type:        "website",
		},
	},
}

// DateSeed converts a day to a stable integer seed, 20250901 style. The same
// seed drives every daily selection so callers agree within a calendar day.
func DateSeed(day time.Time) int64 {
	n, err := strconv.ParseInt(day.Format("20060102"), 10, 64)
	if err != nil {
		return day.Unix()
	}
	return n
}

// DailyTip returns the tip for the given day. Selection is seeded from the
// date so repeated calls on one day agree.
func DailyTip(day time.Time) Tip {
	rng := rand.New(rand.NewSource(DateSeed(day)))
	return dailyTips[rng.Intn(len(dailyTips))]
}

// ForEmotion returns the advice sheet for the emotion, falling back to the
// general sheet for happiness, neutral, or anything unrecognized.
func ForEmotion(label emotion.Label) Sheet {
	if s, ok := sheets[string(label)]; ok {
		return s
	}
	return sheets["general"]
}

// EmergencyContacts returns the contact listings grouped by region.
func EmergencyContacts() map[string][]Contact {
	return emergencyContacts
}
