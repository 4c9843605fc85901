// Package responder generates the assistant's Arabic replies. A Gemini-backed
// generator produces the primary response; a curated fallback table guarantees
// a reply even when the API is unreachable or unconfigured.
package responder

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/emotion"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/resources"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// systemPrompt defines the assistant persona. The responder always speaks as
// Dr. Amal, an empathetic Egyptian therapist, and never gives diagnoses or
// prescriptions.
const systemPrompt = `أنتِ "د. أمل"، طبيبة نفسية مصرية محترفة ومتعاطفة جداً.
دورك هو تقديم الدعم النفسي الأولي، الاستماع الفعال، والمساعدة في ترتيب الأفكار.

صفات شخصيتك:
1. **متعاطفة جداً**: تشعرين بألم المستخدم وتظهرين ذلك في كلامك ("أنا حاسة بيك"، "حقك تتضايق").
2. **مصرية أصيلة**: تتكلمين باللهجة المصرية الدافئة والبسيطة (مش فصحى معقدة ولا عامية سوقية).
3. **محترفة**: لا تحكمين على المستخدم، ولا تقدمين تشخيصات طبية قاطعة، ولا تصفين أدوية.
4. **إيجابية وواقعية**: تركزين على الحلول الصغيرة الممكنة (Baby Steps).

طريقة ردك (CBT Approach):
1. **Validation (التقبل)**: ابدأي دائماً بتقبل مشاعر المستخدم وتأكيد أنها طبيعية.
2. **Exploration (الاستكشاف)**: اسألي أسئلة مفتوحة لفهم الأفكار وراء المشاعر.
3. **Reframing (إعادة الصياغة)**: ساعدي المستخدم يشوف الموضوع من زاوية تانية بأسلوب لطيف.
4. **Action (العمل)**: اقترحي خطوة صغيرة جداً وعملية يقدر يعملها دلوقتي.

قواعد صارمة:
- لا تتجاوزي 5-6 أسطر في الرد الواحد (خليكي مركزة).
- دائماً انهي الرد بسؤال متابعة يشجع المستخدم يكمل كلام.
- لو المستخدم لمح للانتحار أو إيذاء النفس، وجهيه فوراً للخط الساخن (` + resources.HotlineNumber + `) بلطف وحزم.`

var fallbackReplies = map[emotion.Label][]string{
	emotion.Anxiety: {
		"أنا حاسة بقلقك، وده شعور طبيعي لما نكون مضغوطين. خدي نفس عميق معايا.. شهيق.. زفير. إيه أكتر فكرة مسيطرة عليك دلوقتي؟",
		"القلق عامل زي الدوشة في الدماغ، بيخلينا مش عارفين نركز. تعالي نحاول نرتب الأفكار دي سوا. إيه اللي مخوفك تحديداً؟",
	},
	emotion.Depression: {
		"أنا مقدرة جداً الألم اللي حاسس بيه. الأيام الصعبة دي بتعدي، حتى لو حاسس إنها مش هتخلص. أنا هنا جنبك وسامعاك. حابب تحكيلي أكتر عن اللي مضايقك؟",
		"حقك تكون زعلان، ومفيش داعي تضغط على نفسك عشان تكون 'كويس' دلوقتي. سيب مشاعرك تطلع. إيه اللي شاغل بالك؟",
	},
	emotion.Stress: {
		"واضح إن الحمل تقيل عليك الفترة دي. بس صدقني، كل مشكلة وليها حل لما تتقسم لأجزاء صغيرة. إيه أول حاجة ممكن نخلصها عشان نخفف الضغط ده؟",
		"الضغط النفسي بيسحب طاقتنا، عشان كده مهم نكون رحيمين بنفسنا. إيه رأيك ناخد بريك صغير ونفكر سوا في حل؟",
	},
	emotion.Happiness: {
		"يا سلام! الأخبار الحلوة دي بتفرحني جداً. يارب دايماً مبسوط. إيه اللي خلاك تحس بالسعادة دي النهارده؟",
		"طاقتك الإيجابية وصلتلي! جميل إننا نقدر اللحظات الحلوة دي. احكيلي أكتر، إيه اللي حصل؟",
	},
	emotion.Neutral: {
		"أهلاً بيك يا بطل. أنا د. أمل، موجودة هنا عشان أسمعك في أي وقت. يومك كان عامل إزاي؟",
		"أنا سامعاك ومهتمة أعرف أخبارك. في حاجة معينة شاغلة تفكيرك النهارده؟",
	},
}

var followups = map[emotion.Label]string{
	emotion.Anxiety:    "إيه أسوأ سيناريو خايف منه؟ وهل هو واقعي؟",
	emotion.Depression: "إيه الحاجة الصغيرة اللي لو حصلت دلوقتي ممكن تحسن مزاجك ولو 1%؟",
	emotion.Stress:     "مين ممكن يساعدك تشيل الحمل ده معاك؟",
	emotion.Happiness:  "إزاي ممكن نحافظ على الشعور الجميل ده لبكرة؟",
	emotion.Neutral:    "إيه اللي نفسك تحققه الفترة الجاية؟",
}

// DefaultFollowup is used for labels missing from the followup table.
const DefaultFollowup = "تحب نتكلم في إيه كمان؟"

// Responder generates replies. client is nil in fallback-only mode.
type Responder struct {
	client    *genai.Client
	modelName string
	now       func() time.Time
}

// New creates a responder. An empty API key enables fallback-only mode
// instead of failing, so the pipeline keeps answering without Gemini.
func New(ctx context.Context, apiKey, modelName string) (*Responder, error) {
	if modelName == "" {
		modelName = DefaultModel
	}
	r := &Responder{modelName: modelName, now: time.Now}

	if apiKey == "" {
		log.Warn().Msg("no gemini api key configured, responder running in fallback-only mode")
		return r, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	r.client = client
	return r, nil
}

// Reply produces the assistant reply for one user message. It never returns
// an error: Gemini failures degrade to the curated fallback for the detected
// emotion, with the pick seeded from the current date.
func (r *Responder) Reply(ctx context.Context, userText string, label emotion.Label, history string) string {
	if r.client != nil {
		reply, err := r.generate(ctx, userText, label, history)
		if err == nil {
			return reply
		}
		log.Warn().Err(err).Str("emotion", string(label)).Msg("gemini generation failed, using fallback reply")
	}
	return r.fallback(label)
}

func (r *Responder) generate(ctx context.Context, userText string, label emotion.Label, history string) (string, error) {
	prompt := fmt.Sprintf(`%s

سياق المحادثة الحالية:
%s

معلومات إضافية عن الحالة الآن:
- مشاعر المستخدم المكتشفة: %s
- رسالة المستخدم الأخيرة: %s

المطلوب:
ردي على المستخدم بصفتك "د. أمل" بناءً على القواعد السابقة.`, systemPrompt, history, label, userText)

	model := r.client.GenerativeModel(r.modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", r.modelName)
	}
	return text, nil
}

func (r *Responder) fallback(label emotion.Label) string {
	replies, ok := fallbackReplies[label]
	if !ok {
		replies = fallbackReplies[emotion.Neutral]
	}
	rng := rand.New(rand.NewSource(resources.DateSeed(r.now())))
	return replies[rng.Intn(len(replies))]
}

// Followup returns the open question suited to the emotion, used to keep the
// conversation going after exercises or silences.
func Followup(label emotion.Label) string {
	if q, ok := followups[label]; ok {
		return q
	}
	return DefaultFollowup
}

// HealthCheck verifies the Gemini path with a minimal generation. Fallback
// mode always reports healthy since it cannot fail.
func (r *Responder) HealthCheck(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	model := r.client.GenerativeModel(r.modelName)
	resp, err := model.GenerateContent(ctx, genai.Text("رد بكلمة واحدة: تمام"))
	if err != nil {
		return fmt.Errorf("gemini health check: %w", err)
	}
	if extractText(resp) == "" {
		return fmt.Errorf("gemini health check: empty response")
	}
	return nil
}

// FallbackOnly reports whether the responder runs without a Gemini client.
func (r *Responder) FallbackOnly() bool {
	return r.client == nil
}

// Close releases the underlying client.
func (r *Responder) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
