package mood

// Insight texts, one per rule. Ephemeral observations; never persisted.
const (
	insightMoodExcellent  = "🌟 حالتك المزاجية ممتازة! استمر على هذا المنوال"
	insightMoodGood       = "😊 حالتك المزاجية جيدة بشكل عام"
	insightMoodDifficult  = "💙 نلاحظ أنك تمر بفترة صعبة، نحن هنا لدعمك"
	insightImproving      = "📈 هناك تحسن ملحوظ في حالتك المزاجية!"
	insightDeclining      = "📉 نلاحظ انخفاض في المزاج، ربما تحتاج لمزيد من الدعم"
	insightHighEngagement = "👏 رائع! أنت تتفاعل بانتظام مع المساعد"
	insightSomeEngagement = "✨ تفاعل جيد! حاول الكتابة أكثر لتتبع أفضل"
	insightHighConfidence = "🎯 نحن واثقون من تحليل حالتك بدقة عالية"
)

// Insights evaluates the fixed rule table over stats. Rules fire
// independently, in listed order; a nil stats (no data) yields no insights.
func Insights(stats *Stats) []string {
	if stats == nil {
		return nil
	}

	var out []string

	switch {
	case stats.AverageMood >= 4:
		out = append(out, insightMoodExcellent)
	case stats.AverageMood >= 3:
		out = append(out, insightMoodGood)
	default:
		out = append(out, insightMoodDifficult)
	}

	if stats.MoodImprovement > 0.5 {
		out = append(out, insightImproving)
	} else if stats.MoodImprovement < -0.5 {
		out = append(out, insightDeclining)
	}

	if stats.TotalEntries >= 10 {
		out = append(out, insightHighEngagement)
	} else if stats.TotalEntries >= 5 {
		out = append(out, insightSomeEngagement)
	}

	if stats.AverageConfidence >= 0.8 {
		out = append(out, insightHighConfidence)
	}

	return out
}
