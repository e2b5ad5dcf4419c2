package report

import (
	"fmt"
	"strings"
	"time"

	"shuho/internal/core"
)

// rankingEmoji maps a 0-based rank to its glyph. Ranks beyond the list get
// the generic bullet.
var rankingEmoji = []string{"🥇", "🥈", "🥉", "4️⃣", "5️⃣"}

const (
	divider        = "＿＿＿＿＿＿＿＿＿＿＿"
	noTopicsLine   = "今週は特に目立った話題はありませんでした。\n"
	genericBullet  = "🔹"
	areaGeneralJPN = "一般エリア"
	areaPaidJPN    = "有料エリア"
)

// rankEmoji returns the glyph for a 0-based rank.
func rankEmoji(rank int) string {
	if rank >= 0 && rank < len(rankingEmoji) {
		return rankingEmoji[rank]
	}
	return genericBullet
}

// FormatTopics renders the ranked topic entries of one area. An empty list
// renders the fixed no-topics line instead of an empty section.
func FormatTopics(topics []core.ReportTopic) string {
	if len(topics) == 0 {
		return noTopicsLine
	}
	blocks := make([]string, 0, len(topics))
	for _, t := range topics {
		blocks = append(blocks, fmt.Sprintf("%s #%s で「%s」\n→ %s\n💬 スレッドを見る: %s\n",
			rankEmoji(t.Rank), t.ChannelName, t.Title, t.Summary, t.URL))
	}
	return strings.Join(blocks, "\n")
}

// Render assembles the full weekly report text from the enriched topics of
// both areas. Purely deterministic string construction.
func Render(serverName string, start, end time.Time, general, paid []core.ReportTopic) string {
	var b strings.Builder

	b.WriteString(divider + "\n")
	b.WriteString(fmt.Sprintf("📅 %s週報\n", serverName))
	b.WriteString(FormatJapaneseDateRange(start, end) + "\n")
	b.WriteString(divider + "\n\n")

	b.WriteString(fmt.Sprintf("こんにちは！今週も%sで様々な交流がありました。\n", serverName))
	b.WriteString("今週のトピックスをお届けします✨\n\n")

	b.WriteString(fmt.Sprintf("《%s》\n", areaGeneralJPN))
	b.WriteString(fmt.Sprintf("【🔥 今週盛り上がった話題 TOP%d】\n\n", len(general)))
	b.WriteString(FormatTopics(general))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("《%s》\n", areaPaidJPN))
	b.WriteString(fmt.Sprintf("【🔥 今週盛り上がった話題 TOP%d】\n\n", len(paid)))
	b.WriteString(FormatTopics(paid))
	b.WriteString("\n")

	b.WriteString(divider + "\n")
	b.WriteString("それでは、来週も活発な交流を楽しみにしています！\n")
	b.WriteString("良い週末をお過ごしください 🌟\n")
	b.WriteString(divider)

	return b.String()
}
