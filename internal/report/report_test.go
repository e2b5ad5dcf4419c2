package report

import (
	"strings"
	"testing"
	"time"

	"shuho/internal/core"
)

func topic(rank int, channel, title string) core.ReportTopic {
	return core.ReportTopic{
		Rank:        rank,
		ChannelName: channel,
		Title:       title,
		Summary:     "要約テキスト",
		URL:         "https://example.com/thread",
	}
}

func TestFormatJapaneseDateRange(t *testing.T) {
	start := time.Date(2023, 10, 26, 0, 0, 0, 0, time.Local)
	end := time.Date(2023, 11, 1, 0, 0, 0, 0, time.Local)

	got := FormatJapaneseDateRange(start, end)
	want := "2023年10月26日(木) 〜 2023年11月1日(水)"
	if got != want {
		t.Errorf("FormatJapaneseDateRange = %q, want %q", got, want)
	}
}

func TestFormatTopics_EmptyRendersPlaceholder(t *testing.T) {
	got := FormatTopics(nil)
	want := "今週は特に目立った話題はありませんでした。\n"
	if got != want {
		t.Errorf("FormatTopics(nil) = %q, want %q", got, want)
	}
}

func TestFormatTopics_Entry(t *testing.T) {
	got := FormatTopics([]core.ReportTopic{topic(0, "雑談", "週末の話")})

	want := "🥇 #雑談 で「週末の話」\n→ 要約テキスト\n💬 スレッドを見る: https://example.com/thread\n"
	if got != want {
		t.Errorf("FormatTopics = %q, want %q", got, want)
	}
}

func TestFormatTopics_RankGlyphs(t *testing.T) {
	cases := []struct {
		rank int
		want string
	}{
		{0, "🥇"},
		{1, "🥈"},
		{2, "🥉"},
		{3, "4️⃣"},
		{4, "5️⃣"},
		{5, "🔹"},
	}

	for _, tc := range cases {
		got := FormatTopics([]core.ReportTopic{topic(tc.rank, "雑談", "話題")})
		if !strings.HasPrefix(got, tc.want) {
			t.Errorf("rank %d rendered %q, want prefix %q", tc.rank, got, tc.want)
		}
	}
}

func TestRender_FullTemplate(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 7, 7, 0, 0, 0, 0, time.Local)

	general := []core.ReportTopic{topic(0, "雑談", "一般の話題")}
	paid := []core.ReportTopic{topic(0, "限定ラウンジ", "有料の話題"), topic(1, "限定ラウンジ", "二位の話題")}

	got := Render("テスト部", start, end, general, paid)

	for _, want := range []string{
		"📅 テスト部週報",
		FormatJapaneseDateRange(start, end),
		"こんにちは！今週もテスト部で様々な交流がありました。",
		"《一般エリア》",
		"【🔥 今週盛り上がった話題 TOP1】",
		"《有料エリア》",
		"【🔥 今週盛り上がった話題 TOP2】",
		"🥇 #雑談 で「一般の話題」",
		"🥈 #限定ラウンジ で「二位の話題」",
		"それでは、来週も活発な交流を楽しみにしています！",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q\n\n%s", want, got)
		}
	}

	if !strings.HasPrefix(got, "＿＿＿＿＿＿＿＿＿＿＿\n") {
		t.Error("report should open with the divider block")
	}
	if !strings.HasSuffix(got, "＿＿＿＿＿＿＿＿＿＿＿") {
		t.Error("report should close with the divider block")
	}
}

func TestRender_EmptyAreasKeepSections(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 7, 7, 0, 0, 0, 0, time.Local)

	got := Render("テスト部", start, end, nil, nil)

	if strings.Count(got, "今週は特に目立った話題はありませんでした。") != 2 {
		t.Errorf("both empty areas should render the placeholder line:\n%s", got)
	}
	if !strings.Contains(got, "TOP0") {
		t.Errorf("empty area should still render its heading:\n%s", got)
	}
}
