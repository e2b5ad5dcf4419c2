package summarize

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"shuho/internal/core"
	"shuho/internal/logger"
	"shuho/internal/sanitize"
)

const (
	// titlePromptTemplate asks for a catchy 15-25 character topic title.
	titlePromptTemplate = "あなたはオンラインコミュニティの優秀なコピーライターです。以下の会話スレッドの内容を要約し、15〜25文字でキャッチーなタイトルを生成してください。タイトルは「〇〇について語り合い」「△△の体験談」のような、親しみやすく魅力的な形式にしてください。引用符は含めないでください。\n\n会話内容:\n---\n%s"

	// summaryPromptTemplate asks for a 50-100 character summary that works
	// the engagement numbers into the text.
	summaryPromptTemplate = "あなたはコミュニティマネージャーのアシスタントです。以下の会話スレッドの内容を分析し、50〜100文字で自然で親しみやすい要約文を作成してください。このスレッドは%d件のリアクションと%d件の返信がありました。このエンゲージメント数を「○件の返信で活発な議論に」「多くの共感を集めました」のように、会話の盛り上がりを表現する文脈に含めてください。\n\n会話内容:\n---\n%s"

	titleTemperature   = 0.7
	summaryTemperature = 0.8
)

// Fallback strings used when the thread has no usable text or generation fails.
const (
	emptyContentTitle   = "コミュニティでの交流"
	emptyContentSummary = "メンバー間で活発なやり取りがありました。"
	fallbackTitle       = "注目のトピック"
)

// TextGenerator is the LLM surface the enricher needs. llm.Client satisfies
// it; tests substitute doubles.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

// TopicDetails is the generated title/summary pair for one thread.
type TopicDetails struct {
	Title   string
	Summary string
}

// Enricher turns thread content into a title and summary via an LLM.
// Generation failures never propagate; they are replaced with fixed
// fallback text so a single failure cannot abort a whole report.
type Enricher struct {
	gen     TextGenerator
	timeout time.Duration
}

// NewEnricher creates an enricher with a bounded per-call timeout.
// A non-positive timeout falls back to 30 seconds.
func NewEnricher(gen TextGenerator, timeout time.Duration) *Enricher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Enricher{gen: gen, timeout: timeout}
}

// TopicDetails generates the title and summary for a thread. The two
// prompts are issued in parallel.
func (e *Enricher) TopicDetails(ctx context.Context, thread core.Thread) TopicDetails {
	content := threadContent(thread)
	if content == "" {
		return TopicDetails{Title: emptyContentTitle, Summary: emptyContentSummary}
	}

	var (
		title   string
		summary string
		wg      sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		title = e.generateTitle(ctx, content)
	}()
	go func() {
		defer wg.Done()
		summary = e.generateSummary(ctx, content, thread.TotalReactionCount, len(thread.Replies))
	}()
	wg.Wait()

	return TopicDetails{Title: title, Summary: summary}
}

// threadContent joins the sanitized parent and reply messages, skipping
// posts whose message sanitizes to nothing.
func threadContent(thread core.Thread) string {
	lines := make([]string, 0, 1+len(thread.Replies))
	if msg := sanitize.CleanMessage(thread.Parent.Message); msg != "" {
		lines = append(lines, msg)
	}
	for _, reply := range thread.Replies {
		if msg := sanitize.CleanMessage(reply.Message); msg != "" {
			lines = append(lines, msg)
		}
	}
	return strings.Join(lines, "\n")
}

func (e *Enricher) generateTitle(ctx context.Context, content string) string {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	text, err := e.gen.GenerateText(ctx, fmt.Sprintf(titlePromptTemplate, content), titleTemperature)
	if err != nil {
		log := logger.Get()
		log.Warn().Err(err).Msg("title generation failed, using fallback")
		return fallbackTitle
	}
	return stripQuotes(strings.TrimSpace(text))
}

func (e *Enricher) generateSummary(ctx context.Context, content string, reactions, replies int) string {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	text, err := e.gen.GenerateText(ctx, fmt.Sprintf(summaryPromptTemplate, reactions, replies, content), summaryTemperature)
	if err != nil {
		log := logger.Get()
		log.Warn().Err(err).Msg("summary generation failed, using fallback")
		return fmt.Sprintf("合計%d件のエンゲージメントがあり、大変盛り上がりました。", reactions+replies)
	}
	return strings.TrimSpace(text)
}

// stripQuotes removes quote characters the model tends to wrap titles in.
func stripQuotes(s string) string {
	return strings.NewReplacer(`"`, "", "「", "", "」", "").Replace(s)
}
