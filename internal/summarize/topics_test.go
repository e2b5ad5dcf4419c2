package summarize

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"shuho/internal/core"
)

// stubGenerator answers prompts with canned responses and records every
// prompt it receives. Safe for concurrent use.
type stubGenerator struct {
	mu      sync.Mutex
	prompts []string
	answer  func(prompt string) (string, error)
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()
	if s.answer != nil {
		return s.answer(prompt)
	}
	return "生成されたテキスト", nil
}

func testThread(message string, replyMessages ...string) core.Thread {
	thread := core.Thread{
		Parent: core.Post{
			ID:          "p1",
			MessageType: core.MessageTypeParent,
			Message:     message,
		},
	}
	for i, msg := range replyMessages {
		thread.Replies = append(thread.Replies, core.Post{
			ID:          fmt.Sprintf("r%d", i),
			MessageType: core.MessageTypeReply,
			ParentID:    "p1",
			Message:     msg,
		})
	}
	return thread
}

func TestTopicDetails_EmptyContentSkipsGeneration(t *testing.T) {
	gen := &stubGenerator{}
	enricher := NewEnricher(gen, time.Second)

	details := enricher.TopicDetails(context.Background(), testThread("", "   ", "<br>"))

	if details.Title != "コミュニティでの交流" {
		t.Errorf("Title = %q, want the empty-content fallback", details.Title)
	}
	if details.Summary != "メンバー間で活発なやり取りがありました。" {
		t.Errorf("Summary = %q, want the empty-content fallback", details.Summary)
	}
	if len(gen.prompts) != 0 {
		t.Errorf("generator was called %d times for empty content, want 0", len(gen.prompts))
	}
}

func TestTopicDetails_GenerationFailureUsesFallbacks(t *testing.T) {
	gen := &stubGenerator{
		answer: func(string) (string, error) {
			return "", fmt.Errorf("model unavailable")
		},
	}
	enricher := NewEnricher(gen, time.Second)

	thread := testThread("盛り上がった話題です", "返信1", "返信2", "返信3")
	thread.TotalReactionCount = 6

	details := enricher.TopicDetails(context.Background(), thread)

	if details.Title != "注目のトピック" {
		t.Errorf("Title = %q, want the generation fallback", details.Title)
	}
	want := "合計9件のエンゲージメントがあり、大変盛り上がりました。"
	if details.Summary != want {
		t.Errorf("Summary = %q, want %q", details.Summary, want)
	}
}

func TestTopicDetails_IssuesBothPrompts(t *testing.T) {
	gen := &stubGenerator{}
	enricher := NewEnricher(gen, time.Second)

	enricher.TopicDetails(context.Background(), testThread("親の投稿", "返信"))

	if len(gen.prompts) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(gen.prompts))
	}
	var hasTitle, hasSummary bool
	for _, prompt := range gen.prompts {
		if strings.Contains(prompt, "コピーライター") {
			hasTitle = true
		}
		if strings.Contains(prompt, "コミュニティマネージャー") {
			hasSummary = true
		}
		if !strings.Contains(prompt, "親の投稿") {
			t.Errorf("prompt should contain the sanitized thread content: %q", prompt)
		}
	}
	if !hasTitle || !hasSummary {
		t.Errorf("expected one title and one summary prompt, got %v", gen.prompts)
	}
}

func TestTopicDetails_SummaryPromptCarriesEngagementCounts(t *testing.T) {
	gen := &stubGenerator{}
	enricher := NewEnricher(gen, time.Second)

	thread := testThread("話題", "a", "b")
	thread.TotalReactionCount = 7

	enricher.TopicDetails(context.Background(), thread)

	found := false
	for _, prompt := range gen.prompts {
		if strings.Contains(prompt, "7件のリアクション") && strings.Contains(prompt, "2件の返信") {
			found = true
		}
	}
	if !found {
		t.Errorf("summary prompt should carry reaction and reply counts, got %v", gen.prompts)
	}
}

func TestTopicDetails_StripsQuotesFromTitle(t *testing.T) {
	gen := &stubGenerator{
		answer: func(prompt string) (string, error) {
			if strings.Contains(prompt, "コピーライター") {
				return "「週末の過ごし方について語り合い」\n", nil
			}
			return "要約です。", nil
		},
	}
	enricher := NewEnricher(gen, time.Second)

	details := enricher.TopicDetails(context.Background(), testThread("話題"))

	if details.Title != "週末の過ごし方について語り合い" {
		t.Errorf("Title = %q, want quotes stripped", details.Title)
	}
	if details.Summary != "要約です。" {
		t.Errorf("Summary = %q, want the generated summary", details.Summary)
	}
}

func TestTopicDetails_SanitizesMessagesBeforePrompting(t *testing.T) {
	gen := &stubGenerator{}
	enricher := NewEnricher(gen, time.Second)

	enricher.TopicDetails(context.Background(), testThread("<b>大事な話</b> &amp; 続き"))

	for _, prompt := range gen.prompts {
		if strings.Contains(prompt, "<b>") {
			t.Errorf("prompt should not contain markup: %q", prompt)
		}
		if !strings.Contains(prompt, "大事な話 & 続き") {
			t.Errorf("prompt should contain the sanitized message, got %q", prompt)
		}
	}
}

func TestNewEnricher_DefaultsTimeout(t *testing.T) {
	enricher := NewEnricher(&stubGenerator{}, 0)
	if enricher.timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s default", enricher.timeout)
	}
}
