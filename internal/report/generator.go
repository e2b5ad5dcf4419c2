package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shuho/internal/core"
	"shuho/internal/logger"
	"shuho/internal/summarize"
	"shuho/internal/threads"
)

// DefaultTopicLimit is the number of ranked topics per area.
const DefaultTopicLimit = 3

// Enricher supplies the generated title/summary pair for a thread.
// summarize.Enricher satisfies it; tests substitute doubles.
type Enricher interface {
	TopicDetails(ctx context.Context, thread core.Thread) summarize.TopicDetails
}

// Generator produces the weekly report text for an analyzed export.
type Generator struct {
	enricher Enricher
	limit    int
}

// NewGenerator creates a report generator. A non-positive limit falls back
// to DefaultTopicLimit.
func NewGenerator(enricher Enricher, limit int) *Generator {
	if limit <= 0 {
		limit = DefaultTopicLimit
	}
	return &Generator{enricher: enricher, limit: limit}
}

// DefaultWindow derives the default report window from an export: the last
// seven days ending at the newest post, clamped to the oldest post.
func DefaultWindow(result *core.AnalysisResult) (time.Time, time.Time) {
	end := result.DateRange.Max
	start := end.AddDate(0, 0, -6)
	if start.Before(result.DateRange.Min) {
		start = result.DateRange.Min
	}
	return start, end
}

// Generate filters threads to the report window, ranks the top topics per
// area, enriches them concurrently and renders the final report text.
func (g *Generator) Generate(ctx context.Context, result *core.AnalysisResult, startDate, endDate time.Time) (string, error) {
	if result == nil {
		return "", fmt.Errorf("no analysis result to report on")
	}

	start, end := threads.Window(startDate, endDate)
	filtered := threads.FilterByDateRange(result.Threads, start, end)
	general := threads.TopByEngagement(filtered, core.AreaGeneral, g.limit)
	paid := threads.TopByEngagement(filtered, core.AreaPaid, g.limit)

	log := logger.Get()
	log.Info().
		Int("threads_in_window", len(filtered)).
		Int("general_topics", len(general)).
		Int("paid_topics", len(paid)).
		Msg("generating weekly report")

	// Enrichment fan-out: every topic across both areas runs concurrently.
	// Each goroutine writes its own slice slot, so no locking is needed.
	generalTopics := make([]core.ReportTopic, len(general))
	paidTopics := make([]core.ReportTopic, len(paid))

	var wg sync.WaitGroup
	for i, thread := range general {
		wg.Add(1)
		go func(rank int, t core.Thread) {
			defer wg.Done()
			generalTopics[rank] = g.buildTopic(ctx, rank, t)
		}(i, thread)
	}
	for i, thread := range paid {
		wg.Add(1)
		go func(rank int, t core.Thread) {
			defer wg.Done()
			paidTopics[rank] = g.buildTopic(ctx, rank, t)
		}(i, thread)
	}
	wg.Wait()

	return Render(result.ServerName, start, end, generalTopics, paidTopics), nil
}

// buildTopic enriches one thread into a report topic.
func (g *Generator) buildTopic(ctx context.Context, rank int, thread core.Thread) core.ReportTopic {
	details := g.enricher.TopicDetails(ctx, thread)
	return core.ReportTopic{
		Rank:        rank,
		ChannelName: thread.Parent.ChannelName,
		Title:       details.Title,
		Summary:     details.Summary,
		URL:         thread.Parent.CommentURL,
	}
}
