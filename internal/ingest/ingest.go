package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"shuho/internal/core"
	"shuho/internal/logger"
	"shuho/internal/threads"
)

// MaxFileSize is the largest CSV export accepted, in bytes.
const MaxFileSize = 10 * 1024 * 1024

// dateLayout matches the export's post_datetime format, e.g. "2025/7/8, 13:15".
const dateLayout = "2006/1/2, 15:04"

// defaultServerName is used when the export carries no server name.
const defaultServerName = "コミュニティ"

// ParseFile reads a CSV export from disk and returns the full analysis.
// Files larger than MaxFileSize are rejected before parsing.
func ParseFile(path string) (*core.AnalysisResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input file %s: %w", path, err)
	}
	if info.Size() > MaxFileSize {
		return nil, &SizeLimitError{Size: info.Size()}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a CSV export and returns the full analysis: validated posts
// grouped into threads, community name, date range and summary statistics.
// All ingestion errors are terminal; no partial result is returned.
func Parse(r io.Reader) (*core.AnalysisResult, error) {
	raws, err := readRows(r)
	if err != nil {
		return nil, err
	}
	return analyze(raws)
}

// readRows parses the raw CSV into RawPost records, validating the header.
func readRows(r io.Reader) ([]core.RawPost, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &RowError{}
	}
	if err != nil {
		return nil, &MalformedFileError{Reason: err.Error()}
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, col := range core.RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	field := func(rec []string, col string) string {
		return rec[index[col]]
	}

	var raws []core.RawPost
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &MalformedFileError{Reason: err.Error()}
		}

		raws = append(raws, core.RawPost{
			PosterName:    field(rec, "poster_name"),
			PostDatetime:  field(rec, "post_datetime"),
			ChannelName:   field(rec, "channel_name"),
			ReactionCount: field(rec, "reaction_count"),
			ReplyCount:    field(rec, "reply_count"),
			ParentID:      field(rec, "parent_id"),
			MessageType:   field(rec, "message_type"),
			UserType:      field(rec, "user_type"),
			ChannelType:   field(rec, "channel_type"),
			Message:       field(rec, "message"),
			CommentURL:    field(rec, "comment_url"),
			ServerName:    field(rec, "server_name"),
		})
	}

	return raws, nil
}

// analyze validates every row, builds threads and assembles the result.
func analyze(raws []core.RawPost) (*core.AnalysisResult, error) {
	if len(raws) == 0 {
		return nil, &RowError{}
	}

	serverName := raws[0].ServerName
	if serverName == "" {
		serverName = defaultServerName
	}

	users := make(map[string]struct{})
	channels := make(map[string]struct{})
	var minDate, maxDate time.Time

	posts := make([]core.Post, 0, len(raws))
	for i, raw := range raws {
		date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(raw.PostDatetime), time.Local)
		if err != nil {
			return nil, &RowError{Line: i + 2, Value: raw.PostDatetime}
		}
		if minDate.IsZero() || date.Before(minDate) {
			minDate = date
		}
		if maxDate.IsZero() || date.After(maxDate) {
			maxDate = date
		}
		users[raw.PosterName] = struct{}{}
		channels[raw.ChannelName] = struct{}{}

		posts = append(posts, core.Post{
			ID:          raw.CommentURL + "-" + strconv.Itoa(i),
			PosterName:  raw.PosterName,
			Date:        date,
			ChannelName: raw.ChannelName,
			Reactions:   atoiOrZero(raw.ReactionCount),
			ReplyCount:  atoiOrZero(raw.ReplyCount),
			ParentID:    raw.ParentID,
			MessageType: raw.MessageType,
			UserType:    normalizeUserType(raw.UserType),
			ChannelType: normalizeChannelType(raw.ChannelType),
			Message:     raw.Message,
			CommentURL:  raw.CommentURL,
			ServerName:  raw.ServerName,
		})
	}

	built := threads.Build(posts)

	log := logger.Get()
	log.Debug().
		Int("posts", len(posts)).
		Int("threads", len(built)).
		Str("server", serverName).
		Msg("analyzed CSV export")

	return &core.AnalysisResult{
		ID:         uuid.NewString(),
		Threads:    built,
		ServerName: serverName,
		DateRange:  core.DateRange{Min: minDate, Max: maxDate},
		Stats: core.Stats{
			PostCount:    len(posts),
			UserCount:    len(users),
			ChannelCount: len(channels),
		},
	}, nil
}

// atoiOrZero coerces a numeric field, defaulting to 0 on bad input.
// Reaction and reply counts are best-effort secondary fields.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// normalizeUserType maps the export's Japanese payer tiers to canonical values.
func normalizeUserType(s string) string {
	switch strings.TrimSpace(s) {
	case "有料", core.UserTypePaid:
		return core.UserTypePaid
	default:
		return core.UserTypeFree
	}
}

// normalizeChannelType maps the export's Japanese channel tiers to canonical values.
func normalizeChannelType(s string) string {
	switch strings.TrimSpace(s) {
	case "限定", core.ChannelTypeRestricted:
		return core.ChannelTypeRestricted
	default:
		return core.ChannelTypeGeneral
	}
}
