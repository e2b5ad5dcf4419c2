package core

import "time"

// Message types as exported in the CSV.
const (
	MessageTypeParent = "parent"
	MessageTypeReply  = "reply"
)

// Normalized user tiers. The export uses 有料/無料; the ingest layer maps
// them to these values.
const (
	UserTypePaid = "paid"
	UserTypeFree = "free"
)

// Normalized channel tiers. The export uses 限定/一般.
const (
	ChannelTypeRestricted = "restricted"
	ChannelTypeGeneral    = "general"
)

// Report areas a thread is classified into.
const (
	AreaGeneral = "general"
	AreaPaid    = "paid"
)

// RequiredColumns are the CSV columns every export must carry.
// premium_badges may also be present but is not required.
var RequiredColumns = []string{
	"poster_name",
	"post_datetime",
	"channel_name",
	"reaction_count",
	"reply_count",
	"parent_id",
	"message_type",
	"user_type",
	"channel_type",
	"message",
	"comment_url",
	"server_name",
}

// RawPost is one CSV row as read, before any validation or coercion.
type RawPost struct {
	PosterName    string `json:"poster_name"`    // Display name of the poster
	PostDatetime  string `json:"post_datetime"`  // Raw timestamp string ("YYYY/M/D, HH:mm")
	ChannelName   string `json:"channel_name"`   // Channel the post was made in
	ReactionCount string `json:"reaction_count"` // Raw reaction count, coerced later
	ReplyCount    string `json:"reply_count"`    // Raw reply count, coerced later
	ParentID      string `json:"parent_id"`      // Identifier of the root post for replies
	MessageType   string `json:"message_type"`   // "parent" or "reply"
	UserType      string `json:"user_type"`      // Payer tier of the poster
	ChannelType   string `json:"channel_type"`   // Tier of the channel
	Message       string `json:"message"`        // Free-text message body (may contain markup)
	CommentURL    string `json:"comment_url"`    // Permalink to the post
	ServerName    string `json:"server_name"`    // Community/server name
}

// Post is a validated post. Immutable once created by the ingest layer.
type Post struct {
	ID          string    `json:"id"`           // Synthesized unique identifier (comment_url + "-" + row index)
	PosterName  string    `json:"poster_name"`  // Display name of the poster
	Date        time.Time `json:"date"`         // Parsed post timestamp
	ChannelName string    `json:"channel_name"` // Channel the post was made in
	Reactions   int       `json:"reactions"`    // Reaction count (0 when the raw value is non-numeric)
	ReplyCount  int       `json:"reply_count"`  // Reply count (0 when the raw value is non-numeric)
	ParentID    string    `json:"parent_id"`    // Identifier of the root post for replies
	MessageType string    `json:"message_type"` // "parent" or "reply"
	UserType    string    `json:"user_type"`    // Normalized payer tier ("paid" or "free")
	ChannelType string    `json:"channel_type"` // Normalized channel tier ("restricted" or "general")
	Message     string    `json:"message"`      // Free-text message body (may contain markup)
	CommentURL  string    `json:"comment_url"`  // Permalink to the post
	ServerName  string    `json:"server_name"`  // Community/server name
}

// Thread is a root post plus its attached replies, the unit of ranking.
type Thread struct {
	Parent             Post   `json:"parent"`               // The root post (message_type "parent")
	Replies            []Post `json:"replies"`              // Replies in chronological order
	TotalReactionCount int    `json:"total_reaction_count"` // Root reactions plus all reply reactions
	EngagementScore    int    `json:"engagement_score"`     // TotalReactionCount + len(Replies)
	Area               string `json:"area"`                 // "paid" or "general"
}

// DateRange is the span covered by an analyzed export.
type DateRange struct {
	Min time.Time `json:"min"` // Earliest post timestamp
	Max time.Time `json:"max"` // Latest post timestamp
}

// Stats holds summary statistics over all posts in an export.
type Stats struct {
	PostCount    int `json:"post_count"`    // Total number of posts
	UserCount    int `json:"user_count"`    // Number of distinct posters
	ChannelCount int `json:"channel_count"` // Number of distinct channels
}

// AnalysisResult is the full output of ingesting one CSV export.
type AnalysisResult struct {
	ID         string    `json:"id"`          // Unique identifier for this analysis run
	Threads    []Thread  `json:"threads"`     // All reconstructed threads
	ServerName string    `json:"server_name"` // Community name, taken from the first row
	DateRange  DateRange `json:"date_range"`  // Min/max timestamp across all posts
	Stats      Stats     `json:"stats"`       // Summary statistics
}

// ReportTopic is one ranked entry in a generated weekly report.
type ReportTopic struct {
	Rank        int    `json:"rank"`         // 0-based rank within its area
	ChannelName string `json:"channel_name"` // Channel of the thread's root post
	Title       string `json:"title"`        // Generated topic title
	Summary     string `json:"summary"`      // Generated topic summary
	URL         string `json:"url"`          // Permalink to the thread's root post
}
