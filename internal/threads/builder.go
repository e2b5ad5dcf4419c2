package threads

import (
	"sort"

	"shuho/internal/core"
	"shuho/internal/logger"
)

// Build groups validated posts into threads.
//
// Roots are created from parent posts in input order. Replies are matched
// against root post IDs only; a reply whose parent_id matches no root is
// dropped without error, since partial exports are common. Replies are
// sorted chronologically (stable on ties) and the engagement score is fixed
// at build time.
func Build(posts []core.Post) []core.Thread {
	threads := make([]core.Thread, 0)
	index := make(map[string]int) // root post ID -> position in threads

	// First pass: create threads from parent posts
	for _, post := range posts {
		if post.MessageType != core.MessageTypeParent {
			continue
		}
		index[post.ID] = len(threads)
		threads = append(threads, core.Thread{
			Parent:             post,
			Replies:            []core.Post{},
			TotalReactionCount: post.Reactions,
			Area:               classifyArea(post),
		})
	}

	// Second pass: attach replies to their threads
	dropped := 0
	for _, post := range posts {
		if post.MessageType != core.MessageTypeReply || post.ParentID == "" {
			continue
		}
		i, ok := index[post.ParentID]
		if !ok {
			dropped++
			continue
		}
		threads[i].Replies = append(threads[i].Replies, post)
		threads[i].TotalReactionCount += post.Reactions
	}
	if dropped > 0 {
		log := logger.Get()
		log.Debug().Int("count", dropped).Msg("dropped replies with no matching root post")
	}

	// Final pass: order replies and fix the engagement score
	for i := range threads {
		replies := threads[i].Replies
		sort.SliceStable(replies, func(a, b int) bool {
			return replies[a].Date.Before(replies[b].Date)
		})
		threads[i].EngagementScore = threads[i].TotalReactionCount + len(replies)
	}

	return threads
}

// classifyArea assigns a thread to the paid area when its root was posted by
// a paying member or in a restricted channel.
func classifyArea(root core.Post) string {
	if root.UserType == core.UserTypePaid || root.ChannelType == core.ChannelTypeRestricted {
		return core.AreaPaid
	}
	return core.AreaGeneral
}
