package services

import (
	"sort"
	"strconv"
	"time"

	"chatkit/internal/domain/message"

	"github.com/samber/lo"
)

// GroupedReaction summarizes every reaction sharing one emoji on a message
// into a single display unit.
type GroupedReaction struct {
	Emoji               string
	Count               int
	ContainsCurrentUser bool
	LatestDate          time.Time
	IsSending           bool
	HasError            bool
}

// PreparedReactions is the display-ready summary of a message's reaction
// list: the visible groups plus, when the group count exceeds the cap, one
// overflow bubble collapsing the remainder.
type PreparedReactions struct {
	Groups                      []GroupedReaction
	NeedsOverflowBubble         bool
	OverflowContainsCurrentUser bool
	OverflowCount               int
}

// fallbackEmojiKey collapses all emoji-less reactions into one group instead
// of letting each form a singleton.
const fallbackEmojiKey = "?"

// PrepareReactions aggregates a message's flat reaction list for display.
// Pure and non-blocking: it runs on every render pass.
//
// Groups order by most recent reaction first. Ties keep the order the emoji
// was first encountered in the reaction list, so repeated calls on the same
// input are stable. For messages authored by the current user the visible
// order is reversed after overflow is computed, so the newest group renders
// against the bubble's trailing edge; overflow itself is always computed on
// recency order.
func PrepareReactions(msg message.Message, maxVisible int) PreparedReactions {
	// An overflow indicator only makes sense with at least one real
	// reaction slot next to it.
	if maxVisible <= 1 || len(msg.Reactions) == 0 {
		return PreparedReactions{}
	}

	// Group by emoji, remembering first-encountered order. Sorting below is
	// stable, so map iteration order never leaks into the result.
	byEmoji := make(map[string][]message.Reaction)
	var order []string
	for _, r := range msg.Reactions {
		key := r.Emoji
		if key == "" {
			key = fallbackEmojiKey
		}
		if _, ok := byEmoji[key]; !ok {
			order = append(order, key)
		}
		byEmoji[key] = append(byEmoji[key], r)
	}

	groups := lo.Map(order, func(emoji string, _ int) GroupedReaction {
		members := byEmoji[emoji]
		latest := lo.MaxBy(members, func(a, b message.Reaction) bool {
			return a.CreatedAt.After(b.CreatedAt)
		})
		return GroupedReaction{
			Emoji: emoji,
			Count: len(members),
			ContainsCurrentUser: lo.SomeBy(members, func(r message.Reaction) bool {
				return r.User.IsCurrentUser
			}),
			LatestDate: latest.CreatedAt,
			IsSending: lo.SomeBy(members, func(r message.Reaction) bool {
				return r.Status != nil && r.Status.Kind() == message.StatusSending
			}),
			HasError: lo.SomeBy(members, func(r message.Reaction) bool {
				return r.Status != nil && r.Status.Kind() == message.StatusError
			}),
		}
	})

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].LatestDate.After(groups[j].LatestDate)
	})

	prepared := PreparedReactions{Groups: groups}
	if len(groups) > maxVisible {
		overflow := groups[maxVisible-1:]
		prepared.NeedsOverflowBubble = true
		prepared.OverflowCount = lo.SumBy(overflow, func(g GroupedReaction) int {
			return g.Count
		})
		prepared.OverflowContainsCurrentUser = lo.SomeBy(overflow, func(g GroupedReaction) bool {
			return g.ContainsCurrentUser
		})
		prepared.Groups = groups[:maxVisible-1]
	}

	if msg.User.IsCurrentUser {
		prepared.Groups = lo.Reverse(prepared.Groups)
	}
	return prepared
}

// OverflowBubbleText is the label of the overflow bubble, e.g. "+4".
func (p PreparedReactions) OverflowBubbleText() string {
	return "+" + strconv.Itoa(p.OverflowCount)
}
