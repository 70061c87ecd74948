package attendance

import (
	"sort"

	"github.com/teamtrace/attendance-engine-go/internal/domain/attendance"
)

// Reconcile flattens a day's sessions and breaks into one ordered,
// non-overlapping sequence of typed blocks: each session is split at the
// boundaries of the breaks it fully contains, breaks outside every session
// are appended as-is, and the result is stably sorted by start time.
//
// A 9:00-17:00 session with a 12:00-13:00 break inside it becomes three
// blocks: work 9:00-12:00, break 12:00-13:00, work 13:00-17:00.
func Reconcile(sessions []attendance.Session, breaks []attendance.BreakEntry) []attendance.TimelineBlock {
	blocks := make([]attendance.TimelineBlock, 0, len(sessions)+2*len(breaks))
	contained := make([]bool, len(breaks))

	for _, session := range sessions {
		blocks = append(blocks, splitSession(session, breaks, contained)...)
	}

	// Orphan breaks: logged without a matching session, kept unmodified.
	for i, br := range breaks {
		if contained[i] {
			continue
		}
		end := br.EndTime
		blocks = append(blocks, attendance.TimelineBlock{
			Type:      attendance.BlockTypeBreak,
			StartTime: br.StartTime,
			EndTime:   &end,
			BreakType: br.BreakType,
		})
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].StartTime.Before(blocks[j].StartTime)
	})

	return blocks
}

// splitSession emits the session's work sub-blocks interleaved with the
// breaks that fall entirely inside its window, marking those breaks used.
func splitSession(session attendance.Session, breaks []attendance.BreakEntry, containedMark []bool) []attendance.TimelineBlock {
	var selected []int
	for i, br := range breaks {
		if br.StartTime.Before(session.StartTime) {
			continue
		}
		if session.EndTime != nil && br.EndTime.After(*session.EndTime) {
			continue
		}
		selected = append(selected, i)
		containedMark[i] = true
	}

	if len(selected) == 0 {
		return []attendance.TimelineBlock{{
			Type:      attendance.BlockTypeSession,
			StartTime: session.StartTime,
			EndTime:   session.EndTime,
		}}
	}

	sort.SliceStable(selected, func(a, b int) bool {
		return breaks[selected[a]].StartTime.Before(breaks[selected[b]].StartTime)
	})

	blocks := make([]attendance.TimelineBlock, 0, 2*len(selected)+1)
	cursor := session.StartTime

	for _, idx := range selected {
		br := breaks[idx]

		// Overlapping breaks: anything already covered by an earlier break is
		// absorbed, only the uncovered remainder becomes a block. The cursor
		// never moves backward, so work can't reopen inside a break.
		if !br.EndTime.After(cursor) {
			continue
		}
		start := br.StartTime
		if start.Before(cursor) {
			start = cursor
		}

		if cursor.Before(start) {
			boundary := start
			blocks = append(blocks, attendance.TimelineBlock{
				Type:      attendance.BlockTypeSession,
				StartTime: cursor,
				EndTime:   &boundary,
			})
		}
		end := br.EndTime
		blocks = append(blocks, attendance.TimelineBlock{
			Type:      attendance.BlockTypeBreak,
			StartTime: start,
			EndTime:   &end,
			BreakType: br.BreakType,
		})
		cursor = br.EndTime
	}

	if session.EndTime != nil {
		if cursor.Before(*session.EndTime) {
			blocks = append(blocks, attendance.TimelineBlock{
				Type:      attendance.BlockTypeSession,
				StartTime: cursor,
				EndTime:   session.EndTime,
			})
		}
	} else if cursor.After(session.StartTime) {
		// Open session: the remaining time past the last break stays open.
		blocks = append(blocks, attendance.TimelineBlock{
			Type:      attendance.BlockTypeSession,
			StartTime: cursor,
		})
	}

	return blocks
}
