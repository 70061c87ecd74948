package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrace/attendance-engine-go/internal/domain/attendance"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestReconcile_SplitsSessionAtBreak(t *testing.T) {
	sessions := []attendance.Session{
		{StartTime: at(9, 0), EndTime: timePtr(at(17, 0))},
	}
	breaks := []attendance.BreakEntry{
		{StartTime: at(12, 0), EndTime: at(13, 0), BreakType: attendance.BreakTypeUnpaid},
	}

	blocks := Reconcile(sessions, breaks)

	require.Len(t, blocks, 3)

	assert.Equal(t, attendance.BlockTypeSession, blocks[0].Type)
	assert.Equal(t, at(9, 0), blocks[0].StartTime)
	assert.Equal(t, at(12, 0), *blocks[0].EndTime)

	assert.Equal(t, attendance.BlockTypeBreak, blocks[1].Type)
	assert.Equal(t, at(12, 0), blocks[1].StartTime)
	assert.Equal(t, at(13, 0), *blocks[1].EndTime)
	assert.Equal(t, attendance.BreakTypeUnpaid, blocks[1].BreakType)

	assert.Equal(t, attendance.BlockTypeSession, blocks[2].Type)
	assert.Equal(t, at(13, 0), blocks[2].StartTime)
	assert.Equal(t, at(17, 0), *blocks[2].EndTime)
}

func TestReconcile_NoBreaksPassesSessionsThrough(t *testing.T) {
	sessions := []attendance.Session{
		{StartTime: at(9, 0), EndTime: timePtr(at(12, 0))},
		{StartTime: at(13, 0), EndTime: timePtr(at(17, 0))},
	}

	blocks := Reconcile(sessions, nil)

	require.Len(t, blocks, 2)
	assert.Equal(t, at(9, 0), blocks[0].StartTime)
	assert.Equal(t, at(13, 0), blocks[1].StartTime)
	for _, b := range blocks {
		assert.Equal(t, attendance.BlockTypeSession, b.Type)
	}
}

func TestReconcile_OrphanBreakAppended(t *testing.T) {
	sessions := []attendance.Session{
		{StartTime: at(9, 0), EndTime: timePtr(at(12, 0))},
	}
	breaks := []attendance.BreakEntry{
		// Entirely outside the session window.
		{StartTime: at(18, 0), EndTime: at(18, 30), BreakType: attendance.BreakTypeExtra},
	}

	blocks := Reconcile(sessions, breaks)

	require.Len(t, blocks, 2)
	assert.Equal(t, attendance.BlockTypeSession, blocks[0].Type)
	assert.Equal(t, attendance.BlockTypeBreak, blocks[1].Type)
	assert.Equal(t, at(18, 0), blocks[1].StartTime)
	assert.Equal(t, attendance.BreakTypeExtra, blocks[1].BreakType)
}

func TestReconcile_BreakStraddlingSessionEndIsOrphan(t *testing.T) {
	sessions := []attendance.Session{
		{StartTime: at(9, 0), EndTime: timePtr(at(12, 0))},
	}
	breaks := []attendance.BreakEntry{
		// Starts inside but ends past the session; not contained.
		{StartTime: at(11, 30), EndTime: at(12, 30), BreakType: attendance.BreakTypeUnpaid},
	}

	blocks := Reconcile(sessions, breaks)

	require.Len(t, blocks, 2)
	assert.Equal(t, attendance.BlockTypeSession, blocks[0].Type)
	assert.Equal(t, at(9, 0), blocks[0].StartTime)
	assert.Equal(t, at(12, 0), *blocks[0].EndTime)
	assert.Equal(t, attendance.BlockTypeBreak, blocks[1].Type)
}

func TestReconcile_OpenSessionWithBreak(t *testing.T) {
	sessions := []attendance.Session{
		{StartTime: at(9, 0)},
	}
	breaks := []attendance.BreakEntry{
		{StartTime: at(12, 0), EndTime: at(13, 0), BreakType: attendance.BreakTypeUnpaid},
	}

	blocks := Reconcile(sessions, breaks)

	require.Len(t, blocks, 3)
	assert.Equal(t, at(12, 0), *blocks[0].EndTime)
	assert.Equal(t, attendance.BlockTypeBreak, blocks[1].Type)
	// Work resumes open-ended after the break.
	assert.Equal(t, attendance.BlockTypeSession, blocks[2].Type)
	assert.Equal(t, at(13, 0), blocks[2].StartTime)
	assert.Nil(t, blocks[2].EndTime)
}

func TestReconcile_MultipleBreaksOrdered(t *testing.T) {
	sessions := []attendance.Session{
		{StartTime: at(9, 0), EndTime: timePtr(at(18, 0))},
	}
	breaks := []attendance.BreakEntry{
		// Deliberately out of order.
		{StartTime: at(15, 0), EndTime: at(15, 30), BreakType: attendance.BreakTypeExtra},
		{StartTime: at(12, 0), EndTime: at(13, 0), BreakType: attendance.BreakTypeUnpaid},
	}

	blocks := Reconcile(sessions, breaks)

	require.Len(t, blocks, 5)
	for i := 1; i < len(blocks); i++ {
		assert.False(t, blocks[i].StartTime.Before(blocks[i-1].StartTime), "blocks must be ordered by start time")
	}
	// No two blocks overlap.
	for i := 1; i < len(blocks); i++ {
		prev := blocks[i-1]
		if prev.EndTime != nil {
			assert.False(t, blocks[i].StartTime.Before(*prev.EndTime), "blocks must not overlap")
		}
	}
}

func TestReconcile_NestedBreakAbsorbed(t *testing.T) {
	sessions := []attendance.Session{
		{StartTime: at(9, 0), EndTime: timePtr(at(17, 0))},
	}
	breaks := []attendance.BreakEntry{
		{StartTime: at(12, 0), EndTime: at(14, 0), BreakType: attendance.BreakTypeUnpaid},
		// Entirely inside the first break; contributes no block of its own.
		{StartTime: at(13, 0), EndTime: at(13, 30), BreakType: attendance.BreakTypePaid},
	}

	blocks := Reconcile(sessions, breaks)

	require.Len(t, blocks, 3)
	assert.Equal(t, attendance.BlockTypeSession, blocks[0].Type)
	assert.Equal(t, at(12, 0), *blocks[0].EndTime)
	assert.Equal(t, attendance.BlockTypeBreak, blocks[1].Type)
	assert.Equal(t, at(12, 0), blocks[1].StartTime)
	assert.Equal(t, at(14, 0), *blocks[1].EndTime)
	// Work resumes after the outer break, never inside it.
	assert.Equal(t, attendance.BlockTypeSession, blocks[2].Type)
	assert.Equal(t, at(14, 0), blocks[2].StartTime)
	assert.Equal(t, at(17, 0), *blocks[2].EndTime)

	assertBlocksDisjoint(t, blocks)
}

func TestReconcile_PartiallyOverlappingBreaksClipped(t *testing.T) {
	sessions := []attendance.Session{
		{StartTime: at(9, 0), EndTime: timePtr(at(17, 0))},
	}
	breaks := []attendance.BreakEntry{
		{StartTime: at(12, 0), EndTime: at(14, 0), BreakType: attendance.BreakTypeUnpaid},
		// Starts inside the first break, ends past it; only 14:00-15:00 is new.
		{StartTime: at(13, 30), EndTime: at(15, 0), BreakType: attendance.BreakTypeExtra},
	}

	blocks := Reconcile(sessions, breaks)

	require.Len(t, blocks, 4)
	assert.Equal(t, at(12, 0), blocks[1].StartTime)
	assert.Equal(t, at(14, 0), *blocks[1].EndTime)
	assert.Equal(t, attendance.BlockTypeBreak, blocks[2].Type)
	assert.Equal(t, at(14, 0), blocks[2].StartTime)
	assert.Equal(t, at(15, 0), *blocks[2].EndTime)
	assert.Equal(t, attendance.BreakTypeExtra, blocks[2].BreakType)
	assert.Equal(t, attendance.BlockTypeSession, blocks[3].Type)
	assert.Equal(t, at(15, 0), blocks[3].StartTime)

	assertBlocksDisjoint(t, blocks)
}

func assertBlocksDisjoint(t *testing.T, blocks []attendance.TimelineBlock) {
	t.Helper()
	for i := 1; i < len(blocks); i++ {
		prev := blocks[i-1]
		require.NotNil(t, prev.EndTime)
		assert.False(t, blocks[i].StartTime.Before(*prev.EndTime),
			"block %d starts %s before block %d ends %s",
			i, blocks[i].StartTime.Format("15:04"), i-1, prev.EndTime.Format("15:04"))
	}
}

func TestReconcile_Empty(t *testing.T) {
	blocks := Reconcile(nil, nil)
	assert.Empty(t, blocks)
}
