package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrace/attendance-engine-go/internal/domain/attendance"
)

func TestApplySessionEdit_DoesNotMutateInput(t *testing.T) {
	log := attendance.RawLog{
		Sessions: []attendance.RawSession{
			{StartTime: strPtr("09:00"), EndTime: strPtr("17:00")},
		},
	}

	next, err := ApplySessionEdit(log, 0, FieldStartTime, "10:00")

	require.NoError(t, err)
	assert.Equal(t, "09:00", *log.Sessions[0].StartTime)
	assert.Equal(t, "10:00", *next.Sessions[0].StartTime)
}

func TestApplySessionEdit_EmptyEndTimeReopensSession(t *testing.T) {
	log := attendance.RawLog{
		Sessions: []attendance.RawSession{
			{StartTime: strPtr("09:00"), EndTime: strPtr("17:00")},
		},
	}

	next, err := ApplySessionEdit(log, 0, FieldEndTime, "")

	require.NoError(t, err)
	assert.Nil(t, next.Sessions[0].EndTime)
}

func TestApplySessionEdit_IndexOutOfRange(t *testing.T) {
	_, err := ApplySessionEdit(attendance.RawLog{}, 0, FieldStartTime, "09:00")
	assert.EqualError(t, err, "session index 0 out of range")
}

func TestApplySessionEdit_UnknownField(t *testing.T) {
	log := attendance.RawLog{Sessions: []attendance.RawSession{{}}}
	_, err := ApplySessionEdit(log, 0, "break_type", "Paid")
	assert.Error(t, err)
}

func TestApplyBreakEdit_BreakTypeClearsLegacyField(t *testing.T) {
	log := attendance.RawLog{
		Breaks: []attendance.RawBreak{
			{StartTime: strPtr("12:00"), EndTime: strPtr("13:00"), Type: strPtr("unpaid")},
		},
	}

	next, err := ApplyBreakEdit(log, 0, FieldBreakType, "Paid")

	require.NoError(t, err)
	assert.Equal(t, "Paid", *next.Breaks[0].BreakType)
	assert.Nil(t, next.Breaks[0].Type)
}

func TestAddAndRemoveRows(t *testing.T) {
	log := attendance.RawLog{}

	log = AddSession(log)
	log = AddSession(log)
	log = AddBreak(log)
	require.Len(t, log.Sessions, 2)
	require.Len(t, log.Breaks, 1)

	log, err := RemoveSession(log, 0)
	require.NoError(t, err)
	assert.Len(t, log.Sessions, 1)

	log, err = RemoveBreak(log, 0)
	require.NoError(t, err)
	assert.Empty(t, log.Breaks)

	_, err = RemoveBreak(log, 0)
	assert.Error(t, err)
}

func TestSetNotes(t *testing.T) {
	log := attendance.RawLog{Notes: "old"}

	next := SetNotes(log, "new")

	assert.Equal(t, "old", log.Notes)
	assert.Equal(t, "new", next.Notes)
}
