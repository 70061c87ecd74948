package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrace/attendance-engine-go/internal/domain/attendance"
	"github.com/teamtrace/attendance-engine-go/internal/pkg/validator"
)

func strPtr(s string) *string {
	return &s
}

func newTestPayloadValidator() *PayloadValidator {
	return NewPayloadValidator(NewNormalizer(time.UTC))
}

func TestBuildValidatedPayload_Valid(t *testing.T) {
	v := newTestPayloadValidator()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	raw := attendance.RawLog{
		Sessions: []attendance.RawSession{
			{StartTime: strPtr("09:00"), EndTime: strPtr("17:00")},
		},
		Breaks: []attendance.RawBreak{
			{StartTime: strPtr("12:00"), EndTime: strPtr("13:00"), BreakType: strPtr("Paid")},
		},
		Notes: "  worked on release  ",
	}

	payload, err := v.BuildValidatedPayload(date, raw)

	require.NoError(t, err)
	require.Len(t, payload.Sessions, 1)
	require.Len(t, payload.Breaks, 1)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), payload.Sessions[0].StartTime)
	require.NotNil(t, payload.Sessions[0].EndTime)
	assert.Equal(t, time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC), *payload.Sessions[0].EndTime)
	assert.Equal(t, attendance.BreakTypePaid, payload.Breaks[0].BreakType)
	assert.Equal(t, "worked on release", payload.Notes)
}

func TestBuildValidatedPayload_OvernightSessionRollsOver(t *testing.T) {
	v := newTestPayloadValidator()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	raw := attendance.RawLog{
		Sessions: []attendance.RawSession{
			{StartTime: strPtr("22:00"), EndTime: strPtr("06:00")},
		},
	}

	payload, err := v.BuildValidatedPayload(date, raw)

	require.NoError(t, err)
	require.Len(t, payload.Sessions, 1)
	require.NotNil(t, payload.Sessions[0].EndTime)
	assert.Equal(t, time.Date(2025, 6, 3, 6, 0, 0, 0, time.UTC), *payload.Sessions[0].EndTime)
}

func TestBuildValidatedPayload_RejectsSpanOverSixteenHours(t *testing.T) {
	v := newTestPayloadValidator()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	// 22:00 -> 15:00 next day is 17 hours after rollover.
	raw := attendance.RawLog{
		Sessions: []attendance.RawSession{
			{StartTime: strPtr("22:00"), EndTime: strPtr("15:00")},
		},
	}

	_, err := v.BuildValidatedPayload(date, raw)

	require.Error(t, err)
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	require.Len(t, errs, 1)
	assert.Equal(t, "sessions[1]", errs[0].Field)
	assert.Contains(t, errs[0].Message, "16 hour maximum")
}

func TestBuildValidatedPayload_OpenSessionAllowed(t *testing.T) {
	v := newTestPayloadValidator()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	raw := attendance.RawLog{
		Sessions: []attendance.RawSession{
			{StartTime: strPtr("09:00")},
		},
	}

	payload, err := v.BuildValidatedPayload(date, raw)

	require.NoError(t, err)
	require.Len(t, payload.Sessions, 1)
	assert.Nil(t, payload.Sessions[0].EndTime)
}

func TestBuildValidatedPayload_BreakRequiresEnd(t *testing.T) {
	v := newTestPayloadValidator()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	raw := attendance.RawLog{
		Breaks: []attendance.RawBreak{
			{StartTime: strPtr("12:00")},
		},
	}

	_, err := v.BuildValidatedPayload(date, raw)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	require.Len(t, errs, 1)
	assert.Equal(t, "break 1: end_time is required", errs[0].Message)
}

func TestBuildValidatedPayload_BreakTypeFallsBackToLegacyField(t *testing.T) {
	v := newTestPayloadValidator()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	raw := attendance.RawLog{
		Breaks: []attendance.RawBreak{
			{StartTime: strPtr("12:00"), EndTime: strPtr("12:30"), Type: strPtr("extra")},
			{StartTime: strPtr("15:00"), EndTime: strPtr("15:15")},
		},
	}

	payload, err := v.BuildValidatedPayload(date, raw)

	require.NoError(t, err)
	require.Len(t, payload.Breaks, 2)
	assert.Equal(t, attendance.BreakTypeExtra, payload.Breaks[0].BreakType)
	assert.Equal(t, attendance.BreakTypeUnpaid, payload.Breaks[1].BreakType)
}

func TestBuildValidatedPayload_UnknownBreakTypeRejected(t *testing.T) {
	v := newTestPayloadValidator()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	raw := attendance.RawLog{
		Breaks: []attendance.RawBreak{
			{StartTime: strPtr("12:00"), EndTime: strPtr("12:30"), BreakType: strPtr("Lunch")},
		},
	}

	_, err := v.BuildValidatedPayload(date, raw)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, `break_type "Lunch" must be one of: Paid, Unpaid, Extra`)
}

func TestBuildValidatedPayload_CollectsAllRowErrors(t *testing.T) {
	v := newTestPayloadValidator()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	raw := attendance.RawLog{
		Sessions: []attendance.RawSession{
			{},                                                  // missing start
			{StartTime: strPtr("09:00"), EndTime: strPtr("17:00")}, // valid
			{StartTime: strPtr("bogus"), EndTime: strPtr("17:00")}, // bad start
		},
		Breaks: []attendance.RawBreak{
			{StartTime: strPtr("12:00"), EndTime: strPtr("12:00")}, // zero duration
		},
	}

	_, err := v.BuildValidatedPayload(date, raw)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	require.Len(t, errs, 3)
	assert.Equal(t, "session 1: start_time is required", errs[0].Message)
	assert.Equal(t, `session 3: start_time "bogus" is not a valid time`, errs[1].Message)
	assert.Equal(t, "break 1: end_time must be after start_time", errs[2].Message)
}

func TestBuildValidatedPayload_ErrorsCarrySentinels(t *testing.T) {
	v := newTestPayloadValidator()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  attendance.RawLog
		want error
	}{
		{
			name: "missing field",
			raw:  attendance.RawLog{Sessions: []attendance.RawSession{{}}},
			want: attendance.ErrMissingField,
		},
		{
			name: "invalid time",
			raw:  attendance.RawLog{Sessions: []attendance.RawSession{{StartTime: strPtr("bogus")}}},
			want: attendance.ErrInvalidTime,
		},
		{
			name: "non-positive duration",
			raw: attendance.RawLog{Breaks: []attendance.RawBreak{
				{StartTime: strPtr("12:00"), EndTime: strPtr("12:00")},
			}},
			want: attendance.ErrNonPositiveDuration,
		},
		{
			name: "duration over maximum",
			raw: attendance.RawLog{Sessions: []attendance.RawSession{
				{StartTime: strPtr("22:00"), EndTime: strPtr("15:00")},
			}},
			want: attendance.ErrDurationExceedsMax,
		},
		{
			name: "invalid break type",
			raw: attendance.RawLog{Breaks: []attendance.RawBreak{
				{StartTime: strPtr("12:00"), EndTime: strPtr("12:30"), BreakType: strPtr("Lunch")},
			}},
			want: attendance.ErrInvalidBreakType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.BuildValidatedPayload(date, tt.raw)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestBuildValidatedPayload_Idempotent(t *testing.T) {
	v := newTestPayloadValidator()
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	raw := attendance.RawLog{
		Sessions: []attendance.RawSession{
			{StartTime: strPtr("22:00"), EndTime: strPtr("06:00")},
		},
	}

	first, err := v.BuildValidatedPayload(date, raw)
	require.NoError(t, err)

	// Feed the normalized session back as full timestamps; nothing may shift.
	roundTrip := attendance.RawLog{
		Sessions: []attendance.RawSession{
			{
				StartTime: strPtr(first.Sessions[0].StartTime.Format(time.RFC3339)),
				EndTime:   strPtr(first.Sessions[0].EndTime.Format(time.RFC3339)),
			},
		},
	}

	second, err := v.BuildValidatedPayload(date, roundTrip)
	require.NoError(t, err)
	assert.True(t, first.Sessions[0].StartTime.Equal(second.Sessions[0].StartTime))
	assert.True(t, first.Sessions[0].EndTime.Equal(*second.Sessions[0].EndTime))
}
