package operatinghours

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/reverse-logistics/internal/httperr"
)

func TestNewTimeSlot(t *testing.T) {
	tests := []struct {
		name    string
		open    string
		close   string
		wantErr error
	}{
		{name: "valid", open: "08:00", close: "18:00"},
		{name: "last minute of day", open: "00:00", close: "23:59"},
		{name: "hour out of range", open: "25:00", close: "10:00", wantErr: ErrInvalidFormat},
		{name: "minute out of range", open: "08:60", close: "10:00", wantErr: ErrInvalidFormat},
		{name: "not zero padded", open: "8:00", close: "10:00", wantErr: ErrInvalidFormat},
		{name: "bad close", open: "08:00", close: "24:00", wantErr: ErrInvalidFormat},
		{name: "with seconds", open: "08:00:00", close: "10:00", wantErr: ErrInvalidFormat},
		{name: "close before open", open: "10:00", close: "09:00", wantErr: ErrInvalidOrder},
		{name: "equal", open: "09:00", close: "09:00", wantErr: ErrInvalidOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := NewTimeSlot(tt.open, tt.close)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.open, slot.Open())
			assert.Equal(t, tt.close, slot.Close())
		})
	}
}

func TestNewTimeSlot_BusinessCode(t *testing.T) {
	_, err := NewTimeSlot("10:00", "09:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_time_order"))
}

func TestTimeSlot_Contains(t *testing.T) {
	slot := MustTimeSlot("08:00", "18:00")

	assert.True(t, slot.Contains("08:00"))
	assert.True(t, slot.Contains("12:30"))
	assert.True(t, slot.Contains("18:00"), "closing minute is inclusive")
	assert.False(t, slot.Contains("07:59"))
	assert.False(t, slot.Contains("18:01"))
}

func TestTimeSlot_DurationMinutes(t *testing.T) {
	assert.Equal(t, 600, MustTimeSlot("08:00", "18:00").DurationMinutes())
	assert.Equal(t, 1, MustTimeSlot("12:59", "13:00").DurationMinutes())
	assert.Equal(t, 1439, MustTimeSlot("00:00", "23:59").DurationMinutes())
}

func TestTimeSlot_Equal(t *testing.T) {
	a := MustTimeSlot("08:00", "12:00")
	assert.True(t, a.Equal(MustTimeSlot("08:00", "12:00")))
	assert.False(t, a.Equal(MustTimeSlot("08:00", "12:01")))
}

func TestTimeSlot_UnmarshalJSONValidates(t *testing.T) {
	var slot TimeSlot
	require.NoError(t, json.Unmarshal([]byte(`{"open":"09:00","close":"17:00"}`), &slot))
	assert.Equal(t, MustTimeSlot("09:00", "17:00"), slot)

	err := json.Unmarshal([]byte(`{"open":"17:00","close":"09:00"}`), &slot)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}
