package window_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"riminspect/config"
	"riminspect/internal/domains/schedule/window"
	"riminspect/shared/failure"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Schedule.StandardDurationMinutes = 60
	cfg.App.Schedule.ShortDurationMinutes = 3

	return cfg
}

func TestDuration(t *testing.T) {
	cfg := testConfig()

	assert.Equal(t, time.Hour, window.Duration(cfg, window.PolicyStandard))
	assert.Equal(t, 3*time.Minute, window.Duration(cfg, window.PolicyShort))
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		time      string
		duration  time.Duration
		wantErr   bool
		wantStart string
		wantEnd   string
	}{
		{
			name:      "standard slot",
			date:      "2025-03-10",
			time:      "14:00",
			duration:  time.Hour,
			wantStart: "14:00:00",
			wantEnd:   "15:00:00",
		},
		{
			name:      "time with seconds",
			date:      "2025-03-10",
			time:      "14:30:15",
			duration:  time.Hour,
			wantStart: "14:30:15",
			wantEnd:   "15:30:15",
		},
		{
			name:    "invalid date",
			date:    "10-03-2025",
			time:    "14:00",
			wantErr: true,
		},
		{
			name:    "invalid time",
			date:    "2025-03-10",
			time:    "2pm",
			wantErr: true,
		},
		{
			name:     "crosses midnight",
			date:     "2025-03-10",
			time:     "23:30",
			duration: time.Hour,
			wantErr:  true,
		},
		{
			name:     "ends exactly at midnight",
			date:     "2025-03-10",
			time:     "23:00",
			duration: time.Hour,
			wantErr:  true,
		},
		{
			name:     "non-positive duration",
			date:     "2025-03-10",
			time:     "14:00",
			duration: 0,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := window.Compute(tt.date, tt.time, tt.duration)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStart, w.Start.Format("15:04:05"))
			assert.Equal(t, tt.wantEnd, w.End.Format("15:04:05"))
			assert.Equal(t, tt.date, w.Date.Format("2006-01-02"))
			assert.Equal(t, tt.duration, w.EndAt.Sub(w.StartAt))
		})
	}
}

func TestCompute_EndAlwaysDerived(t *testing.T) {
	w, err := window.Compute("2025-03-10", "09:00", 45*time.Minute)

	assert.NoError(t, err)
	assert.Equal(t, "09:45:00", w.End.Format("15:04:05"))
}

func TestFromInstant(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 15, 30, 500, time.UTC)

	w, err := window.FromInstant(now, 3*time.Minute)

	assert.NoError(t, err)
	assert.Equal(t, "2025-03-10", w.Date.Format("2006-01-02"))
	assert.Equal(t, 3*time.Minute, w.EndAt.Sub(w.StartAt))
	assert.Equal(t, w.StartAt.Format("15:04:05"), w.Start.Format("15:04:05"))
}

func TestFromInstant_CrossesMidnight(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)

	_, err := window.FromInstant(now, 3*time.Minute)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestTimeOfDay_ComparableAcrossDates(t *testing.T) {
	a := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	b := time.Date(1999, 12, 31, 14, 0, 0, 0, time.UTC)

	assert.True(t, window.TimeOfDay(a).Equal(window.TimeOfDay(b)))

	later := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	assert.True(t, window.TimeOfDay(a).Before(window.TimeOfDay(later)))
}
