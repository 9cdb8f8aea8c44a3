package models

import (
	"testing"
	"time"
)

func TestEndDateFor(t *testing.T) {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration float64
		expected time.Time
	}{
		{"48 hours", 48, base.Add(48 * time.Hour)},
		{"one hour", 1, base.Add(time.Hour)},
		{"fractional hours", 1.5, base.Add(90 * time.Minute)},
		{"full month-ish", 720, base.Add(720 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EndDateFor(base, tt.duration)
			if !got.Equal(tt.expected) {
				t.Errorf("EndDateFor(%v, %v) = %v, want %v", base, tt.duration, got, tt.expected)
			}
		})
	}
}

func TestInitWindow(t *testing.T) {
	now := time.Now()
	task := &Task{}
	task.InitWindow(now, 48)

	if !task.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", task.CreatedAt, now)
	}
	if task.Duration != 48 {
		t.Errorf("Duration = %v, want 48", task.Duration)
	}
	want := now.Add(48 * time.Hour)
	if !task.EndDate.Equal(want) {
		t.Errorf("EndDate = %v, want %v", task.EndDate, want)
	}
	if got := task.EndDate.Sub(task.CreatedAt).Seconds(); got != 48*3600 {
		t.Errorf("window length = %vs, want %vs", got, 48*3600)
	}
}

func TestSetWindow(t *testing.T) {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{"valid window", base, base.Add(2 * time.Hour), false},
		{"start equals end", base, base, true},
		{"start after end", base.Add(time.Hour), base, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{}
			task.InitWindow(base.Add(-24*time.Hour), 10)

			err := task.SetWindow(tt.start, tt.end)
			if tt.wantErr {
				if err != ErrInvalidWindow {
					t.Fatalf("SetWindow err = %v, want ErrInvalidWindow", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetWindow err = %v", err)
			}
			if !task.CreatedAt.Equal(tt.start) || !task.EndDate.Equal(tt.end) {
				t.Errorf("window = [%v, %v], want [%v, %v]", task.CreatedAt, task.EndDate, tt.start, tt.end)
			}
			// duration must follow the explicit bounds
			if want := tt.end.Sub(tt.start).Hours(); task.Duration != want {
				t.Errorf("Duration = %v, want %v", task.Duration, want)
			}
		})
	}
}

func TestValidTimeframe(t *testing.T) {
	for _, tf := range []string{"day", "week", "month", "none"} {
		if !ValidTimeframe(tf) {
			t.Errorf("ValidTimeframe(%q) = false", tf)
		}
	}
	for _, tf := range []string{"", "year", "DAY", "weeks"} {
		if ValidTimeframe(tf) {
			t.Errorf("ValidTimeframe(%q) = true", tf)
		}
	}
}
