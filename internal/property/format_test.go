package property

import (
	"testing"
	"time"

	"github.com/zhubert/stave/internal/mpd"
)

func TestEllipsize(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		max    int
		marker string
		want   string
	}{
		{"within limit", "hello", 5, "…", "hello"},
		{"truncated", "hello world", 5, "…", "hell…"},
		{"multi char marker", "hello world", 6, "...", "hel..."},
		{"counts characters not bytes", "héllo wörld", 6, "…", "héllo…"},
		{"marker longer than max", "hello", 2, "...", ".."},
		{"zero max", "hello", 0, "…", ""},
		{"combining graphemes", "éééé", 3, "…", "éé…"},
		{"combining mark counts once", "e\u0301x", 2, "…", "e\u0301x"},
		{"combining mark kept with its base", "e\u0301e\u0301e\u0301", 2, "…", "e\u0301…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ellipsize(tt.text, tt.max, tt.marker); got != tt.want {
				t.Errorf("Ellipsize(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{123 * time.Second, "2:03"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{-time.Second, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatDurationUnits(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{3 * time.Second, "3s"},
		{26*time.Hour + 4*time.Second, "1d,2h,4s"},
	}

	for _, tt := range tests {
		if got := FormatDurationUnits(tt.d, ","); got != tt.want {
			t.Errorf("FormatDurationUnits(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestThousandsSeparated(t *testing.T) {
	tests := []struct {
		n    int
		sep  string
		want string
	}{
		{0, ",", "0"},
		{999, ",", "999"},
		{1000, ",", "1,000"},
		{1234567, " ", "1 234 567"},
		{-12345, ",", "-12,345"},
		{12345, "", "12345"},
	}

	for _, tt := range tests {
		if got := ThousandsSeparated(tt.n, tt.sep); got != tt.want {
			t.Errorf("ThousandsSeparated(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestVolumeGauge(t *testing.T) {
	if got := VolumeGauge(mpd.NewVolume(50)); got != "█████░░░░░  50%" {
		t.Errorf("got %q", got)
	}
	if got := VolumeGauge(mpd.NewVolume(100)); got != "██████████ 100%" {
		t.Errorf("got %q", got)
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"all", All, false},
		{"First", First, false},
		{" last ", Last, false},
		{"nth:2", Nth(2), false},
		{"nth:x", Strategy{}, true},
		{"random", Strategy{}, true},
	}

	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStrategy(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStrategy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
