package property

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zhubert/stave/internal/mpd"
)

// FormatDuration renders d as m:ss, or h:mm:ss from one hour up.
func FormatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	h, m, s := secs/3600, secs/60%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatDurationUnits renders d as its non-zero day/hour/minute/second parts
// joined by separator, e.g. "1h, 2m, 3s". A zero duration renders "0s".
func FormatDurationUnits(d time.Duration, separator string) string {
	secs := int64(d / time.Second)
	if secs <= 0 {
		return "0s"
	}
	parts := make([]string, 0, 4)
	for _, u := range []struct {
		size   int64
		suffix string
	}{
		{86400, "d"},
		{3600, "h"},
		{60, "m"},
		{1, "s"},
	} {
		if n := secs / u.size; n > 0 {
			parts = append(parts, strconv.FormatInt(n, 10)+u.suffix)
			secs %= u.size
		}
	}
	return strings.Join(parts, separator)
}

// ThousandsSeparated renders n with separator between groups of three digits.
func ThousandsSeparated(n int, separator string) string {
	s := strconv.Itoa(n)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 || separator == "" {
		return sign + s
	}

	groups := make([]string, 0, len(s)/3+1)
	if head := len(s) % 3; head > 0 {
		groups = append(groups, s[:head])
		s = s[head:]
	}
	for ; s != ""; s = s[3:] {
		groups = append(groups, s[:3])
	}
	return sign + strings.Join(groups, separator)
}

const gaugeCells = 10

// VolumeGauge renders the volume as a ten cell bar followed by a percentage.
func VolumeGauge(v mpd.Volume) string {
	filled := (v.Value()*gaugeCells + mpd.MaxVolume/2) / mpd.MaxVolume
	return fmt.Sprintf("%s%s %3d%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", gaugeCells-filled),
		v.Value(),
	)
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 100 * time.Millisecond

// ScanStatus renders the spinner frame for a scan that has been running for
// elapsed.
func ScanStatus(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	frame := int(elapsed/spinnerInterval) % len(spinnerFrames)
	return spinnerFrames[frame] + " Scanning"
}
