package panes

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// lyricLine is one line of lyrics. At is negative for untimed lyrics.
type lyricLine struct {
	At   time.Duration
	Text string
}

var (
	lrcTime = regexp.MustCompile(`^\[(\d+):(\d{1,2})(?:[.:](\d{1,3}))?\]`)
	lrcTag  = regexp.MustCompile(`^\[([a-zA-Z]+):(.*)\]$`)
)

// parseLyrics reads plain or .lrc lyrics. A line may carry several
// timestamps; it is repeated at each. Timed output is sorted by time and the
// offset tag shifts every timestamp. Plain text yields untimed lines.
func parseLyrics(text string) (lines []lyricLine, timed bool) {
	var offset time.Duration
	var plain []lyricLine

	for _, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)

		var stamps []time.Duration
		for {
			m := lrcTime.FindStringSubmatch(line)
			if m == nil {
				break
			}
			stamps = append(stamps, stampOf(m))
			line = line[len(m[0]):]
		}

		if len(stamps) == 0 {
			if m := lrcTag.FindStringSubmatch(line); m != nil {
				if strings.EqualFold(m[1], "offset") {
					if ms, err := strconv.Atoi(strings.TrimSpace(m[2])); err == nil {
						offset = time.Duration(ms) * time.Millisecond
					}
				}
				continue
			}
			plain = append(plain, lyricLine{At: -1, Text: line})
			continue
		}
		for _, at := range stamps {
			lines = append(lines, lyricLine{At: at, Text: strings.TrimSpace(line)})
		}
	}

	if len(lines) == 0 {
		return trimBlank(plain), false
	}
	for i := range lines {
		// A positive offset makes lyrics appear sooner.
		lines[i].At = max(lines[i].At-offset, 0)
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].At < lines[j].At })
	return lines, true
}

func stampOf(m []string) time.Duration {
	minutes, _ := strconv.Atoi(m[1])
	seconds, _ := strconv.Atoi(m[2])
	d := time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
	if frac := m[3]; frac != "" {
		n, _ := strconv.Atoi(frac)
		// Fractions are hundredths with two digits and milliseconds with three.
		switch len(frac) {
		case 1:
			d += time.Duration(n) * 100 * time.Millisecond
		case 2:
			d += time.Duration(n) * 10 * time.Millisecond
		default:
			d += time.Duration(n) * time.Millisecond
		}
	}
	return d
}

func trimBlank(lines []lyricLine) []lyricLine {
	for len(lines) > 0 && lines[0].Text == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1].Text == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// currentLyric returns the index of the last timed line at or before
// elapsed.
func currentLyric(lines []lyricLine, elapsed time.Duration) (int, bool) {
	i := sort.Search(len(lines), func(i int) bool { return lines[i].At > elapsed })
	if i == 0 {
		return 0, false
	}
	return i - 1, true
}
