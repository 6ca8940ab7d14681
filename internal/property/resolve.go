package property

import (
	"strconv"
	"time"

	"github.com/zhubert/stave/internal/mpd"
)

// ResolveText resolves spec to plain text. Styles are ignored and group
// members are concatenated.
func ResolveText(spec *Spec, song *mpd.Song, snap *Snapshot, separator string, strategy Strategy) (string, bool) {
	r := resolver{song: song, snap: snap, separator: separator, strategy: strategy}
	spans, ok := r.resolve(spec)
	if !ok {
		return "", false
	}
	return Plain(spans), true
}

// ResolveStyled resolves spec to styled spans. Each group member's style is
// patched onto the group's style.
func ResolveStyled(spec *Spec, song *mpd.Song, snap *Snapshot, separator string, strategy Strategy) ([]Span, bool) {
	r := resolver{song: song, snap: snap, separator: separator, strategy: strategy}
	return r.resolve(spec)
}

// ResolveEllipsized is ResolveStyled with every resolved fragment shortened
// to maxLen characters using marker.
func ResolveEllipsized(spec *Spec, song *mpd.Song, snap *Snapshot, maxLen int, marker, separator string, strategy Strategy) ([]Span, bool) {
	r := resolver{
		song:      song,
		snap:      snap,
		separator: separator,
		strategy:  strategy,
		leaf:      func(s string) string { return Ellipsize(s, maxLen, marker) },
	}
	return r.resolve(spec)
}

// Matches reports whether any of specs resolves, for song, to text that
// contains filter ignoring case. Tags are joined without a separator.
func Matches(song *mpd.Song, specs []*Spec, filter string) bool {
	for _, spec := range specs {
		text, ok := ResolveText(spec, song, nil, "", All)
		if ok && ContainsFold(text, filter) {
			return true
		}
	}
	return false
}

type resolver struct {
	song      *mpd.Song
	snap      *Snapshot
	separator string
	strategy  Strategy
	leaf      func(string) string
}

func (r *resolver) resolve(spec *Spec) ([]Span, bool) {
	for ; spec != nil; spec = spec.Default {
		if spans, ok := r.kind(spec); ok {
			return spans, true
		}
	}
	return nil, false
}

func (r *resolver) span(text string, st Style) []Span {
	if r.leaf != nil {
		text = r.leaf(text)
	}
	return []Span{{Text: text, Style: st}}
}

func (r *resolver) kind(spec *Spec) ([]Span, bool) {
	switch k := spec.Kind.(type) {
	case Text:
		return r.span(k.Value, spec.Style), true
	case Sticker:
		if r.song == nil {
			return nil, false
		}
		v, ok := r.song.Sticker(k.Key)
		if !ok {
			return nil, false
		}
		return r.span(v, spec.Style), true
	case SongProperty:
		v, ok := FormatSong(r.song, k, r.separator, r.strategy)
		if !ok {
			return nil, false
		}
		return r.span(v, spec.Style), true
	case Group:
		var out []Span
		for _, m := range k.Members {
			spans, ok := r.resolve(m)
			if !ok {
				return nil, false
			}
			for _, s := range spans {
				out = append(out, Span{Text: s.Text, Style: spec.Style.Patch(s.Style)})
			}
		}
		return out, true
	}
	return r.status(spec)
}

func (r *resolver) status(spec *Spec) ([]Span, bool) {
	if r.snap == nil {
		return nil, false
	}
	snap := r.snap

	switch k := spec.Kind.(type) {
	case StatusValue:
		if k.Field == StatusActiveTab {
			return r.span(snap.ActiveTab, spec.Style), true
		}
		if snap.Status == nil {
			return nil, false
		}
		v, ok := statusField(snap.Status, k.Field)
		if !ok {
			return nil, false
		}
		return r.span(v, spec.Style), true
	case QueueLength:
		return r.span(ThousandsSeparated(len(snap.Queue), k.ThousandsSeparator), spec.Style), true
	case QueueTimeTotal:
		return r.span(FormatDurationUnits(sumDurations(snap.Queue), k.Separator), spec.Style), true
	case QueueTimeRemaining:
		var total time.Duration
		if i, ok := snap.CurrentIndex(); ok {
			total = sumDurations(snap.Queue[i:])
		}
		return r.span(FormatDurationUnits(total, k.Separator), spec.Style), true
	case ScanStatusWidget:
		if snap.ScanStart == nil {
			return nil, false
		}
		return r.span(ScanStatus(snap.Now.Sub(*snap.ScanStart)), spec.Style), true
	}

	st := snap.Status
	if st == nil {
		return nil, false
	}
	switch k := spec.Kind.(type) {
	case PlaybackState:
		switch st.State {
		case mpd.StatePlay:
			return r.span(k.PlayingLabel, override(k.PlayingStyle, spec.Style)), true
		case mpd.StatePause:
			return r.span(k.PausedLabel, override(k.PausedStyle, spec.Style)), true
		default:
			return r.span(k.StoppedLabel, override(k.StoppedStyle, spec.Style)), true
		}
	case OnOff:
		on := st.Repeat
		if k.Toggle == ToggleRandom {
			on = st.Random
		}
		if on {
			return r.span(k.OnLabel, override(k.OnStyle, spec.Style)), true
		}
		return r.span(k.OffLabel, override(k.OffStyle, spec.Style)), true
	case OnOffOneshot:
		v := st.Consume
		if k.Toggle == TriSingle {
			v = st.Single
		}
		switch v {
		case mpd.On:
			return r.span(k.OnLabel, override(k.OnStyle, spec.Style)), true
		case mpd.Oneshot:
			return r.span(k.OneshotLabel, override(k.OneshotStyle, spec.Style)), true
		default:
			return r.span(k.OffLabel, override(k.OffStyle, spec.Style)), true
		}
	case VolumeWidget:
		return r.span(VolumeGauge(st.Volume), spec.Style), true
	case StatesWidget:
		return r.states(st, k, spec.Style), true
	}
	return nil, false
}

func (r *resolver) states(st *mpd.Status, k StatesWidget, base Style) []Span {
	pick := func(active bool) Style {
		if active {
			return k.ActiveStyle
		}
		return base
	}
	triLabel := func(v mpd.OnOffOneshot, label, oneshot string) (string, Style) {
		switch v {
		case mpd.On:
			return label, k.ActiveStyle
		case mpd.Oneshot:
			return oneshot, k.ActiveStyle
		default:
			return label, base
		}
	}

	consume, consumeStyle := triLabel(st.Consume, "Consume", "Oneshot(C)")
	single, singleStyle := triLabel(st.Single, "Single", "Oneshot(S)")
	sep := r.span(" / ", k.SeparatorStyle)[0]

	return []Span{
		r.span("Repeat", pick(st.Repeat))[0],
		sep,
		r.span("Random", pick(st.Random))[0],
		sep,
		r.span(consume, consumeStyle)[0],
		sep,
		r.span(single, singleStyle)[0],
	}
}

func statusField(st *mpd.Status, f StatusField) (string, bool) {
	switch f {
	case StatusElapsed:
		return FormatDuration(st.Elapsed), true
	case StatusDuration:
		return FormatDuration(st.Duration), true
	case StatusVolume:
		return strconv.Itoa(st.Volume.Value()), true
	case StatusBitrate:
		if st.Bitrate == nil {
			return "", false
		}
		return strconv.FormatUint(uint64(*st.Bitrate), 10), true
	case StatusCrossfade:
		if st.Crossfade == nil {
			return "", false
		}
		return strconv.FormatUint(uint64(*st.Crossfade), 10), true
	default:
		return "", false
	}
}

func override(st *Style, base Style) Style {
	if st != nil {
		return *st
	}
	return base
}

func sumDurations(songs []mpd.Song) time.Duration {
	var total time.Duration
	for i := range songs {
		if d := songs[i].Duration; d != nil {
			total += *d
		}
	}
	return total
}
