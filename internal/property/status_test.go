package property

import (
	"testing"
	"time"

	"github.com/zhubert/stave/internal/mpd"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		Status: &mpd.Status{
			State:     mpd.StatePlay,
			Volume:    mpd.NewVolume(123),
			Elapsed:   123 * time.Second,
			Duration:  123 * time.Second,
			Bitrate:   mpd.U32(123),
			Crossfade: mpd.U32(3),
		},
		ActiveTab: "Queue",
	}
}

func TestResolveText_StatusValues(t *testing.T) {
	tests := []struct {
		field StatusField
		want  string
	}{
		{StatusVolume, "100"},
		{StatusElapsed, "2:03"},
		{StatusDuration, "2:03"},
		{StatusCrossfade, "3"},
		{StatusBitrate, "123"},
		{StatusActiveTab, "Queue"},
	}

	for _, tt := range tests {
		got, ok := ResolveText(&Spec{Kind: StatusValue{Field: tt.field}}, nil, testSnapshot(), "", All)
		if !ok || got != tt.want {
			t.Errorf("field %d = %q, %v; want %q", tt.field, got, ok, tt.want)
		}
	}
}

func TestResolveText_UnsetBitrateFallsBack(t *testing.T) {
	snap := testSnapshot()
	snap.Status.Bitrate = nil

	if _, ok := ResolveText(&Spec{Kind: StatusValue{Field: StatusBitrate}}, nil, snap, "", All); ok {
		t.Error("Unset bitrate should not resolve")
	}
	spec := &Spec{Kind: StatusValue{Field: StatusBitrate}, Default: NewText("-")}
	if got, _ := ResolveText(spec, nil, snap, "", All); got != "-" {
		t.Errorf("Expected default, got %q", got)
	}
}

func TestResolveStyled_PlaybackState(t *testing.T) {
	base := Style{Fg: "white"}
	playing := Style{Fg: "green"}
	kind := PlaybackState{
		PlayingLabel: "Playing",
		PausedLabel:  "Paused",
		StoppedLabel: "Stopped",
		PlayingStyle: &playing,
	}

	tests := []struct {
		state mpd.State
		label string
		fg    string
	}{
		{mpd.StatePlay, "Playing", "green"},
		{mpd.StatePause, "Paused", "white"},
		{mpd.StateStop, "Stopped", "white"},
	}

	for _, tt := range tests {
		snap := testSnapshot()
		snap.Status.State = tt.state
		spans, ok := ResolveStyled(&Spec{Kind: kind, Style: base}, nil, snap, "", All)
		if !ok || len(spans) != 1 {
			t.Fatalf("Expected one span, got %v", spans)
		}
		if spans[0].Text != tt.label || spans[0].Style.Fg != tt.fg {
			t.Errorf("state %v = %+v, want %q/%q", tt.state, spans[0], tt.label, tt.fg)
		}
	}
}

func TestResolveStyled_OnOffLabels(t *testing.T) {
	on := Style{Fg: "green"}
	spec := &Spec{
		Kind:  OnOff{Toggle: ToggleRandom, OnLabel: "On", OffLabel: "Off", OnStyle: &on},
		Style: Style{Fg: "red"},
	}

	snap := testSnapshot()
	spans, _ := ResolveStyled(spec, nil, snap, "", All)
	if spans[0].Text != "Off" || spans[0].Style.Fg != "red" {
		t.Errorf("Off state = %+v", spans[0])
	}

	snap.Status.Random = true
	spans, _ = ResolveStyled(spec, nil, snap, "", All)
	if spans[0].Text != "On" || spans[0].Style.Fg != "green" {
		t.Errorf("On state = %+v", spans[0])
	}
}

func TestResolveStyled_OnOffOneshotStyles(t *testing.T) {
	oneshot := Style{Fg: "yellow"}
	spec := &Spec{
		Kind: OnOffOneshot{
			Toggle:       TriConsume,
			OnLabel:      "On",
			OffLabel:     "Off",
			OneshotLabel: "OS",
			OneshotStyle: &oneshot,
		},
		Style: Style{Fg: "blue"},
	}

	tests := []struct {
		v     mpd.OnOffOneshot
		label string
		fg    string
	}{
		{mpd.On, "On", "blue"},
		{mpd.Off, "Off", "blue"},
		{mpd.Oneshot, "OS", "yellow"},
	}

	for _, tt := range tests {
		snap := testSnapshot()
		snap.Status.Consume = tt.v
		snap.Status.Single = mpd.Off
		spans, _ := ResolveStyled(spec, nil, snap, "", All)
		if spans[0].Text != tt.label || spans[0].Style.Fg != tt.fg {
			t.Errorf("consume %v = %+v", tt.v, spans[0])
		}
	}
}

func TestResolveStyled_StatesWidget(t *testing.T) {
	active := Style{Bold: Flag(true)}
	sep := Style{Fg: "gray"}
	snap := testSnapshot()
	snap.Status.Repeat = true
	snap.Status.Single = mpd.Oneshot

	spans, ok := ResolveStyled(&Spec{Kind: StatesWidget{ActiveStyle: active, SeparatorStyle: sep}}, nil, snap, "", All)
	if !ok {
		t.Fatal("States widget should always resolve")
	}
	if got := Plain(spans); got != "Repeat / Random / Consume / Oneshot(S)" {
		t.Errorf("got %q", got)
	}
	if len(spans) != 7 {
		t.Fatalf("Expected 7 spans, got %d", len(spans))
	}
	if spans[0].Style.Bold == nil || spans[2].Style.Bold != nil || spans[6].Style.Bold == nil {
		t.Errorf("Active styling wrong: %+v", spans)
	}
	if spans[1].Style.Fg != "gray" {
		t.Errorf("Separator style = %+v", spans[1].Style)
	}
}

func TestResolveText_QueueAggregates(t *testing.T) {
	snap := testSnapshot()
	snap.Queue = []mpd.Song{
		{ID: 1, Duration: mpd.Dur(time.Hour)},
		{ID: 2, Duration: mpd.Dur(2 * time.Minute)},
		{ID: 3},
		{ID: 4, Duration: mpd.Dur(3 * time.Second)},
	}

	total, _ := ResolveText(&Spec{Kind: QueueTimeTotal{Separator: ", "}}, nil, snap, "", All)
	if total != "1h, 2m, 3s" {
		t.Errorf("Total = %q", total)
	}

	remaining := &Spec{Kind: QueueTimeRemaining{Separator: " "}}
	if got, _ := ResolveText(remaining, nil, snap, "", All); got != "0s" {
		t.Errorf("Nothing playing should yield 0s, got %q", got)
	}

	snap.Status.SongID = mpd.U32(2)
	if got, _ := ResolveText(remaining, nil, snap, "", All); got != "2m 3s" {
		t.Errorf("Remaining = %q, want 2m 3s", got)
	}

	if got, _ := ResolveText(&Spec{Kind: QueueLength{}}, nil, snap, "", All); got != "4" {
		t.Errorf("QueueLength = %q", got)
	}
}

func TestResolveText_ScanStatus(t *testing.T) {
	snap := testSnapshot()
	spec := &Spec{Kind: ScanStatusWidget{}}

	if _, ok := ResolveText(spec, nil, snap, "", All); ok {
		t.Error("Scan status should not resolve without a scan")
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	snap.ScanStart = &start
	snap.Now = start.Add(250 * time.Millisecond)
	if got, _ := ResolveText(spec, nil, snap, "", All); got != "⠹ Scanning" {
		t.Errorf("got %q", got)
	}
}

func TestResolveText_StatusWithoutSnapshot(t *testing.T) {
	spec := &Spec{Kind: StatusValue{Field: StatusVolume}, Default: NewText("n/a")}
	if got, _ := ResolveText(spec, nil, nil, "", All); got != "n/a" {
		t.Errorf("got %q, want n/a", got)
	}
}
