package layout

import (
	"errors"
	"testing"
)

type visit struct {
	pane  string
	inner Rect
	outer Rect
}

func collect(t *testing.T, root *Node[string], area Rect) []visit {
	t.Helper()
	var visits []visit
	err := Walk[string, []visit](root, area, &visits,
		func(pane string, inner Rect, _ Borders, outer Rect, data *[]visit) error {
			*data = append(*data, visit{pane, inner, outer})
			return nil
		},
		nil,
	)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	return visits
}

func TestWalk_HorizontalHalves(t *testing.T) {
	root := NewSplit(Horizontal, BordersNone,
		Sized(Percent(50), Leaf("left", BordersNone)),
		Sized(Percent(50), Leaf("right", BordersNone)),
	)

	visits := collect(t, root, NewRect(0, 0, 100, 10))
	if len(visits) != 2 {
		t.Fatalf("Expected 2 leaves, got %d", len(visits))
	}
	if visits[0].pane != "left" || visits[0].outer != (Rect{0, 0, 50, 10}) {
		t.Errorf("left = %+v", visits[0])
	}
	if visits[1].pane != "right" || visits[1].outer != (Rect{50, 0, 50, 10}) {
		t.Errorf("right = %+v", visits[1])
	}
	if visits[0].outer.Intersects(visits[1].outer) {
		t.Error("Children must not overlap")
	}
	if visits[0].outer.Area()+visits[1].outer.Area() != 1000 {
		t.Error("Children must cover the whole area")
	}
}

func TestWalk_DeclaredOrderAndBorders(t *testing.T) {
	root := NewSplit(Vertical, BordersAll,
		Sized(Length(3), Leaf("header", BorderBottom)),
		Sized(Ratio(1), NewSplit(Horizontal, BordersNone,
			Sized(Ratio(1), Leaf("a", BordersNone)),
			Sized(Ratio(1), Leaf("b", BordersAll)),
		)),
		Sized(Length(1), Leaf("footer", BordersNone)),
	)

	visits := collect(t, root, NewRect(0, 0, 42, 22))

	var order []string
	for _, v := range visits {
		order = append(order, v.pane)
	}
	want := []string{"header", "a", "b", "footer"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	if visits[0].outer != (Rect{1, 1, 40, 3}) || visits[0].inner != (Rect{1, 1, 40, 2}) {
		t.Errorf("header = %+v", visits[0])
	}
	if visits[1].outer != (Rect{1, 4, 20, 16}) {
		t.Errorf("a = %+v", visits[1])
	}
	if visits[2].inner != (Rect{22, 5, 18, 14}) {
		t.Errorf("b inner = %+v", visits[2])
	}
	if visits[3].outer != (Rect{1, 20, 40, 1}) {
		t.Errorf("footer = %+v", visits[3])
	}
}

func TestWalk_OtherPercentUsesOtherAxis(t *testing.T) {
	root := NewSplit(Horizontal, BordersNone,
		Sized(OtherPercent(200), Leaf("art", BordersNone)),
		Sized(Ratio(1), Leaf("rest", BordersNone)),
	)

	visits := collect(t, root, NewRect(0, 0, 80, 10))
	if visits[0].outer.Width != 20 || visits[1].outer.Width != 60 {
		t.Errorf("widths = %d, %d", visits[0].outer.Width, visits[1].outer.Width)
	}
}

func TestWalk_SplitCallback(t *testing.T) {
	root := NewSplit(Vertical, BordersAll,
		Sized(Ratio(1), NewSplit(Horizontal, BorderTop, Sized(Ratio(1), Leaf("x", BordersNone)))),
	)

	var events []string
	err := Walk[string, []string](root, NewRect(0, 0, 10, 10), &events,
		func(pane string, _ Rect, _ Borders, _ Rect, data *[]string) error {
			*data = append(*data, "leaf:"+pane)
			return nil
		},
		func(b Borders, _ Rect, data *[]string) error {
			*data = append(*data, "split:"+b.String())
			return nil
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"split:all", "split:top", "leaf:x"}
	if len(events) != len(want) {
		t.Fatalf("events = %v", events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events = %v, want %v", events, want)
		}
	}
}

func TestWalk_ErrorAborts(t *testing.T) {
	root := NewSplit(Horizontal, BordersNone,
		Sized(Ratio(1), Leaf("a", BordersNone)),
		Sized(Ratio(1), Leaf("bad", BordersNone)),
		Sized(Ratio(1), Leaf("c", BordersNone)),
	)
	boom := errors.New("boom")

	var seen []string
	err := ForEachPane(root, NewRect(0, 0, 30, 1), func(pane string, _ Rect, _ Borders, _ Rect) error {
		seen = append(seen, pane)
		if pane == "bad" {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
	if len(seen) != 2 {
		t.Errorf("Walk should stop at the failing leaf, saw %v", seen)
	}
}

func TestWalk_DeepNesting(t *testing.T) {
	root := Leaf("bottom", BordersNone)
	for i := 0; i < 10000; i++ {
		root = NewSplit(Vertical, BordersNone, Sized(Ratio(1), root))
	}

	visits := collect(t, root, NewRect(0, 0, 10, 10))
	if len(visits) != 1 || visits[0].pane != "bottom" {
		t.Errorf("visits = %+v", visits)
	}
	if Depth(root) != 10001 {
		t.Errorf("Depth = %d", Depth(root))
	}
}

func TestLeaves(t *testing.T) {
	root := NewSplit(Horizontal, BordersNone,
		Sized(Ratio(1), Leaf("a", BordersNone)),
		Sized(Ratio(1), NewSplit(Vertical, BordersNone,
			Sized(Ratio(1), Leaf("b", BordersNone)),
			Sized(Ratio(1), Leaf("c", BordersNone)),
		)),
	)
	got := Leaves(root)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("Leaves = %v", got)
	}
}
