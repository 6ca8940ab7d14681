package scenarios

import (
	"time"

	"github.com/zhubert/stave/internal/demo"
)

// Tour visits every tab of the default layout once.
var Tour = &demo.Scenario{
	Name:        "tour",
	Description: "Visit every tab of the default layout",
	Width:       140,
	Height:      40,
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),
		demo.Annotate("Queue"),
		demo.Capture(),

		demo.Key("tab"),
		demo.Annotate("Directories"),
		demo.Wait(500 * time.Millisecond),

		demo.Key("tab"),
		demo.Annotate("Artists"),
		demo.Wait(500 * time.Millisecond),
		demo.Key("enter"),
		demo.Wait(500 * time.Millisecond),

		demo.Key("tab"),
		demo.Annotate("Album artists"),
		demo.Wait(500 * time.Millisecond),

		demo.Key("tab"),
		demo.Annotate("Albums"),
		demo.Wait(500 * time.Millisecond),

		demo.Key("tab"),
		demo.Annotate("Genres"),
		demo.Wait(500 * time.Millisecond),

		demo.Key("tab"),
		demo.Annotate("Playlists"),
		demo.Wait(500 * time.Millisecond),

		demo.Key("tab"),
		demo.Annotate("Search"),
		demo.Type("halt"),
		demo.Key("enter"),
		demo.Wait(500 * time.Millisecond),

		demo.Key("tab"),
		demo.Annotate("Visualizer"),
		demo.Wait(1 * time.Second),
	},
}
