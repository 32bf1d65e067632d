package galaxy

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewCometRegistered(t *testing.T) {
	g := New()
	c := g.NewComet()

	require.Len(t, g.Comets(), 1, "comet should be added to the galaxy")
	require.Equal(t, 1, g.Len(), "comet should be added to the index")

	ref, ok := g.Index(c.ID)
	require.True(t, ok, "comet id should resolve")
	require.Equal(t, BodyIndex{ID: c.ID, Kind: KindComet, Slot: 0}, ref)
}

func TestNewPlanetRegistered(t *testing.T) {
	g := New()
	p := g.NewPlanet()

	require.Len(t, g.Planets(), 1, "planet should be added to the galaxy")
	require.Equal(t, 1, g.Len(), "planet should be added to the index")

	ref, ok := g.Index(p.ID)
	require.True(t, ok, "planet id should resolve")
	require.Equal(t, BodyIndex{ID: p.ID, Kind: KindPlanet, Slot: 0}, ref)
}

func TestNewStarRegistered(t *testing.T) {
	g := New()
	s := g.NewStar()

	require.Len(t, g.Stars(), 1, "star should be added to the galaxy")
	require.Equal(t, 1, g.Len(), "star should be added to the index")

	ref, ok := g.Index(s.ID)
	require.True(t, ok, "star id should resolve")
	require.Equal(t, BodyIndex{ID: s.ID, Kind: KindStar, Slot: 0}, ref)
}

func TestIDsAssignedSequentially(t *testing.T) {
	g := New()

	require.Equal(t, ID(0), g.NewComet().ID)
	require.Equal(t, ID(1), g.NewPlanet().ID)
	require.Equal(t, ID(2), g.NewStar().ID)
	require.Equal(t, ID(3), g.NextID())
}

func TestIndexUnknownID(t *testing.T) {
	g := New()
	g.NewComet()

	_, ok := g.Index(42)
	require.False(t, ok)
}

func TestSetStatusAddsToHistory(t *testing.T) {
	g := New()
	c := g.NewComet()

	t1 := time.Now()
	c.SetStatus(StatusStart, "1")
	t2 := time.Now()
	c.SetStatus(StatusDone, "2")

	require.Len(t, c.History, 2)

	require.Equal(t, "1", c.History[0].Comment)
	require.Equal(t, StatusTodo, c.History[0].Old)
	require.Equal(t, StatusStart, c.History[0].New)
	require.WithinDuration(t, t1, c.History[0].Time, time.Second)

	require.Equal(t, "2", c.History[1].Comment)
	require.Equal(t, StatusStart, c.History[1].Old)
	require.Equal(t, StatusDone, c.History[1].New)
	require.WithinDuration(t, t2, c.History[1].Time, time.Second)
}

func TestEachAscendsByID(t *testing.T) {
	// The slices deliberately hold ids out of order so the test proves
	// that Each follows the index rather than insertion order.
	const src = `{
  "version": 2,
  "comment": "",
  "title": "",
  "description": "",
  "next_id": 3,
  "comets": [
    {"id": 2, "parent": null, "title": "", "description": "", "status": "Todo", "history": []}
  ],
  "planets": [
    {"id": 1, "parent": 0, "title": "", "description": "", "status": "Todo", "history": [], "tags": [], "fields": {}}
  ],
  "stars": [
    {"id": 0, "parent": null, "title": "", "description": "", "status": "Todo", "history": [], "children": [1]}
  ]
}`

	g, err := LoadFrom(strings.NewReader(src))
	require.NoError(t, err)

	var got []BodyIndex
	g.Each(func(ref BodyIndex) bool {
		got = append(got, ref)
		return true
	})
	require.Equal(t, []BodyIndex{
		{ID: 0, Kind: KindStar, Slot: 0},
		{ID: 1, Kind: KindPlanet, Slot: 0},
		{ID: 2, Kind: KindComet, Slot: 0},
	}, got)

	got = got[:0]
	g.Each(func(ref BodyIndex) bool {
		got = append(got, ref)
		return false
	})
	require.Len(t, got, 1, "returning false should stop the iteration")
}

func TestStatusStringRoundTrip(t *testing.T) {
	tests := []struct {
		status Status
		name   string
	}{
		{StatusTodo, "Todo"},
		{StatusBlock, "Block"},
		{StatusNext, "Next"},
		{StatusStart, "Start"},
		{StatusHold, "Hold"},
		{StatusDone, "Done"},
		{StatusCancel, "Cancel"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.name, tc.status.String())

		parsed, err := ParseStatus(tc.name)
		require.NoError(t, err)
		require.Equal(t, tc.status, parsed)
	}
}

func TestParseStatusUnknown(t *testing.T) {
	_, err := ParseStatus("Doing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown status 'Doing'")

	// Status names are case sensitive
	_, err = ParseStatus("todo")
	require.Error(t, err)
}
