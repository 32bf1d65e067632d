// Package galaxy implements the project database for planit.
//
// A Galaxy is the top level structure. It contains every celestial
// body within the project: Comets are interrupting tasks, Planets are
// the basic unit of work, and Stars group other bodies together.
// Bodies live in flat slices that are only ever appended to, and a
// tree index keyed by ID points into them.
package galaxy

import "github.com/google/btree"

// ID uniquely identifies a celestial body within a Galaxy
type ID uint64

// Kind enumerates the types of celestial bodies
type Kind int

const (
	KindComet  Kind = iota // an interrupting task / bug
	KindPlanet             // a basic unit of work
	KindStar               // a collection of other celestial bodies
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindComet:
		return "comet"
	case KindPlanet:
		return "planet"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// BodyIndex locates a celestial body inside a Galaxy. Kind selects one
// of the backing slices and Slot is the position within it. Because
// bodies are never removed, a BodyIndex stays valid for the lifetime
// of the Galaxy.
type BodyIndex struct {
	ID   ID
	Kind Kind
	Slot int
}

// Less implements the btree.Item interface
func (b BodyIndex) Less(than btree.Item) bool {
	return b.ID < than.(BodyIndex).ID
}

// Galaxy is the top level structure. It contains all celestial bodies
// within the project. The zero value is not usable; use New, Load, or
// LoadFrom.
type Galaxy struct {
	Title       string
	Description string

	// nextID is the ID handed to the next created celestial body
	nextID ID

	comets  []Comet
	planets []Planet
	stars   []Star

	// index maps a body's ID to its location in the slices above,
	// ordered by ID
	index *btree.BTree
}

// New creates a new empty Galaxy
func New() *Galaxy {
	return &Galaxy{
		comets:  []Comet{},
		planets: []Planet{},
		stars:   []Star{},
		index:   btree.New(32),
	}
}

// NewComet creates a new Comet and registers it with the Galaxy. The
// returned pointer is only guaranteed to stay valid until the next
// body is created.
func (g *Galaxy) NewComet() *Comet {
	id := g.takeID()
	g.comets = append(g.comets, Comet{core: newCore(id)})
	g.index.ReplaceOrInsert(BodyIndex{ID: id, Kind: KindComet, Slot: len(g.comets) - 1})
	return &g.comets[len(g.comets)-1]
}

// NewPlanet creates a new Planet and registers it with the Galaxy. The
// returned pointer is only guaranteed to stay valid until the next
// body is created.
func (g *Galaxy) NewPlanet() *Planet {
	id := g.takeID()
	g.planets = append(g.planets, Planet{
		core:   newCore(id),
		Tags:   []string{},
		Fields: map[string]string{},
	})
	g.index.ReplaceOrInsert(BodyIndex{ID: id, Kind: KindPlanet, Slot: len(g.planets) - 1})
	return &g.planets[len(g.planets)-1]
}

// NewStar creates a new Star and registers it with the Galaxy. The
// returned pointer is only guaranteed to stay valid until the next
// body is created.
func (g *Galaxy) NewStar() *Star {
	id := g.takeID()
	g.stars = append(g.stars, Star{core: newCore(id), Children: []ID{}})
	g.index.ReplaceOrInsert(BodyIndex{ID: id, Kind: KindStar, Slot: len(g.stars) - 1})
	return &g.stars[len(g.stars)-1]
}

// takeID returns the next unused ID and advances the counter
func (g *Galaxy) takeID() ID {
	id := g.nextID
	g.nextID++
	return id
}

// NextID returns the ID that will be assigned to the next created body
func (g *Galaxy) NextID() ID {
	return g.nextID
}

// Comets returns every comet in the Galaxy, including those owned by a
// star. The returned slice must be treated as read only.
func (g *Galaxy) Comets() []Comet {
	return g.comets
}

// Planets returns every planet in the Galaxy, including those owned by
// a star. The returned slice must be treated as read only.
func (g *Galaxy) Planets() []Planet {
	return g.planets
}

// Stars returns every star in the Galaxy, including those owned by
// another star. The returned slice must be treated as read only.
func (g *Galaxy) Stars() []Star {
	return g.stars
}

// Len returns the total number of celestial bodies in the Galaxy
func (g *Galaxy) Len() int {
	return g.index.Len()
}

// Index returns the location of the body with the given ID
func (g *Galaxy) Index(id ID) (BodyIndex, bool) {
	it := g.index.Get(BodyIndex{ID: id})
	if it == nil {
		return BodyIndex{}, false
	}
	return it.(BodyIndex), true
}

// Each calls fn for every body in the Galaxy in ascending ID order.
// Iteration stops early if fn returns false.
func (g *Galaxy) Each(fn func(BodyIndex) bool) {
	g.index.Ascend(func(it btree.Item) bool {
		return fn(it.(BodyIndex))
	})
}

// coreAt returns the shared fields of the body that ref points at
func (g *Galaxy) coreAt(ref BodyIndex) *core {
	switch ref.Kind {
	case KindComet:
		return &g.comets[ref.Slot].core
	case KindPlanet:
		return &g.planets[ref.Slot].core
	case KindStar:
		return &g.stars[ref.Slot].core
	default:
		return nil
	}
}
