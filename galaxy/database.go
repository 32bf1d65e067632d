package galaxy

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	pdebug "github.com/lestrrat-go/pdebug"
	"github.com/pkg/errors"
)

const (
	// schemaVersion is the version of the database format this package
	// reads and writes. Files carrying any other version are rejected.
	schemaVersion = 2

	// DefaultFilename is the name of the database file
	DefaultFilename = ".planit.json"

	// databaseComment is stored in every database file so that someone
	// stumbling over it knows what it is for
	databaseComment = "Database for Planit project. See https://github.com/jac-oblong/planit"
)

// Possible errors when locating or initializing a database
var (
	ErrDatabaseNotFound      = errors.New("database not found")
	ErrDatabaseAlreadyExists = errors.New("database already exists")
)

// database is the on-disk representation of a Galaxy. It only exists
// while loading and saving.
// NOTE: if this struct (or any struct it contains) changes in any way,
// schemaVersion needs to be incremented.
type database struct {
	Version     uint64   `json:"version"`
	Comment     string   `json:"comment"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	NextID      ID       `json:"next_id"`
	Comets      []Comet  `json:"comets"`
	Planets     []Planet `json:"planets"`
	Stars       []Star   `json:"stars"`
}

// Location returns the path of the database file, found by looking in
// the current directory and then in each parent directory in turn.
func Location() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to determine working directory")
	}
	return locationFrom(dir)
}

func locationFrom(dir string) (string, error) {
	for {
		path := filepath.Join(dir, DefaultFilename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Wrapf(ErrDatabaseNotFound, "no %s in the current directory or any parent", DefaultFilename)
		}
		dir = parent
	}
}

// Load reads the Galaxy from the database file found by Location
func Load() (*Galaxy, error) {
	if pdebug.Enabled {
		g := pdebug.Marker("galaxy.Load")
		defer g.End()
	}

	path, err := Location()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", path)
	}
	defer f.Close()

	g, err := LoadFrom(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load database %s", path)
	}
	return g, nil
}

// LoadFrom reads a Galaxy from r. It is split out from Load so that
// loading can be tested without touching the filesystem.
func LoadFrom(r io.Reader) (*Galaxy, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read database")
	}

	// The version is checked before anything else is looked at, so
	// that an old database produces a version error instead of a
	// confusing parse error.
	var header struct {
		Version uint64 `json:"version"`
	}
	if err := json.Unmarshal(buf, &header); err != nil {
		return nil, errors.Wrap(err, "failed to parse database")
	}
	if header.Version != schemaVersion {
		return nil, errors.Errorf("version mismatch for database: expected %d got %d", schemaVersion, header.Version)
	}

	var db database
	if err := json.Unmarshal(buf, &db); err != nil {
		return nil, errors.Wrap(err, "failed to parse database")
	}

	g := New()
	g.Title = db.Title
	g.Description = db.Description
	g.nextID = db.NextID
	if db.Comets != nil {
		g.comets = db.Comets
	}
	if db.Planets != nil {
		g.planets = db.Planets
	}
	if db.Stars != nil {
		g.stars = db.Stars
	}

	for i, c := range g.comets {
		g.index.ReplaceOrInsert(BodyIndex{ID: c.ID, Kind: KindComet, Slot: i})
	}
	for i, p := range g.planets {
		g.index.ReplaceOrInsert(BodyIndex{ID: p.ID, Kind: KindPlanet, Slot: i})
	}
	for i, s := range g.stars {
		g.index.ReplaceOrInsert(BodyIndex{ID: s.ID, Kind: KindStar, Slot: i})
	}
	return g, nil
}

// Init creates a new database file for the Galaxy in the directory
// dir. Unlike Save, it refuses to overwrite an existing database.
func (g *Galaxy) Init(dir string) error {
	if pdebug.Enabled {
		m := pdebug.Marker("Galaxy.Init %s", dir)
		defer m.End()
	}

	path := filepath.Join(dir, DefaultFilename)
	if _, err := os.Stat(path); err == nil {
		return errors.Wrapf(ErrDatabaseAlreadyExists, "%s", path)
	}
	return g.SaveFile(path)
}

// Save writes the Galaxy back to the database file found by Location.
// The old contents are overwritten.
func (g *Galaxy) Save() error {
	if pdebug.Enabled {
		m := pdebug.Marker("Galaxy.Save")
		defer m.End()
	}

	path, err := Location()
	if err != nil {
		return err
	}
	return g.SaveFile(path)
}

// SaveFile writes the Galaxy to the database file at path, creating
// the file if it does not exist and overwriting it if it does.
func (g *Galaxy) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create database %s", path)
	}

	if err := g.SaveTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to save database %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to save database %s", path)
	}
	return nil
}

// SaveTo writes the Galaxy to w. It is split out from Save so that
// saving can be tested without touching the filesystem.
func (g *Galaxy) SaveTo(w io.Writer) error {
	db := database{
		Version:     schemaVersion,
		Comment:     databaseComment,
		Title:       g.Title,
		Description: g.Description,
		NextID:      g.nextID,
		Comets:      g.comets,
		Planets:     g.planets,
		Stars:       g.stars,
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(db); err != nil {
		return errors.Wrap(err, "failed to serialize database")
	}
	return nil
}
