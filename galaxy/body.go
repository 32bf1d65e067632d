package galaxy

import "time"

// core carries the features every celestial body shares: a unique ID,
// an optional parent, a title, a description, and the current status
// along with the history of every status change.
type core struct {
	ID          ID              `json:"id"`
	Parent      *ID             `json:"parent"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      Status          `json:"status"`
	History     []StatusHistory `json:"history"`
}

func newCore(id ID) core {
	return core{ID: id, History: []StatusHistory{}}
}

// SetStatus changes the status of the celestial body and records the
// change in its history. comment should explain why the status
// changed.
func (c *core) SetStatus(status Status, comment string) {
	c.History = append(c.History, StatusHistory{
		Old:     c.Status,
		New:     status,
		Comment: comment,
		Time:    time.Now(),
	})
	c.Status = status
}

// Comet is an interrupting task or bug. Comets should be small and
// compact. They only carry the core features because they are meant to
// go from Todo to Done quickly.
type Comet struct {
	core
}

// Planet is the basic unit of work.
//
// In addition to the core features, Planets carry user defined tags
// and fields. Both can be used for searching, filtering, or labeling
// and do not affect the Planet otherwise.
type Planet struct {
	core

	Tags   []string          `json:"tags"`
	Fields map[string]string `json:"fields"`
}

// Star is a collection of other celestial bodies. Stars can contain
// Comets, Planets, and even other Stars. They are meant to separate
// work into organized groups.
type Star struct {
	core

	// Children holds the ids of the celestial bodies directly owned by
	// this star, in display order.
	Children []ID `json:"children"`
}
