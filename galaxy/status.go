package galaxy

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Status tracks where a celestial body is in its lifecycle.
//
// The usual progression is Todo -> Next -> Start -> Done. Block, Hold,
// and Cancel exist for work that cannot follow the happy path. Only
// Done and Cancel are final states.
type Status int

const (
	StatusTodo   Status = iota // no work started, still in the backlog
	StatusBlock                // cannot be started due to a prerequisite
	StatusNext                 // staged to start once current work is done
	StatusStart                // currently being worked on
	StatusHold                 // paused for some reason
	StatusDone                 // completed
	StatusCancel               // canceled for some reason
)

// String returns the name of the status as it appears in the database
func (s Status) String() string {
	switch s {
	case StatusTodo:
		return "Todo"
	case StatusBlock:
		return "Block"
	case StatusNext:
		return "Next"
	case StatusStart:
		return "Start"
	case StatusHold:
		return "Hold"
	case StatusDone:
		return "Done"
	case StatusCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// ParseStatus converts the name of a status back into a Status
func ParseStatus(name string) (Status, error) {
	switch name {
	case "Todo":
		return StatusTodo, nil
	case "Block":
		return StatusBlock, nil
	case "Next":
		return StatusNext, nil
	case "Start":
		return StatusStart, nil
	case "Hold":
		return StatusHold, nil
	case "Done":
		return StatusDone, nil
	case "Cancel":
		return StatusCancel, nil
	default:
		return StatusTodo, errors.Errorf("unknown status '%s'", name)
	}
}

// MarshalJSON implements the json.Marshaler interface
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errors.Wrap(err, "status must be a string")
	}

	v, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// StatusHistory is a single change to a celestial body's status that
// occurred in the past
type StatusHistory struct {
	Old     Status    `json:"old"`
	New     Status    `json:"new"`
	Comment string    `json:"comment"`
	Time    time.Time `json:"time"`
}
