package driver

import "time"

// Status is the state reported for one file.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusFailed
	StatusCached
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusWorking:
		return "working"
	case StatusDone:
		return "done"
	case StatusFailed:
		return "failed"
	case StatusCached:
		return "cached"
	}
	return "unknown"
}

// Event is a progress report for the file at Index of Total.
type Event struct {
	Path    string
	Index   int
	Total   int
	Status  Status
	Elapsed time.Duration
}

// Observer receives events. Implementations must be safe for concurrent use.
type Observer func(Event)

func (o Observer) emit(ev Event) {
	if o != nil {
		o(ev)
	}
}
