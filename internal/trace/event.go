package trace

import "time"

// Kind is the kind of an Event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	}
	return "unknown"
}

// Scope orders events from coarse to fine.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // one command invocation
	ScopePass                    // a batch step such as glob expansion
	ScopeFile                    // work on a single stylesheet
	ScopeNode                    // tree-level detail
)

func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePass:
		return "pass"
	case ScopeFile:
		return "file"
	case ScopeNode:
		return "node"
	}
	return "unknown"
}

// Event is a single trace record.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for top-level spans
	Name     string // "parse", "stringify", "file:a.css"
	Detail   string
	Extra    map[string]string
}
