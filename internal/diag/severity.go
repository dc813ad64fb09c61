package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// MarshalText renders the lower-case label used in JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case SevError:
		return []byte("error"), nil
	case SevWarning:
		return []byte("warning"), nil
	default:
		return []byte("info"), nil
	}
}
