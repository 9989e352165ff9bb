package bragfile

// ParseError reports input whose top-level structure could not be
// recognized at all. Malformed individual lines never produce it; they
// degrade to opaque content instead.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parsing bragfile: " + e.Reason
}
