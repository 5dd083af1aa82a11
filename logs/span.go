package logs

// Span identifies one unit of work, e.g. a single scan run. Spans travel in
// the context and are attached to every log record emitted under them.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
