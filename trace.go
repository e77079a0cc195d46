package ink

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ink'.
func tracer() tracing.Trace {
	return tracing.Select("ink")
}
