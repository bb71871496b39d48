package logging

import (
	"context"

	"github.com/dmitrijs2005/authslice/internal/common"
	"go.opentelemetry.io/otel/trace"
)

// contextArgs returns the request id and trace id carried by ctx as
// key/value pairs, followed by args.
func contextArgs(ctx context.Context, args []any) []any {
	if ctx == nil {
		return args
	}

	var out []any
	if id := common.RequestIDFrom(ctx); id != "" {
		out = append(out, "request_id", id)
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		out = append(out, "trace_id", sc.TraceID().String())
	}
	if out == nil {
		return args
	}
	return append(out, args...)
}
