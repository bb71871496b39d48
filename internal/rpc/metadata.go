package rpc

import (
	"context"

	"github.com/dmitrijs2005/authslice/internal/common"
	"go.opentelemetry.io/otel"
	"google.golang.org/grpc/metadata"
)

// metadataCarrier adapts gRPC metadata to the OpenTelemetry TextMapCarrier.
type metadataCarrier metadata.MD

func (c metadataCarrier) Get(key string) string {
	values := metadata.MD(c).Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (c metadataCarrier) Set(key, value string) {
	metadata.MD(c).Set(key, value)
}

func (c metadataCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}

// OutgoingContext copies the request id and trace context of ctx into
// outgoing gRPC metadata.
func OutgoingContext(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	if id := common.RequestIDFrom(ctx); id != "" {
		md.Set(common.RequestIDHeaderName, id)
	}
	otel.GetTextMapPropagator().Inject(ctx, metadataCarrier(md))
	return metadata.NewOutgoingContext(ctx, md)
}

// IncomingContext restores the request id and trace context sent by the
// caller.
func IncomingContext(ctx context.Context) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx
	}
	if values := md.Get(common.RequestIDHeaderName); len(values) > 0 && values[0] != "" {
		ctx = common.WithRequestID(ctx, values[0])
	}
	return otel.GetTextMapPropagator().Extract(ctx, metadataCarrier(md))
}
