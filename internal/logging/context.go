package logging

import "context"

// RequestIDKey is the attribute name under which the request id is logged.
const RequestIDKey = "request_id"

type requestIDCtxKey struct{}

// WithRequestID returns a copy of ctx carrying id. Every Logger method called
// with the returned context adds it as RequestIDKey.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDCtxKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDCtxKey{}).(string)
	return id
}

// contextArgs appends the request id found in ctx to args.
func contextArgs(ctx context.Context, args []any) []any {
	id := RequestID(ctx)
	if id == "" {
		return args
	}
	out := make([]any, 0, len(args)+2)
	return append(append(out, args...), RequestIDKey, id)
}
