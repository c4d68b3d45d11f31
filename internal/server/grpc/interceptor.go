package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/mealcatalog/internal/common"
	"github.com/dmitrijs2005/mealcatalog/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// withRequestID copies the caller's x-request-id metadata into ctx.
func withRequestID(ctx context.Context) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx
	}
	if ids := md.Get(common.RequestIDHeaderName); len(ids) > 0 {
		return logging.WithRequestID(ctx, ids[0])
	}
	return ctx
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	ctx = withRequestID(ctx)
	start := time.Now()

	resp, err := handler(ctx, req)

	args := []any{"method", info.FullMethod, "duration", time.Since(start), "code", status.Code(err).String()}
	if err != nil {
		s.logger.Warn(ctx, "grpc call failed", append(args, "error", err)...)
	} else {
		s.logger.Debug(ctx, "grpc call", args...)
	}

	return resp, err
}
