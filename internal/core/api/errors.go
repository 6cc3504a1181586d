package api

import (
	"context"
	"errors"

	"github.com/solatis/cronconv/internal/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusError maps domain errors onto gRPC status codes.
// Invalid input maps to INVALID_ARGUMENT, missing schedules to NOT_FOUND,
// context timeouts to DEADLINE_EXCEEDED, anything else (storage) to UNAVAILABLE.
func statusError(err error) error {
	switch {
	case errors.Is(err, types.ErrInvalidExpression),
		errors.Is(err, types.ErrInvalidFields),
		errors.Is(err, types.ErrInvalidScheduleName):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, types.ErrScheduleNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Unavailable, err.Error())
	}
}
