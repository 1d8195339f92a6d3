package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/harshadbhandure/money-matters/internal/apperr"
	"github.com/harshadbhandure/money-matters/internal/middleware"
)

// toConnectError converts a domain error into a Connect error. Internal
// failures are logged with their cause and reach the caller as a generic
// message.
func toConnectError(ctx context.Context, logger *slog.Logger, err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperr.KindInternal {
		logger.ErrorContext(ctx, "Request failed",
			"error", err,
			"user_id", middleware.GetUserID(ctx),
		)
		return connect.NewError(connect.CodeInternal, errors.New("internal error"))
	}

	return connect.NewError(codeFor(appErr.Kind), errors.New(appErr.Message))
}

func codeFor(kind apperr.Kind) connect.Code {
	switch kind {
	case apperr.KindBadRequest:
		return connect.CodeInvalidArgument
	case apperr.KindUnauthorized:
		return connect.CodeUnauthenticated
	case apperr.KindForbidden:
		return connect.CodePermissionDenied
	case apperr.KindNotFound:
		return connect.CodeNotFound
	case apperr.KindConflict:
		return connect.CodeAlreadyExists
	default:
		return connect.CodeInternal
	}
}

// currentUser returns the authenticated user ID placed in ctx by
// middleware.RequireAuth.
func currentUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, errors.New("authentication required"))
	}
	return userID, nil
}
