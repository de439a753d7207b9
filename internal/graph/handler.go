package graph

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/handler"

	"healthtrack/internal/auth"
	"healthtrack/internal/records"
)

// loggableErrors are resolver errors whose messages never echo request input.
var loggableErrors = []error{
	auth.ErrUserNotFound,
	auth.ErrUserAlreadyExists,
	auth.ErrInvalidCredentials,
	auth.ErrMissingFields,
	auth.ErrMissingLogin,
	auth.ErrInvalidRole,
	auth.ErrInvalidToken,
	auth.ErrExpiredToken,
	records.ErrPatientNotFound,
	records.ErrNurseNotFound,
	records.ErrStoreFailure,
}

// NewHandler serves schema over HTTP with GraphiQL enabled.
func NewHandler(schema *graphql.Schema, logger *slog.Logger) http.Handler {
	return handler.New(&handler.Config{
		Schema:   schema,
		Pretty:   true,
		GraphiQL: true,
		ResultCallbackFn: func(ctx context.Context, params *graphql.Params, result *graphql.Result, _ []byte) {
			for _, e := range result.Errors {
				logError(logger, params.OperationName, e)
			}
		},
	})
}

// logError logs known resolver errors by message. Syntax and validation
// errors quote the request source, which may hold a password, so only their
// locations are logged.
func logError(logger *slog.Logger, operation string, e gqlerrors.FormattedError) {
	if err := resolverError(e); err != nil {
		for _, known := range loggableErrors {
			if errors.Is(err, known) {
				logger.Warn("graphql error", "operation", operation, "err", known.Error())
				return
			}
		}
	}
	logger.Warn("graphql request rejected", "operation", operation, "locations", e.Locations)
}

func resolverError(e gqlerrors.FormattedError) error {
	orig := e.OriginalError()
	var located *gqlerrors.Error
	if errors.As(orig, &located) {
		return located.OriginalError
	}
	var value gqlerrors.Error
	if errors.As(orig, &value) {
		return value.OriginalError
	}
	return orig
}
