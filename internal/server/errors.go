package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"codeberg.org/snonux/imagelabel/internal/analyzer"
	"codeberg.org/snonux/imagelabel/internal/fetch"
	"codeberg.org/snonux/imagelabel/internal/format"
	"codeberg.org/snonux/imagelabel/internal/label"
	"codeberg.org/snonux/imagelabel/internal/translation"
)

// InternalErrorBody is the only failure text callers ever see
const InternalErrorBody = "Internal server error"

// Response is the {statusCode, body} pair returned to callers
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// MapError logs the full failure and maps it to the generic error response.
// Stage, provider and cause never leave the process.
func MapError(err error, log *zap.Logger) Response {
	fields := []zap.Field{zap.Error(err)}

	var stageErr *analyzer.StageError
	if errors.As(err, &stageErr) {
		fields = append(fields, zap.String("stage", string(stageErr.Stage)))
	}

	var (
		fetchErr *fetch.FetchError
		detErr   *label.DetectionError
		trErr    *translation.TranslationError
		alignErr *format.AlignmentError
	)
	switch {
	case errors.As(err, &fetchErr):
		fields = append(fields, zap.String("kind", "fetch"), zap.Int("upstream_status", fetchErr.StatusCode))
	case errors.As(err, &detErr):
		fields = append(fields, zap.String("kind", "detection"), zap.String("provider", detErr.Provider))
	case errors.As(err, &trErr):
		fields = append(fields, zap.String("kind", "translation"), zap.String("provider", trErr.Provider))
	case errors.As(err, &alignErr):
		fields = append(fields, zap.String("kind", "alignment"),
			zap.Int("names", alignErr.Names), zap.Int("labels", alignErr.Labels))
	default:
		fields = append(fields, zap.String("kind", "unknown"))
	}

	log.Error("Request failed", fields...)

	return Response{
		StatusCode: http.StatusInternalServerError,
		Body:       InternalErrorBody,
	}
}
