package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/osu-ultimate/tournament-console/internal/platform/resilience"
	"github.com/osu-ultimate/tournament-console/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "tournament-console"

	// statusClientClosedRequest is what nginx reports when the caller hangs up.
	statusClientClosedRequest = 499
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain       string `json:"domain"`
	Reason       string `json:"reason"`
	Message      string `json:"message"`
	Location     string `json:"location,omitempty"`
	LocationType string `json:"locationType,omitempty"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

var internalError = mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}

// errorClasses is checked in order; the first errors.Is match wins.
var errorClasses = []struct {
	target error
	mapped mappedError
}{
	{usecase.ErrInvalidInput, mappedError{http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"}},
	{usecase.ErrNotFound, mappedError{http.StatusNotFound, "notFound", "NOT_FOUND"}},
	{usecase.ErrUnauthorized, mappedError{http.StatusUnauthorized, "unauthorized", "UNAUTHENTICATED"}},
	{usecase.ErrDependencyUnavailable, mappedError{http.StatusServiceUnavailable, "dependencyUnavailable", "UNAVAILABLE"}},
	{context.DeadlineExceeded, mappedError{http.StatusGatewayTimeout, "deadlineExceeded", "DEADLINE_EXCEEDED"}},
	{context.Canceled, mappedError{statusClientClosedRequest, "cancelled", "CANCELLED"}},
}

func mapError(err error) mappedError {
	for _, class := range errorClasses {
		if errors.Is(err, class.target) {
			return class.mapped
		}
	}
	return internalError
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(_ context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(_ context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	writeErrorBody(w, mapped, publicMessage(err), errorItems(err, mapped))
}

func writeInternalError(_ context.Context, w http.ResponseWriter) {
	const msg = "internal server error"
	writeErrorBody(w, internalError, msg, []googleErrorItem{
		{Domain: errorDomain, Reason: internalError.Reason, Message: msg},
	})
}

func writeErrorBody(w http.ResponseWriter, mapped mappedError, msg string, items []googleErrorItem) {
	writeJSON(w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: msg,
			Status:  mapped.Status,
			Errors:  items,
		},
	})
}

// errorItems lists one entry per failed field for validation errors and a
// single entry carrying the full error chain otherwise.
func errorItems(err error, mapped mappedError) []googleErrorItem {
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return []googleErrorItem{{Domain: errorDomain, Reason: mapped.Reason, Message: err.Error()}}
	}

	items := make([]googleErrorItem, 0, len(fields))
	for _, field := range fields {
		items = append(items, googleErrorItem{
			Domain:       errorDomain,
			Reason:       "invalidField",
			Message:      fieldMessage(field),
			Location:     field.Namespace(),
			LocationType: "body",
		})
	}
	return items
}

func fieldMessage(field validator.FieldError) string {
	if field.Param() == "" {
		return fmt.Sprintf("%s failed %q", field.Field(), field.Tag())
	}
	return fmt.Sprintf("%s failed %q (%s)", field.Field(), field.Tag(), field.Param())
}

// publicMessage prefers the message the tournament backend sent, which is
// what the console shows in its error toast.
func publicMessage(err error) string {
	var sc resilience.StatusCoder
	if errors.As(err, &sc) {
		if e, ok := sc.(error); ok && e.Error() != "" {
			return e.Error()
		}
	}
	return err.Error()
}
