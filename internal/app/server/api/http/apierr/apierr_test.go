package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"collectionhub/internal/domain/errs"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func statusOf(t *testing.T, err error) *huma.ErrorModel {
	t.Helper()
	var model *huma.ErrorModel
	require.True(t, errors.As(err, &model), "expected huma.ErrorModel, got %T", err)
	return model
}

func TestFrom_Statuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", errs.New(errs.ErrNotFound, "collection not found"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", errs.New(errs.ErrNotFound, "x")), http.StatusNotFound},
		{"forbidden", errs.New(errs.ErrForbidden, "nope"), http.StatusForbidden},
		{"unauthorized", errs.New(errs.ErrUnauthorized, "invalid credentials"), http.StatusUnauthorized},
		{"conflict", errs.New(errs.ErrConflict, "exists"), http.StatusConflict},
		{"unavailable", errs.New(errs.ErrUnavailable, "off"), http.StatusServiceUnavailable},
		{"bare invalid", errs.New(errs.ErrInvalidInput, "bad seed"), http.StatusBadRequest},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := statusOf(t, From(slog.Default(), tt.err))
			assert.Equal(t, tt.status, model.Status)
		})
	}
}

func TestFrom_InternalIsGeneric(t *testing.T) {
	model := statusOf(t, From(slog.Default(), errors.New("pq: password authentication failed")))
	assert.Equal(t, "Internal Server Error", model.Detail)
	assert.Empty(t, model.Errors)
}

func TestFrom_ValidationFields(t *testing.T) {
	var verr errs.ValidationError
	verr.Add("name", "Name is required")
	verr.Add("image", "Image must be a valid URL")

	model := statusOf(t, From(nil, verr.Err()))
	assert.Equal(t, http.StatusBadRequest, model.Status)
	require.Len(t, model.Errors, 2)
	assert.Equal(t, "body.name", model.Errors[0].Location)
	assert.Equal(t, "Name is required", model.Errors[0].Message)
	assert.Equal(t, "body.image", model.Errors[1].Location)
}

func TestFrom_Nil(t *testing.T) {
	assert.NoError(t, From(nil, nil))
}

func TestNewError_RemapsUnprocessable(t *testing.T) {
	err := huma.NewError(http.StatusUnprocessableEntity, "validation failed")
	assert.Equal(t, http.StatusBadRequest, err.GetStatus())
}

func TestParseID(t *testing.T) {
	id := uuid.New()
	got, err := ParseID(id.String(), "collection")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseID("42", "collection")
	model := statusOf(t, err)
	assert.Equal(t, http.StatusNotFound, model.Status)
	assert.Equal(t, "collection not found", model.Detail)
}
