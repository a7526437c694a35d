package get_next_available

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getNextAvailable "github.com/sliques/SLQ-OrderService/internal/usecase/get_next_available"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct{ resp *getNextAvailable.Response }

func (f *fakeUseCase) Execute(ctx context.Context) (*getNextAvailable.Response, error) {
	return f.resp, nil
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{resp: &getNextAvailable.Response{
		Normal: time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC),
		Urgent: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	}}

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/next-available", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body NextAvailableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, NextAvailableResponse{Normal: "2025-03-19", Urgent: "2025-03-12"}, body)
}
