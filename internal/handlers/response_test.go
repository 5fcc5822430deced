package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
	"github.com/sbilibin2017/gw-job-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteApplicationError_LogsRequestID(t *testing.T) {
	originalLog := logger.Log
	defer func() { logger.Log = originalLog }()

	core, logs := observer.New(zap.ErrorLevel)
	logger.Log = zap.New(core).Sugar()

	ctrl := gomock.NewController(t)
	mockSvc := NewMockApplicationGetter(ctrl)
	mockSvc.EXPECT().Get(gomock.Any(), int64(1), int64(3)).Return(nil, errors.New("db down"))

	handler := middlewares.LoggingMiddleware(zap.NewNop().Sugar())(NewGetApplicationHandler(mockSvc))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newAuthedRequest(http.MethodGet, "/applications/3", "", 1, "3"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	entries := logs.FilterMessage("internal server error").All()
	require.Len(t, entries, 1)
	reqID := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, reqID)
	assert.Equal(t, reqID, entries[0].ContextMap()["request_id"])
}

func TestWriteApplicationError_OwnerGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockApplicationUpdater(ctrl)
	mockSvc.EXPECT().Update(gomock.Any(), int64(1), int64(3), "Acme", "SWE", models.StatusOffer).
		Return(nil, fmt.Errorf("update: %w", services.ErrUserNotFound))

	w := httptest.NewRecorder()
	body := `{"company":"Acme","role":"SWE","status":"OFFER"}`
	NewUpdateApplicationHandler(mockSvc).ServeHTTP(w, newAuthedRequest(http.MethodPut, "/applications/3", body, 1, "3"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.Equal(t, "Could not validate credentials", decodeDetail(t, w))
}
