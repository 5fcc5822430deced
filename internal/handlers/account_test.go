package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDeleteAccountHandler(t *testing.T) {
	tests := []struct {
		name         string
		svcErr       error
		expectedCode int
		expectedBody map[string]string
	}{
		{"deleted", nil, http.StatusOK, map[string]string{"message": "Deleted"}},
		{"not found", services.ErrUserNotFound, http.StatusNotFound, map[string]string{"detail": "User not found"}},
		{"internal error", errors.New("db down"), http.StatusInternalServerError, map[string]string{"detail": "Internal server error"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockAccountDeleter(ctrl)
			mockSvc.EXPECT().DeleteAccount(gomock.Any(), int64(7)).Return(tt.svcErr)

			w := httptest.NewRecorder()
			NewDeleteAccountHandler(mockSvc).ServeHTTP(w, newAuthedRequest(http.MethodDelete, "/auth/me", "", 7, ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			var resp map[string]string
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestDeleteAccountHandler_NoUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockAccountDeleter(ctrl)

	w := httptest.NewRecorder()
	NewDeleteAccountHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
