package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-job-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAuthedRequest builds a request as AuthMiddleware and the chi router
// would hand it to a handler.
func newAuthedRequest(method, target, body string, userID int64, id string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := middlewares.SetUserIDToContext(req.Context(), userID)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Detail
}

var acme = &models.Application{ID: 3, Company: "Acme", Role: "SWE", Status: models.StatusApplied}

func TestCreateApplicationHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(m *MockApplicationCreator)
		wantCode   int
		wantApp    *models.Application
		wantDetail string
	}{
		{
			name: "status omitted",
			body: `{"company":"Acme","role":"SWE"}`,
			mockSetup: func(m *MockApplicationCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), "Acme", "SWE", models.ApplicationStatus("")).Return(acme, nil)
			},
			wantCode: http.StatusCreated,
			wantApp:  acme,
		},
		{
			name: "explicit status",
			body: `{"company":"Acme","role":"SWE","status":"INTERVIEW"}`,
			mockSetup: func(m *MockApplicationCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), "Acme", "SWE", models.StatusInterview).
					Return(&models.Application{ID: 3, Company: "Acme", Role: "SWE", Status: models.StatusInterview}, nil)
			},
			wantCode: http.StatusCreated,
			wantApp:  &models.Application{ID: 3, Company: "Acme", Role: "SWE", Status: models.StatusInterview},
		},
		{
			name:       "unknown status rejected while decoding",
			body:       `{"company":"Acme","role":"SWE","status":"HIRED"}`,
			wantCode:   http.StatusBadRequest,
			wantDetail: "Invalid status",
		},
		{
			name:       "malformed body",
			body:       `{"company":`,
			wantCode:   http.StatusBadRequest,
			wantDetail: "Invalid request body",
		},
		{
			name: "validation error",
			body: `{"company":"","role":"SWE"}`,
			mockSetup: func(m *MockApplicationCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), "", "SWE", models.ApplicationStatus("")).Return(nil, services.ErrInvalidCompany)
			},
			wantCode:   http.StatusBadRequest,
			wantDetail: "company must be 1-100 characters",
		},
		{
			name: "duplicate",
			body: `{"company":"Acme","role":"SWE"}`,
			mockSetup: func(m *MockApplicationCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), "Acme", "SWE", models.ApplicationStatus("")).Return(nil, services.ErrDuplicateCompanyRole)
			},
			wantCode:   http.StatusConflict,
			wantDetail: "Application with this company and role already exists",
		},
		{
			name: "account deleted after token was issued",
			body: `{"company":"Acme","role":"SWE"}`,
			mockSetup: func(m *MockApplicationCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), "Acme", "SWE", models.ApplicationStatus("")).Return(nil, services.ErrUserNotFound)
			},
			wantCode:   http.StatusUnauthorized,
			wantDetail: "Could not validate credentials",
		},
		{
			name: "internal error",
			body: `{"company":"Acme","role":"SWE"}`,
			mockSetup: func(m *MockApplicationCreator) {
				m.EXPECT().Create(gomock.Any(), int64(1), "Acme", "SWE", models.ApplicationStatus("")).Return(nil, errors.New("db down"))
			},
			wantCode:   http.StatusInternalServerError,
			wantDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockApplicationCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			w := httptest.NewRecorder()
			NewCreateApplicationHandler(mockSvc).ServeHTTP(w, newAuthedRequest(http.MethodPost, "/applications", tt.body, 1, ""))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantApp != nil {
				var got models.Application
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, *tt.wantApp, got)
				return
			}
			assert.Equal(t, tt.wantDetail, decodeDetail(t, w))
		})
	}
}

func TestListApplicationsHandler(t *testing.T) {
	q := "acme"
	rejected := models.StatusRejected

	tests := []struct {
		name       string
		query      string
		wantFilter *models.ApplicationFilter
		svcErr     error
		wantCode   int
		wantDetail string
	}{
		{
			name:       "defaults",
			query:      "",
			wantFilter: &models.ApplicationFilter{Page: 1, Limit: 10, SortBy: "id", SortOrder: "desc"},
			wantCode:   http.StatusOK,
		},
		{
			name:  "all parameters",
			query: "?q=acme&status=REJECTED&page=2&limit=2&sort_by=company&sort_order=asc",
			wantFilter: &models.ApplicationFilter{
				Query: &q, Status: &rejected, Page: 2, Limit: 2, SortBy: "company", SortOrder: "asc",
			},
			wantCode: http.StatusOK,
		},
		{
			name:       "unknown sort field",
			query:      "?sort_by=salary",
			wantFilter: &models.ApplicationFilter{Page: 1, Limit: 10, SortBy: "salary", SortOrder: "desc"},
			svcErr:     services.ErrInvalidSortField,
			wantCode:   http.StatusBadRequest,
			wantDetail: "Invalid sort field",
		},
		{
			name:       "unknown status",
			query:      "?status=HIRED",
			wantCode:   http.StatusBadRequest,
			wantDetail: "Invalid status",
		},
		{
			name:       "non-numeric page",
			query:      "?page=two",
			wantCode:   http.StatusBadRequest,
			wantDetail: "Invalid page",
		},
		{
			name:       "non-numeric limit",
			query:      "?limit=ten",
			wantCode:   http.StatusBadRequest,
			wantDetail: "Invalid limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockApplicationLister(ctrl)

			page := &models.ApplicationPage{Items: []models.Application{*acme}, Total: 1, Page: 1, Limit: 10}
			if tt.wantFilter != nil {
				if tt.svcErr != nil {
					mockSvc.EXPECT().List(gomock.Any(), int64(1), *tt.wantFilter).Return(nil, tt.svcErr)
				} else {
					mockSvc.EXPECT().List(gomock.Any(), int64(1), *tt.wantFilter).Return(page, nil)
				}
			}

			w := httptest.NewRecorder()
			NewListApplicationsHandler(mockSvc).ServeHTTP(w, newAuthedRequest(http.MethodGet, "/applications"+tt.query, "", 1, ""))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				var got models.ApplicationPage
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, *page, got)
				return
			}
			assert.Equal(t, tt.wantDetail, decodeDetail(t, w))
		})
	}
}

func TestListApplicationsHandler_EmptyItemsIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockApplicationLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), int64(1), gomock.Any()).
		Return(&models.ApplicationPage{Items: []models.Application{}, Total: 0, Page: 1, Limit: 10}, nil)

	w := httptest.NewRecorder()
	NewListApplicationsHandler(mockSvc).ServeHTTP(w, newAuthedRequest(http.MethodGet, "/applications", "", 1, ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[],"total":0,"page":1,"limit":10}`, w.Body.String())
}

func TestGetApplicationHandler(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		svcApp     *models.Application
		svcErr     error
		callSvc    bool
		wantCode   int
		wantDetail string
	}{
		{name: "found", id: "3", svcApp: acme, callSvc: true, wantCode: http.StatusOK},
		{name: "not found", id: "3", svcErr: services.ErrApplicationNotFound, callSvc: true, wantCode: http.StatusNotFound, wantDetail: "Application not found"},
		{name: "non-numeric id", id: "abc", wantCode: http.StatusBadRequest, wantDetail: "Invalid application id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockApplicationGetter(ctrl)
			if tt.callSvc {
				mockSvc.EXPECT().Get(gomock.Any(), int64(1), int64(3)).Return(tt.svcApp, tt.svcErr)
			}

			w := httptest.NewRecorder()
			NewGetApplicationHandler(mockSvc).ServeHTTP(w, newAuthedRequest(http.MethodGet, "/applications/"+tt.id, "", 1, tt.id))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.svcApp != nil {
				assert.JSONEq(t, `{"id":3,"company":"Acme","role":"SWE","status":"APPLIED"}`, w.Body.String())
				return
			}
			assert.Equal(t, tt.wantDetail, decodeDetail(t, w))
		})
	}
}

func TestUpdateApplicationHandler(t *testing.T) {
	offer := &models.Application{ID: 3, Company: "Acme", Role: "SWE", Status: models.StatusOffer}

	tests := []struct {
		name       string
		id         string
		body       string
		mockSetup  func(m *MockApplicationUpdater)
		wantCode   int
		wantDetail string
	}{
		{
			name: "updated",
			id:   "3",
			body: `{"company":"Acme","role":"SWE","status":"OFFER"}`,
			mockSetup: func(m *MockApplicationUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(1), int64(3), "Acme", "SWE", models.StatusOffer).Return(offer, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "not found",
			id:   "3",
			body: `{"company":"Acme","role":"SWE","status":"OFFER"}`,
			mockSetup: func(m *MockApplicationUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(1), int64(3), "Acme", "SWE", models.StatusOffer).Return(nil, services.ErrApplicationNotFound)
			},
			wantCode:   http.StatusNotFound,
			wantDetail: "Application not found",
		},
		{
			name: "duplicate",
			id:   "3",
			body: `{"company":"Acme","role":"SWE","status":"OFFER"}`,
			mockSetup: func(m *MockApplicationUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(1), int64(3), "Acme", "SWE", models.StatusOffer).Return(nil, services.ErrDuplicateCompanyRole)
			},
			wantCode:   http.StatusConflict,
			wantDetail: "Application with this company and role already exists",
		},
		{
			name:       "unknown status",
			id:         "3",
			body:       `{"company":"Acme","role":"SWE","status":"GHOSTED"}`,
			wantCode:   http.StatusBadRequest,
			wantDetail: "Invalid status",
		},
		{
			name:       "non-numeric id",
			id:         "x",
			body:       `{"company":"Acme","role":"SWE","status":"OFFER"}`,
			wantCode:   http.StatusBadRequest,
			wantDetail: "Invalid application id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockSvc := NewMockApplicationUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			w := httptest.NewRecorder()
			NewUpdateApplicationHandler(mockSvc).ServeHTTP(w, newAuthedRequest(http.MethodPut, "/applications/"+tt.id, tt.body, 1, tt.id))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.JSONEq(t, `{"id":3,"company":"Acme","role":"SWE","status":"OFFER"}`, w.Body.String())
				return
			}
			assert.Equal(t, tt.wantDetail, decodeDetail(t, w))
		})
	}
}

func TestDeleteApplicationHandler(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockSvc := NewMockApplicationDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), int64(1), int64(3)).Return(nil)

		w := httptest.NewRecorder()
		NewDeleteApplicationHandler(mockSvc).ServeHTTP(w, newAuthedRequest(http.MethodDelete, "/applications/3", "", 1, "3"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Deleted"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockSvc := NewMockApplicationDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), int64(1), int64(3)).Return(services.ErrApplicationNotFound)

		w := httptest.NewRecorder()
		NewDeleteApplicationHandler(mockSvc).ServeHTTP(w, newAuthedRequest(http.MethodDelete, "/applications/3", "", 1, "3"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Application not found", decodeDetail(t, w))
	})
}
