package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-loyalty/internal/data/entity"
	"shop-loyalty/internal/usecase"
	"shop-loyalty/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fakeSessions returns a canned session (or error) regardless of the request.
type fakeSessions struct {
	session *usecase.Session
	err     error
}

func (f *fakeSessions) Create(context.Context, http.ResponseWriter, *entity.User) (*usecase.Session, error) {
	return f.session, f.err
}

func (f *fakeSessions) Verify(context.Context, *http.Request) (*usecase.Session, error) {
	return f.session, f.err
}

func (f *fakeSessions) Destroy(context.Context, http.ResponseWriter, *http.Request) {}

func (f *fakeSessions) Authorize(session *usecase.Session, roles ...entity.UserRole) bool {
	if session == nil {
		return false
	}
	for _, role := range roles {
		if session.Role == role {
			return true
		}
	}
	return false
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthSessionRejectsAnonymousRequests(t *testing.T) {
	called := false
	handler := AuthSession(&fakeSessions{}, zap.NewNop())(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/loyalty", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler ran without a session")
	}
}

func TestAuthSessionReportsStoreFailures(t *testing.T) {
	called := false
	sessions := &fakeSessions{err: errors.New("db down")}
	handler := AuthSession(sessions, zap.NewNop())(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/loyalty", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if called {
		t.Error("handler ran despite a store failure")
	}
}

func TestAuthSessionPutsIdentityOnContext(t *testing.T) {
	userID := uuid.New()
	sessions := &fakeSessions{session: &usecase.Session{UserID: userID, Role: entity.RoleEmployee}}

	var gotRole string
	handler := AuthSession(sessions, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := utils.GetRoleFromContext(r.Context())
		gotRole = role
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scanner/customers/x", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotRole != string(entity.RoleEmployee) {
		t.Errorf("role on context = %q, want employee", gotRole)
	}
}

func TestRequireRoleGatesByRole(t *testing.T) {
	cases := []struct {
		name    string
		session *usecase.Session
		allowed []entity.UserRole
		want    int
	}{
		{
			name:    "matching role passes",
			session: &usecase.Session{UserID: uuid.New(), Role: entity.RoleAdmin},
			allowed: []entity.UserRole{entity.RoleAdmin},
			want:    http.StatusOK,
		},
		{
			name:    "wrong role is forbidden",
			session: &usecase.Session{UserID: uuid.New(), Role: entity.RoleCustomer},
			allowed: []entity.UserRole{entity.RoleAdmin},
			want:    http.StatusForbidden,
		},
		{
			name:    "any allowed role passes",
			session: &usecase.Session{UserID: uuid.New(), Role: entity.RoleEmployee},
			allowed: []entity.UserRole{entity.RoleAdmin, entity.RoleEmployee},
			want:    http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			chain := AuthSession(&fakeSessions{session: tc.session}, zap.NewNop())(
				RequireRole(zap.NewNop(), tc.allowed...)(okHandler(&called)),
			)

			rec := httptest.NewRecorder()
			chain.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))

			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
			if called != (tc.want == http.StatusOK) {
				t.Errorf("handler called = %v with status %d", called, rec.Code)
			}
		})
	}
}

func TestRequireRoleWithoutAuthSessionIsUnauthorized(t *testing.T) {
	called := false
	handler := RequireRole(zap.NewNop(), entity.RoleAdmin)(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler ran without authentication")
	}
}
