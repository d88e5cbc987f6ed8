package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-loyalty/internal/data/entity"
	"shop-loyalty/pkg/utils"

	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newSessionConfig(expiryHours int) *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{Env: "development"},
		Session: utils.SessionConfig{
			Secret:      testSecret,
			ExpiryHours: expiryHours,
			CookieName:  "session",
		},
	}
}

func newSessionFixture(t *testing.T, user *entity.User, expiryHours int) (SessionService, *fakeUserRepo, *fakeSessionRepo) {
	t.Helper()
	users := newFakeUserRepo(user)
	repo, sessions, _ := newTestRepo(users)
	return NewSessionService(repo, newSessionConfig(expiryHours), zap.NewNop()), users, sessions
}

// sessionCookie pulls the session cookie out of a recorded response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func requestWithCookie(cookie *http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/loyalty", nil)
	r.AddCookie(cookie)
	return r
}

func TestSessionRoundTrip(t *testing.T) {
	user := newTestUser(entity.RoleCustomer, 5)
	svc, _, store := newSessionFixture(t, user, 24)

	rec := httptest.NewRecorder()
	created, err := svc.Create(context.Background(), rec, user)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.UserID != user.ID || created.Role != entity.RoleCustomer {
		t.Errorf("created session = %+v", created)
	}
	if len(store.created) != 1 {
		t.Errorf("server-side records = %d, want 1", len(store.created))
	}

	cookie := sessionCookie(t, rec)
	session, err := svc.Verify(context.Background(), requestWithCookie(cookie))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if session == nil {
		t.Fatal("Verify returned nil for a fresh session")
	}
	if session.UserID != user.ID {
		t.Errorf("UserID = %s, want %s", session.UserID, user.ID)
	}
	if session.Role != entity.RoleCustomer {
		t.Errorf("Role = %s, want customer", session.Role)
	}
	if session.User == nil || session.User.Points != 5 {
		t.Errorf("session user not resolved from store: %+v", session.User)
	}

	// Verification does not consume the session
	again, err := svc.Verify(context.Background(), requestWithCookie(cookie))
	if err != nil || again == nil {
		t.Fatalf("second Verify = (%v, %v), want a session", again, err)
	}
}

func TestSessionCookieAttributes(t *testing.T) {
	user := newTestUser(entity.RoleCustomer, 0)
	svc, _, _ := newSessionFixture(t, user, 24)

	rec := httptest.NewRecorder()
	if _, err := svc.Create(context.Background(), rec, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	cookie := sessionCookie(t, rec)
	if !cookie.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if cookie.Path != "/" {
		t.Errorf("Path = %q, want /", cookie.Path)
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("SameSite = %v, want Lax", cookie.SameSite)
	}
	if cookie.Secure {
		t.Error("Secure must be off outside production")
	}
}

func TestVerifyRejectsInvalidCookies(t *testing.T) {
	user := newTestUser(entity.RoleCustomer, 0)
	svc, _, _ := newSessionFixture(t, user, 24)

	rec := httptest.NewRecorder()
	if _, err := svc.Create(context.Background(), rec, user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	cookie := sessionCookie(t, rec)

	t.Run("missing cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/loyalty", nil)
		session, err := svc.Verify(context.Background(), r)
		if session != nil || err != nil {
			t.Errorf("got (%v, %v), want (nil, nil)", session, err)
		}
	})

	t.Run("tampered token", func(t *testing.T) {
		bad := *cookie
		bad.Value = cookie.Value + "x"
		session, err := svc.Verify(context.Background(), requestWithCookie(&bad))
		if session != nil || err != nil {
			t.Errorf("got (%v, %v), want (nil, nil)", session, err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		users := newFakeUserRepo(user)
		repo, _, _ := newTestRepo(users)
		otherConfig := newSessionConfig(24)
		otherConfig.Session.Secret = "ffffffffffffffffffffffffffffffff"
		other := NewSessionService(repo, otherConfig, zap.NewNop())

		session, err := other.Verify(context.Background(), requestWithCookie(cookie))
		if session != nil || err != nil {
			t.Errorf("got (%v, %v), want (nil, nil)", session, err)
		}
	})
}

func TestVerifyRejectsExpiredSession(t *testing.T) {
	user := newTestUser(entity.RoleCustomer, 0)
	svc, _, _ := newSessionFixture(t, user, -1)

	rec := httptest.NewRecorder()
	if _, err := svc.Create(context.Background(), rec, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	session, err := svc.Verify(context.Background(), requestWithCookie(sessionCookie(t, rec)))
	if session != nil || err != nil {
		t.Errorf("expired session: got (%v, %v), want (nil, nil)", session, err)
	}
}

func TestVerifyRejectsDeletedUser(t *testing.T) {
	user := newTestUser(entity.RoleCustomer, 0)
	svc, users, _ := newSessionFixture(t, user, 24)

	rec := httptest.NewRecorder()
	if _, err := svc.Create(context.Background(), rec, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := users.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	session, err := svc.Verify(context.Background(), requestWithCookie(sessionCookie(t, rec)))
	if session != nil || err != nil {
		t.Errorf("deleted user: got (%v, %v), want (nil, nil)", session, err)
	}
}

func TestDestroyExpiresCookieAndRevokes(t *testing.T) {
	user := newTestUser(entity.RoleCustomer, 0)
	svc, _, store := newSessionFixture(t, user, 24)

	rec := httptest.NewRecorder()
	if _, err := svc.Create(context.Background(), rec, user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	cookie := sessionCookie(t, rec)

	out := httptest.NewRecorder()
	svc.Destroy(context.Background(), out, requestWithCookie(cookie))

	cleared := sessionCookie(t, out)
	if cleared.Value != "" || cleared.MaxAge >= 0 {
		t.Errorf("logout cookie = %+v, want cleared and expired", cleared)
	}
	if len(store.revoked) != 1 || store.revoked[0] != user.ID {
		t.Errorf("revoked = %v, want [%s]", store.revoked, user.ID)
	}
}

func TestAuthorize(t *testing.T) {
	user := newTestUser(entity.RoleEmployee, 0)
	svc, _, _ := newSessionFixture(t, user, 24)

	session := &Session{UserID: user.ID, Role: entity.RoleEmployee}

	if !svc.Authorize(session, entity.RoleEmployee) {
		t.Error("employee role denied its own gate")
	}
	if !svc.Authorize(session, entity.RoleAdmin, entity.RoleEmployee) {
		t.Error("role denied on a multi-role gate that includes it")
	}
	if svc.Authorize(session, entity.RoleAdmin) {
		t.Error("employee passed an admin-only gate")
	}
	if svc.Authorize(nil, entity.RoleCustomer) {
		t.Error("nil session passed a gate")
	}
}
