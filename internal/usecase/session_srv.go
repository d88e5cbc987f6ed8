package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"shop-loyalty/internal/data/entity"
	"shop-loyalty/internal/data/repository"
	"shop-loyalty/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionPayload is the claims set carried by the session cookie.
type SessionPayload struct {
	UserID string          `json:"user_id"`
	Role   entity.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Session is a verified, time-boxed proof of identity and role. It is
// derived from the cookie; the User record stays the source of truth
// for points and rewards.
type Session struct {
	UserID    uuid.UUID
	Role      entity.UserRole
	ExpiresAt time.Time
	User      *entity.User
}

type SessionService interface {
	// Create signs a token binding the user to their role, sets it as the
	// session cookie and records the session for out-of-band revocation.
	Create(ctx context.Context, w http.ResponseWriter, user *entity.User) (*Session, error)

	// Verify reads the cookie and validates signature and expiry. Missing,
	// malformed, tampered and expired cookies all come back as nil session —
	// callers cannot tell these cases apart. The error is non-nil only when
	// the backing store fails while resolving the user.
	Verify(ctx context.Context, r *http.Request) (*Session, error)

	// Destroy expires the cookie and best-effort revokes the user's
	// server-side sessions. Revocation failures are logged, not returned.
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request)

	// Authorize reports whether the session's role is in allowedRoles.
	Authorize(session *Session, allowedRoles ...entity.UserRole) bool
}

type sessionService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewSessionService(repo *repository.Repository, config *utils.Config, log *zap.Logger) SessionService {
	return &sessionService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "session")),
	}
}

func (s *sessionService) Create(ctx context.Context, w http.ResponseWriter, user *entity.User) (*Session, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour)
	sessionID := uuid.New()

	payload := SessionPayload{
		UserID: user.ID.String(),
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID.String(),
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString([]byte(s.config.Session.Secret))
	if err != nil {
		s.log.Error("Failed to sign session token",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	// Server-side record backing revocation and role audit
	record := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        sessionID,
			CreatedAt: now,
		},
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}
	if err := s.repo.Session.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("persist session record: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.Session.CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   s.config.App.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	s.log.Info("Session created",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
		zap.Time("expires_at", expiresAt),
	)

	return &Session{
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func (s *sessionService) Verify(ctx context.Context, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(s.config.Session.CookieName)
	if err != nil {
		return nil, nil
	}

	payload := s.decrypt(cookie.Value)
	if payload == nil {
		return nil, nil
	}

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		return nil, nil
	}

	// Deleted accounts invalidate their sessions
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve session user: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	return &Session{
		UserID:    userID,
		Role:      payload.Role,
		ExpiresAt: payload.ExpiresAt.Time,
		User:      user,
	}, nil
}

func (s *sessionService) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(s.config.Session.CookieName); err == nil {
		if payload := s.decrypt(cookie.Value); payload != nil {
			if userID, err := uuid.Parse(payload.UserID); err == nil {
				if err := s.repo.Session.RevokeAllUserSessions(ctx, userID); err != nil {
					s.log.Warn("Failed to revoke sessions on logout",
						zap.Error(err),
						zap.String("user_id", payload.UserID),
					)
				}
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.Session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.config.App.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *sessionService) Authorize(session *Session, allowedRoles ...entity.UserRole) bool {
	if session == nil {
		return false
	}
	for _, role := range allowedRoles {
		if session.Role == role {
			return true
		}
	}
	return false
}

// decrypt parses and validates a signed token. Any failure (bad signature,
// expired, malformed) yields nil.
func (s *sessionService) decrypt(tokenString string) *SessionPayload {
	payload := &SessionPayload{}

	token, err := jwt.ParseWithClaims(tokenString, payload, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Session.Secret), nil
	})

	if err != nil || !token.Valid {
		return nil
	}

	return payload
}
