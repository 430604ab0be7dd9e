package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/portfoliohub/backend/internal/auth"
	"github.com/portfoliohub/backend/internal/auth/middleware"
	"github.com/portfoliohub/backend/internal/models"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Register creates a new user account and returns a bearer token for it.
	//
	// The first user ever registered is promoted to Admin regardless of the
	// requested role; later users default to Viewer.
	Register(ctx context.Context, req *models.RegisterRequest) (string, *models.User, error)
	// Method Login authenticates a user and returns a bearer token.
	//
	// Unknown email and wrong password both yield models.ErrInvalidCredentials.
	Login(ctx context.Context, req *models.LoginRequest) (string, *models.User, error)
	// Method Refresh exchanges a currently-valid token for a fresh one.
	Refresh(tokenString string) (string, error)
}

// SessionService is the interface that wraps methods for browser session flows.
type SessionService interface {
	// Method Login verifies credentials and establishes a new session.
	Login(ctx context.Context, req *models.LoginRequest) (*models.Session, *models.User, error)
	// Method Logout invalidates the given session only.
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService    AuthService
	sessionService SessionService
	cookieSecure   bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, sessionService SessionService, cookieSecure bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		authService:    authService,
		sessionService: sessionService,
		cookieSecure:   cookieSecure,
	}
}

// RegisterRoutes registers all auth handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/refresh", h.Refresh)
		r.Get("/me", h.Me)
		r.Post("/verify", h.Verify)
		r.Post("/session", h.SessionLogin)
		r.Delete("/session", h.SessionLogout)
	})
}

// Register handles POST /auth/register
// @Summary Register a new user
// @Description Register a new user with email and password. The first user becomes Admin. Returns a bearer token and the user record.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 201 {object} map[string]any "User registered successfully"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	token, user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		h.Logger.Warn("failed to register user", zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"message": "user registered successfully",
		"token":   token,
		"user":    user,
	})
}

// Login handles POST /auth/login
// @Summary Login user
// @Description Authenticate with email and password. Returns a bearer token and the user record.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} map[string]any "Login successful"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	token, user, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "login successful",
		"token":   token,
		"user":    user,
	})
}

// Refresh handles POST /auth/refresh
// @Summary Refresh bearer token
// @Description Exchange a currently-valid bearer token for a fresh one.
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]string "Token refreshed"
// @Failure 401 {object} map[string]string "Invalid or expired token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	tokenString, err := bearerToken(r)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	newToken, err := h.authService.Refresh(tokenString)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "token refreshed successfully",
		"token":   newToken,
	})
}

// Me handles GET /auth/me
// @Summary Get current user
// @Description Return the user record for the resolved identity (bearer token or session cookie).
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]any "Current user"
// @Failure 401 {object} map[string]string "Authentication required"
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.RespondServiceError(w, models.ErrUnauthenticated)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{"user": user})
}

// Verify handles POST /auth/verify
// @Summary Verify identity
// @Description Confirm that the presented token or session resolves to a user.
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]any "Identity valid"
// @Failure 401 {object} map[string]string "Authentication required"
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.RespondServiceError(w, models.ErrUnauthenticated)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{"valid": true, "user": user})
}

// SessionLogin handles POST /auth/session
// @Summary Browser login
// @Description Authenticate with email and password and establish a session cookie. The remember flag extends the session to the configured maximum.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} map[string]any "Session established"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/session [post]
func (h *AuthHandler) SessionLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := h.DecodeJSON(r, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	session, user, err := h.sessionService.Login(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "login successful",
		"user":    user,
	})
}

// SessionLogout handles DELETE /auth/session
// @Summary Browser logout
// @Description Invalidate the current session and clear the cookie. Other sessions and bearer tokens stay valid.
// @Tags auth
// @Produce json
// @Success 204 "Session invalidated"
// @Failure 401 {object} map[string]string "No active session"
// @Router /auth/session [delete]
func (h *AuthHandler) SessionLogout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err != nil || cookie.Value == "" {
		h.RespondServiceError(w, models.ErrUnauthenticated)
		return
	}

	if err := h.sessionService.Logout(r.Context(), cookie.Value); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

// bearerToken extracts the token from the Authorization header.
// A missing header is an unauthenticated request; a header without the
// expected "Bearer" scheme prefix is a malformed token.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", models.ErrUnauthenticated
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", models.ErrTokenMalformed
	}

	return parts[1], nil
}
