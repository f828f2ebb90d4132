package v1

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	oauthStateCookie = "oauth_state"
	oauthStateTTL    = 10 * time.Minute
)

// CookieSettings controls the session and OAuth state cookies
type CookieSettings struct {
	Name   string
	Secure bool
}

// AuthHandler defines the interface for sign-up, sign-in and session routes
type AuthHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	GoogleLogin(ctx *gin.Context)
	GoogleCallback(ctx *gin.Context)
	Session(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
	cookie      CookieSettings
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService, cookie CookieSettings) AuthHandler {
	return &authHandler{authService: authService, cookie: cookie}
}

// Register creates a credentials account
// @Summary Register a credentials account
// @Description Create a user with email and password and sign in. The session token is returned and set as a cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body users.RegisterInput true "Registration Data"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register [post]
func (handler *authHandler) Register(ctx *gin.Context) {
	var input users.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	session, err := handler.authService.Register(ctx.Request.Context(), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.setSessionCookie(ctx, session)
	ctx.JSON(http.StatusCreated, newSessionResponse(session))
}

// Login signs in with email and password
// @Summary Sign in with email and password
// @Description Verify credentials and issue a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body users.LoginInput true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (handler *authHandler) Login(ctx *gin.Context) {
	var input users.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	session, err := handler.authService.Login(ctx.Request.Context(), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	handler.setSessionCookie(ctx, session)
	ctx.JSON(http.StatusOK, newSessionResponse(session))
}

// Logout clears the session cookie. Bearer tokens simply expire.
// @Summary Sign out
// @Description Clear the session cookie.
// @Tags Auth
// @Success 204
// @Router /auth/logout [post]
func (handler *authHandler) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(handler.cookie.Name, "", -1, "/", "", handler.cookie.Secure, true)
	ctx.Status(http.StatusNoContent)
}

// GoogleLogin redirects to the Google consent page with a fresh state cookie
// @Summary Start a Google sign-in
// @Description Redirect to the Google consent page. A state cookie guards the callback.
// @Tags Auth
// @Success 302
// @Failure 404 {object} ErrorResponse
// @Router /auth/google/login [get]
func (handler *authHandler) GoogleLogin(ctx *gin.Context) {
	state := uuid.NewString()

	url, err := handler.authService.OAuthLoginURL(state)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(oauthStateCookie, state, int(oauthStateTTL.Seconds()), "/", "", handler.cookie.Secure, true)
	ctx.Redirect(http.StatusFound, url)
}

// GoogleCallback verifies the state and completes the sign-in
// @Summary Complete a Google sign-in
// @Description Verify the state cookie, exchange the authorization code and sign the user in.
// @Tags Auth
// @Produce json
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (handler *authHandler) GoogleCallback(ctx *gin.Context) {
	if providerErr := ctx.Query("error"); providerErr != "" {
		respondError(ctx, fmt.Errorf("%w: provider returned %s", apperrors.ErrUnauthorized, providerErr))
		return
	}

	expected, err := ctx.Cookie(oauthStateCookie)
	state := ctx.Query("state")
	if err != nil || expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(state)) != 1 {
		respondBadRequest(ctx, "invalid oauth state")
		return
	}

	session, err := handler.authService.OAuthCallback(ctx.Request.Context(), ctx.Query("code"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(oauthStateCookie, "", -1, "/", "", handler.cookie.Secure, true)
	handler.setSessionCookie(ctx, session)
	ctx.JSON(http.StatusOK, newSessionResponse(session))
}

// Session returns the signed-in user
// @Summary Get the signed-in user
// @Tags Auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/session [get]
func (handler *authHandler) Session(ctx *gin.Context) {
	user, err := handler.authService.CurrentUser(ctx.Request.Context(), userID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newUserResponse(user))
}

func (handler *authHandler) setSessionCookie(ctx *gin.Context, session *users.Session) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	if maxAge <= 0 {
		return
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(handler.cookie.Name, session.Token, maxAge, "/", "", handler.cookie.Secure, true)
}
