//go:build unit
// +build unit

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newFakeGoogle(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/token", func(ctx *gin.Context) {
		if ctx.PostForm("code") != "good-code" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid_grant"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"access_token": "access-1", "token_type": "Bearer", "expires_in": 3600})
	})
	router.GET("/userinfo", func(ctx *gin.Context) {
		if ctx.GetHeader("Authorization") != "Bearer access-1" {
			ctx.Status(http.StatusUnauthorized)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"sub":            "google-42",
			"email":          "jane@gmail.com",
			"email_verified": true,
			"name":           "Jane",
			"picture":        "https://lh3.googleusercontent.com/a/jane",
		})
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func newTestGoogleProvider(server *httptest.Server) *googleProvider {
	return newGoogleProvider(&oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8080/api/v1/auth/google/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:   server.URL + "/auth",
			TokenURL:  server.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}, server.URL+"/userinfo")
}

func TestGoogleProvider_AuthCodeURL(t *testing.T) {
	provider := newTestGoogleProvider(newFakeGoogle(t))

	parsed, err := url.Parse(provider.AuthCodeURL("state-123"))
	require.NoError(t, err)
	assert.Equal(t, "state-123", parsed.Query().Get("state"))
	assert.Equal(t, "client", parsed.Query().Get("client_id"))
}

func TestGoogleProvider_Exchange(t *testing.T) {
	provider := newTestGoogleProvider(newFakeGoogle(t))

	identity, err := provider.Exchange(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, users.ProviderGoogle, identity.Provider)
	assert.Equal(t, "google-42", identity.Subject)
	assert.Equal(t, "jane@gmail.com", identity.Email)
	assert.True(t, identity.EmailVerified)

	_, err = provider.Exchange(context.Background(), "bad-code")
	assert.Error(t, err)
}

func TestNewGoogleProvider_RequiresCredentials(t *testing.T) {
	_, err := NewGoogleProvider(&config.AuthSettings{JWTSecret: testSecret})
	assert.Error(t, err)
}
