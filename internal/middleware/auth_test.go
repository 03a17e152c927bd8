package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/HomeDecore/decor-booking-api/internal/config"
)

func newAuthRig(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "test-secret"}

	r := gin.New()
	r.Use(AuthMiddleware(cfg))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.MustGet(ContextUserEmail)})
	})

	return r, cfg
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthAcceptsValidBearer(t *testing.T) {
	r, cfg := newAuthRig(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg.JWTSecret, jwt.MapClaims{"email": "a@x.com"}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["email"] != "a@x.com" {
		t.Fatalf("email = %q", body["email"])
	}
}

func TestAuthRejectionEnvelope(t *testing.T) {
	r, cfg := newAuthRig(t)

	cases := []struct {
		name     string
		header   string
		wantCode string
	}{
		{"no header", "", "missing_authorization_header"},
		{"not bearer", "Basic abc", "invalid_authorization_header"},
		{"garbage token", "Bearer not.a.jwt", "invalid_token"},
		{
			"wrong secret",
			"Bearer " + signToken(t, "other-secret", jwt.MapClaims{"email": "a@x.com"}),
			"invalid_token",
		},
		{
			"no email claim",
			"Bearer " + signToken(t, cfg.JWTSecret, jwt.MapClaims{"sub": "123"}),
			"invalid_token_payload",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}

			// Same envelope as every other error path.
			var body struct {
				Code    string `json:"error_code"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode %q: %v", w.Body.String(), err)
			}
			if body.Code != c.wantCode {
				t.Fatalf("error_code = %q, want %q", body.Code, c.wantCode)
			}
			if body.Message == "" {
				t.Fatal("message must not be empty")
			}
		})
	}
}
