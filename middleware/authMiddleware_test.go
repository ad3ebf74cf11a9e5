package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-order/helpers"
	"smart-order/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(capability Capability) *gin.Engine {
	r := gin.New()
	r.GET("/protected", Authentication(), RequireCapability(capability), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString("uid")})
	})
	return r
}

func TestAuthenticationAndCapabilityGate(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	kitchenToken, _, err := helpers.GenerateAllTokens(&models.User{
		ID: "u1", Name: "Kim", Email: "kim@smartorder", Role: models.RoleKitchen,
	})
	if err != nil {
		t.Fatalf("GenerateAllTokens: %v", err)
	}

	tests := []struct {
		name       string
		capability Capability
		token      string
		want       int
	}{
		{"no token", CapKitchen, "", http.StatusUnauthorized},
		{"garbage token", CapKitchen, "not-a-jwt", http.StatusUnauthorized},
		{"allowed surface", CapKitchen, kitchenToken, http.StatusOK},
		{"forbidden surface", CapUsers, kitchenToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.token != "" {
				req.Header.Set("token", tt.token)
			}
			w := httptest.NewRecorder()
			protectedRouter(tt.capability).ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestAuthenticationRejectsTokenSignedWithOtherKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "key-one")
	token, _, err := helpers.GenerateAllTokens(&models.User{ID: "u2", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateAllTokens: %v", err)
	}

	t.Setenv("SECRET_KEY", "key-two")
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("token", token)
	w := httptest.NewRecorder()
	protectedRouter(CapUsers).ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
