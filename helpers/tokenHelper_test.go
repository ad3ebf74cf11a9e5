package helpers

import (
	"testing"

	"smart-order/models"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET_KEY", "round-trip")

	user := &models.User{ID: "u1", Name: "Ana", Email: "ana@smartorder", Role: models.RoleWaiter}
	token, refresh, err := GenerateAllTokens(user)
	if err != nil {
		t.Fatalf("GenerateAllTokens: %v", err)
	}
	if token == refresh {
		t.Fatal("access and refresh tokens are identical")
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Uid != "u1" || claims.Email != "ana@smartorder" || claims.Role != models.RoleWaiter {
		t.Fatalf("claims = %+v", claims)
	}

	refreshClaims, err := ValidateToken(refresh)
	if err != nil {
		t.Fatalf("ValidateToken(refresh): %v", err)
	}
	if refreshClaims.Uid != "u1" {
		t.Fatalf("refresh claims uid = %q", refreshClaims.Uid)
	}
	if refreshClaims.Email != "" {
		t.Fatalf("refresh token carries profile claims: %+v", refreshClaims)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SECRET_KEY", "round-trip")
	if _, err := ValidateToken("definitely.not.ajwt"); err != ErrInvalidToken {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
