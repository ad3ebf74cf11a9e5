package helpers

import (
	"errors"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"

	"smart-order/models"
)

// SignedDetails is the session carried in the JWT. There is no server-side
// session record; the claims are the session object, created at login and
// discarded when the token expires or the client drops it.
type SignedDetails struct {
	Uid   string
	Name  string
	Email string
	Role  models.UserRole
	jwt.StandardClaims
}

var ErrInvalidToken = errors.New("token is invalid or expired")

func secretKey() []byte {
	return []byte(os.Getenv("SECRET_KEY"))
}

// GenerateAllTokens issues the access token and a longer-lived refresh token
// for a logged-in user.
func GenerateAllTokens(user *models.User) (signedToken string, signedRefreshToken string, err error) {
	claims := SignedDetails{
		Uid:   user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}
	refreshClaims := SignedDetails{
		Uid: user.ID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey())
	if err != nil {
		return "", "", err
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(secretKey())
	if err != nil {
		return "", "", err
	}
	return token, refreshToken, nil
}

func ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			return secretKey(), nil
		},
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
