package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "jwt-test-secret"

func TestTokenRoundtrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "Alice", "5551234567", testSecret)
	if err != nil {
		t.Fatalf("GenerateToken err = %v", err)
	}

	user, err := ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken err = %v", err)
	}
	if user.ID != userID {
		t.Errorf("ID = %v, want %v", user.ID, userID)
	}
	if user.Name != "Alice" || user.PhoneNumber != "5551234567" {
		t.Errorf("claims = %q/%q", user.Name, user.PhoneNumber)
	}
}

func TestValidateTokenRejections(t *testing.T) {
	userID := uuid.New()
	token, err := GenerateToken(userID, "Alice", "5551234567", testSecret)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{"empty token", "", testSecret, ErrMissingToken},
		{"garbage token", "not.a.token", testSecret, ErrInvalidToken},
		{"wrong secret", token, "another-secret", ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateToken(tt.token, tt.secret)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTokenExpired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	claims := JWTClaims{
		UserID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(past.Add(-TokenTTL)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ValidateToken(token, testSecret); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("err = %v, want %v", err, ErrExpiredToken)
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"well formed", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"empty header", "", ""},
		{"wrong scheme", "Basic abc", ""},
		{"no token", "Bearer", ""},
		{"extra parts", "Bearer abc def", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTokenFromHeader(tt.header); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
