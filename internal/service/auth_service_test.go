package service

import (
	"errors"
	"testing"

	"github.com/certsprint/ppt-lms-backend/internal/config"
)

func testAuthService() *AuthService {
	cfg := &config.Config{BcryptCost: 4, JWTSecret: "test-secret"}
	return NewAuthService(cfg, nil)
}

func TestPasswordHashing(t *testing.T) {
	svc := testAuthService()

	hash, err := svc.HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("hash equals plaintext")
	}

	if err := svc.CheckPassword(hash, "correct horse battery"); err != nil {
		t.Errorf("CheckPassword() with right password = %v", err)
	}
	if err := svc.CheckPassword(hash, "wrong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("CheckPassword() with wrong password = %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := testAuthService()

	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("ValidateToken accepted malformed token")
	}
	if _, err := svc.ValidateToken(""); err == nil {
		t.Error("ValidateToken accepted empty token")
	}
}
