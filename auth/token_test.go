package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AashishSahoo/MealMate-backend-Public/models"
)

func TestIssueTokenCarriesPrincipal(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	user := models.User{ID: 9, Email: "owner@test.com", RoleType: models.RoleRestroOwner}
	signed, err := IssueToken(&user)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("token not valid")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	if claims["email"] != "owner@test.com" {
		t.Errorf("wrong email claim %v", claims["email"])
	}
	if claims["roleType"] != string(models.RoleRestroOwner) {
		t.Errorf("wrong role claim %v", claims["roleType"])
	}
	if uint(claims["user_id"].(float64)) != 9 {
		t.Errorf("wrong user id claim %v", claims["user_id"])
	}
}

func TestTokenRejectedUnderWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	user := models.User{ID: 9, Email: "owner@test.com", RoleType: models.RoleCustomer}
	signed, err := IssueToken(&user)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("other_secret"), nil
	}); err == nil {
		t.Fatal("token accepted under the wrong secret")
	}
}
