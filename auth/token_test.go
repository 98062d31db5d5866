package auth

import (
	"testing"
	"time"

	"mongolshop/domain"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	req := require.New(t)
	user := domain.User{ID: "u-42", Role: domain.RoleAdmin}

	token, err := GenerateToken(user, 24*time.Hour)
	req.NoError(err)
	req.NotEmpty(token)

	claims, err := ValidateToken(token)
	req.NoError(err)
	req.Equal("u-42", claims.UserID)
	req.Equal(domain.RoleAdmin, claims.Role)
	req.Equal("mongolshop", claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken(domain.User{ID: "u-1", Role: domain.RoleStandard}, -time.Minute)
	req.NoError(err)

	_, err = ValidateToken(token)
	req.Error(err)
}

func TestValidateToken_Garbage(t *testing.T) {
	req := require.New(t)

	_, err := ValidateToken("not.a.token")
	req.Error(err)
}
