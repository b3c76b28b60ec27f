package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrInsufficientQuota indica que o usuário não tem saldo de palavras-chave
// para a busca pedida
var ErrInsufficientQuota = errors.New("insufficient keyword quota")

type User struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Lastname      string    `json:"lastname"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Active        bool      `json:"active"`
	RoleID        int       `json:"role_id"`
	LimitKeywords int       `json:"limit_keywords"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserActive bool
	UserRoleID int
	jwt.RegisteredClaims
}
