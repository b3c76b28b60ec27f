package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/rank-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
)

const (
	usersTable = "users"
)

var userColumns = []string{
	"id",
	"name",
	"lastname",
	"email",
	"password_hash",
	"active",
	"role_id",
	"limit_keywords",
	"created_at",
	"updated_at",
}

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
	ConsumeKeywordQuota(ctx context.Context, userID int, amount int) (int, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUserBy(ctx, squirrel.Eq{"email": email})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	return r.getUserBy(ctx, squirrel.Eq{"id": userID})
}

// ConsumeKeywordQuota debita a cota de palavras-chave do usuário de forma
// atômica e retorna o saldo restante. Retorna ErrInsufficientQuota quando o
// saldo não cobre a quantidade pedida.
func (r *userRepository) ConsumeKeywordQuota(ctx context.Context, userID int, amount int) (int, error) {
	sqlQuery, args, err := squirrel.
		Update(usersTable).
		Set("limit_keywords", squirrel.Expr("limit_keywords - ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		Where(squirrel.Expr("limit_keywords >= ?", amount)).
		Suffix("RETURNING limit_keywords").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var remaining int
	err = r.conn.DB.QueryRowContext(ctx, sqlQuery, args...).Scan(&remaining)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, domain.ErrInsufficientQuota
		}
		return 0, fmt.Errorf("erro ao debitar cota de palavras-chave: %w", err)
	}

	return remaining, nil
}

func (r *userRepository) getUserBy(ctx context.Context, clause squirrel.Eq) (*domain.User, error) {
	sqlQuery, args, err := squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(clause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var user domain.User
	err = r.conn.DB.QueryRowContext(ctx, sqlQuery, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.LimitKeywords,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return &user, nil
}
