package repository

import (
	"context"
	"ctchen222/user-auth/internal/api/models"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -destination=mocks/user_repository.go -package=mocks ctchen222/user-auth/internal/api/repository UserRepository

var tracer = otel.Tracer("repository.user")

// ErrEmailTaken is returned by CreateUser when the email is already stored.
var ErrEmailTaken = errors.New("email already taken")

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	EmailExists(ctx context.Context, email string) (bool, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type sqliteUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new SQLite-based UserRepository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

// CreateUser hashes the password and inserts a new user into the database.
// On success user.ID holds the assigned key.
func (r *sqliteUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	ctx, span := tracer.Start(ctx, "UserRepository.CreateUser")
	defer span.End()

	hashedPassword, err := HashPassword(password)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "hash password")
		return err
	}
	user.PasswordHash = hashedPassword

	query := `INSERT INTO users (first_name, last_name, email, password_hash, phone_number, profile_picture)
		VALUES (:first_name, :last_name, :email, :password_hash, :phone_number, :profile_picture)`
	res, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert user")
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	user.ID = id
	return nil
}

// EmailExists reports whether a user with the given email is stored.
func (r *sqliteUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.EmailExists")
	defer span.End()

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query email")
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// GetUserByEmail retrieves a user from the database by their email.
func (r *sqliteUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.GetUserByEmail")
	defer span.End()

	var user models.User
	query := `SELECT id, first_name, last_name, email, password_hash, phone_number, profile_picture, created_at
		FROM users WHERE email = ?`
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // No user found is not an application error
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "query user")
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
