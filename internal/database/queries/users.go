package queries

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/inventory-project/inventory-server/internal/auth"
	"github.com/inventory-project/inventory-server/internal/models"
)

type UserQueries struct {
	db *sqlx.DB
}

func NewUserQueries(db *sqlx.DB) *UserQueries {
	return &UserQueries{db: db}
}

// CreateUser inserts a new user with a hashed password. Username and
// email uniqueness is enforced by the database constraints, not a
// pre-check, so concurrent signups cannot race past it.
func (q *UserQueries) CreateUser(username, email, password string) (*models.User, error) {
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	query := `
		INSERT INTO users (
			id, username, email, password_hash, created_at
		) VALUES (
			:id, :username, :email, :password_hash, :created_at
		)
	`

	if _, err := q.db.NamedExec(query, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEntry
		}
		return nil, err
	}

	return user, nil
}

// GetUserByUsername retrieves a user by username
func (q *UserQueries) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	query := `SELECT * FROM users WHERE username = $1`
	if err := q.db.Get(&user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (q *UserQueries) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	query := `SELECT * FROM users WHERE id = $1`
	if err := q.db.Get(&user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// VerifyCredentials checks a username/password pair and records the
// login. Unknown usernames and wrong passwords both come back as
// ErrInvalidCredentials so callers cannot probe for accounts.
func (q *UserQueries) VerifyCredentials(username, password, loginIP string) (*models.User, error) {
	user, err := q.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	// Best-effort side record: a failed history write never blocks a
	// valid login.
	if err := q.recordLogin(user.ID, loginIP); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).
			Warn("Failed to record login history")
	}

	// Don't return password hash
	user.PasswordHash = ""
	return user, nil
}

func (q *UserQueries) recordLogin(userID uuid.UUID, loginIP string) error {
	entry := &models.LoginHistory{
		ID:        uuid.New(),
		UserID:    userID,
		LoginTime: time.Now().UTC(),
	}
	if loginIP != "" {
		entry.LoginIP = &loginIP
	}

	query := `
		INSERT INTO login_history (id, user_id, login_time, login_ip)
		VALUES (:id, :user_id, :login_time, :login_ip)
	`
	_, err := q.db.NamedExec(query, entry)
	return err
}
