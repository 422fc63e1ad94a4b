package store

import (
	"context"
	"database/sql"

	"github.com/nilotpaul/fanlift-auth/types"
	"github.com/nilotpaul/fanlift-auth/util"
)

// PostgresStore is the self-hosted user backend. Session tokens are signed
// JWTs rather than rows.
type PostgresStore struct {
	db            *sql.DB
	sessionSecret string
}

func NewPostgresStore(db *sql.DB, sessionSecret string) *PostgresStore {
	return &PostgresStore{
		db:            db,
		sessionSecret: sessionSecret,
	}
}

const userColumns = `
	id, email, full_name, subscription_status,
	questionnaire_completed, onboarding_completed, platform_connected,
	created_at
`

func scanUser(row interface{ Scan(...any) error }, u *types.User) error {
	return row.Scan(
		&u.ID,
		&u.Email,
		&u.FullName,
		&u.SubscriptionStatus,
		&u.QuestionnaireCompleted,
		&u.OnboardingCompleted,
		&u.PlatformConnected,
		&u.CreatedAt,
	)
}

// FindUsersByEmail gets the users by `email`, oldest first.
func (s *PostgresStore) FindUsersByEmail(ctx context.Context, email string) ([]types.User, error) {
	const query = `SELECT` + userColumns + `FROM users WHERE email = $1 ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []types.User
	for rows.Next() {
		var u types.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// CreateUser inserts a user row and returns it as stored.
func (s *PostgresStore) CreateUser(ctx context.Context, params types.CreateUserParams) (*types.User, error) {
	const query = `
		INSERT INTO users (
			email,
			full_name,
			subscription_status,
			questionnaire_completed,
			onboarding_completed,
			platform_connected
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING` + userColumns

	var u types.User
	row := s.db.QueryRowContext(
		ctx,
		query,
		params.Email,
		params.FullName,
		params.SubscriptionStatus,
		params.QuestionnaireCompleted,
		params.OnboardingCompleted,
		params.PlatformConnected,
	)
	if err := scanUser(row, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *PostgresStore) GenerateSessionToken(_ context.Context, userID string) (string, error) {
	return util.GenerateSessionToken(userID, s.sessionSecret)
}
