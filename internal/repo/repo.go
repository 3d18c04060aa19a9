package repo

import (
	"context"
	"database/sql"
)

type SetupMeta struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
	SaveSetup(ctx context.Context, userID int, name string, params []byte) (int, error)
	ListSetups(ctx context.Context, userID int) ([]SetupMeta, error)
	GetSetup(ctx context.Context, userID, setupID int) (string, []byte, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) SaveSetup(ctx context.Context, userID int, name string, params []byte) (int, error) {
	var id int
	query := "INSERT INTO setups (user_id, name, params) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, name, params).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) ListSetups(ctx context.Context, userID int) ([]SetupMeta, error) {
	query := "SELECT id, name, created_at FROM setups WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var setups []SetupMeta
	for rows.Next() {
		var s SetupMeta
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		setups = append(setups, s)
	}
	return setups, rows.Err()
}

func (r *PostgresUserRepository) GetSetup(ctx context.Context, userID, setupID int) (string, []byte, error) {
	var name string
	var params []byte

	query := "SELECT name, params FROM setups WHERE id=$1 AND user_id=$2"

	err := r.db.QueryRowContext(ctx, query, setupID, userID).Scan(&name, &params)
	if err != nil {
		return "", nil, err
	}
	return name, params, nil
}
