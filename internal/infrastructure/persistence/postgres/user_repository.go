package postgres

import (
	"context"
	"database/sql"

	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

type UserRepository struct {
	db *sql.DB

	stmtCreate        *sql.Stmt
	stmtGetByID       *sql.Stmt
	stmtGetByEmail    *sql.Stmt
	stmtExistsByEmail *sql.Stmt
	stmtUpdate        *sql.Stmt
}

func NewUserRepository(db *sql.DB) (*UserRepository, error) {
	r := &UserRepository{db: db}

	var err error
	r.stmtCreate, err = db.PrepareContext(
		context.Background(),
		`INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4)`,
	)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	r.stmtGetByID, err = db.PrepareContext(
		context.Background(),
		`SELECT id, name, email, password_hash, created_at, updated_at FROM users WHERE id = $1`,
	)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	r.stmtGetByEmail, err = db.PrepareContext(
		context.Background(),
		`SELECT id, name, email, password_hash, created_at, updated_at FROM users WHERE email = $1`,
	)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	r.stmtExistsByEmail, err = db.PrepareContext(
		context.Background(),
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
	)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	r.stmtUpdate, err = db.PrepareContext(
		context.Background(),
		`UPDATE users SET name = $2, email = $3, password_hash = $4, updated_at = NOW() WHERE id = $1`,
	)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	return r, nil
}

func (r *UserRepository) Close() error {
	var firstErr error
	closeStmt := func(s *sql.Stmt) {
		if s == nil {
			return
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	closeStmt(r.stmtCreate)
	closeStmt(r.stmtGetByID)
	closeStmt(r.stmtGetByEmail)
	closeStmt(r.stmtExistsByEmail)
	closeStmt(r.stmtUpdate)

	return firstErr
}

func (r *UserRepository) CreateUser(ctx context.Context, u user.User) error {
	_, err := r.stmtCreate.ExecContext(ctx, u.ID, u.Name, u.Email, u.PasswordHash)
	return err
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.stmtGetByID.QueryRowContext(ctx, id)
	return scanUser(row)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.stmtGetByEmail.QueryRowContext(ctx, email)
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.stmtExistsByEmail.QueryRowContext(ctx, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, u user.User) error {
	_, err := r.stmtUpdate.ExecContext(ctx, u.ID, u.Name, u.Email, u.PasswordHash)
	return err
}

type userRow interface {
	Scan(dest ...any) error
}

func scanUser(row userRow) (user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
