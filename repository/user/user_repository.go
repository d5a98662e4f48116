package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/car-market/model"
	"github.com/muhammadheryan/car-market/repository"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	List(ctx context.Context) ([]model.UserEntity, error)
	Update(ctx context.Context, data *model.UserEntity) error
	Delete(ctx context.Context, id uint64) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO user (name, surname, email, phone, password_hash, admin, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`
	getUserBase     = `SELECT id, name, surname, email, phone, password_hash, admin, created_at, updated_at FROM user WHERE true`
	listUsersQuery  = `SELECT id, name, surname, email, phone, password_hash, admin, created_at, updated_at FROM user ORDER BY id`
	updateUserQuery = `UPDATE user SET name = ?, surname = ?, email = ?, phone = ?, password_hash = ?, updated_at = NOW() WHERE id = ?`
	deleteUserQuery = `DELETE FROM user WHERE id = ?`
)

// Create returns repository.ErrDuplicate when the email is already taken.
func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Name, data.Surname, data.Email, data.Phone, data.PasswordHash, data.Admin)
	if err != nil {
		return nil, repository.MapError(err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

// Get returns nil, nil when no user matches.
func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.UserEntity, error) {
	users := make([]model.UserEntity, 0)
	if err := s.conn.SelectContext(ctx, &users, listUsersQuery); err != nil {
		return nil, err
	}
	return users, nil
}

// Update overwrites the mutable profile fields of data.ID.
func (s *SQL) Update(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, updateUserQuery, data.Name, data.Surname, data.Email, data.Phone, data.PasswordHash, data.ID)
	return repository.MapError(err)
}

// Delete returns sql.ErrNoRows when the user does not exist. Listings owned by
// the user keep existing with a NULL owner.
func (s *SQL) Delete(ctx context.Context, id uint64) error {
	result, err := s.conn.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
