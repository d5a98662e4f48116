package support

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/car-market/model"
)

type SQL struct {
	conn *sqlx.DB
}

type SupportRepository interface {
	Create(ctx context.Context, data *model.SupportMessageEntity) (*model.SupportMessageEntity, error)
	List(ctx context.Context) ([]model.SupportMessageEntity, error)
	Delete(ctx context.Context, id uint64) error
}

func NewSupportRepository(conn *sqlx.DB) SupportRepository {
	return &SQL{conn: conn}
}

const (
	insertMessageQuery = `INSERT INTO support_message (email, message, created_at) VALUES (?, ?, NOW())`
	listMessagesQuery  = `SELECT id, email, message, created_at FROM support_message ORDER BY id`
	deleteMessageQuery = `DELETE FROM support_message WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.SupportMessageEntity) (*model.SupportMessageEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertMessageQuery, data.Email, data.Message)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(id)
	return data, nil
}

func (s *SQL) List(ctx context.Context) ([]model.SupportMessageEntity, error) {
	out := make([]model.SupportMessageEntity, 0)
	if err := s.conn.SelectContext(ctx, &out, listMessagesQuery); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete returns sql.ErrNoRows when the message does not exist.
func (s *SQL) Delete(ctx context.Context, id uint64) error {
	result, err := s.conn.ExecContext(ctx, deleteMessageQuery, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
