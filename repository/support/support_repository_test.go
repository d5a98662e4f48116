package support_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/car-market/model"
	supportrepo "github.com/muhammadheryan/car-market/repository/support"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (supportrepo.SupportRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return supportrepo.NewSupportRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestSupportRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO support_message (email, message, created_at) VALUES (?, ?, NOW())`)).
		WithArgs("buyer@example.com", "hello").
		WillReturnResult(sqlmock.NewResult(4, 1))

	got, err := repo.Create(context.Background(), &model.SupportMessageEntity{Email: "buyer@example.com", Message: "hello"})
	require.NoError(t, err)
	require.Equal(t, uint64(4), got.ID)
}

func TestSupportRepository_List(t *testing.T) {
	repo, mock := newRepo(t)
	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, message, created_at FROM support_message ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "message", "created_at"}).
			AddRow(1, "a@example.com", "first", at).
			AddRow(2, "b@example.com", "second", at))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.SupportMessageEntity{
		{ID: 1, Email: "a@example.com", Message: "first", CreatedAt: at},
		{ID: 2, Email: "b@example.com", Message: "second", CreatedAt: at},
	}, got)
}

func TestSupportRepository_Delete(t *testing.T) {
	del := regexp.QuoteMeta(`DELETE FROM support_message WHERE id = ?`)

	t.Run("success", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(del).WithArgs(uint64(2)).WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.Delete(context.Background(), 2))
	})

	t.Run("missing message", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(del).WithArgs(uint64(2)).WillReturnResult(sqlmock.NewResult(0, 0))
		require.ErrorIs(t, repo.Delete(context.Background(), 2), sql.ErrNoRows)
	})
}
