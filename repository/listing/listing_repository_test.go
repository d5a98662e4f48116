package listing_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/car-market/model"
	"github.com/muhammadheryan/car-market/repository"
	listingrepo "github.com/muhammadheryan/car-market/repository/listing"
	"github.com/stretchr/testify/require"
)

var (
	listingColumns = []string{"id", "user_id", "vehicle", "immat", "serial", "mileage", "year", "fuel", "power", "city", "postal_code", "description", "price", "created_at"}
	imageColumns   = []string{"listing_id", "position", "image_key", "url"}
	year2019       = time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
)

func newRepo(t *testing.T) (listingrepo.ListingRepository, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	conn := sqlx.NewDb(db, "mysql")
	return listingrepo.NewListingRepository(conn), conn, mock
}

func listingRow(rows *sqlmock.Rows, id int64, userID interface{}, vehicle string) *sqlmock.Rows {
	return rows.AddRow(id, userID, vehicle, "AB-1", "VF3", 1000, year2019, "diesel", 6, "Lyon", 69001, "", 9000.0, time.Now())
}

func TestListingRepository_InsertTx(t *testing.T) {
	repo, conn, mock := newRepo(t)
	owner := uint64(9)
	entity := &model.ListingEntity{
		UserID: &owner, Vehicle: "Peugeot 208", Immat: "AB-1", Serial: "VF3", Mileage: 1000, Year: year2019,
		Fuel: "diesel", Power: 6, City: "Lyon", PostalCode: 69001, Price: 9000,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO listing (user_id, vehicle`)).
		WithArgs(uint64(9), "Peugeot 208", "AB-1", "VF3", int64(1000), year2019, "diesel", 6, "Lyon", 69001, "", 9000.0).
		WillReturnResult(sqlmock.NewResult(31, 1))
	insertImage := regexp.QuoteMeta(`INSERT INTO listing_image (listing_id, position, image_key, url) VALUES (?, ?, ?, ?)`)
	mock.ExpectExec(insertImage).WithArgs(uint64(31), 0, "k1", "/uploads/k1").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(insertImage).WithArgs(uint64(31), 1, "k2", "/uploads/k2").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	tx, err := conn.Beginx()
	require.NoError(t, err)

	id, err := repo.InsertListingTx(context.Background(), tx, entity)
	require.NoError(t, err)
	require.Equal(t, uint64(31), id)

	err = repo.InsertImagesTx(context.Background(), tx, id, []model.StoredImage{
		{Key: "k1", URL: "/uploads/k1"},
		{Key: "k2", URL: "/uploads/k2"},
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
}

func TestListingRepository_InsertTx_Duplicate(t *testing.T) {
	repo, conn, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO listing`)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'AB-1' for key 'immat'"})
	mock.ExpectRollback()

	tx, err := conn.Beginx()
	require.NoError(t, err)

	_, err = repo.InsertListingTx(context.Background(), tx, &model.ListingEntity{Immat: "AB-1"})
	require.ErrorIs(t, err, repository.ErrDuplicate)
	require.NoError(t, tx.Rollback())
}

func TestListingRepository_List_AttachesImagesInOrder(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM listing WHERE true ORDER BY id`)).
		WillReturnRows(listingRow(listingRow(sqlmock.NewRows(listingColumns), 1, 9, "Peugeot 208"), 2, nil, "VW Golf"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM listing_image WHERE listing_id IN (?, ?) ORDER BY listing_id, position`)).
		WithArgs(uint64(1), uint64(2)).
		WillReturnRows(sqlmock.NewRows(imageColumns).
			AddRow(1, 0, "a", "/uploads/a").
			AddRow(1, 1, "b", "/uploads/b"))

	got, err := repo.List(context.Background(), &model.ListingFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, []string{"/uploads/a", "/uploads/b"}, got[0].Images)
	require.NotNil(t, got[0].UserID)
	require.Equal(t, uint64(9), *got[0].UserID)
	require.Nil(t, got[1].UserID)
	require.Equal(t, []string{}, got[1].Images)
}

func TestListingRepository_List_Filters(t *testing.T) {
	tests := []struct {
		name      string
		filter    *model.ListingFilter
		wantQuery string
		wantArgs  []driver.Value
	}{
		{
			name:      "by owner",
			filter:    &model.ListingFilter{UserID: 9},
			wantQuery: `FROM listing WHERE true AND user_id = ? ORDER BY id`,
			wantArgs:  []driver.Value{uint64(9)},
		},
		{
			name:      "search is lowercased",
			filter:    &model.ListingFilter{Vehicle: "GoLf"},
			wantQuery: `FROM listing WHERE true AND LOWER(vehicle) LIKE ? ESCAPE '\\' ORDER BY id`,
			wantArgs:  []driver.Value{"%golf%"},
		},
		{
			name:      "search escapes wildcards",
			filter:    &model.ListingFilter{Vehicle: `50%_off\`},
			wantQuery: `FROM listing WHERE true AND LOWER(vehicle) LIKE ? ESCAPE '\\' ORDER BY id`,
			wantArgs:  []driver.Value{`%50\%\_off\\%`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newRepo(t)

			mock.ExpectQuery(regexp.QuoteMeta(tt.wantQuery)).
				WithArgs(tt.wantArgs...).
				WillReturnRows(sqlmock.NewRows(listingColumns))

			got, err := repo.List(context.Background(), tt.filter)
			require.NoError(t, err)
			require.Empty(t, got)
		})
	}
}

func TestListingRepository_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM listing WHERE true AND id = ?`)).
			WithArgs(uint64(5)).
			WillReturnRows(sqlmock.NewRows(listingColumns))

		got, err := repo.GetByID(context.Background(), 5)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("found", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM listing WHERE true AND id = ?`)).
			WithArgs(uint64(5)).
			WillReturnRows(listingRow(sqlmock.NewRows(listingColumns), 5, 2, "Clio"))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM listing_image WHERE listing_id IN (?)`)).
			WithArgs(uint64(5)).
			WillReturnRows(sqlmock.NewRows(imageColumns).AddRow(5, 0, "c", "/uploads/c"))

		got, err := repo.GetByID(context.Background(), 5)
		require.NoError(t, err)
		require.Equal(t, "Clio", got.Vehicle)
		require.Equal(t, year2019, got.Year)
		require.Equal(t, []string{"/uploads/c"}, got.Images)
	})
}

func TestListingRepository_GetImages(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM listing_image WHERE listing_id IN (?)`)).
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows(imageColumns).
			AddRow(5, 0, "c", "/uploads/c").
			AddRow(5, 1, "d", "/uploads/d"))

	got, err := repo.GetImages(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, []model.ListingImage{
		{ListingID: 5, Position: 0, Key: "c", URL: "/uploads/c"},
		{ListingID: 5, Position: 1, Key: "d", URL: "/uploads/d"},
	}, got)
}

func TestListingRepository_Delete(t *testing.T) {
	del := regexp.QuoteMeta(`DELETE FROM listing WHERE id = ?`)

	t.Run("success", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectExec(del).WithArgs(uint64(5)).WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.Delete(context.Background(), 5))
	})

	t.Run("missing listing", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectExec(del).WithArgs(uint64(5)).WillReturnResult(sqlmock.NewResult(0, 0))
		require.ErrorIs(t, repo.Delete(context.Background(), 5), sql.ErrNoRows)
	})
}
