package listing

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/car-market/model"
	"github.com/muhammadheryan/car-market/repository"
)

type SQL struct {
	conn *sqlx.DB
}

type ListingRepository interface {
	InsertListingTx(ctx context.Context, tx *sqlx.Tx, data *model.ListingEntity) (uint64, error)
	InsertImagesTx(ctx context.Context, tx *sqlx.Tx, listingID uint64, images []model.StoredImage) error
	GetByID(ctx context.Context, id uint64) (*model.ListingEntity, error)
	List(ctx context.Context, filter *model.ListingFilter) ([]model.ListingEntity, error)
	GetImages(ctx context.Context, listingID uint64) ([]model.ListingImage, error)
	Delete(ctx context.Context, id uint64) error
}

func NewListingRepository(conn *sqlx.DB) ListingRepository {
	return &SQL{conn: conn}
}

const (
	insertListingQuery = `INSERT INTO listing (user_id, vehicle, immat, serial, mileage, year, fuel, power, city, postal_code, description, price, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	insertImageQuery = `INSERT INTO listing_image (listing_id, position, image_key, url) VALUES (?, ?, ?, ?)`

	listListingsBase = `SELECT id, user_id, vehicle, immat, serial, mileage, year, fuel, power, city, postal_code, description, price, created_at
FROM listing WHERE true`

	listImagesQuery = `SELECT listing_id, position, image_key, url FROM listing_image WHERE listing_id IN (?) ORDER BY listing_id, position`

	deleteListingQuery = `DELETE FROM listing WHERE id = ?`
)

// InsertListingTx returns repository.ErrDuplicate when immat or serial is taken.
func (r *SQL) InsertListingTx(ctx context.Context, tx *sqlx.Tx, data *model.ListingEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertListingQuery,
		data.UserID, data.Vehicle, data.Immat, data.Serial, data.Mileage, data.Year,
		data.Fuel, data.Power, data.City, data.PostalCode, data.Description, data.Price)
	if err != nil {
		return 0, repository.MapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// InsertImagesTx stores images keeping the slice order as position.
func (r *SQL) InsertImagesTx(ctx context.Context, tx *sqlx.Tx, listingID uint64, images []model.StoredImage) error {
	for i, img := range images {
		if _, err := tx.ExecContext(ctx, insertImageQuery, listingID, i, img.Key, img.URL); err != nil {
			return err
		}
	}
	return nil
}

// GetByID returns nil, nil when the listing does not exist.
func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.ListingEntity, error) {
	items, err := r.List(ctx, &model.ListingFilter{ID: id})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// List applies every non-zero field of filter. Vehicle is a case-insensitive
// substring match with LIKE wildcards taken literally.
func (r *SQL) List(ctx context.Context, filter *model.ListingFilter) ([]model.ListingEntity, error) {
	query := listListingsBase
	args := make([]any, 0, 3)

	if filter != nil {
		if filter.ID != 0 {
			query += " AND id = ?"
			args = append(args, filter.ID)
		}
		if filter.UserID != 0 {
			query += " AND user_id = ?"
			args = append(args, filter.UserID)
		}
		if filter.Vehicle != "" {
			query += ` AND LOWER(vehicle) LIKE ? ESCAPE '\\'`
			args = append(args, "%"+escapeLike(strings.ToLower(filter.Vehicle))+"%")
		}
	}
	query += " ORDER BY id"

	items := make([]model.ListingEntity, 0)
	if err := r.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	if err := r.attachImages(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) GetImages(ctx context.Context, listingID uint64) ([]model.ListingImage, error) {
	return r.selectImages(ctx, []uint64{listingID})
}

// Delete returns sql.ErrNoRows when the listing does not exist. Image rows go
// with it through the foreign key cascade.
func (r *SQL) Delete(ctx context.Context, id uint64) error {
	res, err := r.conn.ExecContext(ctx, deleteListingQuery, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQL) attachImages(ctx context.Context, items []model.ListingEntity) error {
	ids := make([]uint64, len(items))
	index := make(map[uint64]int, len(items))
	for i := range items {
		ids[i] = items[i].ID
		index[items[i].ID] = i
		items[i].Images = make([]string, 0)
	}

	images, err := r.selectImages(ctx, ids)
	if err != nil {
		return err
	}
	for _, img := range images {
		i := index[img.ListingID]
		items[i].Images = append(items[i].Images, img.URL)
	}
	return nil
}

func (r *SQL) selectImages(ctx context.Context, ids []uint64) ([]model.ListingImage, error) {
	query, args, err := sqlx.In(listImagesQuery, ids)
	if err != nil {
		return nil, err
	}
	images := make([]model.ListingImage, 0)
	if err := r.conn.SelectContext(ctx, &images, r.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return images, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
