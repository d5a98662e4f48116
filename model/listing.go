package model

import (
	"mime/multipart"
	"time"
)

// ListingEntity is a car-for-sale record ("vente").
type ListingEntity struct {
	ID          uint64    `db:"id" json:"id"`
	UserID      *uint64   `db:"user_id" json:"userId,omitempty"`
	Vehicle     string    `db:"vehicle" json:"vehicule"`
	Immat       string    `db:"immat" json:"immat"`
	Serial      string    `db:"serial" json:"serie"`
	Mileage     int64     `db:"mileage" json:"kilometrage"`
	Year        time.Time `db:"year" json:"annee"`
	Fuel        string    `db:"fuel" json:"energie"`
	Power       int       `db:"power" json:"puissance"`
	City        string    `db:"city" json:"ville"`
	PostalCode  int       `db:"postal_code" json:"code"`
	Description string    `db:"description" json:"description,omitempty"`
	Price       float64   `db:"price" json:"prix"`
	Images      []string  `db:"-" json:"images"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ListingImage is one stored picture of a listing, ordered by Position.
type ListingImage struct {
	ListingID uint64 `db:"listing_id"`
	Position  int    `db:"position"`
	Key       string `db:"image_key"`
	URL       string `db:"url"`
}

type ListingFilter struct {
	ID      uint64
	UserID  uint64
	Vehicle string
}

// CreateListingRequest carries the text fields of the multipart sale form.
type CreateListingRequest struct {
	Vehicle     string                  `form:"vehicule" validate:"required"`
	Immat       string                  `form:"immat" validate:"required"`
	Serial      string                  `form:"serie" validate:"required"`
	Mileage     int64                   `form:"kilometrage" validate:"gte=0"`
	Year        string                  `form:"annee" validate:"required"`
	Fuel        string                  `form:"energie" validate:"required"`
	Power       int                     `form:"puissance" validate:"gt=0"`
	City        string                  `form:"ville" validate:"required"`
	PostalCode  int                     `form:"code" validate:"gt=0"`
	Description string                  `form:"description"`
	Price       float64                 `form:"prix" validate:"gt=0"`
	Files       []*multipart.FileHeader `form:"-" validate:"-"`
}

type CreateListingResponse struct {
	ID       uint64   `json:"id"`
	Images   []string `json:"images"`
	Redirect string   `json:"redirect"`
}

// StoredImage is the outcome of one resize+store step.
type StoredImage struct {
	Key string
	URL string
}

type PurgeImagesRequest struct {
	Keys []string `json:"keys" validate:"required,min=1,dive,required"`
}
