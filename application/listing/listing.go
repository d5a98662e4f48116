package listing

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/muhammadheryan/car-market/cmd/config"
	"github.com/muhammadheryan/car-market/constant"
	"github.com/muhammadheryan/car-market/model"
	"github.com/muhammadheryan/car-market/repository"
	listingrepo "github.com/muhammadheryan/car-market/repository/listing"
	txrepo "github.com/muhammadheryan/car-market/repository/tx"
	"github.com/muhammadheryan/car-market/thirdparty/rabbitmq"
	"github.com/muhammadheryan/car-market/thirdparty/storage"
	utilsContext "github.com/muhammadheryan/car-market/utils/context"
	cerr "github.com/muhammadheryan/car-market/utils/errors"
	"github.com/muhammadheryan/car-market/utils/logger"
	validatorx "github.com/muhammadheryan/car-market/utils/validator"
	"go.uber.org/zap"
)

const saleRedirect = "/buy"

var yearLayouts = []string{"2006-01-02", "2006-01", "2006", time.RFC3339}

type ListingApp interface {
	CreateListing(ctx context.Context, req *model.CreateListingRequest) (*model.CreateListingResponse, error)
	ListListings(ctx context.Context) ([]model.ListingEntity, error)
	GetListing(ctx context.Context, id uint64) (*model.ListingEntity, error)
	ListMyListings(ctx context.Context) ([]model.ListingEntity, error)
	SearchListings(ctx context.Context, query string) ([]model.ListingEntity, error)
	DeleteListing(ctx context.Context, id uint64) error
	PurgeImages(ctx context.Context, keys []string) error
}

type listingAppImpl struct {
	txRepo      txrepo.TxRepository
	listingRepo listingrepo.ListingRepository
	storage     storage.Storage
	publisher   rabbitmq.ListingEventPublisher
	pipeline    *imagePipeline
}

// NewListingApp wires the listing service. publisher may be nil, in which
// case images of deleted listings are purged inline.
func NewListingApp(cfg *config.Config, txRepo txrepo.TxRepository, listingRepo listingrepo.ListingRepository, store storage.Storage, publisher rabbitmq.ListingEventPublisher) ListingApp {
	return &listingAppImpl{
		txRepo:      txRepo,
		listingRepo: listingRepo,
		storage:     store,
		publisher:   publisher,
		pipeline:    newImagePipeline(store, cfg.Upload.Concurrency),
	}
}

func (s *listingAppImpl) CreateListing(ctx context.Context, req *model.CreateListingRequest) (*model.CreateListingResponse, error) {
	if len(req.Files) == 0 {
		return nil, cerr.SetCustomError(constant.ErrNoFilesProvided)
	}
	if len(req.Files) > constant.MaxImagesPerSale {
		return nil, cerr.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "too many images")
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, cerr.SetCustomErrorWithDetail(constant.ErrInvalidRequest, validatorx.Describe(err))
	}
	year, ok := parseYear(req.Year)
	if !ok {
		return nil, cerr.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "annee: date")
	}

	entity := &model.ListingEntity{
		Vehicle:     strings.TrimSpace(req.Vehicle),
		Immat:       req.Immat,
		Serial:      req.Serial,
		Mileage:     req.Mileage,
		Year:        year,
		Fuel:        req.Fuel,
		Power:       req.Power,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Description: req.Description,
		Price:       req.Price,
	}
	if userID, ok := utilsContext.GetUserID(ctx); ok {
		entity.UserID = &userID
	}

	images, err := s.pipeline.Process(ctx, req.Files)
	if err != nil {
		logger.Error("[CreateListing] image pipeline failed", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrUploadFailed)
	}

	id, err := s.persist(ctx, entity, images)
	if err != nil {
		s.pipeline.cleanup(ctx, images, allStored(len(images)))
		return nil, err
	}

	logger.Info("[CreateListing] listing saved", zap.Uint64("listing_id", id), zap.Int("images", len(images)))

	urls := make([]string, len(images))
	for i, img := range images {
		urls[i] = img.URL
	}
	return &model.CreateListingResponse{ID: id, Images: urls, Redirect: saleRedirect}, nil
}

func (s *listingAppImpl) persist(ctx context.Context, entity *model.ListingEntity, images []model.StoredImage) (uint64, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateListing] begin tx", zap.String("error", err.Error()))
		return 0, cerr.SetCustomError(constant.ErrPersistence)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	id, err := s.listingRepo.InsertListingTx(ctx, tx, entity)
	if errors.Is(err, repository.ErrDuplicate) {
		return 0, cerr.SetCustomError(constant.ErrDuplicateListing)
	}
	if err != nil {
		logger.Error("[CreateListing] insert listing", zap.String("error", err.Error()))
		return 0, cerr.SetCustomError(constant.ErrPersistence)
	}

	if err := s.listingRepo.InsertImagesTx(ctx, tx, id, images); err != nil {
		logger.Error("[CreateListing] insert images", zap.String("error", err.Error()))
		return 0, cerr.SetCustomError(constant.ErrPersistence)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateListing] commit tx", zap.String("error", err.Error()))
		return 0, cerr.SetCustomError(constant.ErrPersistence)
	}
	committed = true
	return id, nil
}

func (s *listingAppImpl) ListListings(ctx context.Context) ([]model.ListingEntity, error) {
	return s.list(ctx, "ListListings", &model.ListingFilter{})
}

func (s *listingAppImpl) GetListing(ctx context.Context, id uint64) (*model.ListingEntity, error) {
	item, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetListing] error listingRepo.GetByID", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrPersistence)
	}
	if item == nil {
		return nil, cerr.SetCustomError(constant.ErrListingNotFound)
	}
	return item, nil
}

func (s *listingAppImpl) ListMyListings(ctx context.Context) ([]model.ListingEntity, error) {
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		return nil, cerr.SetCustomError(constant.ErrUnauthenticated)
	}
	return s.list(ctx, "ListMyListings", &model.ListingFilter{UserID: userID})
}

// SearchListings matches query as a case-insensitive substring of the
// vehicle field. A blank query returns every listing.
func (s *listingAppImpl) SearchListings(ctx context.Context, query string) ([]model.ListingEntity, error) {
	return s.list(ctx, "SearchListings", &model.ListingFilter{Vehicle: strings.TrimSpace(query)})
}

func (s *listingAppImpl) DeleteListing(ctx context.Context, id uint64) error {
	item, err := s.GetListing(ctx, id)
	if err != nil {
		return err
	}

	// ownerless listings (owner account deleted) are admin-only
	var ownerID uint64
	if item.UserID != nil {
		ownerID = *item.UserID
	}
	if !utilsContext.CanActOn(ctx, ownerID) {
		return cerr.SetCustomError(constant.ErrForbidden)
	}

	images, err := s.listingRepo.GetImages(ctx, id)
	if err != nil {
		logger.Error("[DeleteListing] error listingRepo.GetImages", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrPersistence)
	}

	err = s.listingRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return cerr.SetCustomError(constant.ErrListingNotFound)
	}
	if err != nil {
		logger.Error("[DeleteListing] error listingRepo.Delete", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrPersistence)
	}

	keys := make([]string, len(images))
	for i, img := range images {
		keys[i] = img.Key
	}
	s.releaseImages(ctx, id, keys)
	return nil
}

// PurgeImages deletes stored objects; already missing keys are not errors.
func (s *listingAppImpl) PurgeImages(ctx context.Context, keys []string) error {
	var errs []error
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		logger.Error("[PurgeImages] error storage.Delete", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// releaseImages hands orphaned objects to the purge worker. Failures only
// leak storage, so they are logged rather than surfaced.
func (s *listingAppImpl) releaseImages(ctx context.Context, listingID uint64, keys []string) {
	if len(keys) == 0 {
		return
	}
	if s.publisher == nil {
		_ = s.PurgeImages(ctx, keys)
		return
	}
	msg := rabbitmq.ListingDeletedMessage{ListingID: listingID, ImageKeys: keys, DeletedAt: time.Now()}
	if err := s.publisher.PublishListingDeleted(ctx, msg); err != nil {
		logger.Error("[DeleteListing] publish listing deleted", zap.Uint64("listing_id", listingID), zap.String("error", err.Error()))
	}
}

func (s *listingAppImpl) list(ctx context.Context, op string, filter *model.ListingFilter) ([]model.ListingEntity, error) {
	items, err := s.listingRepo.List(ctx, filter)
	if err != nil {
		logger.Error("["+op+"] error listingRepo.List", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrPersistence)
	}
	return items, nil
}

func parseYear(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range yearLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func allStored(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = true
	}
	return out
}
