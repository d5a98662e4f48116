package listing_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	applisting "github.com/muhammadheryan/car-market/application/listing"
	"github.com/muhammadheryan/car-market/cmd/config"
	"github.com/muhammadheryan/car-market/constant"
	listingmocks "github.com/muhammadheryan/car-market/mocks/repository/listing"
	txmocks "github.com/muhammadheryan/car-market/mocks/repository/tx"
	rabbitmocks "github.com/muhammadheryan/car-market/mocks/thirdparty/rabbitmq"
	storagemocks "github.com/muhammadheryan/car-market/mocks/thirdparty/storage"
	"github.com/muhammadheryan/car-market/model"
	"github.com/muhammadheryan/car-market/repository"
	"github.com/muhammadheryan/car-market/thirdparty/rabbitmq"
	utilsContext "github.com/muhammadheryan/car-market/utils/context"
	cerr "github.com/muhammadheryan/car-market/utils/errors"
	"github.com/muhammadheryan/car-market/utils/imagex"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testFile struct {
	name string
	data []byte
}

type deps struct {
	txRepo      *txmocks.TxRepository
	listingRepo *listingmocks.ListingRepository
	storage     *storagemocks.Storage
	publisher   *rabbitmocks.ListingEventPublisher
}

func newDeps(t *testing.T) deps {
	return deps{
		txRepo:      txmocks.NewTxRepository(t),
		listingRepo: listingmocks.NewListingRepository(t),
		storage:     storagemocks.NewStorage(t),
		publisher:   rabbitmocks.NewListingEventPublisher(t),
	}
}

func (d deps) app(concurrency int) applisting.ListingApp {
	cfg := &config.Config{Upload: config.UploadConfig{Concurrency: concurrency}}
	return applisting.NewListingApp(cfg, d.txRepo, d.listingRepo, d.storage, d.publisher)
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func fileHeaders(t *testing.T, files ...testFile) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile(constant.ImagesField, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[constant.ImagesField]
}

func validRequest(files []*multipart.FileHeader) *model.CreateListingRequest {
	return &model.CreateListingRequest{
		Vehicle:    "Peugeot 208",
		Immat:      "AB-123-CD",
		Serial:     "VF3XXXXXXXX",
		Mileage:    42000,
		Year:       "2019",
		Fuel:       "essence",
		Power:      5,
		City:       "Lyon",
		PostalCode: 69001,
		Price:      12500,
		Files:      files,
	}
}

func sessionCtx(id uint64, admin bool) context.Context {
	return utilsContext.WithClaims(context.Background(), &model.SessionClaims{ID: id, Admin: admin})
}

func requireErrorType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	require.Equal(t, constant.ErrorTypeCode[want], ce.ErrorCode(), "error = %v", err)
}

func uint64Ptr(v uint64) *uint64 { return &v }

func TestListingApp_CreateListing_Validation(t *testing.T) {
	img := pngBytes(t, 20, 20)

	tooMany := make([]testFile, constant.MaxImagesPerSale+1)
	for i := range tooMany {
		tooMany[i] = testFile{name: fmt.Sprintf("%d.png", i), data: img}
	}

	tests := []struct {
		name    string
		req     func(t *testing.T) *model.CreateListingRequest
		errCode constant.ErrorType
	}{
		{
			name:    "error: no files",
			req:     func(t *testing.T) *model.CreateListingRequest { return validRequest(nil) },
			errCode: constant.ErrNoFilesProvided,
		},
		{
			name: "error: more than the image limit",
			req: func(t *testing.T) *model.CreateListingRequest {
				return validRequest(fileHeaders(t, tooMany...))
			},
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: missing vehicle",
			req: func(t *testing.T) *model.CreateListingRequest {
				req := validRequest(fileHeaders(t, testFile{"a.png", img}))
				req.Vehicle = ""
				return req
			},
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: unparseable year",
			req: func(t *testing.T) *model.CreateListingRequest {
				req := validRequest(fileHeaders(t, testFile{"a.png", img}))
				req.Year = "last year"
				return req
			},
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			_, err := d.app(2).CreateListing(sessionCtx(1, false), tt.req(t))
			requireErrorType(t, err, tt.errCode)
		})
	}
}

func TestListingApp_CreateListing_Success(t *testing.T) {
	img := pngBytes(t, 1024, 768)
	files := fileHeaders(t,
		testFile{"front.png", img},
		testFile{"back side.png", img},
		testFile{"interior.png", img},
		testFile{"engine.png", img},
	)

	d := newDeps(t)
	d.storage.On("Driver").Return(constant.StorageDriverLocal).Maybe()
	d.storage.
		On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "image/png").
		Return(func(ctx context.Context, key string, body []byte, contentType string) (string, error) {
			decoded, _, err := image.DecodeConfig(bytes.NewReader(body))
			if err != nil {
				return "", err
			}
			if decoded.Width != constant.ImageTargetWidth || decoded.Height != constant.ImageTargetHeight {
				return "", fmt.Errorf("unexpected size %dx%d", decoded.Width, decoded.Height)
			}
			return "/uploads/" + key, nil
		}).
		Times(4)

	tx := &sqlx.Tx{}
	d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	d.listingRepo.
		On("InsertListingTx", mock.Anything, tx, mock.MatchedBy(func(ent *model.ListingEntity) bool {
			return ent.UserID != nil && *ent.UserID == 9 &&
				ent.Vehicle == "Peugeot 208" &&
				ent.Year.Year() == 2019
		})).
		Return(uint64(31), nil).
		Once()
	d.listingRepo.
		On("InsertImagesTx", mock.Anything, tx, uint64(31), mock.MatchedBy(func(images []model.StoredImage) bool {
			return len(images) == 4 && strings.HasSuffix(images[0].Key, "_front.png") && strings.HasSuffix(images[3].Key, "_engine.png")
		})).
		Return(nil).
		Once()
	d.txRepo.On("CommitTx", tx).Return(nil).Once()

	got, err := d.app(4).CreateListing(sessionCtx(9, false), validRequest(files))
	require.NoError(t, err)
	require.Equal(t, uint64(31), got.ID)
	require.Equal(t, "/buy", got.Redirect)
	require.Len(t, got.Images, 4)

	keyPattern := regexp.MustCompile(`^/uploads/\d+-\d+_[A-Za-z0-9._-]+$`)
	wantSuffix := []string{"_front.png", "_back_side.png", "_interior.png", "_engine.png"}
	for i, url := range got.Images {
		require.Regexp(t, keyPattern, url)
		require.True(t, strings.HasSuffix(url, wantSuffix[i]), "image %d = %s, want suffix %s", i, url, wantSuffix[i])
	}
}

func TestListingApp_CreateListing_FailedFileRemovesStoredImages(t *testing.T) {
	files := fileHeaders(t,
		testFile{"good.png", pngBytes(t, 40, 30)},
		testFile{"broken.png", []byte("definitely not an image")},
	)

	d := newDeps(t)
	d.storage.On("Driver").Return(constant.StorageDriverLocal).Maybe()

	var mu sync.Mutex
	var storedKeys []string
	d.storage.
		On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, mock.Anything).
		Return(func(ctx context.Context, key string, body []byte, contentType string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			storedKeys = append(storedKeys, key)
			return "/uploads/" + key, nil
		}).
		Once()
	d.storage.
		On("Delete", mock.Anything, mock.MatchedBy(func(key string) bool {
			mu.Lock()
			defer mu.Unlock()
			return len(storedKeys) == 1 && key == storedKeys[0]
		})).
		Return(nil).
		Once()

	_, err := d.app(1).CreateListing(sessionCtx(1, false), validRequest(files))
	requireErrorType(t, err, constant.ErrUploadFailed)
	d.listingRepo.AssertNotCalled(t, "InsertListingTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestListingApp_CreateListing_OversizedCanvasStoresNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, imagex.MaxSourceSide+1, 2))))
	files := fileHeaders(t, testFile{"huge.png", buf.Bytes()})

	d := newDeps(t)

	_, err := d.app(2).CreateListing(sessionCtx(1, false), validRequest(files))
	requireErrorType(t, err, constant.ErrUploadFailed)
	d.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	d.listingRepo.AssertNotCalled(t, "InsertListingTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestListingApp_CreateListing_StorageFailure(t *testing.T) {
	files := fileHeaders(t, testFile{"a.png", pngBytes(t, 40, 30)})

	d := newDeps(t)
	d.storage.
		On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("bucket unavailable")).
		Once()

	_, err := d.app(2).CreateListing(sessionCtx(1, false), validRequest(files))
	requireErrorType(t, err, constant.ErrUploadFailed)
}

func TestListingApp_CreateListing_DuplicateRemovesImages(t *testing.T) {
	files := fileHeaders(t, testFile{"a.png", pngBytes(t, 40, 30)})

	d := newDeps(t)
	d.storage.On("Driver").Return(constant.StorageDriverS3).Maybe()
	d.storage.
		On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("https://bucket.example/k", nil).
		Once()
	d.storage.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil).Once()

	tx := &sqlx.Tx{}
	d.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	d.listingRepo.On("InsertListingTx", mock.Anything, tx, mock.Anything).Return(uint64(0), repository.ErrDuplicate).Once()
	d.txRepo.On("RollbackTx", tx).Return(nil).Once()

	_, err := d.app(2).CreateListing(sessionCtx(1, false), validRequest(files))
	requireErrorType(t, err, constant.ErrDuplicateListing)
}

func TestListingApp_GetListing(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(d deps)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			mockCall: func(d deps) {
				d.listingRepo.On("GetByID", mock.Anything, uint64(3)).
					Return(&model.ListingEntity{ID: 3, Images: []string{"/uploads/a.jpg"}}, nil).Once()
			},
		},
		{
			name: "error: not found",
			mockCall: func(d deps) {
				d.listingRepo.On("GetByID", mock.Anything, uint64(3)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrListingNotFound,
		},
		{
			name: "error: repository failure",
			mockCall: func(d deps) {
				d.listingRepo.On("GetByID", mock.Anything, uint64(3)).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrPersistence,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			tt.mockCall(d)

			got, err := d.app(1).GetListing(context.Background(), 3)
			if tt.wantErr {
				requireErrorType(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			require.Equal(t, uint64(3), got.ID)
		})
	}
}

func TestListingApp_ListAndSearch(t *testing.T) {
	t.Run("search trims the query", func(t *testing.T) {
		d := newDeps(t)
		d.listingRepo.On("List", mock.Anything, &model.ListingFilter{Vehicle: "golf"}).
			Return([]model.ListingEntity{{ID: 1, Vehicle: "VW Golf"}}, nil).Once()

		got, err := d.app(1).SearchListings(context.Background(), "  golf ")
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("blank search lists everything", func(t *testing.T) {
		d := newDeps(t)
		d.listingRepo.On("List", mock.Anything, &model.ListingFilter{}).Return([]model.ListingEntity{}, nil).Once()

		_, err := d.app(1).SearchListings(context.Background(), "   ")
		require.NoError(t, err)
	})

	t.Run("own listings use the session owner", func(t *testing.T) {
		d := newDeps(t)
		d.listingRepo.On("List", mock.Anything, &model.ListingFilter{UserID: 12}).Return([]model.ListingEntity{}, nil).Once()

		_, err := d.app(1).ListMyListings(sessionCtx(12, false))
		require.NoError(t, err)
	})

	t.Run("own listings need a session", func(t *testing.T) {
		d := newDeps(t)
		_, err := d.app(1).ListMyListings(context.Background())
		requireErrorType(t, err, constant.ErrUnauthenticated)
	})

	t.Run("list failure", func(t *testing.T) {
		d := newDeps(t)
		d.listingRepo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

		_, err := d.app(1).ListListings(context.Background())
		requireErrorType(t, err, constant.ErrPersistence)
	})
}

func TestListingApp_DeleteListing(t *testing.T) {
	images := []model.ListingImage{
		{ListingID: 5, Position: 0, Key: "1-1_a.jpg"},
		{ListingID: 5, Position: 1, Key: "1-2_b.jpg"},
	}

	tests := []struct {
		name     string
		ctx      context.Context
		mockCall func(d deps)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: owner deletes and images are queued for purge",
			ctx:  sessionCtx(2, false),
			mockCall: func(d deps) {
				d.listingRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.ListingEntity{ID: 5, UserID: uint64Ptr(2)}, nil).Once()
				d.listingRepo.On("GetImages", mock.Anything, uint64(5)).Return(images, nil).Once()
				d.listingRepo.On("Delete", mock.Anything, uint64(5)).Return(nil).Once()
				d.publisher.
					On("PublishListingDeleted", mock.Anything, mock.MatchedBy(func(msg rabbitmq.ListingDeletedMessage) bool {
						return msg.ListingID == 5 && len(msg.ImageKeys) == 2 && msg.ImageKeys[0] == "1-1_a.jpg"
					})).
					Return(nil).
					Once()
			},
		},
		{
			name: "success: publish failure is not surfaced",
			ctx:  sessionCtx(2, false),
			mockCall: func(d deps) {
				d.listingRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.ListingEntity{ID: 5, UserID: uint64Ptr(2)}, nil).Once()
				d.listingRepo.On("GetImages", mock.Anything, uint64(5)).Return(images, nil).Once()
				d.listingRepo.On("Delete", mock.Anything, uint64(5)).Return(nil).Once()
				d.publisher.On("PublishListingDeleted", mock.Anything, mock.Anything).Return(errors.New("channel closed")).Once()
			},
		},
		{
			name: "success: admin deletes an ownerless listing",
			ctx:  sessionCtx(1, true),
			mockCall: func(d deps) {
				d.listingRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.ListingEntity{ID: 5}, nil).Once()
				d.listingRepo.On("GetImages", mock.Anything, uint64(5)).Return(nil, nil).Once()
				d.listingRepo.On("Delete", mock.Anything, uint64(5)).Return(nil).Once()
			},
		},
		{
			name: "error: not the owner",
			ctx:  sessionCtx(3, false),
			mockCall: func(d deps) {
				d.listingRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.ListingEntity{ID: 5, UserID: uint64Ptr(2)}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: ownerless listing is admin only",
			ctx:  sessionCtx(3, false),
			mockCall: func(d deps) {
				d.listingRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.ListingEntity{ID: 5}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: not found",
			ctx:  sessionCtx(2, false),
			mockCall: func(d deps) {
				d.listingRepo.On("GetByID", mock.Anything, uint64(5)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrListingNotFound,
		},
		{
			name: "error: deleted concurrently",
			ctx:  sessionCtx(2, false),
			mockCall: func(d deps) {
				d.listingRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.ListingEntity{ID: 5, UserID: uint64Ptr(2)}, nil).Once()
				d.listingRepo.On("GetImages", mock.Anything, uint64(5)).Return(images, nil).Once()
				d.listingRepo.On("Delete", mock.Anything, uint64(5)).Return(sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrListingNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			tt.mockCall(d)

			err := d.app(1).DeleteListing(tt.ctx, 5)
			if tt.wantErr {
				requireErrorType(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestListingApp_DeleteListing_InlinePurgeWithoutPublisher(t *testing.T) {
	d := newDeps(t)
	d.listingRepo.On("GetByID", mock.Anything, uint64(5)).Return(&model.ListingEntity{ID: 5, UserID: uint64Ptr(2)}, nil).Once()
	d.listingRepo.On("GetImages", mock.Anything, uint64(5)).
		Return([]model.ListingImage{{Key: "1-1_a.jpg"}}, nil).Once()
	d.listingRepo.On("Delete", mock.Anything, uint64(5)).Return(nil).Once()
	d.storage.On("Delete", mock.Anything, "1-1_a.jpg").Return(nil).Once()

	cfg := &config.Config{Upload: config.UploadConfig{Concurrency: 1}}
	app := applisting.NewListingApp(cfg, d.txRepo, d.listingRepo, d.storage, nil)
	require.NoError(t, app.DeleteListing(sessionCtx(2, false), 5))
}

func TestListingApp_PurgeImages(t *testing.T) {
	t.Run("deletes every key", func(t *testing.T) {
		d := newDeps(t)
		d.storage.On("Delete", mock.Anything, "a").Return(nil).Once()
		d.storage.On("Delete", mock.Anything, "b").Return(nil).Once()

		require.NoError(t, d.app(1).PurgeImages(context.Background(), []string{"a", "b"}))
	})

	t.Run("keeps going after a failure", func(t *testing.T) {
		d := newDeps(t)
		d.storage.On("Delete", mock.Anything, "a").Return(errors.New("denied")).Once()
		d.storage.On("Delete", mock.Anything, "b").Return(nil).Once()

		err := d.app(1).PurgeImages(context.Background(), []string{"a", "b"})
		requireErrorType(t, err, constant.ErrInternal)
	})
}
