package listing

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"sync/atomic"
	"time"

	"github.com/muhammadheryan/car-market/constant"
	"github.com/muhammadheryan/car-market/model"
	"github.com/muhammadheryan/car-market/thirdparty/storage"
	"github.com/muhammadheryan/car-market/utils/imagex"
	"github.com/muhammadheryan/car-market/utils/logger"
	"github.com/muhammadheryan/car-market/utils/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxSourceImageBytes bounds what is read from a single uploaded file.
const maxSourceImageBytes = 25 << 20

// imagePipeline resizes and stores every file of one submission. Files are
// processed concurrently; the outcome is all-or-nothing.
type imagePipeline struct {
	storage     storage.Storage
	concurrency int
	now         func() time.Time
	seq         atomic.Uint64
}

func newImagePipeline(store storage.Storage, concurrency int) *imagePipeline {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &imagePipeline{storage: store, concurrency: concurrency, now: time.Now}
}

// Process returns the stored images in submission order. On failure every
// object already written by this call is removed before returning.
func (p *imagePipeline) Process(ctx context.Context, files []*multipart.FileHeader) ([]model.StoredImage, error) {
	results := make([]model.StoredImage, len(files))
	stored := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, fh := range files {
		i, fh := i, fh // per-iteration copies (go directive is 1.21)
		g.Go(func() error {
			img, err := p.processOne(gctx, fh)
			if err != nil {
				return fmt.Errorf("file %d (%s): %w", i, fh.Filename, err)
			}
			results[i] = *img
			stored[i] = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.cleanup(ctx, results, stored)
		return nil, err
	}
	return results, nil
}

func (p *imagePipeline) processOne(ctx context.Context, fh *multipart.FileHeader) (*model.StoredImage, error) {
	start := time.Now()

	data, err := readFile(fh)
	if err != nil {
		metrics.UploadFailuresTotal.WithLabelValues("read").Inc()
		return nil, err
	}

	resized, err := imagex.Resize(data, constant.ImageTargetWidth, constant.ImageTargetHeight)
	if err != nil {
		metrics.UploadFailuresTotal.WithLabelValues("resize").Inc()
		return nil, err
	}

	key := p.keyFor(fh.Filename, resized.Ext)
	url, err := p.storage.Put(ctx, key, resized.Body, resized.ContentType)
	if err != nil {
		metrics.UploadFailuresTotal.WithLabelValues("store").Inc()
		return nil, err
	}

	metrics.ImagesStoredTotal.WithLabelValues(p.storage.Driver()).Inc()
	metrics.ImageProcessDuration.Observe(time.Since(start).Seconds())
	return &model.StoredImage{Key: key, URL: url}, nil
}

// keyFor prefixes the sanitized name with a timestamp. The sequence number
// disambiguates files sharing a name within the same instant.
func (p *imagePipeline) keyFor(filename, ext string) string {
	name := imagex.ReplaceExt(storage.SanitizeName(filename), ext)
	return fmt.Sprintf("%d-%d_%s", p.now().UnixNano(), p.seq.Add(1), name)
}

func (p *imagePipeline) cleanup(ctx context.Context, results []model.StoredImage, stored []bool) {
	// the request context may already be cancelled
	ctx = context.WithoutCancel(ctx)
	for i, ok := range stored {
		if !ok {
			continue
		}
		if err := p.storage.Delete(ctx, results[i].Key); err != nil {
			logger.Warn("[CreateListing] cleanup of stored image failed", zap.String("key", results[i].Key), zap.String("error", err.Error()))
		}
	}
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > maxSourceImageBytes {
		return nil, fmt.Errorf("file too large: %d bytes", fh.Size)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxSourceImageBytes))
}
