package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/muhammadheryan/car-market/cmd/config"
	"github.com/muhammadheryan/car-market/thirdparty/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := map[string]string{
		"photo.jpg":           "photo.jpg",
		"../../etc/passwd":    "passwd",
		`C:\Users\me\car.png`: "car.png",
		"ma voiture (1).jpeg": "ma_voiture_1_.jpeg",
		"...":                 "image",
	}
	for in, want := range tests {
		assert.Equal(t, want, storage.SanitizeName(in), in)
	}
}

func TestLocalPutDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewLocal(dir, "https://api.example/")
	require.NoError(t, err)

	url, err := s.Put(context.Background(), "1_car.jpg", []byte("data"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example/uploads/1_car.jpg", url)

	got, err := os.ReadFile(filepath.Join(dir, "1_car.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), got)

	_, err = s.Put(context.Background(), "1_car.jpg", []byte("other"), "image/jpeg")
	assert.Error(t, err, "existing key must not be overwritten")

	_, err = s.Put(context.Background(), "../escape.jpg", []byte("x"), "image/jpeg")
	assert.Error(t, err)

	require.NoError(t, s.Delete(context.Background(), "1_car.jpg"))
	require.NoError(t, s.Delete(context.Background(), "1_car.jpg"))
	_, err = os.Stat(filepath.Join(dir, "1_car.jpg"))
	assert.True(t, os.IsNotExist(err))
}

type fakeS3 struct {
	puts    []*s3.PutObjectInput
	deletes []*s3.DeleteObjectInput
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, in)
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, in)
	return &s3.DeleteObjectOutput{}, f.err
}

func TestS3PutDelete(t *testing.T) {
	api := &fakeS3{}
	s := storage.NewS3WithClient(api, config.StorageConfig{S3Bucket: "cars", S3Region: "eu-west-1"})

	url, err := s.Put(context.Background(), "1_car.jpg", []byte("data"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cars.s3.eu-west-1.amazonaws.com/1_car.jpg", url)
	require.Len(t, api.puts, 1)
	assert.Equal(t, "cars", *api.puts[0].Bucket)
	assert.Equal(t, "1_car.jpg", *api.puts[0].Key)
	assert.Equal(t, "image/jpeg", *api.puts[0].ContentType)

	require.NoError(t, s.Delete(context.Background(), "1_car.jpg"))
	require.Len(t, api.deletes, 1)
	assert.Equal(t, "1_car.jpg", *api.deletes[0].Key)
}

func TestS3URLWithEndpoint(t *testing.T) {
	s := storage.NewS3WithClient(&fakeS3{}, config.StorageConfig{S3Bucket: "cars", S3Endpoint: "http://minio:9000/"})
	url, err := s.Put(context.Background(), "k.png", nil, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000/cars/k.png", url)
}

func TestS3PropagatesErrors(t *testing.T) {
	s := storage.NewS3WithClient(&fakeS3{err: errors.New("denied")}, config.StorageConfig{S3Bucket: "cars"})
	_, err := s.Put(context.Background(), "k.png", nil, "image/png")
	assert.ErrorContains(t, err, "denied")
	assert.ErrorContains(t, s.Delete(context.Background(), "k.png"), "denied")
}
