package storage

import (
	"Food-Share-Backend/internal/testutil"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	puts    map[string][]byte
	types   map[string]string
	deleted []string
	putErr  error
}

func newFakeObjectAPI() *fakeObjectAPI {
	return &fakeObjectAPI{puts: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeObjectAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(in.Key)
	f.puts[key] = data
	f.types[key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestUploadImage(t *testing.T) {
	api := newFakeObjectAPI()
	store := newAwsS3(api, "bucket", "eu-west-1")
	file := testutil.FileHeader(t, "image", "bread.bin", testutil.PNGBytes)

	key, err := store.UploadFile(context.Background(), "abc", file, "food-listings", AllowImage...)
	require.NoError(t, err)
	assert.Equal(t, "food-listings/abc.png", key)
	assert.Equal(t, testutil.PNGBytes, api.puts[key])
	assert.Equal(t, "image/png", api.types[key])
}

func TestUploadRejectsNonImage(t *testing.T) {
	api := newFakeObjectAPI()
	store := newAwsS3(api, "bucket", "eu-west-1")
	file := testutil.FileHeader(t, "image", "notes.png", []byte("just some text"))

	_, err := store.UploadFile(context.Background(), "abc", file, "food-listings", AllowImage...)
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
	assert.Empty(t, api.puts)
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	store := newAwsS3(newFakeObjectAPI(), "bucket", "eu-west-1")
	file := testutil.FileHeader(t, "image", "empty.png", nil)

	_, err := store.UploadFile(context.Background(), "abc", file, "food-listings", AllowImage...)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestUploadPropagatesStoreError(t *testing.T) {
	api := newFakeObjectAPI()
	api.putErr = errors.New("boom")
	store := newAwsS3(api, "bucket", "eu-west-1")
	file := testutil.FileHeader(t, "image", "bread.png", testutil.PNGBytes)

	_, err := store.UploadFile(context.Background(), "abc", file, "food-listings", AllowImage...)
	assert.Error(t, err)
}

func TestPublicLinkRoundTrip(t *testing.T) {
	store := newAwsS3(newFakeObjectAPI(), "bucket", "eu-west-1")

	link := store.GetPublicLinkKey("food-listings/abc.png")
	assert.Equal(t, "https://bucket.s3.eu-west-1.amazonaws.com/food-listings/abc.png", link)
	assert.Equal(t, "food-listings/abc.png", store.GetObjectKeyFromLink(link))
	assert.Empty(t, store.GetObjectKeyFromLink("https://elsewhere.example/img.png"))
	assert.Empty(t, store.GetObjectKeyFromLink(""))
}

func TestDeleteFile(t *testing.T) {
	api := newFakeObjectAPI()
	store := newAwsS3(api, "bucket", "eu-west-1")

	require.NoError(t, store.DeleteFile(context.Background(), "food-listings/abc.png"))
	assert.Equal(t, []string{"food-listings/abc.png"}, api.deleted)
}
