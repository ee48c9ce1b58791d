package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	name, contentType, body string
}

func (f *fakeObjects) Put(_ context.Context, name, contentType string, r io.Reader, _ int64) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.name, f.contentType, f.body = name, contentType, string(b)
	return "http://minio/product-images/" + name, nil
}

func TestImageUpload(t *testing.T) {
	objects := &fakeObjects{}
	svc := NewImageService(objects)

	url, err := svc.Upload(context.Background(), "Phone.PNG", "image/png", strings.NewReader("png-bytes"), 9)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(objects.name, ".png"))
	assert.Equal(t, "image/png", objects.contentType)
	assert.Equal(t, "png-bytes", objects.body)
	assert.Equal(t, "http://minio/product-images/"+objects.name, url)
}

func TestImageUploadRejects(t *testing.T) {
	_, err := NewImageService(&fakeObjects{}).Upload(context.Background(), "notes.txt", "text/plain", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, ErrNotAnImage)

	_, err = NewImageService(nil).Upload(context.Background(), "a.png", "image/png", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, ErrImageStorageDisabled)
}
