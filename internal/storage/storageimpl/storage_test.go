package storageimpl

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSink_CreatesDirectoryAndWrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	sink := newLocal(dir, logger.NewNop())

	msg, err := sink.Store(context.Background(), []byte("first"), domain.StoredFileMeta{Name: "a.jpg", ContentType: "image/jpeg"})
	require.NoError(t, err)
	assert.Equal(t, "Saved to Local: "+filepath.Join(dir, "a.jpg"), msg)

	data, err := os.ReadFile(filepath.Join(dir, "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestLocalSink_ExistingDirectoryAndOverwrite(t *testing.T) {
	dir := t.TempDir()
	sink := newLocal(dir, logger.NewNop())
	meta := domain.StoredFileMeta{Name: "same.png", ContentType: "image/png"}

	_, err := sink.Store(context.Background(), []byte("from host a"), meta)
	require.NoError(t, err)
	_, err = sink.Store(context.Background(), []byte("from host b"), meta)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "same.png"))
	require.NoError(t, err)
	assert.Equal(t, "from host b", string(data))
}

func TestLocalSink_ConcurrentWritesOfOneNameLeaveOneBody(t *testing.T) {
	dir := t.TempDir()
	sink := newLocal(dir, logger.NewNop())
	meta := domain.StoredFileMeta{Name: "photo.jpg", ContentType: "image/jpeg"}
	long := strings.Repeat("L", 1<<20)
	short := "short"

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		body := long
		if i%2 == 1 {
			body = short
		}
		wg.Add(1)
		go func(body string) {
			defer wg.Done()
			_, err := sink.Store(context.Background(), []byte(body), meta)
			assert.NoError(t, err)
		}(body)
	}
	wg.Wait()

	data, err := os.ReadFile(filepath.Join(dir, "photo.jpg"))
	require.NoError(t, err)
	assert.True(t, string(data) == long || string(data) == short, "file holds a mix of bodies (%d bytes)", len(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalSink_DirectoryCreationFails(t *testing.T) {
	// parent is a regular file, so the directory cannot be created
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, nil, 0o644))

	_, err := newLocal(filepath.Join(parent, "images"), logger.NewNop()).
		Store(context.Background(), []byte("x"), domain.StoredFileMeta{Name: "a.jpg"})
	assert.ErrorIs(t, err, errors.ErrStorage)
}

type fakeS3 struct {
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, _ := io.ReadAll(in.Body)
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Sink_PutsObjectWithContentType(t *testing.T) {
	client := &fakeS3{}
	sink := newS3(client, "likes-bucket", logger.NewNop())

	msg, err := sink.Store(context.Background(), []byte("png"), domain.StoredFileMeta{Name: "a.png", ContentType: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, "Saved to S3: a.png", msg)

	require.Len(t, client.inputs, 1)
	in := client.inputs[0]
	assert.Equal(t, "likes-bucket", *in.Bucket)
	assert.Equal(t, "a.png", *in.Key)
	require.NotNil(t, in.ContentType)
	assert.Equal(t, "image/png", *in.ContentType)
	assert.Equal(t, "png", client.bodies[0])
}

func TestS3Sink_UnknownContentTypeLeftUnset(t *testing.T) {
	client := &fakeS3{}
	sink := newS3(client, "likes-bucket", logger.NewNop())

	_, err := sink.Store(context.Background(), []byte("?"), domain.StoredFileMeta{Name: "a.xyz"})
	require.NoError(t, err)
	assert.Nil(t, client.inputs[0].ContentType)
}

func TestS3Sink_UploadError(t *testing.T) {
	sink := newS3(&fakeS3{err: assert.AnError}, "likes-bucket", logger.NewNop())

	_, err := sink.Store(context.Background(), []byte("x"), domain.StoredFileMeta{Name: "a.jpg"})
	assert.ErrorIs(t, err, errors.ErrStorage)
	assert.ErrorIs(t, err, assert.AnError)
}
