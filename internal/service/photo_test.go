package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leon37/RoastMaster/internal/infrastructure/vision"
	"github.com/leon37/RoastMaster/internal/model"
)

type fakeExtractor struct {
	summary *model.FeatureSummary
	err     error
	seen    string
	existed bool
}

func (f *fakeExtractor) Analyze(path string) (*model.FeatureSummary, error) {
	f.seen = path
	_, statErr := os.Stat(path)
	f.existed = statErr == nil
	return f.summary, f.err
}

func newPhotoService(t *testing.T, ex FeatureExtractor, text string) (*PhotoService, string) {
	t.Helper()
	dir := t.TempDir()
	roaster := NewRoastService(&fakeProvider{text: text}, nil, time.Second)
	return NewPhotoService(ex, roaster, dir), dir
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp upload must be removed")
}

func TestRoastUpload_Success(t *testing.T) {
	ex := &fakeExtractor{summary: sampleFeatures()}
	svc, dir := newPhotoService(t, ex, "Great photo, terrible decisions.")

	res, err := svc.RoastUpload(context.Background(), Upload{
		Filename:    "../../etc/passwd.JPG",
		ContentType: "image/jpeg",
		Body:        bytes.NewReader([]byte("fake-jpeg")),
	}, model.StyleSarcastic)
	require.NoError(t, err)

	assert.Equal(t, "Great photo, terrible decisions.", res.Roast)
	assert.Equal(t, model.StyleSarcastic, res.Style)
	assert.Same(t, ex.summary, res.Features)

	assert.True(t, ex.existed, "file exists while being analyzed")
	assert.True(t, strings.HasPrefix(ex.seen, dir))
	assert.True(t, strings.HasSuffix(ex.seen, ".jpg"))
	assertDirEmpty(t, dir)
}

func TestRoastUpload_RejectsNonImage(t *testing.T) {
	ex := &fakeExtractor{}
	svc, dir := newPhotoService(t, ex, "")

	_, err := svc.RoastUpload(context.Background(), Upload{
		Filename:    "notes.txt",
		ContentType: "text/plain",
		Body:        strings.NewReader("hello"),
	}, model.StylePlayful)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, ex.seen, "extractor must not run")
	assertDirEmpty(t, dir)
}

func TestRoastUpload_DecodeErrorIsInvalidInput(t *testing.T) {
	ex := &fakeExtractor{err: fmt.Errorf("%w: unknown format", vision.ErrDecode)}
	svc, dir := newPhotoService(t, ex, "")

	_, err := svc.RoastUpload(context.Background(), Upload{
		Filename:    "x.png",
		ContentType: "image/png",
		Body:        strings.NewReader("garbage"),
	}, model.StylePlayful)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assertDirEmpty(t, dir)
}

func TestRoastUpload_AnalyzerErrorStillCleansUp(t *testing.T) {
	ex := &fakeExtractor{err: errors.New("disk on fire")}
	svc, dir := newPhotoService(t, ex, "")

	_, err := svc.RoastUpload(context.Background(), Upload{
		Filename:    "x.png",
		ContentType: "image/png",
		Body:        strings.NewReader("bytes"),
	}, model.StylePlayful)

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidInput))
	assertDirEmpty(t, dir)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestRoastUpload_WriteFailureCleansUp(t *testing.T) {
	svc, dir := newPhotoService(t, &fakeExtractor{}, "")

	_, err := svc.RoastUpload(context.Background(), Upload{
		Filename:    "x.png",
		ContentType: "image/png",
		Body:        failingReader{},
	}, model.StylePlayful)

	require.Error(t, err)
	assertDirEmpty(t, dir)
}

func TestSafeExt(t *testing.T) {
	assert.Equal(t, ".png", safeExt("photo.PNG"))
	assert.Equal(t, "", safeExt("photo"))
	assert.Equal(t, "", safeExt("photo.j$g"))
	assert.Equal(t, "", safeExt("photo.verylongext"))
}
