package api

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dixieflatline76/Wallfetch/pkg/wallpaper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedImages(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("image_data:"+name), 0644))
	}
	return dir
}

func TestImageListing(t *testing.T) {
	dir := seedImages(t, "b.png", "a.jpg", "notes.txt", "c.webp")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.jpg"), 0755))

	s, svc := newTestServer(t)
	svc.On("GetDirectory").Return(dir, nil)

	rr := serve(s, http.MethodGet, "/images", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var images []LocalImage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &images))
	require.Len(t, images, 3)
	assert.Equal(t, "a.jpg", images[0].Name)
	assert.Equal(t, "http://example.com/images/a.jpg", images[0].URL)
	assert.Equal(t, "c.webp", images[2].Name)
}

func TestImageListing_Paging(t *testing.T) {
	dir := seedImages(t, "a.jpg", "b.jpg", "c.jpg")
	s, svc := newTestServer(t)
	svc.On("GetDirectory").Return(dir, nil)

	var images []LocalImage
	rr := serve(s, http.MethodGet, "/images?page=2&per_page=2", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &images))
	require.Len(t, images, 1)
	assert.Equal(t, "c.jpg", images[0].Name)

	rr = serve(s, http.MethodGet, "/images?page=9&per_page=2", "")
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestImageListing_MissingDirectory(t *testing.T) {
	s, svc := newTestServer(t)
	svc.On("GetDirectory").Return(filepath.Join(t.TempDir(), "never-created"), nil)

	rr := serve(s, http.MethodGet, "/images", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestImageListing_NotConfigured(t *testing.T) {
	s, svc := newTestServer(t)
	svc.On("GetDirectory").Return("", wallpaper.ErrNotConfigured)

	rr := serve(s, http.MethodGet, "/images", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, KindNotConfigured, decodeError(t, rr).Error)
}

func TestImageAsset(t *testing.T) {
	dir := seedImages(t, "a.jpg")
	s, svc := newTestServer(t)
	svc.On("GetDirectory").Return(dir, nil)

	rr := serve(s, http.MethodGet, "/images/a.jpg", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image_data:a.jpg", rr.Body.String())

	rr = serve(s, http.MethodGet, "/images/missing.jpg", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResolveImagePath(t *testing.T) {
	dir := t.TempDir()

	got, err := resolveImagePath(dir, "a.jpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.jpg"), got)

	for _, bad := range []string{"", ".", "..", "../etc/passwd", `..\win.ini`, "a/b.jpg"} {
		_, err := resolveImagePath(dir, bad)
		assert.Error(t, err, bad)
	}
}

func TestImageListing_EscapesNames(t *testing.T) {
	dir := seedImages(t, "my wall#1.jpg")
	s, svc := newTestServer(t)
	svc.On("GetDirectory").Return(dir, nil)

	rr := serve(s, http.MethodGet, "/images", "")
	var images []LocalImage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &images))
	require.Len(t, images, 1)
	assert.Equal(t, "http://example.com/images/my%20wall%231.jpg", images[0].URL)

	// The listed URL resolves back to the file.
	rr = serve(s, http.MethodGet, strings.TrimPrefix(images[0].URL, "http://example.com"), "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image_data:my wall#1.jpg", rr.Body.String())
}
