package wallpaper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dixieflatline76/Wallfetch/pkg/wallhaven"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newConfiguredStore(t *testing.T, dir string) *DirectoryStore {
	t.Helper()
	s := NewDirectoryStore(filepath.Join(t.TempDir(), "directory.txt"))
	require.NoError(t, s.Set(dir))
	return s
}

func TestDownload_WritesIdenticalBytes(t *testing.T) {
	out := t.TempDir()
	body := []byte("\xff\xd8\xff\xe0 not really a jpeg")

	client := new(MockClient)
	client.On("FetchBytes", mock.Anything, "https://host/dir/file123.jpg").Return(body, nil).Once()

	d := NewDownloader(client, newConfiguredStore(t, out))
	path, err := d.Download(context.Background(), "https://host/dir/file123.jpg")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "file123.jpg"), path)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, got)
	client.AssertExpectations(t)
}

func TestDownload_TruncatesExistingFile(t *testing.T) {
	out := t.TempDir()
	target := filepath.Join(out, "a.png")
	require.NoError(t, os.WriteFile(target, []byte("a much longer previous file content"), 0644))

	client := new(MockClient)
	client.On("FetchBytes", mock.Anything, mock.Anything).Return([]byte("new"), nil)

	path, err := NewDownloader(client, newConfiguredStore(t, out)).Download(context.Background(), "https://host/a.png")
	require.NoError(t, err)

	got, _ := os.ReadFile(path)
	assert.Equal(t, "new", string(got))
}

func TestDownload_SniffsMissingExtension(t *testing.T) {
	out := t.TempDir()
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

	client := new(MockClient)
	client.On("FetchBytes", mock.Anything, mock.Anything).Return(png, nil)

	path, err := NewDownloader(client, newConfiguredStore(t, out)).Download(context.Background(), "https://host/image/abc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "abc.png"), path)
}

func TestDownload_NotConfigured(t *testing.T) {
	client := new(MockClient)
	d := NewDownloader(client, NewDirectoryStore(filepath.Join(t.TempDir(), "directory.txt")))

	_, err := d.Download(context.Background(), "https://host/dir/file123.jpg")
	assert.ErrorIs(t, err, ErrNotConfigured)
	client.AssertNotCalled(t, "FetchBytes", mock.Anything, mock.Anything)
}

func TestDownload_NetworkError(t *testing.T) {
	client := new(MockClient)
	client.On("FetchBytes", mock.Anything, mock.Anything).Return(nil, &wallhaven.HTTPError{StatusCode: 404, URL: "u"})

	_, err := NewDownloader(client, newConfiguredStore(t, t.TempDir())).Download(context.Background(), "https://host/x.jpg")
	var httpErr *wallhaven.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 404, httpErr.StatusCode)
}

func TestDownload_MissingDirectoryIsWriteError(t *testing.T) {
	client := new(MockClient)
	client.On("FetchBytes", mock.Anything, mock.Anything).Return([]byte("x"), nil)

	missing := filepath.Join(t.TempDir(), "does", "not", "exist")
	_, err := NewDownloader(client, newConfiguredStore(t, missing)).Download(context.Background(), "https://host/x.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving")
}

func TestDownload_BadURL(t *testing.T) {
	client := new(MockClient)
	_, err := NewDownloader(client, newConfiguredStore(t, t.TempDir())).Download(context.Background(), "https://host/dir/")
	assert.Error(t, err)
	client.AssertNotCalled(t, "FetchBytes", mock.Anything, mock.Anything)
}

func TestDownload_ConcurrentSameURLFetchesOnce(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		_, _ = w.Write([]byte("shared-bytes"))
	}))
	defer ts.Close()

	out := t.TempDir()
	d := NewDownloader(wallhaven.NewClient(wallhaven.Options{}), newConfiguredStore(t, out))

	const callers = 8
	var wg sync.WaitGroup
	paths := make([]string, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			paths[i], errs[i] = d.Download(context.Background(), ts.URL+"/full/shared.jpg")
		}(i)
	}

	// Let every caller join the in-flight request before it completes.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, filepath.Join(out, "shared.jpg"), paths[i])
	}
	assert.Equal(t, int32(1), hits.Load())
}

// gatedFetcher blocks every fetch until release is closed or the fetch
// context ends.
type gatedFetcher struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedFetcher) FetchBytes(ctx context.Context, _ string) ([]byte, error) {
	g.calls.Add(1)
	g.once.Do(func() { close(g.started) })
	select {
	case <-g.release:
		return []byte("gated-bytes"), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestDownload_CancelledCallerDoesNotFailSharedDownload(t *testing.T) {
	out := t.TempDir()
	fetcher := &gatedFetcher{started: make(chan struct{}), release: make(chan struct{})}
	d := NewDownloader(fetcher, newConfiguredStore(t, out))
	const url = "https://host/full/a.jpg"

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := d.Download(firstCtx, url)
		firstErr <- err
	}()
	<-fetcher.started

	secondDone := make(chan struct{})
	var (
		path string
		err  error
	)
	go func() {
		defer close(secondDone)
		path, err = d.Download(context.Background(), url)
	}()

	// Let the second caller join, then the first gives up mid-fetch.
	time.Sleep(50 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(fetcher.release)
	<-secondDone

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "a.jpg"), path)
	assert.Equal(t, int32(1), fetcher.calls.Load())
	got, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "gated-bytes", string(got))
}

func TestDownload_SameNameFromDifferentHostsLastWriteWins(t *testing.T) {
	out := t.TempDir()
	client := new(MockClient)
	client.On("FetchBytes", mock.Anything, "https://a/x.jpg").Return([]byte("from-a"), nil).Once()
	client.On("FetchBytes", mock.Anything, "https://b/x.jpg").Return([]byte("from-b"), nil).Once()
	d := NewDownloader(client, newConfiguredStore(t, out))

	pathA, err := d.Download(context.Background(), "https://a/x.jpg")
	require.NoError(t, err)
	pathB, err := d.Download(context.Background(), "https://b/x.jpg")
	require.NoError(t, err)

	assert.Equal(t, pathA, pathB)
	got, err := os.ReadFile(pathB)
	require.NoError(t, err)
	assert.Equal(t, "from-b", string(got))
	client.AssertExpectations(t)
}
