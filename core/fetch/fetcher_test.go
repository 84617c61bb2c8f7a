package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<h1>A</h1>"))
	}))
	defer srv.Close()

	result, err := New(0, "test-agent").Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "test-agent", gotUA)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", result.ContentType)
	assert.Equal(t, "<h1>A</h1>", string(result.Body))
}

func TestHTTPFetcherDefaults(t *testing.T) {
	f := New(0, "")
	assert.Equal(t, DefaultTimeout, f.client.Timeout)
	assert.Equal(t, DefaultUserAgent, f.userAgent)
}

func TestHTTPFetcherStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := New(0, "").Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("http://example.com"))
	assert.True(t, IsURL("https://example.com/a/b.html"))
	assert.False(t, IsURL("page.html"))
	assert.False(t, IsURL("/tmp/page.html"))
	assert.False(t, IsURL("ftp://example.com/x"))
	assert.False(t, IsURL("https://"))
	assert.False(t, IsURL(Stdin))
}

func TestOpenStdin(t *testing.T) {
	for _, src := range []string{"", Stdin} {
		s, err := Open(context.Background(), src, New(0, ""), strings.NewReader("<p>x</p>"))
		require.NoError(t, err)

		data, err := io.ReadAll(s.Body)
		require.NoError(t, err)
		assert.Equal(t, "<p>x</p>", string(data))
		assert.Equal(t, Stdin, s.Name)
		assert.False(t, s.Local)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("# A"), 0644))

	s, err := Open(context.Background(), path, New(0, ""), nil)
	require.NoError(t, err)
	defer s.Body.Close()

	assert.Equal(t, path, s.Name)
	assert.True(t, s.Local)
	data, err := io.ReadAll(s.Body)
	require.NoError(t, err)
	assert.Equal(t, "# A", string(data))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing.html"), New(0, ""), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/docs/" {
			w.Header().Set("Content-Type", "text/markdown")
			w.Write([]byte("# Docs"))
			return
		}
		w.Write([]byte("<h1>Page</h1>"))
	}))
	defer srv.Close()

	s, err := Open(context.Background(), srv.URL+"/page.html", New(0, ""), nil)
	require.NoError(t, err)
	assert.Equal(t, "/page.html", s.Name)
	assert.False(t, s.Local)

	s, err = Open(context.Background(), srv.URL+"/docs/", New(0, ""), nil)
	require.NoError(t, err)
	assert.Equal(t, "/docs/index.md", s.Name)
	data, err := io.ReadAll(s.Body)
	require.NoError(t, err)
	assert.Equal(t, "# Docs", string(data))
}
