package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/gaurav-prasanna/tohtml5/core"
)

// Stdin is the input name that selects standard input.
const Stdin = "-"

// Source is an opened pipeline input.
type Source struct {
	// Name is used to pick a parser by extension: the path, or the URL path.
	Name string
	// Local is true for files on disk, the only inputs --replace may target.
	Local bool
	Body  io.ReadCloser
}

// IsURL reports whether src is an http or https URL.
func IsURL(src string) bool {
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Open opens src for reading. An empty src or "-" reads stdin; URLs are
// fetched with fetcher; anything else is a file path.
func Open(ctx context.Context, src string, fetcher core.Fetcher, stdin io.Reader) (*Source, error) {
	switch {
	case src == "" || src == Stdin:
		return &Source{Name: Stdin, Body: io.NopCloser(stdin)}, nil

	case IsURL(src):
		result, err := fetcher.Fetch(ctx, src)
		if err != nil {
			return nil, err
		}
		return &Source{
			Name: urlName(src, result.ContentType),
			Body: io.NopCloser(bytes.NewReader(result.Body)),
		}, nil

	default:
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		return &Source{Name: src, Local: true, Body: f}, nil
	}
}

// urlName returns the URL path, or a synthetic .md name when the server
// declares Markdown and the path carries no extension.
func urlName(rawURL, contentType string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if path.Ext(u.Path) == "" && strings.HasPrefix(contentType, "text/markdown") {
		return strings.TrimSuffix(u.Path, "/") + "/index.md"
	}
	return u.Path
}
