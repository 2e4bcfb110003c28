package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gogpu/accent"
	"github.com/pingcap/errors"
)

// Release location defaults.
const (
	// BaseURL is the download prefix of Nerd Fonts releases.
	BaseURL = "https://github.com/ryanoasis/nerd-fonts/releases/download/"

	// DefaultVersion is the release fetched when no version is given.
	// There is no "latest" alias for release assets.
	DefaultVersion = "v3.2.1"

	// ArchiveType is the archive format fetched. Releases also ship .zip,
	// which is notably larger.
	ArchiveType = ".tar.xz"

	// FontExtension is the extension of the font files extracted.
	FontExtension = ".ttf"
)

// Client downloads release archives.
type Client struct {
	http    *http.Client
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client. Nil keeps http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithBaseURL replaces BaseURL, e.g. with a mirror.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// NewClient creates a Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:    http.DefaultClient,
		baseURL: BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}
	return c
}

// URL returns the download URL of archive at version.
// An empty version means DefaultVersion.
func (c *Client) URL(archive, version string) string {
	if version == "" {
		version = DefaultVersion
	}
	return c.baseURL + version + "/" + archive + ArchiveType
}

// Download copies the release archive to w and returns the number of bytes
// written. A 404 answer returns ErrNotFound, any other non-2xx answer a
// *StatusError.
func (c *Client) Download(ctx context.Context, archive, version string, w io.Writer) (int64, error) {
	url := c.URL(archive, version)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return 0, errors.Annotate(err, "fetch: build request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, errors.Annotatef(err, "fetch: %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return 0, errors.Annotate(ErrNotFound, url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return 0, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, errors.Annotatef(err, "fetch: read %s", url)
	}
	accent.Logger().Info("downloaded release archive", "url", url, "bytes", n)
	return n, nil
}

// Fetch downloads archive at version and extracts its font files into dir.
// It returns the paths of the extracted files.
func (c *Client) Fetch(ctx context.Context, archive, version, dir string) ([]string, error) {
	tmp, err := os.CreateTemp("", archive+"-*"+ArchiveType)
	if err != nil {
		return nil, errors.Annotate(err, "fetch: create temporary archive")
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if _, err := c.Download(ctx, archive, version, tmp); err != nil {
		return nil, err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Trace(err)
	}
	return ExtractFonts(tmp, dir, FontExtension)
}
