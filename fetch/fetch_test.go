package fetch

import (
	"archive/tar"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"
)

type member struct {
	name string
	body string
	typ  byte
}

// archive builds an in-memory .tar.xz stream.
func archive(t *testing.T, members ...member) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	tw := tar.NewWriter(zw)
	for _, m := range members {
		typ := m.typ
		if typ == 0 {
			typ = tar.TypeReg
		}
		hdr := &tar.Header{Name: m.name, Typeflag: typ, Mode: 0o644}
		if typ == tar.TypeReg {
			hdr.Size = int64(len(m.body))
		}
		if typ == tar.TypeSymlink {
			hdr.Linkname = "/etc/passwd"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if typ == tar.TypeReg {
			if _, err := tw.Write([]byte(m.body)); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestClientURL(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		version string
		want    string
	}{
		{"default version", nil, "", BaseURL + "v3.2.1/Hack.tar.xz"},
		{"explicit version", nil, "v3.1.1", BaseURL + "v3.1.1/Hack.tar.xz"},
		{"mirror without slash", []Option{WithBaseURL("https://mirror.example/nf")}, "v3.0.0", "https://mirror.example/nf/v3.0.0/Hack.tar.xz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewClient(tt.opts...).URL("Hack", tt.version); got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractFonts(t *testing.T) {
	data := archive(t,
		member{name: "HackNerdFont-Regular.ttf", body: "regular"},
		member{name: "LICENSE.md", body: "license"},
		member{name: "fonts", typ: tar.TypeDir},
		member{name: "fonts/HackNerdFontMono-Bold.ttf", body: "bold"},
		member{name: "link.ttf", typ: tar.TypeSymlink},
	)
	dir := filepath.Join(t.TempDir(), "HackNerdFont")

	files, err := ExtractFonts(bytes.NewReader(data), dir, ".ttf")
	if err != nil {
		t.Fatalf("ExtractFonts() error = %v", err)
	}
	want := []string{
		filepath.Join(dir, "HackNerdFont-Regular.ttf"),
		filepath.Join(dir, "fonts", "HackNerdFontMono-Bold.ttf"),
	}
	if len(files) != len(want) {
		t.Fatalf("ExtractFonts() = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}

	got, err := os.ReadFile(want[1])
	if err != nil || string(got) != "bold" {
		t.Errorf("extracted content = %q, %v", got, err)
	}
	for _, skipped := range []string{"LICENSE.md", "link.ttf"} {
		if _, err := os.Lstat(filepath.Join(dir, skipped)); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s was extracted", skipped)
		}
	}
}

func TestExtractFontsUnsafePath(t *testing.T) {
	for _, name := range []string{"../evil.ttf", "/abs/evil.ttf", "fonts/../../evil.ttf"} {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			dir := filepath.Join(root, "out")
			_, err := ExtractFonts(bytes.NewReader(archive(t, member{name: name, body: "x"})), dir, ".ttf")
			if !errors.Is(err, ErrUnsafePath) {
				t.Errorf("ExtractFonts() error = %v, want ErrUnsafePath", err)
			}
			if _, err := os.Stat(filepath.Join(root, "evil.ttf")); !errors.Is(err, os.ErrNotExist) {
				t.Error("file written outside the destination")
			}
		})
	}
}

func TestExtractFontsNotXZ(t *testing.T) {
	if _, err := ExtractFonts(bytes.NewReader([]byte("PK\x03\x04")), t.TempDir(), ".ttf"); err == nil {
		t.Error("ExtractFonts() accepted a non-xz stream")
	}
}

func TestDownload(t *testing.T) {
	payload := archive(t, member{name: "HackNerdFont-Regular.ttf", body: "regular"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v3.2.1/Hack.tar.xz":
			_, _ = w.Write(payload)
		case "/v3.2.1/Broken.tar.xz":
			w.WriteHeader(http.StatusBadGateway)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))

	t.Run("ok", func(t *testing.T) {
		var buf bytes.Buffer
		n, err := c.Download(context.Background(), "Hack", "", &buf)
		if err != nil {
			t.Fatalf("Download() error = %v", err)
		}
		if n != int64(len(payload)) || !bytes.Equal(buf.Bytes(), payload) {
			t.Errorf("Download() wrote %d bytes, want %d", n, len(payload))
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := c.Download(context.Background(), "Nope", "", &bytes.Buffer{})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Download() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("bad status", func(t *testing.T) {
		_, err := c.Download(context.Background(), "Broken", "", &bytes.Buffer{})
		var se *StatusError
		if !errors.As(err, &se) || se.StatusCode != http.StatusBadGateway {
			t.Errorf("Download() error = %v, want *StatusError 502", err)
		}
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := c.Download(ctx, "Hack", "", &bytes.Buffer{}); !errors.Is(err, context.Canceled) {
			t.Errorf("Download() error = %v, want context.Canceled", err)
		}
	})

	t.Run("fetch", func(t *testing.T) {
		dir := t.TempDir()
		files, err := c.Fetch(context.Background(), "Hack", "v3.2.1", dir)
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if len(files) != 1 || files[0] != filepath.Join(dir, "HackNerdFont-Regular.ttf") {
			t.Errorf("Fetch() = %v", files)
		}
	})
}
