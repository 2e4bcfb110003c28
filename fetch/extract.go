package fetch

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/accent"
	"github.com/pingcap/errors"
	"github.com/ulikunitz/xz"
)

// ExtractFonts reads an xz-compressed tar stream and writes every regular
// file whose name ends in ext below dir, keeping the member's relative
// path. Other members are ignored. A member path that is absolute or
// climbs out of dir fails with ErrUnsafePath before anything is written
// for it.
func ExtractFonts(r io.Reader, dir, ext string) ([]string, error) {
	zr, err := xz.NewReader(r)
	if err != nil {
		return nil, errors.Annotate(err, "fetch: open xz stream")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Annotate(err, "fetch: create font directory")
	}

	var files []string
	tr := tar.NewReader(zr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return files, errors.Annotate(err, "fetch: read tar archive")
		}
		if hdr.Typeflag != tar.TypeReg || !strings.HasSuffix(hdr.Name, ext) {
			continue
		}

		name := filepath.FromSlash(hdr.Name)
		if !filepath.IsLocal(name) {
			return files, errors.Annotatef(ErrUnsafePath, "%q", hdr.Name)
		}
		path := filepath.Join(dir, name)
		if err := writeMember(path, tr); err != nil {
			return files, err
		}
		files = append(files, path)
	}

	accent.Logger().Debug("extracted font files", "dir", dir, "files", len(files))
	return files, nil
}

func writeMember(path string, r io.Reader) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Annotate(err, "fetch: create font directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644) // #nosec G304 -- path checked by filepath.IsLocal
	if err != nil {
		return errors.Annotate(err, "fetch: create font file")
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errors.Trace(cerr)
		}
	}()
	if _, err := io.Copy(f, r); err != nil { // #nosec G110 -- release archives are trusted input
		return errors.Annotatef(err, "fetch: write %s", path)
	}
	return nil
}
