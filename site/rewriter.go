package site

import (
	"bytes"
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/gogpu/accent"
	"github.com/gogpu/accent/dom"
	"github.com/gogpu/accent/internal/parallel"
	"github.com/pingcap/errors"
)

// Report summarizes a rewrite.
type Report struct {
	// Pages is the number of pages processed.
	Pages int

	// Changed is the number of pages whose markup changed.
	Changed int

	// Candidates is the number of candidate elements over all pages.
	Candidates int

	// Accented is the number of accented elements over all pages.
	Accented int
}

func (r *Report) add(p PageResult) {
	r.Pages++
	r.Candidates += p.Candidates
	r.Accented += p.Accented
	if p.Changed {
		r.Changed++
	}
}

// PageResult is the outcome of rewriting one page.
type PageResult struct {
	accent.Result

	// Path is the page file.
	Path string

	// Changed reports whether the rendered markup differs from the input.
	Changed bool
}

// Rewriter rewrites documentation pages on disk.
type Rewriter struct {
	acc  *accent.Accentuator
	opts options
}

// New creates a Rewriter that applies acc to every page.
func New(acc *accent.Accentuator, opts ...Option) *Rewriter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Rewriter{acc: acc, opts: o}
}

// Pages lists the page files under root in lexical order. A root that is a
// file is returned as the only page, whatever its extension.
func (r *Rewriter) Pages(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Annotate(err, "site: stat root")
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var pages []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && r.isPage(path) {
			pages = append(pages, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Annotate(err, "site: walk")
	}
	return pages, nil
}

func (r *Rewriter) isPage(path string) bool {
	return slices.Contains(r.opts.extensions, strings.ToLower(filepath.Ext(path)))
}

// Rewrite processes every page under root on a worker pool. Pages that
// fail are reported in the joined error and do not stop the others.
// Canceling ctx skips the pages not yet started.
func (r *Rewriter) Rewrite(ctx context.Context, root string) (Report, error) {
	pages, err := r.Pages(root)
	if err != nil {
		return Report{}, err
	}

	pool := parallel.NewPool(r.opts.workers)
	defer pool.Close()

	var (
		mu   sync.Mutex
		rep  Report
		errs []error
	)
	jobs := make([]parallel.Job, len(pages))
	for i, path := range pages {
		jobs[i] = func(context.Context) {
			res, err := r.RewriteFile(path)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				accent.Logger().Warn("page not rewritten", "path", path, "err", err)
				errs = append(errs, err)
				return
			}
			rep.add(res)
		}
	}

	if err := pool.Run(ctx, jobs); err != nil {
		errs = append(errs, err)
	}

	accent.Logger().Info("site rewrite complete",
		"root", root,
		"pages", rep.Pages,
		"changed", rep.Changed,
		"accented", rep.Accented,
		"workers", pool.Workers(),
		"dry_run", r.opts.dryRun)
	return rep, stderrors.Join(errs...)
}

// RewriteFile accents one page and replaces the file when its markup
// changed.
func (r *Rewriter) RewriteFile(path string) (PageResult, error) {
	res := PageResult{Path: path}

	// #nosec G304 -- pages come from the site tree chosen by the caller
	src, err := os.ReadFile(path)
	if err != nil {
		return res, errors.Annotate(err, "site: read page")
	}

	l := dom.NewLoader()
	if err := l.OnContentLoaded(func(d *dom.Document) {
		res.Result = r.acc.Run(d)
	}); err != nil {
		return res, err
	}
	doc, err := l.Load(bytes.NewReader(src))
	if err != nil {
		return res, errors.Annotatef(err, "site: parse %s", path)
	}
	if res.Accented == 0 {
		return res, nil
	}

	var out bytes.Buffer
	if err := doc.Render(&out); err != nil {
		return res, errors.Annotatef(err, "site: render %s", path)
	}
	if bytes.Equal(out.Bytes(), src) {
		return res, nil
	}
	res.Changed = true

	accent.Logger().Debug("page rewritten",
		"path", path,
		"candidates", res.Candidates,
		"accented", res.Accented)
	if r.opts.dryRun {
		return res, nil
	}
	return res, writeAtomic(path, out.Bytes())
}

// writeAtomic replaces path with data through a temporary file in the same
// directory, keeping the original file mode.
func writeAtomic(path string, data []byte) (err error) {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Annotate(err, "site: stat page")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Annotate(err, "site: create temporary page")
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Annotate(err, "site: write page")
	}
	if err = tmp.Chmod(info.Mode().Perm()); err != nil {
		_ = tmp.Close()
		return errors.Annotate(err, "site: chmod page")
	}
	if err = tmp.Close(); err != nil {
		return errors.Annotate(err, "site: close page")
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Annotate(err, "site: replace page")
	}
	return nil
}
