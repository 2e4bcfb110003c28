// Package site applies an accent.Accentuator to every page of a built
// documentation tree.
//
// Each page is parsed with its own dom.Loader and rewritten on one of a
// fixed set of workers. Pages whose markup does not change are left
// untouched on disk; changed pages are replaced atomically, keeping their
// file mode.
//
// Example:
//
//	a, _ := accent.New()
//	rep, err := site.New(a, site.WithWorkers(8)).Rewrite(ctx, "site/")
//	fmt.Printf("%d of %d pages changed\n", rep.Changed, rep.Pages)
package site
