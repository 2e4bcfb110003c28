package site

// DefaultExtensions are the page file extensions rewritten by default.
var DefaultExtensions = []string{".html", ".htm"}

// Option configures a Rewriter.
type Option func(*options)

type options struct {
	workers    int
	extensions []string
	dryRun     bool
}

func defaultOptions() options {
	return options{
		extensions: DefaultExtensions,
	}
}

// WithWorkers sets the number of pages processed concurrently.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithExtensions replaces the page file extensions. An empty list keeps
// DefaultExtensions.
func WithExtensions(exts ...string) Option {
	return func(o *options) {
		if len(exts) > 0 {
			o.extensions = append([]string(nil), exts...)
		}
	}
}

// WithDryRun makes the Rewriter report changes without writing them.
func WithDryRun(enabled bool) Option {
	return func(o *options) {
		o.dryRun = enabled
	}
}
