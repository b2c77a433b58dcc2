package profilecache

// Option configures a Client beyond what Config covers.
type Option func(*clientOptions)

type clientOptions struct {
	logger   *Logger
	keywords []string
}

// WithLogger provides a structured logger for cache events. Without this
// option all log output is discarded.
//
// Example:
//
//	client, _ := profilecache.New(cfg, remote,
//	    profilecache.WithLogger(profilecache.NewLogger(profilecache.DefaultLogConfig())))
func WithLogger(logger *Logger) Option {
	return func(opts *clientOptions) {
		opts.logger = logger
	}
}

// WithContentPolicy sets the static keyword rules used by FilterContent.
// A post whose caption contains one of the keywords is removed unless the
// caller opts in with AllowSensitive.
//
// Example:
//
//	client, _ := profilecache.New(cfg, remote,
//	    profilecache.WithContentPolicy("nsfw", "gore"))
func WithContentPolicy(keywords ...string) Option {
	return func(opts *clientOptions) {
		opts.keywords = append(opts.keywords, keywords...)
	}
}

// FilterOption adjusts a single FilterContent call.
type FilterOption func(*filterOptions)

type filterOptions struct {
	allowSensitive bool
}

// AllowSensitive disables the keyword-based content-policy rules for one
// call, for users whose preference permits sensitive content. Blocked and
// muted ownership filtering always applies.
func AllowSensitive() FilterOption {
	return func(opts *filterOptions) {
		opts.allowSensitive = true
	}
}
