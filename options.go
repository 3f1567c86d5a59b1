package geoslice

// OpenOptions configures Open.
type OpenOptions struct {
	StrictMeta bool
	SizeCheck  bool
}

// Option is a functional option for configuring Open.
type Option func(*OpenOptions)

func defaultOptions() *OpenOptions {
	return &OpenOptions{SizeCheck: true}
}

// WithStrictMeta rejects descriptors with absent or invalid fields instead
// of accepting zero-value defaults.
func WithStrictMeta() Option {
	return func(o *OpenOptions) { o.StrictMeta = true }
}

// WithoutSizeCheck skips validating the payload length against the size the
// descriptor implies. Window reads over an undersized payload may then fail
// at access time instead of load time.
func WithoutSizeCheck() Option {
	return func(o *OpenOptions) { o.SizeCheck = false }
}
