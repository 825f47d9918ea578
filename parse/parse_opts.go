package parse

type parseOpts struct {
	filename string
}

type ParseOption func(*parseOpts)

// WithFilename names the source in errors.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}
