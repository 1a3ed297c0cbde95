package dump

type Option func(*dumpState)

// Indent sets the per-level indent width. The default is 2.
func Indent(n int) Option {
	return func(ds *dumpState) { ds.indent = n }
}

// WithColors forces colored output with the given palette.
func WithColors(c *Colors) Option {
	return func(ds *dumpState) { ds.colors = c }
}

// AutoColor enables colors only when the destination is a terminal.
func AutoColor() Option {
	return func(ds *dumpState) { ds.auto = true }
}
