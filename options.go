package drawhelper

// Option configures a SpanData during creation.
//
// Example:
//
//	sd, err := drawhelper.NewSpanData(dst, tex,
//	    drawhelper.WithTransform(drawhelper.Rotate(0.3)),
//	    drawhelper.WithBilinear(true),
//	    drawhelper.WithConstAlpha(192),
//	)
type Option func(*config)

// config holds optional configuration for SpanData creation.
type config struct {
	mode       Mode
	transform  Matrix
	bilinear   bool
	tiled      bool
	constAlpha int
	tables     *Tables
}

// defaultConfig returns the default span data options.
func defaultConfig() config {
	return config{
		mode:       SourceOver,
		transform:  Identity(),
		constAlpha: 256,
	}
}

// WithMode sets the composition mode. The default is SourceOver.
func WithMode(m Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithTransform sets the transform from paint space to surface space.
// Gradient geometry and texture pixels are mapped through it.
func WithTransform(m Matrix) Option {
	return func(c *config) {
		c.transform = m
	}
}

// WithBilinear enables bilinear filtering of transformed textures.
func WithBilinear(on bool) Option {
	return func(c *config) {
		c.bilinear = on
	}
}

// WithTiled repeats a texture in both directions instead of clipping it to
// its bounds.
func WithTiled(on bool) Option {
	return func(c *config) {
		c.tiled = on
	}
}

// WithConstAlpha sets the paint opacity in [0, 256], where 256 is fully
// opaque. It multiplies the coverage of every span.
func WithConstAlpha(a int) Option {
	return func(c *config) {
		c.constAlpha = a
	}
}

// WithTables selects the dispatch tables. The default is DefaultTables().
//
// Example:
//
//	scalar := drawhelper.NewTables(drawhelper.Features{})
//	sd, _ := drawhelper.NewSpanData(dst, paint, drawhelper.WithTables(scalar))
func WithTables(t *Tables) Option {
	return func(c *config) {
		c.tables = t
	}
}
