package gridtree

// Config holds the tunables from spec §6.3. All of them are safe to leave
// at their defaults; New validates them eagerly so a misconfigured Tree
// never gets constructed.
type Config struct {
	// Dims is the dimensionality N shared by every Pos/Box the tree will
	// ever see. Defaults to 2.
	Dims int
	// MaxEntries is the bucket-list size threshold above which the
	// balancer splits a list into a finer-grid child node.
	MaxEntries int
	// GridExpMin is the finest allowed grid exponent: the smallest grid a
	// node may have is 2^GridExpMin.
	GridExpMin int
	// GridExpMax is the root's grid exponent: the root always starts at
	// grid 2^GridExpMax.
	GridExpMax int
}

// Option configures a Config.
type Option func(*Config)

// WithDims sets the dimensionality of every Pos/Box the tree will handle.
func WithDims(n int) Option {
	return func(c *Config) { c.Dims = n }
}

// WithMaxEntries overrides the bucket-list split threshold.
func WithMaxEntries(n int) Option {
	return func(c *Config) { c.MaxEntries = n }
}

// WithGridExpMin overrides the finest allowed grid exponent.
func WithGridExpMin(n int) Option {
	return func(c *Config) { c.GridExpMin = n }
}

// WithGridExpMax overrides the root grid exponent.
func WithGridExpMax(n int) Option {
	return func(c *Config) { c.GridExpMax = n }
}

func defaultConfig() Config {
	return Config{
		Dims:       2,
		MaxEntries: 10,
		GridExpMin: 2,
		GridExpMax: 10,
	}
}

func buildConfig(opts ...Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	assertInvariant(cfg.Dims > 0, "Dims must be positive, got %d", cfg.Dims)
	assertInvariant(cfg.MaxEntries > 0, "MaxEntries must be positive, got %d", cfg.MaxEntries)
	assertInvariant(cfg.GridExpMin >= 0, "GridExpMin must be non-negative, got %d", cfg.GridExpMin)
	assertInvariant(cfg.GridExpMax > cfg.GridExpMin, "GridExpMax (%d) must exceed GridExpMin (%d)", cfg.GridExpMax, cfg.GridExpMin)
	return cfg
}

func (c Config) gridMin() int64 { return 1 << uint(c.GridExpMin) }
func (c Config) gridMax() int64 { return 1 << uint(c.GridExpMax) }
