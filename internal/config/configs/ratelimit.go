package configs

// RateLimit configures the per-client token bucket on the decision
// route. Disabled by default.
type RateLimit struct {
	Enabled bool    `env:"ENABLED" envDefault:"false"`
	RPS     float64 `env:"RPS" envDefault:"50"`
	Burst   int     `env:"BURST" envDefault:"100"`
}
