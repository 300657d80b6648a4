package configs

// Redis holds connection settings for the target record store. Only
// used when the store driver is "redis".
type Redis struct {
	// Addr is the host:port of the redis server.
	Addr string `env:"ADDRESS" envDefault:"localhost:6379"`
	// Password is optional; empty means no AUTH.
	Password string `env:"PASSWORD" envDefault:""`
	// DB selects the redis logical database.
	DB int `env:"DB" envDefault:"0"`
}
