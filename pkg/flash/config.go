package flash

// Config holds flash configuration
type Config struct {
	// CookieName is the name of the flash cookie (default: "flash")
	CookieName string `env:"FLASH_COOKIE_NAME" envDefault:"flash"`
}

// DefaultConfig returns default flash configuration
func DefaultConfig() Config {
	return Config{CookieName: "flash"}
}
