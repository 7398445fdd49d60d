package locale

// Config holds locale negotiation configuration
type Config struct {
	// Default is used when nothing in the request matches (default: "en")
	Default string `env:"LOCALE_DEFAULT" envDefault:"en"`

	// Supported lists the languages the application serves (default: "en")
	Supported []string `env:"LOCALE_SUPPORTED" envDefault:"en" envSeparator:","`

	// CookieName names a cookie holding an explicit choice (default: "lang")
	CookieName string `env:"LOCALE_COOKIE_NAME" envDefault:"lang"`

	// QueryParam names a query parameter holding an explicit choice (default: "lang")
	QueryParam string `env:"LOCALE_QUERY_PARAM" envDefault:"lang"`
}

// DefaultConfig returns default locale configuration
func DefaultConfig() Config {
	return Config{
		Default:    "en",
		Supported:  []string{"en"},
		CookieName: "lang",
		QueryParam: "lang",
	}
}
