// Package locale negotiates the request language with golang.org/x/text/language.
//
// A Resolver checks an explicit choice first (the "lang" cookie, then the
// "lang" query parameter), then Accept-Language, and falls back to the
// configured default. Explicit choices must match a supported language;
// Accept-Language goes through the x/text matcher, so "en-GB" is served by a
// supported "en".
//
//	res, err := locale.NewResolver(locale.Config{
//	    Default:   "en",
//	    Supported: []string{"en", "de", "pt-BR"},
//	})
//	router.Use(res.Middleware)
//
//	tag, _ := locale.FromContext(r.Context())
package locale
