package format

import "strings"

type rule struct {
	format   Format
	contains []string
	prefix   string
}

// rules are checked in order against the lowercased token; the first hit wins.
var rules = []rule{
	{format: HTML, contains: []string{"application/xhtml", "text/html"}, prefix: "*/*"},
	{format: XML, contains: []string{"application/xml", "text/xml"}},
	{format: JSON, contains: []string{"application/json", "text/javascript"}},
	{format: FormURLEncoded, contains: []string{"application/x-www-form-urlencoded"}},
	{format: FormMultipartData, contains: []string{"multipart/form-data", "multipart/mixed"}},
	{format: TXT, contains: []string{"text/plain"}},
	{format: CSV, contains: []string{"csv", "comma-separated-values"}},
	{format: XLS, contains: []string{"ms-excel"}},
	{format: XLSX, contains: []string{"spreadsheetml"}},
	{format: PDF, contains: []string{"pdf"}},
	{format: DOC, contains: []string{"msword"}},
	{format: DOCX, contains: []string{"wordprocessingml"}},
	{format: RTF, contains: []string{"rtf"}},
}

// Resolve classifies an Accept or Content-Type header value. A blank token is
// HTML. A token no rule matches resolves to def, or to HTML when def is the
// zero Format. Quality values are not weighed: the first matching rule wins.
func Resolve(def Format, token string) Format {
	if f, ok := match(token); ok {
		return f
	}
	return orHTML(def)
}

// ResolveAll returns the match of the first token that matches a rule, else
// def, else HTML.
func ResolveAll(def Format, tokens []string) Format {
	for _, t := range tokens {
		if f, ok := match(t); ok {
			return f
		}
	}
	return orHTML(def)
}

func match(token string) (Format, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return HTML, true
	}
	for _, r := range rules {
		if r.prefix != "" && strings.HasPrefix(t, r.prefix) {
			return r.format, true
		}
		for _, s := range r.contains {
			if strings.Contains(t, s) {
				return r.format, true
			}
		}
	}
	return Format{}, false
}

func orHTML(f Format) Format {
	if f.IsZero() {
		return HTML
	}
	return f
}
