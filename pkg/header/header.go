// Package header holds canonical HTTP header names.
package header

const (
	Accept             = "Accept"
	AcceptCharset      = "Accept-Charset"
	AcceptEncoding     = "Accept-Encoding"
	AcceptLanguage     = "Accept-Language"
	Allow              = "Allow"
	Authorization      = "Authorization"
	CacheControl       = "Cache-Control"
	Connection         = "Connection"
	ContentDisposition = "Content-Disposition"
	ContentEncoding    = "Content-Encoding"
	ContentLanguage    = "Content-Language"
	ContentLength      = "Content-Length"
	ContentType        = "Content-Type"
	Cookie             = "Cookie"
	Date               = "Date"
	ETag               = "ETag"
	Expires            = "Expires"
	Host               = "Host"
	IfModifiedSince    = "If-Modified-Since"
	IfNoneMatch        = "If-None-Match"
	LastModified       = "Last-Modified"
	Location           = "Location"
	Origin             = "Origin"
	Pragma             = "Pragma"
	Referer            = "Referer"
	RetryAfter         = "Retry-After"
	Server             = "Server"
	SetCookie          = "Set-Cookie"
	UserAgent          = "User-Agent"
	Vary               = "Vary"
	WWWAuthenticate    = "WWW-Authenticate"
	XForwardedFor      = "X-Forwarded-For"
	XForwardedProto    = "X-Forwarded-Proto"
	XRequestedWith     = "X-Requested-With"
	XRequestID         = "X-Request-ID"
)

// IsAjax reports whether the X-Requested-With value marks an XMLHttpRequest.
func IsAjax(xRequestedWith string) bool {
	return xRequestedWith == "XMLHttpRequest"
}
