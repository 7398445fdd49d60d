package format

import (
	"encoding/json"
	"hash/fnv"
	"strings"
)

// Format is a content format: a lowercase name and a MIME type.
// The zero value is not a valid format.
type Format struct {
	name        string
	contentType string
	custom      bool
}

var (
	HTML              = predefined("html", "text/html")
	XML               = predefined("xml", "application/xml")
	JSON              = predefined("json", "application/json")
	FormURLEncoded    = predefined("form", "application/x-www-form-urlencoded")
	FormMultipartData = predefined("multipart", "multipart/form-data")
	TXT               = predefined("txt", "text/plain")
	CSV               = predefined("csv", "text/csv")
	XLS               = predefined("xls", "application/vnd.ms-excel")
	XLSX              = predefined("xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	PDF               = predefined("pdf", "application/pdf")
	DOC               = predefined("doc", "application/msword")
	DOCX              = predefined("docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	RTF               = predefined("rtf", "application/rtf")
	JavaScript        = predefined("js", "application/javascript")
	CSS               = predefined("css", "text/css")
	PNG               = predefined("png", "image/png")
	JPG               = predefined("jpg", "image/jpeg")
	GIF               = predefined("gif", "image/gif")
	SVG               = predefined("svg", "image/svg+xml")
	ICO               = predefined("ico", "image/x-icon")
	Binary            = predefined("bin", "application/octet-stream")

	// Unknown stands for a format the resolver could not classify.
	// See ContentTypeOf for the content type it is served with.
	Unknown = predefined("unknown", "text/html")
)

var all = []Format{
	HTML, XML, JSON, FormURLEncoded, FormMultipartData, TXT, CSV, XLS, XLSX, PDF,
	DOC, DOCX, RTF, JavaScript, CSS, PNG, JPG, GIF, SVG, ICO, Binary, Unknown,
}

var byName = func() map[string]Format {
	m := make(map[string]Format, len(all))
	for _, f := range all {
		m[f.name] = f
	}
	return m
}()

func predefined(name, contentType string) Format {
	return Format{name: name, contentType: contentType}
}

// New returns a custom format. A custom format never equals a predefined one,
// even with the same name and content type.
func New(name, contentType string) Format {
	return Format{
		name:        strings.ToLower(strings.TrimSpace(name)),
		contentType: strings.TrimSpace(contentType),
		custom:      true,
	}
}

// All returns the predefined formats.
func All() []Format {
	return append([]Format(nil), all...)
}

func (f Format) Name() string        { return f.name }
func (f Format) ContentType() string { return f.contentType }
func (f Format) IsCustom() bool      { return f.custom }
func (f Format) IsZero() bool        { return f.name == "" }
func (f Format) String() string      { return f.name }

// Ordinal is a stable number derived from the name.
func (f Format) Ordinal() uint32 {
	h := fnv.New32a()
	h.Write([]byte(f.name))
	return h.Sum32()
}

// IsText reports whether the content type is textual.
func (f Format) IsText() bool {
	ct := f.contentType
	if strings.HasPrefix(ct, "text/") {
		return true
	}
	switch ct {
	case "application/json", "application/xml", "application/javascript",
		"application/x-www-form-urlencoded", "image/svg+xml":
		return true
	}
	return strings.HasSuffix(ct, "+json") || strings.HasSuffix(ct, "+xml")
}

func (f Format) Equal(other Format) bool {
	return f == other
}

type errorBody struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// ErrorMessage renders msg as an error body in this format.
// JSON and JavaScript get {"ok":false,"message":msg}; every other format gets
// msg unchanged.
func (f Format) ErrorMessage(msg string) string {
	switch f {
	case JSON, JavaScript:
		b, err := json.Marshal(errorBody{Message: msg})
		if err != nil {
			return msg
		}
		return string(b)
	default:
		return msg
	}
}

// Lookup finds a predefined format by name, ignoring case. Anything up to the
// last '.' is dropped, so ".json" and "report.json" both find JSON.
func Lookup(name string) (Format, bool) {
	f, ok := byName[normalizeName(name)]
	return f, ok
}

// ByName is Lookup falling back to Unknown.
func ByName(name string) Format {
	if f, ok := Lookup(name); ok {
		return f
	}
	return Unknown
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
