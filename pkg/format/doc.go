// Package format maps Accept and Content-Type header values onto content
// formats.
//
// Resolution is a fixed list of substring rules checked in order against the
// lowercased header value; the first hit wins:
//
//	blank, */*, text/html, application/xhtml   HTML
//	application/xml, text/xml                  XML
//	application/json, text/javascript          JSON
//	application/x-www-form-urlencoded          FormURLEncoded
//	multipart/form-data, multipart/mixed       FormMultipartData
//	text/plain                                 TXT
//	csv, comma-separated-values                CSV
//	ms-excel                                   XLS
//	spreadsheetml                              XLSX
//	pdf                                        PDF
//	msword                                     DOC
//	wordprocessingml                           DOCX
//	rtf                                        RTF
//
// A value no rule matches resolves to the caller's default. Quality values in
// Accept are not weighed, so "application/json;q=0.1, text/html" is HTML.
//
// A Registry adds custom formats, registered in code or loaded from YAML:
//
//	reg := format.NewRegistry()
//	if err := reg.LoadYAML(strings.NewReader("ics: text/calendar\n")); err != nil {
//	    return err
//	}
//	accept, content := reg.Negotiate(r, format.HTML)
package format
