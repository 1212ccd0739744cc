package middleware

import (
	"net/http"
)

// apiHeaders go on every response of the JSON API. Nothing it serves is
// meant to be rendered, framed or sniffed by a browser.
var apiHeaders = map[string]string{
	"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
	"X-Frame-Options":         "DENY",
	"X-Content-Type-Options":  "nosniff",
	"Referrer-Policy":         "no-referrer",
	"Cache-Control":           "no-store",
}

const hsts = "max-age=31536000; includeSubDomains"

// SecurityHeaders sets the API headers, plus HSTS when served over https.
func SecurityHeaders(isHTTPS bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for name, value := range apiHeaders {
				h.Set(name, value)
			}
			if isHTTPS {
				h.Set("Strict-Transport-Security", hsts)
			}
			next.ServeHTTP(w, r)
		})
	}
}
