package httpserver

import (
	"github.com/indigo-web/indigo/http"
	"github.com/indigo-web/indigo/router/inbuilt"
)

// allowCORS lets the browser UI call the API from another origin.
func allowCORS(next inbuilt.Handler, request *http.Request) *http.Response {
	return next(request).
		Header("Access-Control-Allow-Origin", "*").
		Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS").
		Header("Access-Control-Allow-Headers", "Content-Type")
}
