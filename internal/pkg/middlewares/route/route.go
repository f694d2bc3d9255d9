package route

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Template returns the mux path template matched by r ("/order/{id}"), or
// the raw path when the request did not go through a mux route. Metrics are
// labelled by template to keep order ids out of the label set.
func Template(r *http.Request) string {
	current := mux.CurrentRoute(r)
	if current == nil {
		return r.URL.Path
	}
	template, err := current.GetPathTemplate()
	if err != nil {
		return r.URL.Path
	}
	return template
}
