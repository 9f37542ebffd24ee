package app

import "net/http"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string       // settings directory, e.g. $HOME/.chartleap
	ServerURL string       // optional plot server base URL, e.g. http://127.0.0.1:8080
	HTTP      *http.Client // optional; defaults to http.DefaultClient
}
