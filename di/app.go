package di

import (
	"context"

	"riminspect/internal/domains/schedule/transition"
	"riminspect/transport/http"
)

// App bundles the HTTP server with the transition worker so both lifecycles
// start from a single injector.
type App struct {
	HTTP   *http.HTTP
	Worker *transition.Worker
}

// Start runs the transition worker in the background and serves HTTP until
// the process exits.
func (a *App) Start() {
	go a.Worker.Run(context.Background())

	a.HTTP.Serve()
}
