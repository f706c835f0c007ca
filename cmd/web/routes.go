package main

import (
	"github.com/justinas/alice"
	"net/http"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	fileServer := http.FileServer(http.Dir(app.staticDir))
	mux.Handle("GET /static/", http.StripPrefix("/static", cacheForeverHeaders(fileServer)))

	mux.HandleFunc("GET /api/healthy", app.healthy)

	session := alice.New(app.sessionManager.LoadAndSave, noSurf, commonContext)

	mux.Handle("GET /{$}", session.ThenFunc(app.home))
	mux.Handle("POST /begin", session.ThenFunc(app.begin))
	mux.Handle("GET /chambers", session.ThenFunc(app.chambers))
	mux.Handle("GET /chambers/{chamberID}", session.ThenFunc(app.chamber))
	mux.Handle("POST /chambers/{chamberID}/crystallise", session.ThenFunc(app.crystallise))
	mux.Handle("GET /accuse", session.ThenFunc(app.accuse))
	mux.Handle("POST /accuse", session.ThenFunc(app.submitAccusation))
	mux.Handle("GET /epilogue", session.ThenFunc(app.epilogue))

	standard := alice.New(app.recoverPanic, app.logRequest, app.secureHeaders)

	return standard.Then(mux)
}
