package main

import (
	"github.com/lkarjala/vaelor/internal/casefile"
	"github.com/lkarjala/vaelor/internal/errors"
	"github.com/lkarjala/vaelor/internal/models"
	"net/http"
	"time"
)

type homeTemplateData struct {
	BaseTemplateData

	Beats      []casefile.Beat
	InProgress bool
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	_, inProgress := app.gameSession(r)
	data := homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Beats:            casefile.Opening(),
		InProgress:       inProgress,
	}

	app.render(w, r, http.StatusOK, "home", data)
}

// begin starts a fresh playthrough, replacing any session in progress.
func (app *application) begin(w http.ResponseWriter, r *http.Request) {
	culprit, err := drawCulprit()
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	// New playthrough, new session token.
	if err = app.sessionManager.RenewToken(r.Context()); err != nil {
		app.serverError(w, r, errors.Wrap(err, "renew session token"))
		return
	}
	app.putGameSession(r, models.NewSession(culprit, time.Now()))

	http.Redirect(w, r, "/chambers", http.StatusSeeOther)
}
