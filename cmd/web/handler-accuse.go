package main

import (
	"github.com/lkarjala/vaelor/internal/models"
	"github.com/lkarjala/vaelor/internal/ritual"
	"net/http"
)

type accuseTemplateData struct {
	BaseTemplateData

	Suspects []models.SuspectCard
	Satchel  satchelTemplateData
}

func (app *application) accuse(w http.ResponseWriter, r *http.Request) {
	session, ok := app.gameSession(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if session.Accused != nil {
		http.Redirect(w, r, "/epilogue", http.StatusSeeOther)
		return
	}

	suspects, err := app.cases.Suspects(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	satchel, err := app.satchelData(r, session, "")
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	data := accuseTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Suspects:         suspects,
		Satchel:          satchel,
	}

	app.render(w, r, http.StatusOK, "accuse", data)
}

// submitAccusation names a suspect and seals the verdict. The first accusation wins; repeats
// fall through to the epilogue unchanged.
func (app *application) submitAccusation(w http.ResponseWriter, r *http.Request) {
	session, ok := app.gameSession(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if session.Accused == nil {
		suspect, err := ritual.ParseSuspect(r.PostFormValue("suspect"))
		if err != nil {
			app.clientError(w, r, http.StatusUnprocessableEntity)
			return
		}

		session = session.Accuse(suspect)
		outcome := session.Resolve()
		if err = app.verdicts.Record(
			r.Context(), outcome, session.Accused, session.Culprit, session.Selection.TotalWeight(),
		); err != nil {
			app.serverError(w, r, err)
			return
		}
		session.Recorded = true
		app.putGameSession(r, session)
	}

	http.Redirect(w, r, "/epilogue", http.StatusSeeOther)
}
