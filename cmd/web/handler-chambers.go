package main

import (
	"database/sql"
	"github.com/lkarjala/vaelor/internal/errors"
	"github.com/lkarjala/vaelor/internal/models"
	"net/http"
)

type chambersTemplateData struct {
	BaseTemplateData

	Chambers []models.Chamber
	Satchel  satchelTemplateData
}

func (app *application) chambers(w http.ResponseWriter, r *http.Request) {
	session, ok := app.gameSession(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	chambers, err := app.cases.Chambers(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	satchel, err := app.satchelData(r, session, "")
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	data := chambersTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Chambers:         chambers,
		Satchel:          satchel,
	}

	app.render(w, r, http.StatusOK, "chambers", data)
}

type chamberTemplateData struct {
	BaseTemplateData

	Chamber models.Chamber
	Cards   []models.EvidenceCard
	Chosen  map[string]bool
	Satchel satchelTemplateData
}

func (app *application) chamber(w http.ResponseWriter, r *http.Request) {
	session, ok := app.gameSession(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	ctx := r.Context()
	chamberID := r.PathValue("chamberID")
	chamber, err := app.cases.Chamber(ctx, chamberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	cards, err := app.cases.ChamberEvidence(ctx, chamberID, session.Culprit)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	chosen := make(map[string]bool, len(cards))
	for _, card := range cards {
		chosen[card.Item.ID] = session.Selection.Contains(card.Item.ID)
	}

	satchel, err := app.satchelData(r, session, "")
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	data := chamberTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Chamber:          *chamber,
		Cards:            cards,
		Chosen:           chosen,
		Satchel:          satchel,
	}

	app.render(w, r, http.StatusOK, "chamber", data)
}
