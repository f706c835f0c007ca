package main

import (
	"github.com/lkarjala/vaelor/internal/casefile"
	"github.com/lkarjala/vaelor/internal/ritual"
	"net/http"
	"time"
)

type tallyEntry struct {
	Title string
	Count int
}

type epilogueTemplateData struct {
	BaseTemplateData

	Title string
	Beats []casefile.Beat
	Tally []tallyEntry
}

// epilogue plays the ending script for the finished session. A session that reached the
// epilogue without an accusation, for instance because the memories faded, collapses into the
// insufficient-evidence ending; an unfinished one is sent back to the chambers.
func (app *application) epilogue(w http.ResponseWriter, r *http.Request) {
	session, ok := app.gameSession(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if !session.Recorded {
		if session.Accused == nil && !session.Faded(time.Now()) {
			http.Redirect(w, r, "/chambers", http.StatusSeeOther)
			return
		}
		outcome := session.Resolve()
		if err := app.verdicts.Record(
			r.Context(), outcome, session.Accused, session.Culprit, session.Selection.TotalWeight(),
		); err != nil {
			app.serverError(w, r, err)
			return
		}
		session.Recorded = true
		app.putGameSession(r, session)
	}

	outcome := session.Resolve()
	tally, err := app.verdicts.Tally(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	entries := make([]tallyEntry, 0, len(tally))
	for _, o := range []ritual.Outcome{
		ritual.FailureInsufficientEvidence,
		ritual.FalseJudgement,
		ritual.TrueJustice,
		ritual.CrownOfMortalKing,
	} {
		if count, counted := tally[o]; counted {
			entries = append(entries, tallyEntry{Title: casefile.OutcomeTitle(o), Count: count})
		}
	}

	data := epilogueTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Title:            casefile.OutcomeTitle(outcome),
		Beats:            casefile.Epilogue(outcome, session.Culprit),
		Tally:            entries,
	}

	app.render(w, r, http.StatusOK, "epilogue", data)
}
