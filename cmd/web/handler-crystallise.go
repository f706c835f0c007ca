package main

import (
	"database/sql"
	"fmt"
	"github.com/lkarjala/vaelor/internal/errors"
	"github.com/lkarjala/vaelor/internal/ritual"
	"net/http"
	"time"
)

// crystallise commits one evidence card from the chamber into the satchel. Responds with the
// satchel fragment for htmx requests and redirects back to the chamber otherwise.
func (app *application) crystallise(w http.ResponseWriter, r *http.Request) {
	session, ok := app.gameSession(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if session.Faded(time.Now()) {
		// Memories are gone but the accusation still stands open.
		http.Redirect(w, r, "/accuse", http.StatusSeeOther)
		return
	}

	ctx := r.Context()
	chamberID := r.PathValue("chamberID")
	itemID := r.PostFormValue("item")
	card, err := app.cases.Evidence(ctx, itemID, session.Culprit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}
	if card.Item.ChamberID != chamberID {
		app.notFound(w, r)
		return
	}

	var message string
	selection, err := session.Selection.Add(card.Item)
	switch {
	case err == nil:
		session.Selection = selection
		app.putGameSession(r, session)
		message = fmt.Sprintf("%s crystallised.", card.Name)
	case errors.Is(err, ritual.ErrDuplicateItem):
		message = fmt.Sprintf("%s is already in the satchel.", card.Name)
	case errors.Is(err, ritual.ErrSelectionFull):
		message = "The satchel holds three crystallised memories at most."
	default:
		app.serverError(w, r, err)
		return
	}

	h := app.htmx.NewHandler(w, r)
	if h.IsHxRequest() {
		satchel, satchelErr := app.satchelData(r, session, message)
		if satchelErr != nil {
			app.serverError(w, r, satchelErr)
			return
		}
		app.renderFragment(w, r, http.StatusOK, "chamber", "satchel", satchel)
		return
	}

	http.Redirect(w, r, "/chambers/"+chamberID, http.StatusSeeOther)
}
