package main

import (
	"encoding/gob"
	"github.com/lkarjala/vaelor/internal/errors"
	"github.com/lkarjala/vaelor/internal/models"
	"github.com/lkarjala/vaelor/internal/random"
	"github.com/lkarjala/vaelor/internal/ritual"
	"net/http"
)

const gameSessionKey = "gameSession"

func init() {
	gob.Register(models.Session{})
}

// gameSession loads the play session from the session store. The second return value is false
// when no playthrough has been started.
func (app *application) gameSession(r *http.Request) (models.Session, bool) {
	session, ok := app.sessionManager.Get(r.Context(), gameSessionKey).(models.Session)
	return session, ok
}

func (app *application) putGameSession(r *http.Request, session models.Session) {
	app.sessionManager.Put(r.Context(), gameSessionKey, session)
}

// drawCulprit picks the culprit for a new playthrough uniformly at random.
func drawCulprit() (ritual.Suspect, error) {
	suspects := ritual.Suspects()
	i, err := random.Index(len(suspects))
	if err != nil {
		return 0, errors.Wrap(err, "draw culprit")
	}
	return suspects[i], nil
}
