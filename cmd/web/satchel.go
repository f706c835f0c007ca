package main

import (
	"github.com/lkarjala/vaelor/internal/errors"
	"github.com/lkarjala/vaelor/internal/models"
	"github.com/lkarjala/vaelor/internal/ritual"
	"log/slog"
	"net/http"
	"time"
)

// satchelTemplateData summarises the inquisitor's satchel for the chamber pages and the
// crystallise fragment swap.
type satchelTemplateData struct {
	Cards       []models.EvidenceCard
	TotalWeight int
	SlotsLeft   int
	CanProceed  bool
	// Remaining is the number of seconds until the king's memories fade, never negative.
	Remaining int
	Faded     bool
	Message   string
}

func (app *application) satchelData(
	r *http.Request,
	session models.Session,
	message string,
) (satchelTemplateData, error) {
	ctx := r.Context()
	cards := make([]models.EvidenceCard, 0, session.Selection.Size())
	for _, item := range session.Selection.Chosen {
		card, err := app.cases.Evidence(ctx, item.ID, session.Culprit)
		if err != nil {
			return satchelTemplateData{}, errors.Wrap(err, "load chosen evidence", slog.String("itemID", item.ID))
		}
		cards = append(cards, *card)
	}
	now := time.Now()
	return satchelTemplateData{
		Cards:       cards,
		TotalWeight: session.Selection.TotalWeight(),
		SlotsLeft:   ritual.MaxChosen - session.Selection.Size(),
		CanProceed:  session.Selection.CanProceed(),
		Remaining:   max(0, int(session.Deadline.Sub(now).Seconds())),
		Faded:       session.Faded(now),
		Message:     message,
	}, nil
}
