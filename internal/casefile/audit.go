package casefile

import (
	"context"
	"github.com/lkarjala/vaelor/internal/errors"
	"github.com/lkarjala/vaelor/internal/models"
	"github.com/lkarjala/vaelor/internal/repositories"
	"github.com/lkarjala/vaelor/internal/ritual"
	"log/slog"
)

const cardsPerChamber = 3

// Audit validates the authored casefile against the ritual's rules. It checks the content a
// player can actually see, once per possible culprit, so a bad replacement row or a weight
// typo fails loudly before it ships.
//
// Invariants checked:
//   - six chambers, three visible evidence cards each;
//   - every visible weight is an authored ritual weight;
//   - only the drawn culprit retains substantial or damning evidence;
//   - for every culprit the visible evidence can reach the proceed threshold exactly and
//     exceed it, so all four endings stay reachable;
//   - every outcome has an epilogue script for every culprit.
func Audit(ctx context.Context, repo *repositories.CaseRepository) error {
	chambers, err := repo.Chambers(ctx)
	if err != nil {
		return errors.Wrap(err, "read chambers")
	}
	if len(chambers) != 6 {
		return errors.New("casefile must have six chambers", slog.Int("chambers", len(chambers)))
	}

	for _, culprit := range ritual.Suspects() {
		cards, err := repo.AllEvidence(ctx, culprit)
		if err != nil {
			return errors.Wrap(err, "read evidence", slog.String("culprit", culprit.String()))
		}
		if err = auditVisibleEvidence(cards, chambers, culprit); err != nil {
			return err
		}

		outcomes := []ritual.Outcome{
			ritual.FailureInsufficientEvidence,
			ritual.FalseJudgement,
			ritual.TrueJustice,
			ritual.CrownOfMortalKing,
		}
		for _, outcome := range outcomes {
			if len(Epilogue(outcome, culprit)) == 0 {
				return errors.New("missing epilogue script",
					slog.String("outcome", outcome.String()),
					slog.String("culprit", culprit.String()))
			}
		}
	}
	return nil
}

func auditVisibleEvidence(cards []models.EvidenceCard, chambers []models.Chamber, culprit ritual.Suspect) error {
	perChamber := map[string]int{}
	for _, card := range cards {
		if !card.Item.Weight.Valid() {
			return errors.New("evidence weight outside authored domain",
				slog.String("itemID", card.Item.ID),
				slog.Int("weight", int(card.Item.Weight)))
		}
		if card.Implicates != nil && *card.Implicates != culprit && card.Item.Weight != ritual.WeightFaint {
			return errors.New("non-culprit suspect retains substantial evidence",
				slog.String("itemID", card.Item.ID),
				slog.String("suspect", card.Implicates.String()),
				slog.String("culprit", culprit.String()))
		}
		perChamber[card.Item.ChamberID]++
	}
	for _, chamber := range chambers {
		if perChamber[chamber.ID] != cardsPerChamber {
			return errors.New("chamber must show exactly three evidence cards",
				slog.String("chamberID", chamber.ID),
				slog.Int("cards", perChamber[chamber.ID]),
				slog.String("culprit", culprit.String()))
		}
	}

	exact, above := reachableTotals(cards)
	if !exact {
		return errors.New("proceed threshold not exactly reachable",
			slog.String("culprit", culprit.String()))
	}
	if !above {
		return errors.New("proceed threshold not exceedable",
			slog.String("culprit", culprit.String()))
	}
	return nil
}

// reachableTotals brute-forces every selection of up to three distinct visible cards and
// reports whether a total of exactly the threshold and one above it exist. The content is
// small enough that the cubic loop is fine.
func reachableTotals(cards []models.EvidenceCard) (exact bool, above bool) {
	totals := []int{}
	for i := range cards {
		totals = append(totals, int(cards[i].Item.Weight))
		for j := i + 1; j < len(cards); j++ {
			totals = append(totals, int(cards[i].Item.Weight)+int(cards[j].Item.Weight))
			for k := j + 1; k < len(cards); k++ {
				totals = append(totals, int(cards[i].Item.Weight)+int(cards[j].Item.Weight)+int(cards[k].Item.Weight))
			}
		}
	}
	for _, total := range totals {
		if total == ritual.ProceedThreshold {
			exact = true
		}
		if total > ritual.ProceedThreshold {
			above = true
		}
	}
	return exact, above
}
