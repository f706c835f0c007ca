package repositories

import (
	"context"
	"github.com/lkarjala/vaelor/internal/errors"
	"github.com/lkarjala/vaelor/internal/ritual"
	"github.com/lkarjala/vaelor/internal/sqlite"
	"log/slog"
)

// VerdictRepository appends one row per finished playthrough and serves the outcome tallies
// shown on the epilogue page. It never stores in-progress session state.
type VerdictRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewVerdictRepository(db *sqlite.Database, logger *slog.Logger) *VerdictRepository {
	return &VerdictRepository{
		db:     db,
		logger: logger.With("source", "VerdictRepository"),
	}
}

// Record appends a finished playthrough. accused is nil when the ritual collapsed before an
// accusation was made.
func (r *VerdictRepository) Record(
	ctx context.Context,
	outcome ritual.Outcome,
	accused *ritual.Suspect,
	culprit ritual.Suspect,
	totalWeight int,
) error {
	var accusedID *string
	if accused != nil {
		id := accused.String()
		accusedID = &id
	}
	stmt := `INSERT INTO verdicts (outcome, accused_id, culprit_id, total_weight) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ReadWrite.ExecContext(ctx, stmt, outcome.String(), accusedID, culprit.String(), totalWeight); err != nil {
		return errors.Wrap(err, "insert verdict", slog.String("outcome", outcome.String()))
	}
	return nil
}

// Tally counts finished playthroughs per outcome. Outcomes that never happened are absent.
func (r *VerdictRepository) Tally(ctx context.Context) (map[ritual.Outcome]int, error) {
	type tallyRow struct {
		Outcome string `db:"outcome"`
		Count   int    `db:"count"`
	}
	var rows []tallyRow
	stmt := `SELECT outcome, COUNT(*) AS count FROM verdicts GROUP BY outcome`
	if err := r.db.ReadOnly.SelectContext(ctx, &rows, stmt); err != nil {
		return nil, errors.Wrap(err, "select verdict tally")
	}
	tally := make(map[ritual.Outcome]int, len(rows))
	for _, row := range rows {
		outcome, err := ritual.ParseOutcome(row.Outcome)
		if err != nil {
			return nil, errors.Wrap(err, "parse outcome", slog.String("outcome", row.Outcome))
		}
		tally[outcome] = row.Count
	}
	return tally, nil
}
