package repositories

import (
	"context"
	"database/sql"
	"github.com/lkarjala/vaelor/internal/errors"
	"github.com/lkarjala/vaelor/internal/models"
	"github.com/lkarjala/vaelor/internal/ritual"
	"github.com/lkarjala/vaelor/internal/sqlite"
	"log/slog"
)

// CaseRepository reads the authored casefile: chambers, evidence, and suspects.
type CaseRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewCaseRepository(db *sqlite.Database, logger *slog.Logger) *CaseRepository {
	return &CaseRepository{
		db:     db,
		logger: logger.With("source", "CaseRepository"),
	}
}

// evidenceRow joins a suspect-linked item with its optional neutral replacement.
type evidenceRow struct {
	ID              string         `db:"id"`
	ChamberID       string         `db:"chamber_id"`
	Weight          int64          `db:"weight"`
	Name            string         `db:"name"`
	Description     string         `db:"description"`
	SuspectID       sql.NullString `db:"suspect_id"`
	ReplID          sql.NullString `db:"repl_id"`
	ReplWeight      sql.NullInt64  `db:"repl_weight"`
	ReplName        sql.NullString `db:"repl_name"`
	ReplDescription sql.NullString `db:"repl_description"`
}

// card converts the row to the evidence card a player with the given culprit should see.
// An item implicating another suspect with substantial weight is swapped for its authored
// neutral replacement, so only the culprit's trail can carry the ritual past the threshold.
func (row evidenceRow) card(culprit ritual.Suspect) (models.EvidenceCard, error) {
	swap := false
	var implicates *ritual.Suspect
	if row.SuspectID.Valid {
		suspect, err := ritual.ParseSuspect(row.SuspectID.String)
		if err != nil {
			return models.EvidenceCard{}, errors.Wrap(err, "parse evidence suspect", slog.String("itemID", row.ID))
		}
		implicates = &suspect
		swap = suspect != culprit && ritual.Weight(row.Weight) != ritual.WeightFaint && row.ReplID.Valid
	}
	if swap {
		return models.EvidenceCard{
			Item: ritual.EvidenceItem{
				ID:        row.ReplID.String,
				ChamberID: row.ChamberID,
				Weight:    ritual.Weight(row.ReplWeight.Int64),
			},
			Name:        row.ReplName.String,
			Description: row.ReplDescription.String,
			Implicates:  nil,
		}, nil
	}
	return models.EvidenceCard{
		Item: ritual.EvidenceItem{
			ID:        row.ID,
			ChamberID: row.ChamberID,
			Weight:    ritual.Weight(row.Weight),
		},
		Name:        row.Name,
		Description: row.Description,
		Implicates:  implicates,
	}, nil
}

const evidenceQuery = `SELECT e.id,
       e.chamber_id,
       e.weight,
       e.name,
       e.description,
       e.suspect_id,
       r.id          AS repl_id,
       r.weight      AS repl_weight,
       r.name        AS repl_name,
       r.description AS repl_description
FROM evidence_items e
         LEFT JOIN evidence_items r ON r.replaces = e.id
WHERE e.replaces IS NULL`

// Chambers lists the memory chambers in authoring order.
func (r *CaseRepository) Chambers(ctx context.Context) ([]models.Chamber, error) {
	var chambers []models.Chamber
	stmt := `SELECT id, label, title, description, position FROM chambers ORDER BY position`
	if err := r.db.ReadOnly.SelectContext(ctx, &chambers, stmt); err != nil {
		return nil, errors.Wrap(err, "select chambers")
	}
	return chambers, nil
}

// Chamber reads a single chamber.
func (r *CaseRepository) Chamber(ctx context.Context, chamberID string) (*models.Chamber, error) {
	var chamber models.Chamber
	stmt := `SELECT id, label, title, description, position FROM chambers WHERE id = ?`
	if err := r.db.ReadOnly.GetContext(ctx, &chamber, stmt, chamberID); err != nil {
		return nil, errors.Wrap(err, "get chamber", slog.String("chamberID", chamberID))
	}
	return &chamber, nil
}

// ChamberEvidence lists the evidence cards visible in a chamber for the given culprit.
func (r *CaseRepository) ChamberEvidence(
	ctx context.Context,
	chamberID string,
	culprit ritual.Suspect,
) ([]models.EvidenceCard, error) {
	var rows []evidenceRow
	stmt := evidenceQuery + ` AND e.chamber_id = ? ORDER BY e.position`
	if err := r.db.ReadOnly.SelectContext(ctx, &rows, stmt, chamberID); err != nil {
		return nil, errors.Wrap(err, "select chamber evidence", slog.String("chamberID", chamberID))
	}
	cards := make([]models.EvidenceCard, 0, len(rows))
	for _, row := range rows {
		card, err := row.card(culprit)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Evidence reads the card for a single visible item. The itemID must be the id the player was
// shown, so a neutral replacement resolves through its own id and the suspect-linked original
// it stands in for is not reachable while the swap is active.
func (r *CaseRepository) Evidence(
	ctx context.Context,
	itemID string,
	culprit ritual.Suspect,
) (*models.EvidenceCard, error) {
	var rows []evidenceRow
	stmt := evidenceQuery + ` AND (e.id = ? OR r.id = ?)`
	if err := r.db.ReadOnly.SelectContext(ctx, &rows, stmt, itemID, itemID); err != nil {
		return nil, errors.Wrap(err, "select evidence", slog.String("itemID", itemID))
	}
	if len(rows) != 1 {
		return nil, errors.Wrap(sql.ErrNoRows, "evidence not found", slog.String("itemID", itemID))
	}
	card, err := rows[0].card(culprit)
	if err != nil {
		return nil, err
	}
	if card.Item.ID != itemID {
		return nil, errors.Wrap(sql.ErrNoRows, "evidence not visible", slog.String("itemID", itemID))
	}
	return &card, nil
}

// AllEvidence lists every visible card for the given culprit across all chambers, in chamber
// and authoring order. Used by the casefile audit.
func (r *CaseRepository) AllEvidence(ctx context.Context, culprit ritual.Suspect) ([]models.EvidenceCard, error) {
	var rows []evidenceRow
	stmt := evidenceQuery + `
ORDER BY (SELECT position FROM chambers WHERE id = e.chamber_id), e.position`
	if err := r.db.ReadOnly.SelectContext(ctx, &rows, stmt); err != nil {
		return nil, errors.Wrap(err, "select all evidence")
	}
	cards := make([]models.EvidenceCard, 0, len(rows))
	for _, row := range rows {
		card, err := row.card(culprit)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// Suspects lists the suspect cards in authoring order.
func (r *CaseRepository) Suspects(ctx context.Context) ([]models.SuspectCard, error) {
	type suspectRow struct {
		ID      string `db:"id"`
		Name    string `db:"name"`
		Role    string `db:"role"`
		Motive  string `db:"motive"`
		Flavour string `db:"flavour"`
	}
	var rows []suspectRow
	stmt := `SELECT id, name, role, motive, flavour FROM suspects ORDER BY rowid`
	if err := r.db.ReadOnly.SelectContext(ctx, &rows, stmt); err != nil {
		return nil, errors.Wrap(err, "select suspects")
	}
	cards := make([]models.SuspectCard, 0, len(rows))
	for _, row := range rows {
		suspect, err := ritual.ParseSuspect(row.ID)
		if err != nil {
			return nil, errors.Wrap(err, "parse suspect", slog.String("suspectID", row.ID))
		}
		cards = append(cards, models.SuspectCard{
			Suspect: suspect,
			Name:    row.Name,
			Role:    row.Role,
			Motive:  row.Motive,
			Flavour: row.Flavour,
		})
	}
	return cards, nil
}
