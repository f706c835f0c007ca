// Package ritual implements the evidence-resolution rules of the memory ritual.
//
// The ritual gathers crystallised evidence from the dying king's memories, checks whether the
// gathered weight is enough to attempt the binding, and judges the inquisitor's accusation
// against the true culprit. All types are small immutable values and all operations are pure,
// so callers own the lifecycle of a play session and can persist it however they like.
package ritual

import (
	"github.com/lkarjala/vaelor/internal/errors"
	"log/slog"
	"slices"
)

const (
	// ProceedThreshold is the total evidence weight required for the ritual to proceed.
	ProceedThreshold = 12
	// MaxChosen is the number of evidence items that can be crystallised during one session.
	MaxChosen = 3
)

var (
	// ErrSelectionFull is returned when a fourth evidence item is crystallised.
	ErrSelectionFull = errors.NewSentinel("selection is full")
	// ErrDuplicateItem is returned when the same evidence item is crystallised twice.
	ErrDuplicateItem = errors.NewSentinel("item already chosen")
)

// Weight is the evidentiary value of an item. Authored content only uses 1, 5, and 10.
type Weight int

const (
	WeightFaint       Weight = 1
	WeightSubstantial Weight = 5
	WeightDamning     Weight = 10
)

// Valid reports whether the weight is one of the authored values.
func (w Weight) Valid() bool {
	return w == WeightFaint || w == WeightSubstantial || w == WeightDamning
}

// EvidenceItem is a piece of evidence placed in a memory chamber at authoring time.
// It is never mutated at runtime.
type EvidenceItem struct {
	ID        string
	ChamberID string
	Weight    Weight
}

// Selection holds the evidence crystallised so far. It is a value type: Add returns a new
// Selection and never mutates the receiver, so a Selection can be freely copied between
// requests. The zero value is an empty selection.
//
// Chosen is exported for serialization. Treat it as read-only and go through Add.
type Selection struct {
	Chosen []EvidenceItem
}

// Add returns a new Selection with item appended.
//
// It fails with ErrSelectionFull when MaxChosen items have already been crystallised and with
// ErrDuplicateItem when the item is already part of the selection.
func (s Selection) Add(item EvidenceItem) (Selection, error) {
	if len(s.Chosen) >= MaxChosen {
		return s, errors.Wrap(ErrSelectionFull, "add evidence", slog.String("itemID", item.ID))
	}
	if slices.ContainsFunc(s.Chosen, func(chosen EvidenceItem) bool { return chosen.ID == item.ID }) {
		return s, errors.Wrap(ErrDuplicateItem, "add evidence", slog.String("itemID", item.ID))
	}
	chosen := make([]EvidenceItem, len(s.Chosen), len(s.Chosen)+1)
	copy(chosen, s.Chosen)
	return Selection{Chosen: append(chosen, item)}, nil
}

// Contains reports whether the item with the given ID has been crystallised.
func (s Selection) Contains(itemID string) bool {
	return slices.ContainsFunc(s.Chosen, func(chosen EvidenceItem) bool { return chosen.ID == itemID })
}

// Size returns the number of crystallised items.
func (s Selection) Size() int {
	return len(s.Chosen)
}

// TotalWeight sums the weights of the crystallised evidence. An empty selection weighs 0.
func (s Selection) TotalWeight() int {
	total := 0
	for _, item := range s.Chosen {
		total += int(item.Weight)
	}
	return total
}

// CanProceed reports whether the gathered evidence meets the ritual's proceed threshold.
func (s Selection) CanProceed() bool {
	return s.TotalWeight() >= ProceedThreshold
}

// Suspect is one of the three people who had access to the king's chamber.
type Suspect int

const (
	QueenElira Suspect = iota
	MasterVale
	BrannicAshhand
)

// Suspects lists every suspect variant in authoring order.
func Suspects() []Suspect {
	return []Suspect{QueenElira, MasterVale, BrannicAshhand}
}

func (s Suspect) String() string {
	switch s {
	case QueenElira:
		return "queen-elira"
	case MasterVale:
		return "master-vale"
	case BrannicAshhand:
		return "brannic-ashhand"
	}
	return "unknown"
}

// ParseSuspect maps a stored suspect identifier back to its variant.
func ParseSuspect(id string) (Suspect, error) {
	for _, s := range Suspects() {
		if s.String() == id {
			return s, nil
		}
	}
	return QueenElira, errors.New("unknown suspect", slog.String("id", id))
}

// Outcome is one of the four scripted endings.
type Outcome int

const (
	// FailureInsufficientEvidence means the ritual collapsed before any accusation mattered.
	FailureInsufficientEvidence Outcome = iota
	// FalseJudgement means the ritual proceeded but the wrong blood was named.
	FalseJudgement
	// TrueJustice means the culprit was named with exactly the qualifying weight.
	TrueJustice
	// CrownOfMortalKing means the culprit was named with weight to spare.
	CrownOfMortalKing
)

func (o Outcome) String() string {
	switch o {
	case FailureInsufficientEvidence:
		return "failure-insufficient-evidence"
	case FalseJudgement:
		return "false-judgement"
	case TrueJustice:
		return "true-justice"
	case CrownOfMortalKing:
		return "crown-of-mortal-king"
	}
	return "unknown"
}

// ParseOutcome maps a stored outcome identifier back to its variant.
func ParseOutcome(id string) (Outcome, error) {
	outcomes := []Outcome{FailureInsufficientEvidence, FalseJudgement, TrueJustice, CrownOfMortalKing}
	for _, o := range outcomes {
		if o.String() == id {
			return o, nil
		}
	}
	return FailureInsufficientEvidence, errors.New("unknown outcome", slog.String("id", id))
}

// Resolve judges a finished session. It is total: every well-typed input maps to exactly one
// Outcome and no error can arise.
//
// The proceed gate is evaluated first, so the accusation is irrelevant when the evidence falls
// short. A correct accusation at exactly the threshold earns TrueJustice; anything above it
// earns CrownOfMortalKing.
func Resolve(selection Selection, accused Suspect, culprit Suspect) Outcome {
	if !selection.CanProceed() {
		return FailureInsufficientEvidence
	}
	if accused != culprit {
		return FalseJudgement
	}
	if selection.TotalWeight() == ProceedThreshold {
		return TrueJustice
	}
	return CrownOfMortalKing
}
