package models

import (
	"github.com/lkarjala/vaelor/internal/ritual"
)

// Chamber is a memory of the dying king that the inquisitor can enter. Purely a presentation
// concept: chambers sequence the play session but carry no resolution logic.
type Chamber struct {
	ID          string `db:"id"`
	Label       string `db:"label"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Position    int64  `db:"position"`
}

// EvidenceCard is an evidence item dressed for presentation. Implicates is nil for neutral
// items such as the replacements shown when the implicated suspect is not the culprit.
type EvidenceCard struct {
	Item        ritual.EvidenceItem
	Name        string
	Description string
	Implicates  *ritual.Suspect
}

// SuspectCard is a suspect dressed for the accusation page.
type SuspectCard struct {
	Suspect ritual.Suspect
	Name    string
	Role    string
	Motive  string
	Flavour string
}
