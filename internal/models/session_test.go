package models_test

import (
	"github.com/lkarjala/vaelor/internal/models"
	"github.com/lkarjala/vaelor/internal/ritual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestSession_deadline(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	session := models.NewSession(ritual.MasterVale, start)

	assert.False(t, session.Faded(start))
	assert.False(t, session.Faded(start.Add(models.MemoryHalfLife)))
	assert.True(t, session.Faded(start.Add(models.MemoryHalfLife+time.Second)))
}

func TestSession_accuse(t *testing.T) {
	t.Parallel()
	session := models.NewSession(ritual.QueenElira, time.Now())

	accused := session.Accuse(ritual.BrannicAshhand)
	require.NotNil(t, accused.Accused)
	assert.Equal(t, ritual.BrannicAshhand, *accused.Accused)
	// The original value stays untouched and the first accusation wins.
	assert.Nil(t, session.Accused)
	again := accused.Accuse(ritual.QueenElira)
	assert.Equal(t, ritual.BrannicAshhand, *again.Accused)
}

func TestSession_resolve(t *testing.T) {
	t.Parallel()
	session := models.NewSession(ritual.QueenElira, time.Now())

	// No accusation collapses the ritual regardless of the evidence.
	for _, item := range []ritual.EvidenceItem{
		{ID: "poison-vial", ChamberID: "private-supper", Weight: ritual.WeightDamning},
		{ID: "letter-of-fear", ChamberID: "dawn-court", Weight: ritual.WeightFaint},
		{ID: "farewell-anchor", ChamberID: "bedchamber", Weight: ritual.WeightFaint},
	} {
		selection, err := session.Selection.Add(item)
		require.NoError(t, err)
		session.Selection = selection
	}
	assert.Equal(t, ritual.FailureInsufficientEvidence, session.Resolve())

	assert.Equal(t, ritual.TrueJustice, session.Accuse(ritual.QueenElira).Resolve())
	assert.Equal(t, ritual.FalseJudgement, session.Accuse(ritual.MasterVale).Resolve())
}
