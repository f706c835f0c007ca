// Package casefile holds the authored narrative of "Truth Has a Half Life" and the audit that
// keeps the authored content consistent with the ritual's rules.
//
// Chambers, suspects, and evidence live in the database fixtures; the long-form scripts live
// here so content edits stay plain Go diffs.
package casefile

import (
	"github.com/lkarjala/vaelor/internal/ritual"
)

// Beat is one narrative box: a speaker and their line.
type Beat struct {
	Speaker string
	Line    string
}

// OutcomeTitle returns the scripted title of an ending.
func OutcomeTitle(outcome ritual.Outcome) string {
	switch outcome {
	case ritual.FailureInsufficientEvidence:
		return "Truth Unclaimed"
	case ritual.FalseJudgement:
		return "The False Judgement"
	case ritual.TrueJustice:
		return "True Justice"
	case ritual.CrownOfMortalKing:
		return "The Crown of the Mortal King"
	}
	return "Unknown Ending"
}

// Opening is the cutscene shown before the investigation begins.
func Opening() []Beat {
	return []Beat{
		{Speaker: "Narration", Line: "For three centuries, the Kingdom of Vaelor has known only one ruler. King Aldric the Everlasting. The Immortal King."},
		{Speaker: "Narration", Line: "It is said no blade could wound him. No poison could claim him. Tonight, that legend trembles."},
		{Speaker: "Queen Elira", Line: "He was well this morning…"},
		{Speaker: "Archmage Seredin", Line: "Something binds him. Not death… not yet."},
		{Speaker: "Narration", Line: "You are the High Inquisitor of Vaelor. When treason threatens the crown, you uncover the truth."},
		{Speaker: "Knight-Captain Rowan", Line: "The chamber was sealed. Only those within the castle walls had access."},
		{Speaker: "Archmage Seredin", Line: "If poison was used, its source may still echo within memory. Bring me proof of the guilty. Three fragments of truth."},
		{Speaker: "Archmage Seredin", Line: "If the correct blood is taken, I may yet anchor him to this world."},
		{Speaker: "Narration", Line: "You have limited time. The King's memory fades. Choose wisely."},
		{Speaker: "Narration", Line: "The investigation begins."},
	}
}

// Epilogue returns the ending script for the resolved outcome. The failure endings vary with
// the culprit who walked free; the win endings vary only in their framing of the verdict.
func Epilogue(outcome ritual.Outcome, culprit ritual.Suspect) []Beat {
	switch outcome {
	case ritual.FailureInsufficientEvidence:
		return append([]Beat{
			{Speaker: "Archmage Seredin", Line: "The fragments… they are incomplete. There is not enough truth to bind him."},
			{Speaker: "Narration", Line: "The Mnemosyne Prism trembles. Its light shifts, not green but red. The crystal screams. And then it fractures."},
			{Speaker: "Narration", Line: "King Aldric exhales. And does not breathe again. The Immortal King lies still."},
		}, culpritFreeBeats(culprit)...)
	case ritual.FalseJudgement:
		return append([]Beat{
			{Speaker: "Narration", Line: "The blood touches light. For a moment, it glows green. Then the color fractures."},
			{Speaker: "Archmage Seredin", Line: "It does not bind."},
			{Speaker: "Narration", Line: "The King exhales. And does not breathe again. While another suffered chains, the guilty walked free."},
		}, culpritFreeBeats(culprit)...)
	case ritual.TrueJustice:
		return []Beat{
			{Speaker: "Narration", Line: "The fragments align. Truth, gathered. Blood, named. The crystal answers."},
			{Speaker: "Archmage Seredin", Line: "The spell… held him only a moment."},
			{Speaker: "Narration", Line: "The glow fades. The King exhales, and does not inhale again. Even light must dim."},
			{Speaker: "Narration", Line: "Justice was served. The guilty were bound. The kingdom did not fall."},
		}
	case ritual.CrownOfMortalKing:
		return []Beat{
			{Speaker: "Narration", Line: "The fragments align. The chamber floods with light. Hope returns in a single breath."},
			{Speaker: "Narration", Line: "The glow fades all the same. The crystal that once promised eternity now bears a fracture of its own. Not shattered. But changed."},
			{Speaker: "Narration", Line: "The Queen places the crown upon the heir. But this time, no one speaks of forever."},
			{Speaker: "Inquisitor", Line: "Our new king does not claim eternity."},
			{Speaker: "Archmage Seredin", Line: "He claims tomorrow."},
			{Speaker: "Narration", Line: "He will not be called The Everlasting. He will be known as The Mortal King. And though legends fade, people endure."},
		}
	}
	return nil
}

// culpritFreeBeats closes a failed ritual with the culprit escaping justice.
func culpritFreeBeats(culprit ritual.Suspect) []Beat {
	switch culprit {
	case ritual.QueenElira:
		return []Beat{
			{Speaker: "Narration", Line: "In mourning black, Queen Elira stood before the court. No accusation touched her. No proof condemned her."},
			{Speaker: "Narration", Line: "The crown passed quietly. Behind every grieving smile, ambition endured. Vaelor did not fall that night. But something within it did."},
		}
	case ritual.MasterVale:
		return []Beat{
			{Speaker: "Narration", Line: "Master Edrin Vale continued to prepare the royal meals. He bowed when addressed. He smiled when thanked."},
			{Speaker: "Narration", Line: "In the kitchens of Vaelor, flavors masked many things. Trust, among them. The blade that cuts bread may cut deeper still."},
		}
	case ritual.BrannicAshhand:
		return []Beat{
			{Speaker: "Narration", Line: "Brannic Ashhand kept his post. Sweeping ash. Stoking flame. No one questioned the hands that moved unseen through corridors."},
			{Speaker: "Narration", Line: "In furnace light, he smiled. A kingdom may survive a dead king. It may not survive a hidden spark."},
		}
	}
	return nil
}
