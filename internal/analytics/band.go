package analytics

// MasteryBand is the display level for a mastery score.
type MasteryBand int

const (
	BandNotStarted MasteryBand = iota
	BandStruggling
	BandDeveloping
	BandProficient
	BandMastered
)

var bandLabels = map[MasteryBand]string{
	BandNotStarted: "Not Started",
	BandStruggling: "Struggling",
	BandDeveloping: "Developing",
	BandProficient: "Proficient",
	BandMastered:   "Mastered",
}

// Band maps a mastery score to its display band.
func Band(score float64) MasteryBand {
	switch {
	case score >= 80:
		return BandMastered
	case score >= 60:
		return BandProficient
	case score >= 40:
		return BandDeveloping
	case score > 0:
		return BandStruggling
	default:
		return BandNotStarted
	}
}

// BandFor is Band for a score known to exist or not. With data, a score
// of 0 is Struggling; without data the band is always NotStarted.
func BandFor(score float64, hasData bool) MasteryBand {
	if !hasData {
		return BandNotStarted
	}
	if b := Band(score); b != BandNotStarted {
		return b
	}
	return BandStruggling
}

// Label returns the human-readable band name.
func (b MasteryBand) Label() string {
	if l, ok := bandLabels[b]; ok {
		return l
	}
	return "Unknown"
}

func (b MasteryBand) String() string { return b.Label() }

// Bands lists every band from highest to lowest, for legends.
func Bands() []MasteryBand {
	return []MasteryBand{BandMastered, BandProficient, BandDeveloping, BandStruggling, BandNotStarted}
}
