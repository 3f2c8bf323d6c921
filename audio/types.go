package audio

// Cue identifies a game sound
type Cue int

const (
	CueVictory Cue = iota // Level complete jingle
	CuePickup             // Gift collected
	CueHurt               // Life lost
	cueCount
)

var cueNames = [cueCount]string{
	CueVictory: "victory",
	CuePickup:  "pickup",
	CueHurt:    "hurt",
}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// ParseCue resolves a cue by its lowercase name
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), true
		}
	}
	return 0, false
}
