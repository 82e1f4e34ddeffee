package pet

// Mood is a classification of the pet's combined stats
type Mood int

const (
	MoodHappy Mood = iota
	MoodContent
	MoodSad
	MoodMiserable
)

// Mood emojis
const (
	MoodEmojiHappy     = "😊"
	MoodEmojiContent   = "😌"
	MoodEmojiSad       = "😞"
	MoodEmojiMiserable = "😭"
)

// MoodFor classifies a hunger/happiness pair. The average uses integer
// division, so (71, 70) is still Happy.
func MoodFor(hunger, happiness int) Mood {
	avg := (hunger + happiness) / 2
	switch {
	case avg >= HappyThreshold:
		return MoodHappy
	case avg >= ContentThreshold:
		return MoodContent
	case avg >= SadThreshold:
		return MoodSad
	default:
		return MoodMiserable
	}
}

func (m Mood) String() string {
	switch m {
	case MoodHappy:
		return "Happy"
	case MoodContent:
		return "Content"
	case MoodSad:
		return "Sad"
	case MoodMiserable:
		return "Miserable"
	default:
		return "Unknown"
	}
}

// Emoji returns the emoji shown next to the mood
func (m Mood) Emoji() string {
	switch m {
	case MoodHappy:
		return MoodEmojiHappy
	case MoodContent:
		return MoodEmojiContent
	case MoodSad:
		return MoodEmojiSad
	case MoodMiserable:
		return MoodEmojiMiserable
	default:
		return "❓"
	}
}

// Label returns the mood with its emoji, e.g. "Happy 😊"
func (m Mood) Label() string {
	return m.String() + " " + m.Emoji()
}
