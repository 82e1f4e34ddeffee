package pet

// Game constants
const (
	DefaultName   = "Tomo"
	MaxNameLength = 20 // In runes
	MaxStat       = 100
	MinStat       = 0
	StartingStat  = 80

	// Stat change per tick
	HungerDecay    = 2
	HappinessDecay = 1

	FeedHungerIncrease    = 20
	PlayHappinessIncrease = 15
)

// Mood thresholds on the average of hunger and happiness
const (
	HappyThreshold   = 70
	ContentThreshold = 40
	SadThreshold     = 20
)
