package pet

// Pet represents the virtual pet's state
type Pet struct {
	Name      string
	Hunger    int
	Happiness int
}

// New creates a pet with starting stats
func New(name string) *Pet {
	return &Pet{
		Name:      name,
		Hunger:    StartingStat,
		Happiness: StartingStat,
	}
}

// Tick decays both stats by one step, never going below MinStat
func (p *Pet) Tick() {
	p.Hunger = max(p.Hunger-HungerDecay, MinStat)
	p.Happiness = max(p.Happiness-HappinessDecay, MinStat)
}

// Feed raises hunger, capped at MaxStat
func (p *Pet) Feed() {
	p.Hunger = min(p.Hunger+FeedHungerIncrease, MaxStat)
}

// Play raises happiness, capped at MaxStat
func (p *Pet) Play() {
	p.Happiness = min(p.Happiness+PlayHappinessIncrease, MaxStat)
}

// Mood derives the pet's current mood from its stats
func (p *Pet) Mood() Mood {
	return MoodFor(p.Hunger, p.Happiness)
}
