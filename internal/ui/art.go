package ui

import "tomo/internal/pet"

// MoodArt contains the ASCII pet drawn for each mood
var MoodArt = map[pet.Mood]string{
	pet.MoodHappy: `
   /\_/\
  ( ^.^ )
   > ^ <
`,
	pet.MoodContent: `
   /\_/\
  ( -.- )
   > - <
`,
	pet.MoodSad: `
   /\_/\
  ( ;_; )
   > ~ <
`,
	pet.MoodMiserable: `
   /\_/\
  ( x_x )
   > _ <
`,
}

// GetMoodArt returns the art for a mood, falling back to the content face
func GetMoodArt(m pet.Mood) string {
	if art, ok := MoodArt[m]; ok {
		return art
	}
	return MoodArt[pet.MoodContent]
}
