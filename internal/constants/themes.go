package constants

import "github.com/julianstephens/charlit/internal/models"

// ThemeInfo is static display content for one character theme. The
// reflective prompts are fixed product copy; prompt selection happens in the
// scoring engine, not here.
type ThemeInfo struct {
	Name              string
	Description       string
	ReflectivePrompts []string
}

var ThemeDefinitions = map[models.Theme]ThemeInfo{
	models.ThemePride: {
		Name:        "Pride",
		Description: "Preoccupation with image and recognition",
		ReflectivePrompts: []string{
			"When did you last check how a post was performing? What were you hoping to see?",
			"Whose approval felt most important to you this week?",
			"What would change if nobody could see what you accomplished?",
		},
	},
	models.ThemeGreed: {
		Name:        "Greed",
		Description: "Acquiring and accumulating beyond need",
		ReflectivePrompts: []string{
			"What did you buy or browse this week that you didn't need?",
			"What does 'enough' look like for you right now?",
			"When you felt the urge to acquire something, what came right before it?",
		},
	},
	models.ThemeLust: {
		Name:        "Lust",
		Description: "Craving stimulation and novelty",
		ReflectivePrompts: []string{
			"What were you actually looking for during late-night scrolling?",
			"Which connections this week felt real, and which felt like consumption?",
			"What need sits underneath the craving for novelty?",
		},
	},
	models.ThemeAnger: {
		Name:        "Anger",
		Description: "Irritation, outrage, and reactivity",
		ReflectivePrompts: []string{
			"What headline or post got under your skin this week? Why that one?",
			"When you picked up your phone in irritation, what did you want it to fix?",
			"Where did short sleep leave you with a shorter fuse?",
		},
	},
	models.ThemeGluttony: {
		Name:        "Gluttony",
		Description: "Overconsumption past the point of enjoyment",
		ReflectivePrompts: []string{
			"When did one more episode turn into three? How did you feel afterward?",
			"What were you avoiding when the bingeing started?",
			"What would a satisfying amount have looked like?",
		},
	},
	models.ThemeEnvy: {
		Name:        "Envy",
		Description: "Comparing your life against curated ones",
		ReflectivePrompts: []string{
			"Whose life did you compare yours to this week?",
			"What did the comparison make you want to buy or change?",
			"What do you have that the feed never shows you wanting?",
		},
	},
	models.ThemeSloth: {
		Name:        "Sloth",
		Description: "Passivity, avoidance, and low momentum",
		ReflectivePrompts: []string{
			"What did you put off this week while consuming instead?",
			"How did your body feel on the lowest-movement days?",
			"What small action did you avoid that would have taken ten minutes?",
		},
	},
	models.ThemeFear: {
		Name:        "Fear",
		Description: "Anxious monitoring and vigilance",
		ReflectivePrompts: []string{
			"What were you checking for when you kept refreshing the news?",
			"Which worry this week was yours to act on, and which wasn't?",
			"What did the constant checking actually protect you from?",
		},
	},
	models.ThemeSelfPity: {
		Name:        "Self-Pity",
		Description: "Dwelling in helplessness and rumination",
		ReflectivePrompts: []string{
			"When low moments came, did you reach for your phone or for a person?",
			"What story did you tell yourself on the hardest day this week?",
			"What is one thing still within your control right now?",
		},
	},
	models.ThemeGuilt: {
		Name:        "Guilt",
		Description: "The gap between intentions and actions",
		ReflectivePrompts: []string{
			"What did you intend to do this week that the screen time replaced?",
			"Is the guilt pointing at something you can repair tomorrow?",
			"What would you tell a friend who had your exact week?",
		},
	},
	models.ThemeShame: {
		Name:        "Shame",
		Description: "Hiding habits from yourself and others",
		ReflectivePrompts: []string{
			"Is there usage this week you'd rather no one saw? What makes it heavy?",
			"What happens when you name the habit out loud?",
			"Who could you tell about the late nights without being judged?",
		},
	},
	models.ThemeDishonesty: {
		Name:        "Dishonesty",
		Description: "Small concealments and self-deception",
		ReflectivePrompts: []string{
			"Did you understate any of this week's numbers to yourself?",
			"What usage happened in private that you'd explain away if asked?",
			"Where does the gap between your public and private habits sit?",
		},
	},
}
