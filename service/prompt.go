package service

import (
	"fmt"
	"strings"

	"healthmate-backend/models"
)

const (
	// chatPreamble opens every chat system prompt
	chatPreamble = "You are a helpful health assistant."

	// personaSystemMessage frames the one-shot persona generation call
	personaSystemMessage = "You are a creative health coach who creates fun, memorable health personas."

	// defaultPersona is used when persona generation is unavailable
	defaultPersona = "Health Warrior in Training"

	// chatContextEntries is how many recent timeline entries are fetched for
	// context; chatRenderedEntries is how many of those make it into the prompt
	chatContextEntries  = 10
	chatRenderedEntries = 5
)

// BuildPersonaPrompt renders the one-shot prompt asking the model for a short,
// playful persona based on the profile alone
func BuildPersonaPrompt(profile *models.HealthProfile) string {
	return fmt.Sprintf(`Based on this health profile, create a fun and engaging "health persona" in 1-2 sentences:

- Sleep Pattern: %s (%d hours)
- Hydration: %s
- Stress Level: %s
- Exercise: %s
- Diet: %s

Make it playful and memorable, like "You're a Night Owl Strategist" or "You're a Zen Snacker".`,
		profile.SleepPattern,
		profile.SleepHours,
		profile.HydrationLevel,
		profile.StressLevel,
		profile.ExerciseFrequency,
		profile.DietType,
	)
}

// BuildChatSystemPrompt assembles the system prompt for a chat turn from the
// user's profile and most recent timeline entries. Either section is silently
// omitted when the user has no data yet.
func BuildChatSystemPrompt(profile *models.HealthProfile, recent []*models.TimelineEntry) string {
	var b strings.Builder
	b.WriteString(chatPreamble)

	if profile != nil {
		persona := profile.HealthPersona
		if persona == "" {
			persona = "N/A"
		}
		b.WriteString("\n\nUser's Health Profile:\n")
		fmt.Fprintf(&b, "- Persona: %s\n", persona)
		fmt.Fprintf(&b, "- Sleep: %s (%dh)\n", profile.SleepPattern, profile.SleepHours)
		fmt.Fprintf(&b, "- Stress: %s\n", profile.StressLevel)
		fmt.Fprintf(&b, "- Exercise: %s\n", profile.ExerciseFrequency)
	}

	if len(recent) > 0 {
		b.WriteString("\n\nRecent Health Timeline:\n")
		for i, entry := range recent {
			if i == chatRenderedEntries {
				break
			}
			fmt.Fprintf(&b, "- %s: %s\n", entry.EntryType, entry.Title)
		}
	}

	return b.String()
}
