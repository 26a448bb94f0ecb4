package intelligence

import (
	"fmt"
	"strings"
)

// uniqueInterests drops blanks and repeats, keeping first-seen order.
func uniqueInterests(interests []string) []string {
	seen := make(map[string]struct{}, len(interests))
	out := make([]string, 0, len(interests))
	for _, interest := range interests {
		interest = strings.TrimSpace(interest)
		if interest == "" {
			continue
		}
		if _, dup := seen[interest]; dup {
			continue
		}
		seen[interest] = struct{}{}
		out = append(out, interest)
	}
	return out
}

func interestsClause(interests []string) string {
	if len(interests) == 0 {
		return "The traveler is open to all kinds of activities."
	}
	return fmt.Sprintf("The traveler's main interests are: %s.", strings.Join(interests, ", "))
}

// BuildPrompt assembles the instruction sent to the completion service.
func BuildPrompt(destination, budgetDescription string, interests []string, durationDays string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert travel agent. Create a detailed, day-by-day travel itinerary for a trip to %s.\n\n", destination)

	b.WriteString("**Constraints & Preferences:**\n")
	fmt.Fprintf(&b, "- **Budget:** The approximate budget for the trip is %s. Suggest a mix of activities and dining options, from budget-friendly to moderate, that fit within it.\n", budgetDescription)
	fmt.Fprintf(&b, "- **Interests:** %s Prioritize suggestions that match these interests.\n", interestsClause(interests))
	fmt.Fprintf(&b, "- **Duration:** Create a %s-day itinerary.\n", durationDays)
	b.WriteString("- **Real-time Data:** Use Google Search to find current information such as opening hours, ticket prices and local recommendations.\n\n")

	b.WriteString("**Output Format:**\n")
	b.WriteString("- Format the entire response as Markdown.\n")
	b.WriteString("- Start each day with a heading of the form \"### Day 1: Arrival and Exploration\".\n")
	b.WriteString("- For each day, give a morning, afternoon and evening plan, each introduced with a bold label such as \"**Morning:**\".\n")
	b.WriteString("- Use \"- \" bullet points for activities and restaurants, with a brief description, why it is recommended and an estimated cost where possible.\n")
	b.WriteString("- End with a \"### Budget Summary\" section giving a rough breakdown of expected costs.\n")
	b.WriteString("- Keep a helpful, enthusiastic and encouraging tone.\n")

	return b.String()
}
