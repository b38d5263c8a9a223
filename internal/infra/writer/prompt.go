package writer

import (
	"fmt"
	"strings"

	"blogsmith/internal/domain/entity"
)

// Style controls the voice of generated posts. It is loaded from an optional
// profile at startup; zero fields fall back to the defaults.
type Style struct {
	// Tone describes the overall writing voice, such as "conversational".
	Tone string

	// Audience names who the post is written for.
	Audience string

	// Language is the output language of the post.
	Language string

	// Instructions are free-form style rules appended to the prompt.
	Instructions []string
}

// DefaultStyle returns the style used when no profile is configured.
func DefaultStyle() Style {
	return Style{
		Tone:     "informative and engaging",
		Audience: "general readers interested in the topic",
		Language: "English",
	}
}

// StyleFromProfile builds a Style from profile values, keeping the default
// for any blank field.
func StyleFromProfile(tone, audience, language string, instructions []string) Style {
	style := DefaultStyle()
	if tone != "" {
		style.Tone = tone
	}
	if audience != "" {
		style.Audience = audience
	}
	if language != "" {
		style.Language = language
	}
	style.Instructions = instructions
	return style
}

// BuildPrompt assembles the single user prompt for one synthesis call. The
// news digest is numbered so the model can reference items; with no items it
// instructs the model to fall back to general knowledge. The closing format
// contract is what ParsePost relies on.
func BuildPrompt(topic string, items []entity.NewsItem, style Style, minBodyChars int) string {
	var b strings.Builder

	b.WriteString("You are an experienced blog writer producing SEO-optimized posts.\n")
	fmt.Fprintf(&b, "Write a complete blog post about: %s\n\n", topic)

	if len(items) == 0 {
		b.WriteString("No recent news coverage is available for this topic. ")
		b.WriteString("Base the post on your general knowledge of the subject and its enduring themes.\n\n")
	} else {
		b.WriteString("Recent news coverage to draw on:\n")
		for i, item := range items {
			fmt.Fprintf(&b, "%d. %s", i+1, item.Title)
			if item.Summary != "" {
				fmt.Fprintf(&b, ": %s", item.Summary)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Tone: %s.\n", style.Tone)
	fmt.Fprintf(&b, "Audience: %s.\n", style.Audience)
	fmt.Fprintf(&b, "Language: %s.\n", style.Language)
	for _, instruction := range style.Instructions {
		fmt.Fprintf(&b, "- %s\n", instruction)
	}

	b.WriteString("\nRequirements:\n")
	b.WriteString("1. An SEO-optimized title that draws readers in.\n")
	b.WriteString("2. A meta description between 150 and 160 characters.\n")
	fmt.Fprintf(&b, "3. A body of at least %d characters, organized with subheadings.\n", minBodyChars)
	b.WriteString("4. Analyze current trends and reference the news coverage where it helps.\n")
	b.WriteString("5. Structure the body with an introduction, main sections, and a conclusion.\n")
	b.WriteString("6. Keep paragraphs to three or four sentences.\n")

	b.WriteString("\nRespond in exactly this format:\n")
	b.WriteString("TITLE: <the title>\n")
	b.WriteString("META: <the meta description>\n")
	b.WriteString("BODY:\n<the full post body>\n")

	return b.String()
}
