package venture

import (
	"fmt"
	"strings"
)

// Markdown renders the deck as a downloadable Markdown document, one
// second-level heading per slide.
func (d *GeneratedDeck) Markdown(companyName string) string {
	var b strings.Builder

	title := strings.TrimSpace(companyName)
	if title == "" {
		title = "Pitch Deck"
	} else {
		title += ": Pitch Deck"
	}
	fmt.Fprintf(&b, "# %s\n", title)

	for i, s := range d.Slides {
		fmt.Fprintf(&b, "\n## %d. %s\n", i+1, s.Title)
		if s.Subtitle != "" {
			fmt.Fprintf(&b, "\n_%s_\n", s.Subtitle)
		}
		if len(s.BulletPoints) > 0 {
			b.WriteString("\n")
			for _, p := range s.BulletPoints {
				fmt.Fprintf(&b, "- %s\n", p)
			}
		}
		if s.StrategicInsight != "" {
			fmt.Fprintf(&b, "\n> **Strategic insight:** %s\n", s.StrategicInsight)
		}
	}

	if d.AdvisorySummary != "" {
		fmt.Fprintf(&b, "\n## Advisory Summary\n\n%s\n", d.AdvisorySummary)
	}
	return b.String()
}
