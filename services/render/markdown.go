// Package render turns the itinerary text returned by the completion service
// into display blocks.
//
// Only the restricted shape requested in the prompt is understood. Each line
// is classified on its own: there is no nesting, no paragraph merging and no
// inline emphasis other than a single leading bold run.
package render

import (
	"strings"

	"travelplanner/models"
)

const (
	headingPrefix  = "### "
	listItemPrefix = "- "
	boldDelimiter  = "**"
)

// Render classifies text line by line. It never fails; anything unrecognized
// becomes a paragraph.
func Render(text string) []models.Block {
	lines := strings.Split(text, "\n")
	blocks := make([]models.Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, classify(strings.TrimSuffix(line, "\r")))
	}
	return blocks
}

func classify(line string) models.Block {
	if rest, ok := strings.CutPrefix(line, headingPrefix); ok {
		return models.Block{Kind: models.BlockHeading, Text: rest}
	}
	if strings.HasPrefix(line, boldDelimiter) {
		// Needs an opening and a closing delimiter.
		if bold, rest, ok := strings.Cut(line[len(boldDelimiter):], boldDelimiter); ok {
			return models.Block{Kind: models.BlockEmphasisLead, Bold: bold, Text: rest}
		}
	}
	if rest, ok := strings.CutPrefix(line, listItemPrefix); ok {
		return models.Block{Kind: models.BlockListItem, Text: rest}
	}
	if strings.TrimSpace(line) == "" {
		return models.Block{Kind: models.BlockSpacer}
	}
	return models.Block{Kind: models.BlockParagraph, Text: line}
}
