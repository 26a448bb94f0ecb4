package render

import (
	"testing"

	"travelplanner/models"

	"github.com/stretchr/testify/assert"
)

func TestRender_ItineraryShape(t *testing.T) {
	got := Render("### Day 1\n- Visit museum\n**Note:** bring cash")

	assert.Equal(t, []models.Block{
		{Kind: models.BlockHeading, Text: "Day 1"},
		{Kind: models.BlockListItem, Text: "Visit museum"},
		{Kind: models.BlockEmphasisLead, Bold: "Note:", Text: " bring cash"},
	}, got)
}

func TestRender_LineClassification(t *testing.T) {
	cases := []struct {
		name string
		line string
		want models.Block
	}{
		{"heading", "### Day 2: Old Town", models.Block{Kind: models.BlockHeading, Text: "Day 2: Old Town"}},
		{"deeper heading is a paragraph", "#### Tip", models.Block{Kind: models.BlockParagraph, Text: "#### Tip"}},
		{"heading needs the space", "###Day", models.Block{Kind: models.BlockParagraph, Text: "###Day"}},
		{"emphasis lead", "**Morning:** coffee at the market", models.Block{Kind: models.BlockEmphasisLead, Bold: "Morning:", Text: " coffee at the market"}},
		{"emphasis keeps the rest verbatim", "**A** b **c** d", models.Block{Kind: models.BlockEmphasisLead, Bold: "A", Text: " b **c** d"}},
		{"whole line bold", "**Budget Summary**", models.Block{Kind: models.BlockEmphasisLead, Bold: "Budget Summary"}},
		{"unclosed bold", "**dangling", models.Block{Kind: models.BlockParagraph, Text: "**dangling"}},
		{"list item", "- Ramen at Ichiran", models.Block{Kind: models.BlockListItem, Text: "Ramen at Ichiran"}},
		{"nested list is not special", "  - indented", models.Block{Kind: models.BlockParagraph, Text: "  - indented"}},
		{"star bullet is a paragraph", "* item", models.Block{Kind: models.BlockParagraph, Text: "* item"}},
		{"empty", "", models.Block{Kind: models.BlockSpacer}},
		{"whitespace only", " \t ", models.Block{Kind: models.BlockSpacer}},
		{"plain", "Enjoy your trip!", models.Block{Kind: models.BlockParagraph, Text: "Enjoy your trip!"}},
		{"inline bold is not parsed", "Try the **ramen**", models.Block{Kind: models.BlockParagraph, Text: "Try the **ramen**"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Render(tc.line)
			assert.Equal(t, []models.Block{tc.want}, got)
		})
	}
}

func TestRender_OneBlockPerLine(t *testing.T) {
	text := "### Day 1\n\nLine one\nline two\r\n- a\n- b\n"
	got := Render(text)

	assert.Len(t, got, 7)
	assert.Equal(t, models.BlockSpacer, got[1].Kind)
	assert.Equal(t, models.Block{Kind: models.BlockParagraph, Text: "line two"}, got[3])
	assert.Equal(t, models.BlockSpacer, got[6].Kind)
}

func TestRender_EmptyText(t *testing.T) {
	assert.Equal(t, []models.Block{{Kind: models.BlockSpacer}}, Render(""))
}
