package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDeck_Valid(t *testing.T) {
	text := `{"slides":[{"title":"Problem","subtitle":"","bulletPoints":["x"],"strategicInsight":"y"}],"advisorySummary":"z"}`

	deck, err := DecodeDeck(text)

	require.NoError(t, err)
	require.Len(t, deck.Slides, 1)
	assert.Equal(t, "Problem", deck.Slides[0].Title)
	assert.Equal(t, []string{"x"}, deck.Slides[0].BulletPoints)
	assert.Equal(t, "y", deck.Slides[0].StrategicInsight)
	assert.Equal(t, "z", deck.AdvisorySummary)
}

func TestDecodeDeck_ToleratesMissingAndNullLeaves(t *testing.T) {
	deck, err := DecodeDeck(`{"slides":[{"title":"Only title"},{"subtitle":null,"bulletPoints":null}]}`)

	require.NoError(t, err)
	require.Len(t, deck.Slides, 2)
	assert.Equal(t, "Only title", deck.Slides[0].Title)
	assert.Empty(t, deck.Slides[1].Subtitle)
	assert.Empty(t, deck.Slides[1].BulletPoints)
	assert.Empty(t, deck.AdvisorySummary)
}

func TestDecodeDeck_EmptySlidesIsValid(t *testing.T) {
	deck, err := DecodeDeck(`{"slides":[],"advisorySummary":"thin"}`)
	require.NoError(t, err)
	assert.Empty(t, deck.Slides)
}

func TestDecodeDeck_Failures(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind string
	}{
		{"blank", "   ", KindEmptyResponse},
		{"not json", "Here is your deck: slide 1", KindParse},
		{"truncated json", `{"slides":[{"title":"Pro`, KindParse},
		{"missing slides", `{"advisorySummary":"z"}`, KindSchema},
		{"null slides", `{"slides":null,"advisorySummary":"z"}`, KindSchema},
		{"slides not array", `{"slides":"six of them"}`, KindSchema},
		{"wrong leaf type", `{"slides":[{"title":5}]}`, KindSchema},
		{"top level array", `[{"title":"Problem"}]`, KindSchema},
		{"top level null", `null`, KindSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck, err := DecodeDeck(tt.text)
			require.Error(t, err)
			assert.Nil(t, deck)
			assert.Equal(t, tt.kind, Kind(err), "error: %v", err)
		})
	}
}

func TestDecodeDeck_SchemaErrorNamesMissingField(t *testing.T) {
	_, err := DecodeDeck(`{"advisorySummary":"z"}`)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.NotEmpty(t, schemaErr.Problems)
	assert.Contains(t, schemaErr.Error(), "slides")
}
