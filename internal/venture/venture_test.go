package venture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVentureInput_Ready(t *testing.T) {
	tests := []struct {
		name  string
		input VentureInput
		ready bool
	}{
		{"both required present", VentureInput{CompanyName: "EcoWatt", Problem: "no reliable power"}, true},
		{"missing company", VentureInput{Problem: "no reliable power"}, false},
		{"missing problem", VentureInput{CompanyName: "EcoWatt"}, false},
		{"whitespace only", VentureInput{CompanyName: "  ", Problem: "\t"}, false},
		{"optional fields alone", VentureInput{Solution: "solar", TargetMarket: "homes", RevenueModel: "sub"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ready, tt.input.Ready())
		})
	}
}

func TestVentureInput_MissingFields(t *testing.T) {
	assert.Equal(t, []string{FieldCompanyName, FieldProblem}, VentureInput{}.MissingFields())
	assert.Equal(t, []string{FieldProblem}, VentureInput{CompanyName: "x"}.MissingFields())
	assert.Empty(t, VentureInput{CompanyName: "x", Problem: "y"}.MissingFields())
}

func TestVentureInput_SetAndGet(t *testing.T) {
	var v VentureInput
	for i, field := range Fields {
		require.NoError(t, v.Set(field, field+"-value"), "field %d", i)
	}

	assert.Equal(t, "companyName-value", v.CompanyName)
	assert.Equal(t, "problem-value", v.Problem)
	assert.Equal(t, "solution-value", v.Solution)
	assert.Equal(t, "targetMarket-value", v.TargetMarket)
	assert.Equal(t, "revenueModel-value", v.RevenueModel)

	for _, field := range Fields {
		assert.Equal(t, field+"-value", v.Get(field))
	}
	assert.Equal(t, "", v.Get("nope"))
}

func TestVentureInput_SetUnknownField(t *testing.T) {
	var v VentureInput
	err := v.Set("valuation", "1B")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valuation")
}

func TestSession_Lifecycle(t *testing.T) {
	s := NewSession()
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, StepForm, s.Step)
	assert.False(t, s.Ready())

	require.NoError(t, s.Set(FieldCompanyName, "EcoWatt"))
	require.NoError(t, s.Set(FieldProblem, "no reliable power"))
	assert.True(t, s.Ready())

	s.Fail("previous failure")
	s.Begin()
	assert.True(t, s.Loading)
	assert.Empty(t, s.Error, "Begin clears earlier errors")

	deck := &GeneratedDeck{Slides: []Slide{{Title: "Problem"}}}
	s.Complete(deck)
	assert.False(t, s.Loading)
	assert.Equal(t, StepResult, s.Step)
	assert.Same(t, deck, s.Deck)

	s.Reset()
	assert.Equal(t, StepForm, s.Step)
	assert.Equal(t, VentureInput{}, s.Input)
	assert.Nil(t, s.Deck)
	assert.Empty(t, s.Error)
}

func TestSession_FailKeepsStep(t *testing.T) {
	s := NewSession()
	s.Begin()
	s.Fail("boom")

	assert.False(t, s.Loading)
	assert.Equal(t, "boom", s.Error)
	assert.Equal(t, StepForm, s.Step)
	assert.Nil(t, s.Deck)
}

func TestNewSession_UniqueIDs(t *testing.T) {
	assert.NotEqual(t, NewSession().ID, NewSession().ID)
}

func TestGeneratedDeck_Markdown(t *testing.T) {
	deck := &GeneratedDeck{
		Slides: []Slide{
			{Title: "Problem", Subtitle: "Grid gaps", BulletPoints: []string{"600M without power", "Diesel is costly"}, StrategicInsight: "Lead with scale"},
			{Title: "Solution"},
		},
		AdvisorySummary: "Fundable with a pilot.",
	}

	md := deck.Markdown("EcoWatt")

	assert.Contains(t, md, "# EcoWatt: Pitch Deck\n")
	assert.Contains(t, md, "## 1. Problem\n")
	assert.Contains(t, md, "_Grid gaps_")
	assert.Contains(t, md, "- 600M without power\n- Diesel is costly\n")
	assert.Contains(t, md, "> **Strategic insight:** Lead with scale")
	assert.Contains(t, md, "## 2. Solution\n")
	assert.Contains(t, md, "## Advisory Summary\n\nFundable with a pilot.\n")
}

func TestGeneratedDeck_MarkdownWithoutCompany(t *testing.T) {
	md := (&GeneratedDeck{}).Markdown("  ")
	assert.Equal(t, "# Pitch Deck\n", md)
}
