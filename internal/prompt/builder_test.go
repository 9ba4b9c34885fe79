package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/irtus/advisory/internal/venture"
)

// TestBuildDeckPrompt_EmbedsAllFields verifies that every input field appears
// verbatim in the prompt and no placeholder survives.
func TestBuildDeckPrompt_EmbedsAllFields(t *testing.T) {
	in := venture.VentureInput{
		CompanyName:  "EcoWatt",
		Problem:      "unreliable grid power for small shops",
		Solution:     "pay-as-you-go solar kits",
		TargetMarket: "informal retailers in Lagos",
		RevenueModel: "daily micro-subscriptions",
	}

	result := BuildDeckPrompt(in)

	assert.Contains(t, result, `a company called "EcoWatt".`)
	assert.Contains(t, result, "The problem they solve is: unreliable grid power for small shops.")
	assert.Contains(t, result, "Their solution is: pay-as-you-go solar kits.")
	assert.Contains(t, result, "Target Market: informal retailers in Lagos.")
	assert.Contains(t, result, "How they make money: daily micro-subscriptions.")
	assert.NotContains(t, result, "{{", "no placeholder should remain")
}

// TestBuildDeckPrompt_EmptyOptionalFields verifies that empty optional fields
// are embedded as empty strings rather than omitted.
func TestBuildDeckPrompt_EmptyOptionalFields(t *testing.T) {
	in := venture.VentureInput{
		CompanyName: "EcoWatt",
		Problem:     "grid outages",
	}

	result := BuildDeckPrompt(in)

	assert.Contains(t, result, "Their solution is: .")
	assert.Contains(t, result, "Target Market: .")
	assert.Contains(t, result, "How they make money: .")
	assert.NotContains(t, result, "{{")
}

// TestBuildDeckPrompt_VerbatimSpecialCharacters verifies that input text is
// not escaped or altered.
func TestBuildDeckPrompt_VerbatimSpecialCharacters(t *testing.T) {
	in := venture.VentureInput{
		CompanyName: `Ade & "Sons" <Ltd>`,
		Problem:     "cost > value",
	}

	result := BuildDeckPrompt(in)

	assert.Contains(t, result, `"Ade & "Sons" <Ltd>"`)
	assert.Contains(t, result, "cost > value")
}

// TestBuildDeckPrompt_NoSurroundingWhitespace verifies that the prompt is
// trimmed.
func TestBuildDeckPrompt_NoSurroundingWhitespace(t *testing.T) {
	result := BuildDeckPrompt(venture.VentureInput{CompanyName: "A", Problem: "B"})
	assert.Equal(t, strings.TrimSpace(result), result)
	assert.True(t, strings.HasPrefix(result, "Generate a 6-slide pitch deck narrative"))
}

func TestBuildSystemInstruction(t *testing.T) {
	result := BuildSystemInstruction()
	assert.True(t, strings.HasPrefix(result, "You are the Irtus Business AI Advisory Engine."))
	assert.True(t, strings.HasSuffix(result, "suitable for global investors."))
}

// TestBuildDeckPrompt_PlaceholderInValueKeptVerbatim verifies that a field
// value that looks like a placeholder is not expanded.
func TestBuildDeckPrompt_PlaceholderInValueKeptVerbatim(t *testing.T) {
	in := venture.VentureInput{
		CompanyName:  "Acme {{PROBLEM}}",
		Problem:      "outages",
		Solution:     "{{REVENUE_MODEL}} kits",
		RevenueModel: "leasing",
	}

	result := BuildDeckPrompt(in)

	assert.Contains(t, result, `a company called "Acme {{PROBLEM}}".`)
	assert.Contains(t, result, "Their solution is: {{REVENUE_MODEL}} kits.")
	assert.NotContains(t, result, "Acme outages")
}
