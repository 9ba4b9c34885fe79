package prompt

import (
	"strings"

	"github.com/irtus/advisory/internal/venture"
)

// BuildDeckPrompt constructs the user prompt for a pitch deck generation.
// Every field of the input is embedded verbatim, including empty optional
// fields.
func BuildDeckPrompt(in venture.VentureInput) string {
	// Single pass, so a value containing a placeholder is never expanded.
	r := strings.NewReplacer(
		"{{COMPANY_NAME}}", in.CompanyName,
		"{{PROBLEM}}", in.Problem,
		"{{SOLUTION}}", in.Solution,
		"{{TARGET_MARKET}}", in.TargetMarket,
		"{{REVENUE_MODEL}}", in.RevenueModel,
	)

	return strings.TrimSpace(r.Replace(DeckTemplate))
}

// BuildSystemInstruction returns the fixed advisory persona sent alongside
// every deck prompt.
func BuildSystemInstruction() string {
	return strings.TrimSpace(SystemInstruction)
}
