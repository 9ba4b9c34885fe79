// Package venture holds the data exchanged by the pitch-deck tool: the
// founder's form input, the generated deck and the per-visitor session that
// carries both through one generation.
package venture

import (
	"fmt"
	"strings"
)

// Form field names, shared by the HTML form, the JSON API and Session.Set.
const (
	FieldCompanyName  = "companyName"
	FieldProblem      = "problem"
	FieldSolution     = "solution"
	FieldTargetMarket = "targetMarket"
	FieldRevenueModel = "revenueModel"
)

// Fields lists every form field in display order.
var Fields = []string{
	FieldCompanyName,
	FieldProblem,
	FieldSolution,
	FieldTargetMarket,
	FieldRevenueModel,
}

// VentureInput is the startup description typed into the tool.
// CompanyName and Problem are required; the rest may be empty.
type VentureInput struct {
	CompanyName  string `json:"companyName"`
	Problem      string `json:"problem"`
	Solution     string `json:"solution"`
	TargetMarket string `json:"targetMarket"`
	RevenueModel string `json:"revenueModel"`
}

// Ready reports whether the input may be submitted for generation.
func (v VentureInput) Ready() bool {
	return len(v.MissingFields()) == 0
}

// MissingFields returns the names of required fields that are blank.
func (v VentureInput) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(v.CompanyName) == "" {
		missing = append(missing, FieldCompanyName)
	}
	if strings.TrimSpace(v.Problem) == "" {
		missing = append(missing, FieldProblem)
	}
	return missing
}

// Set assigns one field by its form name.
func (v *VentureInput) Set(field, value string) error {
	switch field {
	case FieldCompanyName:
		v.CompanyName = value
	case FieldProblem:
		v.Problem = value
	case FieldSolution:
		v.Solution = value
	case FieldTargetMarket:
		v.TargetMarket = value
	case FieldRevenueModel:
		v.RevenueModel = value
	default:
		return fmt.Errorf("unknown venture field %q", field)
	}
	return nil
}

// Get returns one field by its form name, or "" for unknown names.
func (v VentureInput) Get(field string) string {
	switch field {
	case FieldCompanyName:
		return v.CompanyName
	case FieldProblem:
		return v.Problem
	case FieldSolution:
		return v.Solution
	case FieldTargetMarket:
		return v.TargetMarket
	case FieldRevenueModel:
		return v.RevenueModel
	}
	return ""
}

// Slide is one generated pitch-deck slide. Any field may be empty.
type Slide struct {
	Title            string   `json:"title"`
	Subtitle         string   `json:"subtitle"`
	BulletPoints     []string `json:"bulletPoints"`
	StrategicInsight string   `json:"strategicInsight"`
}

// GeneratedDeck is the structured result of one successful generation.
type GeneratedDeck struct {
	Slides          []Slide `json:"slides"`
	AdvisorySummary string  `json:"advisorySummary"`
}
