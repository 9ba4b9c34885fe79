package ai

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/irtus/advisory/internal/venture"
)

//go:embed deck.schema.json
var deckSchemaJSON string

// deckSchema is the accepted shape of a model response. Only slides is
// required; every leaf may be absent or null.
var deckSchema = mustLoadSchema(deckSchemaJSON)

func mustLoadSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic("ai: invalid embedded deck schema: " + err.Error())
	}
	return schema
}

// DecodeDeck parses candidate text into a deck.
//
// Blank text is an EmptyResponseError, text that is not JSON is a
// ParseError, and JSON without a non-null slides array (or with wrongly
// typed fields) is a SchemaError.
func DecodeDeck(text string) (*venture.GeneratedDeck, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyResponseError{Reason: "candidate text is blank"}
	}

	var doc interface{}
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	result, err := deckSchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, &SchemaError{Problems: []string{err.Error()}}
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			problems = append(problems, re.String())
		}
		return nil, &SchemaError{Problems: problems}
	}

	var deck venture.GeneratedDeck
	if err := json.Unmarshal([]byte(text), &deck); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &deck, nil
}
