package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/irtus/advisory/internal/advisor"
	"github.com/irtus/advisory/internal/ai"
	"github.com/irtus/advisory/internal/logging"
	"github.com/irtus/advisory/internal/venture"
)

// missingFieldsNotice is shown when the form is submitted without the
// required fields.
const missingFieldsNotice = "Company name and problem are required."

// pageData is the view model of the page template.
type pageData struct {
	Content Content
	Session *venture.Session
	Notice  string
}

func (p pageData) ShowResult() bool {
	return p.Session.Step == venture.StepResult && p.Session.Deck != nil
}

func (p pageData) StepNumber() int {
	return int(p.Session.Step)
}

// apiError is the JSON error body.
type apiError struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, pageData{Session: venture.NewSession()})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/#ai-tools", http.StatusSeeOther)
}

// handleGenerate runs the tool from the HTML form. Clients asking for JSON
// get the deck or an error object instead of the page; format=markdown
// returns the deck as a download.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	sess := venture.NewSession()
	for _, field := range venture.Fields {
		if err := sess.Set(field, r.PostFormValue(field)); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	wantsJSON := acceptsJSON(r)
	if !sess.Ready() {
		if wantsJSON {
			writeJSON(w, http.StatusUnprocessableEntity, apiError{
				Error:   missingFieldsNotice,
				Missing: sess.Input.MissingFields(),
			})
			return
		}
		s.render(w, http.StatusUnprocessableEntity, pageData{Session: sess, Notice: missingFieldsNotice})
		return
	}

	ctx, cancel := s.generationContext(r)
	defer cancel()

	if err := s.gen.Submit(ctx, sess); err != nil {
		logging.Error(fmt.Sprintf("session %s: %v", sess.ID, err))
		if wantsJSON {
			writeJSON(w, http.StatusBadGateway, apiError{Error: sess.Error})
			return
		}
		s.render(w, http.StatusOK, pageData{Session: sess})
		return
	}

	switch {
	case r.URL.Query().Get("format") == "markdown":
		writeMarkdown(w, sess.Input.CompanyName, sess.Deck)
	case wantsJSON:
		writeJSON(w, http.StatusOK, sess.Deck)
	default:
		s.render(w, http.StatusOK, pageData{Session: sess})
	}
}

// handleDownload renders a deck already shown to the visitor as Markdown.
// The deck travels back in the form, so no generation is repeated.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	deck, err := ai.DecodeDeck(r.PostFormValue("deck"))
	if err != nil {
		http.Error(w, "Invalid deck", http.StatusBadRequest)
		return
	}
	writeMarkdown(w, r.PostFormValue(venture.FieldCompanyName), deck)
}

// handleAPIDecks is the JSON API: VentureInput in, GeneratedDeck out.
func (s *Server) handleAPIDecks(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var in venture.VentureInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "request body must be a JSON venture input"})
		return
	}

	if !in.Ready() {
		writeJSON(w, http.StatusUnprocessableEntity, apiError{
			Error:   missingFieldsNotice,
			Missing: in.MissingFields(),
		})
		return
	}

	ctx, cancel := s.generationContext(r)
	defer cancel()

	deck, err := s.gen.GenerateDeck(ctx, in)
	if err != nil {
		if errors.Is(err, advisor.ErrNotReady) {
			writeJSON(w, http.StatusUnprocessableEntity, apiError{Error: missingFieldsNotice, Missing: in.MissingFields()})
			return
		}
		logging.Error(fmt.Sprintf("api: %v", err))
		writeJSON(w, http.StatusBadGateway, apiError{Error: advisor.GenericFailureMessage})
		return
	}
	writeJSON(w, http.StatusOK, deck)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"provider": s.gen.Provider(),
	})
}

func (s *Server) render(w http.ResponseWriter, status int, data pageData) {
	data.Content = s.content

	var buf strings.Builder
	if err := s.page.Execute(&buf, data); err != nil {
		logging.Error(fmt.Sprintf("render page: %v", err))
		http.Error(w, "Render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(buf.String()))
}

// acceptsJSON reports whether the client asked for a JSON response.
func acceptsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Debug(fmt.Sprintf("write json: %v", err))
	}
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// deckFilename derives the download name from the company name.
func deckFilename(companyName string) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(companyName), "-"), "-")
	if slug == "" {
		return "pitch-deck.md"
	}
	return slug + "-pitch-deck.md"
}

func writeMarkdown(w http.ResponseWriter, companyName string, deck *venture.GeneratedDeck) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, deckFilename(companyName)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(deck.Markdown(companyName)))
}
