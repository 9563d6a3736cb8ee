package matching

import "strings"

// Profile is one recommendation request. All fields are free text; the
// comma-separated ones are split into discrete terms by the accessors
// below. Profiles are request-scoped and never stored.
type Profile struct {
	Name         string `json:"name,omitempty"`
	Objective    string `json:"objective"`
	Level        string `json:"level,omitempty"`
	Knowledge    string `json:"knowledge,omitempty"`
	Situation    string `json:"current_situation,omitempty"`
	Expectations string `json:"expectations,omitempty"`
}

// Keywords extracts the token set used by the substring strategy.
func (p *Profile) Keywords() Tokens {
	return ExtractKeywords(p.Objective, p.Knowledge)
}

// ObjectiveTerms returns the objective plus any comma-separated
// expectations as discrete lowercase terms.
func (p *Profile) ObjectiveTerms() []string {
	terms := splitTerms(p.Objective)
	return append(terms, splitTerms(p.Expectations)...)
}

// DomainTerms returns the comma-separated knowledge entries as discrete
// lowercase terms.
func (p *Profile) DomainTerms() []string {
	return splitTerms(p.Knowledge)
}

// LevelTerms returns the level as a single-element term list, or nil.
func (p *Profile) LevelTerms() []string {
	return splitTerms(p.Level)
}

// AudienceTerm derives an audience tag from the current situation,
// e.g. "Étudiant" => "étudiant".
func (p *Profile) AudienceTerm() string {
	return strings.ToLower(strings.TrimSpace(p.Situation))
}

// IsEmpty reports whether the profile carries no matchable text at all.
func (p *Profile) IsEmpty() bool {
	return len(p.Keywords()) == 0 &&
		len(p.ObjectiveTerms()) == 0 &&
		len(p.DomainTerms()) == 0 &&
		len(p.LevelTerms()) == 0 &&
		p.AudienceTerm() == ""
}

func splitTerms(s string) []string {
	var terms []string
	for _, part := range strings.Split(s, ",") {
		term := strings.ToLower(strings.TrimSpace(part))
		if term == "" {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}
