package matching

import "strings"

// Tokens is a deduplicated set of lowercase profile keywords. The order
// carries no meaning; scorers must not depend on it.
type Tokens []string

func (t Tokens) Contains(token string) bool {
	for _, existing := range t {
		if existing == token {
			return true
		}
	}
	return false
}

// ExtractKeywords turns the free-text objective and knowledge fields into
// a token set. Commas count as whitespace, everything is lowercased and
// trimmed, duplicates and empty tokens are dropped.
// Ex: "Devenir Data Analyst" + "python, sql" => devenir data analyst python sql.
func ExtractKeywords(objective, knowledge string) Tokens {
	seen := make(map[string]struct{})
	tokens := Tokens{}

	for _, input := range []string{objective, knowledge} {
		normalized := strings.ReplaceAll(strings.ToLower(input), ",", " ")
		for _, token := range strings.Fields(normalized) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}

	return tokens
}
