package betbck

import (
	"regexp"
	"strings"
)

// Search terms that the naive heuristic gets wrong on BetBCK's side.
var knownSearchTerms = map[string]string{
	"inter milan":               "Inter",
	"paris sg":                  "Paris",
	"boston red sox":            "Red Sox",
	"new york mets":             "Mets",
	"los angeles dodgers":       "Dodgers",
	"universitario de deportes": "Universitario",
	"deportes tolima":           "Tolima",
	"llaneros":                  "Llaneros",
	"patronato parana":          "Patronato",
	"los angeles angels":        "Angels",
	"athletics":                 "Athletics",
	"mjällby aif":               "Mjallby",
	"if brommapojkarna":         "Brommapojkarna",
	"rapid bucuresti":           "Rapid",
	"cfr cluj":                  "Cluj",
	"slavia sofia":              "Sofia",
	"dallas wings":              "Wings",
	"seattle storm":             "Storm",
}

// Tokens too generic to search on.
var genericSearchTokens = map[string]struct{}{
	"fc": {}, "sc": {}, "if": {}, "bk": {}, "aif": {}, "ac": {}, "as": {},
	"cd": {}, "ca": {}, "afc": {}, "de": {}, "do": {}, "la": {}, "san": {},
	"vina": {}, "del": {}, "mar": {}, "st.": {},
}

var (
	searchParenRe  = regexp.MustCompile(`\s*\([^)]*\)`)
	searchSuffixes = []string{
		"mlb", "nba", "nfl", "nhl", "ncaaf", "ncaab",
		"poland", "bulgaria", "uruguay", "colombia", "peru",
		"argentina", "sweden", "romania", "finland",
		"liga 1", "serie a", "bundesliga", "la liga", "ligue 1",
		"premier league", "wnba",
	}
)

// DeriveSearchTerm picks the keyword to feed BetBCK's search box for an
// alerted pairing. Known troublesome names map directly; otherwise the most
// distinctive token of the home name wins, falling back to the away name.
func DeriveSearchTerm(homeTeam, awayTeam string) string {
	homeClean := cleanForSearch(homeTeam)
	awayClean := cleanForSearch(awayTeam)

	if term, ok := knownSearchTerms[strings.ToLower(homeClean)]; ok {
		return term
	}
	if term, ok := knownSearchTerms[strings.ToLower(awayClean)]; ok {
		return term
	}

	if term := significantToken(homeClean); term != "" {
		return term
	}
	if term := significantToken(awayClean); term != "" {
		return term
	}

	if homeClean != "" {
		return homeClean
	}
	return homeTeam
}

// cleanForSearch strips parentheticals and a trailing league or country tag
// but, unlike full normalization, keeps the name's casing for the search box.
func cleanForSearch(name string) string {
	cleaned := strings.TrimSpace(searchParenRe.ReplaceAllString(name, ""))
	lower := strings.ToLower(cleaned)
	for _, suffix := range searchSuffixes {
		if !strings.HasSuffix(lower, suffix) {
			continue
		}
		trimmed := strings.TrimSpace(cleaned[:len(cleaned)-len(suffix)])
		if trimmed != "" || len(cleaned) == len(suffix) {
			cleaned = trimmed
			lower = strings.ToLower(cleaned)
		}
	}
	return cleaned
}

// significantToken prefers the last token (usually the club name proper),
// then the first, skipping tokens too short or too generic to search on.
func significantToken(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	last := parts[len(parts)-1]
	if len(parts) > 1 && len(last) > 2 && !isGenericToken(last) {
		return last
	}
	first := parts[0]
	if len(first) > 2 && !isGenericToken(first) {
		return first
	}
	return ""
}

func isGenericToken(token string) bool {
	_, ok := genericSearchTokens[strings.ToLower(token)]
	return ok
}
