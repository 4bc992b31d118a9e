// Package teams canonicalizes competitor names so the same real-world team
// can be recognized across books that format names differently.
package teams

import (
	"regexp"
	"strings"
	"unicode"
)

// Trailing league/country tokens that books append to disambiguate teams.
// Stripped only when something is left over (or the name is nothing but the
// token).
var leagueCountrySuffixes = []string{
	"mlb", "nba", "nfl", "nhl", "ncaaf", "ncaab", "wnba", "fifa",
	"poland", "bulgaria", "uruguay", "colombia", "peru",
	"argentina", "sweden", "romania", "finland", "england",
	"liga 1", "serie a", "bundesliga", "la liga", "ligue 1", "premier league",
}

// Leading club-type prefixes. Applied at most twice: doubled prefixes
// ("AFC FC X") are rare but show up on scraped boards.
var clubPrefixes = []string{
	"if ", "fc ", "sc ", "bk ", "sk ", "ac ", "as ", "fk ", "cd ", "ca ", "afc ", "cfr ",
}

// Renamings not reducible to prefix/suffix rules. Exact aliases are checked
// first (most specific wins), then whole-name contains rules, then plain
// substring replacements.
var exactAliases = map[string]string{
	"tottenham hotspur": "tottenham",
	"inter milan":       "inter",
}

var containsAliases = []struct{ substr, replacement string }{
	{"paris saint germain", "psg"},
	{"czechia", "czech republic"},
}

var substringAliases = []struct{ old, new string }{
	{"new york", "ny"},
	{"los angeles", "la"},
}

var (
	parenRe         = regexp.MustCompile(`\s*\([^)]*\)`)
	futuresSuffixRe = regexp.MustCompile(`\s+to (lift|win) the (trophy|title|cup)$`)
	genericSuffixRe = regexp.MustCompile(`\s+(fc|sc|cf)$`)
	disallowedRe    = regexp.MustCompile(`[^\p{L}\p{N}_\s.\-+]`)
)

// IsFuturesEntry reports whether a raw name denotes a futures/prop listing
// ("X to lift the trophy", corners markets) rather than a matchable team.
// Callers filter these before entity matching.
func IsFuturesEntry(raw string) bool {
	lower := strings.ToLower(raw)
	return futuresSuffixRe.MatchString(lower) ||
		strings.Contains(lower, "(corners)") ||
		strings.Contains(lower, "to win the")
}

// Normalize canonicalizes a raw team name into a matchable key. It is
// deterministic and never returns an empty string for non-empty input:
// when every rule strips the name away, the lowercased trimmed original is
// the fallback. The step order matters; aliases are matched against the
// partially cleaned name.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	name := strings.ToLower(raw)
	name = futuresSuffixRe.ReplaceAllString(name, "")
	name = strings.TrimSpace(parenRe.ReplaceAllString(name, ""))
	name = stripLeagueCountrySuffix(name)
	name = stripClubPrefix(name)
	name = applyAliases(name)
	name = strings.TrimSpace(genericSuffixRe.ReplaceAllString(name, ""))
	name = strings.TrimFunc(name, isNonWord)
	name = disallowedRe.ReplaceAllString(name, "")
	name = strings.Join(strings.Fields(name), " ")

	if name == "" {
		return strings.TrimSpace(strings.ToLower(raw))
	}
	return name
}

func stripLeagueCountrySuffix(name string) string {
	for _, suffix := range leagueCountrySuffixes {
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		remainder := strings.TrimSpace(strings.TrimSuffix(name, suffix))
		if remainder != "" || len(name) == len(suffix) {
			name = remainder
		}
	}
	return name
}

func stripClubPrefix(name string) string {
	for i := 0; i < 2; i++ {
		stripped := false
		for _, prefix := range clubPrefixes {
			if strings.HasPrefix(name, prefix) {
				name = strings.TrimSpace(name[len(prefix):])
				stripped = true
				break
			}
		}
		if !stripped {
			break
		}
	}
	return name
}

func applyAliases(name string) string {
	if alias, ok := exactAliases[name]; ok {
		return alias
	}
	for _, rule := range containsAliases {
		if strings.Contains(name, rule.substr) {
			return rule.replacement
		}
	}
	for _, rule := range substringAliases {
		name = strings.ReplaceAll(name, rule.old, rule.new)
	}
	return name
}

func isNonWord(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
}
