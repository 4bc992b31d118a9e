package betbck

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	americanOddsRe = regexp.MustCompile(`[+-]\d{3,}`)
	spreadOptionRe = regexp.MustCompile(`(?i)^\s*([+-]?\d*\.?\d+(?:,\s*[+-]?\d*\.?\d+)?|pk)\s*([+-]\d{3,})`)
	totalLineRe    = regexp.MustCompile(`(?i)[ou]\s*(\d*\.?\d+(?:,\s*\d*\.?\d+)?)`)
)

// cleanCellText maps the site's half-point glyph and non-breaking spaces to
// plain ASCII before any regex work.
func cleanCellText(s string) string {
	s = strings.ReplaceAll(s, "½", ".5")
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(s)
}

// parseAmericanOdds pulls the last American price out of a cell's text.
// Three digits minimum keeps line values like "-1.5" from matching; a
// price directly after a decimal fraction ("8.5-110" would split wrong) is
// skipped the same way.
func parseAmericanOdds(text string) (int, bool) {
	text = cleanCellText(text)
	matches := americanOddsRe.FindAllStringIndex(text, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		start := matches[i][0]
		if start >= 2 && text[start-1] >= '0' && text[start-1] <= '9' && text[start-2] == '.' {
			continue
		}
		odds, err := strconv.Atoi(text[matches[i][0]:matches[i][1]])
		if err != nil {
			continue
		}
		return odds, true
	}
	return 0, false
}

// parseLine converts a board line token to a number. "pk" is a zero
// handicap; split asian lines ("1,1.5") collapse to their average.
func parseLine(raw string) (float64, bool) {
	raw = strings.ReplaceAll(cleanCellText(raw), " ", "")
	if raw == "" {
		return 0, false
	}
	if strings.Contains(raw, ",") {
		parts := strings.SplitN(raw, ",", 2)
		v1, ok1 := parseLinePart(parts[0])
		v2, ok2 := parseLinePart(parts[1])
		if !ok1 || !ok2 {
			return 0, false
		}
		return (v1 + v2) / 2, true
	}
	return parseLinePart(raw)
}

func parseLinePart(part string) (float64, bool) {
	if strings.Contains(strings.ToLower(part), "pk") {
		return 0, true
	}
	v, err := strconv.ParseFloat(part, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseSpreadOption reads one "<line> <odds>" selector entry.
func parseSpreadOption(text string) (line float64, odds int, ok bool) {
	m := spreadOptionRe.FindStringSubmatch(cleanCellText(text))
	if m == nil {
		return 0, 0, false
	}
	line, lineOK := parseLine(m[1])
	if !lineOK {
		return 0, 0, false
	}
	odds, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return line, odds, true
}

// parseTotalLine reads the threshold out of an "o8.5" / "u 8.5" style label.
func parseTotalLine(text string) (float64, bool) {
	m := totalLineRe.FindStringSubmatch(cleanCellText(text))
	if m == nil {
		return 0, false
	}
	return parseLine(m[1])
}
