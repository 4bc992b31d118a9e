package betbck

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/oddscout/oddscout/internal/pkg/models"
	"github.com/oddscout/oddscout/internal/pkg/teams"
)

// Entries on the search page that are not the full-game board: derivative
// periods and props share the same wrapper markup as the real game.
var skipIndicators = []string{
	"1h", "1st half", "first half", "1st 5 innings", "first five innings",
	"1st period", "2nd period", "3rd period",
	"hits+runs+errors", "h+r+e", "hre", "corners", "series",
}

var (
	// Baseball rows carry listed-pitcher suffixes ("- J. Verlander - R must start").
	pitcherSuffixRe  = regexp.MustCompile(`(?i)\s*-\s*[A-Za-z\s.]+\s*-\s*[RL]\s*(must\s*start|sta\.?)\s*$`)
	pitcherInlineRe  = regexp.MustCompile(`(?i)\s*[A-Z]\.\s*[A-Za-z\s.]+\s*-\s*[RL]\s*(must\s*start|sta\.?)\s*$`)
	rotationNumberRe = regexp.MustCompile(`^\d{3,7}\s*`)
	hreSuffixRe      = regexp.MustCompile(`(?i)\s*\((hits\+runs\+errors|h\+r\+e|hre)\)$`)

	inlineSpreadRe = regexp.MustCompile(`(?i)(pk|[+-]?\d*\.?\d+(?:,\s*[+-]?\d*\.?\d+)?)\s*([+-]\d{3,})`)
)

// ErrGameNotFound reports that the search results contained no board for
// the wanted pairing.
var ErrGameNotFound = fmt.Errorf("no matching game in search results")

// ParseGame scans BetBCK search-results HTML for the full-game board of
// refHome vs refAway and returns it oriented to the reference sides.
func ParseGame(htmlContent, refHome, refAway string) (*models.BetbckGame, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse search html: %w", err)
	}

	scope := doc.Find("form#GameSelectionForm").First()
	if scope.Length() == 0 {
		scope = doc.Selection
	}
	wrappers := gameWrappers(scope)

	var game *models.BetbckGame
	wrappers.EachWithBreak(func(_ int, wrapper *goquery.Selection) bool {
		if g := parseWrapper(wrapper, refHome, refAway); g != nil {
			game = g
			return false
		}
		return true
	})
	if game == nil {
		return nil, ErrGameNotFound
	}
	return game, nil
}

// gameWrappers finds the per-game tables, falling back to the older layout
// where they sit inside teams_betting_options containers.
func gameWrappers(scope *goquery.Selection) *goquery.Selection {
	wrappers := scope.Find("table.table_container_betting")
	if wrappers.Length() > 0 {
		return wrappers
	}
	return scope.Find("table.teams_betting_options_2, table.teams_betting_options").
		FilterFunction(func(_ int, s *goquery.Selection) bool {
			return s.Find("table.new_tb_cont").Length() > 0
		})
}

func parseWrapper(wrapper *goquery.Selection, refHome, refAway string) *models.BetbckGame {
	nameCell := wrapper.Find("td[class^='tbl_betAmount_team1_main_name']").First()
	if nameCell.Length() == 0 {
		return nil
	}
	rawLocal := cleanedTeamName(nameCell.Find("div.team1_name_up").First())
	rawVisitor := cleanedTeamName(nameCell.Find("div.team2_name_down").First())
	if rawLocal == "" || rawVisitor == "" {
		return nil
	}
	if isDerivativeEntry(rawLocal) || isDerivativeEntry(rawVisitor) {
		return nil
	}

	match := teams.MatchEvent(rawLocal, rawVisitor, refHome, refAway)
	if !match.Matched {
		return nil
	}

	oddsTable := wrapper.Find("table.new_tb_cont").First()
	if oddsTable.Length() == 0 {
		return nil
	}
	rows := dataRows(oddsTable)
	if len(rows) < 2 {
		return nil
	}

	localCells := rows[0].Find("td[class*='tbl_betAmount_td']")
	visitorCells := rows[1].Find("td[class*='tbl_betAmount_td']")
	homeCells, awayCells := localCells, visitorCells
	if !match.LocalIsHome {
		homeCells, awayCells = visitorCells, localCells
	}

	game := &models.BetbckGame{
		Pair: models.EventPair{
			BetbckLocal:       rawLocal,
			BetbckVisitor:     rawVisitor,
			BetbckLocalNorm:   teams.Normalize(rawLocal),
			BetbckVisitorNorm: teams.Normalize(rawVisitor),
			ReferenceHome:     refHome,
			ReferenceAway:     refAway,
			LocalIsHome:       match.LocalIsHome,
		},
	}

	game.HomeSpreads = spreadOptions(homeCells.Eq(0))
	game.AwaySpreads = spreadOptions(awayCells.Eq(0))
	game.HomeMoneyline, _ = parseAmericanOdds(cellText(homeCells.Eq(1)))
	game.AwayMoneyline, _ = parseAmericanOdds(cellText(awayCells.Eq(1)))

	// The game total lives in the displayed rows: over on top, under below,
	// regardless of which side is home.
	if cell := localCells.Eq(2); cell.Length() > 0 {
		text := cellText(cell)
		if line, ok := parseTotalLine(text); ok && game.TotalLine == 0 {
			game.TotalLine = line
		}
		if strings.Contains(strings.ToLower(text), "o") {
			game.TotalOverOdds, _ = parseAmericanOdds(text)
		}
	}
	if cell := visitorCells.Eq(2); cell.Length() > 0 {
		text := cellText(cell)
		if line, ok := parseTotalLine(text); ok && game.TotalLine == 0 {
			game.TotalLine = line
		}
		if strings.Contains(strings.ToLower(text), "u") {
			game.TotalUnderOdds, _ = parseAmericanOdds(text)
		}
	}

	game.HomeTeamTotal = teamTotal(homeCells)
	game.AwayTeamTotal = teamTotal(awayCells)

	if len(rows) > 2 && strings.Contains(strings.ToLower(rows[2].Text()), "draw") {
		drawCells := rows[2].Find("td[class*='tbl_betAmount_td']")
		if drawCells.Length() > 1 {
			game.DrawMoneyline, _ = parseAmericanOdds(cellText(drawCells.Eq(1)))
		}
	}

	return game
}

func isDerivativeEntry(name string) bool {
	lower := strings.ToLower(name)
	for _, indicator := range skipIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// dataRows returns the odds table's direct rows that carry bet cells,
// skipping headers and colspan separators.
func dataRows(oddsTable *goquery.Selection) []*goquery.Selection {
	body := oddsTable.ChildrenFiltered("tbody").First()
	if body.Length() == 0 {
		body = oddsTable
	}
	var rows []*goquery.Selection
	body.ChildrenFiltered("tr").Each(func(_ int, row *goquery.Selection) {
		if row.Find("td[class*='tbl_betAmount_td']").Length() == 0 {
			return
		}
		if row.Find("td[colspan]").Length() > 0 {
			return
		}
		rows = append(rows, row)
	})
	return rows
}

// cleanedTeamName extracts a display name from a team div, dropping rotation
// numbers, pitcher annotations and prop suffixes.
func cleanedTeamName(div *goquery.Selection) string {
	if div.Length() == 0 {
		return ""
	}
	raw := ""
	if span := div.Find("span[data-language]").First(); span.Length() > 0 {
		raw = strings.TrimSpace(span.Text())
	}
	if raw == "" {
		var segments []string
		div.Contents().Each(func(_ int, node *goquery.Selection) {
			if !includeNameSegment(node) {
				return
			}
			if text := strings.TrimSpace(node.Text()); text != "" {
				segments = append(segments, text)
			}
		})
		raw = strings.Join(segments, " ")
	}
	raw = pitcherSuffixRe.ReplaceAllString(raw, "")
	raw = pitcherInlineRe.ReplaceAllString(raw, "")
	raw = rotationNumberRe.ReplaceAllString(strings.TrimSpace(raw), "")
	raw = hreSuffixRe.ReplaceAllString(strings.TrimSpace(raw), "")
	return strings.Join(strings.Fields(raw), " ")
}

func includeNameSegment(node *goquery.Selection) bool {
	n := node.Get(0)
	if n.Type == html.TextNode {
		return true
	}
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "input", "br":
		return false
	case "span":
		if node.HasClass("game_number_local") || node.HasClass("game_number_visitor") {
			return false
		}
		style, _ := node.Attr("style")
		return !strings.Contains(strings.ReplaceAll(style, " ", ""), "font-size:11px")
	case "strong":
		return !isAllDigits(strings.TrimSpace(node.Text()))
	}
	return true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// cellText flattens a bet cell to text. Cells with a line selector report
// the chosen (or first) option only; segments are space-joined so adjacent
// elements don't fuse into one token.
func cellText(cell *goquery.Selection) string {
	if cell.Length() == 0 {
		return ""
	}
	if sel := cell.Find("select").First(); sel.Length() > 0 {
		opt := sel.Find("option[selected]").First()
		if opt.Length() == 0 {
			opt = sel.Find("option").First()
		}
		if opt.Length() > 0 {
			return joinedText(opt)
		}
		return joinedText(sel)
	}
	return joinedText(cell)
}

func joinedText(s *goquery.Selection) string {
	var parts []string
	var walk func(*goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, node *goquery.Selection) {
			if node.Get(0).Type == html.TextNode {
				if text := strings.TrimSpace(node.Text()); text != "" {
					parts = append(parts, text)
				}
				return
			}
			walk(node)
		})
	}
	walk(s)
	return strings.Join(parts, " ")
}

// spreadOptions reads every alternate line offered in a spread cell.
func spreadOptions(cell *goquery.Selection) []models.SpreadOption {
	if cell.Length() == 0 {
		return nil
	}
	var options []models.SpreadOption
	if sel := cell.Find("select").First(); sel.Length() > 0 {
		sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
			if line, odds, ok := parseSpreadOption(joinedText(opt)); ok {
				options = append(options, models.SpreadOption{Line: line, Odds: odds})
			}
		})
		return options
	}
	text := cleanCellText(joinedText(cell))
	for _, m := range inlineSpreadRe.FindAllStringSubmatch(text, -1) {
		line, lineOK := parseLine(m[1])
		odds, oddsOK := parseAmericanOdds(m[2])
		if lineOK && oddsOK {
			options = append(options, models.SpreadOption{Line: line, Odds: odds})
		}
	}
	return options
}

// teamTotal reads a side's over (4th cell) and under (5th cell) market.
func teamTotal(cells *goquery.Selection) *models.TeamTotal {
	tt := &models.TeamTotal{}
	if cell := cells.Eq(3); cell.Length() > 0 {
		text := cellText(cell)
		if strings.Contains(strings.ToLower(text), "o") {
			tt.OverLine, _ = parseTotalLine(text)
			tt.OverOdds, _ = parseAmericanOdds(text)
		}
	}
	if cell := cells.Eq(4); cell.Length() > 0 {
		text := cellText(cell)
		if strings.Contains(strings.ToLower(text), "u") {
			tt.UnderLine, _ = parseTotalLine(text)
			tt.UnderOdds, _ = parseAmericanOdds(text)
		}
	}
	if tt.OverOdds == 0 && tt.UnderOdds == 0 {
		return nil
	}
	return tt
}
