package models

// SpreadOption is one selectable spread line with its price. BetBCK exposes
// a full selector board of alternates per side, not just the headline line.
type SpreadOption struct {
	Line float64 `json:"line"` // signed handicap for that side; 0 is pick'em
	Odds int     `json:"odds"` // American
}

// TeamTotal is a single team's over/under market. Parsed for display; the
// reference feed carries no counterpart so it is never paired.
type TeamTotal struct {
	OverLine  float64 `json:"over_line,omitempty"`
	OverOdds  int     `json:"over_odds,omitempty"`
	UnderLine float64 `json:"under_line,omitempty"`
	UnderOdds int     `json:"under_odds,omitempty"`
}

// BetbckGame is one game's full-game board scraped from BetBCK, already
// oriented: Home* fields belong to the reference feed's home side
// regardless of which side BetBCK listed first. American odds, 0 = absent.
type BetbckGame struct {
	Pair EventPair `json:"pair"`

	HomeMoneyline int `json:"home_moneyline,omitempty"`
	AwayMoneyline int `json:"away_moneyline,omitempty"`
	DrawMoneyline int `json:"draw_moneyline,omitempty"`

	HomeSpreads []SpreadOption `json:"home_spreads,omitempty"`
	AwaySpreads []SpreadOption `json:"away_spreads,omitempty"`

	TotalLine      float64 `json:"total_line,omitempty"` // one shared line per game
	TotalOverOdds  int     `json:"total_over_odds,omitempty"`
	TotalUnderOdds int     `json:"total_under_odds,omitempty"`

	HomeTeamTotal *TeamTotal `json:"home_team_total,omitempty"`
	AwayTeamTotal *TeamTotal `json:"away_team_total,omitempty"`
}

// AlertDetails is the payload of an incoming odds-drop alert.
type AlertDetails struct {
	EventID  string `json:"eventId"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	League   string `json:"leagueName,omitempty"`
	BetType  string `json:"betType,omitempty"`
	OldOdds  string `json:"oldOdds,omitempty"`
	NewOdds  string `json:"newOdds,omitempty"`
	NoVig    string `json:"noVigPriceFromAlert,omitempty"`
}

// Comparison statuses surfaced to the events endpoint.
const (
	ComparisonSuccess      = "success"
	ComparisonNoMatch      = "no_match"
	ComparisonScrapeFailed = "scrape_failed"
)

// ComparisonResult is the outcome of one secondary-book analysis pass for
// an alerted event.
type ComparisonResult struct {
	Status  string       `json:"status"`
	Message string       `json:"message,omitempty"`
	Game    *BetbckGame  `json:"game,omitempty"`
	Bets    []MatchedBet `json:"bets,omitempty"`
}
