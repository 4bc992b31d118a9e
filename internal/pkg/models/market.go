package models

// MarketType identifies a betting proposition kind. Using typed constants
// instead of free-form strings ("ML", "Spread", "ML 1H", ...) keeps invalid
// combinations unrepresentable.
type MarketType int

const (
	Moneyline MarketType = iota
	Spread
	Total
)

func (m MarketType) String() string {
	switch m {
	case Moneyline:
		return "moneyline"
	case Spread:
		return "spread"
	case Total:
		return "total"
	}
	return "unknown"
}

// Period tags a market with the portion of the game it covers.
type Period int

const (
	FullGame Period = iota
	FirstHalf
)

// Reference-feed period keys. Only these two are analyzed; other keys in a
// snapshot pass through untouched for display.
const (
	PeriodKeyFullGame  = "num_0"
	PeriodKeyFirstHalf = "num_1"
)

func (p Period) String() string {
	switch p {
	case FullGame:
		return "full_game"
	case FirstHalf:
		return "first_half"
	}
	return "unknown"
}

// Key returns the reference-feed period key for p.
func (p Period) Key() string {
	switch p {
	case FirstHalf:
		return PeriodKeyFirstHalf
	default:
		return PeriodKeyFullGame
	}
}

// PeriodFromKey maps a reference-feed period key to a Period.
func PeriodFromKey(key string) (Period, bool) {
	switch key {
	case PeriodKeyFullGame:
		return FullGame, true
	case PeriodKeyFirstHalf:
		return FirstHalf, true
	}
	return FullGame, false
}

// MatchedBet is one comparable quote: a secondary-book price paired with the
// reference book's no-vig price for the same market, with the computed edge.
type MatchedBet struct {
	Market         MarketType `json:"market"`
	Period         Period     `json:"period"`
	Selection      string     `json:"selection"`      // team name, "Draw", "Over" or "Under"
	Line           float64    `json:"line,omitempty"` // spread handicap or total threshold, home-side sign
	BetbckAmerican int        `json:"betbck_american"`
	NVPAmerican    int        `json:"nvp_american"`
	EV             float64    `json:"ev"` // raw ratio, e.g. 0.017 for +1.7%
}

// EventPair records a successful cross-book identity match.
// LocalIsHome is load-bearing: when false the secondary book lists the
// reference away side first and every market must be read flipped.
type EventPair struct {
	BetbckLocal       string `json:"betbck_local"`
	BetbckVisitor     string `json:"betbck_visitor"`
	BetbckLocalNorm   string `json:"betbck_local_norm"`
	BetbckVisitorNorm string `json:"betbck_visitor_norm"`
	ReferenceHome     string `json:"reference_home"`
	ReferenceAway     string `json:"reference_away"`
	LocalIsHome       bool   `json:"local_is_home"`
}
