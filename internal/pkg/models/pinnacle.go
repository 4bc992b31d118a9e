package models

// PinnacleSnapshot is one event's odds as decoded from the relay API.
// Decimal odds throughout; 0 means the outcome is not offered. NVP and
// American fields are filled in by the analyzer, not the feed.
type PinnacleSnapshot struct {
	EventID string                     `json:"event_id,omitempty"`
	Home    string                     `json:"home"`
	Away    string                     `json:"away"`
	League  string                     `json:"league,omitempty"`
	Starts  string                     `json:"starts,omitempty"`
	Periods map[string]*PinnaclePeriod `json:"periods"`
}

// PinnaclePeriod holds one period's markets. Spreads are keyed by the
// home-side handicap as formatted by the feed ("-1.5"), totals by the
// points threshold ("8.5").
type PinnaclePeriod struct {
	MoneyLine *MoneyLineMarket         `json:"money_line,omitempty"`
	Spreads   map[string]*SpreadMarket `json:"spreads,omitempty"`
	Totals    map[string]*TotalMarket  `json:"totals,omitempty"`
}

type MoneyLineMarket struct {
	Home float64 `json:"home,omitempty"`
	Draw float64 `json:"draw,omitempty"`
	Away float64 `json:"away,omitempty"`

	NVPHome float64 `json:"nvp_home,omitempty"`
	NVPDraw float64 `json:"nvp_draw,omitempty"`
	NVPAway float64 `json:"nvp_away,omitempty"`

	AmericanHome    int `json:"american_home,omitempty"`
	AmericanDraw    int `json:"american_draw,omitempty"`
	AmericanAway    int `json:"american_away,omitempty"`
	NVPAmericanHome int `json:"nvp_american_home,omitempty"`
	NVPAmericanDraw int `json:"nvp_american_draw,omitempty"`
	NVPAmericanAway int `json:"nvp_american_away,omitempty"`
}

type SpreadMarket struct {
	Hdp  float64 `json:"hdp"` // home-side handicap; away side is the negation
	Home float64 `json:"home,omitempty"`
	Away float64 `json:"away,omitempty"`

	NVPHome float64 `json:"nvp_home,omitempty"`
	NVPAway float64 `json:"nvp_away,omitempty"`

	AmericanHome    int `json:"american_home,omitempty"`
	AmericanAway    int `json:"american_away,omitempty"`
	NVPAmericanHome int `json:"nvp_american_home,omitempty"`
	NVPAmericanAway int `json:"nvp_american_away,omitempty"`
}

type TotalMarket struct {
	Points float64 `json:"points"`
	Over   float64 `json:"over,omitempty"`
	Under  float64 `json:"under,omitempty"`

	NVPOver  float64 `json:"nvp_over,omitempty"`
	NVPUnder float64 `json:"nvp_under,omitempty"`

	AmericanOver     int `json:"american_over,omitempty"`
	AmericanUnder    int `json:"american_under,omitempty"`
	NVPAmericanOver  int `json:"nvp_american_over,omitempty"`
	NVPAmericanUnder int `json:"nvp_american_under,omitempty"`
}

// Period returns the markets for p, or nil if the feed did not carry them.
func (s *PinnacleSnapshot) Period(p Period) *PinnaclePeriod {
	if s == nil || s.Periods == nil {
		return nil
	}
	return s.Periods[p.Key()]
}

// Clone returns a deep copy. Annotation mutates market structs in place, so
// a snapshot shared with readers must be cloned before re-annotating.
func (s *PinnacleSnapshot) Clone() *PinnacleSnapshot {
	if s == nil {
		return nil
	}
	c := *s
	if s.Periods == nil {
		return &c
	}
	c.Periods = make(map[string]*PinnaclePeriod, len(s.Periods))
	for key, period := range s.Periods {
		c.Periods[key] = period.clone()
	}
	return &c
}

func (p *PinnaclePeriod) clone() *PinnaclePeriod {
	if p == nil {
		return nil
	}
	c := &PinnaclePeriod{}
	if p.MoneyLine != nil {
		ml := *p.MoneyLine
		c.MoneyLine = &ml
	}
	if p.Spreads != nil {
		c.Spreads = make(map[string]*SpreadMarket, len(p.Spreads))
		for k, v := range p.Spreads {
			if v == nil {
				c.Spreads[k] = nil
				continue
			}
			sv := *v
			c.Spreads[k] = &sv
		}
	}
	if p.Totals != nil {
		c.Totals = make(map[string]*TotalMarket, len(p.Totals))
		for k, v := range p.Totals {
			if v == nil {
				c.Totals[k] = nil
				continue
			}
			tv := *v
			c.Totals[k] = &tv
		}
	}
	return c
}
