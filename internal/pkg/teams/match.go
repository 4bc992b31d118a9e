package teams

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Token-set scores this high on both sides of one orientation count as the
// same event. Exact normalized equality is always tried first.
const fuzzyMatchThreshold = 80

// MatchResult is the verdict on whether two home/away pairs name the same
// event. LocalIsHome is false when the secondary book lists the reference
// away side as its local team; every market comparison must then be read
// flipped.
type MatchResult struct {
	Matched     bool
	LocalIsHome bool
}

// MatchEvent decides whether the secondary book's (localHome, localAway)
// pair and the reference feed's (refHome, refAway) pair are the same event.
// Swapping both of one source's sides inverts LocalIsHome but never the
// Matched verdict.
func MatchEvent(localHome, localAway, refHome, refAway string) MatchResult {
	lh, la := Normalize(localHome), Normalize(localAway)
	rh, ra := Normalize(refHome), Normalize(refAway)

	if lh == rh && la == ra {
		return MatchResult{Matched: true, LocalIsHome: true}
	}
	if lh == ra && la == rh {
		return MatchResult{Matched: true, LocalIsHome: false}
	}

	if fuzzy.TokenSetRatio(lh, rh) >= fuzzyMatchThreshold &&
		fuzzy.TokenSetRatio(la, ra) >= fuzzyMatchThreshold {
		return MatchResult{Matched: true, LocalIsHome: true}
	}
	if fuzzy.TokenSetRatio(lh, ra) >= fuzzyMatchThreshold &&
		fuzzy.TokenSetRatio(la, rh) >= fuzzyMatchThreshold {
		return MatchResult{Matched: true, LocalIsHome: false}
	}

	return MatchResult{}
}
