package domain

import "math"

// ScoringPolicy holds every ranking constant in one place so the formula
// is swappable and testable in isolation. Domain scores sit above every
// other matcher's ceiling: an exact domain query always wins.
type ScoringPolicy struct {
	// DomainExactScore is awarded when the bookmark's extracted domain
	// equals the query domain exactly.
	DomainExactScore float64
	// DomainPartialScore is awarded for subdomain/superdomain matches.
	DomainPartialScore float64
	// TagScoreCeiling is the score for a bookmark matching every
	// requested tag; partial matches scale linearly.
	TagScoreCeiling float64
	// TagWeight multiplies tag scores at fusion time.
	TagWeight float64
	// VectorWeight dampens a vector score merged into a result that an
	// exact matcher already found.
	VectorWeight float64
	// OpenBoostFactor scales the logarithmic popularity boost.
	OpenBoostFactor float64
}

// DefaultScoringPolicy returns the production ranking constants.
func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		DomainExactScore:   150,
		DomainPartialScore: 120,
		TagScoreCeiling:    100,
		TagWeight:          1.5,
		VectorWeight:       0.6,
		OpenBoostFactor:    10,
	}
}

// TagScore scores a bookmark by the fraction of requested tags it matched.
func (p ScoringPolicy) TagScore(matchedTags, requestedTags int) float64 {
	if requestedTags <= 0 {
		return 0
	}
	return p.TagScoreCeiling * float64(matchedTags) / float64(requestedTags)
}

// VectorScore converts a cosine distance into a score with a linear
// falloff, reaching zero at distance >= 1.
func (p ScoringPolicy) VectorScore(distance float64) float64 {
	return math.Max(0, 100*(1-distance))
}

// OpenBoost is the logarithmic popularity boost: frequent revisits rank
// higher without dominating. Zero opens leaves the score unchanged.
func (p ScoringPolicy) OpenBoost(openCount int64) float64 {
	if openCount <= 0 {
		return 0
	}
	return math.Log(float64(openCount)+1) * p.OpenBoostFactor
}
