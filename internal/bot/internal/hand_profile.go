package internal

import "minpai/internal/domain"

// HandProfile summarizes how a hand is spread over cultures and types.
type HandProfile struct {
	TotalCards int
	Cultures   [domain.NumCultures]int
	Types      [domain.NumCardTypes]int
}

// ProfileHand counts the cards of hand per culture and per type in one pass.
func ProfileHand(hand domain.Hand) HandProfile {
	profile := HandProfile{TotalCards: hand.Len()}
	for _, c := range hand.Cards() {
		profile.Cultures[c.Culture]++
		profile.Types[c.Type]++
	}
	return profile
}

// DistinctCultures is the number of cultures with at least one card.
func (p HandProfile) DistinctCultures() int {
	n := 0
	for _, count := range p.Cultures {
		if count > 0 {
			n++
		}
	}
	return n
}

// MinPresentType is the smallest non-zero type count, or 0 for an empty hand.
func (p HandProfile) MinPresentType() int {
	minCount := 0
	for _, count := range p.Types {
		if count == 0 {
			continue
		}
		if minCount == 0 || count < minCount {
			minCount = count
		}
	}
	return minCount
}

// OnlyOfCulture reports whether c is the single card of its culture.
func (p HandProfile) OnlyOfCulture(c domain.Card) bool {
	return p.Cultures[c.Culture] == 1
}

// OnlyOfType reports whether c is the single card of its type.
func (p HandProfile) OnlyOfType(c domain.Card) bool {
	return p.Types[c.Type] == 1
}
