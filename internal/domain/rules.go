package domain

// CanPlay reports whether card may follow current. Any card may lead when
// nothing is in play; otherwise the card must share the culture or the type
// of the card in play.
func CanPlay(card Card, current *Card) bool {
	if current == nil {
		return true
	}
	return card.Culture == current.Culture || card.Type == current.Type
}

// Playable returns the cards of hand that may follow current, in hand order.
func Playable(hand Hand, current *Card) []Card {
	if current == nil {
		return hand.Cards()
	}
	out := make([]Card, 0, hand.Len())
	for _, c := range hand.cards {
		if CanPlay(c, current) {
			out = append(out, c)
		}
	}
	return out
}

// CountPlayable is len(Playable(hand, current)) without the allocation.
func CountPlayable(hand Hand, current *Card) int {
	if current == nil {
		return hand.Len()
	}
	n := 0
	for _, c := range hand.cards {
		if CanPlay(c, current) {
			n++
		}
	}
	return n
}
