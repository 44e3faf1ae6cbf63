package internal

import "minpai/internal/domain"

// Position weights. Scores are from the AI's point of view; higher is better
// for the AI.
const (
	WeightHandSize    = 15.0
	WeightPenalty     = 10.0
	WeightQuality     = 3.0
	WeightPlayable    = 5.0
	WeightCultureCtrl = 2.0

	BonusAILastCard       = 20.0
	PenaltyPlayerLastCard = 25.0

	// CultureControlStep is added per culture the AI holds more of, and
	// subtracted per culture it holds less of.
	CultureControlStep = 2.0
)

// Hand quality terms.
const (
	QualityPerCulture    = 3.0
	QualityTypeBalance   = 2.0
	QualityOnlyOfCulture = 3.0
	QualityOnlyOfType    = 2.0
	ValueCharacter       = 1.5
	ValueLocation        = 1.2
	ValueQuote           = 1.0
)

// Evaluate scores a position for the AI.
func Evaluate(state domain.GameState) float64 {
	ai := ProfileHand(state.AIHand)
	player := ProfileHand(state.PlayerHand)

	score := float64(ai.TotalCards-player.TotalCards) * WeightHandSize
	score += float64(state.Penalties.Player-state.Penalties.AI) * WeightPenalty

	score += handQuality(state.AIHand, ai) * WeightQuality
	score -= handQuality(state.PlayerHand, player) * WeightQuality

	aiPlayable := domain.CountPlayable(state.AIHand, state.CurrentCard)
	playerPlayable := domain.CountPlayable(state.PlayerHand, state.CurrentCard)
	score += float64(aiPlayable-playerPlayable) * WeightPlayable

	if ai.TotalCards == 1 {
		score += BonusAILastCard
	}
	if player.TotalCards == 1 {
		score -= PenaltyPlayerLastCard
	}

	score += cultureControl(ai, player) * WeightCultureCtrl
	return score
}

// HandQuality rates the shape of a hand, averaged over its cards. An empty
// hand has quality 0.
func HandQuality(hand domain.Hand) float64 {
	return handQuality(hand, ProfileHand(hand))
}

func handQuality(hand domain.Hand, profile HandProfile) float64 {
	if profile.TotalCards == 0 {
		return 0
	}
	quality := float64(profile.DistinctCultures()) * QualityPerCulture
	quality += float64(profile.MinPresentType()) * QualityTypeBalance
	for _, c := range hand.Cards() {
		quality += CardValue(c, profile)
	}
	return quality / float64(profile.TotalCards)
}

// CardValue is the strategic worth of c within a hand described by profile.
func CardValue(c domain.Card, profile HandProfile) float64 {
	value := typeValue(c.Type)
	if profile.OnlyOfCulture(c) {
		value += QualityOnlyOfCulture
	}
	if profile.OnlyOfType(c) {
		value += QualityOnlyOfType
	}
	return value
}

func typeValue(t domain.CardType) float64 {
	switch t {
	case domain.TypeCharacter:
		return ValueCharacter
	case domain.TypeLocation:
		return ValueLocation
	case domain.TypeQuote:
		return ValueQuote
	default:
		return 0
	}
}

func cultureControl(ai, player HandProfile) float64 {
	control := 0.0
	for _, c := range domain.AllCultures {
		switch {
		case ai.Cultures[c] > player.Cultures[c]:
			control += CultureControlStep
		case ai.Cultures[c] < player.Cultures[c]:
			control -= CultureControlStep
		}
	}
	return control
}
