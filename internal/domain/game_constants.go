package domain

const (
	// DefaultHandSize is the number of cards dealt to each side.
	DefaultHandSize = 7
	// DefaultDeckCopies is how many copies of each culture/type pair a deck holds.
	DefaultDeckCopies = 2

	// CurrentPlayerHuman and CurrentPlayerAI are the wire tags for whose turn it is.
	CurrentPlayerHuman = "human"
	CurrentPlayerAI    = "ai"
)
