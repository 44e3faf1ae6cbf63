package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCulture  = errors.New("unknown culture")
	ErrUnknownCardType = errors.New("unknown card type")
)

// Culture is the regional culture printed on a card. It is one of the two
// attributes used for matching.
type Culture int

const (
	CultureFuzhou Culture = iota
	CultureQuanzhou
	CultureNanping
	CultureLongyan
	CulturePutian

	// NumCultures is the size of the closed culture set.
	NumCultures = 5
)

// AllCultures lists every culture in declaration order.
var AllCultures = [NumCultures]Culture{
	CultureFuzhou,
	CultureQuanzhou,
	CultureNanping,
	CultureLongyan,
	CulturePutian,
}

func (c Culture) String() string {
	switch c {
	case CultureFuzhou:
		return "fuzhou"
	case CultureQuanzhou:
		return "quanzhou"
	case CultureNanping:
		return "nanping"
	case CultureLongyan:
		return "longyan"
	case CulturePutian:
		return "putian"
	default:
		return fmt.Sprintf("Culture(%d)", int(c))
	}
}

// ParseCulture maps a wire tag such as "fuzhou" to its Culture.
func ParseCulture(s string) (Culture, error) {
	for _, c := range AllCultures {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCulture, s)
}

// CardType is the kind of card: a historical figure, a place or a saying.
type CardType int

const (
	TypeCharacter CardType = iota
	TypeLocation
	TypeQuote

	// NumCardTypes is the size of the closed card type set.
	NumCardTypes = 3
)

// AllCardTypes lists every card type in declaration order.
var AllCardTypes = [NumCardTypes]CardType{
	TypeCharacter,
	TypeLocation,
	TypeQuote,
}

func (t CardType) String() string {
	switch t {
	case TypeCharacter:
		return "character"
	case TypeLocation:
		return "location"
	case TypeQuote:
		return "quote"
	default:
		return fmt.Sprintf("CardType(%d)", int(t))
	}
}

// ParseCardType maps a wire tag such as "quote" to its CardType.
func ParseCardType(s string) (CardType, error) {
	for _, t := range AllCardTypes {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCardType, s)
}

// Card is a single card from the pool. IDs are unique across the whole pool.
type Card struct {
	ID      string
	Name    string
	Culture Culture
	Type    CardType
	Image   string
}

func (c Card) String() string {
	return fmt.Sprintf("%s(%s/%s)", c.ID, c.Culture, c.Type)
}
