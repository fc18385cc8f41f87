package typograph

import (
	"strings"

	"github.com/walteh/typograph/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🧮 CountMode decides how the guillemet-arrow and English dash rules report
// their changes, and how strictly Russian prepositions are matched.
//
// Faithful keeps the historical behaviour: English arrows and dashes are never
// counted, the Russian arrow rule reports exactly one change per line
// whether or not anything was replaced, and a preposition may be the tail of
// a longer word. Corrected counts every replacement and only binds whole
// prepositions.
type CountMode int

const (
	Faithful CountMode = iota
	Corrected
)

// String returns a string representation of CountMode
func (m CountMode) String() string {
	switch m {
	case Faithful:
		return "faithful"
	case Corrected:
		return "corrected"
	default:
		return "unknown"
	}
}

// ParseCountMode parses "faithful" or "corrected"; empty means Faithful
func ParseCountMode(s string) (CountMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "faithful":
		return Faithful, nil
	case "corrected":
		return Corrected, nil
	default:
		return Faithful, errors.Errorf("unknown count mode %q", s)
	}
}

// policy picks the count policy a rule uses in this mode
func (m CountMode) policy(faithful text.CountPolicy) text.CountPolicy {
	if m == Corrected {
		return text.CountEach
	}
	return faithful
}
