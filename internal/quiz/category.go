package quiz

import "fmt"

// Category identifies one of the six plant personalities a quiz can resolve to.
// The declaration order is the tie-break priority used by ComputeResult.
type Category int

const (
	Lavender Category = iota
	Cypress
	Hinoki
	Chamomile
	Mint
	Peony

	// NumCategories is the size of the closed category set.
	NumCategories = int(Peony) + 1
)

var categoryNames = [NumCategories]string{
	Lavender:  "lavender",
	Cypress:   "cypress",
	Hinoki:    "hinoki",
	Chamomile: "chamomile",
	Mint:      "mint",
	Peony:     "peony",
}

// AllCategories returns all categories in priority order.
func AllCategories() []Category {
	return []Category{Lavender, Cypress, Hinoki, Chamomile, Mint, Peony}
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < NumCategories
}

// String returns the stable identifier used in content files and the journal.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory maps an identifier such as "lavender" to its Category.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("parse %q: %w", s, ErrInvalidCategory)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("marshal %d: %w", int(c), ErrInvalidCategory)
	}
	return []byte(categoryNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
