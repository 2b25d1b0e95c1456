package domain

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page holds limit/offset pagination parameters.
type Page struct {
	Limit  int
	Offset int
}

// Normalize applies the default limit, clamps to MaxPageLimit and drops
// negative offsets.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// PageResult is one page of items plus the total number of matching rows.
type PageResult[T any] struct {
	Items []T
	Total int
}
