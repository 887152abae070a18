package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Predicate selects products for ProductCollection.Search.
type Predicate func(Product) bool

// NameContains matches names containing substr, ignoring case.
func NameContains(substr string) Predicate {
	needle := strings.ToLower(substr)
	return func(p Product) bool {
		return strings.Contains(strings.ToLower(p.name), needle)
	}
}

// OfType matches products of the given type code, ignoring case.
func OfType(code string) Predicate {
	want := TypeCode(strings.ToUpper(strings.TrimSpace(code)))
	return func(p Product) bool { return p.typeCode == want }
}

func MinQuantity(n int) Predicate {
	return func(p Product) bool { return p.quantity >= n }
}

func MaxQuantity(n int) Predicate {
	return func(p Product) bool { return p.quantity <= n }
}

func MinPrice(d decimal.Decimal) Predicate {
	return func(p Product) bool { return p.price.GreaterThanOrEqual(d) }
}

func MaxPrice(d decimal.Decimal) Predicate {
	return func(p Product) bool { return p.price.LessThanOrEqual(d) }
}

// MatchAll matches when every predicate matches. With no predicates it matches
// everything.
func MatchAll(preds ...Predicate) Predicate {
	return func(p Product) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}
