package app

import (
	"strconv"
	"strings"

	"github.com/sainath-666/pgstay/internal/domain"
)

// SearchScope selects which listing fields the area search term matches.
// Both variants shipped in the app at different times; they stay as explicit
// configurations rather than being unified.
type SearchScope int

const (
	// ScopeArea matches the search term against the area field only.
	ScopeArea SearchScope = iota
	// ScopeBroad matches against area, city and name.
	ScopeBroad
)

func ParseSearchScope(s string) SearchScope {
	if strings.EqualFold(strings.TrimSpace(s), "area") {
		return ScopeArea
	}
	return ScopeBroad
}

// FilterEngine derives the displayed subset of a fetched listing set. Filter
// is pure: same inputs, same output, in input order, no side effects.
type FilterEngine struct {
	scope SearchScope
}

func NewFilterEngine(scope SearchScope) *FilterEngine {
	return &FilterEngine{scope: scope}
}

// Filter applies the criteria as an unordered conjunction of independent
// predicates and returns a stable subsequence of listings.
func (e *FilterEngine) Filter(listings []domain.Listing, c domain.FilterCriteria) []domain.Listing {
	term := strings.ToLower(strings.TrimSpace(c.Area))
	budget, budgetActive := parseBudget(c.MaxBudget)

	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if term != "" && !e.matchesTerm(l, term) {
			continue
		}
		if c.Gender != "" && c.Gender != domain.GenderAll && string(l.GenderType) != c.Gender {
			continue
		}
		if c.FoodOnly && !l.HasFood {
			continue
		}
		if budgetActive {
			min := MinMonthlyPrice(l)
			if min == nil || *min > budget {
				continue
			}
		}
		out = append(out, l)
	}
	return out
}

func (e *FilterEngine) matchesTerm(l domain.Listing, term string) bool {
	if strings.Contains(strings.ToLower(l.Area), term) {
		return true
	}
	if e.scope == ScopeArea {
		return false
	}
	if l.City != nil && strings.Contains(strings.ToLower(*l.City), term) {
		return true
	}
	return strings.Contains(strings.ToLower(l.Name), term)
}

// parseBudget interprets the raw budget input. Unparseable or non-positive
// values deactivate the predicate; they are never an error.
func parseBudget(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// MinMonthlyPrice returns the smallest defined monthly room price, or nil
// when no room defines one. Shared by the budget predicate and the
// "from ₹X/mo" card display so the two can't drift.
func MinMonthlyPrice(l domain.Listing) *float64 {
	var min *float64
	for _, r := range l.Rooms {
		if r.PricePerMonth == nil {
			continue
		}
		v := *r.PricePerMonth
		if min == nil || v < *min {
			min = &v
		}
	}
	return min
}
