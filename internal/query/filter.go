// Package query provides pure, in-memory filtering, sorting, and statistics
// over a user's travel list. Nothing here touches the store; callers pass an
// already-loaded slice and the functions never mutate it.
package query

import (
	"sort"
	"strings"

	"travel-planner/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder selects the sort key for FilterAndSort.
type SortOrder string

const (
	// SortNewest orders by creation time, most recent first. This is the
	// default and matches the order the store returns.
	SortNewest SortOrder = "newest"
	// SortOldest orders by creation time, oldest first.
	SortOldest SortOrder = "oldest"
	// SortTitle orders by title, locale-aware ascending.
	SortTitle SortOrder = "title"
	// SortDestination orders by destination, locale-aware ascending.
	SortDestination SortOrder = "destination"
	// SortStartDate orders by start date ascending.
	SortStartDate SortOrder = "startDate"
	// SortBudget orders by budget descending.
	SortBudget SortOrder = "budget"
)

// StatusAll disables status filtering.
const StatusAll = "all"

// Options controls FilterAndSort.
type Options struct {
	// SearchTerm keeps travels whose title, destination, or description
	// contains the term, case-insensitive. Empty means no search filter.
	SearchTerm string
	// Status keeps travels with a matching status. Empty or "all" keeps
	// everything.
	Status string
	// SortBy selects the sort key. Unknown values fall back to newest.
	SortBy SortOrder
}

// FilterAndSort returns a new slice with the search and status filters
// applied, ordered by the requested sort key. The sort is stable: travels
// that compare equal keep their relative order from the filter stage, so
// repeated application with the same options is idempotent.
func FilterAndSort(travels []models.Travel, opts Options) []models.Travel {
	result := make([]models.Travel, 0, len(travels))

	term := strings.ToLower(strings.TrimSpace(opts.SearchTerm))
	for _, travel := range travels {
		if term != "" && !matchesTerm(&travel, term) {
			continue
		}
		if opts.Status != "" && opts.Status != StatusAll && string(travel.Status) != opts.Status {
			continue
		}
		result = append(result, travel)
	}

	sortTravels(result, opts.SortBy)
	return result
}

// matchesTerm reports whether the lowercased term occurs in the travel's
// title, destination, or description. Plain substring containment, not
// tokenized search.
func matchesTerm(travel *models.Travel, term string) bool {
	return strings.Contains(strings.ToLower(travel.Title), term) ||
		strings.Contains(strings.ToLower(travel.Destination), term) ||
		strings.Contains(strings.ToLower(travel.Description), term)
}

func sortTravels(travels []models.Travel, sortBy SortOrder) {
	switch sortBy {
	case SortOldest:
		sort.SliceStable(travels, func(i, j int) bool {
			return travels[i].CreatedAt.Before(travels[j].CreatedAt)
		})
	case SortTitle:
		// Collators carry an internal buffer, so build one per sort
		// rather than sharing across goroutines.
		col := collate.New(language.Und)
		sort.SliceStable(travels, func(i, j int) bool {
			return col.CompareString(travels[i].Title, travels[j].Title) < 0
		})
	case SortDestination:
		col := collate.New(language.Und)
		sort.SliceStable(travels, func(i, j int) bool {
			return col.CompareString(travels[i].Destination, travels[j].Destination) < 0
		})
	case SortStartDate:
		sort.SliceStable(travels, func(i, j int) bool {
			return travels[i].StartDate.Before(travels[j].StartDate)
		})
	case SortBudget:
		sort.SliceStable(travels, func(i, j int) bool {
			return travels[i].Budget > travels[j].Budget
		})
	default: // SortNewest
		sort.SliceStable(travels, func(i, j int) bool {
			return travels[i].CreatedAt.After(travels[j].CreatedAt)
		})
	}
}
