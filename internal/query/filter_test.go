package query

import (
	"testing"
	"time"

	"travel-planner/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTravel(title, destination, description string, status models.TravelStatus, budget float64, createdAt time.Time) models.Travel {
	return models.Travel{
		Title:       title,
		Destination: destination,
		Description: description,
		Status:      status,
		Budget:      budget,
		StartDate:   createdAt.Add(30 * 24 * time.Hour),
		CreatedAt:   createdAt,
	}
}

func sampleTravels() []models.Travel {
	t1 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	return []models.Travel{
		makeTravel("Kyoto Trip", "Kyoto", "Temples and gardens", models.StatusPlanning, 100000, t1),
		makeTravel("Osaka Trip", "Osaka", "Street food tour", models.StatusCompleted, 50000, t2),
	}
}

func titles(travels []models.Travel) []string {
	out := make([]string, len(travels))
	for i, tr := range travels {
		out[i] = tr.Title
	}
	return out
}

func TestFilterAndSort_Search(t *testing.T) {
	travels := sampleTravels()

	t.Run("matches title case-insensitively", func(t *testing.T) {
		result := FilterAndSort(travels, Options{SearchTerm: "kyoto"})

		require.Len(t, result, 1)
		assert.Equal(t, "Kyoto Trip", result[0].Title)
	})

	t.Run("matches destination", func(t *testing.T) {
		result := FilterAndSort(travels, Options{SearchTerm: "OSAKA"})

		require.Len(t, result, 1)
		assert.Equal(t, "Osaka Trip", result[0].Title)
	})

	t.Run("matches description", func(t *testing.T) {
		result := FilterAndSort(travels, Options{SearchTerm: "street food"})

		require.Len(t, result, 1)
		assert.Equal(t, "Osaka Trip", result[0].Title)
	})

	t.Run("no match returns empty non-nil slice", func(t *testing.T) {
		result := FilterAndSort(travels, Options{SearchTerm: "hokkaido"})

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("empty term keeps everything", func(t *testing.T) {
		result := FilterAndSort(travels, Options{})

		assert.Len(t, result, 2)
	})
}

func TestFilterAndSort_StatusFilter(t *testing.T) {
	travels := sampleTravels()

	t.Run("keeps only matching status", func(t *testing.T) {
		result := FilterAndSort(travels, Options{Status: "completed"})

		require.Len(t, result, 1)
		assert.Equal(t, "Osaka Trip", result[0].Title)
	})

	t.Run("all keeps everything", func(t *testing.T) {
		result := FilterAndSort(travels, Options{Status: StatusAll})

		assert.Len(t, result, 2)
	})

	t.Run("unknown status matches nothing", func(t *testing.T) {
		result := FilterAndSort(travels, Options{Status: "archived"})

		assert.Empty(t, result)
	})
}

func TestFilterAndSort_Sorting(t *testing.T) {
	travels := sampleTravels()

	tests := []struct {
		name     string
		sortBy   SortOrder
		expected []string
	}{
		{"newest first", SortNewest, []string{"Osaka Trip", "Kyoto Trip"}},
		{"oldest first", SortOldest, []string{"Kyoto Trip", "Osaka Trip"}},
		{"title ascending", SortTitle, []string{"Kyoto Trip", "Osaka Trip"}},
		{"destination ascending", SortDestination, []string{"Kyoto Trip", "Osaka Trip"}},
		{"start date ascending", SortStartDate, []string{"Kyoto Trip", "Osaka Trip"}},
		{"budget descending", SortBudget, []string{"Kyoto Trip", "Osaka Trip"}},
		{"unknown key falls back to newest", SortOrder("bogus"), []string{"Osaka Trip", "Kyoto Trip"}},
		{"empty key falls back to newest", SortOrder(""), []string{"Osaka Trip", "Kyoto Trip"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterAndSort(travels, Options{SortBy: tt.sortBy})
			assert.Equal(t, tt.expected, titles(result))
		})
	}
}

func TestFilterAndSort_StableOnTies(t *testing.T) {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	travels := []models.Travel{
		makeTravel("First", "Nara", "", models.StatusPlanning, 1000, created),
		makeTravel("Second", "Nara", "", models.StatusPlanning, 1000, created),
		makeTravel("Third", "Nara", "", models.StatusPlanning, 1000, created),
	}

	// Every sort key ties, so input order must be preserved.
	for _, sortBy := range []SortOrder{SortNewest, SortOldest, SortDestination, SortStartDate, SortBudget} {
		result := FilterAndSort(travels, Options{SortBy: sortBy})
		assert.Equal(t, []string{"First", "Second", "Third"}, titles(result), "sortBy=%s", sortBy)
	}
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	travels := sampleTravels()
	originalTitles := titles(travels)

	result := FilterAndSort(travels, Options{SortBy: SortOldest, SearchTerm: "trip"})

	// Input order and content untouched
	assert.Equal(t, originalTitles, titles(travels))
	// Output is a distinct slice
	require.NotEmpty(t, result)
	result[0].Title = "mutated"
	assert.Equal(t, originalTitles, titles(travels))
}

func TestFilterAndSort_Idempotent(t *testing.T) {
	travels := sampleTravels()
	opts := Options{SearchTerm: "trip", Status: StatusAll, SortBy: SortBudget}

	once := FilterAndSort(travels, opts)
	twice := FilterAndSort(once, opts)

	assert.Equal(t, once, twice)
}

func TestFilterAndSort_CombinedFilters(t *testing.T) {
	travels := sampleTravels()

	result := FilterAndSort(travels, Options{SearchTerm: "trip", Status: "planning", SortBy: SortBudget})

	require.Len(t, result, 1)
	assert.Equal(t, "Kyoto Trip", result[0].Title)
}

func TestFilterAndSort_EmptyInput(t *testing.T) {
	result := FilterAndSort(nil, Options{SortBy: SortNewest})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}
