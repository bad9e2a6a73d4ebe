package query

import (
	"time"

	"travel-planner/internal/models"
)

// Statistics is the aggregate view over a user's travels.
type Statistics struct {
	TotalTravels        int                         `json:"totalTravels" example:"4"`
	TotalBudget         float64                     `json:"totalBudget" example:"350000"`
	AverageBudget       float64                     `json:"averageBudget" example:"87500"`
	UpcomingTravels     int                         `json:"upcomingTravels" example:"2"`
	StatusCounts        map[models.TravelStatus]int `json:"statusCounts"`
	TotalActivities     int                         `json:"totalActivities" example:"12"`
	TotalAccommodations int                         `json:"totalAccommodations" example:"5"`
}

// ComputeStatistics derives aggregate counts from an already-loaded travel
// list. A travel counts as upcoming when its start date is after now and it
// is not cancelled. Average budget is 0 for an empty list. Every status
// appears in StatusCounts even when its count is zero.
func ComputeStatistics(travels []models.Travel, now time.Time) Statistics {
	stats := Statistics{
		StatusCounts: map[models.TravelStatus]int{
			models.StatusPlanning:  0,
			models.StatusConfirmed: 0,
			models.StatusCompleted: 0,
			models.StatusCancelled: 0,
		},
	}

	for _, travel := range travels {
		stats.TotalTravels++
		stats.TotalBudget += travel.Budget
		stats.StatusCounts[travel.Status]++
		stats.TotalActivities += len(travel.Activities)
		stats.TotalAccommodations += len(travel.Accommodations)

		if travel.StartDate.After(now) && travel.Status != models.StatusCancelled {
			stats.UpcomingTravels++
		}
	}

	if stats.TotalTravels > 0 {
		stats.AverageBudget = stats.TotalBudget / float64(stats.TotalTravels)
	}

	return stats
}
