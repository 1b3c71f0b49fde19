package salon

import (
	"fmt"
	"strings"
	"time"

	"salonbook/models"
	"salonbook/services/availability"

	"github.com/google/uuid"
)

// ValidateBusinessHours accepts at most one record per weekday. Open days need
// open < close within the day; closed days may carry any times.
func ValidateBusinessHours(hours []models.BusinessHours) error {
	seen := map[time.Weekday]bool{}
	for i, h := range hours {
		field := fmt.Sprintf("business_hours[%d]", i)
		if h.DayOfWeek < time.Sunday || h.DayOfWeek > time.Saturday {
			return ValidationError{Field: field, Reason: "day_of_week must be between 0 and 6"}
		}
		if seen[h.DayOfWeek] {
			return ValidationError{Field: field, Reason: "duplicate entry for " + h.DayOfWeek.String()}
		}
		seen[h.DayOfWeek] = true
		if h.IsClosed {
			continue
		}
		if h.OpenTime < 0 || h.CloseTime > availability.MinutesPerDay {
			return ValidationError{Field: field, Reason: "times must fall within the day"}
		}
		if h.OpenTime >= h.CloseTime {
			return ValidationError{Field: field, Reason: "open_time must be before close_time"}
		}
	}
	return nil
}

// NormalizeServices validates services and assigns IDs to new entries.
func NormalizeServices(services []models.Service) ([]models.Service, error) {
	out := make([]models.Service, 0, len(services))
	ids := map[string]bool{}
	for i, svc := range services {
		field := fmt.Sprintf("services[%d]", i)
		svc.Name = strings.TrimSpace(svc.Name)
		if svc.Name == "" {
			return nil, ValidationError{Field: field, Reason: "name is required"}
		}
		if svc.DurationMale <= 0 || svc.DurationFemale <= 0 {
			return nil, ValidationError{Field: field, Reason: "durations must be positive"}
		}
		if svc.DurationMale > availability.MinutesPerDay || svc.DurationFemale > availability.MinutesPerDay {
			return nil, ValidationError{Field: field, Reason: "durations must fit in a day"}
		}
		if svc.PriceMale < 0 || svc.PriceFemale < 0 {
			return nil, ValidationError{Field: field, Reason: "prices cannot be negative"}
		}
		if svc.ID == "" {
			svc.ID = uuid.New().String()
		}
		if ids[svc.ID] {
			return nil, ValidationError{Field: field, Reason: "duplicate service id"}
		}
		ids[svc.ID] = true
		out = append(out, svc)
	}
	return out, nil
}
