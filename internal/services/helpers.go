package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"candidate-intake-api/internal/models"
	"candidate-intake-api/internal/storage"
	"candidate-intake-api/internal/wizard"
)

// MapRepoError maps storage errors to service errors
func MapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

func ptrStr(s string) *string { return &s }

// strOrNil keeps empty optional form fields as NULL columns.
func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// yearOrNil parses a four-digit year field. "Present" (the open-ended end
// year the form offers) and blanks map to NULL.
func yearOrNil(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "Present") {
		return nil
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &year
}

// mapDraftExperience converts one draft entry into its persisted column set.
// Entries with neither role nor restaurant map to nil (the whole column
// family stays NULL).
func mapDraftExperience(exp wizard.Experience) *models.ExperienceRecord {
	if exp.Role == "" && exp.Restaurant == "" {
		return nil
	}
	rec := &models.ExperienceRecord{
		Role:       strOrNil(exp.Role),
		StartMonth: strOrNil(exp.StartMonth),
		StartYear:  yearOrNil(exp.StartYear),
		EndMonth:   strOrNil(exp.EndMonth),
		EndYear:    yearOrNil(exp.EndYear),
		Restaurant: strOrNil(exp.Restaurant),
	}
	if exp.RestaurantPlaceID != "" {
		rec.RestaurantPlaceID = ptrStr(exp.RestaurantPlaceID)
		rec.RestaurantBusinessName = strOrNil(exp.RestaurantName)
		rec.RestaurantAddress = strOrNil(exp.RestaurantAddress)
		rec.RestaurantPriceLevel = exp.RestaurantPriceLevel
		rec.RestaurantTypes = exp.RestaurantTypes
		rec.RestaurantRating = exp.RestaurantRating
		rec.RestaurantRatingCount = exp.RestaurantRatingCount
	}
	return rec
}

// mapDraftShifts translates the draft's "<day>-<meal>" flag map into the
// explicit shift columns. Unknown keys are ignored.
func mapDraftShifts(flags map[string]bool) models.CandidateShifts {
	var shifts models.CandidateShifts
	set := func(key string, dst *bool) {
		if flags[key] {
			*dst = true
		}
	}
	set("monday-lunch", &shifts.MondayLunch)
	set("monday-dinner", &shifts.MondayDinner)
	set("tuesday-lunch", &shifts.TuesdayLunch)
	set("tuesday-dinner", &shifts.TuesdayDinner)
	set("wednesday-lunch", &shifts.WednesdayLunch)
	set("wednesday-dinner", &shifts.WednesdayDinner)
	set("thursday-lunch", &shifts.ThursdayLunch)
	set("thursday-dinner", &shifts.ThursdayDinner)
	set("friday-lunch", &shifts.FridayLunch)
	set("friday-dinner", &shifts.FridayDinner)
	set("saturday-lunch", &shifts.SaturdayLunch)
	set("saturday-dinner", &shifts.SaturdayDinner)
	set("sunday-lunch", &shifts.SundayLunch)
	set("sunday-dinner", &shifts.SundayDinner)
	return shifts
}
