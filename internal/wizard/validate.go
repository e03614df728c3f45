package wizard

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldError is an inline, per-field validation message surfaced when a
// guarded transition is refused.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	nonDigitRe = regexp.MustCompile(`\D`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// NormalizePhone strips all non-digit characters and reports whether exactly
// 10 digits remain. On success it returns the number formatted as
// AAA-BBB-CCCC.
func NormalizePhone(raw string) (string, bool) {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if len(digits) != 10 {
		return "", false
	}
	return fmt.Sprintf("%s-%s-%s", digits[0:3], digits[3:6], digits[6:10]), true
}

// ValidEmail reports whether the address matches the standard pattern.
// Empty addresses are handled by the caller; email is optional on step 1.
func ValidEmail(addr string) bool {
	return emailRe.MatchString(addr)
}

// ValidateStep runs the validity predicate for one step and returns the
// field errors, empty when the step may be left.
func ValidateStep(d *Draft, step int) []FieldError {
	switch step {
	case StepPersonal:
		return validatePersonal(d)
	case StepVideo:
		return validateVideo(d)
	case StepBioSkills:
		return validateBioSkills(d)
	case StepExperience:
		return validateExperience(d)
	case StepAvailability:
		return validateAvailability(d)
	default:
		return []FieldError{{Field: "step", Message: fmt.Sprintf("unknown step %d", step)}}
	}
}

func validatePersonal(d *Draft) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(d.FirstName) == "" {
		errs = append(errs, FieldError{"first_name", "First name is required"})
	}
	if strings.TrimSpace(d.LastName) == "" {
		errs = append(errs, FieldError{"last_name", "Last name is required"})
	}
	if _, ok := NormalizePhone(d.PhoneNumber); !ok {
		errs = append(errs, FieldError{"phone_number", "Phone number must contain exactly 10 digits"})
	}
	if d.Email != "" && !ValidEmail(d.Email) {
		errs = append(errs, FieldError{"email", "Email address is not valid"})
	}
	// A free-text address is insufficient: the location counts only once it
	// has been resolved through the lookup into structured fields.
	if d.LocationRoute == "" || d.LocationLocality == "" || d.LocationState == "" ||
		d.LocationPlaceID == "" || d.LocationLat == nil || d.LocationLng == nil {
		errs = append(errs, FieldError{"location", "A resolved address is required"})
	}
	if d.PositionID == nil {
		errs = append(errs, FieldError{"position_id", "A position must be selected"})
	}
	return errs
}

func validateVideo(d *Draft) []FieldError {
	if d.VideoURL == "" {
		return []FieldError{{"video_url", "An uploaded intro video is required"}}
	}
	return nil
}

func validateBioSkills(d *Draft) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(d.Bio) == "" {
		errs = append(errs, FieldError{"bio", "Bio is required"})
	} else if len(d.Bio) > MaxBioLength {
		errs = append(errs, FieldError{"bio", fmt.Sprintf("Bio must be at most %d characters", MaxBioLength)})
	}
	if len(d.SelectedSkills) == 0 {
		errs = append(errs, FieldError{"selected_skills", "Select at least one skill"})
	}
	return errs
}

func validateExperience(d *Draft) []FieldError {
	if len(d.Experiences) == 0 {
		return []FieldError{{"experiences", "The most recent experience is required"}}
	}
	// Only the first (most recent) entry is required; entries 2-3 may be
	// partially or fully empty.
	first := d.Experiences[0]
	var errs []FieldError
	if first.Role == "" {
		errs = append(errs, FieldError{"experiences.0.role", "Role is required"})
	}
	if first.Restaurant == "" {
		errs = append(errs, FieldError{"experiences.0.restaurant", "Restaurant is required"})
	}
	if first.StartMonth == "" {
		errs = append(errs, FieldError{"experiences.0.start_month", "Start month is required"})
	}
	if first.StartYear == "" {
		errs = append(errs, FieldError{"experiences.0.start_year", "Start year is required"})
	}
	return errs
}

func validateAvailability(d *Draft) []FieldError {
	var errs []FieldError
	any := false
	for _, v := range d.ShiftAvailability {
		if v {
			any = true
			break
		}
	}
	if !any {
		errs = append(errs, FieldError{"shift_availability", "Select at least one shift"})
	}
	if len(d.InterviewSlots) == 0 {
		errs = append(errs, FieldError{"interview_slots", "Choose at least one interview slot"})
	}
	return errs
}
