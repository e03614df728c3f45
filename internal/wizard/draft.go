// Package wizard holds the in-memory questionnaire draft and the bounded
// step cursor over the five intake pages. A Draft is pure state: persistence
// lives in the storage layer and the multi-table submission in the services
// layer.
package wizard

import "time"

// Number of ordered steps in the questionnaire.
const (
	StepPersonal     = 1
	StepVideo        = 2
	StepBioSkills    = 3
	StepExperience   = 4
	StepAvailability = 5

	TotalSteps = 5
)

const (
	MaxSkills          = 8
	MaxInterviewSlots  = 8
	MaxExperienceCount = 3
	MaxBioLength       = 250
)

// Experience is one draft experience entry. End may be left open ("Present"
// is a valid EndYear sentinel carried as the literal string by the client,
// persisted as a NULL end year).
type Experience struct {
	Role       string `json:"role"`
	StartMonth string `json:"start_month"`
	StartYear  string `json:"start_year"`
	EndMonth   string `json:"end_month"`
	EndYear    string `json:"end_year"`
	Restaurant string `json:"restaurant"`

	RestaurantPlaceID     string   `json:"restaurant_place_id,omitempty"`
	RestaurantName        string   `json:"restaurant_name,omitempty"`
	RestaurantAddress     string   `json:"restaurant_address,omitempty"`
	RestaurantPriceLevel  *int     `json:"restaurant_price_level,omitempty"`
	RestaurantTypes       []string `json:"restaurant_types,omitempty"`
	RestaurantRating      *float64 `json:"restaurant_rating,omitempty"`
	RestaurantRatingCount *int     `json:"restaurant_user_ratings_total,omitempty"`
}

// Draft is the not-yet-persisted candidate record assembled across the five
// steps, plus the step cursor and the error-display flag.
type Draft struct {
	SessionID  string `json:"session_id"`
	Step       int    `json:"step"`
	ShowErrors bool   `json:"show_errors"`

	// Step 1: personal info.
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	PhoneNumber      string   `json:"phone_number"`
	Email            string   `json:"email"`
	LocationRoute    string   `json:"location_route"`
	LocationLocality string   `json:"location_locality"`
	LocationState    string   `json:"location_state"`
	LocationPlaceID  string   `json:"location_place_id"`
	LocationLat      *float64 `json:"location_lat"`
	LocationLng      *float64 `json:"location_lng"`
	PositionID       *int64   `json:"position_id"`
	HeadshotURL      string   `json:"headshot_url"`

	// Step 2: video intro.
	VideoURL string `json:"video_url"`

	// Step 3: bio and skills.
	Bio            string   `json:"bio"`
	SelectedSkills []string `json:"selected_skills"`

	// Step 4: experience.
	ResumeURL   string       `json:"resume_url"`
	Experiences []Experience `json:"experiences"`

	// Step 5: availability.
	ShiftAvailability map[string]bool `json:"shift_availability"`
	InterviewSlots    []string        `json:"interview_slots"`

	CreatedAt time.Time `json:"created_at"`
}

// Update is a shallow-merge patch. Nil fields are left untouched; non-nil
// fields replace the draft's value wholesale (including the experiences
// slice and the shift map, mirroring how each page replaces its slice of the
// draft). Merging performs no validation; validation is deferred to Next and
// Submit.
type Update struct {
	FirstName        *string  `json:"first_name"`
	LastName         *string  `json:"last_name"`
	PhoneNumber      *string  `json:"phone_number"`
	Email            *string  `json:"email"`
	LocationRoute    *string  `json:"location_route"`
	LocationLocality *string  `json:"location_locality"`
	LocationState    *string  `json:"location_state"`
	LocationPlaceID  *string  `json:"location_place_id"`
	LocationLat      *float64 `json:"location_lat"`
	LocationLng      *float64 `json:"location_lng"`
	PositionID       *int64   `json:"position_id"`
	HeadshotURL      *string  `json:"headshot_url"`
	VideoURL         *string  `json:"video_url"`
	Bio              *string  `json:"bio"`
	ResumeURL        *string  `json:"resume_url"`

	Experiences       []Experience    `json:"experiences"`
	ShiftAvailability map[string]bool `json:"shift_availability"`
}

// NewDraft returns a step-1 draft with the three empty experience entries
// the experience page renders.
func NewDraft(sessionID string) *Draft {
	return &Draft{
		SessionID:         sessionID,
		Step:              StepPersonal,
		Experiences:       make([]Experience, MaxExperienceCount),
		SelectedSkills:    []string{},
		ShiftAvailability: map[string]bool{},
		InterviewSlots:    []string{},
		CreatedAt:         time.Now().UTC(),
	}
}

// Apply shallow-merges the update into the draft. It always succeeds.
func (d *Draft) Apply(u *Update) {
	if u == nil {
		return
	}
	if u.FirstName != nil {
		d.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		d.LastName = *u.LastName
	}
	if u.PhoneNumber != nil {
		d.PhoneNumber = *u.PhoneNumber
	}
	if u.Email != nil {
		d.Email = *u.Email
	}
	if u.LocationRoute != nil {
		d.LocationRoute = *u.LocationRoute
	}
	if u.LocationLocality != nil {
		d.LocationLocality = *u.LocationLocality
	}
	if u.LocationState != nil {
		d.LocationState = *u.LocationState
	}
	if u.LocationPlaceID != nil {
		d.LocationPlaceID = *u.LocationPlaceID
	}
	if u.LocationLat != nil {
		d.LocationLat = u.LocationLat
	}
	if u.LocationLng != nil {
		d.LocationLng = u.LocationLng
	}
	if u.PositionID != nil {
		d.PositionID = u.PositionID
	}
	if u.HeadshotURL != nil {
		d.HeadshotURL = *u.HeadshotURL
	}
	if u.VideoURL != nil {
		d.VideoURL = *u.VideoURL
	}
	if u.Bio != nil {
		d.Bio = *u.Bio
	}
	if u.ResumeURL != nil {
		d.ResumeURL = *u.ResumeURL
	}
	if u.Experiences != nil {
		exps := make([]Experience, MaxExperienceCount)
		copy(exps, u.Experiences)
		d.Experiences = exps
	}
	if u.ShiftAvailability != nil {
		d.ShiftAvailability = u.ShiftAvailability
	}
}

// Next advances the cursor by one step if the current step validates.
// On failure it flips ShowErrors and returns the field errors; the cursor
// does not move. Steps cannot be skipped forward.
func (d *Draft) Next() []FieldError {
	errs := ValidateStep(d, d.Step)
	if len(errs) > 0 {
		d.ShowErrors = true
		return errs
	}
	d.ShowErrors = false
	if d.Step < TotalSteps {
		d.Step++
	}
	return nil
}

// Back moves the cursor back one step without re-validating. It is a no-op
// on the first step.
func (d *Draft) Back() {
	if d.Step > StepPersonal {
		d.Step--
	}
}

// SelectSkill adds a skill name to the selection. Already-selected names and
// selections beyond the cap are ignored, leaving the set unchanged.
func (d *Draft) SelectSkill(name string) {
	for _, s := range d.SelectedSkills {
		if s == name {
			return
		}
	}
	if len(d.SelectedSkills) >= MaxSkills {
		return
	}
	d.SelectedSkills = append(d.SelectedSkills, name)
}

// DeselectSkill removes a skill name; unknown names are ignored.
func (d *Draft) DeselectSkill(name string) {
	for i, s := range d.SelectedSkills {
		if s == name {
			d.SelectedSkills = append(d.SelectedSkills[:i], d.SelectedSkills[i+1:]...)
			return
		}
	}
}

// HasExperience reports whether any entry carries a role or restaurant,
// which is the condition for writing a candidate_experience row.
func (d *Draft) HasExperience() bool {
	for _, exp := range d.Experiences {
		if exp.Role != "" || exp.Restaurant != "" {
			return true
		}
	}
	return false
}
