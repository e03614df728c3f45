package models

import (
	"time"

	"github.com/google/uuid"
)

// Position is a reference row identifying a job opening the questionnaire
// can be submitted against. Only relative display_order matters; values are
// unique but not necessarily contiguous.
type Position struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// SkillCategory groups skills for presentation on the bio/skills step.
type SkillCategory struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Skill belongs to exactly one SkillCategory. Skills have no display order;
// they are always listed sorted by name.
type Skill struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	CategoryID int64  `json:"category_id" db:"category_id"`
	// CategoryName is populated on reads that join skill_categories.
	CategoryName string    `json:"category_name,omitempty" db:"category_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Candidate is the flattened record written at final questionnaire submission.
// Skills holds up to 8 names in selection order, persisted as the skill_1..8
// columns. SessionID correlates assets uploaded before the row existed.
type Candidate struct {
	ID               uuid.UUID `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	LocationRoute    string    `json:"location_route"`
	LocationLocality string    `json:"location_locality"`
	LocationState    string    `json:"location_state"`
	LocationPlaceID  string    `json:"location_place_id"`
	LocationLat      *float64  `json:"location_lat"`
	LocationLng      *float64  `json:"location_lng"`
	PositionID       *int64    `json:"position_id"`
	HeadshotURL      *string   `json:"headshot_url"`
	ResumeURL        *string   `json:"resume_url"`
	VideoURL         *string   `json:"video_url"`
	Bio              string    `json:"bio"`
	SessionID        string    `json:"session_id"`
	Skills           []string  `json:"skills"`
	CreatedAt        time.Time `json:"created_at"`
}

// CandidateShifts carries the 14 lunch/dinner weekday flags. One row per
// candidate; flags not chosen in the wizard default to false.
type CandidateShifts struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`

	MondayLunch     bool `json:"monday_lunch"`
	MondayDinner    bool `json:"monday_dinner"`
	TuesdayLunch    bool `json:"tuesday_lunch"`
	TuesdayDinner   bool `json:"tuesday_dinner"`
	WednesdayLunch  bool `json:"wednesday_lunch"`
	WednesdayDinner bool `json:"wednesday_dinner"`
	ThursdayLunch   bool `json:"thursday_lunch"`
	ThursdayDinner  bool `json:"thursday_dinner"`
	FridayLunch     bool `json:"friday_lunch"`
	FridayDinner    bool `json:"friday_dinner"`
	SaturdayLunch   bool `json:"saturday_lunch"`
	SaturdayDinner  bool `json:"saturday_dinner"`
	SundayLunch     bool `json:"sunday_lunch"`
	SundayDinner    bool `json:"sunday_dinner"`
}

// CandidateAvailability holds up to 8 interview slots of the form
// "<Day> at <time>", persisted as interview_slot_1..8 in selection order.
type CandidateAvailability struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Slots       []string  `json:"slots"`
}

// ExperienceRecord is one of the up-to-3 experience column sets. The
// restaurant_* sub-fields are set only when a place lookup was resolved for
// the entry.
type ExperienceRecord struct {
	Role       *string `json:"role"`
	StartMonth *string `json:"start_month"`
	StartYear  *int    `json:"start_year"`
	EndMonth   *string `json:"end_month"`
	EndYear    *int    `json:"end_year"`
	Restaurant *string `json:"restaurant"`

	RestaurantPlaceID      *string  `json:"restaurant_place_id"`
	RestaurantBusinessName *string  `json:"restaurant_business_name"`
	RestaurantAddress      *string  `json:"restaurant_address"`
	RestaurantPriceLevel   *int     `json:"restaurant_price_level"`
	RestaurantTypes        []string `json:"restaurant_types"`
	RestaurantRating       *float64 `json:"restaurant_rating"`
	RestaurantRatingCount  *int     `json:"restaurant_user_ratings_total"`
}

// CandidateExperience is one row per candidate with up to 3 entries. An
// entry slot is nil when neither role nor restaurant was supplied.
type CandidateExperience struct {
	CandidateID uuid.UUID            `json:"candidate_id"`
	FirstName   string               `json:"first_name"`
	LastName    string               `json:"last_name"`
	Entries     [3]*ExperienceRecord `json:"entries"`
}
