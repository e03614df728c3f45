package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"candidate-intake-api/internal/models"
	"candidate-intake-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CandidateRepo implements storage.CandidateRepository using PostgreSQL.
// Each method is a single INSERT; the submission saga in the service layer
// sequences them deliberately without a wrapping transaction, so a failed
// child insert leaves earlier rows persisted.
type CandidateRepo struct {
	db Querier
}

// NewCandidateRepo creates a new CandidateRepo.
func NewCandidateRepo(db *pgxpool.Pool) *CandidateRepo {
	return &CandidateRepo{db: db}
}

var _ storage.CandidateRepository = (*CandidateRepo)(nil)

// Insert writes the flattened candidate row and returns it with the
// generated id and timestamp.
func (r *CandidateRepo) Insert(ctx context.Context, c *models.Candidate) (*models.Candidate, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	skills := padStrings(c.Skills, 8)

	query := `
		INSERT INTO candidates (
			id, first_name, last_name, phone, email,
			location_route, location_locality, location_state, location_place_id,
			location_lat, location_lng, position_id,
			headshot_url, resume_url, video_url, bio, session_id,
			skill_1, skill_2, skill_3, skill_4, skill_5, skill_6, skill_7, skill_8,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, NOW())
		RETURNING id, created_at`

	row := r.db.QueryRow(ctx, query,
		c.ID, c.FirstName, c.LastName, c.Phone, nullIfEmpty(c.Email),
		c.LocationRoute, c.LocationLocality, c.LocationState, c.LocationPlaceID,
		c.LocationLat, c.LocationLng, c.PositionID,
		c.HeadshotURL, c.ResumeURL, c.VideoURL, c.Bio, c.SessionID,
		skills[0], skills[1], skills[2], skills[3],
		skills[4], skills[5], skills[6], skills[7],
	)

	created := *c
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			log.Printf("Error inserting candidate: unknown position %v: %v\n", c.PositionID, err)
			return nil, fmt.Errorf("failed to insert candidate: invalid position: %w", storage.ErrConflict)
		}
		log.Printf("Error inserting candidate: %v\n", err)
		return nil, fmt.Errorf("failed to insert candidate: %w", err)
	}

	log.Printf("Candidate created with ID: %s", created.ID)
	return &created, nil
}

// InsertShifts writes the one-per-candidate shift flag row.
func (r *CandidateRepo) InsertShifts(ctx context.Context, s *models.CandidateShifts) error {
	query := `
		INSERT INTO candidate_shifts (
			candidate_id, first_name, last_name,
			monday_lunch, monday_dinner, tuesday_lunch, tuesday_dinner,
			wednesday_lunch, wednesday_dinner, thursday_lunch, thursday_dinner,
			friday_lunch, friday_dinner, saturday_lunch, saturday_dinner,
			sunday_lunch, sunday_dinner
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.Exec(ctx, query,
		s.CandidateID, s.FirstName, s.LastName,
		s.MondayLunch, s.MondayDinner, s.TuesdayLunch, s.TuesdayDinner,
		s.WednesdayLunch, s.WednesdayDinner, s.ThursdayLunch, s.ThursdayDinner,
		s.FridayLunch, s.FridayDinner, s.SaturdayLunch, s.SaturdayDinner,
		s.SundayLunch, s.SundayDinner,
	)
	if err != nil {
		log.Printf("Error inserting shifts for candidate %s: %v\n", s.CandidateID, err)
		return fmt.Errorf("failed to insert candidate shifts: %w", err)
	}
	return nil
}

// InsertAvailability writes the interview-slot row, slots in selection order.
func (r *CandidateRepo) InsertAvailability(ctx context.Context, a *models.CandidateAvailability) error {
	slots := padStrings(a.Slots, 8)

	query := `
		INSERT INTO candidate_availability (
			candidate_id, first_name, last_name,
			interview_slot_1, interview_slot_2, interview_slot_3, interview_slot_4,
			interview_slot_5, interview_slot_6, interview_slot_7, interview_slot_8
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		a.CandidateID, a.FirstName, a.LastName,
		slots[0], slots[1], slots[2], slots[3],
		slots[4], slots[5], slots[6], slots[7],
	)
	if err != nil {
		log.Printf("Error inserting availability for candidate %s: %v\n", a.CandidateID, err)
		return fmt.Errorf("failed to insert candidate availability: %w", err)
	}
	return nil
}

// InsertExperience writes the up-to-3 experience column sets. Entry slots
// that are nil leave their whole column family NULL.
func (r *CandidateRepo) InsertExperience(ctx context.Context, e *models.CandidateExperience) error {
	args := []any{e.CandidateID, e.FirstName, e.LastName}
	for _, entry := range e.Entries {
		if entry == nil {
			entry = &models.ExperienceRecord{}
		}
		args = append(args,
			entry.Role, entry.StartMonth, entry.StartYear,
			entry.EndMonth, entry.EndYear, entry.Restaurant,
			entry.RestaurantPlaceID, entry.RestaurantBusinessName, entry.RestaurantAddress,
			entry.RestaurantPriceLevel, entry.RestaurantTypes,
			entry.RestaurantRating, entry.RestaurantRatingCount,
		)
	}

	query := `
		INSERT INTO candidate_experience (
			candidate_id, first_name, last_name,
			experience_1_role, experience_1_start_month, experience_1_start_year,
			experience_1_end_month, experience_1_end_year, experience_1_restaurant,
			restaurant_1_place_id, restaurant_1_business_name, restaurant_1_address,
			restaurant_1_price_level, restaurant_1_types,
			restaurant_1_rating, restaurant_1_user_ratings_total,
			experience_2_role, experience_2_start_month, experience_2_start_year,
			experience_2_end_month, experience_2_end_year, experience_2_restaurant,
			restaurant_2_place_id, restaurant_2_business_name, restaurant_2_address,
			restaurant_2_price_level, restaurant_2_types,
			restaurant_2_rating, restaurant_2_user_ratings_total,
			experience_3_role, experience_3_start_month, experience_3_start_year,
			experience_3_end_month, experience_3_end_year, experience_3_restaurant,
			restaurant_3_place_id, restaurant_3_business_name, restaurant_3_address,
			restaurant_3_price_level, restaurant_3_types,
			restaurant_3_rating, restaurant_3_user_ratings_total
		)
		VALUES ($1, $2, $3,
			$4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29,
			$30, $31, $32, $33, $34, $35, $36, $37, $38, $39, $40, $41, $42)`

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		log.Printf("Error inserting experience for candidate %s: %v\n", e.CandidateID, err)
		return fmt.Errorf("failed to insert candidate experience: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
