package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"candidate-intake-api/internal/models"
	"candidate-intake-api/internal/storage"
	"candidate-intake-api/internal/wizard"

	"github.com/google/uuid"
)

// Submission step names, in execution order.
const (
	StepCandidate    = "candidate"
	StepShifts       = "shifts"
	StepAvailability = "availability"
	StepExperience   = "experience"
)

// SubmissionError reports a partial submission. The inserts run as a
// sequence without rollback, so Completed names the rows that exist despite
// the failure and Step names the insert that broke the chain.
type SubmissionError struct {
	Step      string
	Completed []string
	Err       error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed at %s step (completed: %v): %v", e.Step, e.Completed, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// questionnaireService implements the QuestionnaireService interface.
type questionnaireService struct {
	drafts     storage.DraftStore
	candidates storage.CandidateRepository
	skills     storage.SkillRepository
}

// NewQuestionnaireService creates a new questionnaire service instance.
func NewQuestionnaireService(drafts storage.DraftStore, candidates storage.CandidateRepository, skills storage.SkillRepository) QuestionnaireService {
	return &questionnaireService{drafts: drafts, candidates: candidates, skills: skills}
}

// CreateSession opens a fresh draft under a new session id.
func (s *questionnaireService) CreateSession(ctx context.Context) (*wizard.Draft, error) {
	draft := wizard.NewDraft(uuid.NewString())
	if err := s.drafts.Create(ctx, draft); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: %s", ErrSessionExists, draft.SessionID)
		}
		return nil, MapRepoError(err, "creating session")
	}
	return draft, nil
}

func (s *questionnaireService) GetSession(ctx context.Context, sessionID string) (*wizard.Draft, error) {
	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, MapRepoError(err, "loading session")
	}
	return draft, nil
}

// UpdateSession merges a partial update into the draft. Merging never
// validates; invalid values surface on the next step advance or at submit.
func (s *questionnaireService) UpdateSession(ctx context.Context, sessionID string, upd *wizard.Update) (*wizard.Draft, error) {
	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, MapRepoError(err, "loading session")
	}
	draft.Apply(upd)
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, MapRepoError(err, "saving session")
	}
	return draft, nil
}

// Next validates the current step and advances the cursor. Field errors are
// returned alongside the unchanged draft; they are page feedback, not a
// failure of the operation.
func (s *questionnaireService) Next(ctx context.Context, sessionID string) (*wizard.Draft, []wizard.FieldError, error) {
	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, MapRepoError(err, "loading session")
	}
	fieldErrs := draft.Next()
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, nil, MapRepoError(err, "saving session")
	}
	return draft, fieldErrs, nil
}

func (s *questionnaireService) Back(ctx context.Context, sessionID string) (*wizard.Draft, error) {
	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, MapRepoError(err, "loading session")
	}
	draft.Back()
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, MapRepoError(err, "saving session")
	}
	return draft, nil
}

// SelectSkill adds a catalog skill to the draft selection. Names not present
// in the skills table are rejected.
func (s *questionnaireService) SelectSkill(ctx context.Context, sessionID, skill string) (*wizard.Draft, error) {
	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, MapRepoError(err, "loading session")
	}
	known, err := s.skills.ExistingNames(ctx, []string{skill})
	if err != nil {
		return nil, MapRepoError(err, "checking skill")
	}
	if len(known) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSkill, skill)
	}
	draft.SelectSkill(skill)
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, MapRepoError(err, "saving session")
	}
	return draft, nil
}

func (s *questionnaireService) DeselectSkill(ctx context.Context, sessionID, skill string) (*wizard.Draft, error) {
	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, MapRepoError(err, "loading session")
	}
	draft.DeselectSkill(skill)
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, MapRepoError(err, "saving session")
	}
	return draft, nil
}

// AddInterviewSlot reserves a slot. Grid, adjacency, and cap violations come
// back as ErrValidation with the specific cause wrapped in; re-adding an
// already-selected slot saves the draft unchanged.
func (s *questionnaireService) AddInterviewSlot(ctx context.Context, sessionID, slot string) (*wizard.Draft, error) {
	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, MapRepoError(err, "loading session")
	}
	if err := draft.AddInterviewSlot(slot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, MapRepoError(err, "saving session")
	}
	return draft, nil
}

func (s *questionnaireService) RemoveInterviewSlot(ctx context.Context, sessionID, slot string) (*wizard.Draft, error) {
	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, MapRepoError(err, "loading session")
	}
	draft.RemoveInterviewSlot(slot)
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, MapRepoError(err, "saving session")
	}
	return draft, nil
}

// Submit re-runs the availability step's validity (the step the submit
// action lives on; earlier steps were validated when they were advanced
// past), verifies the skill selection against the catalog, then runs the
// four inserts in order: candidate, shifts, availability, experience. The
// shifts row always exists; availability is skipped when no slots were
// picked and experience when no entry carries a role or restaurant. A
// failure aborts the remaining inserts and reports what already landed via
// SubmissionError. The draft is deleted only after all inserts succeed, so
// a failed submission can be retried.
func (s *questionnaireService) Submit(ctx context.Context, sessionID string) (*models.Candidate, error) {
	draft, err := s.drafts.Get(ctx, sessionID)
	if err != nil {
		return nil, MapRepoError(err, "loading session")
	}

	if fieldErrs := wizard.ValidateStep(draft, wizard.StepAvailability); len(fieldErrs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, fieldErrs[0].Message)
	}

	if len(draft.SelectedSkills) > 0 {
		known, err := s.skills.ExistingNames(ctx, draft.SelectedSkills)
		if err != nil {
			return nil, MapRepoError(err, "checking skills")
		}
		if len(known) != len(draft.SelectedSkills) {
			return nil, fmt.Errorf("%w: selection includes skills missing from the catalog", ErrUnknownSkill)
		}
	}

	phone := draft.PhoneNumber
	if normalized, ok := wizard.NormalizePhone(draft.PhoneNumber); ok {
		phone = normalized
	}

	candidate := &models.Candidate{
		FirstName:        draft.FirstName,
		LastName:         draft.LastName,
		Phone:            phone,
		Email:            draft.Email,
		LocationRoute:    draft.LocationRoute,
		LocationLocality: draft.LocationLocality,
		LocationState:    draft.LocationState,
		LocationPlaceID:  draft.LocationPlaceID,
		LocationLat:      draft.LocationLat,
		LocationLng:      draft.LocationLng,
		PositionID:       draft.PositionID,
		HeadshotURL:      strOrNil(draft.HeadshotURL),
		ResumeURL:        strOrNil(draft.ResumeURL),
		VideoURL:         strOrNil(draft.VideoURL),
		Bio:              draft.Bio,
		SessionID:        draft.SessionID,
		Skills:           draft.SelectedSkills,
	}

	completed := []string{}
	inserted, err := s.candidates.Insert(ctx, candidate)
	if err != nil {
		return nil, &SubmissionError{Step: StepCandidate, Completed: completed, Err: err}
	}
	completed = append(completed, StepCandidate)

	shifts := mapDraftShifts(draft.ShiftAvailability)
	shifts.CandidateID = inserted.ID
	shifts.FirstName = inserted.FirstName
	shifts.LastName = inserted.LastName
	if err := s.candidates.InsertShifts(ctx, &shifts); err != nil {
		return nil, &SubmissionError{Step: StepShifts, Completed: completed, Err: err}
	}
	completed = append(completed, StepShifts)

	if len(draft.InterviewSlots) > 0 {
		availability := &models.CandidateAvailability{
			CandidateID: inserted.ID,
			FirstName:   inserted.FirstName,
			LastName:    inserted.LastName,
			Slots:       draft.InterviewSlots,
		}
		if err := s.candidates.InsertAvailability(ctx, availability); err != nil {
			return nil, &SubmissionError{Step: StepAvailability, Completed: completed, Err: err}
		}
		completed = append(completed, StepAvailability)
	}

	if draft.HasExperience() {
		experience := &models.CandidateExperience{
			CandidateID: inserted.ID,
			FirstName:   inserted.FirstName,
			LastName:    inserted.LastName,
		}
		for i := 0; i < wizard.MaxExperienceCount && i < len(draft.Experiences); i++ {
			experience.Entries[i] = mapDraftExperience(draft.Experiences[i])
		}
		if err := s.candidates.InsertExperience(ctx, experience); err != nil {
			return nil, &SubmissionError{Step: StepExperience, Completed: completed, Err: err}
		}
	}

	if err := s.drafts.Delete(ctx, sessionID); err != nil {
		// The submission landed; a stale draft only lingers until its TTL.
		log.Printf("Questionnaire: failed to delete draft %s after submit: %v", sessionID, err)
	}
	return inserted, nil
}
