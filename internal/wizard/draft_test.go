package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func i64Ptr(i int64) *int64 { return &i }

func validPersonalDraft() *Draft {
	d := NewDraft("session-1")
	d.FirstName = "Ana"
	d.LastName = "Silva"
	d.PhoneNumber = "(555) 123-4567"
	d.Email = "ana@example.com"
	d.LocationRoute = "500 Congress Ave"
	d.LocationLocality = "Austin"
	d.LocationState = "TX"
	d.LocationPlaceID = "place-123"
	d.LocationLat = f64Ptr(30.26)
	d.LocationLng = f64Ptr(-97.74)
	d.PositionID = i64Ptr(2)
	return d
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"formatted input", "(555) 123-4567", "555-123-4567", true},
		{"bare digits", "5551234567", "555-123-4567", true},
		{"dots and spaces", "555.123 4567", "555-123-4567", true},
		{"nine digits", "555-123-456", "", false},
		{"eleven digits", "15551234567", "", false},
		{"empty", "", "", false},
		{"letters only", "call me", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePhone(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("ana@example.com"))
	assert.True(t, ValidEmail("a.b+c@sub.domain.io"))
	assert.False(t, ValidEmail("ana@example"))
	assert.False(t, ValidEmail("ana example@x.com"))
	assert.False(t, ValidEmail("@example.com"))
	assert.False(t, ValidEmail(""))
}

func TestNewDraft_StartsOnFirstStep(t *testing.T) {
	d := NewDraft("abc")

	assert.Equal(t, "abc", d.SessionID)
	assert.Equal(t, StepPersonal, d.Step)
	assert.False(t, d.ShowErrors)
	assert.Len(t, d.Experiences, MaxExperienceCount)
	assert.Empty(t, d.SelectedSkills)
	assert.Empty(t, d.InterviewSlots)
}

func TestDraft_Apply_MergesOnlySetFields(t *testing.T) {
	d := NewDraft("abc")
	d.FirstName = "Ana"
	d.Bio = "original"

	d.Apply(&Update{
		LastName: strPtr("Silva"),
		Bio:      strPtr("updated"),
	})

	assert.Equal(t, "Ana", d.FirstName, "untouched field keeps its value")
	assert.Equal(t, "Silva", d.LastName)
	assert.Equal(t, "updated", d.Bio)
}

func TestDraft_Apply_ExperiencesReplaceWholesale(t *testing.T) {
	d := NewDraft("abc")
	d.Experiences[0].Role = "Server"

	d.Apply(&Update{Experiences: []Experience{{Role: "Host", Restaurant: "Canteen"}}})

	require.Len(t, d.Experiences, MaxExperienceCount, "entry count stays fixed")
	assert.Equal(t, "Host", d.Experiences[0].Role)
	assert.Empty(t, d.Experiences[1].Role, "old entries do not survive a replace")
}

func TestDraft_Next_AdvancesWhenValid(t *testing.T) {
	d := validPersonalDraft()

	errs := d.Next()

	assert.Empty(t, errs)
	assert.Equal(t, StepVideo, d.Step)
	assert.False(t, d.ShowErrors)
}

func TestDraft_Next_StaysPutOnValidationFailure(t *testing.T) {
	d := NewDraft("abc") // everything blank

	errs := d.Next()

	assert.NotEmpty(t, errs)
	assert.Equal(t, StepPersonal, d.Step)
	assert.True(t, d.ShowErrors)
}

func TestDraft_Next_CapsAtLastStep(t *testing.T) {
	d := validPersonalDraft()
	d.Step = StepAvailability
	d.ShiftAvailability["monday-lunch"] = true
	d.InterviewSlots = []string{"Monday at 9:00 AM"}

	errs := d.Next()

	assert.Empty(t, errs)
	assert.Equal(t, StepAvailability, d.Step, "cursor never passes the last step")
}

func TestDraft_Back(t *testing.T) {
	d := NewDraft("abc")
	d.Step = StepBioSkills

	d.Back()
	assert.Equal(t, StepVideo, d.Step)

	d.Step = StepPersonal
	d.Back()
	assert.Equal(t, StepPersonal, d.Step, "first step is a floor")
}

func TestDraft_SelectSkill_CapAndIdempotency(t *testing.T) {
	d := NewDraft("abc")
	for i := 0; i < MaxSkills; i++ {
		d.SelectSkill(string(rune('a' + i)))
	}
	require.Len(t, d.SelectedSkills, MaxSkills)

	d.SelectSkill("one-too-many")
	assert.Len(t, d.SelectedSkills, MaxSkills, "ninth selection is ignored")

	d.SelectSkill("a")
	assert.Len(t, d.SelectedSkills, MaxSkills, "re-selecting is a no-op")
}

func TestDraft_DeselectSkill(t *testing.T) {
	d := NewDraft("abc")
	d.SelectSkill("Wine Service")
	d.SelectSkill("POS Systems")

	d.DeselectSkill("Wine Service")
	assert.Equal(t, []string{"POS Systems"}, d.SelectedSkills)

	d.DeselectSkill("never selected")
	assert.Equal(t, []string{"POS Systems"}, d.SelectedSkills)
}

func TestValidateStep_BioLength(t *testing.T) {
	d := NewDraft("abc")
	long := make([]byte, MaxBioLength+1)
	for i := range long {
		long[i] = 'x'
	}
	d.Bio = string(long)

	errs := ValidateStep(d, StepBioSkills)

	require.NotEmpty(t, errs)
	assert.Equal(t, "bio", errs[0].Field)
}

func TestValidateStep_ExperienceRequiresFirstEntry(t *testing.T) {
	d := NewDraft("abc")

	errs := ValidateStep(d, StepExperience)
	assert.NotEmpty(t, errs, "first entry must be filled in")

	d.Experiences[0] = Experience{
		Role:       "Server",
		Restaurant: "The Grove",
		StartMonth: "June",
		StartYear:  "2021",
	}
	errs = ValidateStep(d, StepExperience)
	assert.Empty(t, errs)
}

func TestValidateStep_AvailabilityNeedsShiftAndSlot(t *testing.T) {
	d := NewDraft("abc")

	errs := ValidateStep(d, StepAvailability)
	assert.NotEmpty(t, errs)

	d.ShiftAvailability["friday-dinner"] = true
	errs = ValidateStep(d, StepAvailability)
	assert.NotEmpty(t, errs, "still missing an interview slot")

	d.InterviewSlots = []string{"Friday at 2:00 PM"}
	errs = ValidateStep(d, StepAvailability)
	assert.Empty(t, errs)
}

func TestHasExperience(t *testing.T) {
	d := NewDraft("abc")
	assert.False(t, d.HasExperience())

	d.Experiences[2].Restaurant = "Corner Bistro"
	assert.True(t, d.HasExperience())
}
