package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"candidate-intake-api/internal/api/handlers"
	"candidate-intake-api/internal/api/routes"
	"candidate-intake-api/internal/models"
	"candidate-intake-api/internal/services"
	"candidate-intake-api/internal/transport/dto"
	"candidate-intake-api/internal/wizard"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockQuestionnaireHandler is a mock implementation of QuestionnaireHandlerInterface
type MockQuestionnaireHandler struct {
	mock.Mock
}

func (m *MockQuestionnaireHandler) CreateSession(c *gin.Context)       { m.Called(c) }
func (m *MockQuestionnaireHandler) GetSession(c *gin.Context)          { m.Called(c) }
func (m *MockQuestionnaireHandler) UpdateSession(c *gin.Context)       { m.Called(c) }
func (m *MockQuestionnaireHandler) NextStep(c *gin.Context)            { m.Called(c) }
func (m *MockQuestionnaireHandler) PrevStep(c *gin.Context)            { m.Called(c) }
func (m *MockQuestionnaireHandler) SelectSkill(c *gin.Context)         { m.Called(c) }
func (m *MockQuestionnaireHandler) DeselectSkill(c *gin.Context)       { m.Called(c) }
func (m *MockQuestionnaireHandler) AddInterviewSlot(c *gin.Context)    { m.Called(c) }
func (m *MockQuestionnaireHandler) RemoveInterviewSlot(c *gin.Context) { m.Called(c) }
func (m *MockQuestionnaireHandler) Submit(c *gin.Context)              { m.Called(c) }

var _ handlers.QuestionnaireHandlerInterface = (*MockQuestionnaireHandler)(nil)

// MockQuestionnaireService is a mock type for the services.QuestionnaireService interface
type MockQuestionnaireService struct {
	mock.Mock
}

func (m *MockQuestionnaireService) draftReturn(args mock.Arguments) (*wizard.Draft, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wizard.Draft), args.Error(1)
}

func (m *MockQuestionnaireService) CreateSession(ctx context.Context) (*wizard.Draft, error) {
	return m.draftReturn(m.Called(ctx))
}

func (m *MockQuestionnaireService) GetSession(ctx context.Context, sessionID string) (*wizard.Draft, error) {
	return m.draftReturn(m.Called(ctx, sessionID))
}

func (m *MockQuestionnaireService) UpdateSession(ctx context.Context, sessionID string, upd *wizard.Update) (*wizard.Draft, error) {
	return m.draftReturn(m.Called(ctx, sessionID, upd))
}

func (m *MockQuestionnaireService) Next(ctx context.Context, sessionID string) (*wizard.Draft, []wizard.FieldError, error) {
	args := m.Called(ctx, sessionID)
	var draft *wizard.Draft
	if args.Get(0) != nil {
		draft = args.Get(0).(*wizard.Draft)
	}
	var fieldErrs []wizard.FieldError
	if args.Get(1) != nil {
		fieldErrs = args.Get(1).([]wizard.FieldError)
	}
	return draft, fieldErrs, args.Error(2)
}

func (m *MockQuestionnaireService) Back(ctx context.Context, sessionID string) (*wizard.Draft, error) {
	return m.draftReturn(m.Called(ctx, sessionID))
}

func (m *MockQuestionnaireService) SelectSkill(ctx context.Context, sessionID, skill string) (*wizard.Draft, error) {
	return m.draftReturn(m.Called(ctx, sessionID, skill))
}

func (m *MockQuestionnaireService) DeselectSkill(ctx context.Context, sessionID, skill string) (*wizard.Draft, error) {
	return m.draftReturn(m.Called(ctx, sessionID, skill))
}

func (m *MockQuestionnaireService) AddInterviewSlot(ctx context.Context, sessionID, slot string) (*wizard.Draft, error) {
	return m.draftReturn(m.Called(ctx, sessionID, slot))
}

func (m *MockQuestionnaireService) RemoveInterviewSlot(ctx context.Context, sessionID, slot string) (*wizard.Draft, error) {
	return m.draftReturn(m.Called(ctx, sessionID, slot))
}

func (m *MockQuestionnaireService) Submit(ctx context.Context, sessionID string) (*models.Candidate, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

// Ensure mock implements the interface
var _ services.QuestionnaireService = (*MockQuestionnaireService)(nil)

// --- Helper Function for Setup ---

func setupTestRouterWithQuestionnaireMocks() (*gin.Engine, *MockQuestionnaireService) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockQuestionnaireService)
	validate := validator.New()
	handler := handlers.NewQuestionnaireHandler(mockService, validate)
	router := gin.New()
	routes.RegisterQuestionnaireRoutes(router.Group("/api/v1"), handler)
	return router, mockService
}

func TestRegisterQuestionnaireRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockHandler := new(MockQuestionnaireHandler)

	router := gin.New()
	testGroup := router.Group("/api/v1")

	routes.RegisterQuestionnaireRoutes(testGroup, mockHandler)

	expectedRoutes := []struct {
		Method string
		Path   string
	}{
		{http.MethodPost, "/api/v1/questionnaire/sessions"},
		{http.MethodGet, "/api/v1/questionnaire/sessions/:id"},
		{http.MethodPatch, "/api/v1/questionnaire/sessions/:id"},
		{http.MethodPost, "/api/v1/questionnaire/sessions/:id/next"},
		{http.MethodPost, "/api/v1/questionnaire/sessions/:id/back"},
		{http.MethodPost, "/api/v1/questionnaire/sessions/:id/skills"},
		{http.MethodDelete, "/api/v1/questionnaire/sessions/:id/skills"},
		{http.MethodPost, "/api/v1/questionnaire/sessions/:id/interview-slots"},
		{http.MethodDelete, "/api/v1/questionnaire/sessions/:id/interview-slots"},
		{http.MethodPost, "/api/v1/questionnaire/sessions/:id/submit"},
	}

	registeredRoutes := router.Routes()

	registeredMap := make(map[string]bool)
	for _, routeInfo := range registeredRoutes {
		registeredMap[routeInfo.Method+" "+routeInfo.Path] = true
	}

	assert.Len(t, registeredRoutes, len(expectedRoutes), "Number of registered routes should match expected")

	for _, expected := range expectedRoutes {
		assert.True(t, registeredMap[expected.Method+" "+expected.Path],
			"Expected route %s %s to be registered", expected.Method, expected.Path)
	}
}

func TestQuestionnaireHandler_CreateSession(t *testing.T) {
	router, mockService := setupTestRouterWithQuestionnaireMocks()

	t.Run("Success", func(t *testing.T) {
		draft := wizard.NewDraft(uuid.NewString())
		mockService.On("CreateSession", mock.Anything).Return(draft, nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaire/sessions", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response dto.SessionResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, draft.SessionID, response.Draft.SessionID)
		assert.Equal(t, wizard.StepPersonal, response.Draft.Step)
		assert.Empty(t, response.FieldErrors)
		mockService.AssertExpectations(t)
	})

	t.Run("Internal Server Error", func(t *testing.T) {
		mockService.On("CreateSession", mock.Anything).Return(nil, errors.New("redis down")).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaire/sessions", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Failed to create session")
		mockService.AssertExpectations(t)
	})
}

func TestQuestionnaireHandler_GetSession(t *testing.T) {
	router, mockService := setupTestRouterWithQuestionnaireMocks()

	t.Run("Success", func(t *testing.T) {
		draft := wizard.NewDraft("session-1")
		draft.FirstName = "Ana"
		mockService.On("GetSession", mock.Anything, "session-1").Return(draft, nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/api/v1/questionnaire/sessions/session-1", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.SessionResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "Ana", response.Draft.FirstName)
		mockService.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockService.On("GetSession", mock.Anything, "missing").Return(nil, services.ErrNotFound).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/api/v1/questionnaire/sessions/missing", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Session not found")
		mockService.AssertExpectations(t)
	})
}

func TestQuestionnaireHandler_UpdateSession(t *testing.T) {
	router, mockService := setupTestRouterWithQuestionnaireMocks()

	t.Run("Success", func(t *testing.T) {
		updated := wizard.NewDraft("session-1")
		updated.FirstName = "Ana"
		updated.LastName = "Reyes"
		mockService.On("UpdateSession", mock.Anything, "session-1", mock.MatchedBy(func(upd *wizard.Update) bool {
			return upd.FirstName != nil && *upd.FirstName == "Ana"
		})).Return(updated, nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, "/api/v1/questionnaire/sessions/session-1",
			bytes.NewBufferString(`{"first_name": "Ana", "last_name": "Reyes"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.SessionResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "Reyes", response.Draft.LastName)
		mockService.AssertExpectations(t)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		mockService.Calls = nil
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, "/api/v1/questionnaire/sessions/session-1",
			bytes.NewBufferString(`{"first_name": 42`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "UpdateSession", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestQuestionnaireHandler_NextStep(t *testing.T) {
	router, mockService := setupTestRouterWithQuestionnaireMocks()

	t.Run("Success - Advances", func(t *testing.T) {
		draft := wizard.NewDraft("session-1")
		draft.Step = wizard.StepVideo
		mockService.On("Next", mock.Anything, "session-1").Return(draft, nil, nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaire/sessions/session-1/next", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.SessionResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, wizard.StepVideo, response.Draft.Step)
		assert.Empty(t, response.FieldErrors)
		mockService.AssertExpectations(t)
	})

	t.Run("Validation Failure - Stays Put", func(t *testing.T) {
		draft := wizard.NewDraft("session-1")
		draft.ShowErrors = true
		fieldErrs := []wizard.FieldError{
			{Field: "first_name", Message: "First name is required"},
			{Field: "phone_number", Message: "Enter a valid 10-digit phone number"},
		}
		mockService.On("Next", mock.Anything, "session-1").Return(draft, fieldErrs, nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaire/sessions/session-1/next", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

		var response dto.SessionResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, wizard.StepPersonal, response.Draft.Step)
		assert.True(t, response.Draft.ShowErrors)
		assert.Len(t, response.FieldErrors, 2)
		assert.Equal(t, "first_name", response.FieldErrors[0].Field)
		mockService.AssertExpectations(t)
	})
}

func TestQuestionnaireHandler_SelectSkill(t *testing.T) {
	router, mockService := setupTestRouterWithQuestionnaireMocks()

	t.Run("Success", func(t *testing.T) {
		draft := wizard.NewDraft("session-1")
		draft.SelectedSkills = []string{"Wine Service"}
		mockService.On("SelectSkill", mock.Anything, "session-1", "Wine Service").Return(draft, nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaire/sessions/session-1/skills",
			bytes.NewBufferString(`{"skill": "Wine Service"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.SessionResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Wine Service"}, response.Draft.SelectedSkills)
		mockService.AssertExpectations(t)
	})

	t.Run("Unknown Skill", func(t *testing.T) {
		mockService.On("SelectSkill", mock.Anything, "session-1", "Juggling").
			Return(nil, fmt.Errorf("%w: Juggling", services.ErrUnknownSkill)).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaire/sessions/session-1/skills",
			bytes.NewBufferString(`{"skill": "Juggling"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Missing Skill Field", func(t *testing.T) {
		mockService.Calls = nil
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaire/sessions/session-1/skills",
			bytes.NewBufferString(`{}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "SelectSkill", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestQuestionnaireHandler_AddInterviewSlot(t *testing.T) {
	router, mockService := setupTestRouterWithQuestionnaireMocks()

	t.Run("Success", func(t *testing.T) {
		draft := wizard.NewDraft("session-1")
		draft.InterviewSlots = []string{"Monday at 9:15 AM"}
		mockService.On("AddInterviewSlot", mock.Anything, "session-1", "Monday at 9:15 AM").Return(draft, nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaire/sessions/session-1/interview-slots",
			bytes.NewBufferString(`{"slot": "Monday at 9:15 AM"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Rejected Slot", func(t *testing.T) {
		mockService.On("AddInterviewSlot", mock.Anything, "session-1", "Monday at 9:10 AM").
			Return(nil, fmt.Errorf("%w: %v", services.ErrValidation, wizard.ErrUnknownSlot)).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaire/sessions/session-1/interview-slots",
			bytes.NewBufferString(`{"slot": "Monday at 9:10 AM"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		mockService.AssertExpectations(t)
	})
}

func TestQuestionnaireHandler_Submit(t *testing.T) {
	router, mockService := setupTestRouterWithQuestionnaireMocks()

	t.Run("Success", func(t *testing.T) {
		candidate := &models.Candidate{ID: uuid.New(), FirstName: "Ana", LastName: "Reyes"}
		mockService.On("Submit", mock.Anything, "session-1").Return(candidate, nil).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaire/sessions/session-1/submit", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response dto.SubmissionResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, candidate.ID, response.CandidateID)
		mockService.AssertExpectations(t)
	})

	t.Run("Validation Failure", func(t *testing.T) {
		mockService.On("Submit", mock.Anything, "session-1").
			Return(nil, fmt.Errorf("%w: bio: Tell us a bit about yourself", services.ErrValidation)).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaire/sessions/session-1/submit", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Partial Write Failure", func(t *testing.T) {
		subErr := &services.SubmissionError{
			Step:      services.StepShifts,
			Completed: []string{services.StepCandidate},
			Err:       errors.New("connection reset"),
		}
		mockService.On("Submit", mock.Anything, "session-1").Return(nil, subErr).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaire/sessions/session-1/submit", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)

		var body map[string]any
		err := json.Unmarshal(recorder.Body.Bytes(), &body)
		assert.NoError(t, err)
		assert.Equal(t, "Submission failed", body["error"])
		assert.Equal(t, services.StepShifts, body["failed_step"])
		assert.Equal(t, []any{services.StepCandidate}, body["completed_steps"])
		mockService.AssertExpectations(t)
	})

	t.Run("Session Not Found", func(t *testing.T) {
		mockService.On("Submit", mock.Anything, "missing").Return(nil, services.ErrNotFound).Once()

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/questionnaire/sessions/missing/submit", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		mockService.AssertExpectations(t)
	})
}
