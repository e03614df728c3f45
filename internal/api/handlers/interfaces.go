// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// PositionHandlerInterface defines the methods needed by the position routes.
type PositionHandlerInterface interface {
	ListPositions(c *gin.Context)
	CreatePosition(c *gin.Context)
	RenamePosition(c *gin.Context)
	DeletePosition(c *gin.Context)
	MovePositionUp(c *gin.Context)
	MovePositionDown(c *gin.Context)
}

// SkillCategoryHandlerInterface defines the methods needed by the skill category routes.
type SkillCategoryHandlerInterface interface {
	ListSkillCategories(c *gin.Context)
	CreateSkillCategory(c *gin.Context)
	RenameSkillCategory(c *gin.Context)
	DeleteSkillCategory(c *gin.Context)
	MoveSkillCategoryUp(c *gin.Context)
	MoveSkillCategoryDown(c *gin.Context)
}

// SkillHandlerInterface defines the methods needed by the skill routes.
type SkillHandlerInterface interface {
	ListSkills(c *gin.Context)
	CreateSkill(c *gin.Context)
	RenameSkill(c *gin.Context)
	DeleteSkill(c *gin.Context)
}

// QuestionnaireHandlerInterface defines the methods needed by the session routes.
type QuestionnaireHandlerInterface interface {
	CreateSession(c *gin.Context)
	GetSession(c *gin.Context)
	UpdateSession(c *gin.Context)
	NextStep(c *gin.Context)
	PrevStep(c *gin.Context)
	SelectSkill(c *gin.Context)
	DeselectSkill(c *gin.Context)
	AddInterviewSlot(c *gin.Context)
	RemoveInterviewSlot(c *gin.Context)
	Submit(c *gin.Context)
}

// PlacesHandlerInterface defines the methods needed by the places proxy routes.
type PlacesHandlerInterface interface {
	SuggestLocations(c *gin.Context)
	ResolveLocation(c *gin.Context)
	SuggestBusinesses(c *gin.Context)
	ResolveBusiness(c *gin.Context)
}

// UploadHandlerInterface defines the methods needed by the upload routes.
type UploadHandlerInterface interface {
	UploadHeadshot(c *gin.Context)
	UploadResume(c *gin.Context)
	UploadVideo(c *gin.Context)
	RemoveHeadshot(c *gin.Context)
	RemoveResume(c *gin.Context)
	RemoveVideo(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ PositionHandlerInterface = (*PositionHandler)(nil)
var _ SkillCategoryHandlerInterface = (*SkillCategoryHandler)(nil)
var _ SkillHandlerInterface = (*SkillHandler)(nil)
var _ QuestionnaireHandlerInterface = (*QuestionnaireHandler)(nil)
var _ PlacesHandlerInterface = (*PlacesHandler)(nil)
var _ UploadHandlerInterface = (*UploadHandler)(nil)
