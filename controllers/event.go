package controllers

import (
	"errors"
	"net/http"
	"time"

	"celebratemate-backend/config"
	"celebratemate-backend/models"
	"celebratemate-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateEventInput defines the expected JSON structure for creating an event
type CreateEventInput struct {
	Title       string    `json:"title" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Description string    `json:"description"`
}

// UpdateEventInput defines the expected JSON structure for updating an event
type UpdateEventInput struct {
	Title       *string    `json:"title"`
	Date        *time.Time `json:"date"`
	Description *string    `json:"description"`
}

// CreateEvent creates a new event for the authenticated user
func CreateEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	event := models.Event{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Date:        input.Date,
		Description: input.Description,
	}

	if err := config.DB.Create(&event).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetEvents retrieves the authenticated user's upcoming events, soonest first
func GetEvents(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var events []models.Event
	if err := config.DB.Where("user_id = ? AND date >= ?", userID, utils.BeginningOfDay(time.Now())).
		Order("date ASC").Find(&events).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve events")
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetEvent retrieves a specific event by ID
func GetEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	eventUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid event ID format")
		return
	}

	var event models.Event
	if err := config.DB.Where("user_id = ? AND id = ?", userID, eventUUID).
		First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Event not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEvent updates an existing event
func UpdateEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	eventUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid event ID format")
		return
	}

	var input UpdateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var event models.Event
	if err := config.DB.Where("user_id = ? AND id = ?", userID, eventUUID).
		First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Event not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Date != nil {
		event.Date = *input.Date
	}
	if input.Description != nil {
		event.Description = *input.Description
	}

	if err := config.DB.Save(&event).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update event")
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent deletes an event
func DeleteEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	eventUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid event ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userID, eventUUID).
		Delete(&models.Event{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Event not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
