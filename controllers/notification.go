package controllers

import (
	"net/http"
	"time"

	"celebratemate-backend/config"
	"celebratemate-backend/models"
	"celebratemate-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateNotificationInput defines the expected JSON structure
type CreateNotificationInput struct {
	Message string    `json:"message" binding:"required"`
	Date    time.Time `json:"date" binding:"required"`
}

// CreateNotification stores an in-app notification for the user
func CreateNotification(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateNotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	notification := models.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Message: input.Message,
		Date:    input.Date,
	}

	if err := config.DB.Create(&notification).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create notification")
		return
	}

	c.JSON(http.StatusCreated, notification)
}

// GetNotifications retrieves the user's notifications, oldest first
func GetNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var notifications []models.Notification
	if err := config.DB.Where("user_id = ?", userID).Order("date ASC").
		Find(&notifications).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve notifications")
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// DeleteNotification deletes a notification
func DeleteNotification(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notificationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid notification ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userID, notificationUUID).
		Delete(&models.Notification{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete notification")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Notification not found")
		return
	}

	c.Status(http.StatusNoContent)
}
