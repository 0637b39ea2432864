package controllers

import (
	"net/http"
	"strings"
	"time"

	"celebratemate-backend/config"
	"celebratemate-backend/models"
	"celebratemate-backend/utils"

	"github.com/gin-gonic/gin"
)

// UpdateProfileInput defines the expected JSON structure
type UpdateProfileInput struct {
	Name     *string    `json:"name"`
	Email    *string    `json:"email" binding:"omitempty,email"`
	Phone    *string    `json:"phone"`
	Birthday *time.Time `json:"birthday"`
}

// UpdateSettingsInput covers reminder and auto-message preferences.
type UpdateSettingsInput struct {
	ReminderLead        *int     `json:"reminderLead" binding:"omitempty,min=1,max=30"`
	ReminderChannels    []string `json:"reminderChannels"`
	AutoSendEnabled     *bool    `json:"autoSendEnabled"`
	AutoMessageTemplate *string  `json:"autoMessageTemplate"`
	AutoChannels        []string `json:"autoChannels"`
}

// GetProfile returns the user's profile including notification settings
func GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                  user.ID,
		"name":                user.Name,
		"email":               user.Email,
		"phone":               user.Phone,
		"birthday":            user.Birthday,
		"telegramChatId":      user.TelegramChatID,
		"reminderLead":        user.ReminderLead,
		"reminderChannels":    user.ReminderChannels,
		"autoSendEnabled":     user.AutoSendEnabled,
		"autoMessageTemplate": user.AutoMessageTemplate,
		"autoChannels":        user.AutoChannels,
	})
}

// UpdateProfile updates identity fields
func UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Birthday != nil {
		user.Birthday = input.Birthday
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// UpdateSettings updates reminder and auto-message preferences
func UpdateSettings(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.ReminderLead != nil {
		user.ReminderLead = *input.ReminderLead
	}

	if input.ReminderChannels != nil {
		channels, err := models.ParseChannelSet(input.ReminderChannels)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		if channels.IsEmpty() {
			utils.RespondWithError(c, http.StatusBadRequest, "At least one reminder channel is required")
			return
		}
		user.ReminderChannels = channels
	}

	if input.AutoSendEnabled != nil {
		user.AutoSendEnabled = *input.AutoSendEnabled
	}
	if input.AutoMessageTemplate != nil {
		user.AutoMessageTemplate = *input.AutoMessageTemplate
	}

	if input.AutoChannels != nil {
		channels, err := models.ParseChannelSet(input.AutoChannels)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		if channels.Has(models.ChannelChat) {
			utils.RespondWithError(c, http.StatusBadRequest, "Auto-messages support email and sms only")
			return
		}
		user.AutoChannels = channels
	}

	// Auto-send requires at least one channel and a usable template.
	if user.AutoSendEnabled {
		if user.AutoChannels.IsEmpty() {
			utils.RespondWithError(c, http.StatusBadRequest, "Auto-send requires at least one channel")
			return
		}
		if !strings.Contains(user.AutoMessageTemplate, "{name}") {
			utils.RespondWithError(c, http.StatusBadRequest, "Auto-message template must contain {name}")
			return
		}
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully"})
}
