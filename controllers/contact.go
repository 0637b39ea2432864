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

// CreateContactInput defines the expected JSON structure for creating a contact
type CreateContactInput struct {
	Name        string     `json:"name" binding:"required"`
	Email       *string    `json:"email"` // Pointer to allow null
	Phone       *string    `json:"phone"`
	Birthday    *time.Time `json:"birthday"`
	Anniversary *time.Time `json:"anniversary"`
}

// UpdateContactInput defines the expected JSON structure for updating a contact
type UpdateContactInput struct {
	Name        *string    `json:"name"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone"`
	Birthday    *time.Time `json:"birthday"`
	Anniversary *time.Time `json:"anniversary"`
}

// CreateContact creates a new contact for the authenticated user
func CreateContact(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	contact := models.Contact{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        input.Name,
		Birthday:    input.Birthday,
		Anniversary: input.Anniversary,
	}

	if input.Email != nil {
		contact.Email = *input.Email
	}
	if input.Phone != nil {
		contact.Phone = *input.Phone
	}

	if err := config.DB.Create(&contact).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// GetContacts retrieves all contacts for the authenticated user
func GetContacts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var contacts []models.Contact
	if err := config.DB.Where("user_id = ?", userID).Order("name ASC").
		Find(&contacts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve contacts")
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// GetContact retrieves a specific contact by ID
func GetContact(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	contactUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact ID format")
		return
	}

	var contact models.Contact
	if err := config.DB.Where("user_id = ? AND id = ?", userID, contactUUID).
		First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Contact not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, contact)
}

// UpdateContact updates an existing contact
func UpdateContact(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	contactUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact ID format")
		return
	}

	var input UpdateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var contact models.Contact
	if err := config.DB.Where("user_id = ? AND id = ?", userID, contactUUID).
		First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Contact not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Phone != nil && *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	if input.Name != nil {
		contact.Name = *input.Name
	}
	if input.Email != nil {
		contact.Email = *input.Email
	}
	if input.Phone != nil {
		contact.Phone = *input.Phone
	}
	if input.Birthday != nil {
		contact.Birthday = input.Birthday
	}
	if input.Anniversary != nil {
		contact.Anniversary = input.Anniversary
	}

	if err := config.DB.Save(&contact).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update contact")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteContact deletes a contact
func DeleteContact(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	contactUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contact ID format")
		return
	}

	result := config.DB.Where("user_id = ? AND id = ?", userID, contactUUID).
		Delete(&models.Contact{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete contact")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Contact not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}
