// controllers/dispatch.go
package controllers

import (
	"net/http"

	"celebratemate-backend/services"
	"celebratemate-backend/utils"

	"github.com/gin-gonic/gin"
)

// DispatchController exposes the scheduled jobs as operator endpoints so a
// run can be triggered by hand and its summary read synchronously.
type DispatchController struct {
	Reminders *services.ReminderService
}

// RunReminders triggers the reminder job on demand
func (dc *DispatchController) RunReminders(c *gin.Context) {
	summary, err := dc.Reminders.DispatchReminders()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Reminder run failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reminders processed",
		"sent":    summary.Sent,
		"failed":  summary.Failed,
	})
}

// RunAutoMessages triggers the auto-message job on demand
func (dc *DispatchController) RunAutoMessages(c *gin.Context) {
	summary, err := dc.Reminders.DispatchAutoMessages()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Auto-message run failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Auto-messages processed",
		"sent":    summary.Sent,
		"failed":  summary.Failed,
	})
}
