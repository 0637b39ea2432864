package main

import (
	"fmt"
	"os"
	"time"

	"celebratemate-backend/config"
	"celebratemate-backend/models"
	"celebratemate-backend/routes"
	"celebratemate-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}
	config.InitLogger()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.Event{},
		&models.Notification{},
		&models.DispatchLog{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	loc := schedulerLocation()
	reminders := services.NewReminderService(config.DB, loc)

	scheduler := services.NewScheduler(loc)
	registerJobs(scheduler, reminders)
	scheduler.Start()
	defer scheduler.Stop()

	r := routes.SetupRouter(reminders)
	printRoutes(r)
	r.Run(":" + port)
}

func registerJobs(scheduler *services.Scheduler, reminders *services.ReminderService) {
	jobs := []services.Job{
		{
			Name: "reminders",
			Spec: envOr("REMINDER_CRON", "0 9 * * *"),
			Run:  func() { reminders.DispatchReminders() },
		},
		{
			Name: "auto-messages",
			Spec: envOr("AUTO_MESSAGE_CRON", "0 0 * * *"),
			Run:  func() { reminders.DispatchAutoMessages() },
		},
	}

	for _, job := range jobs {
		if err := scheduler.Register(job); err != nil {
			config.Logger.Fatalw("Failed to register job", "job", job.Name, "error", err)
		}
	}
}

func schedulerLocation() *time.Location {
	tz := envOr("SCHEDULER_TZ", "Asia/Kolkata")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		config.Logger.Warnw("Unknown scheduler time zone, falling back to local", "tz", tz)
		return time.Local
	}
	return loc
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
