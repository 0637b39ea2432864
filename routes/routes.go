package routes

import (
	"os"
	"strings"

	"celebratemate-backend/config"
	"celebratemate-backend/controllers"
	"celebratemate-backend/services"
	"celebratemate-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(reminders *services.ReminderService) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:5173"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)

		profile := auth.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
			profile.PUT("/settings", controllers.UpdateSettings)
		}
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Contact routes
		contacts := api.Group("/contacts")
		{
			contacts.POST("", controllers.CreateContact)
			contacts.GET("", controllers.GetContacts)
			contacts.GET("/:id", controllers.GetContact)
			contacts.PUT("/:id", controllers.UpdateContact)
			contacts.DELETE("/:id", controllers.DeleteContact)
		}

		// Event routes
		events := api.Group("/events")
		{
			events.POST("", controllers.CreateEvent)
			events.GET("", controllers.GetEvents)
			events.GET("/:id", controllers.GetEvent)
			events.PUT("/:id", controllers.UpdateEvent)
			events.DELETE("/:id", controllers.DeleteEvent)
		}

		// Notification routes
		notifications := api.Group("/notifications")
		{
			notifications.POST("", controllers.CreateNotification)
			notifications.GET("", controllers.GetNotifications)
			notifications.DELETE("/:id", controllers.DeleteNotification)
		}

		// Manual dispatch triggers
		dispatchController := controllers.DispatchController{Reminders: reminders}
		dispatch := api.Group("/dispatch")
		{
			dispatch.POST("/reminders", dispatchController.RunReminders)
			dispatch.POST("/auto-messages", dispatchController.RunAutoMessages)
		}
	}

	return r
}
