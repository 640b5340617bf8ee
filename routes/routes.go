package routes

import (
	"net/http"
	"time"

	"physiocare/handlers"
	"physiocare/middleware"
	"physiocare/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/signin", hb.SignInHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.POST("/signout", hb.SignOutHandler)
	}
}

// RegisterUserRoutes registers profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.GET("/me", hb.GetMeHandler)
		api.GET("/:id/profile", hb.GetProfileHandler)
		api.PUT("/me/profile", hb.UpdateProfileHandler)
		api.PUT("/me/fcm-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterFormRoutes registers evaluation form and response endpoints.
func RegisterFormRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	forms := r.Group("/api/forms")
	{
		forms.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		forms.GET("", hb.ListFormsHandler)
		forms.GET("/stream", hb.StreamFormsHandler)
		forms.GET("/:id", hb.GetFormHandler)
		forms.GET("/:id/stream", hb.StreamFormHandler)
	}

	responses := r.Group("/api/responses")
	{
		responses.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		responses.POST("", hb.SaveResponseHandler)
		responses.GET("", hb.ListResponsesHandler)
		responses.GET("/:id", hb.GetResponseHandler)
		responses.DELETE("/:id", hb.DeleteResponseHandler)
		responses.POST("/:id/share", hb.ShareResponseHandler)
	}
}

// RegisterChatRoutes registers messaging endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.POST("/messages", hb.SendMessageHandler)
		api.GET("/threads", hb.ListThreadsHandler)
		api.GET("/threads/:id/messages", hb.ListMessagesHandler)
		api.GET("/threads/:id/stream", hb.StreamMessagesHandler)
		api.POST("/threads/:id/read", hb.MarkThreadReadHandler)
	}
}

// RegisterAppointmentRoutes registers booking and slot endpoints. Slot
// blocking is a physiotherapist action.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.POST("", hb.BookHandler)
		api.GET("", hb.ListMineHandler)
		api.POST("/:id/cancel", hb.CancelHandler)
		api.PUT("/:id/notes", hb.UpdateNotesHandler)
		api.GET("/slots", hb.AvailableSlotsHandler)

		physio := api.Group("/blocked")
		physio.Use(middleware.RequireRole(string(models.RolePhysiotherapist)))
		physio.POST("", hb.BlockSlotHandler)
		physio.DELETE("", hb.UnblockSlotHandler)
		physio.GET("", hb.BlockedSlotsHandler)
	}
}

// RegisterCalendarRoutes registers the physiotherapist calendar session.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.Use(middleware.RequireRole(string(models.RolePhysiotherapist)))
		api.GET("", hb.GetCalendarHandler)
		api.POST("/refresh", hb.RefreshCalendarHandler)
		api.POST("/date", hb.SelectDateHandler)
		api.POST("/block", hb.BlockCalendarSlotHandler)
		api.POST("/unblock", hb.UnblockCalendarSlotHandler)
	}
}

// RegisterExerciseRoutes registers exercise catalog and plan endpoints.
// Catalog and plan writes are physiotherapist actions.
func RegisterExerciseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	exercises := r.Group("/api/exercises")
	{
		exercises.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		exercises.GET("", hb.ListExercisesHandler)
		exercises.GET("/:id", hb.GetExerciseHandler)

		physio := exercises.Group("")
		physio.Use(middleware.RequireRole(string(models.RolePhysiotherapist)))
		physio.POST("", hb.CreateExerciseHandler)
		physio.DELETE("/:id", hb.DeleteExerciseHandler)
	}

	plans := r.Group("/api/plans")
	{
		plans.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		plans.GET("", hb.ListPlansHandler)
		plans.GET("/:id", hb.GetPlanHandler)

		physio := plans.Group("")
		physio.Use(middleware.RequireRole(string(models.RolePhysiotherapist)))
		physio.POST("", hb.CreatePlanHandler)
		physio.PUT("/:id", hb.UpdatePlanHandler)
		physio.PUT("/:id/status", hb.UpdatePlanStatusHandler)
		physio.DELETE("/:id", hb.DeletePlanHandler)
	}
}

// RegisterRecordRoutes registers medical record file endpoints.
func RegisterRecordRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/records")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.POST("/:kind", hb.UploadRecordHandler)
		api.GET("/url", hb.GetRecordURLHandler)
		api.DELETE("", hb.DeleteRecordHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm PhysioCare"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterFormRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterExerciseRoutes(r, hb)
	RegisterRecordRoutes(r, hb)
	RegisterHealthRoute(r)
}
