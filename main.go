// File: physiocare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"physiocare/config"
	"physiocare/cron"
	"physiocare/database"
	appointmentRepoPkg "physiocare/database/repository/appointment"
	chatRepoPkg "physiocare/database/repository/chat"
	exerciseRepoPkg "physiocare/database/repository/exercise"
	formRepoPkg "physiocare/database/repository/form"
	userRepoPkg "physiocare/database/repository/user"
	"physiocare/handlers"
	"physiocare/routes"
	appointmentSvc "physiocare/services/appointment"
	chatSvc "physiocare/services/chat"
	exerciseSvc "physiocare/services/exercise"
	formSvc "physiocare/services/form"
	"physiocare/services/notification"
	userSvc "physiocare/services/user"
	"physiocare/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	formRepo := formRepoPkg.NewMongoFormRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	exerciseRepo := exerciseRepoPkg.NewMongoExerciseRepo()

	// reminder queue client.
	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Users: userRepo,
	}

	userService := &userSvc.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}

	chatService := &chatSvc.DefaultChatService{
		Repo:     chatRepo,
		Notifier: notificationService,
	}

	formService := &formSvc.DefaultFormService{
		Repo: formRepo,
		Chat: chatService,
	}

	appointmentService := &appointmentSvc.DefaultAppointmentService{
		Repo:      appointmentRepo,
		Users:     userRepo,
		Cache:     utils.GetCacheClient(),
		Reminders: reminderClient,
	}
	calendarHub := appointmentSvc.NewCalendarHub(appointmentService)

	exerciseService := &exerciseSvc.DefaultExerciseService{
		Repo:  exerciseRepo,
		Users: userRepo,
	}

	// Seed the form library so new installs expose the standard scales.
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := formService.InitializeDefaultForms(seedCtx); err != nil {
		logger.Sugar().Warnf("main: failed to seed default forms: %v", err)
	}
	seedCancel()

	// Start the reminder worker.
	cron.InitReminderWorker(notificationService)

	// handlers.
	formHandler := &handlers.FormHandler{FormService: formService}
	chatHandler := &handlers.ChatHandler{ChatService: chatService}
	appointmentHandler := &handlers.AppointmentHandler{AppointmentService: appointmentService}
	calendarHandler := &handlers.CalendarHandler{Hub: calendarHub}
	exerciseHandler := &handlers.ExerciseHandler{ExerciseService: exerciseService}
	userHandler := &handlers.UserHandler{UserService: userService}
	storageHandler := handlers.NewStorageHandler(cloudinaryStorageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:  userRepo,
		AuthCache: utils.GetAuthCacheClient(),

		// Auth and account endpoints.
		RegisterHandler:       userHandler.RegisterHandler,
		SignInHandler:         userHandler.SignInHandler,
		SignOutHandler:        userHandler.SignOutHandler,
		GetMeHandler:          userHandler.GetMeHandler,
		GetProfileHandler:     userHandler.GetProfileHandler,
		UpdateProfileHandler:  userHandler.UpdateProfileHandler,
		UpdateFCMTokenHandler: userHandler.UpdateFCMTokenHandler,

		// Evaluation form endpoints.
		ListFormsHandler:      formHandler.ListFormsHandler,
		StreamFormsHandler:    formHandler.StreamFormsHandler,
		GetFormHandler:        formHandler.GetFormHandler,
		StreamFormHandler:     formHandler.StreamFormHandler,
		SaveResponseHandler:   formHandler.SaveResponseHandler,
		ListResponsesHandler:  formHandler.ListResponsesHandler,
		GetResponseHandler:    formHandler.GetResponseHandler,
		DeleteResponseHandler: formHandler.DeleteResponseHandler,
		ShareResponseHandler:  formHandler.ShareResponseHandler,

		// Chat endpoints.
		SendMessageHandler:    chatHandler.SendMessageHandler,
		ListThreadsHandler:    chatHandler.ListThreadsHandler,
		ListMessagesHandler:   chatHandler.ListMessagesHandler,
		StreamMessagesHandler: chatHandler.StreamMessagesHandler,
		MarkThreadReadHandler: chatHandler.MarkThreadReadHandler,

		// Appointment endpoints.
		BookHandler:           appointmentHandler.BookHandler,
		CancelHandler:         appointmentHandler.CancelHandler,
		UpdateNotesHandler:    appointmentHandler.UpdateNotesHandler,
		ListMineHandler:       appointmentHandler.ListMineHandler,
		AvailableSlotsHandler: appointmentHandler.AvailableSlotsHandler,
		BlockSlotHandler:      appointmentHandler.BlockSlotHandler,
		UnblockSlotHandler:    appointmentHandler.UnblockSlotHandler,
		BlockedSlotsHandler:   appointmentHandler.BlockedSlotsHandler,

		// Calendar endpoints.
		GetCalendarHandler:         calendarHandler.GetCalendarHandler,
		RefreshCalendarHandler:     calendarHandler.RefreshCalendarHandler,
		SelectDateHandler:          calendarHandler.SelectDateHandler,
		BlockCalendarSlotHandler:   calendarHandler.BlockCalendarSlotHandler,
		UnblockCalendarSlotHandler: calendarHandler.UnblockCalendarSlotHandler,

		// Exercise endpoints.
		CreateExerciseHandler:   exerciseHandler.CreateExerciseHandler,
		ListExercisesHandler:    exerciseHandler.ListExercisesHandler,
		GetExerciseHandler:      exerciseHandler.GetExerciseHandler,
		DeleteExerciseHandler:   exerciseHandler.DeleteExerciseHandler,
		CreatePlanHandler:       exerciseHandler.CreatePlanHandler,
		GetPlanHandler:          exerciseHandler.GetPlanHandler,
		UpdatePlanHandler:       exerciseHandler.UpdatePlanHandler,
		UpdatePlanStatusHandler: exerciseHandler.UpdatePlanStatusHandler,
		DeletePlanHandler:       exerciseHandler.DeletePlanHandler,
		ListPlansHandler:        exerciseHandler.ListPlansHandler,

		// Medical record storage endpoints.
		UploadRecordHandler: storageHandler.UploadRecordHandler,
		GetRecordURLHandler: storageHandler.GetRecordURLHandler,
		DeleteRecordHandler: storageHandler.DeleteRecordHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
