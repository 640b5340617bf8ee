package handlers

import (
	userRepoPkg "physiocare/database/repository/user"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups all endpoint handlers into one struct so routes can
// be registered without reaching into service packages.
type HandlerBundle struct {
	UserRepo  userRepoPkg.UserRepository
	AuthCache *redis.Client

	// Auth and account endpoints
	RegisterHandler       gin.HandlerFunc
	SignInHandler         gin.HandlerFunc
	SignOutHandler        gin.HandlerFunc
	GetMeHandler          gin.HandlerFunc
	GetProfileHandler     gin.HandlerFunc
	UpdateProfileHandler  gin.HandlerFunc
	UpdateFCMTokenHandler gin.HandlerFunc

	// Evaluation form endpoints
	ListFormsHandler      gin.HandlerFunc
	StreamFormsHandler    gin.HandlerFunc
	GetFormHandler        gin.HandlerFunc
	StreamFormHandler     gin.HandlerFunc
	SaveResponseHandler   gin.HandlerFunc
	ListResponsesHandler  gin.HandlerFunc
	GetResponseHandler    gin.HandlerFunc
	DeleteResponseHandler gin.HandlerFunc
	ShareResponseHandler  gin.HandlerFunc

	// Chat endpoints
	SendMessageHandler    gin.HandlerFunc
	ListThreadsHandler    gin.HandlerFunc
	ListMessagesHandler   gin.HandlerFunc
	StreamMessagesHandler gin.HandlerFunc
	MarkThreadReadHandler gin.HandlerFunc

	// Appointment endpoints
	BookHandler           gin.HandlerFunc
	CancelHandler         gin.HandlerFunc
	UpdateNotesHandler    gin.HandlerFunc
	ListMineHandler       gin.HandlerFunc
	AvailableSlotsHandler gin.HandlerFunc
	BlockSlotHandler      gin.HandlerFunc
	UnblockSlotHandler    gin.HandlerFunc
	BlockedSlotsHandler   gin.HandlerFunc

	// Calendar endpoints
	GetCalendarHandler         gin.HandlerFunc
	RefreshCalendarHandler     gin.HandlerFunc
	SelectDateHandler          gin.HandlerFunc
	BlockCalendarSlotHandler   gin.HandlerFunc
	UnblockCalendarSlotHandler gin.HandlerFunc

	// Exercise endpoints
	CreateExerciseHandler   gin.HandlerFunc
	ListExercisesHandler    gin.HandlerFunc
	GetExerciseHandler      gin.HandlerFunc
	DeleteExerciseHandler   gin.HandlerFunc
	CreatePlanHandler       gin.HandlerFunc
	GetPlanHandler          gin.HandlerFunc
	UpdatePlanHandler       gin.HandlerFunc
	UpdatePlanStatusHandler gin.HandlerFunc
	DeletePlanHandler       gin.HandlerFunc
	ListPlansHandler        gin.HandlerFunc

	// Medical record storage endpoints
	UploadRecordHandler gin.HandlerFunc
	GetRecordURLHandler gin.HandlerFunc
	DeleteRecordHandler gin.HandlerFunc
}
