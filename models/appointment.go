package models

import "time"

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

// AppointmentType distinguishes in-person sessions from remote ones.
type AppointmentType string

const (
	AppointmentInPerson AppointmentType = "IN_PERSON"
	AppointmentRemote   AppointmentType = "REMOTE"
)

// Appointment is a booked session between a patient and a physiotherapist.
// PatientName and PatientPhotoURL are denormalized display fields copied at
// booking time. TimeSlot is a label from WorkingTimeSlots, not a structured
// time range.
type Appointment struct {
	ID                  string            `bson:"id" json:"id"`
	PhysiotherapistID   string            `bson:"physiotherapistId" json:"physiotherapistId"`
	UserID              string            `bson:"userId" json:"userId"`
	PatientName         string            `bson:"patientName" json:"patientName"`
	PatientPhotoURL     string            `bson:"patientPhotoUrl,omitempty" json:"patientPhotoUrl,omitempty"`
	Date                string            `bson:"date" json:"date"` // "2006-01-02"
	TimeSlot            string            `bson:"timeSlot" json:"timeSlot"`
	Status              AppointmentStatus `bson:"status" json:"status"`
	Type                AppointmentType   `bson:"appointmentType" json:"appointmentType"`
	RehabilitationNotes string            `bson:"rehabilitationNotes,omitempty" json:"rehabilitationNotes,omitempty"`
	CancelledBy         string            `bson:"cancelledBy,omitempty" json:"cancelledBy,omitempty"` // "patient" or "physiotherapist"
	CancelledAt         *time.Time        `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CreatedAt           time.Time         `bson:"createdAt" json:"createdAt"`
}

// BlockedTimeSlot marks a slot label a physiotherapist has closed for a date.
// Availability is plain set membership over these; no overlap detection.
type BlockedTimeSlot struct {
	ID                string    `bson:"id" json:"id"`
	PhysiotherapistID string    `bson:"physiotherapistId" json:"physiotherapistId"`
	Date              string    `bson:"date" json:"date"`
	TimeSlot          string    `bson:"timeSlot" json:"timeSlot"`
	Reason            string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
}

// WorkingTimeSlots is the fixed set of bookable slot labels for a working day.
var WorkingTimeSlots = []string{
	"09:00 - 10:00",
	"10:00 - 11:00",
	"11:00 - 12:00",
	"13:00 - 14:00",
	"14:00 - 15:00",
	"15:00 - 16:00",
	"16:00 - 17:00",
}
