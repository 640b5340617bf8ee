package models

// ReminderPayload is the queued payload for an appointment reminder push.
type ReminderPayload struct {
	ReminderID    string `json:"reminderId"`
	AppointmentID string `json:"appointmentId"`
	Target        string `json:"target"` // "patient" or "physiotherapist"
	UserID        string `json:"userId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
