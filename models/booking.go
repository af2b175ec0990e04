package models

// Booking status values. A booking starts as upcoming; cancelled and
// completed are terminal.
const (
	BookingStatusUpcoming  = "upcoming"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Session type values.
const (
	SessionTypeVideo = "video"
	SessionTypeChat  = "chat"
	SessionTypePhone = "phone"
)

// BookingSession represents a scheduled paid meeting between a student
// and a mentor.
type BookingSession struct {
	ID          string `json:"id"`
	MentorID    string `json:"mentorId"`
	MentorName  string `json:"mentorName"` // denormalized for display
	StudentName string `json:"studentName"`
	StudentMail string `json:"studentEmail"`
	Date        string `json:"date"` // "YYYY-MM-DD"
	Time        string `json:"time"` // slot label, e.g. "14:00"
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	Amount      int    `json:"amount"` // price fixed at booking time
	SessionType string `json:"sessionType"`
}

// BookingInput carries the client-supplied fields of a new booking.
// ID and status are assigned by the service.
type BookingInput struct {
	MentorID    string `json:"mentorId"`
	MentorName  string `json:"mentorName"`
	StudentName string `json:"studentName"`
	StudentMail string `json:"studentEmail"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Reason      string `json:"reason"`
	Amount      int    `json:"amount"`
	SessionType string `json:"sessionType"`
}

// BookingResult is returned by booking mutations. Expected failures
// (validation, not-found, injected availability conflicts) are reported
// here, never as errors.
type BookingResult struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId,omitempty"`
	Error     string `json:"error,omitempty"`
}
