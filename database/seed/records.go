package seed

import "mentorsetu/models"

// demoBookings seeds the booking collection on first access so a fresh
// install has history to show.
var demoBookings = []models.BookingSession{
	{
		ID:          "booking-1",
		MentorID:    "1",
		MentorName:  "Sarah Chen",
		StudentName: "John Doe",
		StudentMail: "john@example.com",
		Date:        "2024-02-15",
		Time:        "14:00",
		Reason:      "Product strategy for my SaaS startup",
		Status:      models.BookingStatusUpcoming,
		Amount:      150,
		SessionType: models.SessionTypeVideo,
	},
	{
		ID:          "booking-2",
		MentorID:    "2",
		MentorName:  "Marcus Rodriguez",
		StudentName: "John Doe",
		StudentMail: "john@example.com",
		Date:        "2024-02-10",
		Time:        "16:00",
		Reason:      "System design interview preparation",
		Status:      models.BookingStatusCompleted,
		Amount:      120,
		SessionType: models.SessionTypeVideo,
	},
	{
		ID:          "booking-3",
		MentorID:    "3",
		MentorName:  "Dr. Priya Patel",
		StudentName: "John Doe",
		StudentMail: "john@example.com",
		Date:        "2024-02-20",
		Time:        "10:00",
		Reason:      "Career transition to data science",
		Status:      models.BookingStatusUpcoming,
		Amount:      180,
		SessionType: models.SessionTypeVideo,
	},
}

var demoApplications = []models.MentorApplication{
	{
		ID:           "app-1",
		Name:         "Alex Johnson",
		Email:        "alex@example.com",
		Company:      "Microsoft",
		Position:     "Senior Software Engineer",
		Experience:   "7 years",
		Expertise:    []string{"React", "Node.js", "TypeScript", "System Design"},
		Bio:          "Passionate full-stack developer with experience in building scalable web applications.",
		LinkedinURL:  "https://linkedin.com/in/alexjohnson",
		HourlyRate:   130,
		Availability: "Weekends and evenings",
		Languages:    []string{"English"},
		Timezone:     "PST",
		Motivation:   "I want to help junior developers navigate their careers and avoid common pitfalls.",
		Status:       models.ApplicationStatusPending,
		AppliedAt:    "2024-02-01",
	},
}

// Bookings returns a fresh copy of the demo booking records.
func Bookings() []models.BookingSession {
	out := make([]models.BookingSession, len(demoBookings))
	copy(out, demoBookings)
	return out
}

// Applications returns a fresh copy of the demo application records.
func Applications() []models.MentorApplication {
	out := make([]models.MentorApplication, len(demoApplications))
	copy(out, demoApplications)
	return out
}
