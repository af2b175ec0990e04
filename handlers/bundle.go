package handlers

// HandlerBundle groups the assembled handlers for route registration.
type HandlerBundle struct {
	Mentor      *MentorHandler
	Booking     *BookingHandler
	Payment     *PaymentHandler
	Application *ApplicationHandler
}
