package ports

import "context"

// Notification kinds handled by the notifier.
const (
	NotifyInquiryReceived  = "inquiry_received"
	NotifyBookingConfirmed = "booking_confirmed"
)

// NotificationInput is the DTO passed from the transport layer to the
// notification workers. Reference is the human-facing code of the record
// that triggered the notification; events for one reference are processed
// in order.
type NotificationInput struct {
	Kind      string
	Reference string
	Recipient string
}

// NotifierService delivers a single notification.
type NotifierService interface {
	Process(ctx context.Context, in NotificationInput) error
}
