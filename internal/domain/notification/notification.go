package notification

import "context"

// Notification is one message addressed to a staff member.
type Notification struct {
	NotificationID int    `json:"NotificationId"`
	StaffCode      string `json:"StaffCode"`
	Message        string `json:"NotificationMessage"`
	IsRead         bool   `json:"IsRead"`
}

// Repository defines notification persistence.
type Repository interface {
	// FindAll returns every notification for the staff member, read or not.
	FindAll(ctx context.Context, staffCode string) ([]Notification, error)

	// FindUnread returns only unread notifications.
	FindUnread(ctx context.Context, staffCode string) ([]Notification, error)

	// MarkRead marks one notification as read.
	MarkRead(ctx context.Context, staffCode string, notificationID int) error

	// MarkAllRead marks every notification of the staff member as read.
	MarkAllRead(ctx context.Context, staffCode string) error
}
