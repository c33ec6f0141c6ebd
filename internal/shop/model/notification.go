package model

// NotificationKind distinguishes success from error notifications.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is a structured, transient user-visible message. Loaders and
// forms return these instead of raising blocking alerts; the view layer
// decides how to present them.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
}

func SuccessNotification(message string) Notification {
	return Notification{Kind: NotifySuccess, Message: message}
}

func ErrorNotification(message string) Notification {
	return Notification{Kind: NotifyError, Message: message}
}
