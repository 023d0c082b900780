package valueobjects

import "fmt"

type NotificationType string

const (
	NotificationTypeInfo             NotificationType = "INFO"
	NotificationTypeSuccess          NotificationType = "SUCCESS"
	NotificationTypeWarning          NotificationType = "WARNING"
	NotificationTypeError            NotificationType = "ERROR"
	NotificationTypeRequestAssigned  NotificationType = "REQUEST_ASSIGNED"
	NotificationTypeRequestUpdated   NotificationType = "REQUEST_UPDATED"
	NotificationTypeRequestCompleted NotificationType = "REQUEST_COMPLETED"
	NotificationTypeRequestOverdue   NotificationType = "REQUEST_OVERDUE"
	NotificationTypeTeamAdded        NotificationType = "TEAM_ADDED"
)

var validNotificationTypes = map[NotificationType]bool{
	NotificationTypeInfo:             true,
	NotificationTypeSuccess:          true,
	NotificationTypeWarning:          true,
	NotificationTypeError:            true,
	NotificationTypeRequestAssigned:  true,
	NotificationTypeRequestUpdated:   true,
	NotificationTypeRequestCompleted: true,
	NotificationTypeRequestOverdue:   true,
	NotificationTypeTeamAdded:        true,
}

func NewNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

// IsRequestEvent reports whether the notification refers to a maintenance request.
func (t NotificationType) IsRequestEvent() bool {
	switch t {
	case NotificationTypeRequestAssigned, NotificationTypeRequestUpdated,
		NotificationTypeRequestCompleted, NotificationTypeRequestOverdue:
		return true
	}
	return false
}
