package notifications

type ListNotificationsResponse struct {
	Notifications []*Notification `json:"notifications"`
}
