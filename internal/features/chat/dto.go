package chat

type PostMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type ListMessagesResponse struct {
	Messages []*Message `json:"messages"`
}

type ChatSettingsRequest struct {
	AutoDeleteDays int `json:"autoDeleteDays" binding:"required,min=1,max=365"`
}
