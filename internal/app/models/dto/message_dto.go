package dto

// SendMessageRequest is the body of POST /api/messages
type SendMessageRequest struct {
	SenderEmail string `json:"senderEmail" binding:"required,email,max=255"`
	ReceiverID  int64  `json:"receiverId" binding:"required,min=1"`
	Content     string `json:"content" binding:"required"`
}

// MessageQuery carries the parameters of GET /api/messages
type MessageQuery struct {
	Email       string `form:"email" binding:"required,max=255"`
	OtherUserID int64  `form:"otherUserId"`
}
