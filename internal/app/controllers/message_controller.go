package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/app/services"
	"github.com/hirehunt/hirehunt/internal/middleware"
)

// MessageController handles direct messages
type MessageController struct {
	messageService services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService) *MessageController {
	return &MessageController{
		messageService: messageService,
	}
}

// GetMessages returns a conversation or the contact list
// @Summary List messages
// @Description With otherUserId the conversation oldest first, otherwise one entry per contact with the last message
// @Tags messages
// @Produce json
// @Param email query string true "Viewer email"
// @Param otherUserId query int false "Counterpart user ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Message} "Conversation or contacts"
// @Failure 400 {object} dto.ErrorResponse "Email required"
// @Router /api/messages [get]
func (c *MessageController) GetMessages(ctx *gin.Context) {
	var query dto.MessageQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	if query.OtherUserID > 0 {
		messages, err := c.messageService.Conversation(ctx.Request.Context(), query.Email, query.OtherUserID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages))
		return
	}

	contacts, err := c.messageService.Contacts(ctx.Request.Context(), query.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contacts))
}

// SendMessage sends a direct message
// @Summary Send message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Message"
// @Success 200 {object} dto.APIResponse{data=models.Message} "Message sent"
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 404 {object} dto.ErrorResponse "Sender or receiver not found"
// @Router /api/messages [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	msg, err := c.messageService.Send(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(msg))
}
