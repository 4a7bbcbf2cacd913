package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"versekeeper/internal/chat"
)

// ChatController exposes the assistant conversation.
type ChatController struct {
	conversation *chat.Conversation
}

func NewChatController(conversation *chat.Conversation) *ChatController {
	return &ChatController{conversation: conversation}
}

type sendPromptRequest struct {
	Prompt string `json:"prompt"`
}

// SendPrompt forwards the prompt to the assistant and returns the reply
// turn. A gateway failure still yields a 200 with the fallback apology
// message; only a busy conversation or blank prompt are request errors.
// POST /api/chat
func (cc *ChatController) SendPrompt(c *gin.Context) {
	var req sendPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	message, err := cc.conversation.Send(c.Request.Context(), req.Prompt)
	if errors.Is(err, chat.ErrEmptyPrompt) {
		respondBadRequest(c, err.Error())
		return
	}
	if errors.Is(err, chat.ErrBusy) {
		respondConflict(c, err.Error())
		return
	}
	if err != nil {
		respondInternalError(c, err, "send prompt")
		return
	}
	c.JSON(http.StatusOK, message)
}

// History returns the conversation so far.
// GET /api/chat/messages
func (cc *ChatController) History(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": cc.conversation.Messages()})
}
