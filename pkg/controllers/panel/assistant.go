package panel

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend_hatid/pkg/services"
	"backend_hatid/pkg/utils"
)

// AskAssistant forwards one question to the assistant and returns the
// reply. A request already in flight reports busy; remote failures come
// back as the fixed fallback text, never an error.
func AskAssistant(c *gin.Context) {
	if _, ok := mustUser(c); !ok {
		return
	}

	var req struct {
		Question string `json:"question" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "question is required")
		return
	}

	reply, err := services.GetAssistant().Ask(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, services.ErrBusy) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Assistant is still answering the previous question")
			return
		}
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
