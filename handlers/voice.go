package handlers

import (
	"net/http"

	"roomly/models"
	"roomly/services/calendar"
	"roomly/services/dialog"
	"roomly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VoiceHandler is the webhook endpoint for the voice platform. One request
// envelope arrives per user turn; exactly one response envelope goes back.
type VoiceHandler struct {
	Controller *dialog.Controller
	SkillAppID string
	Logger     *zap.Logger
}

func NewVoiceHandler(controller *dialog.Controller, skillAppID string, logger *zap.Logger) *VoiceHandler {
	return &VoiceHandler{Controller: controller, SkillAppID: skillAppID, Logger: logger}
}

// HandleInvocation verifies the caller's application identity, translates
// the envelope into a dialog turn, and runs it through the controller.
func (h *VoiceHandler) HandleInvocation(c *gin.Context) {
	var env models.RequestEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request envelope", err.Error())
		return
	}

	// Identity mismatch is a hard rejection, never a fallback prompt.
	if env.Session.Application.ApplicationID != h.SkillAppID {
		h.Logger.Warn("application identity mismatch",
			zap.String("applicationId", env.Session.Application.ApplicationID))
		utils.JSONError(c, http.StatusForbidden, "application not recognized", "")
		return
	}
	if env.Session.User.UserID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing user identity", "")
		return
	}

	turn := dialog.Turn{
		UserID: env.Session.User.UserID,
		Type:   env.Request.Type,
	}
	if env.Request.Intent != nil {
		turn.Intent = env.Request.Intent.Name
		turn.Slots = make(map[string]string, len(env.Request.Intent.Slots))
		for name, slot := range env.Request.Intent.Slots {
			turn.Slots[name] = slot.Value
		}
	}

	// Calendar calls made during this turn authenticate as the caller.
	ctx := c.Request.Context()
	if env.Session.User.AccessToken != "" {
		ctx = calendar.WithAccessToken(ctx, env.Session.User.AccessToken)
	}

	resp := h.Controller.HandleTurn(ctx, turn)
	c.JSON(http.StatusOK, resp)
}
