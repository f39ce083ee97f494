package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/facturio/billing_backend/config"
	"github.com/facturio/billing_backend/models"
	"github.com/facturio/billing_backend/utils"
)

type LifecycleAction string

const (
	LifecycleActionMutate     LifecycleAction = "Mutate"
	LifecycleActionDelete     LifecycleAction = "Delete"
	LifecycleActionTransition LifecycleAction = "Transition"
)

// LifecycleCheckRequest asks whether an action is legal for a document in
// its current status. The UI calls this before showing an edit screen or
// firing a mutation, so locked documents never generate a write request.
type LifecycleCheckRequest struct {
	Kind          models.DocumentKind `json:"kind" binding:"required"`
	CurrentStatus string              `json:"current_status" binding:"required"`
	Action        LifecycleAction     `json:"action" binding:"required"`
	TargetStatus  string              `json:"target_status"`
}

// LifecycleCheckHandler answers 200 when the action is allowed and 409 with
// the document-locked error when the status forbids it. The transition
// itself stays a server-side responsibility of the invoicing API.
func LifecycleCheckHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LifecycleCheckRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			config.LogError(logger, "lifecycleHandler.go", "LifecycleCheckHandler", "BindJSON", nil, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var allowed bool
		switch req.Action {
		case LifecycleActionMutate:
			allowed = models.CanMutate(req.Kind, req.CurrentStatus)
		case LifecycleActionDelete:
			allowed = models.CanDelete(req.Kind, req.CurrentStatus)
		case LifecycleActionTransition:
			allowed = models.CanTransition(req.Kind, req.CurrentStatus, req.TargetStatus)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lifecycle action"})
			return
		}

		if !allowed {
			c.JSON(http.StatusConflict, gin.H{"error": utils.ErrorDocumentLocked.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"allowed": true})
	}
}
