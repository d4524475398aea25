package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"ai_unk_go_backend/internal/auth"
	apperrors "ai_unk_go_backend/internal/errors"
	"ai_unk_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	chatService *services.ChatService,
	conversationService *services.ConversationService,
	progressService services.ProgressServiceDB,
	providerRegistry services.ProviderRegistry,
	auditService services.AuditServiceDB,
	userService *services.UserService,
	chatTimeout time.Duration,
) {
	api := r.Group("/api", auth.AuthMiddleware(userService))
	{
		api.GET("/conversations", listConversationsHandler(conversationService))
		api.POST("/conversations", createConversationHandler(conversationService))
		api.DELETE("/conversations/:id", deleteConversationHandler(conversationService))
		api.GET("/conversations/:id/messages", getMessagesHandler(conversationService))
		api.POST("/chat/send", sendChatHandler(chatService, chatTimeout))
		api.GET("/progress", getProgressHandler(progressService))
		api.POST("/progress", updateProgressHandler(progressService))

		admin := api.Group("/admin", auth.RequireAdmin())
		{
			admin.GET("/providers", listProvidersHandler(providerRegistry))
			admin.POST("/providers", updateProviderHandler(providerRegistry))
			admin.POST("/providers/test", testProviderHandler(providerRegistry))
			admin.GET("/audit-logs", auditLogsHandler(auditService))
		}
	}
}

func listConversationsHandler(conversationService *services.ConversationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		conversations, err := conversationService.ListConversations(user.ID)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, conversations)
	}
}

func createConversationHandler(conversationService *services.ConversationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		var request struct {
			Title string `json:"title" binding:"required"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		conversationID, err := conversationService.CreateConversation(user.ID, request.Title)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"conversationId": conversationID})
	}
}

func deleteConversationHandler(conversationService *services.ConversationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		conversationID, err := parseIDParam(c)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		if err := conversationService.DeleteConversation(user.ID, conversationID); err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func getMessagesHandler(conversationService *services.ConversationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		conversationID, err := parseIDParam(c)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		messages, err := conversationService.GetMessages(user.ID, conversationID)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}

func sendChatHandler(chatService *services.ChatService, chatTimeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		var request struct {
			ConversationID uint   `json:"conversationId" binding:"required"`
			Message        string `json:"message" binding:"required"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		// Cancellation by timeout lives at the transport boundary; the
		// orchestrator treats it like any other provider failure.
		ctx, cancel := context.WithTimeout(c.Request.Context(), chatTimeout)
		defer cancel()

		response, err := chatService.SendTurn(ctx, user.ID, request.ConversationID, request.Message)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"response": response})
	}
}

func getProgressHandler(progressService services.ProgressServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		progress, err := progressService.GetProgress(user.ID)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, progress)
	}
}

func updateProgressHandler(progressService services.ProgressServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		var update services.ProgressUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		if err := progressService.UpdateProgress(user.ID, update); err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func listProvidersHandler(providerRegistry services.ProviderRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		providers, err := providerRegistry.GetAllProviders()
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, providers)
	}
}

func updateProviderHandler(providerRegistry services.ProviderRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		var update services.ProviderUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		if err := providerRegistry.UpsertProvider(user.ID, update); err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func testProviderHandler(providerRegistry services.ProviderRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		var request struct {
			ProviderID string `json:"providerId" binding:"required"`
			Model      string `json:"model" binding:"required"`
			APIKey     string `json:"apiKey" binding:"required"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			apperrors.HandleError(c, apperrors.New400Error(err.Error()))
			return
		}

		result, err := providerRegistry.TestProvider(c.Request.Context(), user.ID, request.ProviderID, request.Model, request.APIKey)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func auditLogsHandler(auditService services.AuditServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
		if err != nil {
			apperrors.HandleError(c, apperrors.New400Error("Invalid limit value"))
			return
		}

		logs, err := auditService.GetAuditLogs(limit, c.Query("eventType"))
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, logs)
	}
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperrors.New400Error("Invalid conversation id")
	}
	return uint(id), nil
}
