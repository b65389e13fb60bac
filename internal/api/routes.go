package api

import (
	"net/http"
	"strconv"
	"time"

	"contentflow_go_backend/internal/auth"
	apperrors "contentflow_go_backend/internal/errors"
	"contentflow_go_backend/internal/models"
	"contentflow_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

func SetupRoutes(r *gin.Engine, issuer *auth.TokenIssuer, contentService services.ContentService, historyService services.HistoryService, userService services.UserService) {
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler)
		api.GET("/info", infoHandler)

		api.POST("/content/generate/:content_type", auth.AuthMiddleware(issuer, userService), generateContentHandler(contentService))
		api.GET("/content/history", auth.AuthMiddleware(issuer, userService), contentHistoryHandler(historyService))
		api.GET("/user/profile", auth.AuthMiddleware(issuer, userService), profileHandler)
	}
}

// currentUser returns the user placed in the context by the auth middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

type generateRequestBody struct {
	Topic    string `json:"topic"`
	Keywords string `json:"keywords"`
	Content  string `json:"content"`
	Platform string `json:"platform"`
	Tone     string `json:"tone"`
}

// prompt picks the request field that carries the prompt for each content
// type: topic for captions and scripts, keywords for ideas, content for
// hashtags.
func (b generateRequestBody) prompt(contentType services.ContentType) string {
	switch contentType {
	case services.ContentTypeIdeas:
		return b.Keywords
	case services.ContentTypeHashtags:
		return b.Content
	default:
		return b.Topic
	}
}

func generateContentHandler(contentService services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		contentType, err := services.ParseContentType(c.Param("content_type"))
		if err != nil {
			apperrors.HandleError(c, apperrors.New400Error("Tipo de conteúdo inválido"))
			return
		}

		user, ok := currentUser(c)
		if !ok {
			apperrors.HandleError(c, apperrors.New401Error("Token inválido"))
			return
		}

		var body generateRequestBody
		if err := c.ShouldBindJSON(&body); err != nil {
			apperrors.HandleError(c, apperrors.New400Error("Corpo da requisição inválido"))
			return
		}

		artifact, err := contentService.GenerateContent(user.ID, services.GenerationRequest{
			Type:     contentType,
			Prompt:   body.prompt(contentType),
			Platform: body.Platform,
			Tone:     body.Tone,
		})
		if err != nil {
			if err == services.ErrQuotaExceeded {
				apperrors.HandleError(c, apperrors.New403Error("Limite mensal atingido"))
				return
			}
			apperrors.HandleError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":             "success",
			string(contentType): artifact.Payload(),
		})
	}
}

func contentHistoryHandler(historyService services.HistoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			apperrors.HandleError(c, apperrors.New401Error("Token inválido"))
			return
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
		contentType := c.Query("type")

		history, err := historyService.GetContentHistory(user.ID, page, perPage, contentType)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		c.JSON(http.StatusOK, history)
	}
}

func profileHandler(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		apperrors.HandleError(c, apperrors.New401Error("Token inválido"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                  user.ID,
		"username":            user.Username,
		"email":               user.Email,
		"full_name":           user.FullName,
		"subscription_plan":   user.SubscriptionPlan,
		"usage_limit":         user.UsageLimit,
		"monthly_usage":       user.MonthlyUsage,
		"subscription_status": user.SubscriptionStatus,
		"created_at":          user.CreatedAt,
		"last_login":          user.LastLogin,
	})
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "ContentFlow AI API funcionando",
		"version":   apiVersion,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func infoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "ContentFlow AI",
		"version":     apiVersion,
		"description": "API para geração de conteúdo para redes sociais usando IA",
		"features": []string{
			"Geração de legendas inteligentes",
			"Criação de ideias de conteúdo",
			"Geração de hashtags relevantes",
			"Roteiros para vídeos curtos",
			"Sistema de usuários completo",
			"Planos de assinatura",
			"Histórico de conteúdo",
		},
		"endpoints": gin.H{
			"auth":    []string{"/api/auth/register", "/api/auth/login"},
			"content": []string{"/api/content/generate/<type>", "/api/content/history"},
			"user":    []string{"/api/user/profile"},
			"system":  []string{"/api/health", "/api/info"},
		},
	})
}
