package auth

import (
	"net/http"

	apperrors "contentflow_go_backend/internal/errors"
	"contentflow_go_backend/internal/models"
	"contentflow_go_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, issuer *TokenIssuer, userService services.UserService) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", registerHandler(issuer, userService))
		auth.POST("/login", loginHandler(issuer, userService))
	}
}

func registerHandler(issuer *TokenIssuer, userService services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
			FullName string `json:"full_name"`
		}

		if err := c.ShouldBindJSON(&request); err != nil || request.Username == "" || request.Email == "" || request.Password == "" {
			apperrors.HandleError(c, apperrors.New400Error("Username, email e senha são obrigatórios"))
			return
		}
		if len(request.Password) < 8 {
			apperrors.HandleError(c, apperrors.New400Error("Senha deve ter pelo menos 8 caracteres"))
			return
		}

		user, err := userService.Register(request.Username, request.Email, request.Password, request.FullName)
		if err != nil {
			if err == services.ErrUserExists {
				apperrors.HandleError(c, apperrors.New400Error(err.Error()))
				return
			}
			apperrors.HandleError(c, err)
			return
		}

		token, err := issuer.GenerateToken(user.ID)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Usuário criado com sucesso",
			"token":   token,
			"user":    userPayload(user),
		})
	}
}

func loginHandler(issuer *TokenIssuer, userService services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}

		if err := c.ShouldBindJSON(&request); err != nil || request.Username == "" || request.Password == "" {
			apperrors.HandleError(c, apperrors.New400Error("Username e senha são obrigatórios"))
			return
		}

		user, err := userService.Authenticate(request.Username, request.Password)
		if err != nil {
			if err == services.ErrInvalidCredentials {
				apperrors.HandleError(c, apperrors.New401Error(err.Error()))
				return
			}
			apperrors.HandleError(c, err)
			return
		}

		token, err := issuer.GenerateToken(user.ID)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login realizado com sucesso",
			"token":   token,
			"user":    userPayload(user),
		})
	}
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":                  user.ID,
		"username":            user.Username,
		"email":               user.Email,
		"full_name":           user.FullName,
		"subscription_plan":   user.SubscriptionPlan,
		"subscription_status": user.SubscriptionStatus,
		"usage_limit":         user.UsageLimit,
		"monthly_usage":       user.MonthlyUsage,
	}
}
