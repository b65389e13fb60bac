package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"contentflow_go_backend/internal/auth"
	"contentflow_go_backend/internal/catalog"
	"contentflow_go_backend/internal/models"
	"contentflow_go_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Content{}))

	generatorService := services.NewGeneratorService(catalog.New())
	quotaService := services.NewQuotaService(db)
	contentService := services.NewContentService(db, generatorService, quotaService)
	historyService := services.NewHistoryService(db)
	userService := services.NewUserService(db)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)

	r := gin.New()
	auth.SetupRoutes(r, issuer, userService)
	SetupRoutes(r, issuer, contentService, historyService, userService)

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func registerTestUser(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username":  username,
		"email":     username + "@example.com",
		"password":  "senha-segura",
		"full_name": "Test User",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "carla",
		"email":    "carla@example.com",
		"password": "senha-segura",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, resp["token"])
	user := resp["user"].(map[string]interface{})
	assert.Equal(t, "carla", user["username"])
	assert.EqualValues(t, 10, user["usage_limit"])
	assert.EqualValues(t, 0, user["monthly_usage"])

	t.Run("short password rejected", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"username": "curta",
			"email":    "curta@example.com",
			"password": "1234567",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp["error"], "8 caracteres")
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"username": "carla",
			"email":    "carla2@example.com",
			"password": "senha-segura",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login with username and with email", func(t *testing.T) {
		for _, login := range []string{"carla", "carla@example.com"} {
			w, resp := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
				"username": login,
				"password": "senha-segura",
			})
			require.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, resp["token"])
		}
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "carla",
			"password": "senha-errada",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGenerateEndpoint(t *testing.T) {
	r, db := newTestRouter(t)
	token := registerTestUser(t, r, "gerador")

	t.Run("caption", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/api/content/generate/caption", token, gin.H{
			"topic": "produtividade",
			"tone":  "funny",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "success", resp["status"])
		caption := resp["caption"].(string)
		assert.Contains(t, caption, "produtividade")
		assert.Contains(t, caption, "#Humor")
	})

	t.Run("ideas", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/api/content/generate/ideas", token, gin.H{
			"keywords": "yoga",
		})
		require.Equal(t, http.StatusOK, w.Code)
		ideas := resp["ideas"].([]interface{})
		assert.Len(t, ideas, 5)
		first := ideas[0].(map[string]interface{})
		assert.Equal(t, "Tutorial sobre yoga", first["title"])
	})

	t.Run("hashtags", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/api/content/generate/hashtags", token, gin.H{
			"content":  "Produtividade, Foco",
			"platform": "tiktok",
		})
		require.Equal(t, http.StatusOK, w.Code)
		raw := resp["hashtags"].([]interface{})
		tags := make([]string, 0, len(raw))
		for _, tag := range raw {
			tags = append(tags, tag.(string))
		}
		assert.Contains(t, tags, "produtividade")
		assert.Contains(t, tags, "tiktok")
		assert.Contains(t, tags, "fyp")
		assert.LessOrEqual(t, len(tags), 20)
	})

	t.Run("script", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/api/content/generate/script", token, gin.H{
			"topic": "meditação",
		})
		require.Equal(t, http.StatusOK, w.Code)
		script := resp["script"].(map[string]interface{})
		assert.Contains(t, script["hook"], "meditação")
		assert.NotEmpty(t, script["cta"])
		assert.Len(t, script["visual_suggestions"].([]interface{}), 4)
	})

	t.Run("usage counted once per generation", func(t *testing.T) {
		var user models.User
		require.NoError(t, db.First(&user, "username = ?", "gerador").Error)
		assert.Equal(t, 4, user.MonthlyUsage)
	})

	t.Run("invalid content type", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/api/content/generate/poem", token, gin.H{
			"topic": "x",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Tipo de conteúdo inválido", resp["error"])
	})

	t.Run("missing token", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/content/generate/caption", "", gin.H{
			"topic": "x",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("quota exceeded", func(t *testing.T) {
		require.NoError(t, db.Model(&models.User{}).
			Where("username = ?", "gerador").
			Updates(map[string]interface{}{"usage_limit": 5, "monthly_usage": 5}).Error)

		w, resp := doJSON(t, r, http.MethodPost, "/api/content/generate/caption", token, gin.H{
			"topic": "x",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Limite mensal atingido", resp["error"])

		var user models.User
		require.NoError(t, db.First(&user, "username = ?", "gerador").Error)
		assert.Equal(t, 5, user.MonthlyUsage)
	})
}

func TestHistoryEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerTestUser(t, r, "historiador")

	for i := 0; i < 3; i++ {
		w, _ := doJSON(t, r, http.MethodPost, "/api/content/generate/caption", token, gin.H{
			"topic": fmt.Sprintf("assunto %d", i),
		})
		require.Equal(t, http.StatusOK, w.Code)
	}
	w, _ := doJSON(t, r, http.MethodPost, "/api/content/generate/hashtags", token, gin.H{
		"content": "foco",
	})
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("lists all with pagination metadata", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodGet, "/api/content/history?page=1&per_page=10", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 4, resp["total"])
		assert.EqualValues(t, 1, resp["page"])
		assert.EqualValues(t, 1, resp["pages"])
		assert.Len(t, resp["contents"].([]interface{}), 4)
	})

	t.Run("filters by type", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodGet, "/api/content/history?type=hashtags", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 1, resp["total"])
		contents := resp["contents"].([]interface{})
		require.Len(t, contents, 1)
		record := contents[0].(map[string]interface{})
		assert.Equal(t, "hashtags", record["content_type"])
	})

	t.Run("requires auth", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/api/content/history", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestProfileEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	token := registerTestUser(t, r, "perfil")

	w, resp := doJSON(t, r, http.MethodGet, "/api/user/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "perfil", resp["username"])
	assert.Equal(t, "free", resp["subscription_plan"])
	assert.EqualValues(t, 10, resp["usage_limit"])
}

func TestHealthAndInfo(t *testing.T) {
	r, _ := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", resp["status"])

	w, resp = doJSON(t, r, http.MethodGet, "/api/info", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ContentFlow AI", resp["name"])
}
