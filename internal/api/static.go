package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const demoPage = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <title>ContentFlow AI - API</title>
</head>
<body>
    <h1>⚡ ContentFlow AI</h1>
    <p>API para Geração de Conteúdo para Redes Sociais</p>
    <ul>
        <li><strong>POST</strong> /api/auth/register - Registro de usuário</li>
        <li><strong>POST</strong> /api/auth/login - Login</li>
        <li><strong>POST</strong> /api/content/generate/caption - Gerar legenda</li>
        <li><strong>POST</strong> /api/content/generate/ideas - Gerar ideias</li>
        <li><strong>POST</strong> /api/content/generate/hashtags - Gerar hashtags</li>
        <li><strong>POST</strong> /api/content/generate/script - Gerar roteiro</li>
        <li><strong>GET</strong> /api/content/history - Histórico</li>
        <li><strong>GET</strong> /api/user/profile - Perfil do usuário</li>
    </ul>
    <p><a href="/api/health">Health Check</a> · <a href="/api/info">Informações da API</a></p>
</body>
</html>`

// SetupStatic serves a built frontend from staticDir when present, falling
// back to an inline demo page. API paths never reach this handler.
func SetupStatic(r *gin.Engine, staticDir string) {
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rota não encontrada"})
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		if index := filepath.Join(staticDir, "index.html"); fileExists(index) {
			c.File(index)
			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(demoPage))
	})
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
