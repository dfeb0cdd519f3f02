package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(service.loggerMiddleware())
	router.Use(service.corsMiddleware())

	router.GET(PingURL, func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	// stateless conversion
	router.POST(RenderURL, service.renderMarkdown)
	router.POST(TokenizeURL, service.tokenizeMarkdown)

	// stored documents
	router.POST(DocumentsURL, service.createDocument)
	router.GET(DocumentsURL, service.listDocuments)

	documentGroup := router.Group(DocumentsURL).Use(service.documentIDMiddleware())
	documentGroup.GET("/:document_id", service.getDocument)
	documentGroup.GET("/:document_id/html", service.getDocumentHTML)
	documentGroup.PATCH("/:document_id", service.updateDocument)
	documentGroup.DELETE("/:document_id", service.deleteDocument)

	server.Handler = router
	service.router = router
}
