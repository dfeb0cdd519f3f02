package api

import (
	"net/http"
	"strings"

	db "github.com/Drolfothesgnir/mdhtml/db/sqlc"
	"github.com/gin-gonic/gin"
)

type CreateDocumentRequest struct {
	Title    string `json:"title" binding:"required,notblank,max=200"`
	Markdown string `json:"markdown" binding:"required"`
}

func (service *Service) createDocument(ctx *gin.Context) {
	var req CreateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	if !service.checkInputSize(ctx, req.Markdown) {
		return
	}

	body, err := service.renderBody(req.Markdown)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	doc, err := service.store.CreateDocument(ctx, db.CreateDocumentParams{
		Title:         strings.TrimSpace(req.Title),
		Markdown:      req.Markdown,
		Html:          body.Html,
		TextLength:    body.TextLength,
		EngineVersion: body.EngineVersion,
		Warnings:      body.Warnings,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, createDocumentResponse(doc))
}
