package api

import (
	"errors"
	"fmt"
	"net/http"

	db "github.com/Drolfothesgnir/mdhtml/db/sqlc"
	"github.com/Drolfothesgnir/mdhtml/util"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
)

type UpdateDocumentRequest struct {
	Title    *string `json:"title" binding:"omitempty,notblank,max=200"`
	Markdown *string `json:"markdown" binding:"omitempty,min=1"`
}

func (service *Service) updateDocument(ctx *gin.Context) {
	var req UpdateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	if req.Title == nil && req.Markdown == nil {
		errField := ErrorField{
			FieldName:    "markdown",
			ErrorMessage: "At least one of title and markdown must be provided",
		}
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrNothingToUpdate, errField))
		return
	}

	markdown := pgtype.Text{}
	if req.Markdown != nil {
		if !service.checkInputSize(ctx, *req.Markdown) {
			return
		}
		markdown = pgtype.Text{String: *req.Markdown, Valid: true}
	}

	documentID := extractDocumentIDFromCtx(ctx)

	doc, err := service.store.UpdateDocumentTx(ctx, db.UpdateDocumentTxParams{
		ID:       documentID,
		Title:    util.StringToPgxText(req.Title),
		Markdown: markdown,
		Render:   service.renderBody,
	})

	// 1. The document doesn't exist
	if errors.Is(err, db.ErrEntityNotFound) {
		errField := ErrorField{
			FieldName:    "document_id",
			ErrorMessage: fmt.Sprintf("Document with ID [%d] does not exist", documentID),
		}
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrDocumentNotFound, errField))
		return
	}

	// 2. Any other error, rendering included
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, createDocumentResponse(doc))
}
