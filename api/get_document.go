package api

import (
	"errors"
	"fmt"
	"net/http"

	db "github.com/Drolfothesgnir/mdhtml/db/sqlc"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// fetchDocument loads the document from the path and writes the error response if it fails.
func (service *Service) fetchDocument(ctx *gin.Context) (db.Document, bool) {
	documentID := extractDocumentIDFromCtx(ctx)

	doc, err := service.store.GetDocument(ctx, documentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			errField := ErrorField{
				FieldName:    "document_id",
				ErrorMessage: fmt.Sprintf("Document with ID [%d] does not exist", documentID),
			}
			ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrDocumentNotFound, errField))
			return db.Document{}, false
		}

		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return db.Document{}, false
	}

	return doc, true
}

func (service *Service) getDocument(ctx *gin.Context) {
	doc, ok := service.fetchDocument(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, createDocumentResponse(doc))
}

// getDocumentHTML serves the rendered document as a standalone HTML fragment.
func (service *Service) getDocumentHTML(ctx *gin.Context) {
	doc, ok := service.fetchDocument(ctx)
	if !ok {
		return
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc.Html))
}
