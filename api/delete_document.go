package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (service *Service) deleteDocument(ctx *gin.Context) {
	documentID := extractDocumentIDFromCtx(ctx)

	deleted, err := service.store.DeleteDocument(ctx, documentID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	if deleted == 0 {
		errField := ErrorField{
			FieldName:    "document_id",
			ErrorMessage: fmt.Sprintf("Document with ID [%d] does not exist", documentID),
		}
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrDocumentNotFound, errField))
		return
	}

	ctx.Status(http.StatusNoContent)
}
