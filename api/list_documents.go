package api

import (
	"net/http"

	db "github.com/Drolfothesgnir/mdhtml/db/sqlc"
	"github.com/gin-gonic/gin"
)

const defaultDocumentsLimit = 20

type ListDocumentsRequest struct {
	Limit  int32 `form:"limit" json:"limit" binding:"omitempty,gte=1,lte=100"`
	Offset int32 `form:"offset" json:"offset" binding:"omitempty,gte=0"`
}

// listDocuments returns the newest documents first.
func (service *Service) listDocuments(ctx *gin.Context) {
	var req ListDocumentsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	if req.Limit == 0 {
		req.Limit = defaultDocumentsLimit
	}

	docs, err := service.store.ListDocuments(ctx, db.ListDocumentsParams{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	resp := make([]Document, 0, len(docs))
	for _, doc := range docs {
		resp = append(resp, createDocumentResponse(doc))
	}

	ctx.JSON(http.StatusOK, resp)
}
