package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const documentIDKey = "provided_document_id"

func (service *Service) documentIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// getting mandatory document id form the request, abort with 400 on error
		documentIDRaw := ctx.Param("document_id")

		documentID, err := strconv.ParseInt(documentIDRaw, 10, 64)
		if err != nil || documentID <= 0 {
			errField := ErrorField{"document_id", fmt.Sprintf("Invalid document id: %q", documentIDRaw)}
			ctx.AbortWithStatusJSON(
				http.StatusBadRequest,
				NewErrorResponse(ErrInvalidDocumentID, errField),
			)
			return
		}

		ctx.Set(documentIDKey, documentID)
		ctx.Next()
	}
}

func extractDocumentIDFromCtx(ctx *gin.Context) int64 {
	return ctx.GetInt64(documentIDKey)
}
