package api

import (
	"net/http"

	"github.com/Drolfothesgnir/mdhtml/markdown"
	"github.com/gin-gonic/gin"
)

type TokenizeRequest struct {
	Markdown string `json:"markdown"`
}

type TokenizeResponse struct {
	Tokens   []markdown.Token   `json:"tokens"`
	Warnings []markdown.Warning `json:"warnings"`
}

// tokenizeMarkdown exposes the token sequence of the input, mostly for debugging the dialect.
func (service *Service) tokenizeMarkdown(ctx *gin.Context) {
	var req TokenizeRequest
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

	res, err := service.converter.Convert(req.Markdown)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, TokenizeResponse{
		Tokens:   res.Tokens,
		Warnings: nonNilWarnings(res.Warnings),
	})
}
