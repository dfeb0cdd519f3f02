package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Drolfothesgnir/mdhtml/markdown"
	"github.com/Drolfothesgnir/mdhtml/tmpstore"
	"github.com/gin-gonic/gin"
)

type RenderRequest struct {
	Markdown string `json:"markdown"`
}

type RenderResponse struct {
	HTML       string             `json:"html"`
	TextLength int                `json:"text_length"`
	Warnings   []markdown.Warning `json:"warnings"`
	Cached     bool               `json:"cached"`
}

// renderMarkdown converts the markdown from the request body into HTML.
//
// Results are cached by the hash of the input. Cache failures are logged and bypassed,
// the request is rendered anyway.
func (service *Service) renderMarkdown(ctx *gin.Context) {
	var req RenderRequest
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

	logger := requestLogger(ctx)
	key := tmpstore.RenderKey(service.converter.Version(), req.Markdown)

	// 1. Trying the cache first
	if service.cache != nil {
		cached, err := service.cache.GetRendered(ctx, key)

		if err == nil {
			ctx.JSON(http.StatusOK, RenderResponse{
				HTML:       cached.HTML,
				TextLength: cached.TextLength,
				Warnings:   nonNilWarnings(cached.Warnings),
				Cached:     true,
			})
			return
		}

		if !errors.Is(err, tmpstore.ErrCacheMiss) {
			logger.Warn().Err(err).Msg("render cache lookup failed")
		}
	}

	// 2. Rendering
	res, err := service.converter.Convert(req.Markdown)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	// 3. Storing the result for the next time
	if service.cache != nil {
		data := tmpstore.CachedRender{
			HTML:       res.HTML,
			TextLength: res.TextLength,
			Warnings:   res.Warnings,
		}

		if err := service.cache.SaveRendered(ctx, key, data, service.config.RenderCacheTTL); err != nil {
			logger.Warn().Err(err).Msg("failed to cache rendered markdown")
		}
	}

	ctx.JSON(http.StatusOK, RenderResponse{
		HTML:       res.HTML,
		TextLength: res.TextLength,
		Warnings:   nonNilWarnings(res.Warnings),
	})
}

// checkInputSize aborts the request with 413 if the markdown exceeds the configured limit.
func (service *Service) checkInputSize(ctx *gin.Context, input string) bool {
	if len(input) <= service.config.MaxInputBytes {
		return true
	}

	errField := ErrorField{
		FieldName:    "markdown",
		ErrorMessage: fmt.Sprintf("Input is %d bytes long, the limit is %d bytes", len(input), service.config.MaxInputBytes),
	}
	ctx.JSON(http.StatusRequestEntityTooLarge, NewErrorResponse(ErrInputTooLarge, errField))

	return false
}

func nonNilWarnings(w []markdown.Warning) []markdown.Warning {
	if w == nil {
		return []markdown.Warning{}
	}
	return w
}
