package api

import (
	"encoding/json"
	"fmt"
	"time"

	db "github.com/Drolfothesgnir/mdhtml/db/sqlc"
)

type Document struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Markdown       string          `json:"markdown"`
	HTML           string          `json:"html"`
	TextLength     int32           `json:"text_length"`
	EngineVersion  int32           `json:"engine_version"`
	Warnings       json.RawMessage `json:"warnings"`
	CreatedAt      time.Time       `json:"created_at"`
	LastModifiedAt time.Time       `json:"last_modified_at"`
}

func createDocumentResponse(doc db.Document) Document {
	warnings := json.RawMessage(doc.Warnings)
	if len(warnings) == 0 {
		warnings = json.RawMessage("[]")
	}

	return Document{
		ID:             doc.ID,
		Title:          doc.Title,
		Markdown:       doc.Markdown,
		HTML:           doc.Html,
		TextLength:     doc.TextLength,
		EngineVersion:  doc.EngineVersion,
		Warnings:       warnings,
		CreatedAt:      doc.CreatedAt,
		LastModifiedAt: doc.LastModifiedAt,
	}
}

// renderBody converts the markdown of a document into the columns derived from it.
func (service *Service) renderBody(markdown string) (db.RenderedBody, error) {
	res, err := service.converter.Convert(markdown)
	if err != nil {
		return db.RenderedBody{}, err
	}

	warnings, err := json.Marshal(nonNilWarnings(res.Warnings))
	if err != nil {
		return db.RenderedBody{}, fmt.Errorf("failed to serialize warnings: %w", err)
	}

	return db.RenderedBody{
		Html:          res.HTML,
		TextLength:    int32(res.TextLength),
		EngineVersion: service.converter.Version(),
		Warnings:      warnings,
	}, nil
}
