package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// RenderedBody is the part of a document derived from its markdown.
type RenderedBody struct {
	Html          string
	TextLength    int32
	EngineVersion int32
	Warnings      []byte
}

// RenderFunc converts the markdown source of a document into its rendered part.
type RenderFunc func(markdown string) (RenderedBody, error)

type UpdateDocumentTxParams struct {
	ID int64 `json:"id"`

	// Title and Markdown are left untouched when not valid.
	Title    pgtype.Text `json:"title"`
	Markdown pgtype.Text `json:"markdown"`

	// Render is called inside the transaction with the resulting markdown.
	Render RenderFunc `json:"-"`
}

// UpdateDocumentTx locks the document, applies the changes and re-renders it.
//
// The document is always re-rendered, even if only the title changed, so documents
// rendered by an older engine version get refreshed on any update.
// Returns ErrEntityNotFound if the document doesn't exist.
func (store *SQLStore) UpdateDocumentTx(ctx context.Context, arg UpdateDocumentTxParams) (Document, error) {
	var result Document

	err := store.execTx(ctx, func(q *Queries) error {
		doc, err := q.getDocumentForUpdate(ctx, arg.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrEntityNotFound
			}
			return err
		}

		title := doc.Title
		if arg.Title.Valid {
			title = arg.Title.String
		}

		source := doc.Markdown
		if arg.Markdown.Valid {
			source = arg.Markdown.String
		}

		body, err := arg.Render(source)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRenderFailed, err)
		}

		result, err = q.updateDocument(ctx, updateDocumentParams{
			ID:            arg.ID,
			Title:         title,
			Markdown:      source,
			Html:          body.Html,
			TextLength:    body.TextLength,
			EngineVersion: body.EngineVersion,
			Warnings:      body.Warnings,
		})

		return err
	})

	return result, err
}
