package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mockdb "github.com/Drolfothesgnir/mdhtml/db/mock"
	db "github.com/Drolfothesgnir/mdhtml/db/sqlc"
	"github.com/Drolfothesgnir/mdhtml/markdown"
	"github.com/Drolfothesgnir/mdhtml/util"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateDocument(t *testing.T) {
	doc := randomDocument()

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{"title": "  " + doc.Title + " ", "markdown": doc.Markdown},
			buildStubs: func(store *mockdb.MockStore) {
				arg := db.CreateDocumentParams{
					Title:         doc.Title,
					Markdown:      doc.Markdown,
					Html:          doc.Html,
					TextLength:    doc.TextLength,
					EngineVersion: doc.EngineVersion,
					Warnings:      doc.Warnings,
				}
				store.EXPECT().CreateDocument(gomock.Any(), arg).Times(1).Return(doc, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
				requireBodyMatchDocument(t, recorder, doc)
			},
		},
		{
			name: "MissingTitle",
			body: gin.H{"markdown": doc.Markdown},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidParams.Error(), res.Error)
				require.Len(t, res.Fields, 1)
				require.Equal(t, "title", res.Fields[0].FieldName)
				require.Equal(t, getBindingErrorMessage("required"), res.Fields[0].ErrorMessage)
			},
		},
		{
			name: "TitleTooLong",
			body: gin.H{"title": strings.Repeat("t", 201), "markdown": doc.Markdown},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Len(t, res.Fields, 1)
				require.Equal(t, "title", res.Fields[0].FieldName)
				require.Equal(t, getBindingErrorMessage("max"), res.Fields[0].ErrorMessage)
			},
		},
		{
			name: "BlankTitle",
			body: gin.H{"title": "   ", "markdown": doc.Markdown},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Len(t, res.Fields, 1)
				require.Equal(t, "title", res.Fields[0].FieldName)
				require.Equal(t, getBindingErrorMessage("notblank"), res.Fields[0].ErrorMessage)
			},
		},
		{
			name: "MarkdownTooLarge",
			body: gin.H{"title": doc.Title, "markdown": strings.Repeat("a", testConfig.MaxInputBytes+1)},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)
			},
		},
		{
			name: "InternalError",
			body: gin.H{"title": doc.Title, "markdown": doc.Markdown},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).Times(1).Return(db.Document{}, pgx.ErrTxClosed)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mockdb.NewMockStore(ctrl)

			tc.buildStubs(store)

			service := newTestService(t, store, nil)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodPost, DocumentsURL, jsonBody(t, tc.body))
			require.NoError(t, err)

			service.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestCreateDocument_ConverterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).Times(0)

	service := newTestService(t, store, nil)
	service.converter = brokenConverter{}
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodPost, DocumentsURL, jsonBody(t, gin.H{"title": "t", "markdown": "m"}))
	require.NoError(t, err)

	service.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
}

// randomDocument returns a document rendered the way the service renders it.
func randomDocument() db.Document {
	source := util.RandomMarkdown()

	res, err := markdown.Convert(source, markdown.Options{
		WarningPolicy: markdown.WarnOverflowTrunc,
		MaxWarnings:   testConfig.MaxWarnings,
	})
	if err != nil {
		panic(err)
	}

	warnings, err := json.Marshal(nonNilWarnings(res.Warnings))
	if err != nil {
		panic(err)
	}

	now := time.Now().UTC().Truncate(time.Second)

	return db.Document{
		ID:             util.RandomInt(1, 1000),
		Title:          util.RandomTitle(),
		Markdown:       source,
		Html:           res.HTML,
		TextLength:     int32(res.TextLength),
		EngineVersion:  markdown.EngineVersion,
		Warnings:       warnings,
		CreatedAt:      now,
		LastModifiedAt: now,
	}
}

func requireBodyMatchDocument(t *testing.T, recorder *httptest.ResponseRecorder, doc db.Document) {
	var got Document
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, createDocumentResponse(doc), got)
}
