package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	mockdb "github.com/Drolfothesgnir/mdhtml/db/mock"
	db "github.com/Drolfothesgnir/mdhtml/db/sqlc"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetDocument(t *testing.T) {
	doc := randomDocument()

	testCases := []struct {
		name          string
		url           string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			url:  fmt.Sprintf("%s/%d", DocumentsURL, doc.ID),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetDocument(gomock.Any(), doc.ID).Times(1).Return(doc, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchDocument(t, recorder, doc)
			},
		},
		{
			name: "HTML",
			url:  fmt.Sprintf("%s/%d/html", DocumentsURL, doc.ID),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetDocument(gomock.Any(), doc.ID).Times(1).Return(doc, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.Equal(t, "text/html; charset=utf-8", recorder.Header().Get("Content-Type"))
				require.Equal(t, doc.Html, recorder.Body.String())
			},
		},
		{
			name: "NotFound",
			url:  fmt.Sprintf("%s/%d", DocumentsURL, doc.ID),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetDocument(gomock.Any(), doc.ID).Times(1).Return(db.Document{}, pgx.ErrNoRows)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrDocumentNotFound.Error(), res.Error)
			},
		},
		{
			name: "HTMLNotFound",
			url:  fmt.Sprintf("%s/%d/html", DocumentsURL, doc.ID),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetDocument(gomock.Any(), doc.ID).Times(1).Return(db.Document{}, pgx.ErrNoRows)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "InternalError",
			url:  fmt.Sprintf("%s/%d", DocumentsURL, doc.ID),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetDocument(gomock.Any(), doc.ID).Times(1).Return(db.Document{}, pgx.ErrTxClosed)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "InvalidID",
			url:  DocumentsURL + "/0",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetDocument(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidDocumentID.Error(), res.Error)
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

			request, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			service.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
