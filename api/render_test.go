package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Drolfothesgnir/mdhtml/markdown"
	"github.com/Drolfothesgnir/mdhtml/tmpstore"
	mocktmp "github.com/Drolfothesgnir/mdhtml/tmpstore/mock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRenderMarkdown(t *testing.T) {
	input := "# Title\n__bold__ and _it_ with [a link](http://example.com)"
	key := tmpstore.RenderKey(markdown.EngineVersion, input)
	expectedHTML := markdown.ToHTML(input)

	testCases := []struct {
		name          string
		body          any
		buildStubs    func(cache *mocktmp.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "CacheMiss",
			body: gin.H{"markdown": input},
			buildStubs: func(cache *mocktmp.MockStore) {
				cache.EXPECT().
					GetRendered(gomock.Any(), key).
					Times(1).
					Return(nil, tmpstore.ErrCacheMiss)

				cache.EXPECT().
					SaveRendered(gomock.Any(), key, gomock.Any(), testConfig.RenderCacheTTL).
					Times(1).
					DoAndReturn(func(_ context.Context, _ string, data tmpstore.CachedRender, _ time.Duration) error {
						require.Equal(t, expectedHTML, data.HTML)
						return nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				res := decodeRenderResponse(t, recorder)
				require.Equal(t, expectedHTML, res.HTML)
				require.False(t, res.Cached)
				require.Empty(t, res.Warnings)
			},
		},
		{
			name: "CacheHit",
			body: gin.H{"markdown": input},
			buildStubs: func(cache *mocktmp.MockStore) {
				cached := &tmpstore.CachedRender{HTML: "<em>cached</em>", TextLength: 6}
				cache.EXPECT().
					GetRendered(gomock.Any(), key).
					Times(1).
					Return(cached, nil)

				cache.EXPECT().SaveRendered(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				res := decodeRenderResponse(t, recorder)
				require.Equal(t, "<em>cached</em>", res.HTML)
				require.Equal(t, 6, res.TextLength)
				require.True(t, res.Cached)
				require.NotNil(t, res.Warnings)
			},
		},
		{
			name: "CacheUnavailable",
			body: gin.H{"markdown": input},
			buildStubs: func(cache *mocktmp.MockStore) {
				cache.EXPECT().
					GetRendered(gomock.Any(), key).
					Times(1).
					Return(nil, errors.New("connection refused"))

				cache.EXPECT().
					SaveRendered(gomock.Any(), key, gomock.Any(), gomock.Any()).
					Times(1).
					Return(errors.New("connection refused"))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				res := decodeRenderResponse(t, recorder)
				require.Equal(t, expectedHTML, res.HTML)
				require.False(t, res.Cached)
			},
		},
		{
			name: "UnmatchedDelimiter",
			body: gin.H{"markdown": "_open"},
			buildStubs: func(cache *mocktmp.MockStore) {
				cache.EXPECT().GetRendered(gomock.Any(), gomock.Any()).Times(1).Return(nil, tmpstore.ErrCacheMiss)
				cache.EXPECT().SaveRendered(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				res := decodeRenderResponse(t, recorder)
				require.Equal(t, "_open", res.HTML)
				require.Equal(t, 5, res.TextLength)
			},
		},
		{
			name: "InputTooLarge",
			body: gin.H{"markdown": strings.Repeat("a", testConfig.MaxInputBytes+1)},
			buildStubs: func(cache *mocktmp.MockStore) {
				cache.EXPECT().GetRendered(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)
				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInputTooLarge.Error(), res.Error)
				require.Len(t, res.Fields, 1)
				require.Equal(t, "markdown", res.Fields[0].FieldName)
			},
		},
		{
			name: "InvalidBody",
			body: gin.H{"markdown": 42},
			buildStubs: func(cache *mocktmp.MockStore) {
				cache.EXPECT().GetRendered(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidParams.Error(), res.Error)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			cache := mocktmp.NewMockStore(ctrl)

			tc.buildStubs(cache)

			service := newTestService(t, nil, cache)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodPost, RenderURL, jsonBody(t, tc.body))
			require.NoError(t, err)

			service.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestRenderMarkdown_NoCache(t *testing.T) {
	service := newTestService(t, nil, nil)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodPost, RenderURL, jsonBody(t, gin.H{"markdown": "a < __b__"}))
	require.NoError(t, err)

	service.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	res := decodeRenderResponse(t, recorder)
	require.Equal(t, "a &lt; <strong>b</strong>", res.HTML)
	require.Equal(t, 5, res.TextLength)
	require.False(t, res.Cached)
}

func TestRenderMarkdown_ConverterError(t *testing.T) {
	service := newTestService(t, nil, nil)
	service.converter = brokenConverter{}
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodPost, RenderURL, jsonBody(t, gin.H{"markdown": "x"}))
	require.NoError(t, err)

	service.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	res, err := extractErrorFromBuffer(recorder.Body)
	require.NoError(t, err)
	require.Equal(t, errConverterBroken.Error(), res.Error)
}

func decodeRenderResponse(t *testing.T, recorder *httptest.ResponseRecorder) RenderResponse {
	var res RenderResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	return res
}
