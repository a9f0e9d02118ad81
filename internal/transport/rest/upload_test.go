package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dictation-builder/internal/domain"
	"github.com/heartmarshall/dictation-builder/internal/service/extraction"
)

const uploadBody = `{"file":"data:text/plain;base64,Y2F0LGdhdG8=","fileName":"words.txt","fileType":"text/plain","firstLanguage":"English","secondLanguage":"Spanish"}`

func TestUploadHandler_Upload(t *testing.T) {
	t.Parallel()

	svc := &extractionServiceMock{
		ExtractFunc: func(context.Context, extraction.Upload) ([]domain.WordPair, error) {
			return []domain.WordPair{{First: "cat", Second: "gato"}}, nil
		},
	}
	h := NewUploadHandler(svc, newTestLogger(), 1<<20)

	rec := httptest.NewRecorder()
	h.Upload(rec, httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(uploadBody)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"wordPairs":[{"first":"cat","second":"gato"}]}`, rec.Body.String())

	require.Len(t, svc.ExtractCalls(), 1)
	assert.Equal(t, extraction.Upload{
		File:           "data:text/plain;base64,Y2F0LGdhdG8=",
		FileName:       "words.txt",
		FileType:       "text/plain",
		FirstLanguage:  "English",
		SecondLanguage: "Spanish",
	}, svc.ExtractCalls()[0].U)
}

func TestUploadHandler_Upload_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		body       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"get", http.MethodGet, "", nil, http.StatusMethodNotAllowed, "Method not allowed"},
		{"no file", http.MethodPost, `{"fileType":"text/plain"}`, nil, http.StatusBadRequest, "No file uploaded"},
		{"unsupported", http.MethodPost, uploadBody, fmt.Errorf("%w: %q", domain.ErrUnsupportedFileType, "application/pdf"), http.StatusBadRequest, "Unsupported file type"},
		{"no pairs", http.MethodPost, uploadBody, domain.ErrNoWordPairs, http.StatusUnprocessableEntity, "No valid word pairs found"},
		{"llm failure", http.MethodPost, uploadBody, fmt.Errorf("extraction: %w", domain.ErrGeneration), http.StatusInternalServerError, "File processing failed"},
		{"other", http.MethodPost, uploadBody, errors.New("boom"), http.StatusInternalServerError, "File processing failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &extractionServiceMock{
				ExtractFunc: func(context.Context, extraction.Upload) ([]domain.WordPair, error) {
					return nil, tt.err
				},
			}
			h := NewUploadHandler(svc, newTestLogger(), 1<<20)

			rec := httptest.NewRecorder()
			h.Upload(rec, httptest.NewRequest(tt.method, "/api/upload", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeBody(t, rec)["error"])
		})
	}
}

func TestUploadHandler_Upload_TooLarge(t *testing.T) {
	t.Parallel()

	h := NewUploadHandler(&extractionServiceMock{}, newTestLogger(), 64)

	rec := httptest.NewRecorder()
	h.Upload(rec, httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(uploadBody)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
