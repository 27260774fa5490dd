package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "sesión no encontrada")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: 404, Message: "sesión no encontrada"}, body)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Guests int `json:"guests"`
	}

	var p payload
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"guests":4}`))
	require.NoError(t, DecodeJSON(r, &p))
	assert.Equal(t, 4, p.Guests)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"guests":4,"extra":true}`))
	assert.Error(t, DecodeJSON(r, &p))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.NoError(t, DecodeOptionalJSON(r, &p))
}
