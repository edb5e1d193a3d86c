package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geomark/internal/server"
	"github.com/katalvlaran/geomark/logo"
)

// doGet runs one request against a fresh router and returns the recorder.
func doGet(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	router := server.NewRouter(hclog.NewNullLogger())
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

// TestHealth verifies the liveness endpoint.
func TestHealth(t *testing.T) {
	t.Parallel()

	rec := doGet(t, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// TestGenerateSet_RequiresName verifies the missing-name rejection.
func TestGenerateSet_RequiresName(t *testing.T) {
	t.Parallel()

	rec := doGet(t, "/api/v1/logos")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name")
}

// TestGenerateSet_FullResponse verifies the five-variant payload shape and
// that query parameters reach the engine.
func TestGenerateSet_FullResponse(t *testing.T) {
	t.Parallel()

	rec := doGet(t, "/api/v1/logos?name=Acme&industry=fintech&aesthetic=tech&seed=acme-1")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Name    string        `json:"name"`
		Results []logo.Result `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	assert.Equal(t, "Acme", payload.Name)
	require.Len(t, payload.Results, logo.VariantCount)
	for i, r := range payload.Results {
		assert.NotEmpty(t, r.SVG, "variant %d", i)
		assert.NotEmpty(t, r.MethodName, "variant %d", i)
		assert.NotEmpty(t, r.Seed, "variant %d", i)
	}
	// Explicit aesthetic holds for the primary variants.
	for i := 0; i < 3; i++ {
		assert.Equal(t, "tech", payload.Results[i].AestheticName, "variant %d", i)
	}
}

// TestGenerateSet_Deterministic verifies two identical requests produce
// byte-identical bodies.
func TestGenerateSet_Deterministic(t *testing.T) {
	t.Parallel()

	const path = "/api/v1/logos?name=Acme&seed=acme-1"
	a := doGet(t, path)
	b := doGet(t, path)

	require.Equal(t, http.StatusOK, a.Code)
	assert.Equal(t, a.Body.String(), b.Body.String())
}

// TestGenerateSingle verifies the per-method route happy path.
func TestGenerateSingle(t *testing.T) {
	t.Parallel()

	rec := doGet(t, "/api/v1/logos/negative-space?name=Acme&aesthetic=bold")
	require.Equal(t, http.StatusOK, rec.Code)

	var result logo.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "negative-space", result.MethodName)
	assert.Equal(t, "bold", result.AestheticName)
	assert.Contains(t, result.SVG, `viewBox="0 0 512 512"`)
}

// TestGenerateSingle_Rejections verifies unknown methods and missing names.
func TestGenerateSingle_Rejections(t *testing.T) {
	t.Parallel()

	rec := doGet(t, "/api/v1/logos/mosaic?name=Acme")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doGet(t, "/api/v1/logos/negative-space")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
