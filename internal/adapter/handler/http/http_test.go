package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pageland/matrix-bike-service/internal/adapter/logger"
	"github.com/pageland/matrix-bike-service/internal/adapter/memory"
	"github.com/pageland/matrix-bike-service/internal/adapter/prometheus"
	"github.com/pageland/matrix-bike-service/internal/config"
	"github.com/pageland/matrix-bike-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	bikeService := services.NewBikeService(memory.NewBikeRepository(), log, validator.New(), memory.NewCache())
	handler := NewBikeHandler(bikeService, services.NewEmailService(), log, prometheus.NewPrometheusAdapter())

	router, err := NewRouter(&config.HTTP{Env: "test", AllowedOrigins: "http://localhost:3000"}, handler)
	require.NoError(t, err)
	return router.Engine()
}

func doJSON(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	g.ServeHTTP(w, req)
	return w
}

func createBike(t *testing.T, g *gin.Engine, body string) string {
	t.Helper()
	w := doJSON(g, http.MethodPost, "/bike", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var id string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &id))
	require.NotEmpty(t, id)
	return id
}

func TestGetBikes_EmptyStore(t *testing.T) {
	g := setupRouter(t)

	w := doJSON(g, http.MethodGet, "/bike", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()), "an empty store must serialize as an empty array")
}

func TestCreateBike_Success(t *testing.T) {
	g := setupRouter(t)

	w := doJSON(g, http.MethodPost, "/bike", `{"email":"rider@domain.com","make":"Trek","model":"Marlin 7","year":"2021-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var id string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &id))
	assert.Equal(t, "/bike/"+id, w.Header().Get("Location"))

	w = doJSON(g, http.MethodGet, "/bike", "")
	require.Equal(t, http.StatusOK, w.Code)
	var bikes []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bikes))
	require.Len(t, bikes, 1)
	assert.Equal(t, id, bikes[0]["bikeId"])
	assert.Equal(t, "rider@domain.com", bikes[0]["email"])
	assert.Equal(t, "Trek", bikes[0]["make"])
	assert.Equal(t, "Marlin 7", bikes[0]["model"])
	assert.Equal(t, "2021-01-01T00:00:00Z", bikes[0]["year"])
}

func TestCreateBike_OptionalFieldsAsNull(t *testing.T) {
	g := setupRouter(t)

	id := createBike(t, g, `{"email":"rider@domain.com","make":null,"model":null,"year":null}`)

	w := doJSON(g, http.MethodGet, "/bike", "")
	var bikes []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bikes))
	require.Len(t, bikes, 1)
	assert.Equal(t, id, bikes[0]["bikeId"])
	assert.Nil(t, bikes[0]["make"])
	assert.Nil(t, bikes[0]["model"])
	assert.Nil(t, bikes[0]["year"])
}

func TestCreateBike_Validation(t *testing.T) {
	g := setupRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"invalid email", `{"email":"NotAnEmail"}`},
		{"email missing dot after at", `{"email":"test123@domain"}`},
		{"two at signs", `{"email":"test@test@domain.com"}`},
		{"missing email", `{"make":"Trek"}`},
		{"blank make", `{"email":"rider@domain.com","make":"   "}`},
		{"empty make", `{"email":"rider@domain.com","make":""}`},
		{"blank model", `{"email":"rider@domain.com","model":" "}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(g, http.MethodPost, "/bike", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestUpdateBike_PatchSemantics(t *testing.T) {
	g := setupRouter(t)
	id := createBike(t, g, `{"email":"rider@domain.com","make":"Trek","model":"Marlin 7"}`)

	// Omitted fields must keep their stored values.
	w := doJSON(g, http.MethodPatch, "/bike/"+id, `{"model":"NewModel"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(g, http.MethodGet, "/bike", "")
	var bikes []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bikes))
	require.Len(t, bikes, 1)
	assert.Equal(t, "Trek", bikes[0]["make"])
	assert.Equal(t, "NewModel", bikes[0]["model"])
}

func TestUpdateBike_Failures(t *testing.T) {
	g := setupRouter(t)
	id := createBike(t, g, `{"email":"rider@domain.com"}`)

	w := doJSON(g, http.MethodPatch, "/bike/3fa85f64-5717-4562-b3fc-2c963f66afa6", `{"model":"NewModel"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(g, http.MethodPatch, "/bike/not-a-uuid", `{"model":"NewModel"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(g, http.MethodPatch, "/bike/"+id, `{"make":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBike_Idempotent(t *testing.T) {
	g := setupRouter(t)
	id := createBike(t, g, `{"email":"rider@domain.com"}`)

	w := doJSON(g, http.MethodDelete, "/bike/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// Deleting again, and deleting an id that never existed, still succeed.
	w = doJSON(g, http.MethodDelete, "/bike/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(g, http.MethodDelete, "/bike/3fa85f64-5717-4562-b3fc-2c963f66afa6", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(g, http.MethodDelete, "/bike/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBikes_FilterByEmail(t *testing.T) {
	g := setupRouter(t)
	mine := createBike(t, g, `{"email":"rider@domain.com"}`)
	createBike(t, g, `{"email":"other@domain.com"}`)

	w := doJSON(g, http.MethodGet, "/bike?email=rider@domain.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	var bikes []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bikes))
	require.Len(t, bikes, 1)
	assert.Equal(t, mine, bikes[0]["bikeId"])

	w = doJSON(g, http.MethodGet, fmt.Sprintf("/bike?email=%s", "nobody@domain.com"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestHealthCheck(t *testing.T) {
	g := setupRouter(t)

	w := doJSON(g, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
