package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nyaysetu-backend/repository"
	"nyaysetu-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryIncidentRepository()
	incidentService := service.NewIncidentService(service.WithIncidentRepository(repo))
	draftService := service.NewDraftService(service.DraftWithIncidentRepository(repo))
	handler := NewIncidentHandler(incidentService, draftService)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/incidents", handler.SubmitIncident)
	api.POST("/incidents/manual", handler.RegisterManualEntry)
	api.GET("/incidents", handler.ListIncidents)
	api.GET("/incidents/:id", handler.GetIncident)
	api.PUT("/incidents/:id", handler.UpdateIncident)
	api.POST("/incidents/:id/fir-draft", handler.GenerateFIRDraft)
	api.POST("/incidents/:id/fir-draft/refine", handler.RefineFIRDraft)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func submitIncident(t *testing.T, r *gin.Engine, description string) string {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/incidents", gin.H{"description": description})
	require.Equal(t, http.StatusCreated, w.Code)
	incident := resp["incident"].(map[string]interface{})
	return incident["id"].(string)
}

func TestSubmitIncidentEndpoint(t *testing.T) {
	r := newTestRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/api/incidents", gin.H{
		"description": "someone snatched my phone in the market",
		"metadata":    gin.H{"location": "City Market"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, resp["success"])

	incident := resp["incident"].(map[string]interface{})
	assert.Equal(t, "New", incident["status"])
	assert.Equal(t, "City Market", incident["location"])

	analysis := incident["analysis"].(map[string]interface{})
	assert.Equal(t, "Medium", analysis["riskLevel"])
}

func TestSubmitIncidentMissingDescription(t *testing.T) {
	r := newTestRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/api/incidents", gin.H{"metadata": gin.H{}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errObj := resp["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
}

func TestGetIncidentNotFound(t *testing.T) {
	r := newTestRouter()

	w, resp := doJSON(t, r, http.MethodGet, "/api/incidents/INC-2026-404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	errObj := resp["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errObj["code"])
}

func TestUpdateIncidentInvalidTransition(t *testing.T) {
	r := newTestRouter()
	id := submitIncident(t, r, "someone snatched my phone")

	w, _ := doJSON(t, r, http.MethodPut, "/api/incidents/"+id, gin.H{"status": "Accepted"})
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodPut, "/api/incidents/"+id, gin.H{"status": "FIR Filed"})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, r, http.MethodPut, "/api/incidents/"+id, gin.H{"status": "Accepted"})
	assert.Equal(t, http.StatusConflict, w.Code)
	errObj := resp["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_TRANSITION", errObj["code"])
}

func TestUpdateIncidentUnknownStatus(t *testing.T) {
	r := newTestRouter()
	id := submitIncident(t, r, "someone snatched my phone")

	w, resp := doJSON(t, r, http.MethodPut, "/api/incidents/"+id, gin.H{"status": "Escalated"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	errObj := resp["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_STATUS", errObj["code"])
}

func TestListIncidentsViews(t *testing.T) {
	r := newTestRouter()
	id := submitIncident(t, r, "someone snatched my phone")

	w, resp := doJSON(t, r, http.MethodGet, "/api/incidents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp["incidents"], 1)

	w, _ = doJSON(t, r, http.MethodPut, "/api/incidents/"+id, gin.H{"hidden": true})
	require.Equal(t, http.StatusOK, w.Code)

	_, resp = doJSON(t, r, http.MethodGet, "/api/incidents", nil)
	assert.Len(t, resp["incidents"], 0)

	_, resp = doJSON(t, r, http.MethodGet, "/api/incidents?view=history", nil)
	assert.Len(t, resp["incidents"], 1)

	stats := resp["stats"].(map[string]interface{})
	assert.Equal(t, float64(0), stats["totalActive"])
}

func TestGenerateFIRDraftEndpoint(t *testing.T) {
	r := newTestRouter()
	id := submitIncident(t, r, "someone snatched my phone in the market")

	w, resp := doJSON(t, r, http.MethodPost, "/api/incidents/"+id+"/fir-draft", gin.H{
		"form": gin.H{"complainantName": "Ravi Kumar"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	narrative := resp["narrative"].(string)
	assert.Contains(t, narrative, "FIRST INFORMATION REPORT")
	assert.Contains(t, narrative, "The Informant")
	assert.Contains(t, narrative, "BNS 303(2)")
}

func TestRefineDraftNotConfigured(t *testing.T) {
	r := newTestRouter()
	id := submitIncident(t, r, "someone snatched my phone")

	w, resp := doJSON(t, r, http.MethodPost, "/api/incidents/"+id+"/fir-draft/refine", gin.H{
		"narrative": "draft text",
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	errObj := resp["error"].(map[string]interface{})
	assert.Equal(t, "NOT_CONFIGURED", errObj["code"])
}

func TestManualEntryEndpoint(t *testing.T) {
	r := newTestRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/api/incidents/manual", gin.H{
		"description": "complainant reports her gold chain was snatched",
		"status":      "FIR Filed",
		"metadata":    gin.H{"complainantName": "Sunita Devi"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	incident := resp["incident"].(map[string]interface{})
	assert.Equal(t, "FIR Filed", incident["status"])
}
