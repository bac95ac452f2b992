package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-backend/testutils"
	"portfolio-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestHandleHealth(t *testing.T) {
	testutils.InitTestMain()

	r := testutils.SetupTestRouter()
	r.GET("/api/health", New().HandleHealth)

	req, _ := http.NewRequest(http.MethodGet, "/api/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody utils.Response
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &respBody))
	assert.True(t, respBody.Success)
	assert.Equal(t, "Portfolio API is running", respBody.Message)
	assert.NotEmpty(t, respBody.Data.(map[string]interface{})["timestamp"])
}
