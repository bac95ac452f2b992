package portfolio

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"portfolio-backend/testutils"
	"portfolio-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)
	utils.Logger.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestGetPersonal_FallsBackToDefaultsWithoutPersisting(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// Empty table: the handler serves the defaults but writes nothing.
	mock.ExpectQuery(`SELECT (.+) FROM "personal"`).
		WillReturnRows(mock.NewRows([]string{"id"}))

	r := testutils.SetupTestRouter()
	r.GET("/api/portfolio/personal", GetPersonal)

	resp := get(r, "/api/portfolio/personal")

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody utils.Response
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &respBody))
	data := respBody.Data.(map[string]interface{})
	assert.Equal(t, "Naveen Agarwal", data["name"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProjects_CategoryFilter(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE category = (.+)ORDER BY featured DESC, display_order ASC, created_at DESC`).
		WillReturnRows(mock.NewRows([]string{"id", "title", "category"}).
			AddRow("1", "Chat Assistant", "AI"))

	r := testutils.SetupTestRouter()
	r.GET("/api/portfolio/projects", GetProjects)

	resp := get(r, "/api/portfolio/projects?category=AI")

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody utils.Response
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &respBody))
	projectList := respBody.Data.([]interface{})
	assert.Len(t, projectList, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProjects_AllCategorySkipsFilter(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "projects" ORDER BY featured DESC, display_order ASC, created_at DESC`).
		WillReturnRows(mock.NewRows([]string{"id", "title"}).
			AddRow("1", "Chat Assistant").
			AddRow("2", "Portfolio Site"))

	r := testutils.SetupTestRouter()
	r.GET("/api/portfolio/projects", GetProjects)

	resp := get(r, "/api/portfolio/projects?category=All")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFeaturedProjects_CapsAtThree(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE featured = (.+)LIMIT (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "title", "featured"}).
			AddRow("1", "First", true).
			AddRow("2", "Second", true).
			AddRow("3", "Third", true))

	r := testutils.SetupTestRouter()
	r.GET("/api/portfolio/projects/featured", GetFeaturedProjects)

	resp := get(r, "/api/portfolio/projects/featured")

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody utils.Response
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &respBody))
	projectList := respBody.Data.([]interface{})
	assert.Len(t, projectList, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStats_AggregatesCounts(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects"`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects" WHERE category = (.+)`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects" WHERE category = (.+)`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "tech_stack"`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(12))

	r := testutils.SetupTestRouter()
	r.GET("/api/portfolio/stats", GetStats)

	resp := get(r, "/api/portfolio/stats")

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody utils.Response
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &respBody))
	data := respBody.Data.(map[string]interface{})
	assert.Equal(t, float64(7), data["totalProjects"])
	assert.Equal(t, float64(3), data["aiProjects"])
	assert.Equal(t, float64(4), data["webProjects"])
	assert.Equal(t, float64(12), data["techCount"])
	assert.Equal(t, float64(3), data["yearsExperience"])
	assert.Equal(t, float64(25), data["clients"])

	assert.NoError(t, mock.ExpectationsWereMet())
}
