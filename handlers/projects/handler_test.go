package projects

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"portfolio-backend/testutils"
	"portfolio-backend/utils"

	"github.com/DATA-DOG/go-sqlmock"
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

func validProjectBody() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Portfolio Backend",
		"description": "A REST API powering the portfolio site.",
		"category":    "Web",
		"image":       "https://res.cloudinary.com/demo/image/upload/portfolio-backend.png",
		"techStack":   []string{"Go", "PostgreSQL"},
		"githubUrl":   "https://github.com/example/portfolio-backend",
		"liveUrl":     "https://portfolio.example.com",
	}
}

func postProject(r http.Handler, body map[string]interface{}) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/admin/projects", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestCreateProject_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "projects" (.+) RETURNING`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("11111111-1111-1111-1111-111111111111"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/projects", CreateProject)

	resp := postProject(r, validProjectBody())

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody utils.Response
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &respBody))
	assert.True(t, respBody.Success)

	data := respBody.Data.(map[string]interface{})
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", data["id"])
	assert.Equal(t, "Portfolio Backend", data["title"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProject_InvalidCategory(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/api/admin/projects", CreateProject)

	body := validProjectBody()
	body["category"] = "Mobile"
	resp := postProject(r, body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody utils.Response
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "category", respBody.Errors[0].Field)
}

func TestCreateProject_TitleTooShort(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/api/admin/projects", CreateProject)

	body := validProjectBody()
	body["title"] = "X"
	resp := postProject(r, body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateProject_FourthFeaturedDemotesStalest(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// Three featured already: the stalest gets demoted before the insert.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects" WHERE featured = (.+)`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE featured = (.+)ORDER BY updated_at ASC(.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "title", "featured"}).
			AddRow("stale-id", "Old Showcase", true))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "projects" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "projects" (.+) RETURNING`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("22222222-2222-2222-2222-222222222222"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/projects", CreateProject)

	body := validProjectBody()
	body["featured"] = true
	resp := postProject(r, body)

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProject_FeaturedUnderCapSkipsDemotion(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects" WHERE featured = (.+)`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "projects" (.+) RETURNING`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("22222222-2222-2222-2222-222222222222"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/projects", CreateProject)

	body := validProjectBody()
	body["featured"] = true
	resp := postProject(r, body)

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProject_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"id"}))

	r := testutils.SetupTestRouter()
	r.PUT("/api/admin/projects/:id", UpdateProject)

	jsonData, _ := json.Marshal(validProjectBody())
	req, _ := http.NewRequest(http.MethodPut, "/api/admin/projects/missing-id", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var respBody utils.Response
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Project not found", respBody.Message)
}

func TestUpdateProject_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "title", "featured"}).
			AddRow("11111111-1111-1111-1111-111111111111", "Old Title", false))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "projects" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/api/admin/projects/:id", UpdateProject)

	jsonData, _ := json.Marshal(validProjectBody())
	req, _ := http.NewRequest(http.MethodPut, "/api/admin/projects/11111111-1111-1111-1111-111111111111", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody utils.Response
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &respBody))
	data := respBody.Data.(map[string]interface{})
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", data["id"])
	assert.Equal(t, "Portfolio Backend", data["title"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProject_SurvivesImageCleanupFailure(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"id", "image_public_id"}).
			AddRow("11111111-1111-1111-1111-111111111111", "portfolio/projects/some-image"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "projects" WHERE (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/api/admin/projects/:id", DeleteProject)

	// No media host configured, so remote cleanup fails; the delete still
	// reports success.
	req, _ := http.NewRequest(http.MethodDelete, "/api/admin/projects/11111111-1111-1111-1111-111111111111", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProject_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"id"}))

	r := testutils.SetupTestRouter()
	r.DELETE("/api/admin/projects/:id", DeleteProject)

	req, _ := http.NewRequest(http.MethodDelete, "/api/admin/projects/missing-id", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetAllProjects_OrderedFeaturedFirst(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "projects" ORDER BY featured DESC, display_order ASC, created_at DESC`).
		WillReturnRows(mock.NewRows([]string{"id", "title", "featured"}).
			AddRow("11111111-1111-1111-1111-111111111111", "Showcase", true).
			AddRow("22222222-2222-2222-2222-222222222222", "Side Project", false))

	r := testutils.SetupTestRouter()
	r.GET("/api/admin/projects", GetAllProjects)

	req, _ := http.NewRequest(http.MethodGet, "/api/admin/projects", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody utils.Response
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &respBody))
	projectList := respBody.Data.([]interface{})
	assert.Len(t, projectList, 2)
	assert.Equal(t, "Showcase", projectList[0].(map[string]interface{})["title"])
}
