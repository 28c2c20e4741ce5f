package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclass/lms-api/internal/middleware"
	"github.com/openclass/lms-api/internal/models"
	"github.com/openclass/lms-api/internal/service"
	appErrors "github.com/openclass/lms-api/pkg/errors"
)

type courseServiceMock struct {
	listResp   []models.Course
	getResp    *models.Course
	getErr     error
	createResp *models.Course
	createErr  error
	lastGetID  int
}

func (m *courseServiceMock) List(ctx context.Context) ([]models.Course, error) {
	return m.listResp, nil
}

func (m *courseServiceMock) Get(ctx context.Context, id int) (*models.Course, error) {
	m.lastGetID = id
	return m.getResp, m.getErr
}

func (m *courseServiceMock) Create(ctx context.Context, req service.CreateCourseRequest) (*models.Course, error) {
	return m.createResp, m.createErr
}

type enrollmentServiceMock struct {
	enrollErr    error
	enrolledUser string
	enrolledID   int
	courseIDs    []int
}

func (m *enrollmentServiceMock) Enroll(ctx context.Context, userID string, courseID int) error {
	m.enrolledUser = userID
	m.enrolledID = courseID
	return m.enrollErr
}

func (m *enrollmentServiceMock) CourseIDs(ctx context.Context, userID string) ([]int, error) {
	return m.courseIDs, nil
}

func TestCourseHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCourseHandler(&courseServiceMock{listResp: []models.Course{{ID: 1, Title: "Algebra"}}}, &enrollmentServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/courses", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Algebra", body[0]["title"])
	assert.Contains(t, body[0], "imageUrl")
	assert.Contains(t, body[0], "teacherId")
}

func TestCourseHandlerGetNonNumericID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &courseServiceMock{}
	handler := NewCourseHandler(mockSvc, &enrollmentServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/courses/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Course not found", body["message"])
	assert.Zero(t, mockSvc.lastGetID)
}

func TestCourseHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &courseServiceMock{getErr: appErrors.Clone(appErrors.ErrNotFound, "Course not found")}
	handler := NewCourseHandler(mockSvc, &enrollmentServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/courses/99", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 99, mockSvc.lastGetID)
}

func TestCourseHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &courseServiceMock{createResp: &models.Course{ID: 7, Title: "Algebra"}}
	handler := NewCourseHandler(mockSvc, &enrollmentServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	payload := `{"title":"Algebra","description":"Linear equations","imageUrl":"https://img/algebra.png"}`
	req := httptest.NewRequest(http.MethodPost, "/api/courses", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(7), body["id"])
}

func TestCourseHandlerEnrollUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockEnroll := &enrollmentServiceMock{}
	handler := NewCourseHandler(&courseServiceMock{}, mockEnroll)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/courses/4/enroll", nil)
	c.Params = gin.Params{{Key: "id", Value: "4"}}

	handler.Enroll(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, mockEnroll.enrolledUser)
}

func TestCourseHandlerEnroll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockEnroll := &enrollmentServiceMock{}
	handler := NewCourseHandler(&courseServiceMock{}, mockEnroll)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/courses/4/enroll", nil)
	c.Params = gin.Params{{Key: "id", Value: "4"}}
	c.Set(middleware.ContextUserKey, &models.Claims{UserID: "user-1"})

	handler.Enroll(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", mockEnroll.enrolledUser)
	assert.Equal(t, 4, mockEnroll.enrolledID)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Enrolled successfully", body["message"])
}

func TestCourseHandlerEnrollBadID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockEnroll := &enrollmentServiceMock{}
	handler := NewCourseHandler(&courseServiceMock{}, mockEnroll)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/courses/abc/enroll", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	c.Set(middleware.ContextUserKey, &models.Claims{UserID: "user-1"})

	handler.Enroll(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mockEnroll.enrolledUser)
}
