package controllers

import (
	"KidSafe/models"
	"KidSafe/repositories/mocks"
	"KidSafe/services"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testParentUID = "ZEXF4HEyySaGUVUFzUifUsF6rLi2"

type childTestRepos struct {
	parents   *mocks.ParentRepository
	children  *mocks.ChildRepository
	alerts    *mocks.AlertRepository
	sessions  *mocks.SessionRepository
	schedules *mocks.ScheduleRepository
}

// setupChildTestRouter wires the real handlers to services backed by mock
// repositories, with the auth middleware replaced by a stub identity.
func setupChildTestRouter(uid, userType string) (*gin.Engine, childTestRepos) {
	gin.SetMode(gin.TestMode)

	repos := childTestRepos{
		parents:   new(mocks.ParentRepository),
		children:  new(mocks.ChildRepository),
		alerts:    new(mocks.AlertRepository),
		sessions:  new(mocks.SessionRepository),
		schedules: new(mocks.ScheduleRepository),
	}

	alertService := services.NewAlertService(repos.alerts, repos.children, repos.parents)
	SetChildService(services.NewChildService(repos.children, repos.parents, repos.sessions, repos.schedules, alertService))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("uid", uid)
		c.Set("user_type", userType)
	})

	router.GET("/children/picker", ChildPicker)
	router.GET("/children", ListChildren)
	router.POST("/children", CreateChild)
	router.GET("/children/:child_id", ReadChild)
	router.POST("/children/:child_id/lock", LockChild)
	router.POST("/children/:child_id/blocklist", AddBlockedWebsite)
	router.POST("/children/:child_id/heartbeat", ChildHeartbeat)

	return router, repos
}

func TestChildPickerExposesMinimalFields(t *testing.T) {
	router, repos := setupChildTestRouter("", "")

	repos.children.On("FindAll").Return([]models.Child{
		{ID: 2, Name: "Emma", Avatar: "🦄", DeviceID: "device-1", PinHash: "$2a$10$secret", DailyTimeLimit: 120},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/children/picker", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []map[string]interface{} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data, 1)
	assert.Equal(t, "Emma", response.Data[0]["name"])

	// Only id, name and avatar leave the server pre-auth.
	assert.Len(t, response.Data[0], 3)
	assert.NotContains(t, w.Body.String(), "device-1")
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestListChildren(t *testing.T) {
	router, repos := setupChildTestRouter(testParentUID, "parent")

	repos.parents.On("FindByFirebaseUID", testParentUID).Return(models.Parent{ID: 1, FirebaseUID: testParentUID}, nil)
	repos.children.On("FindByParentID", uint(1)).Return([]models.Child{{ID: 2, ParentID: 1, Name: "Emma"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/children", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Emma")
}

func TestCreateChildEndpoint(t *testing.T) {
	router, repos := setupChildTestRouter(testParentUID, "parent")

	repos.parents.On("FindByFirebaseUID", testParentUID).Return(models.Parent{ID: 1, FirebaseUID: testParentUID}, nil)
	repos.children.On("Create", mock.AnythingOfType("*models.Child")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Child).ID = 7
	}).Return(nil)

	body, _ := json.Marshal(map[string]interface{}{
		"name":             "Emma",
		"age":              10,
		"device_id":        "device-1",
		"daily_time_limit": 120,
		"pin":              "1234",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/children", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Child profile added")
}

func TestCreateChildRejectsBadPin(t *testing.T) {
	router, repos := setupChildTestRouter(testParentUID, "parent")

	repos.parents.On("FindByFirebaseUID", testParentUID).Return(models.Parent{ID: 1, FirebaseUID: testParentUID}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"name":             "Emma",
		"device_id":        "device-1",
		"daily_time_limit": 120,
		"pin":              "12",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/children", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repos.children.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLockChildEndpoint(t *testing.T) {
	router, repos := setupChildTestRouter(testParentUID, "parent")

	mockParent := models.Parent{ID: 1, FirebaseUID: testParentUID}
	repos.parents.On("FindByFirebaseUID", testParentUID).Return(mockParent, nil)
	repos.parents.On("FindByID", uint(1)).Return(mockParent, nil)
	repos.children.On("FindByID", uint(2)).Return(models.Child{ID: 2, ParentID: 1, Name: "Emma"}, nil)
	repos.children.On("Save", mock.AnythingOfType("models.Child")).Return(nil)
	repos.alerts.On("Save", mock.AnythingOfType("*models.Alert")).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/children/2/lock", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_locked":true`)
}

func TestLockChildOtherFamily(t *testing.T) {
	router, repos := setupChildTestRouter(testParentUID, "parent")

	repos.parents.On("FindByFirebaseUID", testParentUID).Return(models.Parent{ID: 1, FirebaseUID: testParentUID}, nil)
	repos.children.On("FindByID", uint(2)).Return(models.Child{ID: 2, ParentID: 99}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/children/2/lock", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReadChildOwnFamilyParent(t *testing.T) {
	router, repos := setupChildTestRouter(testParentUID, "parent")

	repos.parents.On("FindByFirebaseUID", testParentUID).Return(models.Parent{ID: 1, FirebaseUID: testParentUID}, nil)
	repos.children.On("FindByID", uint(2)).Return(models.Child{ID: 2, ParentID: 1, Name: "Emma"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/children/2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Emma")
}

func TestReadChildOtherFamilyParentForbidden(t *testing.T) {
	router, repos := setupChildTestRouter("intruder-uid", "parent")

	repos.parents.On("FindByFirebaseUID", "intruder-uid").Return(models.Parent{ID: 9, FirebaseUID: "intruder-uid"}, nil)
	repos.children.On("FindByID", uint(2)).Return(models.Child{
		ID:              2,
		ParentID:        1,
		Name:            "Emma",
		BlockedWebsites: []models.BlockedWebsite{{ChildID: 2, Hostname: "foo.com"}},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/children/2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "foo.com")
}

func TestChildHeartbeatOtherFamilyParentForbidden(t *testing.T) {
	router, repos := setupChildTestRouter("intruder-uid", "parent")

	repos.parents.On("FindByFirebaseUID", "intruder-uid").Return(models.Parent{ID: 9, FirebaseUID: "intruder-uid"}, nil)
	repos.children.On("FindByID", uint(2)).Return(models.Child{ID: 2, ParentID: 1}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/children/2/heartbeat", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	repos.children.AssertNotCalled(t, "Save", mock.Anything)
}

func TestReadChildForbiddenForOtherChildToken(t *testing.T) {
	router, _ := setupChildTestRouter("3", "child")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/children/2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddBlockedWebsiteConflict(t *testing.T) {
	router, repos := setupChildTestRouter(testParentUID, "parent")

	repos.parents.On("FindByFirebaseUID", testParentUID).Return(models.Parent{ID: 1, FirebaseUID: testParentUID}, nil)
	repos.children.On("FindByID", uint(2)).Return(models.Child{
		ID:              2,
		ParentID:        1,
		BlockedWebsites: []models.BlockedWebsite{{ChildID: 2, Hostname: "facebook.com"}},
	}, nil)

	body, _ := json.Marshal(map[string]string{"website": "https://www.facebook.com"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/children/2/blocklist", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestChildHeartbeatOwnProfile(t *testing.T) {
	router, repos := setupChildTestRouter("2", "child")

	repos.children.On("FindByID", uint(2)).Return(models.Child{ID: 2, ParentID: 1, Name: "Emma", DailyTimeLimit: 120, UsedTime: 30, IsOnline: true}, nil)
	repos.schedules.On("FindByChildID", uint(2)).Return([]models.DowntimeSchedule{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/children/2/heartbeat", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"remaining_minutes":90`)
}
