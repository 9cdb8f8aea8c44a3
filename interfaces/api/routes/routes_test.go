package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"taskdeck/application/serviceimpl"
	"taskdeck/infrastructure/memory"
	"taskdeck/interfaces/api/handlers"
	"taskdeck/interfaces/api/middleware"
)

const testSecret = "routes-test-secret"

// envelope mirrors the wire format of every endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp() *fiber.App {
	store := memory.NewStore()
	taskRepo := memory.NewTaskRepository(store)

	services := &handlers.Services{
		UserService:     serviceimpl.NewUserService(memory.NewUserRepository(store), testSecret),
		TaskService:     serviceimpl.NewTaskService(taskRepo, nil),
		CategoryService: serviceimpl.NewCategoryService(memory.NewCategoryRepository(store), taskRepo),
		NoteService:     serviceimpl.NewNoteService(memory.NewNoteRepository(store)),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	SetupRoutes(app, handlers.NewHandlers(services), testSecret)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode body: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func registerUser(t *testing.T, app *fiber.App) string {
	t.Helper()

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"name":        "Alice Driver",
		"phoneNumber": "5551234567",
		"pincode":     "1234",
		"jobRoles":    []string{"driver"},
	})
	if status != http.StatusCreated {
		t.Fatalf("register status = %d, body = %s", status, env.Error)
	}

	var auth struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &auth); err != nil {
		t.Fatal(err)
	}
	if auth.Token == "" {
		t.Fatal("register returned empty token")
	}
	return auth.Token
}

type taskBody struct {
	ID             string    `json:"id"`
	TaskName       string    `json:"taskName"`
	CompletedUnits int       `json:"completedUnits"`
	Timeframe      string    `json:"timeframe"`
	CreatedAt      time.Time `json:"createdAt"`
	EndDate        time.Time `json:"endDate"`
}

func TestTaskLifecycle(t *testing.T) {
	app := newTestApp()
	token := registerUser(t, app)

	// create
	status, env := doJSON(t, app, http.MethodPost, "/api/v1/tasks/", token, map[string]any{
		"taskName":      "Ship widgets",
		"numberOfUnits": 10,
		"timeframe":     "week",
		"duration":      48,
	})
	if status != http.StatusCreated || !env.Success {
		t.Fatalf("create status = %d, error = %q", status, env.Error)
	}
	var task taskBody
	if err := json.Unmarshal(env.Data, &task); err != nil {
		t.Fatal(err)
	}
	if got := task.EndDate.Sub(task.CreatedAt); got != 48*time.Hour {
		t.Errorf("endDate - createdAt = %v, want 48h", got)
	}

	// record progress
	status, env = doJSON(t, app, http.MethodPut, "/api/v1/tasks/"+task.ID+"/completed-units", token, map[string]any{
		"completedUnits": 10,
	})
	if status != http.StatusOK {
		t.Fatalf("completed-units status = %d, error = %q", status, env.Error)
	}
	var updated taskBody
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatal(err)
	}
	if updated.CompletedUnits != 10 {
		t.Errorf("completedUnits = %d, want 10", updated.CompletedUnits)
	}

	// list by timeframe
	status, env = doJSON(t, app, http.MethodGet, "/api/v1/tasks/timeframe/week", token, nil)
	if status != http.StatusOK {
		t.Fatalf("list status = %d, error = %q", status, env.Error)
	}
	var listed []taskBody
	if err := json.Unmarshal(env.Data, &listed); err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 || listed[0].TaskName != "Ship widgets" {
		t.Fatalf("listed = %+v, want the one created task", listed)
	}

	// delete and verify the listing is empty
	if status, env = doJSON(t, app, http.MethodDelete, "/api/v1/tasks/"+task.ID, token, nil); status != http.StatusOK {
		t.Fatalf("delete status = %d, error = %q", status, env.Error)
	}
	status, env = doJSON(t, app, http.MethodGet, "/api/v1/tasks/", token, nil)
	if status != http.StatusOK {
		t.Fatalf("final list status = %d", status)
	}
	listed = nil
	if err := json.Unmarshal(env.Data, &listed); err != nil {
		t.Fatal(err)
	}
	if len(listed) != 0 {
		t.Errorf("got %d tasks after delete, want 0", len(listed))
	}
}

func TestLoginInvalidPincode(t *testing.T) {
	app := newTestApp()
	registerUser(t, app)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"pincode": "9999",
	})
	if status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", status)
	}
	if env.Success {
		t.Error("success = true on failed login")
	}
	if env.Error != "Invalid pincode" {
		t.Errorf("error = %q, want %q", env.Error, "Invalid pincode")
	}
}

func TestLoginHappyPath(t *testing.T) {
	app := newTestApp()
	registerUser(t, app)

	status, env := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"pincode": "1234",
	})
	if status != http.StatusOK || !env.Success {
		t.Fatalf("status = %d, error = %q", status, env.Error)
	}

	var auth struct {
		Token string `json:"token"`
		User  struct {
			PhoneNumber string     `json:"phoneNumber"`
			LastLogin   *time.Time `json:"lastLogin"`
		} `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &auth); err != nil {
		t.Fatal(err)
	}
	if auth.Token == "" {
		t.Error("login returned empty token")
	}
	if auth.User.PhoneNumber != "5551234567" {
		t.Errorf("phoneNumber = %q", auth.User.PhoneNumber)
	}
	if auth.User.LastLogin == nil {
		t.Error("lastLogin not set after login")
	}
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name string
		body map[string]any
	}{
		{"short pincode", map[string]any{"name": "Alice", "phoneNumber": "5551234567", "pincode": "12", "jobRoles": []string{"driver"}}},
		{"non-numeric phone", map[string]any{"name": "Alice", "phoneNumber": "phone12345", "pincode": "1234", "jobRoles": []string{"driver"}}},
		{"no job roles", map[string]any{"name": "Alice", "phoneNumber": "5551234567", "pincode": "1234", "jobRoles": []string{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", tt.body)
			if status != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", status)
			}
			if env.Success || env.Error == "" {
				t.Errorf("envelope = %+v, want failure with message", env)
			}
		})
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp()

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/tasks/", "", nil)
	if status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", status)
	}
	if env.Error != "Authentication required" {
		t.Errorf("error = %q", env.Error)
	}

	status, env = doJSON(t, app, http.MethodGet, "/api/v1/tasks/", "not-a-jwt", nil)
	if status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", status)
	}
	if env.Error != "Authentication invalid" {
		t.Errorf("error = %q", env.Error)
	}
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp()

	status, env := doJSON(t, app, http.MethodGet, "/api/v1/nothing-here", "", nil)
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	if env.Error != "Route does not exist" {
		t.Errorf("error = %q, want %q", env.Error, "Route does not exist")
	}
}

func TestHealthRoute(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
