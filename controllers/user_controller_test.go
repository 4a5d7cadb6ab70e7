package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lankipolo123/styleHive-server/internal/util"
	"github.com/lankipolo123/styleHive-server/models"
	"github.com/lankipolo123/styleHive-server/repositories"
)

const userTestSecret = "user-test-secret"

func newUserTestApp(t *testing.T) (*fiber.App, *repositories.InMemoryUserStore) {
	t.Helper()

	users := repositories.NewInMemoryUserStore()
	ctrl := NewUserController(users, userTestSecret)

	app := fiber.New()
	app.Get("/users", ctrl.GetUsers)
	app.Get("/users/get/count", ctrl.GetUserCount)
	app.Get("/users/:id", ctrl.GetUser)
	app.Post("/users", ctrl.CreateUser)
	app.Post("/users/login", ctrl.Login)
	app.Post("/users/register", ctrl.Register)
	app.Put("/users/:id", ctrl.UpdateUser)
	app.Delete("/users/:id", ctrl.DeleteUser)

	return app, users
}

func TestRegisterThenLogin(t *testing.T) {
	app, _ := newUserTestApp(t)

	resp := postJSON(t, app, "/users/register", fiber.Map{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "hunter2",
		"phone":    "555-0100",
		"isAdmin":  true,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/users/login", fiber.Map{
		"email":    "ada@example.com",
		"password": "hunter2",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		User  string `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ada@example.com", body.User)

	claims, err := util.ParseToken(body.Token, userTestSecret)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := newUserTestApp(t)

	resp := postJSON(t, app, "/users/register", fiber.Map{
		"name":     "Bea",
		"email":    "bea@example.com",
		"password": "correct-horse",
		"phone":    "555-0101",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Wrong password is a 400-class failure, not unauthorized.
	resp = postJSON(t, app, "/users/login", fiber.Map{
		"email":    "bea@example.com",
		"password": "battery-staple",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginUnknownEmail(t *testing.T) {
	app, _ := newUserTestApp(t)

	resp := postJSON(t, app, "/users/login", fiber.Map{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateUserRequiresPassword(t *testing.T) {
	app, _ := newUserTestApp(t)

	resp := postJSON(t, app, "/users", fiber.Map{
		"name":  "NoPass",
		"email": "nopass@example.com",
		"phone": "555-0102",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateUserKeepsHashWithoutPassword(t *testing.T) {
	app, users := newUserTestApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("original"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.User{Name: "Cleo", Email: "cleo@example.com", PasswordHash: string(hash), Phone: "555-0103"}
	require.NoError(t, users.Create(&user))

	payload, _ := json.Marshal(fiber.Map{
		"name":  "Cleo Updated",
		"email": "cleo@example.com",
		"phone": "555-0199",
	})
	req := httptest.NewRequest(http.MethodPut, "/users/1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stored, err := users.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, string(hash), stored.PasswordHash)
	assert.Equal(t, "Cleo Updated", stored.Name)
}

func TestUpdateUserRehashesNewPassword(t *testing.T) {
	app, users := newUserTestApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("original"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.User{Name: "Dot", Email: "dot@example.com", PasswordHash: string(hash), Phone: "555-0104"}
	require.NoError(t, users.Create(&user))

	payload, _ := json.Marshal(fiber.Map{
		"name":     "Dot",
		"email":    "dot@example.com",
		"phone":    "555-0104",
		"password": "brand-new",
	})
	req := httptest.NewRequest(http.MethodPut, "/users/1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stored, err := users.Get(user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, string(hash), stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("brand-new")))
}

// Fields omitted from a PUT body keep their stored values; in particular an
// update that does not mention isAdmin must not demote an admin.
func TestUpdateUserPreservesOmittedFields(t *testing.T) {
	app, users := newUserTestApp(t)

	user := models.User{
		Name:         "Faye",
		Email:        "faye@example.com",
		PasswordHash: "hash",
		Phone:        "555-0106",
		IsAdmin:      true,
		Street:       "1 Main St",
		City:         "Springfield",
	}
	require.NoError(t, users.Create(&user))

	payload, _ := json.Marshal(fiber.Map{
		"name":  "Faye Renamed",
		"email": "faye@example.com",
		"phone": "555-0107",
	})
	req := httptest.NewRequest(http.MethodPut, "/users/1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stored, err := users.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Faye Renamed", stored.Name)
	assert.Equal(t, "555-0107", stored.Phone)
	assert.True(t, stored.IsAdmin)
	assert.Equal(t, "1 Main St", stored.Street)
	assert.Equal(t, "Springfield", stored.City)
}

func TestUpdateUserCanDemoteAdminExplicitly(t *testing.T) {
	app, users := newUserTestApp(t)

	user := models.User{Name: "Gil", Email: "gil@example.com", PasswordHash: "hash", Phone: "555-0108", IsAdmin: true}
	require.NoError(t, users.Create(&user))

	payload, _ := json.Marshal(fiber.Map{"isAdmin": false})
	req := httptest.NewRequest(http.MethodPut, "/users/1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	stored, err := users.Get(user.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsAdmin)
	assert.Equal(t, "Gil", stored.Name)
}

func TestUsersListOmitsPasswordHash(t *testing.T) {
	app, users := newUserTestApp(t)

	user := models.User{Name: "Eve", Email: "eve@example.com", PasswordHash: "secret-hash", Phone: "555-0105"}
	require.NoError(t, users.Create(&user))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var raw []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	require.Len(t, raw, 1)
	_, leaked := raw[0]["PasswordHash"]
	assert.False(t, leaked)
	_, leaked = raw[0]["passwordHash"]
	assert.False(t, leaked)
}

func TestDeleteUserNotFound(t *testing.T) {
	app, _ := newUserTestApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/users/42", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
