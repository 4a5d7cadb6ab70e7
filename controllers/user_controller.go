package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lankipolo123/styleHive-server/internal/util"
	"github.com/lankipolo123/styleHive-server/models"
	"github.com/lankipolo123/styleHive-server/repositories"
)

// UserController handles HTTP operations for users, including registration
// and login.
type UserController struct {
	Store     repositories.UserStore
	JWTSecret string
}

func NewUserController(store repositories.UserStore, jwtSecret string) *UserController {
	return &UserController{Store: store, JWTSecret: jwtSecret}
}

// GetUsers handles GET /users. PasswordHash is never serialized.
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	users, err := ctrl.Store.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal Server Error"})
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// GetUser handles GET /users/:id
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user ID"})
	}

	user, err := ctrl.Store.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "The user with the given ID was not found."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal Server Error"})
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// CreateUser handles POST /users and Register handles POST /users/register;
// both create an account from the submitted profile and plaintext password.
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to parse request body"})
	}

	if user.Password == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Password is required")
	}

	if _, err := ctrl.Store.GetByEmail(user.Email); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already exists"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}
	user.PasswordHash = string(hashedPassword)
	user.Password = ""

	if err := ctrl.Store.Create(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("the user cannot be created!")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Register handles POST /users/register
func (ctrl *UserController) Register(c *fiber.Ctx) error {
	return ctrl.CreateUser(c)
}

// UpdateUser handles PUT /users/:id. The password is re-hashed only when a
// new plaintext is supplied; otherwise the stored hash is kept as is.
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user ID"})
	}

	var upd models.UserUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to parse request body"})
	}

	existing, err := ctrl.Store.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "The user with the given ID was not found."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Internal Server Error"})
	}

	passwordHash := existing.PasswordHash
	if upd.Password != nil && *upd.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
		}
		passwordHash = string(hashed)
	}

	user, err := ctrl.Store.Update(uint(id), upd, passwordHash)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("the user cannot be updated!")
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// DeleteUser handles DELETE /users/:id
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user ID"})
	}

	if err := ctrl.Store.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "user not found!"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "the user is deleted!"})
}

// Login handles POST /users/login. A wrong email or password is a 400, not
// a 401; unauthorized is reserved for the route middleware.
func (ctrl *UserController) Login(c *fiber.Ctx) error {
	var data struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to parse request body"})
	}

	user, err := ctrl.Store.GetByEmail(data.Email)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("The user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(data.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Password is wrong!")
	}

	token, err := util.CreateAccessToken(user, ctrl.JWTSecret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": user.Email, "token": token})
}

// GetUserCount handles GET /users/get/count
func (ctrl *UserController) GetUserCount(c *fiber.Ctx) error {
	count, err := ctrl.Store.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"userCount": count})
}
