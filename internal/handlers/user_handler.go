package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/retocart/server/internal/models"
	"github.com/retocart/server/internal/services"
)

const userExistsMessage = "user already exists"

type UserHandler struct {
	Users *services.UserService
}

type saveUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"max=100"`
	PhotoURL string `json:"photoURL" validate:"omitempty,url"`
	UserType string `json:"userType" validate:"required,oneof=seller buyer"`
}

func (h *UserHandler) Save(c *fiber.Ctx) error {
	var req saveUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	res, err := h.Users.Save(c.UserContext(), &models.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		UserType: req.UserType,
	})
	if err != nil {
		return err
	}
	if !res.Created {
		return c.JSON(fiber.Map{"message": userExistsMessage})
	}
	return c.JSON(res.Ack)
}

// Get responds with the user or JSON null.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	u, err := h.Users.Get(c.UserContext(), c.Query("email"))
	if err != nil {
		return err
	}
	if u == nil {
		return c.Type("json").SendString("null")
	}
	return c.JSON(u)
}

func (h *UserHandler) Sellers(c *fiber.Ctx) error {
	sellers, err := h.Users.Sellers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(sellers)
}
