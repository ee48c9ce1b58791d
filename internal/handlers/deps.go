package handlers

import (
	"github.com/retocart/server/internal/services"
)

type Services struct {
	Categories *services.CategoryService
	Products   *services.ProductService
	Users      *services.UserService
	Auth       *services.AuthService
	Images     *services.ImageService
}

type Deps struct {
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	UserHandler     *UserHandler
	AuthHandler     *AuthHandler
	ImageHandler    *ImageHandler
}

func NewDeps(svc Services) *Deps {
	return &Deps{
		CategoryHandler: &CategoryHandler{Categories: svc.Categories},
		ProductHandler:  &ProductHandler{Products: svc.Products},
		UserHandler:     &UserHandler{Users: svc.Users},
		AuthHandler:     &AuthHandler{Auth: svc.Auth},
		ImageHandler:    &ImageHandler{Images: svc.Images},
	}
}
