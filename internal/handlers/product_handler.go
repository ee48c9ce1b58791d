package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/retocart/server/internal/apperr"
	"github.com/retocart/server/internal/middleware"
	"github.com/retocart/server/internal/models"
	"github.com/retocart/server/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductHandler struct {
	Products *services.ProductService
}

type createProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	ResalePrice   float64 `json:"resalePrice" validate:"gte=0"`
	OriginalPrice float64 `json:"originalPrice" validate:"gte=0"`
	ImgURL        string  `json:"imgUrl" validate:"omitempty,url"`
	Condition     string  `json:"condition"`
	SellerContact string  `json:"sellerContact"`
	Location      string  `json:"location"`
	Category      string  `json:"category" validate:"required,mongodb"`
	Description   string  `json:"description"`
	CreatedBy     string  `json:"createdBy" validate:"required,email"`
}

func (r createProductRequest) product() *models.Product {
	category, _ := primitive.ObjectIDFromHex(r.Category)
	return &models.Product{
		Name:          r.Name,
		ResalePrice:   r.ResalePrice,
		OriginalPrice: r.OriginalPrice,
		ImgURL:        r.ImgURL,
		Condition:     r.Condition,
		SellerContact: r.SellerContact,
		Location:      r.Location,
		Category:      category,
		Description:   r.Description,
		CreatedBy:     r.CreatedBy,
	}
}

// updateProductRequest sets only the fields present in the body.
type updateProductRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=1"`
	ResalePrice     *float64 `json:"resalePrice" validate:"omitempty,gte=0"`
	OriginalPrice   *float64 `json:"originalPrice" validate:"omitempty,gte=0"`
	ImgURL          *string  `json:"imgUrl" validate:"omitempty,url"`
	Condition       *string  `json:"condition"`
	SellerContact   *string  `json:"sellerContact"`
	Location        *string  `json:"location"`
	Category        *string  `json:"category" validate:"omitempty,mongodb"`
	Description     *string  `json:"description"`
	CreatedBy       *string  `json:"createdBy" validate:"omitempty,email"`
	AdvertiseStatus *string  `json:"advertiseStatus" validate:"omitempty,oneof='not published' 'published'"`
	SaleStatus      *string  `json:"saleStatus" validate:"omitempty,oneof='not sold' 'sold'"`
}

func (r updateProductRequest) set() map[string]interface{} {
	set := map[string]interface{}{}
	put := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	put("name", r.Name)
	put("imgUrl", r.ImgURL)
	put("condition", r.Condition)
	put("sellerContact", r.SellerContact)
	put("location", r.Location)
	put("description", r.Description)
	put("createdBy", r.CreatedBy)
	put("advertiseStatus", r.AdvertiseStatus)
	put("saleStatus", r.SaleStatus)
	if r.ResalePrice != nil {
		set["resalePrice"] = *r.ResalePrice
	}
	if r.OriginalPrice != nil {
		set["originalPrice"] = *r.OriginalPrice
	}
	if r.Category != nil {
		id, _ := primitive.ObjectIDFromHex(*r.Category)
		set["category"] = id
	}
	return set
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req createProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	ack, err := h.Products.Create(c.UserContext(), req.product())
	if err != nil {
		return err
	}
	return c.JSON(ack)
}

func (h *ProductHandler) Publish(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	ack, err := h.Products.Publish(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(ack)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	var req updateProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	set := req.set()
	if len(set) == 0 {
		return apperr.BadRequest("no fields to update")
	}

	ack, err := h.Products.Update(c.UserContext(), id, set)
	if err != nil {
		return err
	}
	return c.JSON(ack)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	ack, err := h.Products.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(ack)
}

func (h *ProductHandler) Details(c *fiber.Ctx) error {
	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}
	views, err := h.Products.Details(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(views)
}

// MyProducts lists products created by the caller. The query email must
// match the token subject.
func (h *ProductHandler) MyProducts(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return apperr.ErrMissingEmail
	}
	claims, ok := middleware.ClaimsFrom(c)
	if !ok || claims.Email != email {
		return apperr.ErrForbidden
	}

	products, err := h.Products.ByCreator(c.UserContext(), email)
	if err != nil {
		return err
	}
	return c.JSON(products)
}

func (h *ProductHandler) Published(c *fiber.Ctx) error {
	views, err := h.Products.Published(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(views)
}

func (h *ProductHandler) Recent(c *fiber.Ctx) error {
	views, err := h.Products.Recent(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(views)
}
