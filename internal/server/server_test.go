package server

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/retocart/server/internal/handlers"
	"github.com/retocart/server/internal/services"
	"github.com/retocart/server/internal/store"
	"github.com/retocart/server/internal/store/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type testEnv struct {
	app   *fiber.App
	store *store.Store
	auth  *services.AuthService
}

type fakeImages struct{}

func (fakeImages) Put(_ context.Context, name, _ string, r io.Reader, _ int64) (string, error) {
	_, err := io.Copy(io.Discard, r)
	return "http://minio.local/product-images/" + name, err
}

func newTestEnv(t *testing.T, objects services.ObjectStore) *testEnv {
	t.Helper()
	st := memstore.New()
	log := zap.NewNop()
	auth := services.NewAuthService(st.Users, "test-secret", time.Hour)
	deps := handlers.NewDeps(handlers.Services{
		Categories: services.NewCategoryService(st.Categories, st.Products),
		Products:   services.NewProductService(st.Products, st.Joiner, nil, log),
		Users:      services.NewUserService(st.Users),
		Auth:       auth,
		Images:     services.NewImageService(objects),
	})
	app := New(deps, Options{Log: log, Tokens: auth})
	return &testEnv{app: app, store: st, auth: auth}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers ...string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

type insertAck struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

func (e *testEnv) createCategory(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	resp, raw := e.do(t, fiber.MethodPost, "/categories", body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	return decode[insertAck](t, raw).InsertedID
}

func productBody(name, category string) map[string]interface{} {
	return map[string]interface{}{
		"name":          name,
		"resalePrice":   120,
		"originalPrice": 300,
		"imgUrl":        "https://img.example.com/a.png",
		"condition":     "good",
		"sellerContact": "+8801000000",
		"location":      "Dhaka",
		"category":      category,
		"description":   "barely used",
		"createdBy":     "seller@x.com",
	}
}

func (e *testEnv) createProduct(t *testing.T, name, category string) string {
	t.Helper()
	resp, raw := e.do(t, fiber.MethodPost, "/products", productBody(name, category))
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	return decode[insertAck](t, raw).InsertedID
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t, nil)
	resp, raw := env.do(t, fiber.MethodGet, "/", nil, fiber.HeaderOrigin, "http://localhost:3000")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, healthMessage, string(raw))
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t, nil)

	for _, method := range []string{fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			resp, _ := env.do(t, fiber.MethodOptions, "/products/65f000000000000000000001", nil,
				fiber.HeaderOrigin, "http://localhost:3000",
				fiber.HeaderAccessControlRequestMethod, method,
			)
			assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
			assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
			assert.Contains(t, resp.Header.Get(fiber.HeaderAccessControlAllowMethods), method)
		})
	}
}

func TestCategoryPublishScenario(t *testing.T) {
	env := newTestEnv(t, nil)

	catID := env.createCategory(t, map[string]interface{}{"name": "Phones"})
	prodID := env.createProduct(t, "Phone A", catID)

	resp, raw := env.do(t, fiber.MethodGet, "/category-products/"+catID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	page := decode[map[string]interface{}](t, raw)
	category := page["category"].(map[string]interface{})
	assert.Equal(t, catID, category["_id"])
	assert.Equal(t, []interface{}{}, page["products"])

	resp, raw = env.do(t, fiber.MethodPost, "/update-advertise-status/"+prodID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	ack := decode[map[string]interface{}](t, raw)
	assert.EqualValues(t, 1, ack["matchedCount"])
	assert.EqualValues(t, 1, ack["modifiedCount"])

	resp, raw = env.do(t, fiber.MethodGet, "/products", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	products := decode[[]map[string]interface{}](t, raw)
	require.Len(t, products, 1)
	assert.Equal(t, prodID, products[0]["_id"])
	assert.Equal(t, "published", products[0]["advertiseStatus"])
	joined := products[0]["categoryInfo"].([]interface{})
	require.Len(t, joined, 1)
	assert.Equal(t, "Phones", joined[0].(map[string]interface{})["name"])

	_, raw = env.do(t, fiber.MethodGet, "/category-products/"+catID, nil)
	page = decode[map[string]interface{}](t, raw)
	assert.Len(t, page["products"], 1)
}

func TestCategoryProductsUnknownAndInvalidID(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, raw := env.do(t, fiber.MethodGet, "/category-products/65f000000000000000000001", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"category":null,"products":[]}`, string(raw))

	resp, raw = env.do(t, fiber.MethodGet, "/category-products/not-an-id", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"message":"invalid id"}`, string(raw))
}

func TestCreateCategoryStoresEveryFieldAndStampsCreatedAt(t *testing.T) {
	env := newTestEnv(t, nil)
	before := time.Now()

	id := env.createCategory(t, map[string]interface{}{"name": "Laptops", "icon": "laptop.svg", "order": 2})

	resp, raw := env.do(t, fiber.MethodGet, "/categories", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cats := decode[[]map[string]interface{}](t, raw)
	require.Len(t, cats, 1)
	assert.Equal(t, id, cats[0]["_id"])
	assert.Equal(t, "Laptops", cats[0]["name"])
	assert.Equal(t, "laptop.svg", cats[0]["icon"])
	assert.EqualValues(t, 2, cats[0]["order"])
	createdAt, err := time.Parse(time.RFC3339Nano, cats[0]["createdAt"].(string))
	require.NoError(t, err)
	assert.False(t, createdAt.Before(before.Truncate(time.Second)))
}

func TestCreateCategoryValidation(t *testing.T) {
	env := newTestEnv(t, nil)

	cases := []struct {
		name string
		body interface{}
	}{
		{"missing name", map[string]interface{}{"icon": "x"}},
		{"blank name", map[string]interface{}{"name": "  "}},
		{"non-string name", map[string]interface{}{"name": 5}},
		{"caller createdAt", map[string]interface{}{"name": "x", "createdAt": "2020-01-01"}},
		{"not an object", `["Phones"]`},
		{"malformed", `{"name":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, _ := env.do(t, fiber.MethodPost, "/categories", tc.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}

	_, raw := env.do(t, fiber.MethodGet, "/categories", nil)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestListCategoriesNewestFirst(t *testing.T) {
	env := newTestEnv(t, nil)
	for _, name := range []string{"A", "B", "C"} {
		env.createCategory(t, map[string]interface{}{"name": name})
	}

	_, raw := env.do(t, fiber.MethodGet, "/categories", nil)
	cats := decode[[]map[string]interface{}](t, raw)
	require.Len(t, cats, 3)
	assert.Equal(t, "C", cats[0]["name"])
	assert.Equal(t, "A", cats[2]["name"])
}

func TestCreateProductWhitelistAndDefaults(t *testing.T) {
	env := newTestEnv(t, nil)
	catID := env.createCategory(t, map[string]interface{}{"name": "Phones"})

	withStatus := productBody("Phone A", catID)
	withStatus["advertiseStatus"] = "published"
	resp, raw := env.do(t, fiber.MethodPost, "/products", withStatus)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, string(raw))

	withExtra := productBody("Phone A", catID)
	withExtra["isAdmin"] = true
	resp, _ = env.do(t, fiber.MethodPost, "/products", withExtra)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	all, err := env.store.Products.Find(context.Background(), store.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)

	id := env.createProduct(t, "Phone A", catID)
	all, err = env.store.Products.Find(context.Background(), store.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	p := all[0]
	assert.Equal(t, id, p.ID.Hex())
	assert.Equal(t, catID, p.Category.Hex())
	assert.Equal(t, "not published", p.AdvertiseStatus)
	assert.Equal(t, "not sold", p.SaleStatus)
	assert.Equal(t, 120.0, p.ResalePrice)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t, nil)
	catID := env.createCategory(t, map[string]interface{}{"name": "Phones"})

	badCategory := productBody("Phone A", "phones")
	resp, raw := env.do(t, fiber.MethodPost, "/products", badCategory)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "category failed mongodb")

	noName := productBody("", catID)
	resp, raw = env.do(t, fiber.MethodPost, "/products", noName)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "name failed required")

	negative := productBody("Phone A", catID)
	negative["resalePrice"] = -1
	resp, _ = env.do(t, fiber.MethodPost, "/products", negative)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	env := newTestEnv(t, nil)
	catID := env.createCategory(t, map[string]interface{}{"name": "Phones"})
	otherCat := env.createCategory(t, map[string]interface{}{"name": "Tablets"})
	id := env.createProduct(t, "Phone A", catID)

	resp, raw := env.do(t, fiber.MethodPatch, "/products/"+id, map[string]interface{}{
		"saleStatus": "sold", "resalePrice": 99.5, "category": otherCat,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	assert.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1,"upsertedCount":0,"upsertedId":null}`, string(raw))

	p, err := env.store.Products.FindByID(context.Background(), mustID(t, id))
	require.NoError(t, err)
	assert.Equal(t, "sold", p.SaleStatus)
	assert.Equal(t, 99.5, p.ResalePrice)
	assert.Equal(t, otherCat, p.Category.Hex())
	assert.Equal(t, "Phone A", p.Name)

	resp, _ = env.do(t, fiber.MethodPatch, "/products/"+id, map[string]interface{}{"saleStatus": "gone"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp, _ = env.do(t, fiber.MethodPatch, "/products/"+id, map[string]interface{}{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, raw = env.do(t, fiber.MethodDelete, "/products/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, string(raw))

	resp, raw = env.do(t, fiber.MethodDelete, "/products/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":0}`, string(raw))

	resp, raw = env.do(t, fiber.MethodPost, "/update-advertise-status/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), decode[map[string]interface{}](t, raw)["matchedCount"])
}

func TestProductDetails(t *testing.T) {
	env := newTestEnv(t, nil)
	resp, _ := env.do(t, fiber.MethodPut, "/save-user", map[string]interface{}{"email": "seller@x.com", "userType": "seller"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	catID := env.createCategory(t, map[string]interface{}{"name": "Phones"})
	id := env.createProduct(t, "Phone A", catID)

	resp, raw := env.do(t, fiber.MethodGet, "/product-details/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	views := decode[[]map[string]interface{}](t, raw)
	require.Len(t, views, 1)
	assert.Equal(t, "Phone A", views[0]["name"])
	assert.Len(t, views[0]["categoryInfo"], 1)
	seller := views[0]["seller"].([]interface{})
	require.Len(t, seller, 1)
	assert.Equal(t, "seller@x.com", seller[0].(map[string]interface{})["email"])

	resp, raw = env.do(t, fiber.MethodGet, "/product-details/65f000000000000000000001", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestProductDetailsWithoutSellerDocument(t *testing.T) {
	env := newTestEnv(t, nil)
	catID := env.createCategory(t, map[string]interface{}{"name": "Phones"})
	id := env.createProduct(t, "Phone A", catID)

	resp, raw := env.do(t, fiber.MethodGet, "/product-details/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	views := decode[[]map[string]interface{}](t, raw)
	require.Len(t, views, 1)
	seller, ok := views[0]["seller"]
	require.True(t, ok, string(raw))
	assert.Equal(t, []interface{}{}, seller)

	env.do(t, fiber.MethodPost, "/update-advertise-status/"+id, nil)
	_, raw = env.do(t, fiber.MethodGet, "/products", nil)
	listed := decode[[]map[string]interface{}](t, raw)
	require.Len(t, listed, 1)
	assert.NotContains(t, listed[0], "seller")
}

func TestRecentProductsPrefixOfProducts(t *testing.T) {
	env := newTestEnv(t, nil)
	catID := env.createCategory(t, map[string]interface{}{"name": "Phones"})
	for i := 0; i < 6; i++ {
		id := env.createProduct(t, "Phone", catID)
		env.do(t, fiber.MethodPost, "/update-advertise-status/"+id, nil)
	}
	env.createProduct(t, "Unpublished", catID)

	_, raw := env.do(t, fiber.MethodGet, "/products", nil)
	all := decode[[]map[string]interface{}](t, raw)
	_, raw = env.do(t, fiber.MethodGet, "/recent-products", nil)
	recent := decode[[]map[string]interface{}](t, raw)

	require.Len(t, all, 6)
	require.Len(t, recent, 4)
	for i := range recent {
		assert.Equal(t, all[i]["_id"], recent[i]["_id"])
	}
	for i := 1; i < len(all); i++ {
		prev, err := time.Parse(time.RFC3339Nano, all[i-1]["createdAt"].(string))
		require.NoError(t, err)
		next, err := time.Parse(time.RFC3339Nano, all[i]["createdAt"].(string))
		require.NoError(t, err)
		assert.False(t, prev.Before(next))
	}
}

func TestMyProducts(t *testing.T) {
	env := newTestEnv(t, nil)
	for _, email := range []string{"a@x.com", "b@x.com"} {
		resp, _ := env.do(t, fiber.MethodPut, "/save-user", map[string]interface{}{"email": email, "userType": "seller"})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	catID := env.createCategory(t, map[string]interface{}{"name": "Phones"})
	owned := productBody("B's phone", catID)
	owned["createdBy"] = "b@x.com"
	resp, _ := env.do(t, fiber.MethodPost, "/products", owned)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	tokenA, err := env.auth.GenerateJWT("a@x.com")
	require.NoError(t, err)
	tokenB, err := env.auth.GenerateJWT("b@x.com")
	require.NoError(t, err)

	resp, raw := env.do(t, fiber.MethodGet, "/my-products?email=b@x.com", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Unauthorized Access"}`, string(raw))

	resp, raw = env.do(t, fiber.MethodGet, "/my-products?email=b@x.com", nil, fiber.HeaderAuthorization, "Bearer "+tokenA)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NotContains(t, string(raw), "B's phone")

	resp, raw = env.do(t, fiber.MethodGet, "/my-products", nil, fiber.HeaderAuthorization, "Bearer "+tokenA)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.JSONEq(t, `{"message":"could not find products"}`, string(raw))

	resp, raw = env.do(t, fiber.MethodGet, "/my-products?email=b@x.com", nil, fiber.HeaderAuthorization, "Bearer "+tokenB)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	mine := decode[[]map[string]interface{}](t, raw)
	require.Len(t, mine, 1)
	assert.Equal(t, "B's phone", mine[0]["name"])
}

func TestIssueToken(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, raw := env.do(t, fiber.MethodGet, "/jwt?email=ghost@x.com", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message":"User not found!"}`, string(raw))
	assert.NotContains(t, string(raw), "accessToken")

	resp, _ = env.do(t, fiber.MethodPut, "/save-user", map[string]interface{}{"email": "a@x.com", "userType": "buyer"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, raw = env.do(t, fiber.MethodGet, "/jwt?email=a@x.com", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token := decode[map[string]string](t, raw)["accessToken"]
	claims, err := env.auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestSaveUserIdempotent(t *testing.T) {
	env := newTestEnv(t, nil)
	body := map[string]interface{}{"email": "a@x.com", "name": "Alice", "userType": "seller"}

	resp, raw := env.do(t, fiber.MethodPut, "/save-user", body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, decode[insertAck](t, raw).Acknowledged)

	body["name"] = "Changed"
	resp, raw = env.do(t, fiber.MethodPut, "/save-user", body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"user already exists"}`, string(raw))

	resp, raw = env.do(t, fiber.MethodGet, "/user?email=a@x.com", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	u := decode[map[string]interface{}](t, raw)
	assert.Equal(t, "Alice", u["name"])
	assert.Equal(t, false, u["verified"])

	sellers, err := env.store.Users.FindByType(context.Background(), "seller")
	require.NoError(t, err)
	assert.Len(t, sellers, 1)
}

func TestSaveUserValidation(t *testing.T) {
	env := newTestEnv(t, nil)

	for _, body := range []map[string]interface{}{
		{"email": "not-an-email", "userType": "seller"},
		{"email": "a@x.com", "userType": "admin"},
		{"email": "a@x.com", "userType": "seller", "verified": true},
	} {
		resp, _ := env.do(t, fiber.MethodPut, "/save-user", body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, body)
	}
}

func TestGetUserAndSellers(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, raw := env.do(t, fiber.MethodGet, "/user?email=ghost@x.com", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "null", string(raw))

	env.do(t, fiber.MethodPut, "/save-user", map[string]interface{}{"email": "s@x.com", "userType": "seller"})
	env.do(t, fiber.MethodPut, "/save-user", map[string]interface{}{"email": "b@x.com", "userType": "buyer"})

	resp, raw = env.do(t, fiber.MethodGet, "/sellers", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	sellers := decode[[]map[string]interface{}](t, raw)
	require.Len(t, sellers, 1)
	assert.Equal(t, "s@x.com", sellers[0]["email"])
}

func uploadRequest(t *testing.T, filename, contentType string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="image"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/upload-image", body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestUploadImage(t *testing.T) {
	env := newTestEnv(t, fakeImages{})

	resp, err := env.app.Test(uploadRequest(t, "phone.jpg", "image/jpeg"), -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	url := decode[map[string]string](t, raw)["imgUrl"]
	assert.True(t, strings.HasPrefix(url, "http://minio.local/product-images/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	resp, err = env.app.Test(uploadRequest(t, "notes.txt", "text/plain"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadImageDisabled(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, err := env.app.Test(uploadRequest(t, "phone.jpg", "image/jpeg"), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func mustID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}
