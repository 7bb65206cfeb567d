// Package devserver is a local stand-in for the remote commerce platform.
// It implements the same HTTP surface the storefront consumes (auth for both
// identity kinds, cart, quotes, catalog) over sqlite, so the app can run and
// be tested end-to-end without external services.
package devserver

import (
	"database/sql"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"tacgear/internal/domain"
	"tacgear/internal/validate"
)

type Server struct {
	db  *sqlx.DB
	app *fiber.App
}

func New(db *sqlx.DB) *Server {
	s := &Server{db: db, app: fiber.New(fiber.Config{DisableStartupMessage: true})}
	s.routes()
	return s
}

// Do lets the server act as the api.Doer transport in tests: requests are
// dispatched in-process without a listener.
func (s *Server) Do(req *http.Request) (*http.Response, error) {
	return s.app.Test(req)
}

func (s *Server) Listen(addr string) error { return s.app.Listen(addr) }

func (s *Server) routes() {
	api := s.app.Group("/api")

	api.Post("/users/login", s.loginUser)
	api.Post("/users/register", s.registerUser)
	api.Get("/users/profile", s.userProfile)

	api.Post("/dealers/login", s.loginDealer)
	api.Post("/dealers/register", s.registerDealer)
	api.Get("/dealers/profile", s.dealerProfile)

	api.Get("/cart", s.getCart)
	api.Post("/cart/add", s.addCartItem)
	api.Delete("/cart/item/:id", s.removeCartItem)

	api.Post("/quotes", s.createQuote)
	api.Get("/quotes", s.listQuotes)

	// /products/featured and /products/deals must outrank /products/:id
	api.Get("/products/featured", s.featured)
	api.Get("/products/deals", s.deals)
	api.Get("/products/:id", s.product)
	api.Get("/products", s.products)
	api.Get("/categories", s.categories)
	api.Get("/brands", s.brands)
}

func errJSON(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(fiber.Map{"error": msg})
}

// bearerAccount resolves the Authorization header to an account id for the
// given kind, or "" when the token is absent or unknown.
func (s *Server) bearerAccount(c *fiber.Ctx, kind string) string {
	h := c.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	token := strings.TrimPrefix(h, "Bearer ")
	var id string
	if err := s.db.Get(&id, `SELECT account_id FROM tokens WHERE token = ? AND kind = ?`, token, kind); err != nil {
		return ""
	}
	return id
}

func (s *Server) issueToken(kind, accountID string) (string, error) {
	token := uuid.NewString()
	_, err := s.db.Exec(`INSERT INTO tokens(token, kind, account_id) VALUES(?,?,?)`, token, kind, accountID)
	return token, err
}

// ---------- auth: users ----------

type credsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) loginUser(c *fiber.Ctx) error {
	var body credsBody
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "malformed request body")
	}
	var row struct {
		ID    string `db:"id"`
		Email string `db:"email"`
		Name  string `db:"name"`
		Hash  string `db:"password_hash"`
	}
	err := s.db.Get(&row, `SELECT id,email,name,password_hash FROM users WHERE LOWER(email)=LOWER(?)`, body.Email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(row.Hash), []byte(body.Password)) != nil {
		return errJSON(c, fiber.StatusUnauthorized, "invalid email or password")
	}
	token, err := s.issueToken("user", row.ID)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not issue token")
	}
	return c.JSON(fiber.Map{
		"token":   token,
		"profile": domain.Profile{ID: row.ID, Email: row.Email, Name: row.Name},
	})
}

type registerUserBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (s *Server) registerUser(c *fiber.Ctx) error {
	var body registerUserBody
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "malformed request body")
	}
	email, ok := validate.Email(body.Email)
	if !ok {
		return errJSON(c, fiber.StatusBadRequest, "invalid email")
	}
	if !validate.Password(body.Password) {
		return errJSON(c, fiber.StatusBadRequest, "password must be 8-64 chars with upper, lower and digit")
	}
	name, ok := validate.Name(body.Name)
	if !ok {
		return errJSON(c, fiber.StatusBadRequest, "name is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), 12)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not create account")
	}
	id := "u-" + uuid.NewString()
	if _, err := s.db.Exec(`INSERT INTO users(id,email,name,password_hash) VALUES(?,?,?,?)`,
		id, email, name, string(hash)); err != nil {
		return errJSON(c, fiber.StatusConflict, "email already registered")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

func (s *Server) userProfile(c *fiber.Ctx) error {
	uid := s.bearerAccount(c, "user")
	if uid == "" {
		return errJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	var p domain.Profile
	if err := s.db.Get(&p, `SELECT id,email,name FROM users WHERE id=?`, uid); err != nil {
		return errJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	return c.JSON(p)
}

// ---------- auth: dealers ----------

func (s *Server) loginDealer(c *fiber.Ctx) error {
	var body credsBody
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "malformed request body")
	}
	var row struct {
		ID     string `db:"id"`
		Hash   string `db:"password_hash"`
		Status string `db:"status"`
	}
	err := s.db.Get(&row, `SELECT id,password_hash,status FROM dealers WHERE LOWER(email)=LOWER(?)`, body.Email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(row.Hash), []byte(body.Password)) != nil {
		return errJSON(c, fiber.StatusUnauthorized, "invalid email or password")
	}
	if row.Status != "APPROVED" {
		return errJSON(c, fiber.StatusBadRequest, "dealer account pending approval")
	}
	token, err := s.issueToken("dealer", row.ID)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not issue token")
	}
	profile, err := s.dealerByID(row.ID)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not load profile")
	}
	return c.JSON(fiber.Map{"token": token, "profile": profile})
}

func (s *Server) dealerByID(id string) (domain.DealerProfile, error) {
	var row struct {
		ID          string         `db:"id"`
		Email       string         `db:"email"`
		CompanyName string         `db:"company_name"`
		ContactName string         `db:"contact_name"`
		Phone       sql.NullString `db:"phone"`
		Status      string         `db:"status"`
	}
	err := s.db.Get(&row, `SELECT id,email,company_name,contact_name,phone,status FROM dealers WHERE id=?`, id)
	if err != nil {
		return domain.DealerProfile{}, err
	}
	return domain.DealerProfile{
		ID:          row.ID,
		Email:       row.Email,
		CompanyName: row.CompanyName,
		ContactName: row.ContactName,
		Phone:       row.Phone.String,
		Status:      row.Status,
	}, nil
}

type registerDealerBody struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
}

func (s *Server) registerDealer(c *fiber.Ctx) error {
	var body registerDealerBody
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "malformed request body")
	}
	email, ok := validate.Email(body.Email)
	if !ok {
		return errJSON(c, fiber.StatusBadRequest, "invalid email")
	}
	if !validate.Password(body.Password) {
		return errJSON(c, fiber.StatusBadRequest, "password must be 8-64 chars with upper, lower and digit")
	}
	company, ok := validate.Name(body.CompanyName)
	if !ok {
		return errJSON(c, fiber.StatusBadRequest, "company name is required")
	}
	contact, ok := validate.Name(body.ContactName)
	if !ok {
		return errJSON(c, fiber.StatusBadRequest, "contact name is required")
	}
	if body.Phone != "" {
		if _, ok := validate.Phone(body.Phone); !ok {
			return errJSON(c, fiber.StatusBadRequest, "invalid phone number")
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), 12)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not create account")
	}
	id := "d-" + uuid.NewString()
	if _, err := s.db.Exec(`INSERT INTO dealers(id,email,company_name,contact_name,phone,password_hash,status)
		VALUES(?,?,?,?,?,?, 'PENDING')`, id, email, company, contact, body.Phone, string(hash)); err != nil {
		return errJSON(c, fiber.StatusConflict, "email already registered")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "status": "PENDING"})
}

func (s *Server) dealerProfile(c *fiber.Ctx) error {
	did := s.bearerAccount(c, "dealer")
	if did == "" {
		return errJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	profile, err := s.dealerByID(did)
	if err != nil {
		return errJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	return c.JSON(profile)
}

// ---------- cart ----------

const volumeDiscountThreshold = 1000.0

// cartFor computes the authoritative cart. Orders over the volume threshold
// get 5% off the total — the kind of server-side pricing rule that makes
// client-side totals untrustworthy.
func (s *Server) cartFor(userID string) (domain.Cart, error) {
	type row struct {
		ProductID string         `db:"product_id"`
		Name      string         `db:"name_at_add"`
		ImageURL  sql.NullString `db:"image_at_add"`
		Qty       int            `db:"qty"`
		Price     float64        `db:"price_at_add"`
	}
	var rows []row
	if err := s.db.Select(&rows, `
		SELECT product_id, name_at_add, image_at_add, qty, price_at_add
		FROM cart_items WHERE user_id = ? ORDER BY created_at, product_id
	`, userID); err != nil {
		return domain.Cart{}, err
	}
	cart := domain.Cart{Items: make([]domain.CartItem, 0, len(rows))}
	subtotal := 0.0
	for _, r := range rows {
		line := round2(float64(r.Qty) * r.Price)
		subtotal += line
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: r.ProductID,
			Name:      r.Name,
			ImageURL:  r.ImageURL.String,
			Quantity:  r.Qty,
			UnitPrice: r.Price,
			LineTotal: line,
		})
	}
	cart.Total = round2(subtotal)
	if subtotal >= volumeDiscountThreshold {
		cart.Total = round2(subtotal * 0.95)
	}
	return cart, nil
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }

func (s *Server) getCart(c *fiber.Ctx) error {
	uid := s.bearerAccount(c, "user")
	if uid == "" {
		return errJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	cart, err := s.cartFor(uid)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not load cart")
	}
	return c.JSON(cart)
}

type addItemBody struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) addCartItem(c *fiber.Ctx) error {
	uid := s.bearerAccount(c, "user")
	if uid == "" {
		return errJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	var body addItemBody
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "malformed request body")
	}
	if body.ProductID == "" {
		return errJSON(c, fiber.StatusBadRequest, "product_id is required")
	}
	if body.Quantity < 1 {
		body.Quantity = 1
	}
	var p struct {
		Name     string         `db:"name"`
		Price    float64        `db:"price"`
		ImageURL sql.NullString `db:"image_url"`
	}
	if err := s.db.Get(&p, `SELECT name, price, image_url FROM products WHERE id=?`, body.ProductID); err != nil {
		return errJSON(c, fiber.StatusNotFound, "unknown product")
	}
	_, err := s.db.Exec(`
		INSERT INTO cart_items(user_id, product_id, qty, price_at_add, name_at_add, image_at_add, created_at)
		VALUES(?,?,?,?,?,?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id, product_id) DO UPDATE
		SET qty = cart_items.qty + excluded.qty, updated_at = CURRENT_TIMESTAMP
	`, uid, body.ProductID, body.Quantity, p.Price, p.Name, p.ImageURL.String)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not update cart")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (s *Server) removeCartItem(c *fiber.Ctx) error {
	uid := s.bearerAccount(c, "user")
	if uid == "" {
		return errJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	if _, err := s.db.Exec(`DELETE FROM cart_items WHERE user_id=? AND product_id=?`, uid, c.Params("id")); err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not update cart")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ---------- quotes ----------

func (s *Server) createQuote(c *fiber.Ctx) error {
	uid := s.bearerAccount(c, "user")
	if uid == "" {
		return errJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	var req struct {
		Items                  []domain.QuoteItem `json:"items"`
		ProjectName            string             `json:"project_name"`
		IntendedUse            string             `json:"intended_use"`
		DeliveryDate           string             `json:"delivery_date"`
		DeliveryAddress        string             `json:"delivery_address"`
		BillingAddress         string             `json:"billing_address"`
		CompanySize            string             `json:"company_size"`
		BudgetRange            string             `json:"budget_range"`
		AdditionalRequirements string             `json:"additional_requirements"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "malformed request body")
	}
	if len(req.Items) == 0 {
		return errJSON(c, fiber.StatusBadRequest, "quote needs at least one item")
	}
	if req.ProjectName == "" || req.IntendedUse == "" || req.DeliveryAddress == "" || req.BillingAddress == "" {
		return errJSON(c, fiber.StatusBadRequest, "missing required quote fields")
	}

	id := "q-" + uuid.NewString()
	tx, err := s.db.Beginx()
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not save quote")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO quotes(id,user_id,status,project_name,intended_use,delivery_date,delivery_address,
		                   billing_address,company_size,budget_range,additional_requirements)
		VALUES(?,?,'PENDING',?,?,?,?,?,?,?,?)
	`, id, uid, req.ProjectName, req.IntendedUse, req.DeliveryDate, req.DeliveryAddress,
		req.BillingAddress, req.CompanySize, req.BudgetRange, req.AdditionalRequirements); err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not save quote")
	}
	for _, it := range req.Items {
		if _, err := tx.Exec(`INSERT INTO quote_items(quote_id,product_id,name,qty,unit_price) VALUES(?,?,?,?,?)`,
			id, it.ProductID, it.Name, it.Quantity, it.UnitPrice); err != nil {
			return errJSON(c, fiber.StatusInternalServerError, "could not save quote")
		}
	}
	if err := tx.Commit(); err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not save quote")
	}

	q, err := s.quoteByID(id)
	if err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not load quote")
	}
	return c.Status(fiber.StatusCreated).JSON(q)
}

type quoteRow struct {
	ID                     string         `db:"id"`
	Status                 string         `db:"status"`
	ProjectName            string         `db:"project_name"`
	IntendedUse            string         `db:"intended_use"`
	DeliveryDate           sql.NullString `db:"delivery_date"`
	DeliveryAddress        string         `db:"delivery_address"`
	BillingAddress         string         `db:"billing_address"`
	CompanySize            sql.NullString `db:"company_size"`
	BudgetRange            sql.NullString `db:"budget_range"`
	AdditionalRequirements sql.NullString `db:"additional_requirements"`
	CreatedAt              string         `db:"created_at"`
}

func (r quoteRow) toDomain(items []domain.QuoteItem) domain.Quote {
	return domain.Quote{
		ID:                     r.ID,
		Status:                 r.Status,
		Items:                  items,
		ProjectName:            r.ProjectName,
		IntendedUse:            r.IntendedUse,
		DeliveryDate:           r.DeliveryDate.String,
		DeliveryAddress:        r.DeliveryAddress,
		BillingAddress:         r.BillingAddress,
		CompanySize:            r.CompanySize.String,
		BudgetRange:            r.BudgetRange.String,
		AdditionalRequirements: r.AdditionalRequirements.String,
		CreatedAt:              r.CreatedAt,
	}
}

func (s *Server) quoteItems(quoteID string) ([]domain.QuoteItem, error) {
	type itemRow struct {
		ProductID string  `db:"product_id"`
		Name      string  `db:"name"`
		Qty       int     `db:"qty"`
		UnitPrice float64 `db:"unit_price"`
	}
	var rows []itemRow
	if err := s.db.Select(&rows, `SELECT product_id,name,qty,unit_price FROM quote_items WHERE quote_id=?`, quoteID); err != nil {
		return nil, err
	}
	items := make([]domain.QuoteItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, domain.QuoteItem{ProductID: r.ProductID, Name: r.Name, Quantity: r.Qty, UnitPrice: r.UnitPrice})
	}
	return items, nil
}

func (s *Server) quoteByID(id string) (domain.Quote, error) {
	var r quoteRow
	if err := s.db.Get(&r, `
		SELECT id,status,project_name,intended_use,delivery_date,delivery_address,
		       billing_address,company_size,budget_range,additional_requirements,created_at
		FROM quotes WHERE id=?`, id); err != nil {
		return domain.Quote{}, err
	}
	items, err := s.quoteItems(id)
	if err != nil {
		return domain.Quote{}, err
	}
	return r.toDomain(items), nil
}

func (s *Server) listQuotes(c *fiber.Ctx) error {
	uid := s.bearerAccount(c, "user")
	if uid == "" {
		return errJSON(c, fiber.StatusUnauthorized, "invalid or missing token")
	}
	var rows []quoteRow
	if err := s.db.Select(&rows, `
		SELECT id,status,project_name,intended_use,delivery_date,delivery_address,
		       billing_address,company_size,budget_range,additional_requirements,created_at
		FROM quotes WHERE user_id=? ORDER BY datetime(created_at) DESC`, uid); err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not load quotes")
	}
	out := make([]domain.Quote, 0, len(rows))
	for _, r := range rows {
		items, err := s.quoteItems(r.ID)
		if err != nil {
			return errJSON(c, fiber.StatusInternalServerError, "could not load quotes")
		}
		out = append(out, r.toDomain(items))
	}
	return c.JSON(out)
}

// ---------- catalog ----------

type productRow struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	Description   sql.NullString  `db:"description"`
	Category      string          `db:"category"`
	Brand         string          `db:"brand"`
	Price         float64         `db:"price"`
	OriginalPrice sql.NullFloat64 `db:"original_price"`
	ImageURL      sql.NullString  `db:"image_url"`
	FeaturesJSON  sql.NullString  `db:"features_json"`
	Rating        float64         `db:"rating"`
	ReviewCount   int             `db:"review_count"`
	InStock       bool            `db:"in_stock"`
}

func (r productRow) toDomain() domain.Product {
	var features []string
	if r.FeaturesJSON.Valid {
		_ = json.Unmarshal([]byte(r.FeaturesJSON.String), &features)
	}
	return domain.Product{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description.String,
		Category:      r.Category,
		Brand:         r.Brand,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice.Float64,
		ImageURL:      r.ImageURL.String,
		Features:      features,
		Rating:        r.Rating,
		ReviewCount:   r.ReviewCount,
		InStock:       r.InStock,
	}
}

const productCols = `id,name,description,category,brand,price,original_price,image_url,features_json,rating,review_count,in_stock`

func (s *Server) products(c *fiber.Ctx) error {
	where := `1=1`
	args := []any{}
	if v := c.Query("category"); v != "" {
		where += ` AND category = ?`
		args = append(args, v)
	}
	if v := c.Query("brand"); v != "" {
		where += ` AND brand = ?`
		args = append(args, v)
	}
	if v := c.Query("search"); v != "" {
		where += ` AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)`
		q := "%" + strings.ToLower(v) + "%"
		args = append(args, q, q)
	}
	if v := c.Query("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			where += ` AND price >= ?`
			args = append(args, f)
		}
	}
	if v := c.Query("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			where += ` AND price <= ?`
			args = append(args, f)
		}
	}
	var rows []productRow
	if err := s.db.Select(&rows, `SELECT `+productCols+` FROM products WHERE `+where+` ORDER BY name`, args...); err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not load products")
	}
	return c.JSON(rowsToProducts(rows))
}

func (s *Server) product(c *fiber.Ctx) error {
	var r productRow
	if err := s.db.Get(&r, `SELECT `+productCols+` FROM products WHERE id=?`, c.Params("id")); err != nil {
		return errJSON(c, fiber.StatusNotFound, "unknown product")
	}
	return c.JSON(r.toDomain())
}

func (s *Server) featured(c *fiber.Ctx) error {
	var rows []productRow
	if err := s.db.Select(&rows, `SELECT `+productCols+` FROM products
		WHERE in_stock = 1 ORDER BY rating DESC, review_count DESC LIMIT 6`); err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not load featured products")
	}
	return c.JSON(rowsToProducts(rows))
}

func (s *Server) deals(c *fiber.Ctx) error {
	var rows []productRow
	if err := s.db.Select(&rows, `SELECT `+productCols+` FROM products
		WHERE original_price IS NOT NULL AND original_price > price ORDER BY name`); err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not load deals")
	}
	return c.JSON(rowsToProducts(rows))
}

func rowsToProducts(rows []productRow) []domain.Product {
	out := make([]domain.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

func (s *Server) categories(c *fiber.Ctx) error {
	type row struct {
		ID          string         `db:"id"`
		Name        string         `db:"name"`
		Description sql.NullString `db:"description"`
		ImageURL    sql.NullString `db:"image_url"`
	}
	var rows []row
	if err := s.db.Select(&rows, `SELECT id,name,description,image_url FROM categories ORDER BY name`); err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not load categories")
	}
	out := make([]domain.Category, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Category{ID: r.ID, Name: r.Name, Description: r.Description.String, ImageURL: r.ImageURL.String})
	}
	return c.JSON(out)
}

func (s *Server) brands(c *fiber.Ctx) error {
	type row struct {
		ID      string         `db:"id"`
		Name    string         `db:"name"`
		LogoURL sql.NullString `db:"logo_url"`
	}
	var rows []row
	if err := s.db.Select(&rows, `SELECT id,name,logo_url FROM brands ORDER BY name`); err != nil {
		return errJSON(c, fiber.StatusInternalServerError, "could not load brands")
	}
	out := make([]domain.Brand, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Brand{ID: r.ID, Name: r.Name, LogoURL: r.LogoURL.String})
	}
	return c.JSON(out)
}
