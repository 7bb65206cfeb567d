package domain

// Profile is the account a retail customer signs in with. Cart and quote
// requests belong to this identity.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// DealerProfile is the B2B counterpart. Dealer accounts are approved
// manually, so Status may stay PENDING for a while after registration.
type DealerProfile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Status      string `json:"status"` // PENDING | APPROVED
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type Brand struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price,omitempty"`
	ImageURL      string   `json:"image_url"`
	Features      []string `json:"features,omitempty"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	InStock       bool     `json:"in_stock"`
}

// CartItem is one line of the server-held cart. UnitPrice is the snapshot
// taken when the line was added; Name/ImageURL describe the product as it
// looked at that time.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// Cart mirrors the authoritative server cart. Total is always the
// server-reported figure, never a client-side sum; server pricing rules
// (volume discounts etc.) may make it differ from sum(LineTotal).
type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

func (c Cart) Empty() bool { return len(c.Items) == 0 }

// QuoteItem is the immutable line snapshot embedded in a quote request.
type QuoteItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Quote is a submitted quote request. Status is server-assigned
// (PENDING -> REVIEWED -> APPROVED|DECLINED) and only ever displayed here.
type Quote struct {
	ID                     string      `json:"id"`
	Status                 string      `json:"status"`
	Items                  []QuoteItem `json:"items"`
	ProjectName            string      `json:"project_name"`
	IntendedUse            string      `json:"intended_use"`
	DeliveryDate           string      `json:"delivery_date,omitempty"`
	DeliveryAddress        string      `json:"delivery_address"`
	BillingAddress         string      `json:"billing_address"`
	CompanySize            string      `json:"company_size,omitempty"`
	BudgetRange            string      `json:"budget_range,omitempty"`
	AdditionalRequirements string      `json:"additional_requirements,omitempty"`
	CreatedAt              string      `json:"created_at"`
}
