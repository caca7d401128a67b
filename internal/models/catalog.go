package models

// Product is one catalog entry as served by the backend. JSON field names
// follow the backend contract exactly, including the quirky ones.
type Product struct {
	ProductID        string   `json:"product_id"`
	Name             string   `json:"name"`
	Category         string   `json:"category,omitempty"`
	Description      string   `json:"description,omitempty"`
	PriceUSD         *float64 `json:"price (USD),omitempty"`
	CurrencyCode     string   `json:"currency_code,omitempty"`
	MarginPercentage *float64 `json:"margin (%),omitempty"`
	TopIngredients   []string `json:"top_ingredients,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	ImageURL         string   `json:"image_url,omitempty"`
}

// Currency returns the code used when rendering the price.
func (p *Product) Currency() string {
	if p.CurrencyCode == "" {
		return "USD"
	}
	return p.CurrencyCode
}

// RagMetadata is the open-ended metadata mapping attached to a retrieved
// chunk. The backend adds fields over time, so it stays a generic map with
// typed accessors for the keys we recognize.
type RagMetadata map[string]interface{}

func (m RagMetadata) str(key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func (m RagMetadata) ProductName() string { return m.str("product_name") }
func (m RagMetadata) Reviewer() string    { return m.str("reviewer") }
func (m RagMetadata) Rating() string      { return m.str("rating") }
func (m RagMetadata) TicketID() string    { return m.str("ticket_id") }
func (m RagMetadata) SourceFile() string  { return m.str("source_file") }

// RagContext is a retrieved evidentiary snippet, either attached to a
// specific recommended product (supporting review) or top-level on the
// response.
type RagContext struct {
	ChunkID    string      `json:"chunk_id"`
	DocumentID string      `json:"document_id"`
	TextChunk  string      `json:"text_chunk"`
	SourceType string      `json:"source_type"`
	Metadata   RagMetadata `json:"metadata,omitempty"`
}

// ProductResult pairs a recommended product with its search-time annotations.
// Product may be null in malformed responses; renderers must skip it.
type ProductResult struct {
	Product           *Product     `json:"product"`
	Justification     string       `json:"justification,omitempty"`
	SupportingReviews []RagContext `json:"supporting_reviews,omitempty"`
}
