package domain

// Product is an affiliate destination. It is read-only for this service.
type Product struct {
	ID             int64  `json:"id"`
	Slug           string `json:"slug,omitempty"`
	Title          string `json:"title"`
	DestinationURL string `json:"affiliate_url"`
	Active         bool   `json:"is_active"`
}
