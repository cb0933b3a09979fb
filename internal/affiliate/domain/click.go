package domain

import "time"

// Device is the coarse device bucket of a click.
type Device string

const (
	DeviceMobile  Device = "mobile"
	DeviceTablet  Device = "tablet"
	DeviceDesktop Device = "desktop"
)

// UnknownCountry is recorded when neither the platform nor GeoIP knows the country.
const UnknownCountry = "XX"

// Click is one append-only outbound click record.
// IPHash is the only trace of the client address that is ever kept.
type Click struct {
	ID        int64     `json:"id"`
	EventID   string    `json:"event_id"`
	ProductID int64     `json:"product_id"`
	ArticleID *int64    `json:"article_id"`
	IPHash    string    `json:"ip_hash"`
	UserAgent string    `json:"user_agent"`
	Referrer  string    `json:"referrer"`
	Country   string    `json:"country"`
	Device    Device    `json:"device"`
	ClickedAt time.Time `json:"clicked_at"`
}
