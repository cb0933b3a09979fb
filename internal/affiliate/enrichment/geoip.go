package enrichment

import (
	"net"

	"affiliate-redirect/internal/affiliate/usecase"

	geoip2 "github.com/oschwald/geoip2-golang"
)

var (
	_ usecase.CountryResolver = (*GeoIPResolver)(nil)
	_ usecase.CountryResolver = NoopResolver{}
)

// GeoIPResolver resolves IP addresses to country codes using a GeoIP2 or GeoLite2 database.
type GeoIPResolver struct {
	db *geoip2.Reader
}

// NewGeoIPResolver creates a new GeoIPResolver.
// Returns error if the database file cannot be opened or is corrupt.
func NewGeoIPResolver(dbPath string) (*GeoIPResolver, error) {
	db, err := geoip2.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return &GeoIPResolver{db: db}, nil
}

// Close closes the GeoIP database reader.
func (g *GeoIPResolver) Close() error {
	return g.db.Close()
}

// ResolveCountry returns the ISO country code for the given IP address.
// Returns "" for private IPs, invalid IPs, or lookup failures.
func (g *GeoIPResolver) ResolveCountry(ipStr string) string {
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}

	record, err := g.db.Country(ip)
	if err != nil {
		return ""
	}

	return record.Country.IsoCode
}

// NoopResolver is wired when no GeoIP database is configured.
type NoopResolver struct{}

func (NoopResolver) ResolveCountry(string) string { return "" }
