package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"affiliate-redirect/internal/affiliate/domain"
	"affiliate-redirect/internal/affiliate/tracking"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ClickContext is what a transport captured about the click before it
// responded. ClientIP is hashed before anything is stored.
type ClickContext struct {
	ArticleParam string
	UserAgent    string
	Referrer     string
	ClientIP     string
	Country      string
}

// TrackingService resolves affiliate references and records clicks.
type TrackingService struct {
	products  ProductRepository
	clicks    ClickRepository
	countries CountryResolver // may be nil
	now       func() time.Time
}

// Option configures a TrackingService.
type Option func(*TrackingService)

// WithClock overrides the clock used for clicked_at.
func WithClock(now func() time.Time) Option {
	return func(s *TrackingService) {
		s.now = now
	}
}

// NewTrackingService creates a new tracking service
func NewTrackingService(products ProductRepository, clicks ClickRepository, countries CountryResolver, opts ...Option) *TrackingService {
	s := &TrackingService{
		products:  products,
		clicks:    clicks,
		countries: countries,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve returns the active product for reference.
func (s *TrackingService) Resolve(ctx context.Context, reference string) (*domain.Product, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, domain.ErrInvalidReference
	}

	product, err := s.products.FindActive(ctx, reference)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return product, nil
}

// RecordClick builds a click for product from cc and appends it.
func (s *TrackingService) RecordClick(ctx context.Context, product *domain.Product, cc ClickContext) (*domain.Click, error) {
	click := s.buildClick(product, cc)
	if err := s.clicks.Insert(ctx, click); err != nil {
		return nil, err
	}
	return click, nil
}

func (s *TrackingService) buildClick(product *domain.Product, cc ClickContext) *domain.Click {
	return &domain.Click{
		EventID:   uuid.NewString(),
		ProductID: product.ID,
		ArticleID: tracking.ArticleID(cc.ArticleParam, cc.Referrer),
		IPHash:    tracking.HashAddress(cc.ClientIP),
		UserAgent: tracking.SanitizeField(cc.UserAgent),
		Referrer:  tracking.SanitizeField(cc.Referrer),
		Country:   s.country(cc),
		Device:    tracking.ClassifyDevice(cc.UserAgent),
		ClickedAt: s.now().UTC(),
	}
}

// country prefers the platform header, then GeoIP, then UnknownCountry.
func (s *TrackingService) country(cc ClickContext) string {
	code := tracking.NormalizeCountry(cc.Country)
	if (code == "" || code == domain.UnknownCountry) && s.countries != nil && cc.ClientIP != "" {
		code = tracking.NormalizeCountry(s.countries.ResolveCountry(cc.ClientIP))
	}
	return lo.Ternary(code == "", domain.UnknownCountry, code)
}

// BreakdownItem is one grouped value with its share of all clicks.
type BreakdownItem struct {
	Value      string
	Count      int64
	Percentage float64
}

// StatsResult is the click summary of one product.
type StatsResult struct {
	Product     *domain.Product
	TotalClicks int64
	Devices     []BreakdownItem
	Countries   []BreakdownItem
}

// Stats summarises clicks recorded for reference.
func (s *TrackingService) Stats(ctx context.Context, reference string) (*StatsResult, error) {
	product, err := s.Resolve(ctx, reference)
	if err != nil {
		return nil, err
	}

	total, err := s.clicks.CountByProduct(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	devices, err := s.clicks.CountByDevice(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	countries, err := s.clicks.CountByCountry(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return &StatsResult{
		Product:     product,
		TotalClicks: total,
		Devices:     breakdown(devices, total),
		Countries:   breakdown(countries, total),
	}, nil
}

func breakdown(groups []GroupCount, total int64) []BreakdownItem {
	if total == 0 {
		return []BreakdownItem{}
	}
	return lo.Map(groups, func(g GroupCount, _ int) BreakdownItem {
		return BreakdownItem{
			Value:      g.Value,
			Count:      g.Count,
			Percentage: math.Round(float64(g.Count)/float64(total)*1000) / 10,
		}
	})
}
