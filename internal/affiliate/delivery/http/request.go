package http

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"affiliate-redirect/pkg/problemdetails"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// FlexibleID accepts a JSON string or number. Page scripts send either.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("must be a string or a number")
	}
	*f = FlexibleID(n.String())
	return nil
}

// TrackClickRequest is the beacon body of POST /api/track-click.
// Referrer and UserAgent are accepted for compatibility; request headers win.
type TrackClickRequest struct {
	ProductID FlexibleID  `json:"productId"`
	ArticleID *FlexibleID `json:"articleId,omitempty"`
	Timestamp *int64      `json:"timestamp,omitempty"`
	Referrer  string      `json:"referrer,omitempty"`
	UserAgent string      `json:"userAgent,omitempty"`
}

func (r TrackClickRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required.Error("productId is required")),
		validation.Field(&r.ArticleID, is.Digit.Error("articleId must contain only digits")),
		validation.Field(&r.Timestamp, validation.Min(int64(0)).Error("timestamp must not be negative")),
	)
}

// fieldErrors flattens ozzo-validation errors into problem detail entries.
func fieldErrors(err error) []problemdetails.FieldError {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return []problemdetails.FieldError{{Field: "body", Message: err.Error()}}
	}

	result := make([]problemdetails.FieldError, 0, len(verrs))
	for field, ferr := range verrs {
		result = append(result, problemdetails.FieldError{Field: field, Message: ferr.Error()})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Field < result[j].Field })
	return result
}
