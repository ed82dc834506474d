package domain

import (
	"fmt"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Metadata limits accepted by providers.
const (
	MaxMetadataKeyLength   = 40
	MaxMetadataValueLength = 500
)

var (
	maxAmount = decimal.NewFromInt(1_000_000)

	supportedCurrencies = []string{"brl", "usd", "eur", "gbp"}
	supportedIntervals  = []string{"day", "week", "month", "year"}
)

// IsValidAmount reports whether amount is in (0, 1,000,000).
func IsValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.LessThan(maxAmount)
}

// IsValidCurrency reports whether the currency code is supported.
func IsValidCurrency(currency string) bool {
	return lo.Contains(supportedCurrencies, strings.ToLower(currency))
}

// IsValidInterval reports whether interval is a supported billing interval.
func IsValidInterval(interval string) bool {
	return lo.Contains(supportedIntervals, strings.ToLower(interval))
}

// IsValidEmail performs a light RFC 5322 address check.
func IsValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// IsValidURL reports whether raw is an absolute URL.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// SanitizeMetadata drops keys longer than 40 characters and string values
// longer than 500 characters, counted in runes. Numbers and booleans are coerced to strings; anything else
// (objects, arrays, null) is dropped.
func SanitizeMetadata(metadata map[string]any) map[string]string {
	sanitized := make(map[string]string, len(metadata))
	for key, value := range metadata {
		if key == "" || utf8.RuneCountInString(key) > MaxMetadataKeyLength {
			continue
		}
		switch v := value.(type) {
		case string:
			if utf8.RuneCountInString(v) <= MaxMetadataValueLength {
				sanitized[key] = v
			}
		case float64:
			sanitized[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case float32:
			sanitized[key] = strconv.FormatFloat(float64(v), 'f', -1, 32)
		case int:
			sanitized[key] = strconv.Itoa(v)
		case int64:
			sanitized[key] = strconv.FormatInt(v, 10)
		case bool:
			sanitized[key] = strconv.FormatBool(v)
		}
	}
	return sanitized
}

// Validate checks a payment request before it reaches any adapter.
func (r PaymentRequest) Validate() error {
	if !IsValidAmount(r.Amount) {
		return invalid("amount must be greater than 0 and less than 1000000", "INVALID_AMOUNT")
	}
	if r.Currency != "" && !IsValidCurrency(r.Currency) {
		return invalid(fmt.Sprintf("currency '%s' is not supported", r.Currency), "INVALID_CURRENCY")
	}
	if strings.TrimSpace(r.Description) == "" {
		return invalid("description is required", "VALIDATION_ERROR")
	}
	return validateContact(r.CustomerEmail, r.SuccessURL, r.CancelURL)
}

// Validate checks a subscription request. It enforces the price decision
// rule: a price reference, or both amount and interval.
func (r SubscriptionRequest) Validate() error {
	if !r.HasPriceReference() && !r.CanSynthesizePrice() {
		return invalid("priceId OR amount + interval must be provided to create a subscription", "MISSING_PRICE")
	}
	if !r.HasPriceReference() {
		if !IsValidAmount(r.Amount) {
			return invalid("amount must be greater than 0 and less than 1000000", "INVALID_AMOUNT")
		}
		if !IsValidInterval(r.Interval) {
			return invalid(fmt.Sprintf("interval '%s' is not supported", r.Interval), "INVALID_INTERVAL")
		}
	}
	if r.Currency != "" && !IsValidCurrency(r.Currency) {
		return invalid(fmt.Sprintf("currency '%s' is not supported", r.Currency), "INVALID_CURRENCY")
	}
	if r.IntervalCount < 0 {
		return invalid("intervalCount must be at least 1", "VALIDATION_ERROR")
	}
	if r.TrialPeriodDays < 0 {
		return invalid("trialPeriodDays must not be negative", "VALIDATION_ERROR")
	}
	return validateContact(r.CustomerEmail, r.SuccessURL, r.CancelURL)
}

func validateContact(email, successURL, cancelURL string) error {
	if email != "" && !IsValidEmail(email) {
		return invalid("customerEmail is not a valid email address", "INVALID_EMAIL")
	}
	if successURL != "" && !IsValidURL(successURL) {
		return invalid("successUrl must be an absolute URL", "INVALID_URL")
	}
	if cancelURL != "" && !IsValidURL(cancelURL) {
		return invalid("cancelUrl must be an absolute URL", "INVALID_URL")
	}
	return nil
}

func invalid(message, code string) error {
	return &ServiceError{Err: ErrInvalidRequest, Message: message, Code: code}
}
