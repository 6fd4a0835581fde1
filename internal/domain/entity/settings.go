package entity

import "strconv"

// Well-known store setting keys.
const (
	SettingGlobalDiscount = "global_discount"
)

// StoreSettings is the store-wide key-value configuration. It is read fresh
// on every pricing resolution rather than cached as a process-wide singleton,
// so concurrent admin updates never leave stale discounts behind.
type StoreSettings struct {
	Values map[string]string
}

// GlobalDiscountPercent returns the store-wide discount percent, clamped to
// 0-100. Missing or malformed values resolve to 0.
func (s *StoreSettings) GlobalDiscountPercent() int64 {
	if s == nil || s.Values == nil {
		return 0
	}

	raw, ok := s.Values[SettingGlobalDiscount]
	if !ok {
		return 0
	}

	percent, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}

	return percent
}
