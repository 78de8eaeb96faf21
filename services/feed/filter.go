package feed

import (
	"strings"

	"homeland/models"
	"homeland/utils"
)

// BandKind selects how a Band compares against an extracted value.
type BandKind int

const (
	// BandBelow matches values strictly under High.
	BandBelow BandKind = iota
	// BandWithin matches Low <= value <= High.
	BandWithin
	// BandAbove matches values strictly over Low.
	BandAbove
)

// Band is one selectable numeric range of a filter dimension. The
// thresholds come from the caller; the engine does not fix them.
type Band struct {
	Kind BandKind
	Low  float64
	High float64
}

func (b *Band) matches(v float64) bool {
	switch b.Kind {
	case BandBelow:
		return v < b.High
	case BandWithin:
		return v >= b.Low && v <= b.High
	case BandAbove:
		return v > b.Low
	}
	return true
}

// Selection holds the active single-select filter per dimension. The zero
// value (empty category, nil bands) passes every listing.
type Selection struct {
	Category string
	Price    *Band
	Area     *Band
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// categoryActive reports whether the category dimension filters at all.
// Empty and "all"-style sentinels pass everything.
func categoryActive(category string) bool {
	switch normalize(category) {
	case "", "all", "tất cả":
		return false
	}
	return true
}

// Visible returns the listings passing every active predicate, preserving
// input order. It is a pure function: no side effects, deterministic, and
// cheap enough to re-run on every keystroke. Listings with malformed
// price or area strings are treated as value 0 rather than rejected.
func Visible(listings []models.Listing, sel Selection, query string) []models.Listing {
	q := strings.ToLower(query)
	filterCategory := categoryActive(sel.Category)

	visible := make([]models.Listing, 0, len(listings))
	for _, listing := range listings {
		if filterCategory && normalize(listing.Category) != normalize(sel.Category) {
			continue
		}
		if sel.Price != nil && !sel.Price.matches(utils.ExtractDecimal(listing.Price)) {
			continue
		}
		if sel.Area != nil && !sel.Area.matches(utils.ExtractLeadingInt(listing.Area)) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(listing.Title), q) {
			continue
		}
		visible = append(visible, listing)
	}
	return visible
}
