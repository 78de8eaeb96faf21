package models

import "time"

// Contact holds the advertiser details shown on a listing. Phone and
// email are optional; renderers fall back to a placeholder when absent.
type Contact struct {
	Name  string `firestore:"name" json:"name"`
	Phone string `firestore:"phone,omitempty" json:"phone,omitempty"`
	Email string `firestore:"email,omitempty" json:"email,omitempty"`
}

// Listing is a single property-for-sale/rent post. Price and area are
// free-text strings as typed by the poster ("1.5 tỷ", "40 m²"); numeric
// interpretation happens only inside the feed filter.
type Listing struct {
	ID          string    `firestore:"id" json:"id"`
	Title       string    `firestore:"title" json:"title"`
	Description string    `firestore:"description,omitempty" json:"description,omitempty"`
	Price       string    `firestore:"price" json:"price"`
	Area        string    `firestore:"area" json:"area"`
	Category    string    `firestore:"category" json:"category"`
	Location    string    `firestore:"location" json:"location"`
	Images      []string  `firestore:"images" json:"images"`
	Bedrooms    int       `firestore:"bedrooms" json:"bedrooms"`
	Bathrooms   int       `firestore:"bathrooms" json:"bathrooms"`
	Floors      int       `firestore:"floors" json:"floors"`
	Contact     Contact   `firestore:"contact" json:"contact"`
	UserID      string    `firestore:"userId" json:"userId"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// MaxListingImages caps the image gallery per post.
const MaxListingImages = 10
