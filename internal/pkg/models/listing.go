package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

// Category classifies what a listing trades
type Category string

const (
	CategoryCodes   Category = "codes"
	CategoryPokemon Category = "pokemon"
	CategoryItems   Category = "items"
	CategoryFriends Category = "friends"
	CategoryMobile  Category = "mobile"

	// CategoryAll is only meaningful as a search filter
	CategoryAll Category = "all"
)

// Valid reports whether c is a category a listing can be stored under
func (c Category) Valid() bool {
	switch c {
	case CategoryCodes, CategoryPokemon, CategoryItems, CategoryFriends, CategoryMobile:
		return true
	}
	return false
}

// Listing is a tradeable offer posted by a seller
type Listing struct {
	ID               string    `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Category         Category  `json:"category" db:"category"`
	Game             string    `json:"game" db:"game"`
	Author           string    `json:"author" db:"author"`
	AuthorFlair      string    `json:"author_flair" db:"author_flair"`
	Price            string    `json:"price,omitempty" db:"price"`
	Description      string    `json:"description" db:"description"`
	Tags             []string  `json:"tags"`
	Replies          int       `json:"replies" db:"replies"`
	PaymentCompleted bool      `json:"payment_completed" db:"payment_completed"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`

	// Derived from the current proof on every read
	HasProof   bool `json:"has_proof"`
	IsVerified bool `json:"is_verified"`
}

// HasPrice reports whether payment applies to the listing
func (l *Listing) HasPrice() bool {
	return strings.TrimSpace(l.Price) != ""
}

// Matches reports whether the lower-cased query occurs in the title, description or any tag
func (l *Listing) Matches(lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	if strings.Contains(strings.ToLower(l.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(l.Description), lowerQuery) {
		return true
	}
	for _, tag := range l.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}

// NewListing carries the caller-supplied fields of a listing
type NewListing struct {
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Game        string   `json:"game"`
	Author      string   `json:"author"`
	AuthorFlair string   `json:"author_flair"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// NormalizeTags trims tags, drops blanks and keeps the first occurrence of each
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// ListingDTO is the row shape of the listings table
type ListingDTO struct {
	ID               string         `db:"id"`
	Title            string         `db:"title"`
	Category         Category       `db:"category"`
	Game             string         `db:"game"`
	Author           string         `db:"author"`
	AuthorFlair      string         `db:"author_flair"`
	Price            string         `db:"price"`
	Description      string         `db:"description"`
	Tags             pq.StringArray `db:"tags"`
	Replies          int            `db:"replies"`
	PaymentCompleted bool           `db:"payment_completed"`
	CreatedAt        time.Time      `db:"created_at"`
}

// ToDTO converts a Listing to its row shape
func (l *Listing) ToDTO() *ListingDTO {
	return &ListingDTO{
		ID:               l.ID,
		Title:            l.Title,
		Category:         l.Category,
		Game:             l.Game,
		Author:           l.Author,
		AuthorFlair:      l.AuthorFlair,
		Price:            l.Price,
		Description:      l.Description,
		Tags:             pq.StringArray(l.Tags),
		Replies:          l.Replies,
		PaymentCompleted: l.PaymentCompleted,
		CreatedAt:        l.CreatedAt,
	}
}

// ToListing converts a row back to a Listing
func (dto *ListingDTO) ToListing() *Listing {
	tags := []string(dto.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &Listing{
		ID:               dto.ID,
		Title:            dto.Title,
		Category:         dto.Category,
		Game:             dto.Game,
		Author:           dto.Author,
		AuthorFlair:      dto.AuthorFlair,
		Price:            dto.Price,
		Description:      dto.Description,
		Tags:             tags,
		Replies:          dto.Replies,
		PaymentCompleted: dto.PaymentCompleted,
		CreatedAt:        dto.CreatedAt,
	}
}
