package models

import "time"

// SeedProof is an optional proof replayed onto a seeded listing
type SeedProof struct {
	Screenshots []string `json:"screenshots" mapstructure:"screenshots"`
	Description string   `json:"description" mapstructure:"description"`
	Verified    bool     `json:"verified" mapstructure:"verified"`
	Notes       string   `json:"notes" mapstructure:"notes"`
}

// SeedListing is one entry of a seed file
type SeedListing struct {
	Title       string        `json:"title" mapstructure:"title"`
	Category    Category      `json:"category" mapstructure:"category"`
	Game        string        `json:"game" mapstructure:"game"`
	Author      string        `json:"author" mapstructure:"author"`
	AuthorFlair string        `json:"author_flair" mapstructure:"author_flair"`
	Price       string        `json:"price" mapstructure:"price"`
	Description string        `json:"description" mapstructure:"description"`
	Tags        []string      `json:"tags" mapstructure:"tags"`
	Age         time.Duration `json:"age" mapstructure:"age"`
	Replies     int           `json:"replies" mapstructure:"replies"`
	Proof       *SeedProof    `json:"proof" mapstructure:"proof"`
}

// NewListing returns the creation fields of the seed entry
func (s SeedListing) NewListing() NewListing {
	return NewListing{
		Title:       s.Title,
		Category:    s.Category,
		Game:        s.Game,
		Author:      s.Author,
		AuthorFlair: s.AuthorFlair,
		Price:       s.Price,
		Description: s.Description,
		Tags:        s.Tags,
	}
}
