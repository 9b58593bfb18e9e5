package seed

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/piresc/tradepost/internal/pkg/models"
)

// Load reads the listings key of a YAML or JSON seed file
func Load(path string) ([]models.SeedListing, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var seeds []models.SeedListing
	if err := v.UnmarshalKey("listings", &seeds); err != nil {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}
	return seeds, nil
}
