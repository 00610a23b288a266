package util

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type coordinates struct {
	Lat string `validate:"required,latitude"`
	Lon string `validate:"required,longitude"`
}

// ValidateCoordinates checks that lat and lon are decimal degrees within
// range.
func ValidateCoordinates(lat, lon string) error {
	c := coordinates{Lat: strings.TrimSpace(lat), Lon: strings.TrimSpace(lon)}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid coordinates %q,%q: %w", lat, lon, err)
	}
	return nil
}
