// Package geo validates decimal-degree GPS input and formats it for display
// in degrees/minutes/seconds.
package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidLocation = errors.New("invalid decimal-degree location")

// IsValidDDLocation reports whether the input is a well formed "lat,lng"
// decimal-degree pair. Inputs already carrying degree or direction symbols
// are rejected, as are pairs outside the [-90,90] / [-180,180] ranges.
// The boundary values themselves are valid.
func IsValidDDLocation(input string) bool {
	_, _, err := parseDD(input)
	return err == nil
}

// ParseDDAndConvertToDMS converts a "lat,lng" decimal-degree pair to a
// `D° M' S" (N/S)` / `D° M' S" (E/W)` display string. Malformed input
// returns ErrInvalidLocation rather than a partial result.
func ParseDDAndConvertToDMS(input string) (string, error) {
	lat, lng, err := parseDD(input)
	if err != nil {
		return "", err
	}

	return convertDecimalToDMS(lat, "N", "S") + " " + convertDecimalToDMS(lng, "E", "W"), nil
}

func parseDD(input string) (lat, lng float64, err error) {
	if input == "" {
		return 0, 0, ErrInvalidLocation
	}
	if strings.ContainsAny(input, "°NESW") {
		return 0, 0, ErrInvalidLocation
	}

	parts := strings.Split(strings.TrimSpace(input), ",")
	if len(parts) != 2 {
		return 0, 0, ErrInvalidLocation
	}

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if latErr != nil || lngErr != nil {
		return 0, 0, ErrInvalidLocation
	}

	// ParseFloat accepts "nan" and "inf" spellings
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return 0, 0, ErrInvalidLocation
	}

	if lat < -90 || lat > 90 {
		return 0, 0, ErrInvalidLocation
	}
	if lng < -180 || lng > 180 {
		return 0, 0, ErrInvalidLocation
	}

	return lat, lng, nil
}

// convertDecimalToDMS formats one coordinate component: degrees are the
// integer part of the absolute value, minutes the floored fractional
// remainder times 60, seconds the rest times 60 rounded to two decimals.
func convertDecimalToDMS(decimal float64, positiveDir, negativeDir string) string {
	abs := math.Abs(decimal)
	deg := math.Floor(abs)
	minFloat := (abs - deg) * 60
	min := math.Floor(minFloat)
	sec := (minFloat - min) * 60

	dir := positiveDir
	if decimal < 0 {
		dir = negativeDir
	}

	return fmt.Sprintf("%d° %d' %s\" %s", int(deg), int(min), strconv.FormatFloat(sec, 'f', 2, 64), dir)
}
