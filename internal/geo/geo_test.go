package geo_test

import (
	"strings"
	"testing"

	"land-registry/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidDDLocation(t *testing.T) {
	valid := []string{
		"0,0",
		"0.3476,32.5825",
		"-90,180",
		"90,-180",
		" 45.5 , -120.25 ",
		"-1.5,150",
	}
	for _, input := range valid {
		assert.True(t, geo.IsValidDDLocation(input), input)
	}

	invalid := []string{
		"",
		"91,0",
		"-90.0001,0",
		"0,180.5",
		"0,-181",
		"12.5",
		"1,2,3",
		"abc,12",
		"12,def",
		"nan,nan",
		"NaN,0",
		"0,nan",
		"inf,0",
		"0,-inf",
		`0° 20' 0.00" N`,
		"0.3476 N, 32.5825 E",
	}
	for _, input := range invalid {
		assert.False(t, geo.IsValidDDLocation(input), input)
	}
}

func TestParseDDAndConvertToDMS(t *testing.T) {
	out, err := geo.ParseDDAndConvertToDMS("0,0")
	require.NoError(t, err)
	assert.Equal(t, `0° 0' 0.00" N 0° 0' 0.00" E`, out)

	out, err = geo.ParseDDAndConvertToDMS("-1.5,150")
	require.NoError(t, err)
	assert.Equal(t, `1° 30' 0.00" S 150° 0' 0.00" E`, out)

	out, err = geo.ParseDDAndConvertToDMS("0.3476,-32.5825")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, `" W`), out)
	assert.Contains(t, out, `" N`)
}

func TestParseDDAndConvertToDMSMalformed(t *testing.T) {
	for _, input := range []string{"", "95,0", "1,2,3", "foo", "nan,nan"} {
		out, err := geo.ParseDDAndConvertToDMS(input)
		assert.ErrorIs(t, err, geo.ErrInvalidLocation, input)
		assert.Empty(t, out)
	}
}

func TestDMSEndsWithDirections(t *testing.T) {
	// every well formed pair renders latitude as N/S followed by
	// longitude as E/W
	inputs := []string{"90,180", "-90,-180", "10.123,20.456", "0,-0.5"}
	for _, input := range inputs {
		out, err := geo.ParseDDAndConvertToDMS(input)
		require.NoError(t, err, input)
		assert.True(t, strings.HasSuffix(out, " E") || strings.HasSuffix(out, " W"), out)
		assert.True(t, strings.Contains(out, `" N `) || strings.Contains(out, `" S `), out)
	}
}
