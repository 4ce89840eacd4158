package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory_Canonical(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestParseCategory_Aliases(t *testing.T) {
	tests := map[string]Category{
		"숙박":    CategoryLodging,
		"식당":    CategoryRestaurant,
		"카페":    CategoryCafe,
		"cafe":  CategoryCafe,
		"관광지":   CategoryTouristAttraction,
		" café ": CategoryCafe,
	}
	for in, want := range tests {
		got, err := ParseCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseCategory_OutOfSet(t *testing.T) {
	for _, in := range []string{"", "museum", "Lodging", "hotel"} {
		_, err := ParseCategory(in)
		var invalid *InvalidCategoryError
		require.True(t, errors.As(err, &invalid), "input %q", in)
		assert.Equal(t, in, invalid.Given)
		assert.Equal(t, Categories, invalid.Allowed)
	}
}

func TestCategoryIndex_MatchesEnumerationOrder(t *testing.T) {
	assert.Equal(t, 0, CategoryLodging.Index())
	assert.Equal(t, 1, CategoryRestaurant.Index())
	assert.Equal(t, 2, CategoryCafe.Index())
	assert.Equal(t, 3, CategoryTouristAttraction.Index())
	assert.Equal(t, -1, Category("museum").Index())
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&LengthMismatchError{Categories: 2, Names: 3}).Error(), "(2)")
	assert.Contains(t, (&PlaceNotFoundError{Name: "Gyeongbokgung"}).Error(), "Gyeongbokgung")
	assert.Contains(t, (&InvalidCategoryError{Given: "x", Allowed: Categories}).Error(), "tourist-attraction")

	cause := errors.New("boom")
	wrapped := &UpstreamGenerationError{Detail: "region itineraries", Err: &UpstreamTimeoutError{Op: "gemini.generate", Err: cause}}
	var timeout *UpstreamTimeoutError
	assert.True(t, errors.As(wrapped, &timeout))
	assert.ErrorIs(t, wrapped, cause)
}
