package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"washclub/cli/internal/account"
	"washclub/cli/internal/catalog"
	"washclub/cli/internal/terminal"
)

func TestIsYes(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "y", want: true},
		{in: " YES ", want: true},
		{in: "", want: false},
		{in: "no", want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isYes(tt.in), tt.in)
	}
}

func TestCompleteProfile(t *testing.T) {
	// Required phone is asked again after an empty answer; optional fields
	// accept an empty answer.
	input := strings.Join([]string{"", "", "", "5551234567", "CA", "Los Angeles"}, "\n") + "\n"
	var out bytes.Buffer
	p := terminal.NewPrompter(strings.NewReader(input), &out)

	profile := account.Profile{Email: "jane@example.com", StreetAddress: "1 Elm St", ZipCode: "90001"}
	require.NoError(t, completeProfile(p, &profile))

	assert.Equal(t, "5551234567", profile.PhoneNumber)
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.Equal(t, "CA", profile.State)
	assert.Equal(t, "Los Angeles", profile.City)
	assert.Empty(t, profile.FirstName)
	assert.Equal(t, 2, strings.Count(out.String(), "Phone Number *: "))
}

func TestCompleteProfileStopsAtEOF(t *testing.T) {
	p := terminal.NewPrompter(strings.NewReader(""), &bytes.Buffer{})
	var profile account.Profile
	assert.Error(t, completeProfile(p, &profile))
}

func TestCatalogRows(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	washes := washRows(cat.Washes())
	require.Len(t, washes, 5)
	assert.Equal(t, []string{"1", "Express Single Wash", "$10", "Eco Wash, Spot-Free Rinse, Power Dry, Free Vacuums"}, washes[1])

	plans := planRows(cat.Plans())
	require.Len(t, plans, 5)
	assert.Equal(t, "Elite Unlimited ★ Most Popular", plans[3][1])
	assert.Equal(t, "$34.99/month", plans[3][2])

	locs := locationRows(cat.Locations())
	require.Len(t, locs, 4)
	assert.Equal(t, "34.180840, -118.308968", locs[2][3])
}
