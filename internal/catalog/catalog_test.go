package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Washes(), 4)
	assert.Len(t, c.Plans(), 4)
	assert.Len(t, c.Locations(), 3)
	assert.Len(t, c.MembershipOptions(), 5)

	rec, ok := c.Recommended()
	require.True(t, ok)
	assert.Equal(t, "Elite Unlimited", rec.Name)
	assert.Equal(t, 3499, rec.PriceCents)

	loc := c.Locations()[0]
	assert.Equal(t, "Elite Express - Downtown", loc.Name)
	assert.InDelta(t, 34.052235, loc.Latitude, 1e-9)
	assert.InDelta(t, -118.243683, loc.Longitude, 1e-9)
}

func TestLookups(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name   string
		lookup func() (string, bool)
		want   string
		found  bool
	}{
		{
			name:   "wash",
			lookup: func() (string, bool) { w, ok := c.Wash("4"); return w.Name, ok },
			want:   "Elite Max Wash",
			found:  true,
		},
		{
			name:   "plan",
			lookup: func() (string, bool) { p, ok := c.Plan("1"); return p.Name, ok },
			want:   "Express Unlimited",
			found:  true,
		},
		{
			name:   "option",
			lookup: func() (string, bool) { o, ok := c.Option("pause"); return o.Phrase, ok },
			want:   "pause your membership",
			found:  true,
		},
		{
			name:   "missing wash",
			lookup: func() (string, bool) { w, ok := c.Wash("9"); return w.Name, ok },
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.lookup()
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "invalid yaml", data: "washes: [\n"},
		{name: "missing id", data: "washes:\n  - name: Express\n"},
		{name: "duplicate plan", data: "plans:\n  - id: \"1\"\n  - id: \"1\"\n"},
		{name: "option without phrase", data: "membership_options:\n  - id: pause\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$10", FormatPrice(1000))
	assert.Equal(t, "$24.99", FormatPrice(2499))
	assert.Equal(t, "$0.05", FormatPrice(5))
}
