package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", Profile{FirstName: "Ada", LastName: " Lovelace "}.DisplayName())
	assert.Equal(t, "Ada", Profile{FirstName: "Ada"}.DisplayName())
	assert.Equal(t, "First Name/Last Name", Profile{}.DisplayName())
}

func TestAddress(t *testing.T) {
	p := Profile{StreetAddress: "123 Main St", City: "Los Angeles", State: "CA", ZipCode: "90012"}
	assert.Equal(t, "123 Main St, Los Angeles, CA 90012", p.Address())
	assert.Equal(t, "CA", Profile{State: "CA"}.Address())
	assert.Equal(t, "", Profile{}.Address())
}
