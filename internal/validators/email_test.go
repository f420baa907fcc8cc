package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "owner@example.com", NormalizeEmail("  Owner@Example.COM  "))
	assert.Equal(t, "a@b.co", NormalizeEmail("a@b.co"))
}

func TestEmailDomainResolves_MalformedAddresses(t *testing.T) {
	// None of these reach DNS; they fail the shape check first.
	assert.False(t, EmailDomainResolves("no-at-sign"))
	assert.False(t, EmailDomainResolves("@host.only"))
	assert.False(t, EmailDomainResolves("user@"))
	assert.False(t, EmailDomainResolves(""))
}
