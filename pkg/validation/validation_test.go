package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormats(t *testing.T) {
	assert.True(t, IdentificationNumber("0012345678"))
	assert.False(t, IdentificationNumber("12345"))
	assert.False(t, IdentificationNumber("00123456789"))

	assert.True(t, Phone("09121234567"))
	assert.False(t, Phone("9121234567"))
	assert.False(t, Phone("0812123456"))

	assert.True(t, PostalCode("1234567890"))
	assert.False(t, PostalCode("12345-6789"))

	assert.True(t, Email("ali@example.com"))
	assert.False(t, Email("Ali <ali@example.com>"))
	assert.False(t, Email("ali@localhost"))
	assert.False(t, Email("nope"))

	assert.True(t, Clock("09:30"))
	assert.True(t, Clock("23:59:59"))
	assert.False(t, Clock("24:00"))
}

func TestPersianName(t *testing.T) {
	assert.True(t, PersianName("علی"))
	assert.True(t, PersianName("محمد رضا"))
	assert.True(t, PersianName("گل\u200cچین"))
	assert.False(t, PersianName("Ali"))
	assert.False(t, PersianName("علی2"))
}

func TestPassword(t *testing.T) {
	assert.NotEmpty(t, Password("short"))
	assert.NotEmpty(t, Password("1234567890"))
	assert.Empty(t, Password("s3cretpass"))
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("")
	assert.True(t, ok)
	assert.Nil(t, d)

	d, ok = ParseDate("2024-02-29")
	assert.True(t, ok)
	assert.Equal(t, 29, d.Day())

	_, ok = ParseDate("2023-02-29")
	assert.False(t, ok)
}
