package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.co.id",
		"user+tag@example.com",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("01890a5d-ac96-774b-bcce-b302099a8057"))
	// Uppercase input is normalized before matching.
	assert.True(t, IsValidUUID("01890A5D-AC96-774B-BCCE-B302099A8057"))

	// Version 4 is rejected; ids are UUIDv7.
	assert.False(t, IsValidUUID("9b2b7a1e-7f1c-4c4e-8e6a-1a2b3c4d5e6f"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-08-30")
	require.True(t, ok)
	assert.Equal(t, 2026, date.Year())
	assert.Equal(t, time.August, date.Month())
	assert.Equal(t, 30, date.Day())

	_, ok = IsValidDate("30-08-2026")
	assert.False(t, ok)
	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidTimeOfDay(t *testing.T) {
	minutes, ok := IsValidTimeOfDay("09:30")
	require.True(t, ok)
	assert.Equal(t, 9*60+30, minutes)

	minutes, ok = IsValidTimeOfDay("00:00")
	require.True(t, ok)
	assert.Equal(t, 0, minutes)

	minutes, ok = IsValidTimeOfDay("23:59:59")
	require.True(t, ok)
	assert.Equal(t, 23*60+59, minutes)

	_, ok = IsValidTimeOfDay("24:00")
	assert.False(t, ok)
	_, ok = IsValidTimeOfDay("12:60")
	assert.False(t, ok)
	_, ok = IsValidTimeOfDay("noon")
	assert.False(t, ok)
}

func TestIsValidLatitudeLongitude(t *testing.T) {
	assert.True(t, IsValidLatitude(0))
	assert.True(t, IsValidLatitude(-90))
	assert.True(t, IsValidLatitude(90))
	assert.False(t, IsValidLatitude(90.0001))
	assert.False(t, IsValidLatitude(-91))

	assert.True(t, IsValidLongitude(0))
	assert.True(t, IsValidLongitude(-180))
	assert.True(t, IsValidLongitude(180))
	assert.False(t, IsValidLongitude(180.0001))
	assert.False(t, IsValidLongitude(-181))
}

func TestIsInSlice(t *testing.T) {
	days := []string{"monday", "tuesday"}
	assert.True(t, IsInSlice("monday", days))
	assert.False(t, IsInSlice("sunday", days))
	assert.False(t, IsInSlice("monday", nil))
}

func TestIsValidCompanyUsername(t *testing.T) {
	assert.True(t, IsValidCompanyUsername("acme"))
	assert.True(t, IsValidCompanyUsername("acme-corp_01.id"))
	assert.False(t, IsValidCompanyUsername("ab"))
	assert.False(t, IsValidCompanyUsername("has space"))
	assert.False(t, IsValidCompanyUsername(""))
}

func TestIsValidTimezone(t *testing.T) {
	assert.True(t, IsValidTimezone("Asia/Jakarta"))
	assert.True(t, IsValidTimezone("UTC"))
	assert.False(t, IsValidTimezone("Mars/Olympus"))
	assert.False(t, IsValidTimezone(""))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "email is invalid"},
	}

	assert.Equal(t, "name: name is required; email: email is invalid", errs.Error())

	m := errs.ToMap()
	assert.Equal(t, "name is required", m["name"])
	assert.Equal(t, "email is invalid", m["email"])
}
