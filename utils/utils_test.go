package utils

import (
	"classroom/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	config.AppConfig = &config.Config{SaltRound: bcrypt.MinCost}

	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)
	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "password124"))

	again, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")
}

func TestHashPasswordRejectsBadCost(t *testing.T) {
	config.AppConfig = &config.Config{SaltRound: 99}

	_, err := HashPassword("password123")
	assert.Error(t, err)
}

func TestDates(t *testing.T) {
	d, err := ParseDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", *FormatDate(d))

	_, err = ParseDate("14/03/2025")
	assert.Error(t, err)

	assert.Nil(t, FormatDate(datatypes.Date{}))

	today := time.Time(Today())
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, time.Now().Format(DateLayout), today.Format(DateLayout))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", NormalizeEmail("  Ada@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}
