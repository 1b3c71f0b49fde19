package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("ENV", "production")
	t.Setenv("SLOT_GRANULARITY_MINUTES", "15")

	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "salonbook", AppConfig.DatabaseName)
	assert.Equal(t, 15, AppConfig.SlotGranularityMinutes)
	assert.Equal(t, 2*time.Minute, AppConfig.AvailabilityCacheTTL)
	assert.Equal(t, 90, AppConfig.BookingHorizonDays)
	assert.True(t, IsProduction())
}

func TestSalonLocation(t *testing.T) {
	AppConfig.SalonTimezone = "Africa/Nairobi"
	loc := SalonLocation()
	require.NotNil(t, loc)
	assert.Equal(t, "Africa/Nairobi", loc.String())

	AppConfig.SalonTimezone = "Nowhere/Special"
	assert.Equal(t, time.Local, SalonLocation())

	AppConfig.SalonTimezone = ""
	assert.Equal(t, time.Local, SalonLocation())
}

func TestTokenTTL(t *testing.T) {
	AppConfig.TokenTTLHours = 0
	assert.Equal(t, 72*time.Hour, TokenTTL())
	AppConfig.TokenTTLHours = 2
	assert.Equal(t, 2*time.Hour, TokenTTL())
}
