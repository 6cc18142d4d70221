package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamError_Error(t *testing.T) {
	err := &UpstreamError{Provider: "open-meteo", StatusCode: 502, Status: "502 Bad Gateway", Body: "oops"}
	assert.Equal(t, "Request failed: 502 Bad Gateway - oops", err.Error())
}

func TestDeliveryError_Error(t *testing.T) {
	err := &DeliveryError{StatusCode: 400, Status: "400 Bad Request", Body: `{"ok":false}`}
	assert.Equal(t, `Telegram error: 400 Bad Request - {"ok":false}`, err.Error())

	bare := &DeliveryError{StatusCode: 401, Status: "Unauthorized"}
	assert.Equal(t, "Telegram error: 401 Unauthorized - ", bare.Error())
}

func TestLocation_RequestParams(t *testing.T) {
	loc := Location{Latitude: 34.6841, Longitude: 33.0379, Timezone: "auto"}
	assert.Equal(t, "lat: 34.6841 lon: 33.0379 tz: auto", loc.RequestParams())
}
