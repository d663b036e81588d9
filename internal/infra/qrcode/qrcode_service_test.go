package qrcode

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQRCodeService_GenerateOrderPickupQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	orderID := uuid.New()

	png, err := svc.GenerateOrderPickupQR(orderID)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "output should be a PNG image")
}

func TestQRCodeService_ParseOrderPickupQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	orderID := uuid.New()

	payload, err := json.Marshal(QRCodeData{OrderID: orderID.String(), Type: "order-pickup"})
	require.NoError(t, err)

	parsed, err := svc.ParseOrderPickupQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, orderID, parsed)
}

func TestQRCodeService_ParseOrderPickupQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.ParseOrderPickupQR("not json")
	assert.Error(t, err)

	wrongType, _ := json.Marshal(QRCodeData{OrderID: uuid.NewString(), Type: "table-checkin"})
	_, err = svc.ParseOrderPickupQR(string(wrongType))
	assert.Error(t, err)

	badID, _ := json.Marshal(QRCodeData{OrderID: "not-a-uuid", Type: "order-pickup"})
	_, err = svc.ParseOrderPickupQR(string(badID))
	assert.Error(t, err)
}

func TestNewQRCodeService_DefaultsErrorCorrection(t *testing.T) {
	// An unknown level falls back to Medium rather than failing.
	svc := NewQRCodeService(128, "Z")

	png, err := svc.GenerateOrderPickupQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
