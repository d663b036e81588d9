package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOrderPickupQR generates a QR code image for an order pickup slip.
	GenerateOrderPickupQR(orderID uuid.UUID) ([]byte, error)

	// ParseOrderPickupQR parses QR code data and returns the order ID.
	ParseOrderPickupQR(qrData string) (uuid.UUID, error)
}
