package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for order tracking QR codes
type QRCodeService interface {
	// GenerateTrackingQR renders a PNG QR code pointing at the tracking page of an order
	GenerateTrackingQR(orderID uuid.UUID) ([]byte, error)

	// TrackingURL is the link the QR code points at
	TrackingURL(orderID uuid.UUID) string

	// ParseTrackingQR extracts the order ID from scanned QR content
	ParseTrackingQR(content string) (uuid.UUID, error)
}
