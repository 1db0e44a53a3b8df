package qrcode

import (
	"net/url"
	"strings"

	"pizzeria/config"
	"pizzeria/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "pizzeria://track"
	trackingPath   = "orders"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := "M"
	baseURL := defaultBaseURL
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
		if cfg.QRCode.BaseURL != "" {
			baseURL = cfg.QRCode.BaseURL
		}
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// TrackingURL is the link encoded in the QR code of an order.
func (s *qrcodeService) TrackingURL(orderID uuid.UUID) string {
	return s.baseURL + "/" + trackingPath + "/" + orderID.String()
}

// GenerateTrackingQR renders the tracking link of an order as a PNG.
func (s *qrcodeService) GenerateTrackingQR(orderID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.TrackingURL(orderID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseTrackingQR extracts the order ID from scanned content.
func (s *qrcodeService) ParseTrackingQR(content string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(content))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code content")
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if parsed.Opaque != "" || len(segments) < 2 || segments[len(segments)-2] != trackingPath {
		return uuid.Nil, errors.Errorf("not an order tracking link: %s", content)
	}

	orderID, err := uuid.Parse(segments[len(segments)-1])
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse order ID")
	}

	return orderID, nil
}
