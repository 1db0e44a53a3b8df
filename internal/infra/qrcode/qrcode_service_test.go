package qrcode

import (
	"testing"

	"pizzeria/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, baseURL string) *qrcodeService {
	t.Helper()

	svc, ok := NewQRCodeService(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M", BaseURL: baseURL},
	}).(*qrcodeService)
	require.True(t, ok)

	return svc
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc, ok := NewQRCodeService(nil).(*qrcodeService)
	require.True(t, ok)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, defaultBaseURL, svc.baseURL)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
}

func TestQRCodeService_GenerateTrackingQR(t *testing.T) {
	svc := newTestService(t, "https://pizza.example.com/")
	orderID := uuid.New()

	qrBytes, err := svc.GenerateTrackingQR(orderID)
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	assert.Equal(t, "https://pizza.example.com/orders/"+orderID.String(), svc.TrackingURL(orderID))
}

func TestQRCodeService_ParseTrackingQR(t *testing.T) {
	svc := newTestService(t, "https://pizza.example.com")
	orderID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		got, err := svc.ParseTrackingQR(svc.TrackingURL(orderID))
		require.NoError(t, err)
		assert.Equal(t, orderID, got)
	})

	t.Run("custom scheme", func(t *testing.T) {
		got, err := svc.ParseTrackingQR("pizzeria://track/orders/" + orderID.String())
		require.NoError(t, err)
		assert.Equal(t, orderID, got)
	})

	invalid := []string{
		"",
		"https://pizza.example.com/menu/" + orderID.String(),
		"https://pizza.example.com/orders/not-a-uuid",
		"mailto:someone@example.com",
	}
	for _, content := range invalid {
		t.Run("invalid "+content, func(t *testing.T) {
			got, err := svc.ParseTrackingQR(content)
			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, got)
		})
	}
}
