package qrcode

import (
	"nativoseo/internal/domain/service"
	"nativoseo/internal/errors"

	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = DefaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePNG encodes content, typically the Google consent URL, as a PNG image.
func (s *qrcodeService) GeneratePNG(content string) ([]byte, error) {
	qrCode, err := s.encode(content)
	if err != nil {
		return nil, err
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// GenerateTerminal renders content with half-block characters, two modules per row.
func (s *qrcodeService) GenerateTerminal(content string) (string, error) {
	qrCode, err := s.encode(content)
	if err != nil {
		return "", err
	}

	return qrCode.ToSmallString(false), nil
}

func (s *qrcodeService) encode(content string) (*qrcode.QRCode, error) {
	if content == "" {
		return nil, errors.New("empty QR code content")
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	return qrCode, nil
}
