package service

// QRCodeService renders links as QR codes.
type QRCodeService interface {
	// GeneratePNG encodes content as a PNG image.
	GeneratePNG(content string) ([]byte, error)

	// GenerateTerminal encodes content as a block-character string for terminals.
	GenerateTerminal(content string) (string, error)
}
