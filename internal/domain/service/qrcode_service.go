package service

import "github.com/google/uuid"

// QRCodeService defines the interface for generating shareable QR codes.
type QRCodeService interface {
	// GenerateProductQR renders a PNG QR code that links to the product page.
	GenerateProductQR(productID uuid.UUID) ([]byte, error)
}
