package service

// QRCodeService renders a payment checkout URL as a scannable image so the
// shopper can finish payment on a phone.
type QRCodeService interface {
	// PaymentQR encodes the checkout URL as a PNG.
	PaymentQR(checkoutURL string) ([]byte, error)
}
