package codec

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// bankSlipPrefix is the constant bank/currency head of every barcode.
	bankSlipPrefix = "00190000090"
	// bankSlipSegment separates the amount from the issue date.
	bankSlipSegment = "64"
	// bankSlipBarcodeLen is the full fixed width of a barcode.
	bankSlipBarcodeLen = 44
)

// EncodeBankSlipBarcode derives the fixed-width numeric barcode from the
// amount (minor units, zero-padded to 10 digits) and the creation date,
// zero-padded on the right to the fixed barcode width.
func EncodeBankSlipBarcode(amount decimal.Decimal, createdAt time.Time) string {
	minor := amount.Shift(2).Round(0).IntPart()
	barcode := fmt.Sprintf("%s%010d%s%s", bankSlipPrefix, minor, bankSlipSegment, createdAt.UTC().Format("060102"))
	if len(barcode) < bankSlipBarcodeLen {
		barcode += strings.Repeat("0", bankSlipBarcodeLen-len(barcode))
	}
	return barcode
}

// CheckDigitLine re-segments a barcode into the dot/space-delimited groups
// (5.5 5.6 5.6 1 11) of the payable line. The digits are reused verbatim:
// no modulo-based check digits are computed. That is a deliberate
// simplification; no real settlement network consumes these documents.
func CheckDigitLine(barcode string) string {
	return fmt.Sprintf("%s.%s %s.%s %s.%s %s %s",
		barcode[0:5], barcode[5:10],
		barcode[10:15], barcode[15:21],
		barcode[21:26], barcode[26:32],
		barcode[32:33], barcode[33:44])
}
