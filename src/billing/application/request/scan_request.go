package request

// ScanRequest entrada manual o decodificada de un barcode
type ScanRequest struct {
	Barcode string `json:"barcode"`
}
