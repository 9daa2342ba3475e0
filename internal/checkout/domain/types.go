package domain

// PaymentForm carries the fields of the payment modal. Checkout is a
// confirmation gate only; nothing here is charged or stored.
type PaymentForm struct {
	CardholderName string
	CardNumber     string
	Expiry         string
	CVC            string
}

// Receipt summarizes a completed checkout for the caller.
type Receipt struct {
	InvoiceID   string
	Filename    string
	Path        string
	TotalItems  int
	TotalAmount string
}
