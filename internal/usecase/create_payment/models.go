package create_payment

// Request входные данные создания платежа
type Request struct {
	BookingID int64
	Amount    float64
	Currency  string
	Provider  string
}
