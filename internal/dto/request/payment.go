package request

type CreatePaymentRequest struct {
	BookingID  string `json:"booking" validate:"required,uuid"`
	NameOnCard string `json:"name_on_card" validate:"required,max=100"`
	CardNumber string `json:"card_number" validate:"required,max=16"`
	ExpiryDate string `json:"expiry_date" validate:"required,len=5"` // MM/YY
	CVV        string `json:"cvv" validate:"required,len=3"`
	Amount     string `json:"amount" validate:"required"` // must equal the bus price
}
