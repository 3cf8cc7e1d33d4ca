package business

const (
	DefaultPaymentType = "pochi"
	InitialLinkVersion = int64(1)
)

type Business struct {
	ID             string
	DisplayName    string
	Message        string
	PaymentType    string
	PaymentDetails map[string]any
	// LinkVersion is bound into every signed link. Nothing increments it yet.
	LinkVersion int64
	Active      bool
	// CreatedAt is epoch milliseconds.
	CreatedAt int64
}

// PublicView is what a redeeming customer may see. PaymentDetails stay private.
type PublicView struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Message     string `json:"message"`
	PaymentType string `json:"paymentType"`
}

func (b *Business) Public() PublicView {
	return PublicView{ID: b.ID, DisplayName: b.DisplayName, Message: b.Message, PaymentType: b.PaymentType}
}
