package notificationservice

// ReservationNotification данные для WhatsApp и email уведомления
type ReservationNotification struct {
	CustomerName      string      `json:"customerName"`
	CustomerPhone     string      `json:"customerPhone"`
	CustomerEmail     string      `json:"customerEmail,omitempty"`
	ReservationCode   string      `json:"reservationCode"`
	ReservationDate   string      `json:"reservationDate"`
	ReservationTime   string      `json:"reservationTime"`
	GuestCount        int         `json:"guestCount"`
	TableInfo         string      `json:"tableInfo,omitempty"`
	SpecialRequests   string      `json:"specialRequests,omitempty"`
	PaymentType       string      `json:"paymentType"`
	PaymentStatus     string      `json:"paymentStatus,omitempty"`
	TotalAmount       float64     `json:"totalAmount,omitempty"`
	ReservationStatus string      `json:"reservationStatus,omitempty"`
	ReservationType   string      `json:"reservationType,omitempty"`
	ReservationID     int64       `json:"reservationId,omitempty"`
	HasPreOrder       bool        `json:"hasPreOrder"`
	OrderItems        []OrderItem `json:"orderItems,omitempty"`
}

// OrderItem позиция предзаказа в уведомлении
type OrderItem struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
}

// Response ответ сервиса уведомлений
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Kind тип события бронирования
type Kind string

const (
	KindConfirmed Kind = "confirmed"
	KindCancelled Kind = "cancelled"
)

// Event сообщение в брокере
type Event struct {
	Kind         Kind                     `json:"kind"`
	Notification *ReservationNotification `json:"notification"`
	OccurredAt   string                   `json:"occurredAt"`
}
