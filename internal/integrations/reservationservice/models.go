package reservationservice

// CreateReservationRequest тело POST /reservation
type CreateReservationRequest struct {
	CustomerID      *int64        `json:"customerId,omitempty"`
	ReservationDate string        `json:"reservationDate"`
	ReservationTime string        `json:"reservationTime"`
	PeopleCount     int           `json:"peopleCount"`
	PaymentMethod   string        `json:"paymentMethod"`
	ReservationType string        `json:"reservationType"`
	Status          string        `json:"status"`
	EventTypeID     *int64        `json:"eventTypeId,omitempty"`
	EventShift      string        `json:"eventShift,omitempty"`
	Distribution    string        `json:"tableDistributionType,omitempty"`
	TableClothColor string        `json:"tableClothColor,omitempty"`
	HolderDocument  string        `json:"holderDocument,omitempty"`
	HolderName      string        `json:"holderName"`
	HolderEmail     string        `json:"holderEmail"`
	HolderPhone     string        `json:"holderPhone"`
	Observation     string        `json:"observation,omitempty"`
	TermsAccepted   bool          `json:"termsAccepted"`
	TotalAmount     float64       `json:"totalAmount"`
	Products        []ProductLine `json:"products,omitempty"`
	Tables          []TableLine   `json:"tables,omitempty"`
	Events          []ServiceLine `json:"events,omitempty"`
}

// ProductLine позиция предзаказа
type ProductLine struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// TableLine стол бронирования
type TableLine struct {
	TableID int64 `json:"tableId"`
}

// ServiceLine дополнительная услуга события
type ServiceLine struct {
	ServiceID int64   `json:"serviceId"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// Reservation ответ reservation-service
type Reservation struct {
	ID              int64   `json:"id"`
	Code            string  `json:"code"`
	CustomerID      *int64  `json:"customerId"`
	ReservationDate string  `json:"reservationDate"`
	ReservationTime string  `json:"reservationTime"`
	PeopleCount     int     `json:"peopleCount"`
	Status          string  `json:"status"`
	PaymentMethod   string  `json:"paymentMethod"`
	ReservationType string  `json:"reservationType"`
	HolderName      string  `json:"holderName"`
	HolderEmail     string  `json:"holderEmail"`
	HolderPhone     string  `json:"holderPhone"`
	TotalAmount     float64 `json:"totalAmount"`
}

// UpdateStatusRequest тело PATCH /reservation/{id}/status
type UpdateStatusRequest struct {
	Status        string  `json:"status"`
	TransactionID string  `json:"externalTransactionId,omitempty"`
	AmountPaid    float64 `json:"amountPaid,omitempty"`
}

// ScheduleAvailability доступность времени на дату (бронирование стола)
type ScheduleAvailability struct {
	Time      string              `json:"time"`
	Shift     string              `json:"shift,omitempty"`
	Available bool                `json:"available"`
	Tables    []TableAvailability `json:"tables"`
}

// TableAvailability стол в слоте
type TableAvailability struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// EventShiftAvailability занятость смен на дату
type EventShiftAvailability struct {
	AvailableShifts []int64 `json:"availableShifts"`
	OccupiedShifts  []int64 `json:"occupiedShifts"`
}
