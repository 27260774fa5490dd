package catalogservice

// Product позиция меню (публичный каталог management-service)
type Product struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	PictureURL  string    `json:"pictureUrl"`
	Status      string    `json:"status"`
	Active      bool      `json:"active"`
	Category    *Category `json:"category"`
}

// Category категория меню
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Table стол ресторана
type Table struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Capacity int    `json:"capacity"`
	Location string `json:"location"`
	Shape    string `json:"shape"`
	Status   string `json:"status"`
	Active   bool   `json:"active"`
}

// Service дополнительная услуга для событий
type Service struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Type        string  `json:"tipoServicio"`
	Active      bool    `json:"active"`
}

const (
	StatusAvailable = "DISPONIBLE"
	StatusOccupied  = "OCUPADA"
	StatusReserved  = "RESERVADA"
)
