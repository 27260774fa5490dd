package customerservice

// Customer профиль клиента из CustomerService
type Customer struct {
	ID               int64  `json:"id"`
	UserID           int64  `json:"userId"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Phone            string `json:"phone"`
	IdentityDocument string `json:"identityDocument"`
	Status           string `json:"status"`
}
