package select_slot

// SelectSlotRequest HTTP request model: ключ слота из снимка доступности ("19:30" или id смены)
type SelectSlotRequest struct {
	Slot string `json:"slot"`
}
