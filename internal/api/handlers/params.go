package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// ConfirmationTokenHeader заголовок с токеном подтверждения
const ConfirmationTokenHeader = "X-Confirmation-Token"

// ConfirmationToken токен подтверждения из заголовка или параметра ?token= (ссылка на квитанцию)
func ConfirmationToken(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get(ConfirmationTokenHeader)); token != "" {
		return token
	}
	return strings.TrimSpace(r.URL.Query().Get("token"))
}

// ReservationIDFromPath id бронирования из {reservationId}
func ReservationIDFromPath(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["reservationId"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid reservation id %q", raw)
	}
	return id, nil
}
