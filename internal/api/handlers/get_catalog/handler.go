package get_catalog

import (
	"errors"
	"net/http"

	"github.com/m04kA/MRK-ReservationService/internal/api/handlers"
	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/service/catalog"
)

const (
	msgInvalidVariant     = "tipo de reserva no válido, se espera table o event"
	msgCatalogUnavailable = "el catálogo no está disponible en este momento, inténtelo más tarde"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog?variant=table|event
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	variant := domain.Variant(r.URL.Query().Get("variant"))
	if variant == "" {
		variant = domain.VariantTable
	}
	if !variant.IsValid() {
		h.logger.Warn("GET /catalog - Invalid variant: %q", variant)
		handlers.RespondBadRequest(w, msgInvalidVariant)
		return
	}

	result, err := h.service.Snapshot(r.Context(), variant)
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			h.logger.Warn("GET /catalog - Catalog unavailable: variant=%s, error=%v", variant, err)
			handlers.RespondServiceUnavailable(w, msgCatalogUnavailable)
			return
		}
		h.logger.Error("GET /catalog - Failed to load catalog: variant=%s, error=%v", variant, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /catalog - Catalog retrieved: variant=%s, menu=%d", variant, len(result.Menu))
	handlers.RespondJSON(w, http.StatusOK, result)
}
