package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/catalogservice"
	"github.com/m04kA/MRK-ReservationService/internal/service/catalog/models"
	"github.com/m04kA/MRK-ReservationService/pkg/money"
)

const (
	keyMenu     = "menu"
	keyTables   = "tables"
	keyServices = "services"
)

// Service справочники ресторана: меню, столы и услуги из management-service,
// справочник событий из конфигурации
type Service struct {
	source Source
	cache  Cache
	events domain.EventCatalog
	logger Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(source Source, cache Cache, events domain.EventCatalog, logger Logger) *Service {
	return &Service{
		source: source,
		cache:  cache,
		events: events,
		logger: logger,
	}
}

// EventCatalog справочник событий (только чтение)
func (s *Service) EventCatalog() domain.EventCatalog {
	return s.events
}

// Snapshot справочные данные для варианта мастера
func (s *Service) Snapshot(ctx context.Context, variant domain.Variant) (*models.Catalog, error) {
	menu, err := s.Menu(ctx)
	if err != nil {
		return nil, err
	}

	out := &models.Catalog{Variant: variant, Menu: menu}
	switch variant {
	case domain.VariantTable:
		out.Tables, err = s.Tables(ctx)
		if err != nil {
			return nil, err
		}
	case domain.VariantEvent:
		out.Services, err = s.Services(ctx)
		if err != nil {
			return nil, err
		}
		out.EventTypes = s.events.EventTypes
		out.Distributions = s.events.Distributions
		out.LinenColors = s.events.LinenColors
		out.Shifts = s.events.Shifts
	}
	return out, nil
}

// Menu позиции меню
func (s *Service) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	if s.fromCache(ctx, keyMenu, &items) {
		return items, nil
	}

	products, err := s.source.ListProducts(ctx)
	if err != nil {
		s.logger.Error("Catalog: failed to load menu: %v", err)
		return nil, fmt.Errorf("%w: menu: %v", ErrUnavailable, err)
	}

	items = make([]domain.MenuItem, 0, len(products))
	for _, p := range products {
		items = append(items, toMenuItem(p))
	}
	s.toCache(ctx, keyMenu, items)
	return items, nil
}

// Tables столы ресторана
func (s *Service) Tables(ctx context.Context) ([]domain.Table, error) {
	var tables []domain.Table
	if s.fromCache(ctx, keyTables, &tables) {
		return tables, nil
	}

	remote, err := s.source.ListTables(ctx)
	if err != nil {
		s.logger.Error("Catalog: failed to load tables: %v", err)
		return nil, fmt.Errorf("%w: tables: %v", ErrUnavailable, err)
	}

	tables = make([]domain.Table, 0, len(remote))
	for _, t := range remote {
		tables = append(tables, toTable(t))
	}
	s.toCache(ctx, keyTables, tables)
	return tables, nil
}

// Services дополнительные услуги для событий
func (s *Service) Services(ctx context.Context) ([]domain.AdditionalService, error) {
	var services []domain.AdditionalService
	if s.fromCache(ctx, keyServices, &services) {
		return services, nil
	}

	remote, err := s.source.ListServices(ctx)
	if err != nil {
		s.logger.Error("Catalog: failed to load services: %v", err)
		return nil, fmt.Errorf("%w: services: %v", ErrUnavailable, err)
	}

	services = make([]domain.AdditionalService, 0, len(remote))
	for _, svc := range remote {
		if !svc.Active {
			continue
		}
		services = append(services, toService(svc))
	}
	s.toCache(ctx, keyServices, services)
	return services, nil
}

// GetMenuItem позиция меню по id
func (s *Service) GetMenuItem(ctx context.Context, id int64) (*domain.MenuItem, error) {
	items, err := s.Menu(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("%w: menu item id=%d", ErrNotFound, id)
}

// GetTable стол по id
func (s *Service) GetTable(ctx context.Context, id int64) (*domain.Table, error) {
	tables, err := s.Tables(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tables {
		if tables[i].ID == id {
			t := tables[i]
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: table id=%d", ErrNotFound, id)
}

// GetAdditionalService услуга по id
func (s *Service) GetAdditionalService(ctx context.Context, id int64) (*domain.AdditionalService, error) {
	services, err := s.Services(ctx)
	if err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].ID == id {
			svc := services[i]
			return &svc, nil
		}
	}
	return nil, fmt.Errorf("%w: service id=%d", ErrNotFound, id)
}

func (s *Service) fromCache(ctx context.Context, key string, dst interface{}) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		s.logger.Warn("Catalog: cache read failed for key=%s: %v", key, err)
		return false
	}
	return ok
}

func (s *Service) toCache(ctx context.Context, key string, v interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, v); err != nil {
		s.logger.Warn("Catalog: cache write failed for key=%s: %v", key, err)
	}
}

func toMenuItem(p catalogservice.Product) domain.MenuItem {
	category := "Sin categoría"
	if p.Category != nil && p.Category.Name != "" {
		category = p.Category.Name
	}
	return domain.MenuItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    category,
		Price:       money.FromFloat(p.Price),
		Available:   p.Active && strings.EqualFold(p.Status, catalogservice.StatusAvailable),
	}
}

func toTable(t catalogservice.Table) domain.Table {
	location := strings.TrimSpace(t.Location)
	if location == "" {
		location = domain.DefaultTableLocation
	}
	status := strings.ToUpper(t.Status)
	return domain.Table{
		ID:        t.ID,
		Code:      t.Code,
		Capacity:  t.Capacity,
		Shape:     domain.ParseTableShape(t.Shape),
		Location:  location,
		Available: t.Active && status != catalogservice.StatusOccupied && status != catalogservice.StatusReserved,
	}
}

func toService(svc catalogservice.Service) domain.AdditionalService {
	unit := svc.Unit
	if unit == "" {
		unit = "evento"
	}
	return domain.AdditionalService{
		ID:          svc.ID,
		Name:        svc.Name,
		Description: svc.Description,
		Unit:        unit,
		Price:       money.FromFloat(svc.Price),
		Category:    domain.ParseServiceCategory(svc.Type),
	}
}
