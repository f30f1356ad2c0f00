package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/commute-map/internal/domain"
	"github.com/commute-map/internal/domain/repository"
	"github.com/commute-map/internal/pkg/errors"
	"github.com/commute-map/internal/pkg/utils"
)

// MapOptions - настройки оркестратора карты
type MapOptions struct {
	// RouteTimeout ограничивает один фоновый запрос маршрута
	RouteTimeout time.Duration
	// NewRandomSource дает случайность для генерации домов; по умолчанию seed от времени
	NewRandomSource func() RandomSource
}

// RouteTicket - ответ на запрос маршрута
type RouteTicket struct {
	Issued bool   `json:"issued"`
	Token  uint64 `json:"token,omitempty"`
}

// MapUseCase - оркестратор карты по сессиям: офис, синтетические дома и текущий маршрут
type MapUseCase struct {
	sessions   repository.SessionRepository
	directions repository.DirectionsRepository
	geocoder   repository.GeocodeRepository
	presenter  *DistancePresenter
	logger     *zap.Logger
	opts       MapOptions

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMapUseCase - создание оркестратора. Close останавливает незавершенные запросы маршрутов.
func NewMapUseCase(
	sessions repository.SessionRepository,
	directions repository.DirectionsRepository,
	geocoder repository.GeocodeRepository,
	presenter *DistancePresenter,
	logger *zap.Logger,
	opts MapOptions,
) *MapUseCase {
	if opts.RouteTimeout <= 0 {
		opts.RouteTimeout = 30 * time.Second
	}
	if opts.NewRandomSource == nil {
		opts.NewRandomSource = NewRandomSource
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &MapUseCase{
		sessions:   sessions,
		directions: directions,
		geocoder:   geocoder,
		presenter:  presenter,
		logger:     logger,
		opts:       opts,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SelectOffice - задает офис и ставит в очередь перемещение карты к нему. Текущий маршрут сохраняется.
func (uc *MapUseCase) SelectOffice(sessionID string, point domain.GeoPoint) *domain.MapSession {
	s := uc.sessions.Update(sessionID, func(s *domain.MapSession) {
		office := point
		pan := point
		s.Office = &office
		s.PanTo = &pan
		s.OfficeVersion++
	})

	uc.logger.Debug("Office selected",
		zap.String("session", sessionID),
		zap.Float64("lat", point.Lat),
		zap.Float64("lng", point.Lng))

	return s
}

// SelectOfficeByAddress - геокодирует адрес и выбирает результат как офис
func (uc *MapUseCase) SelectOfficeByAddress(ctx context.Context, sessionID, address string) (*domain.Place, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"address": "required"})
	}

	place, err := uc.geocoder.Geocode(ctx, address)
	if err != nil {
		uc.logger.Info("Failed to geocode office address", zap.String("address", address), zap.Error(err))
		return nil, errors.ErrGeocodeFailed.WithDetails(map[string]interface{}{"address": address})
	}
	if !utils.ValidateCoordinates(place.Location.Lat, place.Location.Lng) {
		uc.logger.Info("Geocoder returned invalid coordinates", zap.String("address", address))
		return nil, errors.ErrGeocodeFailed.WithDetails(map[string]interface{}{"address": address})
	}

	uc.SelectOffice(sessionID, place.Location)
	return place, nil
}

// Autocomplete - подсказки адресов для поиска офиса
func (uc *MapUseCase) Autocomplete(ctx context.Context, input string) ([]domain.PlaceSuggestion, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return []domain.PlaceSuggestion{}, nil
	}

	suggestions, err := uc.geocoder.Autocomplete(ctx, input)
	if err != nil {
		uc.logger.Warn("Autocomplete failed", zap.String("input", input), zap.Error(err))
		return nil, errors.ErrProviderError
	}
	return suggestions, nil
}

// RequestRoute - асинхронный запрос маршрута driving от origin до офиса.
// Без офиса ничего не делает. Заменить маршрут может только последний запрос при
// неизменном офисе; ошибки оставляют маршрут как был.
func (uc *MapUseCase) RequestRoute(sessionID string, origin domain.GeoPoint) RouteTicket {
	var ticket *domain.RouteTicket
	uc.sessions.Update(sessionID, func(s *domain.MapSession) {
		if s.Office == nil {
			return
		}
		s.RouteSeq++
		ticket = &domain.RouteTicket{
			Token:         s.RouteSeq,
			OfficeVersion: s.OfficeVersion,
			Origin:        origin,
			Destination:   *s.Office,
		}
	})

	if ticket == nil {
		return RouteTicket{Issued: false}
	}

	uc.wg.Add(1)
	go uc.resolveRoute(sessionID, *ticket)

	return RouteTicket{Issued: true, Token: ticket.Token}
}

func (uc *MapUseCase) resolveRoute(sessionID string, ticket domain.RouteTicket) {
	defer uc.wg.Done()

	ctx, cancel := context.WithTimeout(uc.ctx, uc.opts.RouteTimeout)
	defer cancel()

	log := uc.logger.With(zap.String("session", sessionID), zap.Uint64("token", ticket.Token))

	result, err := uc.directions.GetDirections(ctx, domain.DirectionsRequest{
		Origin:      ticket.Origin,
		Destination: ticket.Destination,
		Mode:        domain.TravelModeDriving,
	})
	if err != nil {
		log.Debug("Route request failed", zap.Error(err))
		return
	}
	if result == nil || result.Status != domain.DirectionsStatusOK {
		status := domain.DirectionsStatus("")
		if result != nil {
			status = result.Status
		}
		log.Debug("Route request returned non-OK status", zap.String("status", string(status)))
		return
	}

	applied := false
	_, exists := uc.sessions.UpdateExisting(sessionID, func(s *domain.MapSession) {
		if s.RouteSeq != ticket.Token || s.OfficeVersion != ticket.OfficeVersion {
			return
		}
		s.Route = result
		applied = true
	})

	if !exists {
		log.Debug("Session gone, dropping route")
		return
	}
	if !applied {
		log.Debug("Discarding stale route result")
		return
	}
	log.Debug("Route updated", zap.Int("routes", len(result.Routes)))
}

// View - собирает все для отрисовки карты сессии. Дома генерируются заново только
// при смене координат офиса. Команда перемещения забирается.
func (uc *MapUseCase) View(sessionID string, zoom int, locale string) *domain.MapView {
	var pan *domain.GeoPoint
	s := uc.sessions.Update(sessionID, func(s *domain.MapSession) {
		pan = s.PanTo
		s.PanTo = nil

		if s.Office == nil {
			return
		}
		if key := s.Office.Key(); s.HousesKey != key || s.Houses == nil {
			s.Houses = GenerateHouses(*s.Office, uc.opts.NewRandomSource())
			s.HousesKey = key
		}
	})

	view := &domain.MapView{
		State:    s.State(),
		Zoom:     zoom,
		PanTo:    pan,
		Houses:   []domain.House{},
		Clusters: []domain.Cluster{},
		Rings:    []domain.Ring{},
	}

	if s.Office == nil {
		return view
	}

	office := *s.Office
	view.Office = &office

	houses := make([]domain.House, len(s.Houses))
	for i, p := range s.Houses {
		houses[i] = domain.House{ID: i, Position: p, Tier: ClassifyTier(office, p)}
	}
	view.Houses = houses
	view.Clusters = ClusterMarkers(houses, zoom)
	view.Rings = BuildRings(office)

	if s.Route != nil {
		view.Route = BuildRouteOverlay(s.Route)
		if leg := s.Route.FirstLeg(); leg != nil {
			view.Leg = leg
			view.Commute = uc.presenter.Present(leg, locale)
		}
	}

	return view
}

// ClearSession - забывает все о сессии
func (uc *MapUseCase) ClearSession(sessionID string) {
	uc.sessions.Delete(sessionID)
	uc.logger.Debug("Session cleared", zap.String("session", sessionID))
}

// Wait ждет завершения всех незавершенных запросов маршрутов
func (uc *MapUseCase) Wait() {
	uc.wg.Wait()
}

// Close отменяет незавершенные запросы маршрутов и ждет их
func (uc *MapUseCase) Close() {
	uc.cancel()
	uc.wg.Wait()
}
