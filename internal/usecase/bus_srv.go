package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"bus-reservation/internal/data/entity"
	"bus-reservation/internal/data/repository"
	"bus-reservation/internal/dto/request"
	"bus-reservation/internal/dto/response"
	"bus-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BusService interface {
	CreateBus(ctx context.Context, req *request.CreateBusRequest) (*response.BusResponse, error)
	ListBuses(ctx context.Context) ([]response.BusResponse, error)
	GetBus(ctx context.Context, busID string) (*response.BusResponse, error)
	DeleteBus(ctx context.Context, busID string) error
}

type busService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBusService(repo *repository.Repository, log *zap.Logger) BusService {
	return &busService{
		repo: repo,
		log:  log.With(zap.String("service", "bus")),
	}
}

func (s *busService) CreateBus(ctx context.Context, req *request.CreateBusRequest) (*response.BusResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create bus validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	priceCents, err := utils.ParseAmount(req.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, err.Error())
	}

	now := time.Now()
	bus := &entity.Bus{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BusName:     req.BusName,
		Number:      req.Number,
		Origin:      req.Origin,
		Destination: req.Destination,
		Features:    req.Features,
		StartTime:   req.StartTime,
		ReachTime:   req.ReachTime,
		NoOfSeats:   req.NoOfSeats,
		PriceCents:  priceCents,
	}

	if err := s.repo.Bus.Create(ctx, bus); err != nil {
		s.log.Error("Failed to create bus",
			zap.Error(err),
			zap.String("number", req.Number),
		)
		return nil, fmt.Errorf("create bus: %w", err)
	}

	// Generate the seat rows, numbered 1..no_of_seats
	seats := make([]*entity.Seat, req.NoOfSeats)
	for i := 0; i < req.NoOfSeats; i++ {
		seats[i] = &entity.Seat{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			BusID:      bus.ID,
			SeatNumber: strconv.Itoa(i + 1),
			IsBooked:   false,
		}
	}

	if err := s.repo.Seat.CreateBatch(ctx, seats); err != nil {
		s.log.Error("Failed to create seats for bus",
			zap.Error(err),
			zap.String("bus_id", bus.ID.String()),
		)
		return nil, fmt.Errorf("create seats: %w", err)
	}

	s.log.Info("Bus created",
		zap.String("bus_id", bus.ID.String()),
		zap.String("number", bus.Number),
		zap.Int("seat_count", len(seats)),
	)

	resp := response.BusToResponse(bus, seats)
	return &resp, nil
}

func (s *busService) ListBuses(ctx context.Context) ([]response.BusResponse, error) {
	buses, err := s.repo.Bus.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list buses", zap.Error(err))
		return nil, fmt.Errorf("list buses: %w", err)
	}

	busResponses := make([]response.BusResponse, len(buses))
	for i, bus := range buses {
		seats, err := s.repo.Seat.FindByBusID(ctx, bus.ID)
		if err != nil {
			s.log.Error("Failed to load seats for bus",
				zap.Error(err),
				zap.String("bus_id", bus.ID.String()),
			)
			return nil, fmt.Errorf("load seats for bus %s: %w", bus.ID.String(), err)
		}
		busResponses[i] = response.BusToResponse(bus, seats)
	}

	return busResponses, nil
}

func (s *busService) GetBus(ctx context.Context, busID string) (*response.BusResponse, error) {
	id, err := uuid.Parse(busID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid bus ID format", entity.ErrValidation)
	}

	bus, err := s.repo.Bus.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get bus %s: %w", busID, err)
	}
	if bus == nil {
		return nil, entity.ErrBusNotFound
	}

	seats, err := s.repo.Seat.FindByBusID(ctx, bus.ID)
	if err != nil {
		return nil, fmt.Errorf("load seats for bus %s: %w", busID, err)
	}

	resp := response.BusToResponse(bus, seats)
	return &resp, nil
}

func (s *busService) DeleteBus(ctx context.Context, busID string) error {
	id, err := uuid.Parse(busID)
	if err != nil {
		return fmt.Errorf("%w: invalid bus ID format", entity.ErrValidation)
	}

	if err := s.repo.Bus.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Bus deleted", zap.String("bus_id", busID))
	return nil
}
