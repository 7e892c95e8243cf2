package usecase

import (
	"bus-reservation/internal/data/repository"
	"bus-reservation/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Bus     BusService
	Booking BookingService
	Payment PaymentService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Bus:     NewBusService(repo, log),
		Booking: NewBookingService(repo, log),
		Payment: NewPaymentService(repo, log),
	}
}
