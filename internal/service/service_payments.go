package service

import (
	"context"
	"fmt"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/adapter"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/config"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/store"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/utils"
	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
)

// paymentService is the concrete implementation of [PaymentService]. It
// creates provider intents through the payment adapter and records each
// charge attempt in the payments table.
type paymentService struct {
	paymentRepository store.PaymentRepository
	bookingRepository store.BookingRepository
	provider          adapter.PaymentProvider
	currency          string
	logger            *logger.Logger
}

// NewPaymentService constructs a [PaymentService] wired to the given
// repositories and payment provider.
func NewPaymentService(paymentRepository store.PaymentRepository, bookingRepository store.BookingRepository, provider adapter.PaymentProvider, cfg config.Payments, logger *logger.Logger) PaymentService {
	return &paymentService{
		paymentRepository: paymentRepository,
		bookingRepository: bookingRepository,
		provider:          provider,
		currency:          cfg.Currency,
		logger:            logger,
	}
}

// CreateIntent registers a provider charge for a booking owned by the user
// and persists the pending payment record. The client secret is returned
// once on the in-memory payment and never stored.
func (p *paymentService) CreateIntent(ctx context.Context, userID, bookingID string) (models.Payment, error) {
	log := logger.FromContext(ctx)

	if userID == "" || bookingID == "" {
		return models.Payment{}, ErrInvalidDataProvided
	}

	booking, err := p.bookingRepository.GetBooking(ctx, bookingID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("booking lookup for payment failed: %w", err)
	}
	if booking.UserID != userID {
		return models.Payment{}, ErrNotResourceOwner
	}
	if booking.Status != models.BookingStatusPending {
		log.Error().Str("status", booking.Status).Msg("booking is not payable in its current status")
		return models.Payment{}, ErrInvalidDataProvided
	}

	intent, err := p.provider.CreatePaymentIntent(ctx, booking.TotalPrice, p.currency, map[string]string{
		"booking_id": booking.BookingID,
		"user_id":    booking.UserID,
	})
	if err != nil {
		log.Err(err).Str("booking_id", bookingID).Msg("provider intent creation failed")
		return models.Payment{}, fmt.Errorf("provider intent creation failed: %w", err)
	}

	payment := models.Payment{
		PaymentID:        utils.NewUUID(),
		BookingID:        booking.BookingID,
		UserID:           booking.UserID,
		Amount:           booking.TotalPrice,
		Currency:         p.currency,
		Status:           models.PaymentStatusPending,
		ProviderIntentID: intent.ID,
	}

	created, err := p.paymentRepository.CreatePayment(ctx, payment)
	if err != nil {
		log.Err(err).Any("payment", payment).Msg("payment creation ended with error")
		return models.Payment{}, fmt.Errorf("payment creation ended with error: %w", err)
	}

	created.ClientSecret = intent.ClientSecret
	return created, nil
}

// ConfirmPayment re-reads the provider intent for a pending payment and
// settles the local records: a succeeded intent marks the payment succeeded
// and confirms its booking, a canceled intent marks the payment failed, any
// other provider status leaves the payment pending. Calling it on an
// already settled payment returns the record unchanged.
func (p *paymentService) ConfirmPayment(ctx context.Context, userID, paymentID string) (models.Payment, error) {
	log := logger.FromContext(ctx)

	payment, err := p.GetPayment(ctx, userID, paymentID)
	if err != nil {
		return models.Payment{}, err
	}
	if payment.Status != models.PaymentStatusPending {
		return payment, nil
	}

	intent, err := p.provider.GetPaymentIntent(ctx, payment.ProviderIntentID)
	if err != nil {
		log.Err(err).Str("payment_id", paymentID).Msg("provider intent lookup failed")
		return models.Payment{}, fmt.Errorf("provider intent lookup failed: %w", err)
	}

	switch intent.Status {
	case "succeeded":
		if err := p.paymentRepository.UpdatePaymentStatus(ctx, paymentID, models.PaymentStatusSucceeded); err != nil {
			log.Err(err).Str("payment_id", paymentID).Msg("payment settlement ended with error")
			return models.Payment{}, fmt.Errorf("payment settlement ended with error: %w", err)
		}
		if err := p.bookingRepository.UpdateBookingStatus(ctx, payment.BookingID, models.BookingStatusConfirmed); err != nil {
			log.Err(err).Str("booking_id", payment.BookingID).Msg("booking confirmation ended with error")
			return models.Payment{}, fmt.Errorf("booking confirmation ended with error: %w", err)
		}
		payment.Status = models.PaymentStatusSucceeded
	case "canceled":
		if err := p.paymentRepository.UpdatePaymentStatus(ctx, paymentID, models.PaymentStatusFailed); err != nil {
			log.Err(err).Str("payment_id", paymentID).Msg("payment settlement ended with error")
			return models.Payment{}, fmt.Errorf("payment settlement ended with error: %w", err)
		}
		payment.Status = models.PaymentStatusFailed
	default:
		// Card flow still in progress on the provider side.
		log.Debug().Str("payment_id", paymentID).Str("intent_status", intent.Status).Msg("payment not settled yet")
	}

	return payment, nil
}

// GetPayment returns a charge record if it belongs to the user.
func (p *paymentService) GetPayment(ctx context.Context, userID, paymentID string) (models.Payment, error) {
	if userID == "" || paymentID == "" {
		return models.Payment{}, ErrInvalidDataProvided
	}

	payment, err := p.paymentRepository.GetPayment(ctx, paymentID)
	if err != nil {
		return models.Payment{}, fmt.Errorf("payment lookup failed: %w", err)
	}
	if payment.UserID != userID {
		return models.Payment{}, ErrNotResourceOwner
	}

	return payment, nil
}
