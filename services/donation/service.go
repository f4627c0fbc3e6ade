package donation

import (
	"errors"
	"time"

	"akshara/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidAmount rejects non-positive donation amounts.
var ErrInvalidAmount = errors.New("donation amount must be positive")

// DonationService acknowledges donation intents. No payment is processed;
// the flow is a stub that records the pledge and reports its impact.
type DonationService interface {
	Process(intent models.DonationIntent) (*models.DonationReceipt, error)
}

// DefaultDonationService implements DonationService.
type DefaultDonationService struct {
	Logger *zap.Logger
}

// ImpactFor maps an amount in rupees to the impact blurb shown on the site.
func ImpactFor(amount int) string {
	switch {
	case amount < 1000:
		return "Stationary kit for 5 students"
	case amount < 3000:
		return "Textbooks for a whole class"
	default:
		return "Scholarship for 1 student"
	}
}

// Process validates the intent and returns a receipt.
func (s *DefaultDonationService) Process(intent models.DonationIntent) (*models.DonationReceipt, error) {
	if intent.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	frequency := intent.Frequency
	if frequency == "" {
		frequency = "one-time"
	}

	receipt := &models.DonationReceipt{
		ReceiptID: uuid.New().String(),
		Amount:    intent.Amount,
		Frequency: frequency,
		Impact:    ImpactFor(intent.Amount),
		CreatedAt: time.Now().UTC(),
	}

	s.Logger.Info("donation intent recorded",
		zap.String("receiptId", receipt.ReceiptID),
		zap.Int("amount", receipt.Amount),
		zap.String("frequency", receipt.Frequency))
	return receipt, nil
}
