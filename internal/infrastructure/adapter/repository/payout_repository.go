package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/marketpay/marketpay/internal/domain/entity"
	errs "github.com/marketpay/marketpay/internal/domain/error"
	coreport "github.com/marketpay/marketpay/internal/domain/port/core"
	"github.com/marketpay/marketpay/internal/domain/port/persistence"
	"github.com/marketpay/marketpay/internal/infrastructure/adapter/model"
)

// PayoutRepository implements PayoutRepository interface using GORM
type PayoutRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPayoutRepository creates a new PayoutRepository instance
func NewPayoutRepository(db *gorm.DB, logger coreport.Logger) *PayoutRepository {
	return &PayoutRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a payout entity to a database model
func (r *PayoutRepository) entityToModel(payout *entity.Payout) model.Payout {
	return model.Payout{
		TransactionID: payout.TransactionID,
		UserID:        payout.UserID,
		Amount:        payout.Amount,
		AmountInCents: payout.AmountInCents,
		TransferID:    payout.TransferID,
		PayoutID:      payout.PayoutID,
		Status:        string(payout.Status),
		CreatedAt:     payout.CreatedAt,
	}
}

// modelToEntity converts a payout model to an entity
func (r *PayoutRepository) modelToEntity(payoutModel *model.Payout) *entity.Payout {
	return &entity.Payout{
		ID:            payoutModel.ID,
		TransactionID: payoutModel.TransactionID,
		UserID:        payoutModel.UserID,
		Amount:        payoutModel.Amount,
		AmountInCents: payoutModel.AmountInCents,
		TransferID:    payoutModel.TransferID,
		PayoutID:      payoutModel.PayoutID,
		Status:        entity.TransactionStatus(payoutModel.Status),
		CreatedAt:     payoutModel.CreatedAt,
	}
}

// Create saves a new payout row and assigns the generated ID on the entity
func (r *PayoutRepository) Create(ctx context.Context, payout *entity.Payout) error {
	r.logger.Debug("Creating payout record", map[string]any{
		"transaction_id": payout.TransactionID,
		"user_id":        payout.UserID,
		"transfer_id":    payout.TransferID,
	})

	payoutModel := r.entityToModel(payout)

	result := r.db.WithContext(ctx).Create(&payoutModel)

	if result.Error != nil {
		r.logger.Error("Failed to create payout record", map[string]any{
			"transaction_id": payout.TransactionID,
			"user_id":        payout.UserID,
			"error_type":     string(r.errorClassifier.Classify(result.Error)),
			"error":          result.Error.Error(),
		})
		// The unique index on transaction_id enforces the 1:1 pairing with
		// the transaction row
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return fmt.Errorf("%w: transaction already has a payout record", errs.ErrInvalidRequest)
		}
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	payout.ID = payoutModel.ID

	r.logger.Info("Payout record created successfully", map[string]any{
		"payout_id":      payout.ID,
		"transaction_id": payout.TransactionID,
		"user_id":        payout.UserID,
	})
	return nil
}

// GetByTransactionID retrieves the payout owned by a transaction
func (r *PayoutRepository) GetByTransactionID(ctx context.Context, transactionID uint64) (*entity.Payout, error) {
	var payoutModel model.Payout
	result := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&payoutModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		r.logger.Error("Failed to get payout record", map[string]any{
			"transaction_id": transactionID,
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&payoutModel), nil
}

// ListByUser returns a user's payouts joined with the parent transaction,
// newest first
func (r *PayoutRepository) ListByUser(ctx context.Context, userID uint64) ([]persistence.PayoutHistoryEntry, error) {
	type row struct {
		model.Payout
		TransactionStatus     string
		TransactionExternalID string
	}

	var rows []row
	result := r.db.WithContext(ctx).Model(&model.Payout{}).
		Select("payouts.*, transactions.status AS transaction_status, transactions.external_id AS transaction_external_id").
		Joins("JOIN transactions ON transactions.id = payouts.transaction_id").
		Where("payouts.user_id = ?", userID).
		Order("payouts.created_at DESC").
		Scan(&rows)

	if result.Error != nil {
		r.logger.Error("Failed to list user payouts", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	entries := make([]persistence.PayoutHistoryEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, persistence.PayoutHistoryEntry{
			Payout:                *r.modelToEntity(&rows[i].Payout),
			TransactionStatus:     entity.TransactionStatus(rows[i].TransactionStatus),
			TransactionExternalID: rows[i].TransactionExternalID,
		})
	}
	return entries, nil
}
