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

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		Type:          string(transaction.Type),
		Amount:        transaction.Amount,
		AmountInCents: transaction.AmountInCents,
		Status:        string(transaction.Status),
		ExternalID:    transaction.ExternalID,
		UserID:        transaction.UserID,
		Description:   transaction.Description,
		CreatedAt:     transaction.CreatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(transactionModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:            transactionModel.ID,
		Type:          entity.TransactionType(transactionModel.Type),
		Amount:        transactionModel.Amount,
		AmountInCents: transactionModel.AmountInCents,
		Status:        entity.TransactionStatus(transactionModel.Status),
		ExternalID:    transactionModel.ExternalID,
		UserID:        transactionModel.UserID,
		Description:   transactionModel.Description,
		CreatedAt:     transactionModel.CreatedAt,
	}
}

// Create saves a new transaction and assigns the generated ID on the entity
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"type":        transaction.Type,
		"user_id":     transaction.UserID,
		"external_id": transaction.ExternalID,
	})

	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Create(&transactionModel)

	if result.Error != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"user_id":     transaction.UserID,
			"external_id": transaction.ExternalID,
			"error_type":  string(r.errorClassifier.Classify(result.Error)),
			"error":       result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transaction.ID = transactionModel.ID

	r.logger.Info("Transaction created successfully", map[string]any{
		"transaction_id": transaction.ID,
		"type":           transaction.Type,
		"user_id":        transaction.UserID,
	})
	return nil
}

// GetByID retrieves a transaction by its primary key
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	r.logger.Debug("Getting transaction by ID", map[string]any{
		"transaction_id": id,
	})

	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).First(&transactionModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Transaction not found", map[string]any{
				"transaction_id": id,
			})
			return nil, errs.ErrTransactionNotFound
		}
		r.logger.Error("Failed to get transaction", map[string]any{
			"transaction_id": id,
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&transactionModel), nil
}

// ListAll returns every transaction joined with the owning user's email,
// newest first. Platform transactions have no owner and an empty email.
func (r *TransactionRepository) ListAll(ctx context.Context) ([]persistence.TransactionWithOwner, error) {
	type row struct {
		model.Transaction
		UserEmail string
	}

	var rows []row
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("transactions.*, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = transactions.user_id").
		Order("transactions.created_at DESC").
		Scan(&rows)

	if result.Error != nil {
		r.logger.Error("Failed to list transactions", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	listings := make([]persistence.TransactionWithOwner, 0, len(rows))
	for i := range rows {
		listings = append(listings, persistence.TransactionWithOwner{
			Transaction: *r.modelToEntity(&rows[i].Transaction),
			UserEmail:   rows[i].UserEmail,
		})
	}
	return listings, nil
}

// ListByUser returns a user's transactions, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list user transactions", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, *r.modelToEntity(&models[i]))
	}
	return transactions, nil
}

// ListUnreconciled returns payout-type transactions still pending. These are
// rows where the provider transfer succeeded but the payout leg never
// completed, so no payout sub-record exists.
func (r *TransactionRepository) ListUnreconciled(ctx context.Context) ([]entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("type = ? AND status = ?", string(entity.TypePayout), string(entity.StatusPending)).
		Order("created_at ASC").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list unreconciled transactions", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, *r.modelToEntity(&models[i]))
	}
	return transactions, nil
}
