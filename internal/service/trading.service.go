package service

import (
	"context"
	"database/sql"
	"fmt"

	"streakfade/internal/db/models/postgres/public/model"
	"streakfade/internal/db/models/postgres/public/table"
	"streakfade/internal/logger"
	"streakfade/internal/repository"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeService turns target allocations into broker orders. Orders
// are fire-and-forget: submission is recorded but fill status is
// never consulted by the strategy.
type TradeService interface {
	// SetTargetAllocation commits fraction-of-equity to symbol.
	// Negative fractions open a short exposure.
	SetTargetAllocation(ctx context.Context, symbol string, fraction decimal.Decimal) error
	// Liquidate closes whatever position the broker holds in symbol.
	Liquidate(ctx context.Context, symbol string) error
	// UpdateAllPendingOrders reconciles recorded orders that are still
	// pending or submitted against the broker's view of them.
	UpdateAllPendingOrders(ctx context.Context) error
}

type tradeServiceHandler struct {
	Db                   *sql.DB
	AlpacaRepository     repository.AlpacaRepository
	TradeOrderRepository repository.TradeOrderRepository
}

func NewTradeService(db *sql.DB, alpacaRepository repository.AlpacaRepository, tradeOrderRepository repository.TradeOrderRepository) TradeService {
	return tradeServiceHandler{
		Db:                   db,
		AlpacaRepository:     alpacaRepository,
		TradeOrderRepository: tradeOrderRepository,
	}
}

func (h tradeServiceHandler) SetTargetAllocation(ctx context.Context, symbol string, fraction decimal.Decimal) error {
	log := logger.FromContext(ctx)

	if fraction.IsZero() {
		return fmt.Errorf("failed to submit order for %s: zero allocation", symbol)
	}

	account, err := h.AlpacaRepository.GetAccount()
	if err != nil {
		return fmt.Errorf("failed to size allocation for %s: %w", symbol, err)
	}

	amountInDollars := account.Equity.Mul(fraction.Abs()).Round(2)
	if amountInDollars.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("failed to submit order for %s: amount must be >= 1, got %s", symbol, amountInDollars.String())
	}

	side := alpaca.Buy
	orderSide := model.TradeOrderSide_Buy
	if fraction.IsNegative() {
		side = alpaca.Sell
		orderSide = model.TradeOrderSide_Sell
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insertedOrder, err := h.TradeOrderRepository.Add(tx, model.TradeOrder{
		Symbol:                   symbol,
		Side:                     orderSide,
		RequestedAmountInDollars: amountInDollars,
		Status:                   model.TradeOrderStatus_Pending,
	})
	if err != nil {
		return err
	}

	order, err := h.AlpacaRepository.PlaceOrder(repository.AlpacaPlaceOrderRequest{
		TradeOrderID:    insertedOrder.TradeOrderID,
		AmountInDollars: amountInDollars,
		Symbol:          symbol,
		Side:            side,
	})
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(order.ID)
	if err != nil {
		return err
	}

	_, err = h.TradeOrderRepository.Update(tx, insertedOrder.TradeOrderID, model.TradeOrder{
		Status:     model.TradeOrderStatus_Submitted,
		ProviderID: &orderID,
	}, postgres.ColumnList{
		table.TradeOrder.Status,
		table.TradeOrder.ProviderID,
	})
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return err
	}

	log.Infof("submitted %s order for %s: $%s (%s of equity)", side, symbol, amountInDollars.String(), fraction.String())

	return nil
}

func (h tradeServiceHandler) Liquidate(ctx context.Context, symbol string) error {
	log := logger.FromContext(ctx)

	order, err := h.AlpacaRepository.ClosePosition(symbol)
	if err != nil {
		return fmt.Errorf("failed to liquidate %s: %w", symbol, err)
	}

	providerID, err := uuid.Parse(order.ID)
	if err != nil {
		return err
	}

	notes := "max holding period liquidation"
	_, err = h.TradeOrderRepository.Add(nil, model.TradeOrder{
		Symbol:                   symbol,
		Side:                     model.TradeOrderSide_Sell,
		RequestedAmountInDollars: decimal.Zero,
		Status:                   model.TradeOrderStatus_Submitted,
		ProviderID:               &providerID,
		Notes:                    &notes,
	})
	if err != nil {
		return fmt.Errorf("failed to record liquidation of %s: %w", symbol, err)
	}

	log.Infof("liquidated %s", symbol)

	return nil
}

func (h tradeServiceHandler) UpdateAllPendingOrders(ctx context.Context) error {
	log := logger.FromContext(ctx)

	orders, err := h.TradeOrderRepository.List()
	if err != nil {
		return fmt.Errorf("failed to list orders for reconciliation: %w", err)
	}

	updated := 0
	for _, order := range orders {
		if order.Status != model.TradeOrderStatus_Pending && order.Status != model.TradeOrderStatus_Submitted {
			continue
		}
		if order.ProviderID == nil {
			continue
		}

		providerOrder, err := h.AlpacaRepository.GetOrder(*order.ProviderID)
		if err != nil {
			return fmt.Errorf("failed to get provider order for trade order %s: %w", order.TradeOrderID.String(), err)
		}

		status := statusFromProvider(providerOrder.Status)
		if status == order.Status {
			continue
		}

		_, err = h.TradeOrderRepository.Update(nil, order.TradeOrderID, model.TradeOrder{
			Status: status,
		}, postgres.ColumnList{
			table.TradeOrder.Status,
		})
		if err != nil {
			return fmt.Errorf("failed to update trade order %s: %w", order.TradeOrderID.String(), err)
		}
		updated++
	}

	if updated > 0 {
		log.Infof("reconciled %d trade orders", updated)
	}

	return nil
}

func statusFromProvider(providerStatus string) model.TradeOrderStatus {
	switch providerStatus {
	case "filled":
		return model.TradeOrderStatus_Completed
	case "canceled", "expired", "rejected", "suspended":
		return model.TradeOrderStatus_Error
	case "new", "accepted", "partially_filled", "pending_new":
		return model.TradeOrderStatus_Submitted
	}
	return model.TradeOrderStatus_Submitted
}
