package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"streakfade/internal/domain"
	"streakfade/internal/logger"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AlpacaRepository interface {
	PlaceOrder(req AlpacaPlaceOrderRequest) (*alpaca.Order, error)
	ClosePosition(symbol string) (*alpaca.Order, error)
	GetPositions() ([]alpaca.Position, error)
	IsMarketOpen() (bool, error)
	GetAccount() (*alpaca.Account, error)
	GetOrder(alpacaOrderID uuid.UUID) (*alpaca.Order, error)
	GetDailyCloses(ctx context.Context, symbols []string, days int) (map[string][]domain.AssetPrice, error)
	GetCoarseSnapshot(ctx context.Context, symbols []string) ([]domain.CoarseFundamental, error)
}

func NewAlpacaRepository(apiKey, apiSecret string, endpoint string) AlpacaRepository {
	client := alpaca.NewClient(alpaca.ClientOpts{
		APIKey:     apiKey,
		APISecret:  apiSecret,
		BaseURL:    endpoint,
		RetryLimit: 3,
	})

	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &alpacaRepositoryHandler{
		Client:   client,
		MdClient: mdClient,
	}
}

type alpacaRepositoryHandler struct {
	Client   *alpaca.Client
	MdClient *marketdata.Client
}

// GetDailyCloses returns up to `days` most recent daily closing
// prices per symbol, oldest first. Symbols with no bars at all are
// omitted from the result, not errored on.
func (h alpacaRepositoryHandler) GetDailyCloses(ctx context.Context, symbols []string, days int) (map[string][]domain.AssetPrice, error) {
	if len(symbols) == 0 {
		return map[string][]domain.AssetPrice{}, nil
	}

	// generous start window so weekends/holidays still leave `days`
	// trading days
	start := time.Now().UTC().AddDate(0, 0, -(days*2 + 7))

	bars, err := h.MdClient.GetMultiBars(symbols, marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneDay,
		Adjustment: marketdata.All,
		Start:      start,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get daily bars for %d symbols: %w", len(symbols), err)
	}

	out := map[string][]domain.AssetPrice{}
	for symbol, symbolBars := range bars {
		prices := []domain.AssetPrice{}
		for _, bar := range symbolBars {
			prices = append(prices, domain.AssetPrice{
				Symbol: symbol,
				Price:  bar.Close,
				Date:   bar.Timestamp.UTC(),
			})
		}
		sort.Slice(prices, func(i, j int) bool {
			return prices[i].Date.Before(prices[j].Date)
		})
		if len(prices) > days {
			prices = prices[len(prices)-days:]
		}
		out[symbol] = prices
	}

	return out, nil
}

// GetCoarseSnapshot builds the day's raw fundamental/price rows from
// the broker's snapshot endpoint. Symbols the broker has no daily bar
// for come back with HasFundamentalData unset.
func (h alpacaRepositoryHandler) GetCoarseSnapshot(ctx context.Context, symbols []string) ([]domain.CoarseFundamental, error) {
	log := logger.FromContext(ctx)

	if len(symbols) == 0 {
		assets, err := h.Client.GetAssets(alpaca.GetAssetsRequest{
			Status:     "active",
			AssetClass: "us_equity",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list assets: %w", err)
		}
		for _, asset := range assets {
			if asset.Tradable {
				symbols = append(symbols, asset.Symbol)
			}
		}
	}

	out := []domain.CoarseFundamental{}
	// the snapshot endpoint caps the symbol list per request
	const batchSize = 1000
	for i := 0; i < len(symbols); i += batchSize {
		end := i + batchSize
		if end > len(symbols) {
			end = len(symbols)
		}

		snapshots, err := h.MdClient.GetSnapshots(symbols[i:end], marketdata.GetSnapshotRequest{})
		if err != nil {
			return nil, fmt.Errorf("failed to get snapshots: %w", err)
		}

		for symbol, snapshot := range snapshots {
			if snapshot == nil || snapshot.DailyBar == nil {
				out = append(out, domain.CoarseFundamental{Symbol: symbol})
				continue
			}
			out = append(out, domain.CoarseFundamental{
				Symbol:             symbol,
				AdjustedPrice:      snapshot.DailyBar.Close,
				Volume:             float64(snapshot.DailyBar.Volume),
				HasFundamentalData: true,
			})
		}
	}

	log.Infof("built coarse snapshot for %d symbols", len(out))

	return out, nil
}

func (h alpacaRepositoryHandler) GetPositions() ([]alpaca.Position, error) {
	positions, err := h.Client.GetPositions()
	if err != nil {
		return nil, fmt.Errorf("get positions: %w", err)
	}
	return positions, nil
}

func (h alpacaRepositoryHandler) IsMarketOpen() (bool, error) {
	clock, err := h.Client.GetClock()
	if err != nil {
		return false, err
	}
	return clock.IsOpen, nil
}

func (h alpacaRepositoryHandler) GetAccount() (*alpaca.Account, error) {
	acct, err := h.Client.GetAccount()
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acct, nil
}

func (h alpacaRepositoryHandler) GetOrder(alpacaOrderID uuid.UUID) (*alpaca.Order, error) {
	return h.Client.GetOrder(alpacaOrderID.String())
}

func (h alpacaRepositoryHandler) ClosePosition(symbol string) (*alpaca.Order, error) {
	order, err := h.Client.ClosePosition(symbol, alpaca.ClosePositionRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to close position %s: %w", symbol, err)
	}
	return order, nil
}

type AlpacaPlaceOrderRequest struct {
	TradeOrderID    uuid.UUID
	AmountInDollars decimal.Decimal
	Symbol          string
	Side            alpaca.Side
}

func (a AlpacaPlaceOrderRequest) isValid() error {
	if a.AmountInDollars.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount is <= 0, order of | %s %s | not sent", a.AmountInDollars.String(), a.Side)
	}
	return nil
}

func (h alpacaRepositoryHandler) PlaceOrder(req AlpacaPlaceOrderRequest) (*alpaca.Order, error) {
	if err := req.isValid(); err != nil {
		return nil, fmt.Errorf("invalid input to alpaca submit order on trade order %s: %w", req.TradeOrderID.String(), err)
	}

	notional := req.AmountInDollars.Round(2)
	order, err := h.Client.PlaceOrder(alpaca.PlaceOrderRequest{
		Symbol:        req.Symbol,
		Notional:      &notional,
		Side:          req.Side,
		Type:          alpaca.Market,
		TimeInForce:   alpaca.Day,
		ClientOrderID: req.TradeOrderID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("order for trade request %s %s %s failed: %w", req.Side, req.Symbol, notional.String(), err)
	}

	return order, nil
}
