// Package receipt turns committed ledger entries into receipt log lines.
// It hangs off the in-process event bus so the checkout path never waits
// on printing.
package receipt

import (
	"fmt"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/service"
)

type Printer struct {
	bus EventBus.Bus
}

func NewPrinter(bus EventBus.Bus) *Printer {
	return &Printer{
		bus: bus,
	}
}

func (p *Printer) Subscribe() error {
	if err := p.bus.SubscribeAsync(service.TopicTransactionCommitted, p.print, false); err != nil {
		return fmt.Errorf("p.bus.SubscribeAsync -> %w", err)
	}

	return nil
}

func (p *Printer) print(tx domain.Transaction) {
	fields := []zap.Field{
		zap.Int64("transaction_id", tx.ID),
		zap.String("kind", string(tx.Kind)),
		zap.Uint("member_id", tx.MemberID),
		zap.String("member_name", tx.MemberName),
		zap.String("amount", tx.Amount.StringFixed(2)),
	}

	for _, item := range tx.Items {
		fields = append(fields, zap.String(
			fmt.Sprintf("item_%d", item.ProductID),
			fmt.Sprintf("%v x %v @ %v = %v", item.Quantity, item.ProductName, item.PriceAtSale.StringFixed(2), item.Subtotal.StringFixed(2)),
		))
	}

	zap.L().Info("receipt", fields...)
}
