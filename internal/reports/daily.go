// Package reports runs the scheduled bookkeeping jobs. There is one today:
// the end-of-day close, which logs the day's sales and deposits just before
// midnight.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/clubverd/pos-api/internal/service"
)

const dailyCloseSpec = "59 23 * * *"

type DailyCloser struct {
	ledger *service.LedgerService
	cron   *cron.Cron
}

func NewDailyCloser(ledger *service.LedgerService) *DailyCloser {
	return &DailyCloser{
		ledger: ledger,
		cron:   cron.New(),
	}
}

// Start schedules the close job and kicks off the cron loop in its own
// goroutine.
func (c *DailyCloser) Start() error {
	if _, err := c.cron.AddFunc(dailyCloseSpec, c.runClose); err != nil {
		return fmt.Errorf("c.cron.AddFunc -> %w", err)
	}

	c.cron.Start()

	return nil
}

func (c *DailyCloser) Stop() {
	c.cron.Stop()
}

func (c *DailyCloser) runClose() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	since := service.Midnight(time.Now())

	sales, err := c.ledger.SalesSince(ctx, since)
	if err != nil {
		zap.L().Error("daily close failed", zap.Error(err))

		return
	}

	deposits, err := c.ledger.DepositsSince(ctx, since)
	if err != nil {
		zap.L().Error("daily close failed", zap.Error(err))

		return
	}

	zap.L().Info("daily close",
		zap.String("day", since.Format("2006-01-02")),
		zap.String("sales", sales.StringFixed(2)),
		zap.String("deposits", deposits.StringFixed(2)),
	)
}
