package notifier

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/kettari/weather-station/internal/entity"
)

const adviceTimeout = 30 * time.Second

type AdviceProvider interface {
	Advise(ctx context.Context, weather string) (*string, error)
}

// Advisor prints a recommendation for every weather update
type Advisor struct {
	provider AdviceProvider
	out      io.Writer
	timeout  time.Duration
}

var _ entity.Observer = (*Advisor)(nil)

func NewAdvisor(provider AdviceProvider, out io.Writer) *Advisor {
	return &Advisor{provider: provider, out: out, timeout: adviceTimeout}
}

func (a *Advisor) Update(notification string) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	advice, err := a.provider.Advise(ctx, notification)
	if err != nil {
		slog.Error("unable to get advice", "weather", notification, "error", err)
		return
	}
	if _, err = fmt.Fprintf(a.out, "Conseil : %s\n", *advice); err != nil {
		slog.Error("unable to print advice", "error", err)
	}
}
