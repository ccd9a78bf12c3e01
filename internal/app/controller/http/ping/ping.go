package ping

import (
	"context"
	"net/http"

	httputils "github.com/avGenie/go-order-processing/internal/app/controller/http/utils"
	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

func Ping(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		err := pinger.Ping(ctx)
		if err != nil {
			zap.L().Error("error while pinging storage", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
