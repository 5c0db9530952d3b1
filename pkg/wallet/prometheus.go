package wallet

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics used in monitoring service.
var (
	operations = []string{
		opGetBalance,
		opGetClaims,
		opGetTransactionHistory,
		opGetTokenBalance,
		opSendAsset,
		opClaimAllGas,
		opMintTokens,
		opTransferToken,
	}

	calledCounter = map[string]prometheus.Counter{}
	failedCounter = map[string]prometheus.Counter{}
)

func incCalled(op string) {
	if ctr, ok := calledCounter[op]; ok {
		ctr.Inc()
	}
}

func incFailed(op string) {
	if ctr, ok := failedCounter[op]; ok {
		ctr.Inc()
	}
}

func init() {
	for _, op := range operations {
		called := prometheus.NewCounter(
			prometheus.CounterOpts{
				Help:      fmt.Sprintf("Number of %s calls", op),
				Name:      fmt.Sprintf("%s_called", op),
				Namespace: "neowallet",
			},
		)
		failed := prometheus.NewCounter(
			prometheus.CounterOpts{
				Help:      fmt.Sprintf("Number of failed %s calls", op),
				Name:      fmt.Sprintf("%s_failed", op),
				Namespace: "neowallet",
			},
		)
		prometheus.MustRegister(called, failed)
		calledCounter[op] = called
		failedCounter[op] = failed
	}
}
