package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpdatesTotal — все обработанные апдейты по типу (message/callback).
	UpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shopbot_updates_total",
		Help: "Processed Telegram updates by kind.",
	}, []string{"kind"})

	// OrdersTotal — успешно отправленные оператору заказы.
	OrdersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopbot_orders_total",
		Help: "Orders dispatched to the operator chat.",
	})

	// SendErrorsTotal — ошибки отправки сообщений в Telegram.
	SendErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopbot_send_errors_total",
		Help: "Failed Telegram send attempts.",
	})
)
