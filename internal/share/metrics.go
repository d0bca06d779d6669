package share

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var linksCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "share_links_created_total",
	Help: "Share links created. Repeated enables of an existing link are not counted.",
})
