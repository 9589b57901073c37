package importer

import "github.com/prometheus/client_golang/prometheus"

var importsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "imports_total",
		Help: "How many imports have been run, partitioned by the stage they ended in.",
	},
	[]string{"stage"},
)

var importedTransactions = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "import_transactions_created_total",
		Help: "How many transactions have been created by imports.",
	},
)

var importedCategories = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "import_categories_created_total",
		Help: "How many categories have been created by imports.",
	},
)

// Collectors returns the Prometheus metrics of the importer.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		importsTotal,
		importedTransactions,
		importedCategories,
	}
}
