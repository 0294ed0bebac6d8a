package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas de execução de sync expostas em /metrics
var (
	SyncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creative_sync_runs_total",
		Help: "Total de execuções de sincronização, por status final",
	}, []string{"status"})

	CreativesSynced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "creative_sync_creatives_total",
		Help: "Total de criativos enviados para a dimensão",
	})

	PerformanceRowsSynced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "creative_sync_performance_rows_total",
		Help: "Total de linhas de performance enviadas para a tabela fato",
	})

	PerformanceRowsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "creative_sync_performance_rows_skipped_total",
		Help: "Total de linhas de performance ignoradas por falta de chave ou dados obrigatórios",
	})

	SyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "creative_sync_duration_seconds",
		Help:    "Duração das execuções de sincronização",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})
)
