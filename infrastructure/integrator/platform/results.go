package platform

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

// CompleteResults garante uma entrada por id pedido; ids sem resposta viram "sem dados"
func CompleteResults(adIDs []string, partial map[string]domain.MetricsResult) map[string]domain.MetricsResult {
	results := make(map[string]domain.MetricsResult, len(adIDs))

	for _, id := range adIDs {
		r, ok := partial[id]
		if !ok || (r.OK && r.Metrics == nil) {
			r = domain.MetricsFailed(domain.NoDataMessage)
		}
		results[id] = r
	}

	return results
}

// FailAll devolve o mesmo erro para todos os ids pedidos
func FailAll(adIDs []string, err error) map[string]domain.MetricsResult {
	results := make(map[string]domain.MetricsResult, len(adIDs))

	for _, id := range adIDs {
		results[id] = domain.MetricsFailed(err.Error())
	}

	return results
}

// FailRemaining marca com erro os ids ainda sem resultado, sem sobrescrever os que já têm
func FailRemaining(adIDs []string, results map[string]domain.MetricsResult, err error) {
	for _, id := range adIDs {
		if _, ok := results[id]; !ok {
			results[id] = domain.MetricsFailed(err.Error())
		}
	}
}

// Chunk divide a lista em lotes de no máximo size itens
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 {
		size = len(items)
	}

	chunks := make([][]T, 0, (len(items)+size-1)/max(size, 1))
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}

	return chunks
}

// Recover converte um panic dentro de um método do Client no formato de erro do contrato.
// Deve ser chamado diretamente com defer.
func Recover(vendor, operation string, onPanic func(err error)) {
	if r := recover(); r != nil {
		err := fmt.Errorf("%s %s failed unexpectedly: %v", vendor, operation, r)
		logrus.WithFields(logrus.Fields{
			"platform":  vendor,
			"operation": operation,
			"panic":     r,
		}).Error(vendor + ": recovered from panic")
		onPanic(err)
	}
}
