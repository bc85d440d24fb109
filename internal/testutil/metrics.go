package testutil

import "sync"

// MetricsRecorder запоминает доменные метрики use case
type MetricsRecorder struct {
	mu         sync.Mutex
	operations map[string]int
	rejections map[string]int
}

// NewMetricsRecorder создает пустой recorder
func NewMetricsRecorder() *MetricsRecorder {
	return &MetricsRecorder{
		operations: make(map[string]int),
		rejections: make(map[string]int),
	}
}

func (m *MetricsRecorder) RecordBookingOperation(operation, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operations[operation+"/"+result]++
}

func (m *MetricsRecorder) RecordSlotRejection(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejections[operation]++
}

// Operations сколько раз операция завершилась с результатом result
func (m *MetricsRecorder) Operations(operation, result string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.operations[operation+"/"+result]
}

// Rejections сколько раз операции отказано из-за нехватки мест
func (m *MetricsRecorder) Rejections(operation string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rejections[operation]
}
