package mocks

import (
	"context"
	"sync"

	"github.com/mcoot/triviaquiz/internal/model"
)

// MockQuestionSource serves queued batches in order.
// Once the queue is drained it keeps returning the last batch.
type MockQuestionSource struct {
	mu      sync.Mutex
	batches []mockBatch
	index   int
	calls   int

	// OnFetch, if set, runs before each fetch returns
	OnFetch func()
}

type mockBatch struct {
	questions []model.Question
	err       error
}

// NewMockQuestionSource creates a source that returns the given batch
func NewMockQuestionSource(questions ...model.Question) *MockQuestionSource {
	m := &MockQuestionSource{}
	if len(questions) > 0 {
		m.QueueBatch(questions...)
	}
	return m
}

// QueueBatch queues a successful fetch
func (m *MockQuestionSource) QueueBatch(questions ...model.Question) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batches = append(m.batches, mockBatch{questions: questions})
}

// QueueError queues a failed fetch
func (m *MockQuestionSource) QueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batches = append(m.batches, mockBatch{err: err})
}

// Fetch returns the next queued batch
func (m *MockQuestionSource) Fetch(ctx context.Context) ([]model.Question, error) {
	m.mu.Lock()
	m.calls++
	hook := m.OnFetch
	var b mockBatch
	if len(m.batches) > 0 {
		if m.index >= len(m.batches) {
			m.index = len(m.batches) - 1
		}
		b = m.batches[m.index]
		m.index++
	}
	m.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.err != nil {
		return nil, b.err
	}
	out := make([]model.Question, len(b.questions))
	copy(out, b.questions)
	return out, nil
}

// Calls returns how many times Fetch was called
func (m *MockQuestionSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
