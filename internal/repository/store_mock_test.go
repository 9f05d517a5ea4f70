package repository

import (
	"context"
	"fmt"
)

// mockStore ValueStore 的内存实现，模拟远程表格存储
type mockStore struct {
	sheets map[string][][]string

	// 注入的故障（nil 表示正常）
	listErr   error
	appendErr error
	updateErr error

	appendCalls int
	updateCalls int
}

func newMockStore() *mockStore {
	return &mockStore{sheets: make(map[string][][]string)}
}

func (m *mockStore) ListValues(_ context.Context, worksheet string) ([][]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.sheets[worksheet], nil
}

func (m *mockStore) AppendRow(_ context.Context, worksheet string, row []string) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appendCalls++
	m.sheets[worksheet] = append(m.sheets[worksheet], row)
	return nil
}

func (m *mockStore) UpdateCell(_ context.Context, worksheet string, row, col int, value string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updateCalls++
	values := m.sheets[worksheet]
	if row < 1 || row > len(values) || col < 1 || col > len(values[row-1]) {
		return fmt.Errorf("单元格越界: row=%d col=%d", row, col)
	}
	values[row-1][col-1] = value
	return nil
}
