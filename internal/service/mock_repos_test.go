package service

import (
	"context"
	"time"

	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/model"
	"github.com/EuclidChen/PLAYHARD-ASSIGN/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users []model.User
	err   error
}

func (m *mockUserRepo) ListAll(_ context.Context) ([]model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.users {
		if m.users[i].Username == username {
			return &m.users[i], nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// ── Mock ShiftRepository ──

// mockShiftRepo 内存实现，保持与真实适配器一致的 Upsert 语义
type mockShiftRepo struct {
	records []model.ShiftRecord

	listErr   error
	upsertErr error
}

func (m *mockShiftRepo) ListAll(_ context.Context) ([]model.ShiftRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.records, nil
}

func (m *mockShiftRepo) FetchMonth(_ context.Context, username string, year, month int) (map[string]model.ShiftValue, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make(map[string]model.ShiftValue)
	for _, rec := range m.records {
		if rec.User != username {
			continue
		}
		t, err := time.Parse(model.DateLayout, rec.Date)
		if err != nil || t.Year() != year || int(t.Month()) != month {
			continue
		}
		if _, exists := result[rec.Date]; !exists {
			result[rec.Date] = rec.Shift
		}
	}
	return result, nil
}

func (m *mockShiftRepo) Upsert(_ context.Context, username, date string, shift model.ShiftValue) (bool, error) {
	if m.upsertErr != nil {
		return false, m.upsertErr
	}
	for i := range m.records {
		if m.records[i].User == username && m.records[i].Date == date {
			m.records[i].Shift = shift
			return false, nil
		}
	}
	m.records = append(m.records, model.ShiftRecord{
		Date:   date,
		Shift:  shift,
		User:   username,
		Status: model.StatusScheduled,
	})
	return true, nil
}

// ── 测试辅助 ──

func newTestRepo(users []model.User, records []model.ShiftRecord) (*repository.Repository, *mockShiftRepo) {
	shiftRepo := &mockShiftRepo{records: records}
	return &repository.Repository{
		User:  &mockUserRepo{users: users},
		Shift: shiftRepo,
	}, shiftRepo
}
