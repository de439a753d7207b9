package records

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type MemoryStore struct {
	mu       sync.RWMutex
	vitals   []VitalSigns
	daily    []DailyInfo
	symptoms []Symptoms
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) InsertVitalSigns(ctx context.Context, vs *VitalSigns) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	vs.ID = uuid.NewString()
	s.vitals = append(s.vitals, *vs)
	return nil
}

func (s *MemoryStore) InsertDailyInfo(ctx context.Context, di *DailyInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	di.ID = uuid.NewString()
	s.daily = append(s.daily, *di)
	return nil
}

func (s *MemoryStore) InsertSymptoms(ctx context.Context, sy *Symptoms) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sy.ID = uuid.NewString()
	list := make([]string, len(sy.SymptomsList))
	copy(list, sy.SymptomsList)
	stored := *sy
	stored.SymptomsList = list
	s.symptoms = append(s.symptoms, stored)
	return nil
}

// List methods walk the slices backwards so records sharing a timestamp keep
// newest-inserted-first order after the stable sort.

func (s *MemoryStore) ListVitalSigns(ctx context.Context, patientID string) ([]VitalSigns, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := []VitalSigns{}
	for i := len(s.vitals) - 1; i >= 0; i-- {
		if s.vitals[i].PatientID == patientID {
			res = append(res, s.vitals[i])
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (s *MemoryStore) ListDailyInfo(ctx context.Context, patientID string) ([]DailyInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := []DailyInfo{}
	for i := len(s.daily) - 1; i >= 0; i-- {
		if s.daily[i].PatientID == patientID {
			res = append(res, s.daily[i])
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (s *MemoryStore) ListSymptoms(ctx context.Context, patientID string) ([]Symptoms, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := []Symptoms{}
	for i := len(s.symptoms) - 1; i >= 0; i-- {
		if s.symptoms[i].PatientID == patientID {
			sy := s.symptoms[i]
			sy.SymptomsList = append([]string{}, sy.SymptomsList...)
			res = append(res, sy)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

// Count returns the total number of stored records of every kind.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vitals) + len(s.daily) + len(s.symptoms)
}
