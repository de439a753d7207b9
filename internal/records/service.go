package records

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"healthtrack/internal/auth"
)

// Users is the part of the credential store the record API needs.
type Users interface {
	FindByUsername(ctx context.Context, username string) (*auth.User, error)
	FindByID(ctx context.Context, id string) (*auth.User, error)
}

type Service struct {
	store  Store
	users  Users
	logger *slog.Logger
	now    func() time.Time
}

func NewService(store Store, users Users, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		users:  users,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Service) RecordVitalSigns(ctx context.Context, in VitalSignsInput) (*VitalSigns, error) {
	nurse, err := s.lookupByUsername(ctx, in.NurseUsername, auth.RoleNurse, ErrNurseNotFound)
	if err != nil {
		return nil, err
	}
	patient, err := s.users.FindByID(ctx, in.PatientID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}

	vs := &VitalSigns{
		NurseID:         nurse.ID,
		NurseUsername:   nurse.Username,
		PatientID:       patient.ID,
		BodyTemperature: in.BodyTemperature,
		HeartRate:       in.HeartRate,
		BloodPressure:   in.BloodPressure,
		RespiratoryRate: in.RespiratoryRate,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.store.InsertVitalSigns(ctx, vs); err != nil {
		s.logger.Error("insert vital signs", "err", err)
		return nil, fmt.Errorf("error saving vital signs: %w", ErrStoreFailure)
	}
	return vs, nil
}

func (s *Service) RecordDailyInfo(ctx context.Context, in DailyInfoInput) (*DailyInfo, error) {
	patient, err := s.lookupByUsername(ctx, in.PatientUsername, auth.RolePatient, ErrPatientNotFound)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	di := &DailyInfo{
		PatientID:       patient.ID,
		PulseRate:       in.PulseRate,
		BloodPressure:   in.BloodPressure,
		Weight:          in.Weight,
		Temperature:     in.Temperature,
		RespiratoryRate: in.RespiratoryRate,
		CreatedAt:       now,
		RecordedAt:      now,
	}
	if err := s.store.InsertDailyInfo(ctx, di); err != nil {
		s.logger.Error("insert daily info", "err", err)
		return nil, fmt.Errorf("error saving daily info: %w", ErrStoreFailure)
	}
	return di, nil
}

// RecordSymptoms accepts a patient of any role; only existence is checked.
func (s *Service) RecordSymptoms(ctx context.Context, patientUsername string, symptoms []string) (*Symptoms, error) {
	patient, err := s.lookupByUsername(ctx, patientUsername, "", ErrPatientNotFound)
	if err != nil {
		return nil, err
	}
	if symptoms == nil {
		symptoms = []string{}
	}
	now := s.now().UTC()
	sy := &Symptoms{
		PatientID:    patient.ID,
		SymptomsList: symptoms,
		CreatedAt:    now,
		RecordedAt:   now,
	}
	if err := s.store.InsertSymptoms(ctx, sy); err != nil {
		s.logger.Error("insert symptoms", "err", err)
		return nil, fmt.Errorf("error saving symptoms: %w", ErrStoreFailure)
	}
	return sy, nil
}

// VitalSignsByPatientUsername returns the patient's vital signs, newest first,
// with the recording nurse's username filled in.
func (s *Service) VitalSignsByPatientUsername(ctx context.Context, username string) ([]VitalSigns, error) {
	patient, err := s.lookupByUsername(ctx, username, auth.RolePatient, ErrPatientNotFound)
	if err != nil {
		return nil, err
	}
	list, err := s.store.ListVitalSigns(ctx, patient.ID)
	if err != nil {
		return nil, fmt.Errorf("list vital signs: %w", err)
	}
	nurses := make(map[string]string)
	for i := range list {
		id := list[i].NurseID
		name, ok := nurses[id]
		if !ok {
			if nurse, err := s.users.FindByID(ctx, id); err == nil {
				name = nurse.Username
			} else if !errors.Is(err, auth.ErrUserNotFound) {
				return nil, fmt.Errorf("find nurse: %w", err)
			}
			nurses[id] = name
		}
		list[i].NurseUsername = name
	}
	return list, nil
}

func (s *Service) DailyInfoByPatientUsername(ctx context.Context, username string) ([]DailyInfo, error) {
	patient, err := s.lookupByUsername(ctx, username, auth.RolePatient, ErrPatientNotFound)
	if err != nil {
		return nil, err
	}
	list, err := s.store.ListDailyInfo(ctx, patient.ID)
	if err != nil {
		return nil, fmt.Errorf("list daily info: %w", err)
	}
	return list, nil
}

func (s *Service) SymptomsByPatientUsername(ctx context.Context, username string) ([]Symptoms, error) {
	patient, err := s.lookupByUsername(ctx, username, "", ErrPatientNotFound)
	if err != nil {
		return nil, err
	}
	list, err := s.store.ListSymptoms(ctx, patient.ID)
	if err != nil {
		return nil, fmt.Errorf("list symptoms: %w", err)
	}
	return list, nil
}

// lookupByUsername finds a user and, when role is set, requires it to match.
func (s *Service) lookupByUsername(ctx context.Context, username string, role auth.Role, notFound error) (*auth.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, notFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if role != "" && u.Role != role {
		return nil, notFound
	}
	return u, nil
}
