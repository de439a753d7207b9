package records

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

// Store persists records. Insert methods assign the record id; List methods
// return the records of one patient, newest first.
type Store interface {
	InsertVitalSigns(ctx context.Context, vs *VitalSigns) error
	InsertDailyInfo(ctx context.Context, di *DailyInfo) error
	InsertSymptoms(ctx context.Context, sy *Symptoms) error
	ListVitalSigns(ctx context.Context, patientID string) ([]VitalSigns, error)
	ListDailyInfo(ctx context.Context, patientID string) ([]DailyInfo, error)
	ListSymptoms(ctx context.Context, patientID string) ([]Symptoms, error)
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) InsertVitalSigns(ctx context.Context, vs *VitalSigns) error {
	const q = `
		INSERT INTO vital_signs
		(nurse_id, patient_id, body_temperature, heart_rate, blood_pressure, respiratory_rate, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`
	row := s.db.QueryRowContext(ctx, q,
		vs.NurseID,
		vs.PatientID,
		vs.BodyTemperature,
		vs.HeartRate,
		vs.BloodPressure,
		vs.RespiratoryRate,
		vs.CreatedAt,
	)
	return row.Scan(&vs.ID)
}

func (s *PostgresStore) InsertDailyInfo(ctx context.Context, di *DailyInfo) error {
	const q = `
		INSERT INTO daily_info
		(patient_id, pulse_rate, blood_pressure, weight, temperature, respiratory_rate, created_at, recorded_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`
	row := s.db.QueryRowContext(ctx, q,
		di.PatientID,
		di.PulseRate,
		di.BloodPressure,
		di.Weight,
		di.Temperature,
		di.RespiratoryRate,
		di.CreatedAt,
		di.RecordedAt,
	)
	return row.Scan(&di.ID)
}

func (s *PostgresStore) InsertSymptoms(ctx context.Context, sy *Symptoms) error {
	if sy.SymptomsList == nil {
		sy.SymptomsList = []string{}
	}
	const q = `
		INSERT INTO symptoms (patient_id, symptoms_list, created_at, recorded_at)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`
	row := s.db.QueryRowContext(ctx, q, sy.PatientID, pq.Array(sy.SymptomsList), sy.CreatedAt, sy.RecordedAt)
	return row.Scan(&sy.ID)
}

func (s *PostgresStore) ListVitalSigns(ctx context.Context, patientID string) ([]VitalSigns, error) {
	const q = `
		SELECT id, nurse_id, patient_id, body_temperature, heart_rate, blood_pressure, respiratory_rate, created_at
		FROM vital_signs WHERE patient_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, q, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []VitalSigns{}
	for rows.Next() {
		var vs VitalSigns
		if err := rows.Scan(&vs.ID, &vs.NurseID, &vs.PatientID, &vs.BodyTemperature,
			&vs.HeartRate, &vs.BloodPressure, &vs.RespiratoryRate, &vs.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, vs)
	}
	return res, rows.Err()
}

func (s *PostgresStore) ListDailyInfo(ctx context.Context, patientID string) ([]DailyInfo, error) {
	const q = `
		SELECT id, patient_id, pulse_rate, blood_pressure, weight, temperature, respiratory_rate, created_at, recorded_at
		FROM daily_info WHERE patient_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, q, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []DailyInfo{}
	for rows.Next() {
		var di DailyInfo
		if err := rows.Scan(&di.ID, &di.PatientID, &di.PulseRate, &di.BloodPressure, &di.Weight,
			&di.Temperature, &di.RespiratoryRate, &di.CreatedAt, &di.RecordedAt); err != nil {
			return nil, err
		}
		res = append(res, di)
	}
	return res, rows.Err()
}

func (s *PostgresStore) ListSymptoms(ctx context.Context, patientID string) ([]Symptoms, error) {
	const q = `
		SELECT id, patient_id, symptoms_list, created_at, recorded_at
		FROM symptoms WHERE patient_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, q, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []Symptoms{}
	for rows.Next() {
		var sy Symptoms
		var list pq.StringArray
		if err := rows.Scan(&sy.ID, &sy.PatientID, &list, &sy.CreatedAt, &sy.RecordedAt); err != nil {
			return nil, err
		}
		sy.SymptomsList = []string(list)
		if sy.SymptomsList == nil {
			sy.SymptomsList = []string{}
		}
		res = append(res, sy)
	}
	return res, rows.Err()
}
