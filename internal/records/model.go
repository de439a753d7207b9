package records

import "time"

type VitalSigns struct {
	ID              string    `json:"id"`
	NurseID         string    `json:"nurseId"`
	NurseUsername   string    `json:"nurseUsername,omitempty"`
	PatientID       string    `json:"patientId"`
	BodyTemperature *float64  `json:"bodyTemperature"`
	HeartRate       *float64  `json:"heartRate"`
	BloodPressure   *string   `json:"bloodPressure"`
	RespiratoryRate *float64  `json:"respiratoryRate"`
	CreatedAt       time.Time `json:"createdAt"`
}

type DailyInfo struct {
	ID              string    `json:"id"`
	PatientID       string    `json:"patientId"`
	PulseRate       *float64  `json:"pulseRate"`
	BloodPressure   *string   `json:"bloodPressure"`
	Weight          *float64  `json:"weight"`
	Temperature     *float64  `json:"temperature"`
	RespiratoryRate *float64  `json:"respiratoryRate"`
	CreatedAt       time.Time `json:"createdAt"`
	RecordedAt      time.Time `json:"recordedAt"`
}

type Symptoms struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patientId"`
	SymptomsList []string  `json:"symptomsList"`
	CreatedAt    time.Time `json:"createdAt"`
	RecordedAt   time.Time `json:"recordedAt"`
}

type VitalSignsInput struct {
	NurseUsername   string
	PatientID       string
	BodyTemperature *float64
	HeartRate       *float64
	BloodPressure   *string
	RespiratoryRate *float64
}

type DailyInfoInput struct {
	PatientUsername string
	PulseRate       *float64
	BloodPressure   *string
	Weight          *float64
	Temperature     *float64
	RespiratoryRate *float64
}
