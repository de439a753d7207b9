package records

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	vitalSignsCollection = "vitalsigns"
	dailyInfoCollection  = "dailyinfos"
	symptomsCollection   = "symptoms"
)

type vitalSignsDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Nurse           primitive.ObjectID `bson:"nurseId"`
	Patient         primitive.ObjectID `bson:"patientId"`
	BodyTemperature *float64           `bson:"bodyTemperature,omitempty"`
	HeartRate       *float64           `bson:"heartRate,omitempty"`
	BloodPressure   *string            `bson:"bloodPressure,omitempty"`
	RespiratoryRate *float64           `bson:"respiratoryRate,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"`
}

type dailyInfoDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Patient         primitive.ObjectID `bson:"patientId"`
	PulseRate       *float64           `bson:"pulseRate,omitempty"`
	BloodPressure   *string            `bson:"bloodPressure,omitempty"`
	Weight          *float64           `bson:"weight,omitempty"`
	Temperature     *float64           `bson:"temperature,omitempty"`
	RespiratoryRate *float64           `bson:"respiratoryRate,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"`
	RecordedAt      time.Time          `bson:"recordedAt"`
}

type symptomsDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Patient      primitive.ObjectID `bson:"patientId"`
	SymptomsList []string           `bson:"symptomsList"`
	CreatedAt    time.Time          `bson:"createdAt"`
	RecordedAt   time.Time          `bson:"recordedAt"`
}

type MongoStore struct {
	vitals   *mongo.Collection
	daily    *mongo.Collection
	symptoms *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		vitals:   db.Collection(vitalSignsCollection),
		daily:    db.Collection(dailyInfoCollection),
		symptoms: db.Collection(symptomsCollection),
	}
}

// EnsureIndexes creates the patient/createdAt index every list query uses.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("patientId_createdAt"),
	}
	for _, c := range []*mongo.Collection{s.vitals, s.daily, s.symptoms} {
		if _, err := c.Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}

func (s *MongoStore) InsertVitalSigns(ctx context.Context, vs *VitalSigns) error {
	nurse, err := refID(vs.NurseID)
	if err != nil {
		return err
	}
	patient, err := refID(vs.PatientID)
	if err != nil {
		return err
	}
	doc := vitalSignsDocument{
		ID:              primitive.NewObjectID(),
		Nurse:           nurse,
		Patient:         patient,
		BodyTemperature: vs.BodyTemperature,
		HeartRate:       vs.HeartRate,
		BloodPressure:   vs.BloodPressure,
		RespiratoryRate: vs.RespiratoryRate,
		CreatedAt:       vs.CreatedAt,
	}
	if _, err := s.vitals.InsertOne(ctx, doc); err != nil {
		return err
	}
	vs.ID = doc.ID.Hex()
	return nil
}

func (s *MongoStore) InsertDailyInfo(ctx context.Context, di *DailyInfo) error {
	patient, err := refID(di.PatientID)
	if err != nil {
		return err
	}
	doc := dailyInfoDocument{
		ID:              primitive.NewObjectID(),
		Patient:         patient,
		PulseRate:       di.PulseRate,
		BloodPressure:   di.BloodPressure,
		Weight:          di.Weight,
		Temperature:     di.Temperature,
		RespiratoryRate: di.RespiratoryRate,
		CreatedAt:       di.CreatedAt,
		RecordedAt:      di.RecordedAt,
	}
	if _, err := s.daily.InsertOne(ctx, doc); err != nil {
		return err
	}
	di.ID = doc.ID.Hex()
	return nil
}

func (s *MongoStore) InsertSymptoms(ctx context.Context, sy *Symptoms) error {
	patient, err := refID(sy.PatientID)
	if err != nil {
		return err
	}
	if sy.SymptomsList == nil {
		sy.SymptomsList = []string{}
	}
	doc := symptomsDocument{
		ID:           primitive.NewObjectID(),
		Patient:      patient,
		SymptomsList: sy.SymptomsList,
		CreatedAt:    sy.CreatedAt,
		RecordedAt:   sy.RecordedAt,
	}
	if _, err := s.symptoms.InsertOne(ctx, doc); err != nil {
		return err
	}
	sy.ID = doc.ID.Hex()
	return nil
}

func (s *MongoStore) ListVitalSigns(ctx context.Context, patientID string) ([]VitalSigns, error) {
	var docs []vitalSignsDocument
	if err := findByPatient(ctx, s.vitals, patientID, &docs); err != nil {
		return nil, err
	}
	res := make([]VitalSigns, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toVitalSigns())
	}
	return res, nil
}

func (s *MongoStore) ListDailyInfo(ctx context.Context, patientID string) ([]DailyInfo, error) {
	var docs []dailyInfoDocument
	if err := findByPatient(ctx, s.daily, patientID, &docs); err != nil {
		return nil, err
	}
	res := make([]DailyInfo, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toDailyInfo())
	}
	return res, nil
}

func (s *MongoStore) ListSymptoms(ctx context.Context, patientID string) ([]Symptoms, error) {
	var docs []symptomsDocument
	if err := findByPatient(ctx, s.symptoms, patientID, &docs); err != nil {
		return nil, err
	}
	res := make([]Symptoms, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toSymptoms())
	}
	return res, nil
}

// findByPatient decodes the patient's documents into out, newest first. An id
// that is not an ObjectID cannot match any document and leaves out untouched.
func findByPatient(ctx context.Context, c *mongo.Collection, patientID string, out interface{}) error {
	patient, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := c.Find(ctx, bson.M{"patientId": patient}, opts)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (d vitalSignsDocument) toVitalSigns() VitalSigns {
	return VitalSigns{
		ID:              d.ID.Hex(),
		NurseID:         d.Nurse.Hex(),
		PatientID:       d.Patient.Hex(),
		BodyTemperature: d.BodyTemperature,
		HeartRate:       d.HeartRate,
		BloodPressure:   d.BloodPressure,
		RespiratoryRate: d.RespiratoryRate,
		CreatedAt:       d.CreatedAt,
	}
}

func (d dailyInfoDocument) toDailyInfo() DailyInfo {
	return DailyInfo{
		ID:              d.ID.Hex(),
		PatientID:       d.Patient.Hex(),
		PulseRate:       d.PulseRate,
		BloodPressure:   d.BloodPressure,
		Weight:          d.Weight,
		Temperature:     d.Temperature,
		RespiratoryRate: d.RespiratoryRate,
		CreatedAt:       d.CreatedAt,
		RecordedAt:      d.RecordedAt,
	}
}

func (d symptomsDocument) toSymptoms() Symptoms {
	list := d.SymptomsList
	if list == nil {
		list = []string{}
	}
	return Symptoms{
		ID:           d.ID.Hex(),
		PatientID:    d.Patient.Hex(),
		SymptomsList: list,
		CreatedAt:    d.CreatedAt,
		RecordedAt:   d.RecordedAt,
	}
}

// refID converts a user id to the ObjectID stored in reference fields.
func refID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("user id %q: %w", id, err)
	}
	return oid, nil
}
