package graph

import (
	"github.com/graphql-go/graphql"

	"healthtrack/internal/auth"
	"healthtrack/internal/records"
)

type Resolver struct {
	Auth    *auth.Service
	Records *records.Service
}

func (r *Resolver) users(role auth.Role) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		list, err := r.Auth.ListUsers(p.Context, role)
		if err != nil {
			return nil, err
		}
		return pointers(list), nil
	}
}

// currentUser resolves to null for anonymous requests.
func (r *Resolver) currentUser(p graphql.ResolveParams) (interface{}, error) {
	u, ok := auth.UserFromContext(p.Context)
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *Resolver) register(p graphql.ResolveParams) (interface{}, error) {
	sess, err := r.Auth.Register(p.Context,
		stringArg(p.Args, "username"),
		stringArg(p.Args, "password"),
		auth.Role(stringArg(p.Args, "role")),
	)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (r *Resolver) login(p graphql.ResolveParams) (interface{}, error) {
	sess, err := r.Auth.Login(p.Context, stringArg(p.Args, "username"), stringArg(p.Args, "password"))
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (r *Resolver) vitalSignsByPatient(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.Records.VitalSignsByPatientUsername(p.Context, stringArg(p.Args, "patientUsername"))
	if err != nil {
		return nil, err
	}
	return pointers(list), nil
}

func (r *Resolver) dailyInfoByPatient(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.Records.DailyInfoByPatientUsername(p.Context, stringArg(p.Args, "patientUsername"))
	if err != nil {
		return nil, err
	}
	return pointers(list), nil
}

func (r *Resolver) symptomsByPatient(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.Records.SymptomsByPatientUsername(p.Context, stringArg(p.Args, "patientUsername"))
	if err != nil {
		return nil, err
	}
	return pointers(list), nil
}

func (r *Resolver) recordVitalSigns(p graphql.ResolveParams) (interface{}, error) {
	vs, err := r.Records.RecordVitalSigns(p.Context, records.VitalSignsInput{
		NurseUsername:   stringArg(p.Args, "nurseUsername"),
		PatientID:       stringArg(p.Args, "patientId"),
		BodyTemperature: floatArg(p.Args, "bodyTemperature"),
		HeartRate:       floatArg(p.Args, "heartRate"),
		BloodPressure:   optStringArg(p.Args, "bloodPressure"),
		RespiratoryRate: floatArg(p.Args, "respiratoryRate"),
	})
	if err != nil {
		return nil, err
	}
	return vs, nil
}

func (r *Resolver) recordDailyInfo(p graphql.ResolveParams) (interface{}, error) {
	di, err := r.Records.RecordDailyInfo(p.Context, records.DailyInfoInput{
		PatientUsername: stringArg(p.Args, "patientUsername"),
		PulseRate:       floatArg(p.Args, "pulseRate"),
		BloodPressure:   optStringArg(p.Args, "bloodPressure"),
		Weight:          floatArg(p.Args, "weight"),
		Temperature:     floatArg(p.Args, "temperature"),
		RespiratoryRate: floatArg(p.Args, "respiratoryRate"),
	})
	if err != nil {
		return nil, err
	}
	return di, nil
}

func (r *Resolver) recordSymptoms(p graphql.ResolveParams) (interface{}, error) {
	var list []string
	if raw, ok := p.Args["symptomsList"].([]interface{}); ok {
		list = make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok {
				list = append(list, s)
			}
		}
	}
	sy, err := r.Records.RecordSymptoms(p.Context, stringArg(p.Args, "patientUsername"), list)
	if err != nil {
		return nil, err
	}
	return sy, nil
}

func stringArg(args map[string]interface{}, name string) string {
	s, _ := args[name].(string)
	return s
}

func optStringArg(args map[string]interface{}, name string) *string {
	s, ok := args[name].(string)
	if !ok {
		return nil
	}
	return &s
}

func floatArg(args map[string]interface{}, name string) *float64 {
	switch v := args[name].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

func pointers[T any](in []T) []*T {
	out := make([]*T, len(in))
	for i := range in {
		out[i] = &in[i]
	}
	return out
}
