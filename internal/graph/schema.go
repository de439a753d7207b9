// Package graph exposes users and health records as a GraphQL API.
package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"healthtrack/internal/auth"
	"healthtrack/internal/records"
)

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"username": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"role": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if u, ok := p.Source.(*auth.User); ok {
					return string(u.Role), nil
				}
				return nil, nil
			},
		},
		"createdAt": &graphql.Field{Type: graphql.String, Resolve: resolveCreatedAt},
	},
})

var authPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AuthPayload",
	Fields: graphql.Fields{
		"user": &graphql.Field{
			Type: graphql.NewNonNull(userType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if s, ok := p.Source.(*auth.Session); ok {
					return s.User, nil
				}
				return nil, nil
			},
		},
		"token": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if s, ok := p.Source.(*auth.Session); ok {
					return s.Token, nil
				}
				return nil, nil
			},
		},
	},
})

var vitalSignsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "VitalSigns",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"nurseId":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"nurseUsername":   &graphql.Field{Type: graphql.String},
		"patientId":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"bodyTemperature": &graphql.Field{Type: graphql.Float},
		"heartRate":       &graphql.Field{Type: graphql.Float},
		"bloodPressure":   &graphql.Field{Type: graphql.String},
		"respiratoryRate": &graphql.Field{Type: graphql.Float},
		"createdAt":       &graphql.Field{Type: graphql.String, Resolve: resolveCreatedAt},
	},
})

var dailyInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DailyInfo",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"patientId":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"pulseRate":       &graphql.Field{Type: graphql.Float},
		"bloodPressure":   &graphql.Field{Type: graphql.String},
		"weight":          &graphql.Field{Type: graphql.Float},
		"temperature":     &graphql.Field{Type: graphql.Float},
		"respiratoryRate": &graphql.Field{Type: graphql.Float},
		"createdAt":       &graphql.Field{Type: graphql.String, Resolve: resolveCreatedAt},
		"recordedAt":      &graphql.Field{Type: graphql.String, Resolve: resolveRecordedAt},
	},
})

var symptomsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Symptoms",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"patientId":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"symptomsList": &graphql.Field{Type: graphql.NewList(graphql.String)},
		"createdAt":    &graphql.Field{Type: graphql.String, Resolve: resolveCreatedAt},
		"recordedAt":   &graphql.Field{Type: graphql.String, Resolve: resolveRecordedAt},
	},
})

func patientUsernameArg() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"patientUsername": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
	}
}

// NewSchema builds the executable schema over r.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users":       &graphql.Field{Type: graphql.NewList(userType), Resolve: r.users("")},
			"nurses":      &graphql.Field{Type: graphql.NewList(userType), Resolve: r.users(auth.RoleNurse)},
			"patients":    &graphql.Field{Type: graphql.NewList(userType), Resolve: r.users(auth.RolePatient)},
			"currentUser": &graphql.Field{Type: userType, Resolve: r.currentUser},
			"getVitalSignsByPatientUsername": &graphql.Field{
				Type:    graphql.NewList(vitalSignsType),
				Args:    patientUsernameArg(),
				Resolve: r.vitalSignsByPatient,
			},
			"getDailyInfoByPatientUsername": &graphql.Field{
				Type:    graphql.NewList(dailyInfoType),
				Args:    patientUsernameArg(),
				Resolve: r.dailyInfoByPatient,
			},
			"getSymptomsByPatientUsername": &graphql.Field{
				Type:    graphql.NewList(symptomsType),
				Args:    patientUsernameArg(),
				Resolve: r.symptomsByPatient,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"role":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.register,
			},
			"login": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.login,
			},
			"recordVitalSigns": &graphql.Field{
				Type: vitalSignsType,
				Args: graphql.FieldConfigArgument{
					"nurseUsername":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"patientId":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"bodyTemperature": &graphql.ArgumentConfig{Type: graphql.Float},
					"heartRate":       &graphql.ArgumentConfig{Type: graphql.Float},
					"bloodPressure":   &graphql.ArgumentConfig{Type: graphql.String},
					"respiratoryRate": &graphql.ArgumentConfig{Type: graphql.Float},
				},
				Resolve: r.recordVitalSigns,
			},
			"recordDailyInfo": &graphql.Field{
				Type: dailyInfoType,
				Args: graphql.FieldConfigArgument{
					"patientUsername": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"pulseRate":       &graphql.ArgumentConfig{Type: graphql.Float},
					"bloodPressure":   &graphql.ArgumentConfig{Type: graphql.String},
					"weight":          &graphql.ArgumentConfig{Type: graphql.Float},
					"temperature":     &graphql.ArgumentConfig{Type: graphql.Float},
					"respiratoryRate": &graphql.ArgumentConfig{Type: graphql.Float},
				},
				Resolve: r.recordDailyInfo,
			},
			"recordSymptoms": &graphql.Field{
				Type: symptomsType,
				Args: graphql.FieldConfigArgument{
					"patientUsername": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"symptomsList":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.String))},
				},
				Resolve: r.recordSymptoms,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

func resolveCreatedAt(p graphql.ResolveParams) (interface{}, error) {
	switch v := p.Source.(type) {
	case *auth.User:
		return formatTime(v.CreatedAt), nil
	case *records.VitalSigns:
		return formatTime(v.CreatedAt), nil
	case *records.DailyInfo:
		return formatTime(v.CreatedAt), nil
	case *records.Symptoms:
		return formatTime(v.CreatedAt), nil
	}
	return nil, nil
}

func resolveRecordedAt(p graphql.ResolveParams) (interface{}, error) {
	switch v := p.Source.(type) {
	case *records.DailyInfo:
		return formatTime(v.RecordedAt), nil
	case *records.Symptoms:
		return formatTime(v.RecordedAt), nil
	}
	return nil, nil
}

func formatTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
