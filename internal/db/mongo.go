package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"healthtrack/internal/auth"
	"healthtrack/internal/records"
)

func openMongo(ctx context.Context, uri, database string) (*Stores, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	mdb := client.Database(database)
	users := auth.NewMongoStore(mdb)
	recs := records.NewMongoStore(mdb)
	if err := users.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("user indexes: %w", err)
	}
	if err := recs.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("record indexes: %w", err)
	}
	return &Stores{
		Users:   users,
		Records: recs,
		Backend: "mongodb",
		close:   client.Disconnect,
	}, nil
}
