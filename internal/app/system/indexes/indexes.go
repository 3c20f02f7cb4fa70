// internal/app/system/indexes/indexes.go

// Package indexes reconciles the indexes each collection needs at startup.
// Every ensure step is idempotent; errors are aggregated so a single bad
// collection does not hide the others and startup can fail fast.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAll creates the indexes this service relies on.
//
// The unique index on users.email is load-bearing: the signup pre-check is
// advisory only, and this index is what actually arbitrates concurrent
// signups with the same email.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureStartups(ctx, db); err != nil {
		problems = append(problems, "startups: "+err.Error())
	}
	if err := ensureServiceProviders(ctx, db); err != nil {
		problems = append(problems, "service_providers: "+err.Error())
	}
	if err := ensureFacilities(ctx, db); err != nil {
		problems = append(problems, "facilities: "+err.Error())
	}
	if err := ensureEmailVerifications(ctx, db); err != nil {
		problems = append(problems, "email_verifications: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_users_email").SetUnique(true),
		},
	})
	return err
}

func ensureStartups(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("startups").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("uniq_startups_user").SetUnique(true),
		},
	})
	return err
}

func ensureServiceProviders(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("service_providers").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("uniq_providers_user").SetUnique(true),
		},
	})
	return err
}

func ensureFacilities(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("facilities").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "service_provider_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_facilities_provider"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_facilities_status"),
		},
	})
	return err
}

func ensureEmailVerifications(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("email_verifications").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetName("idx_emailverify_expires_ttl").SetExpireAfterSeconds(0),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("idx_emailverify_user"),
		},
	})
	return err
}
