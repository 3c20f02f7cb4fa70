// internal/app/system/txn/txn.go

// Package txn wraps multi-document MongoDB transactions.
//
// Account creation writes two collections and must never leave a user without
// its role profile. On replica-set deployments Run uses a real transaction.
// Standalone servers (typical local dev) reject transactions entirely, so Run
// detects that and degrades to executing the callback directly; callers keep
// their compensating deletes in place for that mode.
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// Run executes fn atomically when the deployment supports multi-document
// transactions, and directly otherwise. fn must use the context it is given
// for every collection operation or the writes escape the transaction.
func Run(ctx context.Context, client *mongo.Client, fn func(ctx context.Context) error) error {
	session, err := client.StartSession()
	if err != nil {
		if IsNotSupported(err) {
			return fn(ctx)
		}
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		return fn(ctx)
	}
	return err
}

// InTransaction reports whether ctx carries a session started by Run.
// Callers that compensate failed writes by hand skip the compensation when
// a real transaction will roll them back instead.
func InTransaction(ctx context.Context) bool {
	return mongo.SessionFromContext(ctx) != nil
}

// IsNotSupported reports whether err means the server cannot run
// multi-document transactions (standalone deployment, old server).
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		// 20 IllegalOperation, 51 NoSuchTransaction-era servers,
		// 263 OperationNotSupportedInTransaction
		switch ce.Code {
		case 20, 51, 263:
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	has := func(s string) bool { return strings.Contains(msg, s) }
	switch {
	case has("transaction") && has("replica set"):
		return true
	case has("session") && has("not supported"):
		return true
	case has("transaction") && has("session"):
		return true
	case has("illegal operation"):
		return true
	}
	return false
}
