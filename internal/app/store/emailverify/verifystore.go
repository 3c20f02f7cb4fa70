// internal/app/store/emailverify/verifystore.go
package emailverifystore

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/facilitiease/facilitiease/internal/app/system/credentials"
	"github.com/facilitiease/facilitiease/internal/domain/models"
)

var (
	// ErrNoCode means no outstanding code exists for the user (never issued,
	// expired out, or already consumed).
	ErrNoCode = errors.New("no verification code outstanding")

	// ErrCodeMismatch means the submitted code did not match.
	ErrCodeMismatch = errors.New("verification code does not match")

	// ErrTooManyAttempts means the code burned its attempt budget and a new
	// one must be issued.
	ErrTooManyAttempts = errors.New("too many verification attempts")

	// ErrResendLimited means the user asked for too many codes inside the
	// resend window.
	ErrResendLimited = errors.New("verification resend limit reached")
)

const (
	maxAttempts  = 5
	maxResends   = 3
	resendWindow = time.Hour
)

// Store manages one-time email verification codes.
type Store struct {
	c      *mongo.Collection
	expiry time.Duration
}

func New(db *mongo.Database, expiry time.Duration) *Store {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &Store{c: db.Collection("email_verifications"), expiry: expiry}
}

// Issue creates a fresh 6-digit code for the user, replacing any outstanding
// one, and returns the plaintext code for delivery. Only the bcrypt hash is
// stored. Reissues inside the resend window are capped.
func (s *Store) Issue(ctx context.Context, userID primitive.ObjectID, email string) (string, error) {
	now := time.Now()

	var existing models.EmailVerification
	err := s.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&existing)
	resends := 0
	windowStart := now
	switch {
	case err == nil:
		if now.Sub(existing.WindowStart) < resendWindow {
			if existing.ResendCount >= maxResends {
				return "", ErrResendLimited
			}
			resends = existing.ResendCount + 1
			windowStart = existing.WindowStart
		}
	case err == mongo.ErrNoDocuments:
		// first issue
	default:
		return "", err
	}

	code, err := generateCode()
	if err != nil {
		return "", err
	}
	hash, err := credentials.Hash(code)
	if err != nil {
		return "", err
	}

	doc := models.EmailVerification{
		UserID:      userID,
		Email:       email,
		CodeHash:    hash,
		ExpiresAt:   now.Add(s.expiry),
		Attempts:    0,
		ResendCount: resends,
		WindowStart: windowStart,
		CreatedAt:   now,
	}
	_, err = s.c.ReplaceOne(ctx, bson.M{"user_id": userID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return "", err
	}
	return code, nil
}

// Confirm checks a submitted code. On success the document is consumed.
// A wrong code burns one attempt; codes past their expiry behave as absent
// even before the TTL reaper removes them.
func (s *Store) Confirm(ctx context.Context, userID primitive.ObjectID, code string) error {
	var v models.EmailVerification
	err := s.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&v)
	if err == mongo.ErrNoDocuments {
		return ErrNoCode
	}
	if err != nil {
		return err
	}

	if time.Now().After(v.ExpiresAt) {
		_, _ = s.c.DeleteOne(ctx, bson.M{"_id": v.ID})
		return ErrNoCode
	}
	if v.Attempts >= maxAttempts {
		return ErrTooManyAttempts
	}

	if !credentials.Verify(code, v.CodeHash) {
		_, uerr := s.c.UpdateOne(ctx, bson.M{"_id": v.ID}, bson.M{"$inc": bson.M{"attempts": 1}})
		if uerr != nil {
			return uerr
		}
		if v.Attempts+1 >= maxAttempts {
			return ErrTooManyAttempts
		}
		return ErrCodeMismatch
	}

	_, err = s.c.DeleteOne(ctx, bson.M{"_id": v.ID})
	return err
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
