// internal/app/store/emailverify/verifystore_test.go
package emailverifystore

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/facilitiease/facilitiease/internal/testutil"
)

func TestIssueAndConfirm(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db, 15*time.Minute)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	code, err := s.Issue(ctx, userID, "verify@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("got code %q, want 6 digits", code)
	}

	if err := s.Confirm(ctx, userID, code); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	// Consumed: a second confirm finds nothing.
	if err := s.Confirm(ctx, userID, code); err != ErrNoCode {
		t.Fatalf("got %v, want ErrNoCode after consumption", err)
	}
}

func TestConfirmWrongCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db, 15*time.Minute)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	code, err := s.Issue(ctx, userID, "verify@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	if err := s.Confirm(ctx, userID, wrong); err != ErrCodeMismatch {
		t.Fatalf("got %v, want ErrCodeMismatch", err)
	}

	// The right code still works after one miss.
	if err := s.Confirm(ctx, userID, code); err != nil {
		t.Fatalf("Confirm after miss: %v", err)
	}
}

func TestConfirmAttemptBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db, 15*time.Minute)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	code, err := s.Issue(ctx, userID, "verify@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	var last error
	for i := 0; i < maxAttempts; i++ {
		last = s.Confirm(ctx, userID, wrong)
	}
	if last != ErrTooManyAttempts {
		t.Fatalf("got %v, want ErrTooManyAttempts on final miss", last)
	}

	// Budget burned: even the right code is refused.
	if err := s.Confirm(ctx, userID, code); err != ErrTooManyAttempts {
		t.Fatalf("got %v, want ErrTooManyAttempts", err)
	}
}

func TestConfirmExpiredCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db, time.Millisecond)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	code, err := s.Issue(ctx, userID, "verify@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if err := s.Confirm(ctx, userID, code); err != ErrNoCode {
		t.Fatalf("got %v, want ErrNoCode for expired code", err)
	}
}

func TestResendLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db, 15*time.Minute)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	var last string
	for i := 0; i <= maxResends; i++ {
		code, err := s.Issue(ctx, userID, "verify@example.com")
		if err != nil {
			t.Fatalf("Issue %d: %v", i, err)
		}
		last = code
	}

	if _, err := s.Issue(ctx, userID, "verify@example.com"); err != ErrResendLimited {
		t.Fatalf("got %v, want ErrResendLimited", err)
	}

	// Only the newest code is live.
	if err := s.Confirm(ctx, userID, last); err != nil {
		t.Fatalf("Confirm latest code: %v", err)
	}
}
