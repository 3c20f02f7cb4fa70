package identity

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDeriveID_Deterministic(t *testing.T) {
	a := DeriveID("alice@x.com")
	b := DeriveID("alice@x.com")
	if a != b {
		t.Errorf("DeriveID not deterministic: %s vs %s", a.Hex(), b.Hex())
	}
}

func TestDeriveID_CaseInsensitive(t *testing.T) {
	a := DeriveID("Alice@X.COM")
	b := DeriveID("alice@x.com")
	if a != b {
		t.Errorf("DeriveID should lowercase email first: %s vs %s", a.Hex(), b.Hex())
	}
}

func TestDeriveID_DistinctEmails(t *testing.T) {
	emails := []string{
		"alice@x.com",
		"bob@x.com",
		"alice@y.com",
		"a.lice@x.com",
		"alice+tag@x.com",
	}

	seen := make(map[primitive.ObjectID]string, len(emails))
	for _, e := range emails {
		id := DeriveID(e)
		if prev, dup := seen[id]; dup {
			t.Errorf("collision: %q and %q both derive %s", prev, e, id.Hex())
		}
		seen[id] = e
	}
}

func TestDeriveID_NeverZero(t *testing.T) {
	if DeriveID("alice@x.com") == primitive.NilObjectID {
		t.Error("derived id should not be the nil ObjectID")
	}
}
