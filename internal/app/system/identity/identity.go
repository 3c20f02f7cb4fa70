// internal/app/system/identity/identity.go

// Package identity derives stable user identifiers for locally-authenticated
// accounts.
//
// The id for a local account is a function of the email alone: the first 24
// hex characters of md5(lowercase email) interpreted as a Mongo ObjectID.
// That makes the id reconstructable without a database round trip and removes
// the race between "check existence" and "assign id" at signup.
//
// md5 is fine here: the id is not a secret and the digest only needs to be
// well-distributed. Credential hashing lives in the credentials package and
// must never share this primitive.
package identity

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// idHexLen is the length of an ObjectID in hex characters (12 bytes).
const idHexLen = 24

// DeriveID computes the deterministic ObjectID for a local-auth account.
// Email validation happens upstream; this is a pure function of the string.
func DeriveID(email string) primitive.ObjectID {
	sum := md5.Sum([]byte(strings.ToLower(email)))
	hexDigest := hex.EncodeToString(sum[:])

	// 32 hex chars from md5, ObjectID takes the first 24. Can't fail.
	id, _ := primitive.ObjectIDFromHex(hexDigest[:idHexLen])
	return id
}
