package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID is the external form of a MongoDB document identifier: the 24-character
// hex encoding of the 12-byte binary ObjectID. The zero value means "not set",
// which is how optional identifier fields represent absence.
//
// The type has two serialization paths: toward JSON it stays a plain string,
// toward BSON it is converted to the driver's binary ObjectID. Validation of
// the 24-character length is done with validator struct tags on the models
// (`omitempty,len=24` for optional fields, `required,len=24` for references).
type ID string

// String returns the hex form of the identifier.
func (id ID) String() string { return string(id) }

// IsZero reports whether the identifier is unset. The BSON encoder uses this
// for `omitempty`, so an unset ID never reaches the stored document.
func (id ID) IsZero() bool { return id == "" }

// ObjectID converts the hex form to the driver's binary form. It fails on
// anything that is not a valid 24-character hex string.
func (id ID) ObjectID() (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid identifier %q: %w", string(id), err)
	}
	return oid, nil
}

// MarshalBSONValue encodes the identifier as a binary ObjectID. This is the
// storage-direction path: a model dumped through BSON carries binary
// identifiers, ready for persistence.
func (id ID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if id == "" {
		return bson.MarshalValue(primitive.Null{})
	}
	oid, err := id.ObjectID()
	if err != nil {
		return 0, nil, err
	}
	return bson.MarshalValue(oid)
}

// UnmarshalBSONValue decodes an identifier from either its binary ObjectID
// form or a plain string, since stored documents may carry either.
func (id *ID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.ObjectID:
		oid, ok := raw.ObjectIDOK()
		if !ok {
			return fmt.Errorf("malformed ObjectID value")
		}
		*id = ID(oid.Hex())
	case bsontype.String:
		s, ok := raw.StringValueOK()
		if !ok {
			return fmt.Errorf("malformed string value")
		}
		*id = ID(s)
	case bsontype.Null:
		*id = ""
	default:
		return fmt.Errorf("cannot decode BSON type %s into an identifier", t)
	}
	return nil
}

// UnmarshalJSON accepts any JSON scalar and coerces it to its textual form,
// so a numeric 12345 becomes the string "12345" (and later fails length
// validation). null means unset.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	*id = ID(data)
	return nil
}
