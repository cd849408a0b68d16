// Package docmap converts between the storage representation of a record (a
// MongoDB document keyed by "_id" with binary ObjectID values) and the model
// representation (keyed by "id" with hex string identifiers). It works on any
// record shape through bson struct tags, so models pick it up by composition
// rather than by embedding a base type.
package docmap

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Names of the identifier key on each side of the mapping. They are mutually
// exclusive: a storage document never contains "id" and a model-side mapping
// never contains "_id".
const (
	storageIDField = "_id"
	modelIDField   = "id"
)

// ToDocument dumps a model into its storage form. Identifier fields become
// binary ObjectIDs via the model's BSON marshaling. The model's own "id" key
// is stripped; when includeID is set its value is reinserted under "_id"
// instead. A model without an identifier produces a document without either
// key, letting the database assign one on insert.
func ToDocument(model any, includeID bool) (bson.M, error) {
	raw, err := bson.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("failed to dump model: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to rebuild document: %w", err)
	}
	if v, ok := doc[modelIDField]; ok {
		delete(doc, modelIDField)
		if includeID {
			doc[storageIDField] = v
		}
	}
	return doc, nil
}

// FromDocument copies a storage document into its model form: every binary
// ObjectID value is rewritten to its hex string and the "_id" key is renamed
// to "id". The input is not modified.
func FromDocument(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		if oid, ok := v.(primitive.ObjectID); ok {
			out[k] = oid.Hex()
			continue
		}
		out[k] = v
	}
	if v, ok := out[storageIDField]; ok {
		out[modelIDField] = v
		delete(out, storageIDField)
	}
	return out
}

// Decode runs FromDocument and unmarshals the result into a model struct.
func Decode(doc bson.M, out any) error {
	raw, err := bson.Marshal(FromDocument(doc))
	if err != nil {
		return fmt.Errorf("failed to dump document: %w", err)
	}
	if err := bson.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode document into model: %w", err)
	}
	return nil
}
