package docmap_test

import (
	"testing"

	"blog/internal/docmap"
	"blog/internal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	userHex = "507f1f77bcf86cd799439011"
	postHex = "507f191e810c19729de860ea"
)

func TestToDocumentStripsModelIDKey(t *testing.T) {
	user := &models.User{ID: userHex, Username: "johndoe", Email: "john@example.com"}

	doc, err := docmap.ToDocument(user, false)
	assert.NoError(t, err)
	assert.NotContains(t, doc, "id")
	assert.NotContains(t, doc, "_id")
	assert.Equal(t, "johndoe", doc["username"])
	assert.Equal(t, "john@example.com", doc["email"])
}

func TestToDocumentIncludesPrimaryKeyOnRequest(t *testing.T) {
	user := &models.User{ID: userHex, Username: "johndoe", Email: "john@example.com"}

	doc, err := docmap.ToDocument(user, true)
	assert.NoError(t, err)
	assert.NotContains(t, doc, "id")

	oid, ok := doc["_id"].(primitive.ObjectID)
	assert.True(t, ok, "expected _id to be a binary ObjectID, got %T", doc["_id"])
	assert.Equal(t, userHex, oid.Hex())
}

func TestToDocumentConvertsReferenceIdentifiers(t *testing.T) {
	post := &models.Post{Title: "Test Post", Content: "This is a test post", AuthorID: userHex}

	doc, err := docmap.ToDocument(post, false)
	assert.NoError(t, err)

	oid, ok := doc["author_id"].(primitive.ObjectID)
	assert.True(t, ok, "expected author_id to be a binary ObjectID, got %T", doc["author_id"])
	assert.Equal(t, userHex, oid.Hex())
}

func TestToDocumentWithoutIdentifier(t *testing.T) {
	user := &models.User{Username: "johndoe", Email: "john@example.com"}

	doc, err := docmap.ToDocument(user, true)
	assert.NoError(t, err)

	// Nothing to include: the database assigns the key on insert.
	assert.NotContains(t, doc, "id")
	assert.NotContains(t, doc, "_id")
}

func TestFromDocumentRenamesPrimaryKey(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex(postHex)
	assert.NoError(t, err)
	authorOID, err := primitive.ObjectIDFromHex(userHex)
	assert.NoError(t, err)

	doc := bson.M{
		"_id":       oid,
		"title":     "Test Post",
		"content":   "This is a test post",
		"author_id": authorOID,
	}

	mapped := docmap.FromDocument(doc)
	assert.NotContains(t, mapped, "_id")
	assert.Equal(t, postHex, mapped["id"])
	assert.Equal(t, userHex, mapped["author_id"])
	assert.Equal(t, "Test Post", mapped["title"])

	// The input document is left untouched.
	assert.Contains(t, doc, "_id")
	assert.NotContains(t, doc, "id")
}

func TestRoundTripWithoutIdentifier(t *testing.T) {
	original := &models.User{Username: "johndoe", Email: "john@example.com"}

	doc, err := docmap.ToDocument(original, false)
	assert.NoError(t, err)

	var restored models.User
	assert.NoError(t, docmap.Decode(doc, &restored))

	assert.Equal(t, models.ID(""), restored.ID)
	assert.Equal(t, original.Username, restored.Username)
	assert.Equal(t, original.Email, restored.Email)
}

func TestRoundTripWithIdentifier(t *testing.T) {
	original := &models.Post{
		ID:       postHex,
		Title:    "Test Post",
		Content:  "This is a test post",
		AuthorID: userHex,
	}

	doc, err := docmap.ToDocument(original, true)
	assert.NoError(t, err)

	var restored models.Post
	assert.NoError(t, docmap.Decode(doc, &restored))

	assert.Equal(t, original.ID, restored.ID)
	assert.Equal(t, original.Title, restored.Title)
	assert.Equal(t, original.Content, restored.Content)
	assert.Equal(t, original.AuthorID, restored.AuthorID)
}

func TestDecodeAcceptsStringIdentifiers(t *testing.T) {
	// Stored documents may carry identifier fields in string form.
	doc := bson.M{
		"_id":       mustOID(t, postHex),
		"title":     "Test Post",
		"content":   "This is a test post",
		"author_id": userHex,
	}

	var post models.Post
	assert.NoError(t, docmap.Decode(doc, &post))
	assert.Equal(t, models.ID(postHex), post.ID)
	assert.Equal(t, models.ID(userHex), post.AuthorID)
}

func TestToDocumentRejectsMalformedIdentifier(t *testing.T) {
	post := &models.Post{Title: "Test Post", Content: "x", AuthorID: "zzzzzzzzzzzzzzzzzzzzzzzz"}

	_, err := docmap.ToDocument(post, false)
	assert.Error(t, err)
}

func mustOID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	oid, err := primitive.ObjectIDFromHex(hex)
	assert.NoError(t, err)
	return oid
}
