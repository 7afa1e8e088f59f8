package docstore

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"whatabook/internal/config"
	"whatabook/internal/dberr"
	"whatabook/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestOpen_Validation(t *testing.T) {
	_, err := Open(context.Background(), config.Settings{
		Document: config.Document{URL: "mongodb://localhost:27017"},
		Secrets:  config.Secrets{User: "admin", Password: "admin"},
	})
	assert.ErrorIs(t, err, dberr.ErrConfiguration)

	_, err = Open(context.Background(), config.Settings{
		Document: config.Document{URL: "not a url", Database: "pytech"},
		Secrets:  config.Secrets{User: "admin", Password: "admin"},
	})
	assert.ErrorIs(t, err, dberr.ErrConfiguration)
}

func TestOpen_IsLazy(t *testing.T) {
	ctx := context.Background()
	p, err := Open(ctx, config.Settings{
		Connection: config.Connection{Timeout: time.Second},
		Document:   config.Document{URL: "mongodb://203.0.113.1:27017", Database: "pytech"},
		Secrets:    config.Secrets{User: "admin", Password: "admin"},
	})
	require.NoError(t, err)
	assert.NotNil(t, p.Collection("students"))
	assert.NoError(t, p.Close(ctx))
}

func TestMongo_Integration(t *testing.T) {
	url := os.Getenv("TEST_MONGO_URL")
	if url == "" {
		t.Skip("Skipping test: TEST_MONGO_URL not set")
	}
	ctx := context.Background()
	p, err := Open(ctx, config.Settings{
		Connection: config.Connection{Timeout: 5 * time.Second},
		Document:   config.Document{URL: url, Database: "pytech_test"},
		Secrets:    config.Secrets{User: os.Getenv("STORE_USER"), Password: os.Getenv("STORE_PASSWORD")},
	})
	if err != nil {
		t.Skipf("Skipping test: cannot configure test deployment: %v", err)
	}
	defer p.Close(ctx)

	if err := p.Ping(ctx); err != nil {
		t.Skipf("Skipping test: cannot ping test deployment: %v", err)
	}

	coll := fmt.Sprintf("students_%d", time.Now().UnixNano())
	exec := NewExecutor(p)
	byID := bson.D{{Key: "student_id", Value: int64(1007)}}

	res, err := exec.Write(ctx, store.Query{Name: "insert", Collection: coll, Action: store.ActionInsert,
		Payload: bson.D{{Key: "student_id", Value: int64(1007)}, {Key: "first_name", Value: "Thor"}, {Key: "last_name", Value: "Oakenshield"}}})
	require.NoError(t, err)
	assert.NotNil(t, res.InsertedID)

	res, err = exec.Write(ctx, store.Query{Name: "update", Collection: coll, Action: store.ActionUpdate,
		Filter: byID, Payload: bson.D{{Key: "$set", Value: bson.D{{Key: "last_name", Value: "Odinson"}}}}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Affected)

	records, err := exec.Read(ctx, store.Query{Name: "find_one", Collection: coll, Action: store.ActionFindOne, Filter: byID})
	require.NoError(t, err)
	require.Len(t, records, 1)
	last, err := records[0].Field("find_one", "last_name")
	require.NoError(t, err)
	assert.Equal(t, "Odinson", last)

	res, err = exec.Write(ctx, store.Query{Name: "delete", Collection: coll, Action: store.ActionDelete, Filter: byID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Affected)

	_, err = exec.Read(ctx, store.Query{Name: "find_one", Collection: coll, Action: store.ActionFindOne, Filter: byID})
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}
