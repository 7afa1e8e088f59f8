package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"whatabook/internal/dberr"
	"whatabook/internal/store"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

var errNoCollection = errors.New("no collection named")

// Executor runs document queries. Read handles find and find_one, Write handles
// insert, update and delete.
type Executor struct {
	p *Provider
}

func NewExecutor(p *Provider) *Executor {
	return &Executor{p: p}
}

var _ store.Executor = (*Executor)(nil)

func (e *Executor) Read(ctx context.Context, q store.Query) ([]store.Record, error) {
	if q.Collection == "" {
		return nil, dberr.Query(q.Name, errNoCollection)
	}
	ctx, cancel := context.WithTimeout(ctx, e.p.timeout)
	defer cancel()

	start := time.Now()
	coll := e.p.Collection(q.Collection)
	filter := orEmpty(q.Filter)

	var (
		docs []bson.D
		err  error
	)
	switch q.Action {
	case store.ActionFind, "":
		docs, err = find(ctx, coll, filter)
	case store.ActionFindOne:
		var doc bson.D
		if err = coll.FindOne(ctx, filter).Decode(&doc); err == nil {
			docs = []bson.D{doc}
		}
	default:
		err = fmt.Errorf("%q is not a read action", q.Action)
	}
	if err != nil {
		err = classify(q.Name, err, dberr.ErrQuery)
		log.Warn().Err(err).Str("query", q.Name).Str("collection", q.Collection).Msg("docstore: read failed")
		return nil, err
	}

	records := make([]store.Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, recordOf(doc))
	}
	log.Debug().Str("query", q.Name).Int("documents", len(records)).Dur("took", time.Since(start)).Msg("docstore: read")
	return records, nil
}

func find(ctx context.Context, coll Collection, filter any) ([]bson.D, error) {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	docs := []bson.D{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Write reports matched documents for update and removed documents for delete,
// so callers can tell a no-op from a change.
func (e *Executor) Write(ctx context.Context, q store.Query) (store.Result, error) {
	if q.Collection == "" {
		return store.Result{}, dberr.Query(q.Name, errNoCollection)
	}
	ctx, cancel := context.WithTimeout(ctx, e.p.timeout)
	defer cancel()

	start := time.Now()
	coll := e.p.Collection(q.Collection)

	var (
		res store.Result
		err error
	)
	switch q.Action {
	case store.ActionInsert:
		if q.Payload == nil {
			err = errors.New("insert without a document")
			break
		}
		r, ierr := coll.InsertOne(ctx, q.Payload)
		if err = ierr; err == nil {
			res = store.Result{Affected: 1, InsertedID: r.InsertedID}
		}
	case store.ActionUpdate:
		r, uerr := coll.UpdateOne(ctx, orEmpty(q.Filter), q.Payload)
		if err = uerr; err == nil {
			res = store.Result{Affected: r.MatchedCount}
		}
	case store.ActionDelete:
		r, derr := coll.DeleteOne(ctx, orEmpty(q.Filter))
		if err = derr; err == nil {
			res = store.Result{Affected: r.DeletedCount}
		}
	default:
		err = fmt.Errorf("%q is not a write action", q.Action)
	}
	if err != nil {
		err = classify(q.Name, err, dberr.ErrQuery)
		log.Warn().Err(err).Str("query", q.Name).Str("collection", q.Collection).Msg("docstore: write failed")
		return store.Result{}, err
	}

	log.Debug().Str("query", q.Name).Int64("affected", res.Affected).Dur("took", time.Since(start)).Msg("docstore: write")
	return res, nil
}

func orEmpty(filter any) any {
	if filter == nil {
		return bson.D{}
	}
	return filter
}

func recordOf(doc bson.D) store.Record {
	r := store.Record{Fields: make([]string, len(doc)), Values: make([]any, len(doc))}
	for i, e := range doc {
		r.Fields[i] = e.Key
		r.Values[i] = e.Value
	}
	return r
}
