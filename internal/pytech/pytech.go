// Package pytech manages student documents in the students collection.
package pytech

import (
	"fmt"

	"whatabook/internal/dberr"
	"whatabook/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection holds the student documents.
const Collection = "students"

// Updatable lists the fields UpdateOne may change.
var Updatable = []string{"first_name", "last_name"}

type Student struct {
	DocumentID string
	StudentID  int64
	FirstName  string
	LastName   string
}

func (s Student) Format() string {
	return fmt.Sprintf("  Student ID: %d\n  First Name: %s\n  Last Name: %s\n", s.StudentID, s.FirstName, s.LastName)
}

// Document is the stored form of s. The document id is assigned by the store.
func (s Student) Document() bson.D {
	return bson.D{
		{Key: "student_id", Value: s.StudentID},
		{Key: "first_name", Value: s.FirstName},
		{Key: "last_name", Value: s.LastName},
	}
}

// Record is the stored form of s as it comes back from the store, _id included
// when s has one.
func (s Student) Record() store.Record {
	doc := s.Document()
	if s.DocumentID != "" {
		var id any = s.DocumentID
		if oid, err := primitive.ObjectIDFromHex(s.DocumentID); err == nil {
			id = oid
		}
		doc = append(bson.D{{Key: "_id", Value: id}}, doc...)
	}
	r := store.Record{Fields: make([]string, len(doc)), Values: make([]any, len(doc))}
	for i, e := range doc {
		r.Fields[i] = e.Key
		r.Values[i] = e.Value
	}
	return r
}

func StudentFromRecord(r store.Record) (Student, error) {
	const op = "pytech.StudentFromRecord"

	var s Student
	if v, ok := r.Get("_id"); ok {
		s.DocumentID = documentID(v)
	}

	v, ok := r.Get("student_id")
	if !ok {
		return Student{}, dberr.Malformed(op, "missing field %q", "student_id")
	}
	id, err := store.AsInt64(v)
	if err != nil {
		return Student{}, dberr.Malformed(op, "student_id: %v", err)
	}
	s.StudentID = id

	if s.FirstName, err = r.Field(op, "first_name"); err != nil {
		return Student{}, err
	}
	if s.LastName, err = r.Field(op, "last_name"); err != nil {
		return Student{}, err
	}
	return s, nil
}

func documentID(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case nil:
		return ""
	default:
		s, err := store.AsString(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return s
	}
}
