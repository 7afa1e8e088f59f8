package pytech

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"whatabook/internal/dberr"
	"whatabook/internal/report"
	"whatabook/internal/store"

	"go.mongodb.org/mongo-driver/bson"
)

var bannerFind = report.Banner("STUDENTS DOCUMENTS FROM find() QUERY")

type Service struct {
	exec store.Executor
}

func NewService(exec store.Executor) *Service {
	return &Service{exec: exec}
}

func byStudentID(id int64) bson.D {
	return bson.D{{Key: "student_id", Value: id}}
}

func (s *Service) Students(ctx context.Context) ([]Student, error) {
	records, err := s.exec.Read(ctx, store.Query{Name: "pytech.find", Collection: Collection, Action: store.ActionFind})
	if err != nil {
		return nil, err
	}
	return store.Collect(records, StudentFromRecord)
}

// Student returns the student with the given id. A missing student is not found.
func (s *Service) Student(ctx context.Context, studentID int64) (Student, error) {
	records, err := s.exec.Read(ctx, store.Query{
		Name:       "pytech.find_one",
		Collection: Collection,
		Action:     store.ActionFindOne,
		Filter:     byStudentID(studentID),
	})
	if err != nil {
		return Student{}, err
	}
	if len(records) == 0 {
		return Student{}, dberr.NotFound("pytech.Student", fmt.Sprintf("student %d", studentID))
	}
	return StudentFromRecord(records[0])
}

// Find lists every student. An empty collection is a banner with no entries.
func (s *Service) Find(ctx context.Context) (string, error) {
	students, err := s.Students(ctx)
	if err != nil {
		return "", err
	}
	return report.Render(bannerFind, students), nil
}

func (s *Service) FindOne(ctx context.Context, studentID int64) (string, error) {
	student, err := s.Student(ctx, studentID)
	if err != nil {
		return "", err
	}
	return report.Render(report.Banner(fmt.Sprintf("STUDENT DOCUMENT %d", studentID)), []Student{student}), nil
}

// Insert stores a new student and returns the confirmation line.
func (s *Service) Insert(ctx context.Context, student Student) (string, error) {
	const op = "pytech.Insert"
	student.FirstName = strings.TrimSpace(student.FirstName)
	student.LastName = strings.TrimSpace(student.LastName)
	if student.StudentID < 1 {
		return "", dberr.Validation(op, "student id must be positive, got %d", student.StudentID)
	}
	if student.FirstName == "" || student.LastName == "" {
		return "", dberr.Validation(op, "first and last name are required")
	}

	res, err := s.exec.Write(ctx, store.Query{
		Name:       "pytech.insert_one",
		Collection: Collection,
		Action:     store.ActionInsert,
		Payload:    student.Document(),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Inserted student record %s %s into the %s collection with document_id %s",
		student.FirstName, student.LastName, Collection, documentID(res.InsertedID)), nil
}

// UpdateOne sets one name field of a student.
func (s *Service) UpdateOne(ctx context.Context, studentID int64, field, value string) error {
	const op = "pytech.UpdateOne"
	if !slices.Contains(Updatable, field) {
		return dberr.Validation(op, "field %q cannot be updated, use one of %s", field, strings.Join(Updatable, ", "))
	}

	res, err := s.exec.Write(ctx, store.Query{
		Name:       "pytech.update_one",
		Collection: Collection,
		Action:     store.ActionUpdate,
		Filter:     byStudentID(studentID),
		Payload:    bson.D{{Key: "$set", Value: bson.D{{Key: field, Value: value}}}},
	})
	if err != nil {
		return err
	}
	if res.Affected == 0 {
		return dberr.NotFound(op, fmt.Sprintf("student %d", studentID))
	}
	return nil
}

func (s *Service) DeleteOne(ctx context.Context, studentID int64) error {
	const op = "pytech.DeleteOne"
	res, err := s.exec.Write(ctx, store.Query{
		Name:       "pytech.delete_one",
		Collection: Collection,
		Action:     store.ActionDelete,
		Filter:     byStudentID(studentID),
	})
	if err != nil {
		return err
	}
	if res.Affected == 0 {
		return dberr.NotFound(op, fmt.Sprintf("student %d", studentID))
	}
	return nil
}
