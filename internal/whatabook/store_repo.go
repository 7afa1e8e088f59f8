package whatabook

import (
	"context"

	"whatabook/internal/catalog"
	"whatabook/internal/dberr"
	"whatabook/internal/store"
)

// StoreRepo implements Repository with catalog queries run through an Executor.
type StoreRepo struct {
	exec    store.Executor
	queries *catalog.Catalog
}

var _ Repository = (*StoreRepo)(nil)

// NewStoreRepo builds the repository; overrides replace the text of default queries.
func NewStoreRepo(exec store.Executor, overrides map[string]string) (*StoreRepo, error) {
	queries, err := catalog.New(Section, Queries, overrides)
	if err != nil {
		return nil, err
	}
	return &StoreRepo{exec: exec, queries: queries}, nil
}

func (r *StoreRepo) read(ctx context.Context, name string, args ...any) ([]store.Record, error) {
	q, err := r.queries.Query(name, args...)
	if err != nil {
		return nil, err
	}
	return r.exec.Read(ctx, q)
}

func (r *StoreRepo) Books(ctx context.Context) ([]Book, error) {
	records, err := r.read(ctx, qGetBooks)
	if err != nil {
		return nil, err
	}
	return store.Collect(records, BookFromRecord)
}

func (r *StoreRepo) Stores(ctx context.Context) ([]Store, error) {
	records, err := r.read(ctx, qGetLocations)
	if err != nil {
		return nil, err
	}
	return store.Collect(records, StoreFromRecord)
}

func (r *StoreRepo) CountUsers(ctx context.Context) (int64, error) {
	const op = "whatabook.CountUsers"
	records, err := r.read(ctx, qGetTotalUsers)
	if err != nil {
		return 0, err
	}
	if len(records) != 1 {
		return 0, dberr.Malformed(op, "expected one count row, got %d", len(records))
	}
	if err := records[0].Expect(op, 1); err != nil {
		return 0, err
	}
	return records[0].Int64(op, 0)
}

func (r *StoreRepo) Users(ctx context.Context) ([]User, error) {
	records, err := r.read(ctx, qGetUsers)
	if err != nil {
		return nil, err
	}
	return store.Collect(records, UserFromRecord)
}

func (r *StoreRepo) User(ctx context.Context, id int64) (User, error) {
	records, err := r.read(ctx, qGetUser, id)
	if err != nil {
		return User{}, err
	}
	if len(records) == 0 {
		return User{}, dberr.NotFound("whatabook.User", "user")
	}
	return UserFromRecord(records[0])
}

func (r *StoreRepo) Wishlist(ctx context.Context, userID int64) ([]Wishlist, error) {
	records, err := r.read(ctx, qGetWishlist, userID)
	if err != nil {
		return nil, err
	}
	return store.Collect(records, WishlistFromRecord)
}

func (r *StoreRepo) WishlistBooks(ctx context.Context, userID int64) ([]WishlistItem, error) {
	records, err := r.read(ctx, qGetWishlistBooks, userID)
	if err != nil {
		return nil, err
	}
	return store.Collect(records, WishlistItemFromRecord)
}

func (r *StoreRepo) BooksNotInWishlist(ctx context.Context, userID int64) ([]Book, error) {
	records, err := r.read(ctx, qGetBooksToAdd, userID)
	if err != nil {
		return nil, err
	}
	return store.Collect(records, BookFromRecord)
}

// AddToWishlist returns the new wishlist id, or 0 when the driver does not report one.
func (r *StoreRepo) AddToWishlist(ctx context.Context, userID, bookID int64) (int64, error) {
	q, err := r.queries.Query(qAddBookToWishlist, userID, bookID)
	if err != nil {
		return 0, err
	}
	res, err := r.exec.Write(ctx, q)
	if err != nil {
		return 0, err
	}
	if res.InsertedID == nil {
		return 0, nil
	}
	id, err := store.AsInt64(res.InsertedID)
	if err != nil {
		return 0, dberr.Malformed("whatabook.AddToWishlist", "inserted id: %v", err)
	}
	return id, nil
}
