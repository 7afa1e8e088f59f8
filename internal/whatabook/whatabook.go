// Package whatabook is the book-store wishlist facade and its console.
package whatabook

import (
	"fmt"

	"whatabook/internal/store"
)

type User struct {
	ID        int64
	FirstName string
	LastName  string
}

type Book struct {
	ID      int64
	Name    string
	Author  string
	Details string
}

type Store struct {
	ID     int64
	Locale string
}

type Wishlist struct {
	ID     int64
	UserID int64
	BookID int64
}

// WishlistItem is one row of the wishlist join: the owner and the wished-for book.
type WishlistItem struct {
	User User
	Book Book
}

func (u User) Format() string {
	return fmt.Sprintf("  User ID: %d\n  First Name: %s\n  Last Name: %s\n", u.ID, u.FirstName, u.LastName)
}

func (b Book) Format() string {
	return fmt.Sprintf("  Book ID: %d\n  Book Name: %s\n  Author: %s\n  Details: %s\n", b.ID, b.Name, b.Author, b.Details)
}

func (s Store) Format() string {
	return fmt.Sprintf("  Store ID: %d\n  Locale: %s\n", s.ID, s.Locale)
}

func (w Wishlist) Format() string {
	return fmt.Sprintf("  Wishlist ID: %d\n  User ID: %d\n  Book ID: %d\n", w.ID, w.UserID, w.BookID)
}

func (w WishlistItem) Format() string {
	return w.Book.Format()
}

// Record returns u in the column order of the users table.
func (u User) Record() store.Record {
	return store.NewRecord([]string{"user_id", "first_name", "last_name"}, u.ID, u.FirstName, u.LastName)
}

func (b Book) Record() store.Record {
	return store.NewRecord([]string{"book_id", "book_name", "author", "details"}, b.ID, b.Name, b.Author, b.Details)
}

func (s Store) Record() store.Record {
	return store.NewRecord([]string{"store_id", "locale"}, s.ID, s.Locale)
}

func (w Wishlist) Record() store.Record {
	return store.NewRecord([]string{"wishlist_id", "user_id", "book_id"}, w.ID, w.UserID, w.BookID)
}

// Record returns the wishlist join row: the user columns then the book columns.
func (w WishlistItem) Record() store.Record {
	u, b := w.User.Record(), w.Book.Record()
	return store.Record{
		Fields: append(append([]string{}, u.Fields...), b.Fields...),
		Values: append(append([]any{}, u.Values...), b.Values...),
	}
}

func UserFromRecord(r store.Record) (User, error) {
	const op = "whatabook.UserFromRecord"
	if err := r.Expect(op, 3); err != nil {
		return User{}, err
	}
	return userAt(op, r, 0)
}

// userAt reads user_id, first_name and last_name starting at column i.
func userAt(op string, r store.Record, i int) (User, error) {
	var (
		u   User
		err error
	)
	if u.ID, err = r.Int64(op, i); err != nil {
		return User{}, err
	}
	if u.FirstName, err = r.String(op, i+1); err != nil {
		return User{}, err
	}
	if u.LastName, err = r.String(op, i+2); err != nil {
		return User{}, err
	}
	return u, nil
}

func BookFromRecord(r store.Record) (Book, error) {
	const op = "whatabook.BookFromRecord"
	if err := r.Expect(op, 4); err != nil {
		return Book{}, err
	}
	return bookAt(op, r, 0)
}

// bookAt reads book_id, book_name, author and details starting at column i.
func bookAt(op string, r store.Record, i int) (Book, error) {
	var (
		b   Book
		err error
	)
	if b.ID, err = r.Int64(op, i); err != nil {
		return Book{}, err
	}
	if b.Name, err = r.String(op, i+1); err != nil {
		return Book{}, err
	}
	if b.Author, err = r.String(op, i+2); err != nil {
		return Book{}, err
	}
	if b.Details, err = r.String(op, i+3); err != nil {
		return Book{}, err
	}
	return b, nil
}

func StoreFromRecord(r store.Record) (Store, error) {
	const op = "whatabook.StoreFromRecord"
	if err := r.Expect(op, 2); err != nil {
		return Store{}, err
	}
	var (
		s   Store
		err error
	)
	if s.ID, err = r.Int64(op, 0); err != nil {
		return Store{}, err
	}
	if s.Locale, err = r.String(op, 1); err != nil {
		return Store{}, err
	}
	return s, nil
}

func WishlistFromRecord(r store.Record) (Wishlist, error) {
	const op = "whatabook.WishlistFromRecord"
	if err := r.Expect(op, 3); err != nil {
		return Wishlist{}, err
	}
	var (
		w   Wishlist
		err error
	)
	if w.ID, err = r.Int64(op, 0); err != nil {
		return Wishlist{}, err
	}
	if w.UserID, err = r.Int64(op, 1); err != nil {
		return Wishlist{}, err
	}
	if w.BookID, err = r.Int64(op, 2); err != nil {
		return Wishlist{}, err
	}
	return w, nil
}

// WishlistItemFromRecord reads the seven-column wishlist join row.
func WishlistItemFromRecord(r store.Record) (WishlistItem, error) {
	const op = "whatabook.WishlistItemFromRecord"
	if err := r.Expect(op, 7); err != nil {
		return WishlistItem{}, err
	}
	u, err := userAt(op, r, 0)
	if err != nil {
		return WishlistItem{}, err
	}
	b, err := bookAt(op, r, 3)
	if err != nil {
		return WishlistItem{}, err
	}
	return WishlistItem{User: u, Book: b}, nil
}
