package whatabook

import (
	"testing"

	"whatabook/internal/dberr"
	"whatabook/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookFields = []string{"book_id", "book_name", "author", "details"}

func TestBookFromRecord(t *testing.T) {
	b, err := BookFromRecord(store.NewRecord(bookFields, int64(4), "The Hobbit or There and Back Again", "J.R.R. Tolkien", []byte("A journey")))
	require.NoError(t, err)
	assert.Equal(t, Book{ID: 4, Name: "The Hobbit or There and Back Again", Author: "J.R.R. Tolkien", Details: "A journey"}, b)

	b, err = BookFromRecord(store.NewRecord(bookFields, int64(8), "The Catcher in the Rye", "J.D. Salinger", nil))
	require.NoError(t, err)
	assert.Empty(t, b.Details)
}

func TestFromRecord_Malformed(t *testing.T) {
	_, err := BookFromRecord(store.NewRecord([]string{"book_id", "book_name"}, int64(1), "x"))
	assert.ErrorIs(t, err, dberr.ErrMalformedRecord)

	_, err = StoreFromRecord(store.NewRecord([]string{"store_id", "locale"}, "not a number", "x"))
	assert.ErrorIs(t, err, dberr.ErrMalformedRecord)

	_, err = UserFromRecord(store.NewRecord([]string{"user_id"}, int64(1)))
	assert.ErrorIs(t, err, dberr.ErrMalformedRecord)

	_, err = WishlistItemFromRecord(store.NewRecord(bookFields, int64(1), "a", "b", "c"))
	assert.ErrorIs(t, err, dberr.ErrMalformedRecord)

	assert.NotPanics(t, func() {
		item, err := WishlistItemFromRecord(store.Record{Values: []any{int64(1), "Thorin", "Oakenshield", int64(2), "n", "au", "d"}})
		require.NoError(t, err)
		assert.Equal(t, "Thorin", item.User.FirstName)
	})

	_, err = WishlistItemFromRecord(store.Record{Values: []any{"x", "Thorin", "Oakenshield", int64(2), "n", "au", "d"}})
	assert.ErrorIs(t, err, dberr.ErrMalformedRecord)
}

func TestRecord_RoundTrip(t *testing.T) {
	user := User{ID: 1, FirstName: "Thorin", LastName: "Oakenshield"}
	book := Book{ID: 4, Name: "The Hobbit or There and Back Again", Author: "J.R.R. Tolkien", Details: "A journey"}

	tests := []struct {
		name   string
		entity any
		back   func() (any, error)
	}{
		{"user", user, func() (any, error) { return UserFromRecord(user.Record()) }},
		{"book", book, func() (any, error) { return BookFromRecord(book.Record()) }},
		{"book without details", Book{ID: 8, Name: "The Catcher in the Rye", Author: "J.D. Salinger"},
			func() (any, error) { return BookFromRecord(Book{ID: 8, Name: "The Catcher in the Rye", Author: "J.D. Salinger"}.Record()) }},
		{"store", Store{ID: 1, Locale: "Bellevue"}, func() (any, error) { return StoreFromRecord(Store{ID: 1, Locale: "Bellevue"}.Record()) }},
		{"wishlist", Wishlist{ID: 3, UserID: 1, BookID: 4}, func() (any, error) { return WishlistFromRecord(Wishlist{ID: 3, UserID: 1, BookID: 4}.Record()) }},
		{"wishlist item", WishlistItem{User: user, Book: book}, func() (any, error) {
			return WishlistItemFromRecord(WishlistItem{User: user, Book: book}.Record())
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.back()
			require.NoError(t, err)
			assert.Equal(t, tt.entity, got)
		})
	}
}

func TestWishlistItemRecord_ColumnOrder(t *testing.T) {
	r := WishlistItem{User: User{ID: 1}, Book: Book{ID: 4}}.Record()
	assert.Equal(t, []string{"user_id", "first_name", "last_name", "book_id", "book_name", "author", "details"}, r.Fields)
	assert.Equal(t, 7, r.Len())
}

func TestWishlistItemFromRecord(t *testing.T) {
	r := store.NewRecord(
		[]string{"user_id", "first_name", "last_name", "book_id", "book_name", "author", "details"},
		int64(1), "Thorin", "Oakenshield", int64(4), "The Hobbit", "J.R.R. Tolkien", "A journey",
	)
	item, err := WishlistItemFromRecord(r)
	require.NoError(t, err)
	assert.Equal(t, User{ID: 1, FirstName: "Thorin", LastName: "Oakenshield"}, item.User)
	assert.Equal(t, int64(4), item.Book.ID)
	assert.Equal(t, item.Book.Format(), item.Format())
}

func TestWishlistFromRecord(t *testing.T) {
	w, err := WishlistFromRecord(store.NewRecord([]string{"wishlist_id", "user_id", "book_id"}, int64(3), int64(1), int64(4)))
	require.NoError(t, err)
	assert.Equal(t, Wishlist{ID: 3, UserID: 1, BookID: 4}, w)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "  Book ID: 5\n  Book Name: Dune\n  Author: Frank Herbert\n  Details: Spice\n",
		Book{ID: 5, Name: "Dune", Author: "Frank Herbert", Details: "Spice"}.Format())
	assert.Equal(t, "  Store ID: 1\n  Locale: Bellevue\n", Store{ID: 1, Locale: "Bellevue"}.Format())
	assert.Equal(t, "  User ID: 2\n  First Name: Bilbo\n  Last Name: Baggins\n", User{ID: 2, FirstName: "Bilbo", LastName: "Baggins"}.Format())
}
