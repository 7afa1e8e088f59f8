package whatabook

import "whatabook/internal/catalog"

// Section is the key of this facade's overrides in the queries settings.
const Section = "whatabook"

const (
	qGetBooks          = "get_books"
	qGetLocations      = "get_locations"
	qGetTotalUsers     = "get_total_users"
	qGetUsers          = "get_users"
	qGetUser           = "get_user"
	qGetWishlist       = "get_wishlist"
	qGetWishlistBooks  = "get_wishlist_books"
	qGetBooksToAdd     = "get_books_to_add"
	qAddBookToWishlist = "add_book_to_wishlist"
)

var Queries = []catalog.Template{
	{Name: qGetBooks, Text: "SELECT book_id, book_name, author, details FROM books ORDER BY book_id"},
	{Name: qGetLocations, Text: "SELECT store_id, locale FROM stores ORDER BY store_id"},
	{Name: qGetTotalUsers, Text: "SELECT COUNT(*) FROM users"},
	{Name: qGetUsers, Text: "SELECT user_id, first_name, last_name FROM users ORDER BY user_id"},
	{Name: qGetUser, Text: "SELECT user_id, first_name, last_name FROM users WHERE user_id = ?", Params: 1},
	{Name: qGetWishlist, Text: "SELECT wishlist_id, user_id, book_id FROM wishlists WHERE user_id = ? ORDER BY wishlist_id", Params: 1},
	{Name: qGetWishlistBooks, Text: "SELECT u.user_id, u.first_name, u.last_name, b.book_id, b.book_name, b.author, b.details " +
		"FROM wishlists w " +
		"INNER JOIN users u ON w.user_id = u.user_id " +
		"INNER JOIN books b ON w.book_id = b.book_id " +
		"WHERE u.user_id = ? ORDER BY b.book_id", Params: 1},
	{Name: qGetBooksToAdd, Text: "SELECT book_id, book_name, author, details FROM books " +
		"WHERE book_id NOT IN (SELECT book_id FROM wishlists WHERE user_id = ?) ORDER BY book_id", Params: 1},
	{Name: qAddBookToWishlist, Text: "INSERT INTO wishlists (user_id, book_id) VALUES (?, ?)", Params: 2},
}
