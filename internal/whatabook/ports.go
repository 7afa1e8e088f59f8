package whatabook

import "context"

// Repository defines the contract for book-store data access.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks whatabook/internal/whatabook Repository
type Repository interface {
	Books(ctx context.Context) ([]Book, error)
	Stores(ctx context.Context) ([]Store, error)
	CountUsers(ctx context.Context) (int64, error)
	Users(ctx context.Context) ([]User, error)
	User(ctx context.Context, id int64) (User, error)
	Wishlist(ctx context.Context, userID int64) ([]Wishlist, error)
	WishlistBooks(ctx context.Context, userID int64) ([]WishlistItem, error)
	BooksNotInWishlist(ctx context.Context, userID int64) ([]Book, error)
	AddToWishlist(ctx context.Context, userID, bookID int64) (int64, error)
}
