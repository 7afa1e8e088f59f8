package whatabook

import (
	"context"

	"whatabook/internal/dberr"
	"whatabook/internal/report"
)

var (
	bannerBooks     = report.Banner("BOOK LISTING")
	bannerLocations = report.Banner("STORE LOCATIONS")
	bannerWishlist  = report.Banner("WISHLIST ITEMS")
	bannerAvailable = report.Banner("AVAILABLE BOOKS")
)

// Service renders the book-store reports and applies the wishlist rules.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetBooks lists the catalog. An empty catalog is reported as not found.
func (s *Service) GetBooks(ctx context.Context) (string, error) {
	books, err := s.repo.Books(ctx)
	if err != nil {
		return "", err
	}
	if len(books) == 0 {
		return "", dberr.NotFound("whatabook.GetBooks", "books")
	}
	return report.Render(bannerBooks, books), nil
}

// GetLocations lists the stores. No stores is reported as not found.
func (s *Service) GetLocations(ctx context.Context) (string, error) {
	stores, err := s.repo.Stores(ctx)
	if err != nil {
		return "", err
	}
	if len(stores) == 0 {
		return "", dberr.NotFound("whatabook.GetLocations", "stores")
	}
	return report.Render(bannerLocations, stores), nil
}

func (s *Service) GetTotalUsers(ctx context.Context) (int64, error) {
	return s.repo.CountUsers(ctx)
}

// ValidateUserID reports whether id lies in [1, total users].
func (s *Service) ValidateUserID(ctx context.Context, id int64) (bool, error) {
	total, err := s.repo.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	return id >= 1 && id <= total, nil
}

// GetWishlistBooks lists the books on the user's wishlist. An empty wishlist is a
// banner with no entries.
func (s *Service) GetWishlistBooks(ctx context.Context, userID int64) (string, error) {
	items, err := s.repo.WishlistBooks(ctx, userID)
	if err != nil {
		return "", err
	}
	return report.Render(bannerWishlist, items), nil
}

// GetBooksToAdd lists the books not yet on the user's wishlist.
func (s *Service) GetBooksToAdd(ctx context.Context, userID int64) (string, error) {
	books, err := s.repo.BooksNotInWishlist(ctx, userID)
	if err != nil {
		return "", err
	}
	return report.Render(bannerAvailable, books), nil
}

func (s *Service) AddBookToWishlist(ctx context.Context, userID, bookID int64) (int64, error) {
	if userID < 1 || bookID < 1 {
		return 0, dberr.Validation("whatabook.AddBookToWishlist", "user id and book id must be positive, got %d and %d", userID, bookID)
	}
	return s.repo.AddToWishlist(ctx, userID, bookID)
}

func (s *Service) Users(ctx context.Context) ([]User, error) {
	return s.repo.Users(ctx)
}

func (s *Service) GetUser(ctx context.Context, id int64) (User, error) {
	return s.repo.User(ctx, id)
}

// Wishlist returns the raw wishlist entries of a user.
func (s *Service) Wishlist(ctx context.Context, userID int64) ([]Wishlist, error) {
	return s.repo.Wishlist(ctx, userID)
}
