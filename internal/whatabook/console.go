package whatabook

import (
	"context"

	"whatabook/internal/menu"

	"github.com/rs/zerolog/log"
)

// Console drives the book-store menus over a menu.Controller.
type Console struct {
	svc *Service
	ctl *menu.Controller
}

func NewConsole(svc *Service, ctl *menu.Controller) *Console {
	return &Console{svc: svc, ctl: ctl}
}

// Run shows the main menu until the user exits or the input ends.
func (c *Console) Run(ctx context.Context) error {
	err := c.ctl.Run(ctx, c.mainMenu())
	c.ctl.Println("Exiting Program...")
	return err
}

func (c *Console) mainMenu() menu.Menu {
	return menu.Menu{
		Title:   "Main Menu",
		Example: "1 for book listing",
		Items: []menu.Item{
			{Label: "View Books", Handle: c.show(c.svc.GetBooks)},
			{Label: "View Store Locations", Handle: c.show(c.svc.GetLocations)},
			{Label: "My Account", Handle: c.myAccount},
			{Label: "Exit Program", Handle: exit},
		},
	}
}

func (c *Console) accountMenu(userID int64) menu.Menu {
	return menu.Menu{
		Title:   "Customer Menu",
		Example: "1 for wishlist",
		Items: []menu.Item{
			{Label: "Wishlist", Handle: c.show(func(ctx context.Context) (string, error) {
				return c.svc.GetWishlistBooks(ctx, userID)
			})},
			{Label: "Add Book", Handle: func(ctx context.Context) (menu.Outcome, error) {
				return c.addBook(ctx, userID)
			}},
			{Label: "Main Menu", Handle: exit},
		},
	}
}

func exit(context.Context) (menu.Outcome, error) {
	return menu.Exit, nil
}

func (c *Console) show(render func(ctx context.Context) (string, error)) menu.Handler {
	return func(ctx context.Context) (menu.Outcome, error) {
		text, err := render(ctx)
		if err != nil {
			return menu.Stay, err
		}
		c.ctl.Println(text)
		return menu.Stay, nil
	}
}

func (c *Console) myAccount(ctx context.Context) (menu.Outcome, error) {
	id, ok, err := c.ctl.ReadInt("Enter User ID: ")
	if err != nil {
		return menu.Stay, err
	}
	if !ok {
		c.ctl.Println("Invalid user id, try again...")
		return menu.Stay, nil
	}

	valid, err := c.svc.ValidateUserID(ctx, int64(id))
	if err != nil {
		return menu.Stay, err
	}
	if !valid {
		c.ctl.Println("Invalid user id, try again...")
		return menu.Stay, nil
	}

	user, err := c.svc.GetUser(ctx, int64(id))
	if err != nil {
		return menu.Stay, err
	}
	log.Info().Int64("user_id", user.ID).Msg("whatabook: user signed in")
	c.ctl.Printf("\nWelcome, %s %s\n\n", user.FirstName, user.LastName)

	return menu.Stay, c.ctl.Run(ctx, c.accountMenu(user.ID))
}

func (c *Console) addBook(ctx context.Context, userID int64) (menu.Outcome, error) {
	available, err := c.svc.GetBooksToAdd(ctx, userID)
	if err != nil {
		return menu.Stay, err
	}
	c.ctl.Println(available)

	bookID, ok, err := c.ctl.ReadInt("Enter Book ID: ")
	if err != nil {
		return menu.Stay, err
	}
	if !ok {
		c.ctl.Println("Invalid Book ID")
		return menu.Stay, nil
	}

	if _, err := c.svc.AddBookToWishlist(ctx, userID, int64(bookID)); err != nil {
		return menu.Stay, err
	}
	c.ctl.Println("Book added successfully...")
	return menu.Stay, nil
}
