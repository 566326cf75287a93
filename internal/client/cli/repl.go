package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context) error

	Browse(ctx context.Context) error
	Search(ctx context.Context) error
	ShowProduct(ctx context.Context) error
	Categories(ctx context.Context) error

	ShowCart(ctx context.Context) error
	AddToCart(ctx context.Context) error
	IncCart(ctx context.Context) error
	DecCart(ctx context.Context) error
	RemoveFromCart(ctx context.Context) error
	ClearCart(ctx context.Context) error

	Checkout(ctx context.Context) error
	BuyNow(ctx context.Context) error
	VerifyOrder(ctx context.Context) error

	Orders(ctx context.Context) error
	ShowOrder(ctx context.Context) error
	CancelOrder(ctx context.Context) error
	ReturnOrder(ctx context.Context) error

	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ChangeEmail(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	ToggleTheme(ctx context.Context) error

	Admin(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the storefront CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("store> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printHelp(a)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "b", "browse":
			_ = a.Browse(ctx)

		case "s", "search":
			_ = a.Search(ctx)

		case "product":
			_ = a.ShowProduct(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "cart":
			_ = a.ShowCart(ctx)

		case "add":
			_ = a.AddToCart(ctx)

		case "inc":
			_ = a.IncCart(ctx)

		case "dec":
			_ = a.DecCart(ctx)

		case "remove":
			_ = a.RemoveFromCart(ctx)

		case "clearcart":
			_ = a.ClearCart(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "buy":
			_ = a.BuyNow(ctx)

		case "verify":
			_ = a.VerifyOrder(ctx)

		case "o", "orders":
			_ = a.Orders(ctx)

		case "order":
			_ = a.ShowOrder(ctx)

		case "cancel":
			_ = a.CancelOrder(ctx)

		case "return":
			_ = a.ReturnOrder(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "changeemail":
			_ = a.ChangeEmail(ctx)

		case "changepass":
			_ = a.ChangePassword(ctx)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "admin":
			if a.isAdmin() {
				_ = a.Admin(ctx)
			} else {
				printlnFn("Unknown command:", cmd)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	printlnFn("Catalog: (b)rowse, (s)earch, product, categories")
	if a.isLoggedIn() {
		printlnFn("Cart: cart, add, inc, dec, remove, clearcart")
		printlnFn("Orders: checkout, buy, verify, (o)rders, order, cancel, return")
		printlnFn("Account: profile, editprofile, changeemail, changepass, theme, logout")
		if a.isAdmin() {
			printlnFn("Admin: admin")
		}
	} else {
		printlnFn("Account: register, login, forgot, theme")
	}
	printlnFn("Other: help, exit")
}
