package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/kunsthaus/canvasbid/internal/client/auction"
	"github.com/kunsthaus/canvasbid/internal/client/catalog"
	"github.com/kunsthaus/canvasbid/internal/client/session"
	"github.com/kunsthaus/canvasbid/internal/client/storage"
	"github.com/kunsthaus/canvasbid/internal/client/view"
	"github.com/kunsthaus/canvasbid/internal/config"
)

// Cli wires the controllers to terminal commands.
type Cli struct {
	session  *session.Service
	auctions *auction.Controller
	catalog  *catalog.Service
	renderer *view.Terminal
	meta     storage.MetadataStorage
	cfg      *config.Config
}

// New creates the command surface.
func New(sess *session.Service, auctions *auction.Controller, gallery *catalog.Service, renderer *view.Terminal, meta storage.MetadataStorage, cfg *config.Config) *Cli {
	return &Cli{
		session:  sess,
		auctions: auctions,
		catalog:  gallery,
		renderer: renderer,
		meta:     meta,
		cfg:      cfg,
	}
}

// Run dispatches a single command.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "auctions":
		return c.runAuctions(ctx, args)
	case "watch":
		return c.runWatch(ctx, args)
	case "bid":
		return c.runBid(ctx, args)
	case "history":
		return c.runHistory(ctx, args)
	case "artists":
		return c.runArtists(ctx)
	case "artworks":
		return c.runArtworks(ctx)
	case "search":
		return c.runSearch(ctx, args)
	case "add-artwork":
		return c.runAddArtwork(ctx)
	case "account":
		return c.runAccount(ctx, args)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage prints the command overview.
func PrintUsage() {
	fmt.Println("Kunsthaus auction client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  canvasbid [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Backend URL (default: http://localhost:5000)")
	fmt.Println("  --db PATH        Path to local database (default: canvasbid.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                 Create an account (collector or artist)")
	fmt.Println("  login                    Sign in")
	fmt.Println("  logout                   Sign out and clear the local session")
	fmt.Println("  status                   Show session and gallery status")
	fmt.Println("  auctions [flags]         List auctions; supports --status, --category,")
	fmt.Println("                           --min-price, --max-price, --focus")
	fmt.Println("  watch [flags]            Keep the auction listing refreshed until Ctrl-C")
	fmt.Println("  bid <auction> <amount>   Place a bid on a live auction")
	fmt.Println("  history <auction>        Show the bid history of an auction")
	fmt.Println("  artists                  List gallery artists")
	fmt.Println("  artworks                 List catalog artworks")
	fmt.Println("  search <query>           Search artworks and artists")
	fmt.Println("  add-artwork              List a new artwork (artist accounts)")
	fmt.Println("  account update           Change email or artist profile details")
	fmt.Println("  account password         Change the account password")
	fmt.Println("  account artworks         List your own submitted artworks")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  canvasbid login")
	fmt.Println("  canvasbid auctions --status live --max-price 500")
	fmt.Println("  canvasbid bid 9 150")
	fmt.Println("  canvasbid --server https://kunsthaus.example.com watch")
}

// readInput reads one trimmed line from stdin.
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword reads a password without echoing it.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}

// readYesNo reads a y/n answer, defaulting to no.
func readYesNo(prompt string) (bool, error) {
	answer, err := readInput(prompt + " [y/N]: ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
