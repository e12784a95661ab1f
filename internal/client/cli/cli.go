// Package cli is the terminal front-end of dogbrowser: it drives the dog and
// auth stores and renders their snapshots.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/dogbrowser/internal/client/api"
	"github.com/iudanet/dogbrowser/internal/client/iocli"
	"github.com/iudanet/dogbrowser/internal/client/state"
	"github.com/iudanet/dogbrowser/internal/models"
)

//go:generate moq -out prober_mock.go . Prober
//go:generate moq -out sessioninfo_mock.go . SessionInfo

// ErrUnknownCommand is returned by Run for an unsupported command name
var ErrUnknownCommand = errors.New("unknown command")

// Prober выполняет проверочные запросы к URL фотографий (api.Client)
type Prober interface {
	Request(ctx context.Context, url string, opts api.RequestOptions, policy *api.RetryPolicy) (*api.Response, error)
}

// SessionInfo exposes token details for the status command (auth.Service)
type SessionInfo interface {
	AccessTokenExpiry(ctx context.Context) (time.Time, error)
}

type Cli struct {
	io      iocli.IO
	dogs    *state.DogStore
	auth    *state.AuthStore
	session SessionInfo
	prober  Prober
}

func New(terminal iocli.IO, dogs *state.DogStore, auth *state.AuthStore, session SessionInfo, prober Prober) *Cli {
	return &Cli{
		io:      terminal,
		dogs:    dogs,
		auth:    auth,
		session: session,
		prober:  prober,
	}
}

// sessionCommands показывают сохраненную сессию и требуют ее восстановления
var sessionCommands = map[string]bool{
	"whoami":  true,
	"status":  true,
	"refresh": true,
}

// Run executes one command. args are the arguments after the command name.
// The session is restored from stored tokens only for commands that read it.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	if sessionCommands[command] {
		c.auth.Initialize(ctx)
	}

	switch command {
	case "breeds":
		return c.runBreeds(ctx)
	case "images":
		return c.runImages(ctx, args)
	case "browse":
		return c.runBrowse(ctx)
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "whoami":
		return c.runWhoami()
	case "status":
		return c.runStatus(ctx)
	case "refresh":
		return c.runRefresh(ctx)
	default:
		PrintUsage(c.io)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func PrintUsage(out iocli.IO) {
	out.Println("Dog Browser")
	out.Println()
	out.Println("Usage:")
	out.Println("  dogbrowser [OPTIONS] COMMAND")
	out.Println()
	out.Println("Options:")
	out.Println("  --version            Show version information")
	out.Println("  --config PATH        Config file (default: ~/.config/dogbrowser/config.toml)")
	out.Println("  --dog-api URL        Dog CEO API base URL")
	out.Println("  --auth-api URL       Auth API base URL")
	out.Println("  --db PATH            Path to token database")
	out.Println("  --log-level LEVEL    debug, info, warn or error")
	out.Println("  --trace              Print request spans to stderr")
	out.Println()
	out.Println("Commands:")
	out.Println("  breeds                     List all breeds")
	out.Println("  images <breed> [--check]   Show sample images of a breed")
	out.Println("  browse                     Interactive breed browser")
	out.Println("  login [username]           Sign in")
	out.Println("  logout                     Sign out and delete stored tokens")
	out.Println("  whoami                     Show the signed-in user")
	out.Println("  status                     Show session status")
	out.Println("  refresh                    Refresh the access token")
	out.Println()
	out.Println("Examples:")
	out.Println("  dogbrowser breeds")
	out.Println("  dogbrowser images hound --check")
	out.Println("  dogbrowser login emilys")
	out.Println("  dogbrowser --dog-api http://localhost:8080/api browse")
}

func (c *Cli) printUser(user *models.User) {
	if user == nil {
		return
	}
	c.io.Printf("Username: %s\n", user.Username)
	if name := user.FullName(); name != "" {
		c.io.Printf("Name:     %s\n", name)
	}
	if user.Email != "" {
		c.io.Printf("Email:    %s\n", user.Email)
	}
	c.io.Printf("ID:       %d\n", user.ID)
}
