// Package cli реализует консольные команды клиента стенда.
package cli

import (
	"fmt"

	"github.com/vulnlab/accesslab/internal/client/api"
	"github.com/vulnlab/accesslab/internal/client/iocli"
	"github.com/vulnlab/accesslab/internal/client/storage"
)

type Cli struct {
	io        iocli.IO
	apiClient *api.Client
	storage   storage.SessionStorage
}

func New(io iocli.IO, apiClient *api.Client, sessionStorage storage.SessionStorage) *Cli {
	return &Cli{
		io:        io,
		apiClient: apiClient,
		storage:   sessionStorage,
	}
}

func PrintUsage() {
	fmt.Println(`AccessLab Client

Usage:
  accesslab [OPTIONS] COMMAND

Options:
  --version      Show version information
  --server URL   Server URL (default: http://localhost:8080)
  --db PATH      Path to local session database (default: accesslab-client.db)

Commands:
  login                Login to server
  logout               Drop local session
  status               Show current session
  get <id>             Show a user record by id (any id works)
  list                 List all user records
  update <id>          Update a user's profile interactively
  delete <id>          Delete a user record
  role <id> <role>     Change a user's role
  system               Show server configuration (leaks the signing secret)
  token                Decode the stored session token
  forge                Ask the server to mint a token with arbitrary claims
  reset                Reset server data to the initial state
  audit                Show the server-side operation trail

Examples:
  accesslab login
  accesslab get 1
  accesslab role 2 admin
  accesslab --server http://lab.local:8080 system

This client talks to a deliberately vulnerable training server.
Never point it at anything you care about.`)
}
