// Package app orchestrates the deployer client, local inventory, and
// interactive shell into the tool's commands. Every command prints its
// outcome and returns control; operational failures are never fatal.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/TheLeggett/Summer-Breeze/config"
	"github.com/TheLeggett/Summer-Breeze/internal/deployer"
	"github.com/TheLeggett/Summer-Breeze/internal/inventory"
	"github.com/TheLeggett/Summer-Breeze/internal/shell"
	"github.com/TheLeggett/Summer-Breeze/internal/util"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

// App holds everything one command invocation needs. There is exactly one
// thread of control: commands run to completion before the next begins.
type App struct {
	cfg    *config.Config
	cart   *deployer.Client
	prompt *shell.Prompter
	out    io.Writer
	log    zerolog.Logger
}

// New wires the command layer together.
func New(cfg *config.Config, cart *deployer.Client, prompt *shell.Prompter, out io.Writer) *App {
	return &App{
		cfg:    cfg,
		cart:   cart,
		prompt: prompt,
		out:    out,
		log:    util.GetLogger("app"),
	}
}

// MainMenu runs the interactive top-level menu until the user exits.
func (a *App) MainMenu() {
	options := []string{
		"Show Status",
		"List Local ROMs",
		"List Cart Contents",
		"Compare (show what's missing on cart)",
		"Upload ROMs to Cart",
		"Quick Upload",
		"Update SC64 Menu",
		"Set Menu Background Music",
		"Sync RTC Clock",
		"Browse SD Card",
		"Exit",
	}

	for {
		a.header("Summer Breeze")

		if a.cart.DeviceConnected() {
			fmt.Fprintln(a.out, "Device: Connected")
		} else {
			fmt.Fprintln(a.out, "Device: NOT CONNECTED")
		}

		a.menu("Main Menu", options)
		choice := a.prompt.Choice(len(options), "Select option")

		if choice == 0 || choice == len(options) {
			fmt.Fprintln(a.out, "Goodbye!")
			return
		}

		switch choice {
		case 1:
			a.Status()
		case 2:
			a.ListLocal()
		case 3:
			a.ListCart()
		case 4:
			a.Compare()
		case 5:
			a.Upload()
		case 6:
			a.QuickUpload()
		case 7:
			a.UpdateMenu()
		case 8:
			a.Music()
		case 9:
			a.SyncRTC()
		case 10:
			a.Browse()
		}

		a.prompt.Acknowledge("\nPress Enter to continue...")
	}
}

// header prints a styled section header.
func (a *App) header(text string) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, strings.Repeat("=", 60))
	fmt.Fprintf(a.out, "  %s\n", text)
	fmt.Fprintln(a.out, strings.Repeat("=", 60))
}

// menu prints a numbered option list.
func (a *App) menu(title string, options []string) {
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "%s:\n", title)
	for i, opt := range options {
		fmt.Fprintf(a.out, "  [%d] %s\n", i+1, opt)
	}
	fmt.Fprintln(a.out)
}

// requireDevice checks for an attached SC64 and reports when absent.
func (a *App) requireDevice() bool {
	if a.cart.DeviceConnected() {
		return true
	}
	fmt.Fprintln(a.out, "SC64 device not connected!")
	return false
}

// requireSD checks that the SD card responds to listings and reports when
// it does not. The card needs the console powered on to be reachable.
func (a *App) requireSD() bool {
	if a.cart.SDAccessible() {
		return true
	}
	fmt.Fprintln(a.out, "SD card is not accessible.")
	fmt.Fprintln(a.out, "Power ON your N64 to enable SD card access.")
	return false
}

// ensureDir creates dir on first use.
func (a *App) ensureDir(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created directory: %s\n", dir)
	return nil
}

// formatSize renders a local byte count for display.
func formatSize(n int64) string {
	return humanize.IBytes(uint64(n))
}

// entrySuffix renders a remote entry's size for display, suppressing the
// device's unknown-size placeholder.
func entrySuffix(e deployer.Entry) string {
	if !e.HasSize() {
		return ""
	}
	return fmt.Sprintf(" (%s)", e.SizeText)
}

// romMarker flags ROM files in mixed listings.
func romMarker(name string) string {
	if inventory.IsRomName(name) {
		return "[ROM]"
	}
	return "[   ]"
}
