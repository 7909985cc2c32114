package app

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/TheLeggett/Summer-Breeze/internal/deployer"
)

// browseState tracks the browser's position: the current SD path and the
// stack of paths the user descended through. It lives only for one Browse
// call.
type browseState struct {
	currentPath string
	history     []string
}

// enter descends into a directory, pushing the current path.
func (s *browseState) enter(e deployer.Entry) {
	s.history = append(s.history, s.currentPath)
	if s.currentPath == "/" {
		s.currentPath = e.Path
	} else {
		s.currentPath = strings.TrimRight(s.currentPath, "/") + "/" + e.Name
	}
}

// up moves to the parent: pop the history when there is one, otherwise
// truncate the path at its last separator.
func (s *browseState) up() {
	if n := len(s.history); n > 0 {
		s.currentPath = s.history[n-1]
		s.history = s.history[:n-1]
		return
	}
	trimmed := strings.TrimRight(s.currentPath, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx > 0 {
		s.currentPath = trimmed[:idx]
	} else {
		s.currentPath = "/"
	}
}

// Browse runs the interactive SD card browser. The listing is re-fetched
// from the device on every iteration since card contents can change behind
// the tool's back; nothing is cached across renders.
func (a *App) Browse() {
	a.header("SD Card Browser")

	if !a.requireDevice() || !a.requireSD() {
		return
	}

	state := &browseState{currentPath: "/"}

	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, strings.Repeat("=", 50))
		fmt.Fprintf(a.out, "  Current path: %s\n", state.currentPath)
		fmt.Fprintln(a.out, strings.Repeat("=", 50))

		entries := a.cart.List(state.currentPath)
		items := a.renderListing(entries)

		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Navigation:")
		if state.currentPath != "/" {
			fmt.Fprintln(a.out, "  [0] Go back (parent directory)")
		}
		fmt.Fprintln(a.out, "  [b] Back to main menu")
		if len(items) > 0 {
			fmt.Fprintf(a.out, "  [1-%d] Enter directory\n", len(items))
		}
		fmt.Fprintln(a.out)

		choice, ok := a.prompt.ReadLine("Enter choice: ")
		if !ok || strings.ToLower(choice) == "b" {
			fmt.Fprintln(a.out, "Returning to main menu...")
			return
		}

		if choice == "0" && state.currentPath != "/" {
			state.up()
			continue
		}

		num, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Fprintf(a.out, "Invalid input: %s\n", choice)
			continue
		}
		if num < 1 || num > len(items) {
			fmt.Fprintf(a.out, "Invalid choice: %d\n", num)
			continue
		}

		item := items[num-1]
		if item.IsDir() {
			state.enter(item)
		} else {
			a.showEntry(item)
		}
	}
}

// renderListing prints the numbered browser listing, directories first, each
// group sorted case-insensitively, and returns the entries in display order.
func (a *App) renderListing(entries []deployer.Entry) []deployer.Entry {
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "  (empty directory)")
		return nil
	}

	var dirs, files []deployer.Entry
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}
	byName := func(list []deployer.Entry) {
		sort.Slice(list, func(i, j int) bool {
			return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
		})
	}
	byName(dirs)
	byName(files)

	items := make([]deployer.Entry, 0, len(entries))
	for _, d := range dirs {
		items = append(items, d)
		fmt.Fprintf(a.out, "  [%2d] [DIR]  %s/\n", len(items), d.Name)
	}
	for _, f := range files {
		items = append(items, f)
		fmt.Fprintf(a.out, "  [%2d] %s %s%s\n", len(items), romMarker(f.Name), f.Name, entrySuffix(f))
	}
	return items
}

// showEntry prints a file's metadata and waits for acknowledgment.
func (a *App) showEntry(e deployer.Entry) {
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "  File: %s\n", e.Name)
	fmt.Fprintf(a.out, "  Path: %s\n", e.Path)
	if e.HasSize() {
		fmt.Fprintf(a.out, "  Size: %s\n", e.SizeText)
	}
	a.prompt.Acknowledge("\n  Press Enter to continue...")
}
