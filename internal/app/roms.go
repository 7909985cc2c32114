package app

import (
	"fmt"
	"strings"

	"github.com/TheLeggett/Summer-Breeze/internal/inventory"
)

// ListLocal lists the ROMs under the local roms directory.
func (a *App) ListLocal() {
	a.header("Local ROMs")
	fmt.Fprintf(a.out, "Directory: %s\n\n", a.cfg.RomsDir)

	roms, err := inventory.ScanLocal(a.cfg.RomsDir)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to scan local ROMs: %v\n", err)
		return
	}
	if len(roms) == 0 {
		fmt.Fprintln(a.out, "No ROM files found.")
		fmt.Fprintf(a.out, "Add .z64, .n64, or .v64 files to: %s\n", a.cfg.RomsDir)
		return
	}

	for i, rom := range roms {
		fmt.Fprintf(a.out, "  [%2d] %s (%s)\n", i+1, rom.Name, formatSize(rom.Size))
	}
	fmt.Fprintf(a.out, "\nTotal: %d ROM(s)\n", len(roms))
}

// ListCart lists the SD card root plus every ROM found anywhere on the card.
func (a *App) ListCart() {
	a.header("Cart SD Card Contents")

	if !a.requireSD() {
		return
	}

	fmt.Fprintln(a.out, "SD Card Root:")
	entries := a.cart.List("/")
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "  (empty or not accessible)")
		return
	}

	for _, e := range entries {
		marker := "[DIR]"
		if !e.IsDir() {
			marker = romMarker(e.Name)
		}
		fmt.Fprintf(a.out, "  %s %s%s\n", marker, e.Name, entrySuffix(e))
	}

	fmt.Fprintln(a.out, "\nAll ROMs on cart:")
	roms := inventory.WalkRemote(a.cart, "/", a.cfg.MaxWalkDepth)
	if len(roms) == 0 {
		fmt.Fprintln(a.out, "  No ROM files found on SD card.")
		return
	}
	for i, rom := range roms {
		fmt.Fprintf(a.out, "  [%2d] %s%s\n", i+1, rom.Name, entrySuffix(rom))
	}
	fmt.Fprintf(a.out, "\nTotal: %d ROM(s)\n", len(roms))
}

// Compare diffs local ROMs against the cart and returns the ones missing on
// the cart for reuse by Upload. With the SD card unreachable every local ROM
// is reported as missing rather than failing the command.
func (a *App) Compare() []inventory.LocalRom {
	a.header("Compare Local vs Cart")

	local, err := inventory.ScanLocal(a.cfg.RomsDir)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to scan local ROMs: %v\n", err)
		return nil
	}
	if len(local) == 0 {
		fmt.Fprintln(a.out, "No local ROMs found.")
		return nil
	}

	if !a.cart.SDAccessible() {
		fmt.Fprintln(a.out, "SD card is not accessible - showing all local ROMs as 'missing on cart'")
		fmt.Fprintln(a.out, "(Power on your N64 to enable SD card access for accurate comparison)")
		fmt.Fprintln(a.out)
		for i, rom := range local {
			fmt.Fprintf(a.out, "  [%2d] %s (%s)\n", i+1, rom.Name, formatSize(rom.Size))
		}
		return local
	}

	fmt.Fprintln(a.out, "Scanning SD card...")
	remote := inventory.WalkRemote(a.cart, "/", a.cfg.MaxWalkDepth)
	fmt.Fprintf(a.out, "Found %d ROM(s) on cart\n", len(remote))

	diff := inventory.Compare(local, remote)

	if len(diff.OnCart) > 0 {
		fmt.Fprintf(a.out, "\nAlready on cart (%d):\n", len(diff.OnCart))
		for _, rom := range diff.OnCart {
			fmt.Fprintf(a.out, "  [OK] %s\n", rom.Name)
		}
	}

	if len(diff.Missing) == 0 {
		fmt.Fprintln(a.out, "\nAll local ROMs are already on the cart!")
		return nil
	}

	fmt.Fprintf(a.out, "\nNOT on cart (%d):\n", len(diff.Missing))
	for i, rom := range diff.Missing {
		fmt.Fprintf(a.out, "  [%2d] %s (%s)\n", i+1, rom.Name, formatSize(rom.Size))
	}
	return diff.Missing
}

// Upload runs the compare-then-select upload flow.
func (a *App) Upload() {
	a.header("Upload ROMs to Cart")

	if !a.requireDevice() || !a.requireSD() {
		return
	}

	missing := a.Compare()
	if len(missing) == 0 {
		return
	}

	fmt.Fprintln(a.out, "\nWhich ROMs would you like to upload?")
	choices := a.prompt.MultiChoice(len(missing), "Select ROMs")
	if len(choices) == 0 {
		fmt.Fprintln(a.out, "Upload cancelled.")
		return
	}

	fmt.Fprintln(a.out, "\nUpload destination on SD card:")
	fmt.Fprintln(a.out, "  [1] Root directory (/)")
	fmt.Fprintln(a.out, "  [2] Custom path")
	destChoice := a.prompt.Choice(2, "Choose destination")
	if destChoice == 0 {
		fmt.Fprintln(a.out, "Upload cancelled.")
		return
	}

	destPath := "/"
	if destChoice == 2 {
		path, ok := a.prompt.ReadLine("Enter SD card path (e.g. /roms): ")
		if !ok {
			fmt.Fprintln(a.out, "Upload cancelled.")
			return
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		destPath = path
	}

	// Continue past individual failures; report the batch total at the end.
	fmt.Fprintln(a.out)
	succeeded := 0
	for _, idx := range choices {
		if a.uploadRom(missing[idx-1], destPath) {
			succeeded++
		}
	}
	fmt.Fprintf(a.out, "\nDone! Uploaded %d/%d ROM(s).\n", succeeded, len(choices))
}

// QuickUpload uploads straight from the local list to the card root, no
// compare step.
func (a *App) QuickUpload() {
	a.header("Quick Upload")

	if !a.requireDevice() || !a.requireSD() {
		return
	}

	local, err := inventory.ScanLocal(a.cfg.RomsDir)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to scan local ROMs: %v\n", err)
		return
	}
	if len(local) == 0 {
		fmt.Fprintln(a.out, "No local ROMs found.")
		return
	}

	fmt.Fprintln(a.out, "Select ROM(s) to upload:")
	for i, rom := range local {
		fmt.Fprintf(a.out, "  [%2d] %s (%s)\n", i+1, rom.Name, formatSize(rom.Size))
	}

	choices := a.prompt.MultiChoice(len(local), "Select ROMs")
	if len(choices) == 0 {
		fmt.Fprintln(a.out, "Upload cancelled.")
		return
	}

	fmt.Fprintln(a.out)
	for _, idx := range choices {
		a.uploadRom(local[idx-1], "/")
	}
}

// uploadRom uploads one local ROM under its own name below sdDir.
func (a *App) uploadRom(rom inventory.LocalRom, sdDir string) bool {
	dest := strings.TrimRight(sdDir, "/") + "/" + rom.Name
	fmt.Fprintf(a.out, "Uploading: %s\n", rom.Name)
	fmt.Fprintf(a.out, "      To: %s\n", dest)

	if err := a.cart.Upload(rom.Path, dest); err != nil {
		fmt.Fprintf(a.out, "  Upload failed: %v\n", err)
		return false
	}
	fmt.Fprintln(a.out, "  Upload complete!")
	return true
}
