package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/TheLeggett/Summer-Breeze/internal/inventory"
)

// UpdateMenu replaces the menu file on the cart with a locally staged
// version. The current cart menu is always downloaded first; a failed
// backup aborts the replacement so the existing menu is never lost to a
// broken upload.
func (a *App) UpdateMenu() {
	a.header("Update SC64 Menu")

	if !a.requireDevice() || !a.requireSD() {
		return
	}

	if err := a.ensureDir(a.cfg.MenuDir); err != nil {
		fmt.Fprintf(a.out, "Failed to create menu directory: %v\n", err)
		return
	}

	versions, err := inventory.ScanMenuVersions(a.cfg.MenuDir)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to scan menu versions: %v\n", err)
		return
	}
	if len(versions) == 0 {
		fmt.Fprintf(a.out, "No menu files found in: %s\n", a.cfg.MenuDir)
		fmt.Fprintln(a.out, "\nAdd .z64, .n64, or .v64 menu files to this directory.")
		return
	}

	labels := make([]string, len(versions))
	for i, v := range versions {
		labels[i] = fmt.Sprintf("%s (%s)", v.Name, formatSize(v.Size))
	}
	title := fmt.Sprintf("Available menu versions in %s/", filepath.Base(a.cfg.MenuDir))
	selected := a.prompt.PagedChoice(title, labels, a.cfg.PageSize)
	if selected < 0 {
		fmt.Fprintln(a.out, "Update cancelled.")
		return
	}
	menu := versions[selected]

	fmt.Fprintf(a.out, "\nYou selected: %s\n", menu.Name)
	fmt.Fprintln(a.out, "This will:")
	fmt.Fprintln(a.out, "  1. Backup the current menu from cart (with timestamp)")
	fmt.Fprintln(a.out, "  2. Upload the selected menu to replace it")
	if !a.prompt.Confirm("\nProceed?") {
		fmt.Fprintln(a.out, "Update cancelled.")
		return
	}

	fmt.Fprintln(a.out)
	if !a.backupMenu() {
		fmt.Fprintln(a.out, "\nBackup failed. Aborting update to be safe.")
		return
	}

	fmt.Fprintln(a.out)
	if a.uploadMenu(menu.Path, menu.Name) {
		fmt.Fprintln(a.out, "\nMenu update complete!")
	} else {
		fmt.Fprintf(a.out, "\nMenu upload failed. Your backup is saved in %s/\n",
			filepath.Base(a.cfg.MenuDir))
	}
}

// backupMenu downloads the current cart menu into the menu directory under a
// timestamped name.
func (a *App) backupMenu() bool {
	backupName := fmt.Sprintf("sc64menu_backup_%s.n64", time.Now().Format("20060102_150405"))
	backupPath := filepath.Join(a.cfg.MenuDir, backupName)

	fmt.Fprintln(a.out, "Backing up current menu from cart...")
	fmt.Fprintf(a.out, "  From: %s\n", a.cfg.SDMenuPath)
	fmt.Fprintf(a.out, "    To: %s\n", backupPath)

	if err := a.cart.Download(a.cfg.SDMenuPath, backupPath); err != nil {
		fmt.Fprintf(a.out, "  Backup failed: %v\n", err)
		return false
	}
	fmt.Fprintln(a.out, "  Backup complete!")
	return true
}

// uploadMenu replaces the cart menu with the given local file.
func (a *App) uploadMenu(localPath, name string) bool {
	fmt.Fprintln(a.out, "Uploading new menu to cart...")
	fmt.Fprintf(a.out, "  From: %s\n", name)
	fmt.Fprintf(a.out, "    To: %s\n", a.cfg.SDMenuPath)

	if err := a.cart.Upload(localPath, a.cfg.SDMenuPath); err != nil {
		fmt.Fprintf(a.out, "  Upload failed: %v\n", err)
		return false
	}
	fmt.Fprintln(a.out, "  Upload complete!")
	return true
}
