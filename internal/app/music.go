package app

import (
	"fmt"

	"github.com/TheLeggett/Summer-Breeze/internal/inventory"
)

// musicAction is one selectable option in the music menu: either setting a
// specific local file or removing the current one.
type musicAction struct {
	label string
	file  inventory.LocalRom // zero value for remove
	set   bool
}

// Music manages the background music file on the cart. The option list is
// computed from current state: one "set" per local mp3, plus "remove" only
// while music exists on the card.
func (a *App) Music() {
	a.header("Menu Background Music")

	fmt.Fprintln(a.out, "NOTE: This feature only works with a customized version of")
	fmt.Fprintln(a.out, "      SC64 menu by TheLeggett (as of Dec 22, 2025).")
	fmt.Fprintln(a.out)

	if !a.requireDevice() || !a.requireSD() {
		return
	}

	hasMusic := a.cart.Exists(a.cfg.SDMusicPath)
	if hasMusic {
		fmt.Fprintf(a.out, "Current status: Background music IS set (%s exists)\n", a.cfg.SDMusicPath)
	} else {
		fmt.Fprintf(a.out, "Current status: No background music (no %s)\n", a.cfg.SDMusicPath)
	}

	if err := a.ensureDir(a.cfg.MusicDir); err != nil {
		fmt.Fprintf(a.out, "Failed to create music directory: %v\n", err)
		return
	}
	music, err := inventory.ScanMusic(a.cfg.MusicDir)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to scan music files: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "\nAvailable MP3s in %s/:\n", a.cfg.MusicDir)
	if len(music) == 0 {
		fmt.Fprintln(a.out, "  (no MP3 files found)")
	} else {
		for i, mp3 := range music {
			fmt.Fprintf(a.out, "  [%2d] %s (%s)\n", i+1, mp3.Name, formatSize(mp3.Size))
		}
	}

	var actions []musicAction
	for _, mp3 := range music {
		actions = append(actions, musicAction{
			label: fmt.Sprintf("Set music to: %s", mp3.Name),
			file:  mp3,
			set:   true,
		})
	}
	if hasMusic {
		actions = append(actions, musicAction{label: "Remove background music"})
	}

	if len(actions) == 0 {
		fmt.Fprintln(a.out, "\nNo actions available. Add MP3 files to the music directory.")
		return
	}

	fmt.Fprintln(a.out, "\nOptions:")
	for i, act := range actions {
		fmt.Fprintf(a.out, "  [%d] %s\n", i+1, act.label)
	}

	fmt.Fprintln(a.out)
	choice := a.prompt.Choice(len(actions), "Select option")
	if choice == 0 {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	action := actions[choice-1]

	if !action.set {
		a.removeMusic()
		return
	}
	if hasMusic {
		fmt.Fprintln(a.out, "\nReplacing existing background music...")
	}
	fmt.Fprintln(a.out)
	a.setMusic(action.file)
}

func (a *App) setMusic(mp3 inventory.LocalRom) {
	fmt.Fprintln(a.out, "Uploading background music to cart...")
	fmt.Fprintf(a.out, "  From: %s\n", mp3.Name)
	fmt.Fprintf(a.out, "    To: %s\n", a.cfg.SDMusicPath)

	if err := a.cart.Upload(mp3.Path, a.cfg.SDMusicPath); err != nil {
		fmt.Fprintf(a.out, "  Upload failed: %v\n", err)
		fmt.Fprintln(a.out, "\nFailed to set background music.")
		return
	}
	fmt.Fprintln(a.out, "  Upload complete!")
	fmt.Fprintln(a.out, "\nBackground music set!")
}

func (a *App) removeMusic() {
	fmt.Fprintln(a.out, "Removing background music from cart...")
	fmt.Fprintf(a.out, "  Deleting: %s\n", a.cfg.SDMusicPath)

	if err := a.cart.Remove(a.cfg.SDMusicPath); err != nil {
		fmt.Fprintf(a.out, "  Failed to remove: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "  Removed!")
	fmt.Fprintln(a.out, "\nBackground music removed!")
}
