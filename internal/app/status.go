package app

import (
	"fmt"
	"strings"
	"time"
)

// Status shows device and SD card status.
func (a *App) Status() {
	a.header("SC64 Status")

	if !a.cart.DeviceConnected() {
		fmt.Fprintln(a.out, "Device: NOT CONNECTED")
		fmt.Fprintln(a.out, "\nMake sure your SummerCart64 is plugged in via USB.")
		return
	}
	fmt.Fprintln(a.out, "Device: CONNECTED")

	if info, err := a.cart.Info(); err == nil {
		for _, line := range strings.Split(info, "\n") {
			if strings.Contains(line, "Firmware version") || strings.Contains(line, "Boot mode") {
				fmt.Fprintf(a.out, "  %s\n", strings.TrimSpace(line))
			}
		}
	} else {
		a.log.Debug().Err(err).Msg("device info unavailable")
	}

	if a.cart.SDAccessible() {
		fmt.Fprintln(a.out, "  SD card:         Accessible")
	} else {
		fmt.Fprintln(a.out, "  SD card:         Not accessible")
		fmt.Fprintln(a.out, "\n  Note: SD card access requires the N64 to be powered ON")
	}
}

// SyncRTC sets the device real-time clock from the host clock.
func (a *App) SyncRTC() {
	a.header("Sync RTC Clock")

	if !a.requireDevice() {
		return
	}

	fmt.Fprintln(a.out, "Synchronizing SC64 clock with system time...")
	if err := a.cart.SyncRTC(); err != nil {
		fmt.Fprintln(a.out, "Failed to sync RTC clock.")
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "RTC synchronized to: %s\n", time.Now().Format("2006-01-02 15:04:05"))
}
