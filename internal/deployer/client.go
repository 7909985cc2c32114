package deployer

import (
	"fmt"
	"strings"

	"github.com/TheLeggett/Summer-Breeze/internal/util"
	"github.com/rs/zerolog"
)

// foundDevicesMarker is printed by `sc64deployer list` when at least one
// device is attached.
const foundDevicesMarker = "Found devices:"

// Client exposes the deployer subcommands this tool uses as typed calls.
// It holds no state beyond the runner; every method is a single synchronous
// invocation.
type Client struct {
	run Runner
	log zerolog.Logger
}

// NewClient wraps a runner in the typed deployer interface.
func NewClient(run Runner) *Client {
	return &Client{
		run: run,
		log: util.GetLogger("client"),
	}
}

// DeviceConnected probes for an attached SC64.
func (c *Client) DeviceConnected() bool {
	res := c.run.Run("list")
	return res.OK() && strings.Contains(res.Stdout, foundDevicesMarker)
}

// SDAccessible probes whether the SD card can actually be listed. The card
// is only reachable while the console is powered on, so this can fail with
// the device itself connected; any pipe-delimited content in the listing
// means the card is working.
func (c *Client) SDAccessible() bool {
	res := c.run.Run("sd", "ls")
	return res.OK() && strings.Contains(res.Stdout, "|")
}

// List returns the entries at the given SD card path. The root is listed by
// omitting the path argument, which is how the deployer expects it. A failed
// invocation yields an empty listing, consistent with the best-effort
// listing protocol.
func (c *Client) List(path string) []Entry {
	var res Result
	if path == "" || path == "/" {
		res = c.run.Run("sd", "ls")
	} else {
		res = c.run.Run("sd", "ls", path)
	}
	if !res.OK() {
		c.log.Debug().Str("path", path).Int("code", res.Code).Msg("listing failed")
		return nil
	}
	return ParseListing(res.Stdout)
}

// Upload copies a local file onto the SD card at sdPath, overwriting any
// existing file.
func (c *Client) Upload(localPath, sdPath string) error {
	res := c.run.Run("sd", "upload", localPath, sdPath)
	if !res.OK() {
		return fmt.Errorf("sc64deployer: %s", failureDetail(res))
	}
	return nil
}

// Download copies a file from the SD card at sdPath to localPath.
func (c *Client) Download(sdPath, localPath string) error {
	res := c.run.Run("sd", "download", sdPath, localPath)
	if !res.OK() {
		return fmt.Errorf("sc64deployer: %s", failureDetail(res))
	}
	return nil
}

// Remove deletes the file at sdPath from the SD card.
func (c *Client) Remove(sdPath string) error {
	res := c.run.Run("sd", "rm", sdPath)
	if !res.OK() {
		return fmt.Errorf("sc64deployer: %s", failureDetail(res))
	}
	return nil
}

// Exists reports whether sdPath exists on the SD card.
func (c *Client) Exists(sdPath string) bool {
	return c.run.Run("sd", "stat", sdPath).OK()
}

// Info returns the raw device info text.
func (c *Client) Info() (string, error) {
	res := c.run.Run("info")
	if !res.OK() {
		return "", fmt.Errorf("sc64deployer: %s", failureDetail(res))
	}
	return res.Stdout, nil
}

// SyncRTC sets the device real-time clock from the host clock.
func (c *Client) SyncRTC() error {
	res := c.run.Run("set", "rtc")
	if !res.OK() {
		return fmt.Errorf("sc64deployer: %s", failureDetail(res))
	}
	return nil
}

func failureDetail(res Result) string {
	detail := strings.TrimSpace(res.Stderr)
	if detail == "" {
		detail = fmt.Sprintf("exit code %d", res.Code)
	}
	return detail
}
