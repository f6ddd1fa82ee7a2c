package fingerprintController

import (
	"bims/middleware"
	"bims/utils"
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// bridge is set once at startup from main.
var bridge *utils.ScannerBridge

func SetBridge(b *utils.ScannerBridge) {
	bridge = b
}

// commandTimeout bounds how long a handler waits for the device to answer.
// Captures involve a human placing a finger, so this is generous.
const commandTimeout = 30 * time.Second

func runCommand(c *fiber.Ctx, command string) error {
	if bridge == nil {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Fingerprint scanner is not configured!", nil)
	}

	ctx, cancel := context.WithTimeout(c.Context(), commandTimeout)
	defer cancel()

	frame, err := bridge.Command(ctx, command)
	if err != nil {
		if errors.Is(err, utils.ErrScannerUnavailable) {
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Fingerprint scanner is offline!", nil)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return middleware.JsonResponse(c, fiber.StatusGatewayTimeout, false, "Fingerprint scanner did not respond in time!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Fingerprint command failed!", nil)
	}

	c.Set("Content-Type", "application/json")
	return c.Status(fiber.StatusOK).Send(frame)
}

// Capture asks the device to scan and return a fingerprint template.
func Capture(c *fiber.Ctx) error {
	return runCommand(c, "capture")
}

// Identify asks the device to match the presented finger against enrollments.
func Identify(c *fiber.Ctx) error {
	return runCommand(c, "identify")
}

// Status reports the device link state for the UI indicator.
func Status(c *fiber.Ctx) error {
	state := "disconnected"
	if bridge != nil {
		state = bridge.State().String()
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scanner status.", fiber.Map{
		"state": state,
	})
}
