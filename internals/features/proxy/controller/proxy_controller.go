package controller

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ProxyController meneruskan request apa adanya ke deployment remote dan
// mengecho status + body JSON-nya. Transport gagal → 500 dengan body generic.
type ProxyController struct {
	TargetBaseURL string
	Client        *http.Client
}

func NewProxyController(targetBaseURL string) *ProxyController {
	return &ProxyController{
		TargetBaseURL: targetBaseURL,
		Client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

var allowedMethods = map[string]struct{}{
	fiber.MethodGet:    {},
	fiber.MethodPost:   {},
	fiber.MethodPut:    {},
	fiber.MethodDelete: {},
}

// Forward ALL /api/proxy/*
func (ctrl *ProxyController) Forward(c *fiber.Ctx) error {
	method := c.Method()
	if _, ok := allowedMethods[method]; !ok {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"error": "Method not allowed",
		})
	}

	target := ctrl.TargetBaseURL + "/" + c.Params("*")
	if qs := string(c.Request().URI().QueryString()); qs != "" {
		target += "?" + qs
	}

	var body io.Reader
	if len(c.Body()) > 0 {
		body = bytes.NewReader(c.Body())
	}
	req, err := http.NewRequestWithContext(c.UserContext(), method, target, body)
	if err != nil {
		log.Println("[ERROR] Proxy build request:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Proxy request failed",
		})
	}
	if ct := c.Get("Content-Type"); ct != "" {
		req.Header.Set("Content-Type", ct)
	}
	if auth := c.Get("Authorization"); auth != "" {
		req.Header.Set("Authorization", auth)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := ctrl.Client.Do(req)
	if err != nil {
		log.Println("[ERROR] Proxy forward:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Proxy request failed",
		})
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("[ERROR] Proxy read body:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Proxy request failed",
		})
	}

	c.Set("Content-Type", resp.Header.Get("Content-Type"))
	return c.Status(resp.StatusCode).Send(raw)
}
