// internal/httpapi/router.go
package httpapi

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"github.com/nexuspay/payments-service/internal/payment"
)

// ReceiptUnavailable is returned by the success page when no charge has been
// correlated to the order yet.
const ReceiptUnavailable = "Receipt URL not available"

type Router struct {
	App     *fiber.App
	service *payment.PaymentService
}

func NewRouter(service *payment.PaymentService) *Router {
	app := fiber.New(fiber.Config{
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
	})
	return &Router{App: app, service: service}
}

func (r *Router) RegisterRoutes() {
	r.App.Get("/health", r.HealthCheck)

	payments := r.App.Group("/payments")
	payments.Post("/create-payment-session", r.CreatePaymentSession)
	payments.Get("/success", r.Success)
	payments.Get("/cancel", r.Cancel)
	payments.Post("/webhook", r.Webhook)
}

func (r *Router) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Service is running",
	})
}

func (r *Router) CreatePaymentSession(c *fiber.Ctx) error {
	var req payment.SessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := r.service.CreatePaymentSession(c.Context(), req)
	if err != nil {
		if payment.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(result)
}

func (r *Router) Success(c *fiber.Ctx) error {
	orderID := c.Query("orderId")
	receiptURL, ok := r.service.ReceiptURL(c.Context(), orderID)
	if !ok {
		receiptURL = ReceiptUnavailable
	}
	return c.JSON(fiber.Map{
		"ok":         true,
		"message":    "Payment successful",
		"receiptUrl": receiptURL,
	})
}

func (r *Router) Cancel(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "Payment canceled",
	})
}

// Webhook hands the raw body to the service. c.Body() is the unparsed byte
// sequence Stripe signed; it must reach the verifier untouched.
func (r *Router) Webhook(c *fiber.Ctx) error {
	sig := c.Get("Stripe-Signature")
	headers := map[string]string{"Stripe-Signature": sig}

	if err := r.service.HandleWebhook(c.Context(), c.Body(), headers); err != nil {
		return c.Status(fiber.StatusBadRequest).
			SendString(fmt.Sprintf("Webhook Error: %s", err.Error()))
	}

	// 200 acknowledges receipt and verification; business outcomes are not
	// surfaced here. Non-2xx would make Stripe redeliver.
	return c.JSON(fiber.Map{"sig": sig})
}
