package http

import (
	"encoding/xml"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weather-bot/internal/gateway"
)

const signatureHeader = "X-Twilio-Signature"

// twimlResponse is the minimal messaging-response envelope returned inline
// to the provider. xml.Marshal escapes the message body.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

func (r *routes) handleWebhookVerify(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token != "" && token == r.cfg.WebhookVerifyToken {
		r.l.Info("webhook verified successfully")
		return c.SendString(challenge)
	}

	r.l.Warning("webhook verification failed")
	return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{Error: "Verification failed"})
}

func (r *routes) handleWebhook(c *fiber.Ctx) error {
	form := map[string]string{}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		form[string(key)] = string(value)
	})

	requestURL := c.BaseURL() + c.OriginalURL()
	if !gateway.ValidateSignature(r.cfg.TwilioAuthToken, requestURL, form, c.Get(signatureHeader)) {
		r.l.Warning("webhook signature mismatch", map[string]any{"url": requestURL})
		return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{Error: "Signature validation failed"})
	}

	from := form["From"]
	body := form["Body"]

	r.l.Info("webhook received", map[string]any{"from": from, "body_length": len(body)})

	senderID := strings.TrimPrefix(from, "whatsapp:")
	reply := r.dispatcher.Dispatch(c.Context(), senderID, body)

	r.l.Info("webhook processed", map[string]any{"from": from, "response_length": len(reply)})

	payload, err := xml.Marshal(twimlResponse{Message: reply})
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, "application/xml")
	return c.SendString(xml.Header + string(payload))
}
