package view

import (
	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"authforms/internal/constants"
	"authforms/internal/forms"
)

// RenderComponent writes component as the HTML response body.
func RenderComponent(c *fiber.Ctx, status int, component templ.Component) error {
	c.Status(status).Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Context(), c)
}

// Renderer renders components with the session flash, if any, exposed to the
// layout as a toast.
type Renderer struct {
	SessionStore *session.Store
}

func (r *Renderer) RenderComponent(c *fiber.Ctx, status int, component templ.Component) error {
	if c.Locals(constants.FlashContextKey) == nil {
		flash, err := r.popFlash(c)
		if err != nil {
			return err
		}
		if flash != nil {
			c.Locals(constants.FlashContextKey, flash)
		}
	}

	return RenderComponent(c, status, component)
}

// Notify shows n on the page rendered for this request.
func (r *Renderer) Notify(c *fiber.Ctx, n *forms.Notification) {
	if n != nil {
		c.Locals(constants.FlashContextKey, n)
	}
}

// Flash stores n in the session so it survives a redirect.
func (r *Renderer) Flash(c *fiber.Ctx, n forms.Notification) error {
	sess, err := r.SessionStore.Get(c)
	if err != nil {
		return err
	}

	sess.Set(constants.FlashTitleKey, n.Title)
	sess.Set(constants.FlashDescriptionKey, n.Description)
	sess.Set(constants.FlashVariantKey, string(n.Variant))
	return sess.Save()
}

func (r *Renderer) popFlash(c *fiber.Ctx) (*forms.Notification, error) {
	sess, err := r.SessionStore.Get(c)
	if err != nil {
		return nil, err
	}

	title, ok := sess.Get(constants.FlashTitleKey).(string)
	if !ok {
		return nil, nil
	}
	description, _ := sess.Get(constants.FlashDescriptionKey).(string)
	variant, _ := sess.Get(constants.FlashVariantKey).(string)

	sess.Delete(constants.FlashTitleKey)
	sess.Delete(constants.FlashDescriptionKey)
	sess.Delete(constants.FlashVariantKey)
	if err := sess.Save(); err != nil {
		return nil, err
	}

	return &forms.Notification{
		Title:       title,
		Description: description,
		Variant:     forms.Variant(variant),
	}, nil
}
