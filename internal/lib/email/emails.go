package email

import "context"

// SendWelcomeEmail sends a welcome email to a new user.
func (c *Client) SendWelcomeEmail(ctx context.Context, to, username string) error {
	data := map[string]string{
		"Username": username,
	}

	return c.SendEmail(ctx, to, "Welcome to the lesson server!", TemplateWelcome, data)
}
