package models

// Placeholder is rendered in place of any field the backend left out
const Placeholder = "—"

// Customer is a guest record as returned by GET /admin/customers
type Customer struct {
	ID               ID      `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            *string `json:"phone,omitempty"`
	NewsletterSignup *bool   `json:"newsletter_signup,omitempty"`
	CreatedAt        *string `json:"created_at,omitempty"`
}

// NameText returns the customer name or the placeholder
func (c *Customer) NameText() string {
	if c == nil {
		return Placeholder
	}
	return orPlaceholder(c.Name)
}

// EmailText returns the customer email or the placeholder
func (c *Customer) EmailText() string {
	if c == nil {
		return Placeholder
	}
	return orPlaceholder(c.Email)
}

// PhoneText returns the customer phone or the placeholder
func (c *Customer) PhoneText() string {
	if c == nil || c.Phone == nil {
		return Placeholder
	}
	return orPlaceholder(*c.Phone)
}

// NewsletterText renders the signup flag as Yes/No, or the placeholder
func (c *Customer) NewsletterText() string {
	if c == nil || c.NewsletterSignup == nil {
		return Placeholder
	}
	if *c.NewsletterSignup {
		return "Yes"
	}
	return "No"
}

// CreatedAtValue returns the raw created_at token, empty when absent
func (c *Customer) CreatedAtValue() string {
	if c == nil || c.CreatedAt == nil {
		return ""
	}
	return *c.CreatedAt
}

// NewsletterRequest is the request body for POST /newsletter
type NewsletterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SubscribeResponse is the acknowledgement returned by POST /newsletter
type SubscribeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
