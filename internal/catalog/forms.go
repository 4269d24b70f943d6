package catalog

import "time"

// ContactSubmission is a contact-form message persisted to the store.
// CreatedAt and Status are assigned at write time; nothing in this
// system reads submissions back.
type ContactSubmission struct {
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	Status    string    `bson:"status" json:"status"`
}

// NewsletterSubscription is an email captured from the newsletter form.
type NewsletterSubscription struct {
	Email        string    `bson:"email" json:"email"`
	SubscribedAt time.Time `bson:"subscribedAt" json:"subscribedAt"`
}
