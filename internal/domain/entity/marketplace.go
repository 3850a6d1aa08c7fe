package entity

import "time"

// Review is a customer review of a product.
type Review struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Rating    int       `json:"rating"` // 1 to 5.
	Comment   string    `json:"comment,omitempty"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// QuoteStatus is the backend status of a quote request.
type QuoteStatus string

const (
	QuoteStatusRequested QuoteStatus = "requested"
	QuoteStatusAnswered  QuoteStatus = "answered"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusRejected  QuoteStatus = "rejected"
)

// Quote is a request for a custom price, e.g. large volumes.
type Quote struct {
	ID              int64       `json:"id"`
	Status          QuoteStatus `json:"status"`
	EstablishmentID int64       `json:"establishmentId"`
	Message         string      `json:"message"`
	Items           []OrderLine `json:"items"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// QuoteRequest is what the storefront submits to ask for a quote.
type QuoteRequest struct {
	EstablishmentID int64
	Message         string
	Items           []OrderLine
}

// ChatConversation is a thread between the user and a seller, influencer or agent.
type ChatConversation struct {
	ID          int64     `json:"id"`
	Participant string    `json:"participant"`
	LastMessage string    `json:"lastMessage,omitempty"`
	UnreadCount int       `json:"unreadCount"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ChatMessage is one message of a conversation.
type ChatMessage struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversationId"`
	SenderID       int64     `json:"senderId"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sentAt"`
}
