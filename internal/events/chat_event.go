package events

// Event kinds recorded by the chat endpoints.
const (
	KindSearch   = "search"
	KindGeneric  = "generic"
	KindPurchase = "purchase"
)

// ChatEvent is one interaction with the bot, published to the redis
// stream and aggregated by the analytics worker.
type ChatEvent struct {
	EventID    string
	UserID     string
	Kind       string
	Term       string
	ProductID  int64
	OrderID    string
	Timestamp  int64
	IP         string
	UserAgent  string
	Browser    string
	OS         string
	DeviceType string
}
