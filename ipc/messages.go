package ipc

// Message types understood by the order service. Clients must use the same
// strings; there is no negotiation.
const (
	TypeHello        = "hello"
	TypeAck          = "ack"
	TypeOrders       = "orders"
	TypeOrdersResult = "orders_result"
)

type HelloMessage struct {
	Player string `json:"player"`
	Power  string `json:"power"` // great power the player controls
}

type AckMessage struct {
	Status  string `json:"status"`
	Session string `json:"session,omitempty"`
}

// OrdersMessage submits one or more order lines for a turn. Each line is a
// single order, already stripped of player/turn metadata.
type OrdersMessage struct {
	Turn  string   `json:"turn"` // e.g. "S1901M"
	Lines []string `json:"lines"`
}

// ParsedOrder is the wire form of one successfully parsed order. Province
// names are canonical table entries, resolved from whatever the player
// typed. Source and Dest carry the supported or convoyed move for support
// and convoy orders.
type ParsedOrder struct {
	Kind       string `json:"kind"` // hold | move | support | convoy
	Unit       string `json:"unit,omitempty"`
	Province   string `json:"province"`
	Source     string `json:"source,omitempty"`
	Dest       string `json:"dest,omitempty"`
	TargetUnit string `json:"targetUnit,omitempty"`
}

// OrderResult reports the outcome for one submitted line: either a parsed
// order or the failure text, never both.
type OrderResult struct {
	Line  string       `json:"line"`
	Order *ParsedOrder `json:"order,omitempty"`
	Error string       `json:"error,omitempty"`
}

type OrdersResultMessage struct {
	Turn    string        `json:"turn"`
	Session string        `json:"session"`
	Results []OrderResult `json:"results"`
}
