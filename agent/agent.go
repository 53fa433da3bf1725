package agent

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/nstehr/despatch/board"
	"github.com/nstehr/despatch/ipc"
	"github.com/nstehr/despatch/order"
)

// Agent owns order intake for a single player session. It parses submitted
// lines, resolves their province names against the board, and keeps the
// accepted orders per turn until the adjudicator collects them.
type Agent struct {
	Conn   *ipc.Connection
	Player string
	Power  string

	mu       sync.Mutex
	accepted map[string][]order.Order // turn → accepted orders
}

func New(conn *ipc.Connection) *Agent {
	return &Agent{
		Conn:     conn,
		accepted: make(map[string][]order.Order),
	}
}

// HandleHello completes the handshake so the client knows the service is
// ready, echoing the session ID assigned at accept time.
func (a *Agent) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := json.Unmarshal(env.Data, &hello); err != nil {
		return nil, fmt.Errorf("unmarshal hello: %w", err)
	}

	a.Player = hello.Player
	a.Power = hello.Power
	if a.Conn != nil {
		a.Conn.Player = hello.Player
	}
	slog.Info("player identified", "player", a.Player, "power", a.Power)

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok", Session: a.session()})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

// HandleOrders parses every submitted line and replies with a per-line
// result. A line is rejected only when no order form matches it or a place
// name it uses is not on the board.
func (a *Agent) HandleOrders(env ipc.Envelope) (*ipc.Envelope, error) {
	var msg ipc.OrdersMessage
	if err := json.Unmarshal(env.Data, &msg); err != nil {
		return nil, fmt.Errorf("unmarshal orders: %w", err)
	}

	results := make([]ipc.OrderResult, 0, len(msg.Lines))
	var parsed []order.Order
	failures := 0
	for _, line := range msg.Lines {
		o, wire, err := parseLine(line)
		if err != nil {
			failures++
			results = append(results, ipc.OrderResult{Line: line, Error: err.Error()})
			continue
		}
		parsed = append(parsed, o)
		results = append(results, ipc.OrderResult{Line: line, Order: wire})
	}

	a.mu.Lock()
	a.accepted[msg.Turn] = append(a.accepted[msg.Turn], parsed...)
	a.mu.Unlock()

	slog.Info("orders processed",
		"player", a.Player,
		"turn", msg.Turn,
		"submitted", len(msg.Lines),
		"accepted", len(parsed),
		"rejected", failures,
	)

	resp, err := ipc.NewEnvelope(ipc.TypeOrdersResult, ipc.OrdersResultMessage{
		Turn:    msg.Turn,
		Session: a.session(),
		Results: results,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Accepted returns the orders accepted so far for a turn.
func (a *Agent) Accepted(turn string) []order.Order {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]order.Order(nil), a.accepted[turn]...)
}

func (a *Agent) session() string {
	if a.Conn == nil {
		return ""
	}
	return a.Conn.Session
}

// parseLine runs the grammar rules in priority order, keeping the first
// interpretation whose province names all resolve. The grammar alone is
// greedy about multi-word places ("brest s a paris" is a syntactically fine
// hold target), so resolution acts as the tie-break between rule forms.
func parseLine(line string) (order.Order, *ipc.ParsedOrder, error) {
	text := strings.ToLower(strings.TrimSpace(line))

	var firstErr error
	if h, err := order.ParseHold(text); err == nil {
		if wire, err := resolveHold(h); err == nil {
			return h, wire, nil
		} else if firstErr == nil {
			firstErr = err
		}
	}
	if m, err := order.ParseMove(text); err == nil {
		if wire, err := resolveMove(m); err == nil {
			return m, wire, nil
		} else if firstErr == nil {
			firstErr = err
		}
	}
	if s, err := order.ParseSupport(text); err == nil {
		if wire, err := resolveSupport(s); err == nil {
			return s, wire, nil
		} else if firstErr == nil {
			firstErr = err
		}
	}
	if c, err := order.ParseConvoy(text); err == nil {
		if wire, err := resolveConvoy(c); err == nil {
			return c, wire, nil
		} else if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, nil, firstErr
	}
	return nil, nil, fmt.Errorf("unparseable order %q", line)
}

func resolveName(name string) (string, error) {
	p, ok := board.Resolve(name)
	if !ok {
		return "", fmt.Errorf("unknown province %q", name)
	}
	return p.Name, nil
}

func unitString(u order.Unit) string {
	if u == order.NoUnit {
		return ""
	}
	return u.String()
}

func resolveHold(h order.Hold) (*ipc.ParsedOrder, error) {
	place, err := resolveName(h.Place)
	if err != nil {
		return nil, err
	}
	return &ipc.ParsedOrder{Kind: "hold", Unit: unitString(h.Unit), Province: place}, nil
}

func resolveMove(m order.Move) (*ipc.ParsedOrder, error) {
	source, err := resolveName(m.Source)
	if err != nil {
		return nil, err
	}
	dest, err := resolveName(m.Dest)
	if err != nil {
		return nil, err
	}
	return &ipc.ParsedOrder{Kind: "move", Unit: unitString(m.Unit), Province: source, Source: source, Dest: dest}, nil
}

func resolveSupport(s order.Support) (*ipc.ParsedOrder, error) {
	place, err := resolveName(s.Place)
	if err != nil {
		return nil, err
	}
	target, err := resolveMove(s.Target)
	if err != nil {
		return nil, err
	}
	return &ipc.ParsedOrder{
		Kind:       "support",
		Unit:       unitString(s.Unit),
		Province:   place,
		Source:     target.Source,
		Dest:       target.Dest,
		TargetUnit: unitString(s.Target.Unit),
	}, nil
}

func resolveConvoy(c order.Convoy) (*ipc.ParsedOrder, error) {
	place, err := resolveName(c.Place)
	if err != nil {
		return nil, err
	}
	target, err := resolveMove(c.Target)
	if err != nil {
		return nil, err
	}
	return &ipc.ParsedOrder{
		Kind:       "convoy",
		Unit:       unitString(c.Unit),
		Province:   place,
		Source:     target.Source,
		Dest:       target.Dest,
		TargetUnit: unitString(c.Target.Unit),
	}, nil
}
