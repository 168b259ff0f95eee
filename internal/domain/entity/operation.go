package entity

import "time"

// ModuleCall names a Move function invocation.
type ModuleCall struct {
	Package       string
	Module        string
	Function      string
	TypeArguments []string
	Arguments     []any
	GasBudget     uint64
}

// Target renders the call as package::module::function.
func (c ModuleCall) Target() string {
	return c.Package + "::" + c.Module + "::" + c.Function
}

// Event is a single event emitted by an executed operation.
type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"parsedJson"`
}

// OperationResult is the typed outcome of Invoke.
type OperationResult struct {
	Digest string  `json:"digest"`
	Events []Event `json:"events"`
}

// FirstEventWithID returns the "id" field of the first event whose payload carries one.
// Nested UID payloads ({"id": {"id": "0x.."}}) are unwrapped.
func FirstEventWithID(events []Event) (AssetHandle, bool) {
	for _, ev := range events {
		if ev.Payload == nil {
			continue
		}
		raw, ok := ev.Payload["id"]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case string:
			if v != "" {
				return AssetHandle(v), true
			}
		case map[string]any:
			if inner, ok := v["id"].(string); ok && inner != "" {
				return AssetHandle(inner), true
			}
		}
	}
	return "", false
}

// SettleKind selects which configured settle delay applies after an operation.
type SettleKind int

const (
	SettleMint SettleKind = iota
	SettlePurchase
	SettleAttach
)

// String implements fmt.Stringer.
func (k SettleKind) String() string {
	switch k {
	case SettleMint:
		return "mint"
	case SettlePurchase:
		return "purchase"
	case SettleAttach:
		return "attach"
	default:
		return "unknown"
	}
}

// SettleDelays holds the fixed waits applied after state-changing operations.
type SettleDelays struct {
	Mint     time.Duration
	Purchase time.Duration
	Attach   time.Duration
}

// For returns the delay configured for kind.
func (d SettleDelays) For(kind SettleKind) time.Duration {
	switch kind {
	case SettleMint:
		return d.Mint
	case SettlePurchase:
		return d.Purchase
	case SettleAttach:
		return d.Attach
	default:
		return 0
	}
}
