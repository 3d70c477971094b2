package db

import "context"

// Checker runs the administrative health check against a database server.
// A Checker is single use: Connect, Check once, Disconnect.
type Checker interface {
	Connect(ctx context.Context) error
	Check(ctx context.Context) (*HelloResult, error)
	Disconnect(ctx context.Context) error
}

// HelloResult is the subset of the isMaster reply worth reporting
type HelloResult struct {
	IsMaster          bool    `bson:"ismaster" json:"ismaster"`
	IsWritablePrimary bool    `bson:"isWritablePrimary" json:"is_writable_primary"`
	SetName           string  `bson:"setName,omitempty" json:"set_name,omitempty"`
	Msg               string  `bson:"msg,omitempty" json:"msg,omitempty"`
	MaxWireVersion    int32   `bson:"maxWireVersion" json:"max_wire_version"`
	OK                float64 `bson:"ok" json:"ok"`
}

// Role describes the server's role in its topology
func (h *HelloResult) Role() string {
	switch {
	case h == nil:
		return "unknown"
	case h.Msg == "isdbgrid":
		return "mongos"
	case h.IsMaster || h.IsWritablePrimary:
		if h.SetName != "" {
			return "primary"
		}
		return "standalone"
	case h.SetName != "":
		return "secondary"
	default:
		return "unknown"
	}
}
