package request

// Request is the inbound envelope every write endpoint accepts.
type Request[T any] struct {
	Data T                 `json:"data"`
	Meta map[string]string `json:"meta,omitempty"`
}

// MetaCorrelationID is the meta key that carries a caller's correlation id.
const MetaCorrelationID = "correlationId"

func (r Request[T]) CorrelationID() string {
	return r.Meta[MetaCorrelationID]
}
