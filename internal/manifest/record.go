package manifest

// Status is the operational state label carried by a manifest.
type Status string

const (
	StatusReceived  Status = "Manifesto Recebido"
	StatusPulled    Status = "Manifesto Puxado"
	StatusStarted   Status = "Manifesto Iniciado"
	StatusCompleted Status = "Manifesto Completo"
	// StatusDelivered is the only state the efficiency engine distinguishes.
	StatusDelivered Status = "Manifesto Entregue"
)

// NoValue is the sentinel upstream sources write for a milestone that was never recorded.
const NoValue = "---"

// Record is a single cargo/document handoff as delivered by the upstream source.
// Every timestamp is free text; an empty string means the field was absent.
type Record struct {
	// Status is the current operational state.
	Status Status `json:"status" yaml:"status"`
	// ReceivedAt is when the manifest was received.
	ReceivedAt string `json:"dataHoraRecebido,omitempty" yaml:"dataHoraRecebido,omitempty"`
	// PulledAt is when the manifest was pulled from the queue.
	PulledAt string `json:"dataHoraPuxado,omitempty" yaml:"dataHoraPuxado,omitempty"`
	// StartedAt is when processing started.
	StartedAt string `json:"dataHoraIniciado,omitempty" yaml:"dataHoraIniciado,omitempty"`
	// CompletedAt is when processing completed.
	CompletedAt string `json:"dataHoraCompleto,omitempty" yaml:"dataHoraCompleto,omitempty"`
	// CounterpartySignedAt is when the carrier representative signed off.
	CounterpartySignedAt string `json:"dataHoraRepresentanteCIA,omitempty" yaml:"dataHoraRepresentanteCIA,omitempty"`
	// ResponsibleOperator identifies who handled the manifest, if anyone.
	ResponsibleOperator string `json:"usuarioResponsavel,omitempty" yaml:"usuarioResponsavel,omitempty"`
}

// IsDelivered reports whether the record carries exactly the given delivered status.
func (r Record) IsDelivered(delivered Status) bool {
	return r.Status == delivered
}
