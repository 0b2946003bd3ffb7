package telemetry

type TelemetryEvent string

const (
	EventCredential TelemetryEvent = "PLEASANT-TERRAFORM-PROVIDER::CREDENTIAL"
	EventSearch     TelemetryEvent = "PLEASANT-TERRAFORM-PROVIDER::SEARCH"
)

type TelemetryEventMode string

const (
	ModeRead TelemetryEventMode = "READ"
)
