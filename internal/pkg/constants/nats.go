package constants

// NATS Subjects
const (
	// Payment rail
	SubjectRailDispatch = "payment.rail.dispatch"
	SubjectRailResult   = "payment.rail.result"
)

// NATS queue groups
const (
	QueueTradeService = "trade-service"
	QueueRailSandbox  = "rail-sandbox"
)
