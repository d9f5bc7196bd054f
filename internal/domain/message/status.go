package message

// StatusKind enumerates delivery progress of a message or reaction.
type StatusKind string

const (
	StatusSending   StatusKind = "SENDING"
	StatusSent      StatusKind = "SENT"
	StatusDelivered StatusKind = "DELIVERED"
	StatusRead      StatusKind = "READ"
	StatusError     StatusKind = "ERROR"
)

// Status is the delivery state of one message. The error state is the only
// one carrying a payload: the original draft that failed to send, so the
// caller can resubmit it without asking the user to re-enter anything.
//
// The library enforces no transition table. Sequencing
// (sending -> sent -> delivered -> read, or any state -> error) is driven by
// the transport layer and is a precondition on that collaborator.
type Status struct {
	kind  StatusKind
	draft *Draft
}

func SendingStatus() Status   { return Status{kind: StatusSending} }
func SentStatus() Status      { return Status{kind: StatusSent} }
func DeliveredStatus() Status { return Status{kind: StatusDelivered} }
func ReadStatus() Status      { return Status{kind: StatusRead} }

// ErrorStatus wraps a failed send. The draft is retained for recovery only,
// it takes no part in equality.
func ErrorStatus(draft Draft) Status {
	return Status{kind: StatusError, draft: &draft}
}

func (s Status) Kind() StatusKind { return s.kind }

// Draft returns the draft retained by an error status.
func (s Status) Draft() (Draft, bool) {
	if s.kind != StatusError || s.draft == nil {
		return Draft{}, false
	}
	return *s.draft, true
}

// Equal compares the variant kind only. Two error statuses are equal even
// when they retain different drafts: render diffing keys on the kind, and
// structural comparison of the retained draft would trigger spurious
// re-renders. Do not "fix" this into full structural equality.
func (s Status) Equal(other Status) bool {
	return s.kind == other.kind
}

func (s Status) String() string {
	return string(s.kind)
}
