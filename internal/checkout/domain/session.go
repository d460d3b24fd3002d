package domain

type SessionState string

const (
	StateShopping  SessionState = "shopping"
	StateChecking  SessionState = "checking"
	StateCommitted SessionState = "committed"
	StateAborted   SessionState = "aborted"
)
