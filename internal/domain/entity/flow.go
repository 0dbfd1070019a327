// Package entity contains the core business objects of the project.
package entity

// FlowState is the explicit state of one asynchronous operation, replacing
// ad hoc loading booleans with a single exhaustive union.
type FlowState struct {
	Phase  FlowPhase
	Reason string // Failure message; set only when Phase is FlowFailed.
}

// FlowPhase enumerates the lifecycle of an asynchronous operation.
type FlowPhase int

const (
	// FlowIdle means no attempt has been made yet, or the last attempt was
	// acknowledged and the flow was reset.
	FlowIdle FlowPhase = iota
	// FlowInFlight means a request is pending; re-entry is blocked.
	FlowInFlight
	// FlowSucceeded means the last attempt completed.
	FlowSucceeded
	// FlowFailed means the last attempt failed; Reason carries the message.
	FlowFailed
)

// RegistrationPhase tracks the registration flow:
// Idle -> AwaitingOTP -> Verified.
type RegistrationPhase int

const (
	RegistrationIdle RegistrationPhase = iota
	// RegistrationAwaitingOTP means the register call succeeded, an
	// unverified account exists server-side, and the emailed code is
	// outstanding.
	RegistrationAwaitingOTP
	// RegistrationVerified means the OTP check passed; the account can log in.
	RegistrationVerified
)

// ResetPhase tracks the password-reset flow:
// Idle -> OTPRequested -> OTPVerified -> Idle. A successful reset returns
// straight to Idle; there is no lingering done state.
type ResetPhase int

const (
	ResetIdle ResetPhase = iota
	ResetOTPRequested
	ResetOTPVerified
)
