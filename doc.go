// Package dialog implements the SIP dialog layer: creation, state
// transitions, target/route/session updates, retransmission and
// timeout timers, and per-call dialog/subscription bookkeeping for an
// RFC 3261 dialog established by an INVITE transaction.
//
// The package is a pure transformation over Dialog and Call values
// plus calls into three narrow collaborator interfaces - TimerService,
// Notifier, and Transport - so that message parsing/serialization,
// socket transport, and transaction matching stay outside this
// module, consumed rather than reimplemented.
package dialog
