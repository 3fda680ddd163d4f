// Package cli is the interactive Unsaid terminal client.
//
// It wires configuration, the local cache and the client services into a
// read-eval-print loop. The session survives restarts: a saved token pair
// is restored at start-up and the user is greeted without a login prompt.
// A background watcher pings the server; when it comes back the pending
// offline changes are pushed automatically.
//
// Commands are grouped as:
//
//	account:  register, login, logout, name
//	writing:  vent, letter, reflect
//	browsing: list, calendar, day, show
//	entries:  pin, unpin, fav, delete, attach, audio
//	tools:    stats, prompt, chat, quota, sync
package cli
