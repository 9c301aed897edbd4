// Package service orchestrates the API gateway, session store, and
// terminal rendering. Each service is independent: a failure surfaces a
// message for its own flow and leaves everything else interactive. No
// operation is retried automatically.
package service

import (
	"github.com/MdSufiyan005/INHACK/cli/pkg/client"
	clierrors "github.com/MdSufiyan005/INHACK/cli/pkg/errors"
	"github.com/MdSufiyan005/INHACK/cli/pkg/formatter"
	"github.com/MdSufiyan005/INHACK/cli/pkg/logger"
	"github.com/MdSufiyan005/INHACK/cli/pkg/session"
)

// ensureSession loads the persisted vendor session and arms the HTTP
// client with its cookie. With no session it raises the login gate.
func ensureSession(store *session.Store) (*session.Session, error) {
	sess, err := store.Load()
	if err != nil {
		logger.Error("Failed to load session", "error", err)
		return nil, err
	}

	if sess == nil {
		formatter.PrintError("Not logged in. Please run 'inhack-cli auth login'")
		return nil, clierrors.Unauthenticated()
	}

	client.Init()
	client.SetSessionCookie(sess.SessionID)
	return sess, nil
}

// handleUnauthenticated routes a 401 to the login gate. The session
// store is deliberately left untouched: the attempted operation is
// discarded and the user decides whether to log in again.
func handleUnauthenticated(err error) bool {
	if clierrors.IsUnauthenticated(err) {
		formatter.PrintError("Session expired. Please run 'inhack-cli auth login' to sign in again.")
		return true
	}
	return false
}
