// Package syncable implements the read/write protocol shared by every
// entity repository: a device-local JSON mirror that always answers, plus a
// best-effort server leg when a session is present.
//
// The local mirror is disposable - it is overwritten wholesale by every
// successful remote read. The client-generated identifier is the record's
// permanent identity; the server's own key never leaks out of this package's
// wire mappings.
package syncable

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/fittrack/internal/client/localstore"
	"github.com/dmitrijs2005/fittrack/internal/client/remote"
	"github.com/dmitrijs2005/fittrack/internal/logging"
)

// Auth reports whether repository operations should take the server-backed
// path. Implemented by the session manager.
type Auth interface {
	IsAuthenticated(ctx context.Context) bool
}

// Outcome is the explicit result of a write. The local write and the remote
// push are reported separately: Persisted refers to the device mirror,
// Pushed to the server leg. A failed push leaves Err set but is never an
// error condition for the caller - the local write already succeeded and the
// next successful remote read reconciles.
type Outcome struct {
	Persisted bool
	Pushed    bool
	Err       error
}

// ClientID picks the identity of a server record: the echoed client
// identifier when present, otherwise the stringified server key. The latter
// covers records created by another client before identifiers were echoed.
func ClientID(clientID string, serverID int64) string {
	if clientID != "" {
		return clientID
	}
	return strconv.FormatInt(serverID, 10)
}

// Deps carries the shared collaborators every repository needs.
type Deps struct {
	Store   localstore.Store
	Remote  *remote.Client
	Pusher  *remote.Pusher
	Session Auth
	Log     logging.Logger
}
