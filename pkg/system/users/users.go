// Package users resolves numeric user ids to display names.
package users

import (
	"os/user"
	"strconv"
)

// Name resolves uid to its login name via the system user database.
// Unknown uids (deleted accounts, container processes with no passwd
// entry) fall back to the decimal uid string so callers always get a
// printable label.
func Name(uid uint32) string {
	raw := strconv.FormatUint(uint64(uid), 10)
	u, err := user.LookupId(raw)
	if err != nil || u.Username == "" {
		return raw
	}
	return u.Username
}
