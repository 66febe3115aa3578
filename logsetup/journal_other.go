// +build !linux

/*
NAME
  journal_other.go - systemd journal sink stub for non-Linux builds.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package logsetup

import "io"

// journalWriter always reports unavailable outside Linux: there is no
// systemd journal to fan out to.
func journalWriter() (io.Writer, bool) {
	return nil, false
}
