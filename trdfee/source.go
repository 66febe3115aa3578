/*
NAME
  source.go - the random-access byte source interface the streaming reader
  consumes.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package trdfee

import "io"

// Source is the byte-level stream this package reads words from. It is an
// external collaborator - file containers, network sockets, or in-memory
// buffers all satisfy it - and this package never does more than Tell/Seek/
// Read with it.
type Source interface {
	io.Reader
	Tell() (int64, error)
	Seek(offset int64) error
}
