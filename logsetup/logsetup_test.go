/*
NAME
  logsetup_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package logsetup

import (
	"path/filepath"
	"testing"
)

func TestNewReturnsUsableLogger(t *testing.T) {
	cfg := Config{
		Path:       filepath.Join(t.TempDir(), "trdfee.log"),
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
		Verbosity:  0,
		Suppress:   true,
	}
	log := New(cfg)
	if log == nil {
		t.Fatal("New returned a nil logger")
	}
	log.Info("test message", "k", "v")
}

func TestJournalWriterWithoutJournalRequestedIsSkipped(t *testing.T) {
	cfg := Config{
		Path:    filepath.Join(t.TempDir(), "trdfee.log"),
		Journal: false,
	}
	log := New(cfg)
	if log == nil {
		t.Fatal("New returned a nil logger")
	}
}
