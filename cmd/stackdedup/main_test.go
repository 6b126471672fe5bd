// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"reflect"
	"strings"
	"testing"
)

const traceSample = `write(1, "a", 1) = 1
 > /lib/libc.so.6(write+0x14) [0x11a7d4]
 > /bin/tform(flush_out+0x32) [0x4021a2]
mmap(NULL, 8192, PROT_READ, MAP_PRIVATE, 3, 0) = 0x7f1
 > /lib/libc.so.6(mmap+0x22) [0x11b0a2]
 > /bin/tform(arena_grow+0x10) [0x403310]
write(1, "b", 1) = 1
 > /lib/libc.so.6(write+0x14) [0x11a7d4]
 > /bin/tform(flush_out+0x32) [0x4021a2]
mmap(NULL, 16384, PROT_READ, MAP_PRIVATE, 3, 0) = 0x7f2
 > /lib/libc.so.6(mmap+0x22) [0x11b0a2]
 > /bin/tform(arena_grow+0x10) [0x403310]
exit_group(0) = ?
`

func TestDedup(t *testing.T) {
	stacks, err := dedup(strings.NewReader(traceSample))
	if err != nil {
		t.Fatal(err)
	}
	if len(stacks) != 2 {
		t.Fatalf("got %d unique stacks, want 2", len(stacks))
	}

	writeStack := " > /lib/libc.so.6(write+0x14) [0x11a7d4]\n > /bin/tform(flush_out+0x32) [0x4021a2]"
	info := stacks[writeStack]
	if info == nil {
		t.Fatal("write stack not found")
	}
	if info.count != 2 {
		t.Errorf("write stack count = %d, want 2", info.count)
	}
	if len(info.mmapSizes) != 0 {
		t.Errorf("write stack mmapSizes = %v, want none", info.mmapSizes)
	}

	mmapStack := " > /lib/libc.so.6(mmap+0x22) [0x11b0a2]\n > /bin/tform(arena_grow+0x10) [0x403310]"
	info = stacks[mmapStack]
	if info == nil {
		t.Fatal("mmap stack not found")
	}
	if info.count != 2 {
		t.Errorf("mmap stack count = %d, want 2", info.count)
	}
	// Every occurrence contributes its mapping length, including
	// the first.
	if want := []string{"8192", "16384"}; !reflect.DeepEqual(info.mmapSizes, want) {
		t.Errorf("mmap sizes = %v, want %v", info.mmapSizes, want)
	}
}

func TestMmapSize(t *testing.T) {
	if size, ok := mmapSize("mmap(NULL, 8192, PROT_READ) = 0x7f1"); !ok || size != "8192" {
		t.Errorf("mmapSize = %q, %v; want 8192, true", size, ok)
	}
	if _, ok := mmapSize("write(1, \"a\", 1) = 1"); ok {
		t.Error("mmapSize matched a write call")
	}
}
