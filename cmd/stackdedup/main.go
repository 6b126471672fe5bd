// Copyright 2024 The tformbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Stackdedup counts unique call stacks in the output of strace -k.
//
// Usage:
//
//	strace -k -e trace=/write -o /dev/stdout <cmd> | stackdedup
//
// strace -k prints, after each traced syscall line, the indented user
// stack that issued it. Stackdedup groups identical stacks, counts
// their occurrences, and prints them in ascending order of count, so
// the hottest call site ends up at the bottom of the output. For mmap
// calls it also collects the mapping length argument seen at each
// occurrence.
//
// The syscall line itself is not part of the grouping key: it
// contains pointer values that vary between otherwise identical
// calls.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
)

// A stackInfo accumulates the occurrences of one unique stack.
type stackInfo struct {
	count     int
	mmapSizes []string
}

// dedup reads strace -k output and groups identical stacks.
// A line starting with whitespace is a stack frame; any other line is
// a syscall, which flushes the frames collected so far as one stack
// attributed to the syscall line that preceded them.
func dedup(r io.Reader) (map[string]*stackInfo, error) {
	stacks := make(map[string]*stackInfo)
	var frames []string
	currCall := ""

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		line := s.Text()
		if line == "" {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			frames = append(frames, line)
			continue
		}
		flush(stacks, frames, currCall)
		frames = frames[:0]
		currCall = line
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	flush(stacks, frames, currCall)
	return stacks, nil
}

// flush records one stack occurrence for the call that produced it.
func flush(stacks map[string]*stackInfo, frames []string, call string) {
	if len(frames) == 0 {
		return
	}
	key := strings.Join(frames, "\n")
	info := stacks[key]
	if info == nil {
		info = &stackInfo{}
		stacks[key] = info
	}
	info.count++
	if size, ok := mmapSize(call); ok {
		info.mmapSizes = append(info.mmapSizes, size)
	}
}

// mmapSize extracts the mapping length (second argument) from an mmap
// syscall line.
func mmapSize(call string) (string, bool) {
	if !strings.HasPrefix(call, "mmap(") {
		return "", false
	}
	args := strings.Split(call, ",")
	if len(args) < 2 {
		return "", false
	}
	return strings.TrimSpace(args[1]), true
}

func main() {
	log.SetPrefix("stackdedup: ")
	log.SetFlags(0)

	stacks, err := dedup(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}

	keys := make([]string, 0, len(stacks))
	for k := range stacks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := stacks[keys[i]], stacks[keys[j]]
		if a.count != b.count {
			return a.count < b.count
		}
		return keys[i] < keys[j]
	})

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, k := range keys {
		info := stacks[k]
		fmt.Fprintf(w, "found %d\n", info.count)
		fmt.Fprintf(w, "mmap_sizes: %s\n", strings.Join(info.mmapSizes, ","))
		fmt.Fprintln(w, k)
	}
}
