// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run processes in the background with
// controlled shutdown
package background

// T - handle for the stop routine
type T struct {
	finished []chan struct{}
	shutdown chan struct{}
}

// Process - interface for background processes
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// Start - start up a set of background processes
// all with the same arg value
func Start(processes Processes, args interface{}) *T {

	register := &T{
		finished: make([]chan struct{}, len(processes)),
		shutdown: make(chan struct{}),
	}

	// start each background
	for i, p := range processes {
		finished := make(chan struct{})
		register.finished[i] = finished
		go func(p Process, finished chan struct{}) {
			defer close(finished)
			p.Run(args, register.shutdown)
		}(p, finished)
	}
	return register
}

// Stop - stop a set of background processes
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	close(t.shutdown)

	// wait for the finish indication
	for _, finished := range t.finished {
		<-finished
	}
}
