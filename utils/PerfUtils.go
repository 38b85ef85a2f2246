// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utils

import (
	"runtime/debug"
	"time"

	log "github.com/sirupsen/logrus"
)

func PerfLog(timeMs int64, thresholdMs int64, str string) {
	if timeMs > thresholdMs {
		log.Warnf("PERF: "+str+" took %d ms more than expected (%d ms)", timeMs, thresholdMs)
	} else {
		log.Debugf("PERF: "+str+" took %dms", timeMs)
	}
}

// Measure starts a timer; call the returned func when the operation is done.
func Measure(thresholdMs int64, name string) func() {
	start := time.Now()
	return func() {
		PerfLog(time.Since(start).Milliseconds(), thresholdMs, name)
	}
}

// SafeAsync runs fn in a goroutine and logs a panic instead of crashing the process.
func SafeAsync(fn func()) {
	go func() {
		defer func() {
			if err := recover(); err != nil {
				log.Errorf("Async call failed with panic: %v", err)
				log.Debugf("Stacktrace: %v", string(debug.Stack()))
			}
		}()
		fn()
	}()
}
