// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func Test_PerfStats_00(t *testing.T) {
	hook := test.NewGlobal()
	level := log.GetLevel()
	//
	defer func() {
		hook.Reset()
		log.SetLevel(level)
	}()
	//
	log.SetLevel(log.DebugLevel)
	//
	stats := NewPerfStats()
	_ = make([]uint64, 1<<16)
	stats.Log("allocation")
	//
	entry := hook.LastEntry()
	//
	if entry == nil {
		t.Fatalf("nothing logged")
	} else if entry.Level != log.DebugLevel {
		t.Errorf("expected debug entry, got %s", entry.Level)
	} else if !strings.HasPrefix(entry.Message, "allocation took ") {
		t.Errorf("unexpected message \"%s\"", entry.Message)
	}
}

func Test_PerfStats_01(t *testing.T) {
	hook := test.NewGlobal()
	level := log.GetLevel()
	//
	defer func() {
		hook.Reset()
		log.SetLevel(level)
	}()
	//
	log.SetLevel(log.InfoLevel)
	NewPerfStats().Log("quiet")
	// Nothing at info level
	if len(hook.AllEntries()) != 0 {
		t.Errorf("unexpected log entries")
	}
}
