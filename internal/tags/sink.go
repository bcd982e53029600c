// Copyright 2025 EngFlow Inc. All rights reserved.
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

package tags

// Sink receives fully-formed tag entries from a parser, in source order.
type Sink interface {
	Tag(Entry)
}

// Collector is a Sink that accumulates entries in memory.
type Collector struct {
	Entries []Entry
}

func (c *Collector) Tag(e Entry) {
	c.Entries = append(c.Entries, e)
}
