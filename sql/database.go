// Copyright 2026 The Quell Authors
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

package sql

// Database represents a collection of named tables.
type Database interface {
	Nameable
	// Tables returns the information of all tables, keyed by name.
	Tables() map[string]Table
}

// Table represents a named relation and its schema. The analyzer only cares
// about the logical shape of a table; storage and iteration belong to the
// execution layer.
type Table interface {
	Nameable
	// Schema returns the table schema.
	Schema() Schema
}
