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

import "strings"

// Catalog holds databases, tables and functions.
type Catalog struct {
	Databases
	FunctionRegistry
}

// NewCatalog returns a new empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		Databases:        Databases{},
		FunctionRegistry: NewFunctionRegistry(),
	}
}

// Databases is a collection of Database.
type Databases []Database

// Database returns the Database with the given name if it exists.
func (d Databases) Database(name string) (Database, error) {
	name = strings.ToLower(name)
	for _, db := range d {
		if strings.ToLower(db.Name()) == name {
			return db, nil
		}
	}

	return nil, ErrDatabaseNotFound.New(name)
}

// AddDatabase adds a new database.
func (d *Databases) AddDatabase(db Database) {
	*d = append(*d, db)
}

// Table returns the Table with the given name if it exists. An empty
// database name searches every database in the catalog, first match wins.
func (d Databases) Table(dbName string, tableName string) (Table, error) {
	if dbName == "" {
		for _, db := range d {
			if t, err := d.Table(db.Name(), tableName); err == nil {
				return t, nil
			}
		}
		return nil, ErrTableNotFound.New(tableName)
	}

	db, err := d.Database(dbName)
	if err != nil {
		return nil, err
	}

	tableName = strings.ToLower(tableName)
	tables := db.Tables()
	// Try to get the table by key, but if the name is not the same,
	// then use the slow path and iterate over all tables comparing
	// the name case insensitively.
	table, ok := tables[tableName]
	if !ok {
		for name, t := range tables {
			if strings.ToLower(name) == tableName {
				table = t
				ok = true
				break
			}
		}

		if !ok {
			return nil, ErrTableNotFound.New(tableName)
		}
	}

	return table, nil
}
