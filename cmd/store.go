/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/internal/iodb"
	"github.com/jimiaki7/gegraptai/pkg/config"
	"github.com/jimiaki7/gegraptai/pkg/db"
)

// storeConfig returns the store settings with the default SQLite file
// filled in.
func storeConfig() *config.StoreConfig {
	res := cfg.Store
	res.Path = cfg.StorePath()
	return &res
}

// storeTarget describes the store for user messages.
func storeTarget(sc *config.StoreConfig) string {
	if sc.Driver == "postgres" {
		return fmt.Sprintf("%s@%s:%d/%s",
			sc.User, sc.Host, sc.Port, sc.Database)
	}
	return sc.Path
}

// connect opens the configured store. With requireTables it fails on a
// store without corpus tables.
func connect(ctx context.Context, requireTables bool) (db.Operator, error) {
	sc := storeConfig()
	op := iodb.NewOperator()
	if err := op.Connect(ctx, sc); err != nil {
		return nil, err
	}

	if !requireTables {
		return op, nil
	}

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		op.Close()
		return nil, err
	}
	if !hasTables {
		op.Close()
		return nil, iodb.EmptyStoreError(storeTarget(sc))
	}
	return op, nil
}

func printConnected(sc *config.StoreConfig) {
	gn.Info("Connected to %s store: <em>%s</em>", sc.Driver, storeTarget(sc))
}
